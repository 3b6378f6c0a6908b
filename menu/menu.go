// Package menu drives the radial item menu: six category strips stacked
// around the active one, a pulsing highlight on the selected item and
// d-pad navigation with accelerating auto-repeat.
//
// Everything is advanced by one Tick per frame and drawn by Draw. Nothing
// here allocates after New, blocks, or fails at runtime: out-of-range
// indices wrap, timing drift is clamped and confirming an item the player
// does not own does nothing.
package menu

import (
	"github.com/hylian-modding/OcarinaOfTime-LiveMenu/common"
	"github.com/hylian-modding/OcarinaOfTime-LiveMenu/save"
)

type Menu struct {
	cfg     Config
	catalog Catalog
	ring    Ring

	state       State
	category    CategoryID
	index       int
	side        Side
	dpadVisible bool

	categories [NumCategories]Category

	lastTick       float64
	lastScroll     float64
	scrollInterval float64
	damp           float64

	highlight Node
	alphaDir  int

	dpadTop    Node
	dpadBottom Node

	snap bool
}

// New builds a closed menu. The first Tick snaps every node into place.
func New(cfg Config, catalog Catalog) (*Menu, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	m := &Menu{
		cfg:            cfg,
		catalog:        catalog,
		ring:           NewRing(),
		dpadVisible:    true,
		scrollInterval: cfg.Tuning.ScrollMax,
		damp:           cfg.Tuning.DampMin,
		alphaDir:       -cfg.Tuning.HighlightAlphaStep,
		snap:           true,
	}
	for id := range m.categories {
		m.categories[id] = newCategory(CategoryID(id), catalog[id], cfg)
	}

	t, l := &cfg.Tuning, &cfg.Layout
	m.highlight = newNode(
		Sprite{Asset: AssetHighlight, Width: l.HighlightSize, Height: l.HighlightSize},
		0, 0, t.HighlightDamping, t.HighlightAlphaMax, t.AlphaDamping,
	)
	m.dpadTop = newNode(
		Sprite{Asset: AssetDPadClosedT, Width: l.DPadWidth, Height: l.DPadHeight},
		l.DPadX, l.DPadTopY, t.DampMin, t.DPadAlpha, t.AlphaDamping,
	)
	m.dpadBottom = newNode(
		Sprite{Asset: AssetDPadClosedB, Width: l.DPadWidth, Height: l.DPadHeight},
		l.DPadX, l.DPadBottomY, t.DampMin, t.DPadAlpha, t.AlphaDamping,
	)
	m.applyDamping()
	return m, nil
}

// Reconfigure swaps in new tuning and layout. Category sizes never change.
func (m *Menu) Reconfigure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	m.cfg = cfg
	t, l := &m.cfg.Tuning, &m.cfg.Layout

	m.scrollInterval = common.Clamp(m.scrollInterval, t.ScrollMin, t.ScrollMax)
	m.damp = common.Clamp(m.damp, t.DampMin, t.DampMax)
	if m.alphaDir < 0 {
		m.alphaDir = -t.HighlightAlphaStep
	} else {
		m.alphaDir = t.HighlightAlphaStep
	}

	for id := range m.categories {
		c := &m.categories[id]
		c.place(*l)
		c.Background.Alpha.SetDamping(t.AlphaDamping)
		for i := range c.Entries() {
			c.entries[i].Alpha.SetDamping(t.AlphaDamping)
		}
	}
	m.highlight.Sprite.Width, m.highlight.Sprite.Height = l.HighlightSize, l.HighlightSize
	m.highlight.SetDamping(t.HighlightDamping)
	m.highlight.Alpha.SetDamping(t.AlphaDamping)
	for _, n := range []*Node{&m.dpadTop, &m.dpadBottom} {
		n.Sprite.Width, n.Sprite.Height = l.DPadWidth, l.DPadHeight
		n.Alpha.SetDamping(t.AlphaDamping)
		n.Alpha.Target = t.DPadAlpha
	}
	m.dpadTop.SetTarget(l.DPadX, l.DPadTopY)
	m.dpadBottom.SetTarget(l.DPadX, l.DPadBottomY)

	m.applyDamping()
	m.Snap()
	return nil
}

// Snap makes the next Tick jump every node to its target.
func (m *Menu) Snap() {
	m.snap = true
}

// Tick advances the menu to now (seconds, monotonic) using this frame's
// input. ctx is read for item ownership and written on confirm; a nil ctx
// hides nothing and confirms nothing.
func (m *Menu) Tick(now float64, in Input, ctx save.Context) {
	m.lastTick = now

	switch {
	case m.state == Closed:
		if in.Up.Pressed {
			m.dpadVisible = !m.dpadVisible
		}
		if side, ok := in.openSide(); ok {
			m.open(side)
		} else {
			m.layoutClosed()
		}
		m.refreshVisibility(ctx)
	case in.Cancel.Pressed:
		m.close()
		m.refreshVisibility(ctx)
	default:
		m.navigate(now, in)
		m.refreshVisibility(ctx)
		if in.Confirm.Pressed {
			m.confirm(ctx)
		}
		m.layoutOpen()
	}

	m.pulseHighlight()
	m.animate(now)
}

func (m *Menu) open(side Side) {
	m.state = Open
	m.side = side
	home := m.cfg.Layout.Slot(SlotSelected)
	for id := range m.categories {
		c := &m.categories[id]
		c.Background.Y.Position = home.Y
		c.hide()
	}
	m.highlight.SetTarget(m.cfg.Layout.OffscreenX, home.Y)
}

func (m *Menu) close() {
	m.state = Closed
	m.layoutClosed()
}

// navigate applies index motion, repeat scrolling and damping relaxation,
// then wraps the index into the active category.
func (m *Menu) navigate(now float64, in Input) {
	t := &m.cfg.Tuning

	if in.Right.Pressed {
		m.index++
	}
	if in.Left.Pressed {
		m.index--
	}
	if in.Up.Pressed {
		m.shift(m.ring.Above(m.category))
	}
	if in.Down.Pressed {
		m.shift(m.ring.Below(m.category))
	}

	if m.repeatReady(now, in.Up) {
		m.shift(m.ring.Above(m.category))
		m.accelerate(now)
	}
	if m.repeatReady(now, in.Down) {
		m.shift(m.ring.Below(m.category))
		m.accelerate(now)
	}

	if !in.Up.Active() && !in.Down.Active() {
		m.scrollInterval = common.Clamp(m.scrollInterval+t.ScrollDecay, t.ScrollMin, t.ScrollMax)
		m.damp = common.Clamp(m.damp-t.DampDecay, t.DampMin, t.DampMax)
		m.applyDamping()
	}

	n := m.categories[m.category].Len()
	if m.index >= n {
		m.index = 0
	}
	if m.index < 0 {
		m.index = n - 1
	}
}

func (m *Menu) repeatReady(now float64, b Button) bool {
	return b.Held &&
		b.HeldFor > m.cfg.Tuning.RepeatDelay &&
		now-m.lastScroll > m.scrollInterval
}

// shift moves to another category, keeps the index inside it and kicks
// every strip's stiffness up.
func (m *Menu) shift(to CategoryID) {
	m.category = to
	m.index = min(m.index, m.categories[to].Len()-1)

	t := &m.cfg.Tuning
	m.damp = common.Clamp(m.damp+t.DampDecay, t.DampMin, t.DampMax)
	m.applyDamping()
}

func (m *Menu) accelerate(now float64) {
	t := &m.cfg.Tuning
	m.scrollInterval = common.Clamp(m.scrollInterval-t.ScrollDecay, t.ScrollMin, t.ScrollMax)
	m.lastScroll = now
}

// applyDamping pushes the current stiffness to every category, not only
// the one being entered.
func (m *Menu) applyDamping() {
	for id := range m.categories {
		m.categories[id].setDamping(m.damp, m.cfg.Tuning.EntryDampingOffset)
	}
}

func (m *Menu) refreshVisibility(ctx save.Context) {
	if ctx == nil {
		return
	}
	for id := range m.categories {
		c := &m.categories[id]
		for i := range c.Entries() {
			e := &c.entries[i]
			e.Visible = e.Item.Backing.Visible(ctx)
		}
	}
}

func (m *Menu) confirm(ctx save.Context) {
	if ctx == nil {
		return
	}
	e := m.categories[m.category].Entry(m.index)
	if e == nil || !e.Visible {
		return
	}
	e.Item.Action.Apply(ctx, m.side.Button())
}

// layoutOpen places every strip in its slot around the active category and
// points the highlight at the selected entry.
func (m *Menu) layoutOpen() {
	l := &m.cfg.Layout
	for id := range m.categories {
		bg := &m.categories[id].Background
		s := l.Slot(SlotIndex(m.ring.Offset(m.category, CategoryID(id))))
		bg.SetTarget(s.X, s.Y)
		bg.SetAlphaTarget(s.Alpha)
	}

	if e := m.categories[m.category].Entry(m.index); e != nil {
		m.highlight.SetTarget(e.Position())
	}
}

// layoutClosed slides every strip off to the left. The neighbours of the
// active strip peel away from it vertically as they go.
func (m *Menu) layoutClosed() {
	l := &m.cfg.Layout
	for id := range m.categories {
		bg := &m.categories[id].Background
		bg.X.Target = l.OffscreenX
	}
	above := &m.categories[m.ring.Above(m.category)].Background
	above.Y.Target = l.Slot(SlotAbove1).Y - l.PeelY
	below := &m.categories[m.ring.Below(m.category)].Background
	below.Y.Target = l.Slot(SlotBelow1).Y + l.PeelY

	m.highlight.X.Target = l.OffscreenX
}

// pulseHighlight bounces the highlight's target opacity between the tuning
// bounds, turning around exactly on each bound.
func (m *Menu) pulseHighlight() {
	t := &m.cfg.Tuning
	a := m.highlight.Alpha.Target + m.alphaDir
	switch {
	case a <= t.HighlightAlphaMin:
		a = t.HighlightAlphaMin
		m.alphaDir = t.HighlightAlphaStep
	case a >= t.HighlightAlphaMax:
		a = t.HighlightAlphaMax
		m.alphaDir = -t.HighlightAlphaStep
	}
	m.highlight.Alpha.Target = a
}

func (m *Menu) animate(now float64) {
	snap := m.snap
	for id := range m.categories {
		m.categories[id].animate(now, snap)
	}
	m.highlight.Update(now, snap)
	m.dpadTop.Update(now, snap)
	m.dpadBottom.Update(now, snap)
	m.snap = false
}

// drawOrder lists slot offsets back to front so the active strip
// covers its neighbours.
var drawOrder = [NumCategories]int{3, 2, -2, 1, -1, 0}

// Draw issues one DrawSprite per visible element.
func (m *Menu) Draw(r Renderer) {
	for _, off := range drawOrder {
		m.categories[m.ring.Step(m.category, off)].draw(r)
	}

	alpha := m.highlight.AlphaValue()
	tx, ty := m.highlight.Target()
	r.DrawSprite(m.highlight.Sprite, tx, ty, alpha)
	hx, hy := m.highlight.Position()
	r.DrawSprite(m.highlight.Sprite, hx, hy, alpha/3)

	if !m.dpadVisible {
		return
	}
	top, bottom := m.dpadTop.Sprite, m.dpadBottom.Sprite
	if m.state == Open {
		top.Asset, bottom.Asset = AssetDPadOpenT, AssetDPadOpenB
	}
	x, y := m.dpadBottom.Position()
	r.DrawSprite(bottom, x, y, m.dpadBottom.AlphaValue())
	x, y = m.dpadTop.Position()
	r.DrawSprite(top, x, y, m.dpadTop.AlphaValue())
}

func (m *Menu) State() State { return m.state }
func (m *Menu) IsOpen() bool { return m.state == Open }
func (m *Menu) ActiveCategory() CategoryID { return m.category }
func (m *Menu) ActiveIndex() int { return m.index }
func (m *Menu) Side() Side { return m.side }
func (m *Menu) DPadVisible() bool { return m.dpadVisible }
func (m *Menu) ScrollInterval() float64 { return m.scrollInterval }
func (m *Menu) Damping() float64 { return m.damp }
func (m *Menu) LastTick() float64 { return m.lastTick }
func (m *Menu) Config() Config { return m.cfg }
func (m *Menu) Catalog() Catalog { return m.catalog }
func (m *Menu) Ring() *Ring { return &m.ring }

// Highlight returns the highlight node. It must not be modified.
func (m *Menu) Highlight() *Node { return &m.highlight }

// CategoryAt returns the category with the given id. It must not be
// modified.
func (m *Menu) CategoryAt(id CategoryID) *Category {
	return &m.categories[id%NumCategories]
}

// Selected returns the entry under the highlight.
func (m *Menu) Selected() (*Entry, bool) {
	e := m.categories[m.category].Entry(m.index)
	return e, e != nil
}
