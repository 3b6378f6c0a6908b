package menu

import "math"

// Entry is one selectable item inside a category.
type Entry struct {
	Node
	Item    Item
	Visible bool
	OffsetX float64
	OffsetY float64
}

// Category is a background strip holding a fixed row of entries.
type Category struct {
	ID         CategoryID
	Background Node

	entries [MaxEntries]Entry
	length  int
}

func newCategory(id CategoryID, items []Item, cfg Config) Category {
	home := cfg.Layout.Slot(SlotSelected)
	c := Category{
		ID: id,
		Background: newNode(
			Sprite{Asset: AssetCategory, Width: cfg.Layout.CategoryWidth, Height: cfg.Layout.CategoryHeight},
			home.X, home.Y, cfg.Tuning.DampMin, 255, cfg.Tuning.AlphaDamping,
		),
		length: min(len(items), MaxEntries),
	}
	for i := 0; i < c.length; i++ {
		c.entries[i] = Entry{
			Node: newNode(
				Sprite{Asset: items[i].Asset, Width: cfg.Layout.EntrySize, Height: cfg.Layout.EntrySize},
				0, 0, cfg.Tuning.DampMin-cfg.Tuning.EntryDampingOffset, 255, cfg.Tuning.AlphaDamping,
			),
			Item: items[i],
		}
	}
	c.place(cfg.Layout)
	return c
}

// place recomputes entry offsets and sprite sizes from the layout.
func (c *Category) place(l Layout) {
	c.Background.Sprite.Width = l.CategoryWidth
	c.Background.Sprite.Height = l.CategoryHeight
	left := -math.Floor(l.CategoryWidth / 2)
	for i := range c.Entries() {
		e := &c.entries[i]
		e.OffsetX = left + l.EntrySpacing*float64(i)
		e.OffsetY = l.EntryOffsetY
		e.Sprite.Width = l.EntrySize
		e.Sprite.Height = l.EntrySize
	}
}

// Len is the number of entries, fixed at construction.
func (c *Category) Len() int {
	return c.length
}

// Entries returns the live entries. The slice aliases the category.
func (c *Category) Entries() []Entry {
	return c.entries[:c.length]
}

// Entry returns entry i, or nil when i is out of range.
func (c *Category) Entry(i int) *Entry {
	if i < 0 || i >= c.length {
		return nil
	}
	return &c.entries[i]
}

func (c *Category) setDamping(d, entryOffset float64) {
	c.Background.SetDamping(d)
	for i := range c.Entries() {
		c.entries[i].SetDamping(d - entryOffset)
	}
}

// animate moves the background, then pins each entry's target to the
// background target plus its offset. Entries fade toward the background's
// alpha target on their own springs.
func (c *Category) animate(now float64, snap bool) {
	c.Background.Update(now, snap)
	bx, by := c.Background.Target()
	for i := range c.Entries() {
		e := &c.entries[i]
		e.SetTarget(bx+e.OffsetX, by+e.OffsetY)
		e.Alpha.Target = c.Background.Alpha.Target
		e.Update(now, snap)
	}
}

// hide drops the strip and its entries to fully transparent at once.
func (c *Category) hide() {
	c.Background.hide()
	for i := range c.Entries() {
		c.entries[i].hide()
	}
}

func (c *Category) draw(r Renderer) {
	x, y := c.Background.Position()
	r.DrawSprite(c.Background.Sprite, x, y, c.Background.AlphaValue())
	for i := range c.Entries() {
		e := &c.entries[i]
		if !e.Visible {
			continue
		}
		ex, ey := e.Position()
		r.DrawSprite(e.Sprite, ex, ey, e.AlphaValue())
	}
}
