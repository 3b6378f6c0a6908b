package main

import (
	"math"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hylian-modding/OcarinaOfTime-LiveMenu/common"
	"github.com/hylian-modding/OcarinaOfTime-LiveMenu/menu"
)

var shades = []rune{' ', '░', '▒', '▓', '█'}

// termRenderer maps the menu's logical screen onto terminal cells.
type termRenderer struct {
	screen tcell.Screen
}

func (r *termRenderer) cellSize() (float64, float64) {
	w, h := r.screen.Size()
	return float64(common.BaseWidth) / float64(max(w, 1)), float64(common.BaseHeight) / float64(max(h, 1))
}

// cells returns the cell rectangle [x0,x1)×[y0,y1) covered by s at (x, y).
func (r *termRenderer) cells(s menu.Sprite, x, y float64) (x0, y0, x1, y1 int) {
	cw, ch := r.cellSize()
	ox, oy := s.Origin(x, y)
	x0 = int(math.Floor(ox / cw))
	y0 = int(math.Floor(oy / ch))
	x1 = max(int(math.Ceil((ox+s.Width)/cw)), x0+1)
	y1 = max(int(math.Ceil((oy+s.Height)/ch)), y0+1)
	return
}

func shade(alpha uint8) rune {
	i := int(common.Lerp(0, float32(len(shades))-0.01, float32(alpha)/255))
	return shades[common.Clamp(i, 0, len(shades)-1)]
}

func (r *termRenderer) set(x, y int, c rune, style tcell.Style) {
	w, h := r.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	r.screen.SetContent(x, y, c, nil, style)
}

func (r *termRenderer) DrawSprite(s menu.Sprite, x, y float64, alpha uint8) {
	if alpha < 16 {
		return
	}
	x0, y0, x1, y1 := r.cells(s, x, y)
	style := tcell.StyleDefault
	if alpha < 128 {
		style = style.Dim(true)
	}

	switch s.Asset {
	case menu.AssetCategory:
		c := shade(alpha)
		for cy := y0; cy < y1; cy++ {
			for cx := x0; cx < x1; cx++ {
				r.set(cx, cy, c, style.Foreground(tcell.ColorGray))
			}
		}
	case menu.AssetHighlight:
		hl := style.Foreground(tcell.ColorRed).Bold(true)
		r.set(x0-1, y0, '[', hl)
		r.set(x1, y0, ']', hl)
	case menu.AssetDPadClosedT, menu.AssetDPadOpenT:
		r.set((x0+x1)/2, y0, '▲', style.Foreground(dpadColor(s.Asset)))
	case menu.AssetDPadClosedB, menu.AssetDPadOpenB:
		r.set((x0+x1)/2, y0, '▼', style.Foreground(dpadColor(s.Asset)))
	default:
		label := []rune(strings.ToUpper(string(s.Asset)))
		if len(label) > 2 {
			label = label[:2]
		}
		for i, c := range label {
			r.set(x0+i, y0, c, style.Foreground(tcell.ColorWhite))
		}
	}
}

func dpadColor(a menu.Asset) tcell.Color {
	if a == menu.AssetDPadOpenT || a == menu.AssetDPadOpenB {
		return tcell.ColorYellow
	}
	return tcell.ColorSilver
}

// Terminals only report presses, so auto-repeat is the only hold signal
// there is. A key counts as held until the next event is overdue:
// repeatDelay covers the pause before auto-repeat starts, repeatWindow
// the gaps between repeats. A second event sooner than tapWindow after a
// fresh press cannot be auto-repeat and counts as a new press.
const (
	tapWindow    = 200 * time.Millisecond
	repeatDelay  = 650 * time.Millisecond
	repeatWindow = 150 * time.Millisecond
)

type keyState struct {
	down      time.Time
	last      time.Time
	pressed   bool
	repeating bool
}

// window is how long after the last event the key still reads as held.
func (st *keyState) window() time.Duration {
	if st.repeating {
		return repeatWindow
	}
	return repeatDelay
}

// keyTracker turns terminal key events into menu buttons.
type keyTracker struct {
	keys  map[tcell.Key]*keyState
	runes map[rune]tcell.Key
}

func newKeyTracker() *keyTracker {
	return &keyTracker{
		keys:  map[tcell.Key]*keyState{},
		runes: map[rune]tcell.Key{
			'a': tcell.KeyLeft, 's': tcell.KeyDown, 'd': tcell.KeyRight, 'w': tcell.KeyUp,
			'z': tcell.KeyEnter, ' ': tcell.KeyEnter, 'x': tcell.KeyEscape,
		},
	}
}

// Observe records one key event at now.
func (k *keyTracker) Observe(ev *tcell.EventKey, now time.Time) {
	key := ev.Key()
	if key == tcell.KeyRune {
		mapped, ok := k.runes[ev.Rune()]
		if !ok {
			return
		}
		key = mapped
	}

	st, ok := k.keys[key]
	if !ok {
		st = &keyState{}
		k.keys[key] = st
	}
	gap := now.Sub(st.last)
	switch {
	case st.last.IsZero(), gap > st.window(), !st.repeating && gap < tapWindow:
		st.down = now
		st.pressed = true
		st.repeating = false
	default:
		st.repeating = true
	}
	st.last = now
}

// button reports key at now. HeldFor only counts time covered by events,
// so a single tap never grows into a hold.
func (k *keyTracker) button(key tcell.Key, now time.Time) menu.Button {
	st, ok := k.keys[key]
	if !ok || st.last.IsZero() || now.Sub(st.last) > st.window() {
		return menu.Button{}
	}
	return menu.Button{Pressed: st.pressed, Held: true, HeldFor: st.last.Sub(st.down).Seconds()}
}

// Input builds this tick's menu input and consumes press edges.
func (k *keyTracker) Input(now time.Time) menu.Input {
	in := menu.Input{
		Left:    k.button(tcell.KeyLeft, now),
		Down:    k.button(tcell.KeyDown, now),
		Right:   k.button(tcell.KeyRight, now),
		Up:      k.button(tcell.KeyUp, now),
		Confirm: k.button(tcell.KeyEnter, now),
		Cancel:  k.button(tcell.KeyEscape, now),
	}
	for _, st := range k.keys {
		st.pressed = false
	}
	return in
}
