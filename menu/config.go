package menu

import (
	"errors"
	"fmt"
)

// SlotIndex is a display slot relative to the active category: 0 is the
// selected strip, positive slots stack above, negative below. ±3 is the
// off-screen parking spot for the category opposite the active one.
type SlotIndex int

const (
	SlotBelow3    SlotIndex = -3
	SlotBelow2    SlotIndex = -2
	SlotBelow1    SlotIndex = -1
	SlotSelected  SlotIndex = 0
	SlotAbove1    SlotIndex = 1
	SlotAbove2    SlotIndex = 2
	SlotOffscreen SlotIndex = 3
)

// NumSlots is the size of the slot table, covering -3..3.
const NumSlots = 7

// Slot is where a category strip rests and how opaque it is there.
type Slot struct {
	X     float64
	Y     float64
	Alpha int
}

// Tuning holds the timing and spring constants.
type Tuning struct {
	ScrollMin   float64
	ScrollMax   float64
	ScrollDecay float64
	RepeatDelay float64

	DampMin            float64
	DampMax            float64
	DampDecay          float64
	EntryDampingOffset float64

	AlphaDamping     float64
	HighlightDamping float64

	HighlightAlphaMin  int
	HighlightAlphaMax  int
	HighlightAlphaStep int
	DPadAlpha          int
}

// Layout holds screen positions and sizes.
type Layout struct {
	Slots      [NumSlots]Slot
	OffscreenX float64
	PeelY      float64

	CategoryWidth  float64
	CategoryHeight float64
	EntrySize      float64
	EntrySpacing   float64
	EntryOffsetY   float64
	HighlightSize  float64

	DPadX       float64
	DPadTopY    float64
	DPadBottomY float64
	DPadWidth   float64
	DPadHeight  float64
}

// Slot returns the table entry for s. Anything beyond ±3 is treated as ±3.
func (l *Layout) Slot(s SlotIndex) Slot {
	s = max(SlotBelow3, min(s, SlotOffscreen))
	return l.Slots[s+3]
}

func (l *Layout) SetSlot(s SlotIndex, v Slot) {
	if s < SlotBelow3 || s > SlotOffscreen {
		return
	}
	l.Slots[s+3] = v
}

type Config struct {
	Tuning Tuning
	Layout Layout
}

// DefaultConfig returns the stock tuning for a 320x240 overlay.
func DefaultConfig() Config {
	const (
		baseX   = 76.0
		baseY   = 108.0
		pitch   = 19.0
		indentX = -4.0
		offX    = -72.0
	)
	cfg := Config{
		Tuning: Tuning{
			ScrollMin:   0.1,
			ScrollMax:   0.25,
			ScrollDecay: 0.05,
			RepeatDelay: 0.5,

			DampMin:            9,
			DampMax:            108,
			DampDecay:          11,
			EntryDampingOffset: 1,

			AlphaDamping:     3,
			HighlightDamping: 999,

			HighlightAlphaMin:  35,
			HighlightAlphaMax:  255,
			HighlightAlphaStep: 11,
			DPadAlpha:          240,
		},
		Layout: Layout{
			OffscreenX: offX,
			PeelY:      14,

			CategoryWidth:  115,
			CategoryHeight: 64,
			EntrySize:      16,
			EntrySpacing:   16,
			EntryOffsetY:   -25,
			HighlightSize:  19,

			DPadX:       50,
			DPadTopY:    156,
			DPadBottomY: 180,
			DPadWidth:   40,
			DPadHeight:  24,
		},
	}
	l := &cfg.Layout
	l.SetSlot(SlotSelected, Slot{X: baseX, Y: baseY, Alpha: 240})
	l.SetSlot(SlotAbove1, Slot{X: baseX + indentX, Y: baseY - pitch, Alpha: 85})
	l.SetSlot(SlotBelow1, Slot{X: baseX + indentX, Y: baseY + pitch, Alpha: 85})
	l.SetSlot(SlotAbove2, Slot{X: baseX + 2*indentX, Y: baseY - 2*pitch, Alpha: 40})
	l.SetSlot(SlotBelow2, Slot{X: baseX + 2*indentX, Y: baseY + 2*pitch, Alpha: 40})
	l.SetSlot(SlotOffscreen, Slot{X: offX, Y: baseY, Alpha: 0})
	l.SetSlot(SlotBelow3, Slot{X: offX, Y: baseY, Alpha: 0})
	return cfg
}

var (
	ErrDamping = errors.New("menu: damping must stay positive")
	ErrBounds  = errors.New("menu: lower bound above upper bound")
)

// Validate rejects tunings that would break the spring or clamp invariants.
func (c *Config) Validate() error {
	t := &c.Tuning
	switch {
	case t.DampMin-t.EntryDampingOffset <= 0, t.AlphaDamping <= 0, t.HighlightDamping <= 0, t.EntryDampingOffset < 0:
		return ErrDamping
	case t.DampMin > t.DampMax, t.ScrollMin > t.ScrollMax:
		return ErrBounds
	case t.ScrollMin < 0, t.ScrollDecay < 0, t.DampDecay < 0, t.RepeatDelay < 0:
		return fmt.Errorf("menu: negative timing value in %+v", *t)
	case t.HighlightAlphaMin < 0, t.HighlightAlphaMax > 255, t.HighlightAlphaMin >= t.HighlightAlphaMax:
		return fmt.Errorf("menu: highlight alpha range [%d, %d] outside 0..255", t.HighlightAlphaMin, t.HighlightAlphaMax)
	case t.DPadAlpha < 0, t.DPadAlpha > 255:
		return fmt.Errorf("menu: d-pad alpha %d outside 0..255", t.DPadAlpha)
	case t.HighlightAlphaStep <= 0:
		return fmt.Errorf("menu: highlight alpha step %d must be positive", t.HighlightAlphaStep)
	}
	for i, s := range c.Layout.Slots {
		if s.Alpha < 0 || s.Alpha > 255 {
			return fmt.Errorf("menu: slot %d alpha %d outside 0..255", i-3, s.Alpha)
		}
	}
	return nil
}
