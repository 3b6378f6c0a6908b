package menu

import (
	"errors"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if s := cfg.Layout.Slot(SlotSelected); s.Alpha != 240 {
		t.Fatalf("selected slot alpha %d, want 240", s.Alpha)
	}
	if up, down := cfg.Layout.Slot(SlotAbove1), cfg.Layout.Slot(SlotBelow1); up.Y >= down.Y {
		t.Fatalf("above slot should sit higher than below slot: %v vs %v", up.Y, down.Y)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"entry_damping_zero", func(c *Config) { c.Tuning.EntryDampingOffset = c.Tuning.DampMin }, ErrDamping},
		{"alpha_damping_zero", func(c *Config) { c.Tuning.AlphaDamping = 0 }, ErrDamping},
		{"highlight_damping_negative", func(c *Config) { c.Tuning.HighlightDamping = -1 }, ErrDamping},
		{"damp_bounds", func(c *Config) { c.Tuning.DampMax = c.Tuning.DampMin - 1 }, ErrBounds},
		{"scroll_bounds", func(c *Config) { c.Tuning.ScrollMin = c.Tuning.ScrollMax * 2 }, ErrBounds},
		{"negative_decay", func(c *Config) { c.Tuning.ScrollDecay = -0.1 }, nil},
		{"alpha_range", func(c *Config) { c.Tuning.HighlightAlphaMax = 300 }, nil},
		{"alpha_step", func(c *Config) { c.Tuning.HighlightAlphaStep = 0 }, nil},
		{"dpad_alpha", func(c *Config) { c.Tuning.DPadAlpha = -1 }, nil},
		{"slot_alpha", func(c *Config) { c.Layout.Slots[0].Alpha = 256 }, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultConfig()
			c.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected error")
			}
			if c.wantErr != nil && !errors.Is(err, c.wantErr) {
				t.Fatalf("expected %v, got %v", c.wantErr, err)
			}
		})
	}
}

func TestLayoutSlotClamps(t *testing.T) {
	l := DefaultConfig().Layout
	if l.Slot(7) != l.Slot(SlotOffscreen) || l.Slot(-9) != l.Slot(SlotBelow3) {
		t.Fatalf("out of range slots should clamp to the off-screen ends")
	}

	before := l.Slots
	l.SetSlot(4, Slot{X: 1})
	if l.Slots != before {
		t.Fatalf("out of range SetSlot should be ignored")
	}
}
