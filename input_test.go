package main

import (
	"math"
	"testing"

	"github.com/hylian-modding/OcarinaOfTime-LiveMenu/menu"
)

func TestButtonStateUsesClockStep(t *testing.T) {
	cases := []struct {
		name    string
		pressed bool
		frames  int
		dt      float64
		want    menu.Button
	}{
		{"released", false, 0, 0.05, menu.Button{}},
		{"press_tick", true, 1, 0.05, menu.Button{Pressed: true, Held: true}},
		{"fixed_step", false, 11, 0.05, menu.Button{Held: true, HeldFor: 0.5}},
		{"tps_step", false, 31, 1.0 / 60, menu.Button{Held: true, HeldFor: 0.5}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := buttonState(c.pressed, c.frames, c.dt)
			if got.Pressed != c.want.Pressed || got.Held != c.want.Held || math.Abs(got.HeldFor-c.want.HeldFor) > 1e-9 {
				t.Fatalf("expected %+v, got %+v", c.want, got)
			}
		})
	}
}

func TestFrameTimeMatchesHoldUnit(t *testing.T) {
	g := &Game{opts: Options{FrameTime: 0.05}}
	dt := g.frameTime()
	if dt != 0.05 {
		t.Fatalf("expected fixed step 0.05, got %v", dt)
	}

	// Ten ticks after the press the clock has moved 0.5s; so has the hold.
	held := buttonState(false, 11, dt)
	if math.Abs(held.HeldFor-10*dt) > 1e-9 {
		t.Fatalf("hold time %v does not match clock %v", held.HeldFor, 10*dt)
	}
}
