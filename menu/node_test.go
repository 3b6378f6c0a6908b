package menu

import (
	"math"
	"testing"
)

func TestNodeSnapKeepsVelocity(t *testing.T) {
	n := newNode(Sprite{}, 0, 0, 9, 255, 3)
	n.X.Velocity = 12
	n.SetTarget(40, -8)
	n.Update(0.05, true)

	if x, y := n.Position(); x != 40 || y != -8 {
		t.Fatalf("expected snap to (40, -8), got (%v, %v)", x, y)
	}
	if n.X.Velocity != 12 {
		t.Fatalf("snap should leave velocity alone, got %v", n.X.Velocity)
	}
}

func TestNodeUpdateUsesElapsedTime(t *testing.T) {
	n := newNode(Sprite{}, 0, 0, 9, 255, 3)
	n.Update(1, true)
	n.SetTarget(100, 0)

	n.Update(1, false)
	if x, _ := n.Position(); x != 0 {
		t.Fatalf("zero elapsed time should not move the node, got x=%v", x)
	}

	n.Update(1.05, false)
	x, _ := n.Position()
	if x <= 0 || x >= 100 {
		t.Fatalf("expected partial move toward 100, got %v", x)
	}

	n.Update(0.5, false)
	if after, _ := n.Position(); after != x {
		t.Fatalf("time going backwards should not move the node, %v became %v", x, after)
	}
}

func TestNodeAlphaStaysInByteRange(t *testing.T) {
	n := newNode(Sprite{}, 0, 0, 9, 0, 3)
	n.SetAlphaTarget(900)
	if n.Alpha.Target != 255 {
		t.Fatalf("alpha target should clamp to 255, got %d", n.Alpha.Target)
	}
	n.SetAlphaTarget(-4)
	if n.Alpha.Target != 0 {
		t.Fatalf("alpha target should clamp to 0, got %d", n.Alpha.Target)
	}

	n.Alpha.Position = 300
	n.Alpha.Target = 300
	n.Update(0.05, false)
	if n.AlphaValue() != 255 || n.Alpha.Position != 255 {
		t.Fatalf("alpha position should clamp to 255, got %d", n.Alpha.Position)
	}
}

func TestNodeSetDampingLeavesAlphaRate(t *testing.T) {
	n := newNode(Sprite{}, 0, 0, 9, 0, 3)
	n.SetDamping(108)
	if n.X.Damping != 108 || n.Y.Damping != 108 {
		t.Fatalf("expected position damping 108, got %v/%v", n.X.Damping, n.Y.Damping)
	}
	if n.Alpha.Damping != 3 {
		t.Fatalf("alpha damping should not change, got %v", n.Alpha.Damping)
	}
}

func TestSpriteOrigin(t *testing.T) {
	s := Sprite{Width: 115, Height: 64}
	x, y := s.Origin(76, 108)
	if math.Abs(x-18.5) > 1e-9 || y != 76 {
		t.Fatalf("expected centred origin (18.5, 76), got (%v, %v)", x, y)
	}

	s.Anchor = AnchorTopLeft
	if x, y := s.Origin(76, 108); x != 76 || y != 108 {
		t.Fatalf("top-left anchor should not move, got (%v, %v)", x, y)
	}
}
