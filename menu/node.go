package menu

import (
	"github.com/hylian-modding/OcarinaOfTime-LiveMenu/common"
	"github.com/hylian-modding/OcarinaOfTime-LiveMenu/spring"
)

// Node is a sprite whose position and opacity follow their targets on
// springs. Position uses a per-node rate that the menu changes while
// scrolling; opacity uses a fixed rate.
type Node struct {
	X      spring.Value[float64]
	Y      spring.Value[float64]
	Alpha  spring.Value[int]
	Sprite Sprite

	lastUpdate float64
}

func newNode(sprite Sprite, x, y, damping float64, alpha int, alphaDamping float64) Node {
	return Node{
		X:      spring.NewValue(x, damping),
		Y:      spring.NewValue(y, damping),
		Alpha:  spring.NewValue(alpha, alphaDamping),
		Sprite: sprite,
	}
}

func (n *Node) SetTarget(x, y float64) {
	n.X.Target = x
	n.Y.Target = y
}

func (n *Node) Target() (float64, float64) {
	return n.X.Target, n.Y.Target
}

func (n *Node) Position() (float64, float64) {
	return n.X.Position, n.Y.Position
}

// SetDamping changes the position rate. Velocity is left alone, which is
// what gives a sudden stiffness increase its kick.
func (n *Node) SetDamping(d float64) {
	n.X.SetDamping(d)
	n.Y.SetDamping(d)
}

func (n *Node) SetAlphaTarget(a int) {
	n.Alpha.Target = common.Clamp(a, 0, 255)
}

func (n *Node) hide() {
	n.Alpha.Target = 0
	n.Alpha.Position = 0
	n.Alpha.Velocity = 0
}

// AlphaValue is the current opacity as a draw-ready byte.
func (n *Node) AlphaValue() uint8 {
	return uint8(common.Clamp(n.Alpha.Position, 0, 255))
}

// Update advances the node to now. With snap set the position jumps to the
// target instead of integrating.
func (n *Node) Update(now float64, snap bool) {
	dt := now - n.lastUpdate
	if snap {
		n.X.Snap()
		n.Y.Snap()
	} else {
		n.X.Update(dt)
		n.Y.Update(dt)
	}
	n.Alpha.Update(dt)
	n.Alpha.Position = common.Clamp(n.Alpha.Position, 0, 255)
	n.lastUpdate = now
}
