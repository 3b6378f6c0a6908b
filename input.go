package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hylian-modding/OcarinaOfTime-LiveMenu/menu"
)

// binding is one logical menu button: any of its keys or gamepad buttons
// drives it.
type binding struct {
	keys    []ebiten.Key
	buttons []ebiten.StandardGamepadButton
}

var bindings = struct {
	left, down, right, up, confirm, cancel binding
}{
	left: binding{
		keys:    []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	down: binding{
		keys:    []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	},
	right: binding{
		keys:    []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	up: binding{
		keys:    []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	},
	confirm: binding{
		keys:    []ebiten.Key{ebiten.KeyZ, ebiten.KeyEnter, ebiten.KeySpace},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	cancel: binding{
		keys:    []ebiten.Key{ebiten.KeyX, ebiten.KeyBackspace},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
	},
}

// Input polls keyboard and the first standard gamepad once per Update.
type Input struct {
	state menu.Input
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the bindings. dt is the clock step of one tick, so hold
// times advance in the same unit as the menu clock.
func (i *Input) Update(dt float64) {
	var gamepads []ebiten.GamepadID
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			gamepads = append(gamepads, id)
			break
		}
	}

	i.state = menu.Input{
		Left:    poll(bindings.left, gamepads, dt),
		Down:    poll(bindings.down, gamepads, dt),
		Right:   poll(bindings.right, gamepads, dt),
		Up:      poll(bindings.up, gamepads, dt),
		Confirm: poll(bindings.confirm, gamepads, dt),
		Cancel:  poll(bindings.cancel, gamepads, dt),
	}
}

// State is the input gathered by the last Update.
func (i *Input) State() menu.Input {
	return i.state
}

func poll(b binding, gamepads []ebiten.GamepadID, dt float64) menu.Button {
	pressed := false
	frames := 0
	for _, k := range b.keys {
		pressed = pressed || inpututil.IsKeyJustPressed(k)
		frames = max(frames, inpututil.KeyPressDuration(k))
	}
	for _, id := range gamepads {
		for _, gb := range b.buttons {
			pressed = pressed || inpututil.IsStandardGamepadButtonJustPressed(id, gb)
			frames = max(frames, inpututil.StandardGamepadButtonPressDuration(id, gb))
		}
	}
	return buttonState(pressed, frames, dt)
}

// buttonState converts a press duration in ticks into a menu button. The
// pressing tick itself counts as zero time held.
func buttonState(pressed bool, frames int, dt float64) menu.Button {
	out := menu.Button{Pressed: pressed, Held: frames > 0}
	if frames > 0 {
		out.HeldFor = float64(frames-1) * dt
	}
	return out
}
