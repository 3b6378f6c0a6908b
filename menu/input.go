package menu

// Button is the per-frame state of one logical button.
type Button struct {
	// Pressed is true only on the frame the button went down.
	Pressed bool
	// Held is true while the button is down, including the pressed frame.
	Held bool
	// HeldFor is the time since the button went down, in the same unit as
	// the tick clock.
	HeldFor float64
}

// Active reports whether the button is pressed or held this frame.
func (b Button) Active() bool {
	return b.Pressed || b.Held
}

// Input is everything the menu reads from the controller in one frame.
type Input struct {
	Left    Button
	Down    Button
	Right   Button
	Up      Button
	Confirm Button
	Cancel  Button
}

// openSide returns the direction that opens the menu this frame. When more
// than one fires, the rightmost wins.
func (in Input) openSide() (Side, bool) {
	side, ok := SideLeft, false
	if in.Left.Pressed {
		side, ok = SideLeft, true
	}
	if in.Down.Pressed {
		side, ok = SideDown, true
	}
	if in.Right.Pressed {
		side, ok = SideRight, true
	}
	return side, ok
}
