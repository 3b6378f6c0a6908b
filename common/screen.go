package common

// Logical screen size the menu layout is authored for.
const (
	BaseWidth  = 320
	BaseHeight = 240
)
