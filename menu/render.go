package menu

// Asset names a texture. Hosts map assets to images however they like.
type Asset string

const (
	AssetCategory    Asset = "long_black_box"
	AssetHighlight   Asset = "red_box"
	AssetDPadClosedB Asset = "dpad_0"
	AssetDPadClosedT Asset = "dpad_1"
	AssetDPadOpenT   Asset = "dpad_2"
	AssetDPadOpenB   Asset = "dpad_3"
)

// Anchor says which point of a sprite its position refers to.
type Anchor uint8

const (
	AnchorCenter Anchor = iota
	AnchorTopLeft
)

// Sprite is the static part of something drawn on screen.
type Sprite struct {
	Asset  Asset
	Width  float64
	Height float64
	Anchor Anchor
}

// Origin returns the top-left corner of s when positioned at (x, y).
func (s Sprite) Origin(x, y float64) (float64, float64) {
	if s.Anchor == AnchorCenter {
		return x - s.Width/2, y - s.Height/2
	}
	return x, y
}

// Renderer issues one textured quad per call.
type Renderer interface {
	DrawSprite(s Sprite, x, y float64, alpha uint8)
}
