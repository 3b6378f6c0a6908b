package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hylian-modding/OcarinaOfTime-LiveMenu/assets"
	"github.com/hylian-modding/OcarinaOfTime-LiveMenu/menu"
)

// spriteRenderer draws menu sprites from the atlas onto the current frame.
type spriteRenderer struct {
	atlas  *assets.Atlas
	target *ebiten.Image
	op     ebiten.DrawImageOptions
}

func (r *spriteRenderer) DrawSprite(s menu.Sprite, x, y float64, alpha uint8) {
	if r.target == nil || alpha == 0 {
		return
	}
	img := r.atlas.Image(s.Asset)
	if img == nil {
		return
	}

	r.op.GeoM.Reset()
	r.op.ColorScale.Reset()

	b := img.Bounds()
	if s.Width > 0 && s.Height > 0 && (b.Dx() != int(s.Width) || b.Dy() != int(s.Height)) {
		r.op.GeoM.Scale(s.Width/float64(b.Dx()), s.Height/float64(b.Dy()))
	}
	ox, oy := s.Origin(x, y)
	r.op.GeoM.Translate(ox, oy)
	r.op.ColorScale.ScaleAlpha(float32(alpha) / 255)
	r.target.DrawImage(img, &r.op)
}
