package assets

import (
	"image"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hylian-modding/OcarinaOfTime-LiveMenu/menu"
	"golang.org/x/image/font/basicfont"
)

// Atlas holds one GPU image per asset.
type Atlas struct {
	images map[menu.Asset]*ebiten.Image
}

// NewAtlas renders every sprite cfg and catalog need.
func NewAtlas(cfg menu.Config, catalog menu.Catalog, palette Palette, overrides fs.FS) *Atlas {
	a := &Atlas{images: map[menu.Asset]*ebiten.Image{}}
	a.load(Render(Sizes(cfg, catalog), palette, overrides))
	return a
}

func (a *Atlas) load(imgs map[menu.Asset]*image.NRGBA) {
	for asset, img := range imgs {
		if old, ok := a.images[asset]; ok {
			old.Deallocate()
		}
		a.images[asset] = ebiten.NewImageFromImage(img)
	}
}

// Rebuild replaces the images after a palette or layout change.
func (a *Atlas) Rebuild(cfg menu.Config, catalog menu.Catalog, palette Palette, overrides fs.FS) {
	a.load(Render(Sizes(cfg, catalog), palette, overrides))
}

// Image returns the image for asset, or nil when it was never rendered.
func (a *Atlas) Image(asset menu.Asset) *ebiten.Image {
	return a.images[asset]
}

// Face is the font used by the status panel and debug overlay.
func Face() ebtext.Face {
	return ebtext.NewGoXFace(basicfont.Face7x13)
}
