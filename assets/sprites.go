// Package assets builds the images, font and sounds the menu host draws
// and plays. Sprites are generated from a palette so the binary carries no
// art; PNG files dropped into an override directory replace them.
package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"log"
	"path"

	"github.com/hylian-modding/OcarinaOfTime-LiveMenu/menu"
	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
)

// Palette maps each asset to its base colour.
type Palette map[menu.Asset]color.Color

// DefaultPalette covers every asset of the default catalogue.
func DefaultPalette() Palette {
	p := Palette{
		menu.AssetCategory:    color.NRGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xFF},
		menu.AssetHighlight:   color.NRGBA{R: 0xE0, G: 0x20, B: 0x20, A: 0xFF},
		menu.AssetDPadClosedB: colornames.Lightgray,
		menu.AssetDPadClosedT: colornames.Lightgray,
		menu.AssetDPadOpenT:   color.NRGBA{R: 0xF0, G: 0xD0, B: 0x40, A: 0xFF},
		menu.AssetDPadOpenB:   color.NRGBA{R: 0xF0, G: 0xD0, B: 0x40, A: 0xFF},
	}
	for _, items := range menu.DefaultCatalog() {
		for _, it := range items {
			if _, ok := p[it.Asset]; !ok {
				p[it.Asset] = colornames.Gray
			}
		}
	}
	return p
}

// Merge returns a copy of p with override's entries on top.
func (p Palette) Merge(override map[string]color.Color) Palette {
	out := make(Palette, len(p)+len(override))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range override {
		if v != nil {
			out[menu.Asset(k)] = v
		}
	}
	return out
}

// Shape renders asset as a w×h image.
func Shape(asset menu.Asset, w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	switch asset {
	case menu.AssetCategory:
		fillRounded(img, c, colornames.Dimgray, 6)
	case menu.AssetHighlight:
		strokeRect(img, c)
		inner := img.SubImage(image.Rect(1, 1, w-1, h-1)).(*image.NRGBA)
		strokeRect(inner, c)
	case menu.AssetDPadClosedT, menu.AssetDPadOpenT, menu.AssetDPadClosedB, menu.AssetDPadOpenB:
		fillCross(img, c)
	default:
		fillRounded(img, c, colornames.Black, 3)
	}
	return img
}

// fillRounded fills a rounded rectangle with c and paints its outermost
// ring of pixels with edge.
func fillRounded(img *image.NRGBA, c, edge color.Color, r int) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	in := func(x, y int) bool {
		return x >= 0 && y >= 0 && x < w && y < h && insideRounded(x, y, w, h, r)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !in(x, y) {
				continue
			}
			if in(x-1, y) && in(x+1, y) && in(x, y-1) && in(x, y+1) {
				img.Set(b.Min.X+x, b.Min.Y+y, c)
			} else {
				img.Set(b.Min.X+x, b.Min.Y+y, edge)
			}
		}
	}
}

func insideRounded(x, y, w, h, r int) bool {
	r = min(r, w/2, h/2)
	cx := min(max(x, r), w-1-r)
	cy := min(max(y, r), h-1-r)
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}

func strokeRect(img *image.NRGBA, c color.Color) {
	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		img.Set(x, b.Min.Y, c)
		img.Set(x, b.Max.Y-1, c)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		img.Set(b.Min.X, y, c)
		img.Set(b.Max.X-1, y, c)
	}
}

func fillCross(img *image.NRGBA, c color.Color) {
	b := img.Bounds()
	arm := max(b.Dy()/3, 1)
	midX, midY := b.Dx()/2, b.Dy()/2
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			if abs(x-midX) <= arm/2 || abs(y-midY) <= arm/2 {
				img.Set(b.Min.X+x, b.Min.Y+y, c)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// LoadOverride decodes name.png from fsys and scales it to w×h.
func LoadOverride(fsys fs.FS, asset menu.Asset, w, h int) (*image.NRGBA, error) {
	name := path.Clean(string(asset)) + ".png"
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", name, err)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst, nil
}

// Size is a sprite's pixel footprint.
type Size struct{ W, H int }

// Sizes returns the pixel size of every asset drawn with cfg and catalog.
func Sizes(cfg menu.Config, catalog menu.Catalog) map[menu.Asset]Size {
	l := cfg.Layout
	out := map[menu.Asset]Size{
		menu.AssetCategory:  {int(l.CategoryWidth), int(l.CategoryHeight)},
		menu.AssetHighlight: {int(l.HighlightSize), int(l.HighlightSize)},
	}
	for _, a := range []menu.Asset{menu.AssetDPadClosedB, menu.AssetDPadClosedT, menu.AssetDPadOpenT, menu.AssetDPadOpenB} {
		out[a] = Size{int(l.DPadWidth), int(l.DPadHeight)}
	}
	for _, items := range catalog {
		for _, it := range items {
			out[it.Asset] = Size{int(l.EntrySize), int(l.EntrySize)}
		}
	}
	return out
}

// Render builds every sprite, preferring overrides from fsys when it is
// not nil.
func Render(sizes map[menu.Asset]Size, palette Palette, fsys fs.FS) map[menu.Asset]*image.NRGBA {
	out := make(map[menu.Asset]*image.NRGBA, len(sizes))
	for a, s := range sizes {
		if s.W <= 0 || s.H <= 0 {
			continue
		}
		if fsys != nil {
			img, err := LoadOverride(fsys, a, s.W, s.H)
			if err == nil {
				out[a] = img
				continue
			}
			if !errors.Is(err, fs.ErrNotExist) {
				log.Printf("assets: %v", err)
			}
		}
		c, ok := palette[a]
		if !ok {
			c = colornames.Magenta
		}
		out[a] = Shape(a, s.W, s.H, c)
	}
	return out
}
