package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/hylian-modding/OcarinaOfTime-LiveMenu/menu"
)

func TestDefaultPaletteCoversCatalog(t *testing.T) {
	p := DefaultPalette()
	sizes := Sizes(menu.DefaultConfig(), menu.DefaultCatalog())
	for a := range sizes {
		if _, ok := p[a]; !ok {
			t.Fatalf("no palette entry for %q", a)
		}
	}
}

func TestPaletteMerge(t *testing.T) {
	base := Palette{menu.AssetHighlight: color.Black}
	red := color.NRGBA{R: 255, A: 255}
	merged := base.Merge(map[string]color.Color{"red_box": red, "bow": nil})

	if merged[menu.AssetHighlight] != red {
		t.Fatalf("override should win, got %v", merged[menu.AssetHighlight])
	}
	if _, ok := merged["bow"]; ok {
		t.Fatalf("nil colours should be skipped")
	}
	if base[menu.AssetHighlight] != color.Black {
		t.Fatalf("merge must not modify the receiver")
	}
}

func TestSizesFollowLayout(t *testing.T) {
	cfg := menu.DefaultConfig()
	sizes := Sizes(cfg, menu.DefaultCatalog())

	cases := []struct {
		asset menu.Asset
		want  Size
	}{
		{menu.AssetCategory, Size{115, 64}},
		{menu.AssetHighlight, Size{19, 19}},
		{menu.AssetDPadOpenT, Size{40, 24}},
		{"bow", Size{16, 16}},
		{"empty_bottle", Size{16, 16}},
	}
	for _, c := range cases {
		t.Run(string(c.asset), func(t *testing.T) {
			if got := sizes[c.asset]; got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func opaque(img *image.NRGBA, x, y int) bool {
	return img.NRGBAAt(x, y).A != 0
}

func TestShapes(t *testing.T) {
	c := color.NRGBA{R: 200, G: 10, B: 10, A: 255}

	box := Shape(menu.AssetCategory, 115, 64, c)
	if opaque(box, 0, 0) {
		t.Fatalf("category corners should be rounded off")
	}
	if box.NRGBAAt(57, 32) != c {
		t.Fatalf("category centre should be filled, got %v", box.NRGBAAt(57, 32))
	}

	hl := Shape(menu.AssetHighlight, 19, 19, c)
	if !opaque(hl, 0, 0) || !opaque(hl, 1, 1) || opaque(hl, 9, 9) {
		t.Fatalf("highlight should be a hollow double frame")
	}

	pad := Shape(menu.AssetDPadClosedT, 40, 24, c)
	if !opaque(pad, 20, 0) || !opaque(pad, 0, 12) || opaque(pad, 0, 0) {
		t.Fatalf("d-pad should be a cross")
	}
}

func TestRenderPrefersOverrides(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range src.Pix {
		src.Pix[i] = 0xFF
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("encode: %v", err)
	}
	fsys := fstest.MapFS{
		"bow.png":    {Data: buf.Bytes()},
		"hammer.png": {Data: []byte("not a png")},
	}

	sizes := map[menu.Asset]Size{"bow": {16, 16}, "hammer": {16, 16}, "nut": {16, 16}, "zero": {0, 16}}
	out := Render(sizes, Palette{"hammer": color.Black, "nut": color.Black}, fsys)

	if got := out["bow"].NRGBAAt(0, 0); got != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("bow should come from the png, got %v", got)
	}
	if out["bow"].Bounds().Dx() != 16 {
		t.Fatalf("override should be scaled to 16px, got %v", out["bow"].Bounds())
	}
	if out["hammer"] == nil || out["nut"] == nil {
		t.Fatalf("broken or missing overrides should fall back to shapes")
	}
	if _, ok := out["zero"]; ok {
		t.Fatalf("zero sized sprites should be skipped")
	}
}
