package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hylian-modding/OcarinaOfTime-LiveMenu/assets"
	"github.com/hylian-modding/OcarinaOfTime-LiveMenu/menu"
	"github.com/hylian-modding/OcarinaOfTime-LiveMenu/save"
)

// StatusUI is the debug panel in the top-right corner: the raw equipment
// word, what it decodes to, the button assignments and the menu's
// navigation state.
type StatusUI struct {
	ui *ebitenui.UI

	equipment *widget.Text
	fields    *widget.Text
	buttons   [save.NumButtons]*widget.Text
	nav       *widget.Text
}

func NewStatusUI() *StatusUI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 170})

	var face ebtext.Face = assets.Face()
	textColor := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	label := func() *widget.Text {
		return widget.NewText(widget.TextOpts.Text("", &face, textColor))
	}

	s := &StatusUI{
		equipment: label(),
		fields:    label(),
		nav:       label(),
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(2),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 4, Bottom: 4, Left: 6, Right: 6}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionEnd, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	panel.AddChild(s.equipment)
	panel.AddChild(s.fields)
	for b := range s.buttons {
		s.buttons[b] = label()
		panel.AddChild(s.buttons[b])
	}
	panel.AddChild(s.nav)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	s.ui = &ebitenui.UI{Container: root}
	return s
}

// Refresh rewrites the labels from the current state.
func (s *StatusUI) Refresh(m *menu.Menu, ctx save.Context) {
	word := ctx.Equipment()
	s.equipment.Label = fmt.Sprintf("equip 0x%04X owned 0x%04X", word, ctx.OwnedEquipment())
	s.fields.Label = save.EquipmentFromWord(word).String()
	for b := range s.buttons {
		btn := save.Button(b)
		s.buttons[b].Label = fmt.Sprintf("%-7s %s", btn, itemName(m.Catalog(), btn, ctx.Item(btn)))
	}

	nav := fmt.Sprintf("%v %v[%d] d=%.0f", m.State(), m.ActiveCategory(), m.ActiveIndex(), m.Damping())
	if e, ok := m.Selected(); ok && m.IsOpen() {
		nav += " " + e.Item.Name
	}
	s.nav.Label = nav
}

func (s *StatusUI) Update() {
	s.ui.Update()
}

func (s *StatusUI) Draw(screen *ebiten.Image) {
	s.ui.Draw(screen)
}

// itemName finds the catalogue item that writes code to button b.
func itemName(c menu.Catalog, b save.Button, code byte) string {
	if code == save.Empty {
		return "-"
	}
	for _, items := range c {
		for _, it := range items {
			a := it.Action
			switch {
			case a.Kind == menu.ActionSword && b == save.ButtonB && a.Code == code,
				a.Kind == menu.ActionAssign && b != save.ButtonB && a.Code == code:
				return it.Name
			}
		}
	}
	return fmt.Sprintf("0x%02X", code)
}
