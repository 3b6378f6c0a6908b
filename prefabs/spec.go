package prefabs

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"github.com/hylian-modding/OcarinaOfTime-LiveMenu/menu"
	"github.com/hylian-modding/OcarinaOfTime-LiveMenu/save"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// LoadSpec decodes filename into a zero T.
func LoadSpec[T any](filename string) (T, error) {
	var spec T
	if err := LoadSpecInto(filename, &spec); err != nil {
		var zero T
		return zero, err
	}
	return spec, nil
}

// LoadSpecInto decodes filename over spec. Keys missing from the file
// keep whatever spec already held.
func LoadSpecInto[T any](filename string, spec *T) error {
	data, err := Load(filename)
	if err != nil {
		return fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, spec); err != nil {
		return fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return nil
}

type ScrollSpec struct {
	Min         float64 `yaml:"min"`
	Max         float64 `yaml:"max"`
	Decay       float64 `yaml:"decay"`
	RepeatDelay float64 `yaml:"repeat_delay"`
}

type DampingSpec struct {
	Min         float64 `yaml:"min"`
	Max         float64 `yaml:"max"`
	Decay       float64 `yaml:"decay"`
	EntryOffset float64 `yaml:"entry_offset"`
	Alpha       float64 `yaml:"alpha"`
	Highlight   float64 `yaml:"highlight"`
}

type AlphaRangeSpec struct {
	Min  int `yaml:"min"`
	Max  int `yaml:"max"`
	Step int `yaml:"step"`
}

type TuningSpec struct {
	Scroll         ScrollSpec     `yaml:"scroll"`
	Damping        DampingSpec    `yaml:"damping"`
	HighlightAlpha AlphaRangeSpec `yaml:"highlight_alpha"`
	DPadAlpha      int            `yaml:"dpad_alpha"`
}

type SizeSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type EntrySpec struct {
	Size    float64 `yaml:"size"`
	Spacing float64 `yaml:"spacing"`
	OffsetY float64 `yaml:"offset_y"`
}

type DPadSpec struct {
	X       float64 `yaml:"x"`
	TopY    float64 `yaml:"top_y"`
	BottomY float64 `yaml:"bottom_y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

// SlotSpec is one row of the slot table. Every field must be given.
type SlotSpec struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Alpha int     `yaml:"alpha"`
}

type LayoutSpec struct {
	OffscreenX    float64          `yaml:"offscreen_x"`
	PeelY         float64          `yaml:"peel_y"`
	Category      SizeSpec         `yaml:"category"`
	Entry         EntrySpec        `yaml:"entry"`
	HighlightSize float64          `yaml:"highlight_size"`
	DPad          DPadSpec         `yaml:"dpad"`
	Slots         map[int]SlotSpec `yaml:"slots"`
}

// MenuSpec is the on-disk form of menu.Config plus the sprite palette.
type MenuSpec struct {
	Tuning  TuningSpec           `yaml:"tuning"`
	Layout  LayoutSpec           `yaml:"layout"`
	Palette map[string]YAMLColor `yaml:"palette"`
}

// MenuSpecFrom mirrors cfg so that decoding a partial file over the result
// only changes the keys the file names.
func MenuSpecFrom(cfg menu.Config) MenuSpec {
	t, l := cfg.Tuning, cfg.Layout

	var spec MenuSpec
	spec.Tuning.Scroll = ScrollSpec{Min: t.ScrollMin, Max: t.ScrollMax, Decay: t.ScrollDecay, RepeatDelay: t.RepeatDelay}
	spec.Tuning.Damping = DampingSpec{
		Min:         t.DampMin,
		Max:         t.DampMax,
		Decay:       t.DampDecay,
		EntryOffset: t.EntryDampingOffset,
		Alpha:       t.AlphaDamping,
		Highlight:   t.HighlightDamping,
	}
	spec.Tuning.HighlightAlpha = AlphaRangeSpec{Min: t.HighlightAlphaMin, Max: t.HighlightAlphaMax, Step: t.HighlightAlphaStep}
	spec.Tuning.DPadAlpha = t.DPadAlpha

	spec.Layout.OffscreenX = l.OffscreenX
	spec.Layout.PeelY = l.PeelY
	spec.Layout.Category = SizeSpec{Width: l.CategoryWidth, Height: l.CategoryHeight}
	spec.Layout.Entry = EntrySpec{Size: l.EntrySize, Spacing: l.EntrySpacing, OffsetY: l.EntryOffsetY}
	spec.Layout.HighlightSize = l.HighlightSize
	spec.Layout.DPad = DPadSpec{X: l.DPadX, TopY: l.DPadTopY, BottomY: l.DPadBottomY, Width: l.DPadWidth, Height: l.DPadHeight}
	spec.Layout.Slots = make(map[int]SlotSpec, menu.NumSlots)
	for s := menu.SlotBelow3; s <= menu.SlotOffscreen; s++ {
		v := l.Slot(s)
		spec.Layout.Slots[int(s)] = SlotSpec{X: v.X, Y: v.Y, Alpha: v.Alpha}
	}
	return spec
}

// Config converts s back into a menu.Config and validates it.
func (s MenuSpec) Config() (menu.Config, error) {
	t, l := s.Tuning, s.Layout
	cfg := menu.Config{
		Tuning: menu.Tuning{
			ScrollMin:          t.Scroll.Min,
			ScrollMax:          t.Scroll.Max,
			ScrollDecay:        t.Scroll.Decay,
			RepeatDelay:        t.Scroll.RepeatDelay,
			DampMin:            t.Damping.Min,
			DampMax:            t.Damping.Max,
			DampDecay:          t.Damping.Decay,
			EntryDampingOffset: t.Damping.EntryOffset,
			AlphaDamping:       t.Damping.Alpha,
			HighlightDamping:   t.Damping.Highlight,
			HighlightAlphaMin:  t.HighlightAlpha.Min,
			HighlightAlphaMax:  t.HighlightAlpha.Max,
			HighlightAlphaStep: t.HighlightAlpha.Step,
			DPadAlpha:          t.DPadAlpha,
		},
		Layout: menu.Layout{
			OffscreenX:     l.OffscreenX,
			PeelY:          l.PeelY,
			CategoryWidth:  l.Category.Width,
			CategoryHeight: l.Category.Height,
			EntrySize:      l.Entry.Size,
			EntrySpacing:   l.Entry.Spacing,
			EntryOffsetY:   l.Entry.OffsetY,
			HighlightSize:  l.HighlightSize,
			DPadX:          l.DPad.X,
			DPadTopY:       l.DPad.TopY,
			DPadBottomY:    l.DPad.BottomY,
			DPadWidth:      l.DPad.Width,
			DPadHeight:     l.DPad.Height,
		},
	}
	for i, v := range l.Slots {
		if i < int(menu.SlotBelow3) || i > int(menu.SlotOffscreen) {
			return menu.Config{}, fmt.Errorf("prefabs: slot %d outside %d..%d", i, menu.SlotBelow3, menu.SlotOffscreen)
		}
		cfg.Layout.SetSlot(menu.SlotIndex(i), menu.Slot{X: v.X, Y: v.Y, Alpha: v.Alpha})
	}
	if err := cfg.Validate(); err != nil {
		return menu.Config{}, fmt.Errorf("prefabs: menu config: %w", err)
	}
	return cfg, nil
}

// LoadMenuSpec reads menu.yaml over the default configuration.
func LoadMenuSpec() (*MenuSpec, error) {
	spec := MenuSpecFrom(menu.DefaultConfig())
	if err := LoadSpecInto(MenuFile, &spec); err != nil {
		return nil, err
	}
	return &spec, nil
}

// LoadMenuConfig is LoadMenuSpec followed by Config.
func LoadMenuConfig() (menu.Config, *MenuSpec, error) {
	spec, err := LoadMenuSpec()
	if err != nil {
		return menu.Config{}, nil, err
	}
	cfg, err := spec.Config()
	if err != nil {
		return menu.Config{}, nil, err
	}
	return cfg, spec, nil
}

type EquipmentSpec struct {
	Sword  uint8 `yaml:"sword"`
	Shield uint8 `yaml:"shield"`
	Tunic  uint8 `yaml:"tunic"`
	Boots  uint8 `yaml:"boots"`
}

func equipmentSpecFrom(word uint16) EquipmentSpec {
	sword, shield, tunic, boots := save.Decode(word)
	return EquipmentSpec{Sword: sword, Shield: shield, Tunic: tunic, Boots: boots}
}

func (e EquipmentSpec) word(key string) (uint16, error) {
	if e.Sword > 0xF || e.Shield > 0xF || e.Tunic > 0xF || e.Boots > 0xF {
		return 0, fmt.Errorf("prefabs: %s %+v does not fit in 4 bits", key, e)
	}
	return save.Encode(e.Boots, e.Tunic, e.Shield, e.Sword), nil
}

// SaveSpec is a starting save state. Inventory is keyed by slot, items by
// button name (b, c_left, c_down, c_right). Owned holds bitmasks of the
// collected gear, Equipment the number of the worn item per field.
// Anything not listed is empty.
type SaveSpec struct {
	Inventory map[int]YAMLByte    `yaml:"inventory"`
	Owned     EquipmentSpec       `yaml:"owned"`
	Equipment EquipmentSpec       `yaml:"equipment"`
	Items     map[string]YAMLByte `yaml:"items"`
}

// Snapshot converts s into save state.
func (s SaveSpec) Snapshot() (save.Snapshot, error) {
	snap := save.EmptySnapshot()
	for slot, v := range s.Inventory {
		if slot < 0 || slot >= save.InventorySize {
			return save.Snapshot{}, fmt.Errorf("prefabs: inventory slot %d outside 0..%d", slot, save.InventorySize-1)
		}
		snap.Inventory[slot] = byte(v)
	}
	var err error
	if snap.Owned, err = s.Owned.word("owned"); err != nil {
		return save.Snapshot{}, err
	}
	if snap.Equipment, err = s.Equipment.word("equipment"); err != nil {
		return save.Snapshot{}, err
	}
	for name, v := range s.Items {
		b, err := save.ParseButton(name)
		if err != nil {
			return save.Snapshot{}, fmt.Errorf("prefabs: %w", err)
		}
		snap.Items[b] = byte(v)
	}
	return snap, nil
}

// SaveSpecFrom is the inverse of Snapshot. Empty slots and buttons are
// left out.
func SaveSpecFrom(snap save.Snapshot) SaveSpec {
	spec := SaveSpec{
		Inventory: map[int]YAMLByte{},
		Owned:     equipmentSpecFrom(snap.Owned),
		Equipment: equipmentSpecFrom(snap.Equipment),
		Items:     map[string]YAMLByte{},
	}
	for slot, v := range snap.Inventory {
		if v != save.Empty {
			spec.Inventory[slot] = YAMLByte(v)
		}
	}
	for b, v := range snap.Items {
		if v != save.Empty {
			spec.Items[save.Button(b).String()] = YAMLByte(v)
		}
	}
	return spec
}

func LoadSaveSnapshot() (save.Snapshot, error) {
	spec, err := LoadSpec[SaveSpec](SaveFile)
	if err != nil {
		return save.Snapshot{}, err
	}
	return spec.Snapshot()
}

// MarshalSave renders snap as save.yaml, slots in ascending order.
func MarshalSave(snap save.Snapshot) ([]byte, error) {
	spec := SaveSpecFrom(snap)

	inv := &yaml.Node{Kind: yaml.MappingNode}
	slots := make([]int, 0, len(spec.Inventory))
	for slot := range spec.Inventory {
		slots = append(slots, slot)
	}
	sort.Ints(slots)
	for _, slot := range slots {
		inv.Content = append(inv.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(slot)},
			spec.Inventory[slot].node(),
		)
	}

	items := &yaml.Node{Kind: yaml.MappingNode}
	for b := save.ButtonB; b < save.NumButtons; b++ {
		if v, ok := spec.Items[b.String()]; ok {
			items.Content = append(items.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: b.String()},
				v.node(),
			)
		}
	}

	var owned, equip yaml.Node
	if err := owned.Encode(spec.Owned); err != nil {
		return nil, fmt.Errorf("prefabs: encode owned: %w", err)
	}
	if err := equip.Encode(spec.Equipment); err != nil {
		return nil, fmt.Errorf("prefabs: encode equipment: %w", err)
	}

	doc := &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
		{Kind: yaml.ScalarNode, Value: "inventory"}, inv,
		{Kind: yaml.ScalarNode, Value: "owned"}, &owned,
		{Kind: yaml.ScalarNode, Value: "equipment"}, &equip,
		{Kind: yaml.ScalarNode, Value: "items"}, items,
	}}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("prefabs: marshal save: %w", err)
	}
	return out, nil
}

// YAMLByte is a byte written as 0x-prefixed hex.
type YAMLByte byte

func (b *YAMLByte) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("byte must be a scalar")
	}
	v, err := strconv.ParseUint(value.Value, 0, 8)
	if err != nil {
		return fmt.Errorf("invalid byte %q: %w", value.Value, err)
	}
	*b = YAMLByte(v)
	return nil
}

func (b YAMLByte) MarshalYAML() (any, error) {
	return b.node(), nil
}

func (b YAMLByte) node() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprintf("0x%02X", byte(b))}
}

// YAMLColor accepts #RRGGBB, #RRGGBBAA or an SVG colour name.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.Color = named
		return nil
	}

	s, ok := strings.CutPrefix(value.Value, "#")
	if !ok || (len(s) != 6 && len(s) != 8) {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}
	if len(s) == 6 {
		v = v<<8 | 0xFF
	}
	c.Color = color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	return nil
}
