package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/hylian-modding/OcarinaOfTime-LiveMenu/menu"
	"github.com/hylian-modding/OcarinaOfTime-LiveMenu/save"
	"gopkg.in/yaml.v3"
)

func useDir(t *testing.T) string {
	t.Helper()
	prev := Dir
	Dir = t.TempDir()
	t.Cleanup(func() { Dir = prev })
	return Dir
}

func TestEmbeddedMenuMatchesDefaults(t *testing.T) {
	useDir(t)
	cfg, spec, err := LoadMenuConfig()
	if err != nil {
		t.Fatalf("load menu config: %v", err)
	}
	if cfg != menu.DefaultConfig() {
		t.Fatalf("embedded menu.yaml drifted from defaults:\n%+v\n%+v", cfg, menu.DefaultConfig())
	}

	for _, items := range menu.DefaultCatalog() {
		for _, it := range items {
			if _, ok := spec.Palette[string(it.Asset)]; !ok {
				t.Fatalf("palette has no colour for %q", it.Asset)
			}
		}
	}
}

func TestMenuOverrideKeepsUnlistedKeys(t *testing.T) {
	dir := useDir(t)
	data := []byte("tuning:\n  damping:\n    min: 5\nlayout:\n  slots:\n    0: {x: 100, y: 90, alpha: 255}\n")
	if err := os.WriteFile(filepath.Join(dir, MenuFile), data, 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}

	cfg, _, err := LoadMenuConfig()
	if err != nil {
		t.Fatalf("load menu config: %v", err)
	}
	def := menu.DefaultConfig()
	if cfg.Tuning.DampMin != 5 || cfg.Tuning.DampMax != def.Tuning.DampMax {
		t.Fatalf("expected only damping min to change, got %+v", cfg.Tuning)
	}
	if s := cfg.Layout.Slot(menu.SlotSelected); s != (menu.Slot{X: 100, Y: 90, Alpha: 255}) {
		t.Fatalf("selected slot not overridden: %+v", s)
	}
	if cfg.Layout.Slot(menu.SlotAbove1) != def.Layout.Slot(menu.SlotAbove1) {
		t.Fatalf("other slots should keep their defaults")
	}
}

func TestMenuOverrideRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"bad_bounds", "tuning:\n  scroll:\n    min: 2\n"},
		{"bad_slot", "layout:\n  slots:\n    5: {x: 0, y: 0, alpha: 0}\n"},
		{"bad_colour", "palette:\n  red_box: notacolour\n"},
		{"bad_yaml", "tuning: [\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dir := useDir(t)
			if err := os.WriteFile(filepath.Join(dir, MenuFile), []byte(c.data), 0o644); err != nil {
				t.Fatalf("write override: %v", err)
			}
			if _, _, err := LoadMenuConfig(); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestEmbeddedSave(t *testing.T) {
	useDir(t)
	snap, err := LoadSaveSnapshot()
	if err != nil {
		t.Fatalf("load save: %v", err)
	}
	if snap.Inventory[3] != 0x03 || snap.Inventory[5] != save.Empty {
		t.Fatalf("unexpected inventory %v", snap.Inventory)
	}
	if got := save.EquipmentFromWord(snap.Owned); got != (save.Equipment{Sword: 3, Shield: 3, Tunic: 1, Boots: 3}) {
		t.Fatalf("unexpected owned gear %v", got)
	}
	if got := save.EquipmentFromWord(snap.Equipment); got != (save.Equipment{Sword: 1, Shield: 1, Tunic: 1, Boots: 1}) {
		t.Fatalf("unexpected equipment %v", got)
	}
	if snap.Items[save.ButtonB] != 0x3B || snap.Items[save.ButtonCRight] != save.Empty {
		t.Fatalf("unexpected items %v", snap.Items)
	}
}

func TestSaveSpecRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		spec SaveSpec
	}{
		{"slot_range", SaveSpec{Inventory: map[int]YAMLByte{24: 1}}},
		{"nibble_overflow", SaveSpec{Equipment: EquipmentSpec{Boots: 16}}},
		{"owned_overflow", SaveSpec{Owned: EquipmentSpec{Sword: 16}}},
		{"unknown_button", SaveSpec{Items: map[string]YAMLByte{"start": 1}}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := c.spec.Snapshot(); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestMarshalSaveRoundTrip(t *testing.T) {
	mem := save.NewMemory()
	mem.SetInventory(0, 0x00)
	mem.SetInventory(17, 0x13)
	mem.SetOwnedEquipment(save.Encode(2, 1, 4, 7))
	mem.SetEquipment(save.Encode(2, 1, 3, 1))
	mem.SetItem(save.ButtonCDown, 0x13)

	data, err := MarshalSave(mem.Snapshot())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var spec SaveSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		t.Fatalf("unmarshal %s: %v", data, err)
	}
	got, err := spec.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if got != mem.Snapshot() {
		t.Fatalf("round trip mismatch:\n%s", data)
	}
}

func TestWriteOverridesEmbedded(t *testing.T) {
	useDir(t)
	if _, ok := ModTime(SaveFile); ok {
		t.Fatalf("no override should exist yet")
	}

	snap := save.EmptySnapshot()
	snap.Items[save.ButtonB] = 0x3D
	data, err := MarshalSave(snap)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := Write(SaveFile, data); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, ok := ModTime(SaveFile); !ok {
		t.Fatalf("override should exist after Write")
	}

	got, err := LoadSaveSnapshot()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != snap {
		t.Fatalf("expected override to win, got %+v", got)
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.NRGBA
	}{
		{"'#ff8000'", color.NRGBA{R: 0xFF, G: 0x80, A: 0xFF}},
		{"'#10203040'", color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			var got YAMLColor
			if err := yaml.Unmarshal([]byte(c.in), &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.Color != c.want {
				t.Fatalf("expected %v, got %v", c.want, got.Color)
			}
		})
	}

	var named YAMLColor
	if err := yaml.Unmarshal([]byte("Gold"), &named); err != nil {
		t.Fatalf("unmarshal name: %v", err)
	}
	if r, g, b, _ := named.RGBA(); r>>8 != 0xFF || g>>8 != 0xD7 || b != 0 {
		t.Fatalf("expected gold, got %v", named.Color)
	}
}

func TestCleanPrefabPath(t *testing.T) {
	useDir(t)
	cases := map[string]string{
		"":                 "",
		"menu.yaml":        "menu.yaml",
		Dir + "/save.yaml": "save.yaml",
		"/tmp/x/menu.yaml": "menu.yaml",
	}
	for in, want := range cases {
		if got := cleanPrefabPath(in); got != want {
			t.Fatalf("cleanPrefabPath(%q) = %q, want %q", in, got, want)
		}
	}
}
