package save

import "testing"

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for boots := uint8(0); boots < 16; boots++ {
		for tunic := uint8(0); tunic < 16; tunic++ {
			for shield := uint8(0); shield < 16; shield++ {
				for sword := uint8(0); sword < 16; sword++ {
					sw, sh, tu, bo := Decode(Encode(boots, tunic, shield, sword))
					if sw != sword || sh != shield || tu != tunic || bo != boots {
						t.Fatalf("round trip (%d,%d,%d,%d) gave (%d,%d,%d,%d)",
							boots, tunic, shield, sword, bo, tu, sh, sw)
					}
				}
			}
		}
	}
}

func TestDecodeKnownWords(t *testing.T) {
	cases := []struct {
		name string
		word uint16
		want Equipment
	}{
		{"kokiri_start", 0x1111, Equipment{Sword: 1, Shield: 1, Tunic: 1, Boots: 1}},
		{"master_sword_kokiri_tunic", 0x0102, Equipment{Sword: 2, Tunic: 1}},
		{"hover_zora_mirror_biggoron", 0x3333, Equipment{Sword: 3, Shield: 3, Tunic: 3, Boots: 3}},
		{"boots_only", 0x2000, Equipment{Boots: 2}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := EquipmentFromWord(c.word)
			if got != c.want {
				t.Fatalf("decode 0x%04X: got %+v, want %+v", c.word, got, c.want)
			}
			if got.Word() != c.word {
				t.Fatalf("re-encode: got 0x%04X, want 0x%04X", got.Word(), c.word)
			}
		})
	}
}

func TestEncodeMasksNibbles(t *testing.T) {
	if got := Encode(0x1F, 0, 0, 0xF2); got != 0x1002 {
		t.Fatalf("expected 0x1002, got 0x%04X", got)
	}
}

func TestEquipmentWith(t *testing.T) {
	e := EquipmentFromWord(0x0102)
	cases := []struct {
		field Field
		value uint8
		want  uint16
	}{
		{FieldSword, 3, 0x0103},
		{FieldShield, 2, 0x0122},
		{FieldTunic, 3, 0x0302},
		{FieldBoots, 2, 0x2102},
		{NumFields, 7, 0x0102},
	}
	for _, c := range cases {
		t.Run(c.field.String(), func(t *testing.T) {
			got := e.With(c.field, c.value)
			if got.Word() != c.want {
				t.Fatalf("With(%v, %d) = 0x%04X, want 0x%04X", c.field, c.value, got.Word(), c.want)
			}
			if c.field < NumFields && got.Get(c.field) != c.value {
				t.Fatalf("Get(%v) = %d, want %d", c.field, got.Get(c.field), c.value)
			}
		})
	}
}

func TestParseField(t *testing.T) {
	for f := Field(0); f < NumFields; f++ {
		got, err := ParseField(f.String())
		if err != nil || got != f {
			t.Fatalf("ParseField(%q) = %v, %v", f.String(), got, err)
		}
	}
	if _, err := ParseField("gauntlets"); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}
