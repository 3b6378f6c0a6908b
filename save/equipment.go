package save

import "fmt"

// Field is one 4-bit slot of the packed equipment word.
type Field uint8

const (
	FieldSword Field = iota
	FieldShield
	FieldTunic
	FieldBoots
	NumFields
)

var fieldNames = [NumFields]string{"sword", "shield", "tunic", "boots"}

func (f Field) String() string {
	if f < NumFields {
		return fieldNames[f]
	}
	return fmt.Sprintf("Field(%d)", uint8(f))
}

// ParseField is the inverse of Field.String.
func ParseField(s string) (Field, error) {
	for i, name := range fieldNames {
		if name == s {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("save: unknown equipment field %q", s)
}

func (f Field) shift() uint {
	return uint(f) * 4
}

// Encode packs the four nibbles as [boots|tunic|shield|sword], sword in the
// low bits. Values above 0xF are masked.
func Encode(boots, tunic, shield, sword uint8) uint16 {
	return uint16(boots&0xF)<<12 |
		uint16(tunic&0xF)<<8 |
		uint16(shield&0xF)<<4 |
		uint16(sword&0xF)
}

// Decode unpacks a word produced by Encode.
func Decode(word uint16) (sword, shield, tunic, boots uint8) {
	sword = uint8(word & 0x000F)
	shield = uint8((word & 0x00F0) >> 4)
	tunic = uint8((word & 0x0F00) >> 8)
	boots = uint8((word & 0xF000) >> 12)
	return sword, shield, tunic, boots
}

// Equipment is the unpacked form of the equipment word.
type Equipment struct {
	Sword  uint8
	Shield uint8
	Tunic  uint8
	Boots  uint8
}

func EquipmentFromWord(word uint16) Equipment {
	var e Equipment
	e.Sword, e.Shield, e.Tunic, e.Boots = Decode(word)
	return e
}

func (e Equipment) Word() uint16 {
	return Encode(e.Boots, e.Tunic, e.Shield, e.Sword)
}

// Get returns the nibble stored for f. Unknown fields read as zero.
func (e Equipment) Get(f Field) uint8 {
	return uint8(e.Word()>>f.shift()) & 0xF
}

// With returns a copy of e with f replaced by v.
func (e Equipment) With(f Field, v uint8) Equipment {
	if f >= NumFields {
		return e
	}
	word := e.Word()&^(0xF<<f.shift()) | uint16(v&0xF)<<f.shift()
	return EquipmentFromWord(word)
}

func (e Equipment) String() string {
	return fmt.Sprintf("0x%04X (sword %d, shield %d, tunic %d, boots %d)",
		e.Word(), e.Sword, e.Shield, e.Tunic, e.Boots)
}
