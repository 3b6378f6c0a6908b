package menu

import (
	"fmt"

	"github.com/hylian-modding/OcarinaOfTime-LiveMenu/save"
)

// BackingKind says where an item's ownership is read from.
type BackingKind uint8

const (
	// BackingInventory items are owned when their inventory slot is not
	// save.Empty.
	BackingInventory BackingKind = iota
	// BackingEquipment items are owned when their bit is set in one nibble
	// of the owned-equipment word.
	BackingEquipment
)

// Backing ties an item to the game state that decides its visibility.
type Backing struct {
	Kind  BackingKind
	Slot  int
	Field save.Field
	Bit   uint8
}

func InventorySlot(slot int) Backing {
	return Backing{Kind: BackingInventory, Slot: slot}
}

func EquipmentBit(f save.Field, bit uint8) Backing {
	return Backing{Kind: BackingEquipment, Field: f, Bit: bit}
}

// Visible evaluates the backing against ctx.
func (b Backing) Visible(ctx save.Context) bool {
	switch b.Kind {
	case BackingInventory:
		return ctx.Inventory(b.Slot) != save.Empty
	case BackingEquipment:
		owned := save.EquipmentFromWord(ctx.OwnedEquipment())
		return owned.Get(b.Field)&b.Bit != 0
	}
	return false
}

// ActionKind says what confirming an item writes.
type ActionKind uint8

const (
	// ActionAssign puts Code on the C button the menu was opened with.
	ActionAssign ActionKind = iota
	// ActionSword puts Code on the B button and equips Value as sword.
	ActionSword
	// ActionEquip writes Value into Field of the equipped word. The owned
	// word is never written.
	ActionEquip
)

type Action struct {
	Kind  ActionKind
	Code  byte
	Field save.Field
	Value uint8
}

func Assign(code byte) Action {
	return Action{Kind: ActionAssign, Code: code}
}

func Sword(code byte, value uint8) Action {
	return Action{Kind: ActionSword, Code: code, Field: save.FieldSword, Value: value}
}

func Equip(f save.Field, value uint8) Action {
	return Action{Kind: ActionEquip, Field: f, Value: value}
}

// Apply writes the action to ctx. b is the C button the menu belongs to.
func (a Action) Apply(ctx save.Context, b save.Button) {
	switch a.Kind {
	case ActionAssign:
		ctx.SetItem(b, a.Code)
	case ActionSword:
		ctx.SetItem(save.ButtonB, a.Code)
		equip(ctx, a.Field, a.Value)
	case ActionEquip:
		equip(ctx, a.Field, a.Value)
	}

	if r, ok := ctx.(save.Refresher); ok {
		r.RefreshItemIcon(b)
		r.RefreshItemIcon(save.ButtonB)
		r.RefreshEquipment()
	}
}

func equip(ctx save.Context, f save.Field, v uint8) {
	eq := save.EquipmentFromWord(ctx.Equipment())
	ctx.SetEquipment(eq.With(f, v).Word())
}

// Item is one row of the catalogue.
type Item struct {
	Name    string
	Asset   Asset
	Backing Backing
	Action  Action
}

// Catalog lists the items of each category in display order.
type Catalog [NumCategories][]Item

// Validate checks every category holds between 1 and MaxEntries items.
func (c Catalog) Validate() error {
	for id, items := range c {
		if len(items) == 0 || len(items) > MaxEntries {
			return fmt.Errorf("menu: category %v has %d items, want 1..%d", CategoryID(id), len(items), MaxEntries)
		}
	}
	return nil
}

// Lengths returns the entry count of each category.
func (c Catalog) Lengths() [NumCategories]int {
	var out [NumCategories]int
	for id, items := range c {
		out[id] = len(items)
	}
	return out
}

// Find returns the position of the item with the given name.
func (c Catalog) Find(name string) (CategoryID, int, bool) {
	for id, items := range c {
		for i, it := range items {
			if it.Name == name {
				return CategoryID(id), i, true
			}
		}
	}
	return 0, 0, false
}

// Inventory slots used by the default catalogue.
const (
	SlotDekuStick   = 0
	SlotDekuNut     = 1
	SlotBomb        = 2
	SlotBow         = 3
	SlotFireArrow   = 4
	SlotDinsFire    = 5
	SlotSlingshot   = 6
	SlotBombchu     = 8
	SlotHookshot    = 9
	SlotIceArrow    = 10
	SlotFaroresWind = 11
	SlotBoomerang   = 12
	SlotHammer      = 15
	SlotLightArrow  = 16
	SlotNayrusLove  = 17
	SlotBottle1     = 18
	SlotBottle2     = 19
	SlotBottle3     = 20
	SlotBottle4     = 21
)

// DefaultCatalog is the stock item layout: 8 projectiles, 6 weapons,
// 6 armor pieces, 5 hand items, 3 spells and 4 bottles.
func DefaultCatalog() Catalog {
	return Catalog{
		CategoryProjectile: {
			{"bow", "bow", InventorySlot(SlotBow), Assign(0x03)},
			{"fire_arrow", "fire_arrow", InventorySlot(SlotFireArrow), Assign(0x38)},
			{"ice_arrow", "ice_arrow", InventorySlot(SlotIceArrow), Assign(0x39)},
			{"light_arrow", "light_arrow", InventorySlot(SlotLightArrow), Assign(0x3A)},
			{"hookshot", "hookshot", InventorySlot(SlotHookshot), Assign(0x0A)},
			{"longshot", "longshot", InventorySlot(SlotHookshot), Assign(0x0B)},
			{"slingshot", "slingshot", InventorySlot(SlotSlingshot), Assign(0x06)},
			{"boomerang", "boomerang", InventorySlot(SlotBoomerang), Assign(0x0E)},
		},
		CategoryWeapon: {
			{"kokiri_sword", "kokiri_sword", EquipmentBit(save.FieldSword, 0b001), Sword(0x3B, 1)},
			{"master_sword", "master_sword", EquipmentBit(save.FieldSword, 0b010), Sword(0x3C, 2)},
			{"biggoron_sword", "biggoron_sword", EquipmentBit(save.FieldSword, 0b100), Sword(0x3D, 3)},
			{"deku_shield", "deku_shield", EquipmentBit(save.FieldShield, 0b001), Equip(save.FieldShield, 1)},
			{"hylian_shield", "hylian_shield", EquipmentBit(save.FieldShield, 0b010), Equip(save.FieldShield, 2)},
			{"mirror_shield", "mirror_shield", EquipmentBit(save.FieldShield, 0b100), Equip(save.FieldShield, 3)},
		},
		CategoryArmor: {
			{"kokiri_tunic", "kokiri_tunic", EquipmentBit(save.FieldTunic, 0b001), Equip(save.FieldTunic, 1)},
			{"goron_tunic", "goron_tunic", EquipmentBit(save.FieldTunic, 0b010), Equip(save.FieldTunic, 2)},
			{"zora_tunic", "zora_tunic", EquipmentBit(save.FieldTunic, 0b100), Equip(save.FieldTunic, 3)},
			{"kokiri_boots", "kokiri_boots", EquipmentBit(save.FieldBoots, 0b001), Equip(save.FieldBoots, 1)},
			{"iron_boots", "iron_boots", EquipmentBit(save.FieldBoots, 0b010), Equip(save.FieldBoots, 2)},
			{"hover_boots", "hover_boots", EquipmentBit(save.FieldBoots, 0b100), Equip(save.FieldBoots, 3)},
		},
		CategoryHand: {
			{"hammer", "hammer", InventorySlot(SlotHammer), Assign(0x11)},
			{"bombs", "bombs", InventorySlot(SlotBomb), Assign(0x02)},
			{"bombchu", "bombchu", InventorySlot(SlotBombchu), Assign(0x09)},
			{"deku_stick", "deku_stick", InventorySlot(SlotDekuStick), Assign(0x00)},
			{"deku_nut", "deku_nut", InventorySlot(SlotDekuNut), Assign(0x01)},
		},
		CategoryMagic: {
			{"nayrus_love", "nayrus_love", InventorySlot(SlotNayrusLove), Assign(0x13)},
			{"dins_fire", "dins_fire", InventorySlot(SlotDinsFire), Assign(0x05)},
			{"farores_wind", "farores_wind", InventorySlot(SlotFaroresWind), Assign(0x0D)},
		},
		CategoryBottle: {
			{"bottle_1", "empty_bottle", InventorySlot(SlotBottle1), Assign(0x14)},
			{"bottle_2", "empty_bottle", InventorySlot(SlotBottle2), Assign(0x15)},
			{"bottle_3", "empty_bottle", InventorySlot(SlotBottle3), Assign(0x16)},
			{"bottle_4", "empty_bottle", InventorySlot(SlotBottle4), Assign(0x17)},
		},
	}
}
