// Package save is the narrow surface through which the menu reads and
// writes game state: the inventory slot array, the owned and equipped
// equipment words and the item assigned to each action button.
package save

import "fmt"

// Empty marks an inventory slot or button with nothing in it.
const Empty byte = 0xFF

// InventorySize is the number of item slots in the inventory array.
const InventorySize = 24

// Button indexes the current-item array. B holds the sword, the C buttons
// hold whatever the player assigns from the menu.
type Button uint8

const (
	ButtonB Button = iota
	ButtonCLeft
	ButtonCDown
	ButtonCRight
	NumButtons
)

var buttonNames = [NumButtons]string{"b", "c_left", "c_down", "c_right"}

func (b Button) String() string {
	if b < NumButtons {
		return buttonNames[b]
	}
	return fmt.Sprintf("Button(%d)", uint8(b))
}

// ParseButton is the inverse of Button.String.
func ParseButton(s string) (Button, error) {
	for i, name := range buttonNames {
		if name == s {
			return Button(i), nil
		}
	}
	return 0, fmt.Errorf("save: unknown button %q", s)
}

// Context is implemented by whatever owns the game state. Accessors never
// fail: reads outside the arrays return Empty and writes outside them are
// dropped.
type Context interface {
	Inventory(slot int) byte
	// OwnedEquipment is the gear the player has collected: one bit per
	// item in each nibble (1, 2 and 4 for the first, second and third).
	OwnedEquipment() uint16
	// Equipment is the gear being worn: each nibble holds the number
	// (1..3) of the equipped item, or 0.
	Equipment() uint16
	SetEquipment(word uint16)
	Item(b Button) byte
	SetItem(b Button, code byte)
}

// Refresher is optionally implemented by a Context that needs to redraw
// button icons or re-dress the player after the menu writes to it.
type Refresher interface {
	RefreshItemIcon(b Button)
	RefreshEquipment()
}

// Snapshot is a plain copy of everything a Context holds.
type Snapshot struct {
	Inventory [InventorySize]byte
	Owned     uint16
	Equipment uint16
	Items     [NumButtons]byte
}

// EmptySnapshot owns nothing and has nothing equipped.
func EmptySnapshot() Snapshot {
	var s Snapshot
	for i := range s.Inventory {
		s.Inventory[i] = Empty
	}
	for i := range s.Items {
		s.Items[i] = Empty
	}
	return s
}

// Memory is an in-process Context backed by fixed arrays.
type Memory struct {
	state Snapshot
}

func NewMemory() *Memory {
	return &Memory{state: EmptySnapshot()}
}

// NewMemoryFrom returns a Memory holding a copy of s.
func NewMemoryFrom(s Snapshot) *Memory {
	return &Memory{state: s}
}

func (m *Memory) Inventory(slot int) byte {
	if slot < 0 || slot >= InventorySize {
		return Empty
	}
	return m.state.Inventory[slot]
}

// SetInventory stores v in slot. Use Empty to take an item away.
func (m *Memory) SetInventory(slot int, v byte) {
	if slot < 0 || slot >= InventorySize {
		return
	}
	m.state.Inventory[slot] = v
}

func (m *Memory) OwnedEquipment() uint16 {
	return m.state.Owned
}

// SetOwnedEquipment replaces the owned-gear bitmask word.
func (m *Memory) SetOwnedEquipment(word uint16) {
	m.state.Owned = word
}

func (m *Memory) Equipment() uint16 {
	return m.state.Equipment
}

func (m *Memory) SetEquipment(word uint16) {
	m.state.Equipment = word
}

func (m *Memory) Item(b Button) byte {
	if b >= NumButtons {
		return Empty
	}
	return m.state.Items[b]
}

func (m *Memory) SetItem(b Button, code byte) {
	if b >= NumButtons {
		return
	}
	m.state.Items[b] = code
}

func (m *Memory) Snapshot() Snapshot {
	return m.state
}

func (m *Memory) Restore(s Snapshot) {
	m.state = s
}
