package save

import "testing"

func TestMemoryStartsEmpty(t *testing.T) {
	m := NewMemory()
	for slot := 0; slot < InventorySize; slot++ {
		if m.Inventory(slot) != Empty {
			t.Fatalf("slot %d should start empty", slot)
		}
	}
	for b := ButtonB; b < NumButtons; b++ {
		if m.Item(b) != Empty {
			t.Fatalf("button %v should start empty", b)
		}
	}
	if m.Equipment() != 0 || m.OwnedEquipment() != 0 {
		t.Fatalf("expected no equipment, got 0x%04X owned 0x%04X", m.Equipment(), m.OwnedEquipment())
	}
}

func TestMemoryOutOfRange(t *testing.T) {
	m := NewMemory()
	m.SetInventory(-1, 3)
	m.SetInventory(InventorySize, 3)
	m.SetItem(NumButtons, 0x03)

	if m.Inventory(-1) != Empty || m.Inventory(InventorySize) != Empty {
		t.Fatalf("out of range reads should return Empty")
	}
	if m.Item(NumButtons) != Empty {
		t.Fatalf("out of range button should read Empty")
	}
	if m.Snapshot() != EmptySnapshot() {
		t.Fatalf("out of range writes must not change state")
	}
}

func TestMemorySnapshotRestore(t *testing.T) {
	m := NewMemory()
	m.SetInventory(3, 0x03)
	m.SetOwnedEquipment(0x0377)
	m.SetEquipment(0x0102)
	m.SetItem(ButtonCLeft, 0x03)

	snap := m.Snapshot()
	other := NewMemoryFrom(snap)
	if other.Inventory(3) != 0x03 || other.Equipment() != 0x0102 || other.OwnedEquipment() != 0x0377 || other.Item(ButtonCLeft) != 0x03 {
		t.Fatalf("restored memory differs: %+v", other.Snapshot())
	}

	m.Restore(EmptySnapshot())
	if m.Inventory(3) != Empty {
		t.Fatalf("restore should replace state")
	}
	if other.Inventory(3) != 0x03 {
		t.Fatalf("snapshots must be copies")
	}
}

func TestParseButton(t *testing.T) {
	for b := ButtonB; b < NumButtons; b++ {
		got, err := ParseButton(b.String())
		if err != nil || got != b {
			t.Fatalf("ParseButton(%q) = %v, %v", b.String(), got, err)
		}
	}
	if _, err := ParseButton("z"); err == nil {
		t.Fatalf("expected error for unknown button")
	}
}

func TestOwnedAndEquippedAreSeparate(t *testing.T) {
	m := NewMemory()
	m.SetOwnedEquipment(Encode(0, 0, 0, 0b111))
	m.SetEquipment(Encode(0, 0, 0, 2))

	if m.OwnedEquipment() != 0x0007 {
		t.Fatalf("owned word changed by equip write: 0x%04X", m.OwnedEquipment())
	}
	if m.Equipment() != 0x0002 {
		t.Fatalf("equipped word changed by owned write: 0x%04X", m.Equipment())
	}
}
