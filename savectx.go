package main

import (
	"log"

	"github.com/hylian-modding/OcarinaOfTime-LiveMenu/save"
)

// saveContext is the in-memory game state the standalone host edits. It
// counts refresh requests so the status panel and sounds know a confirm
// landed.
type saveContext struct {
	*save.Memory

	debug      bool
	iconDirty  [save.NumButtons]bool
	equipDirty bool
}

func newSaveContext(snap save.Snapshot, debug bool) *saveContext {
	return &saveContext{Memory: save.NewMemoryFrom(snap), debug: debug}
}

func (s *saveContext) RefreshItemIcon(b save.Button) {
	if b >= save.NumButtons {
		return
	}
	s.iconDirty[b] = true
	if s.debug {
		log.Printf("save: %v now holds 0x%02X", b, s.Item(b))
	}
}

func (s *saveContext) RefreshEquipment() {
	s.equipDirty = true
	if s.debug {
		log.Printf("save: equipment now %v", save.EquipmentFromWord(s.Equipment()))
	}
}

// takeDirty reports and clears pending refreshes.
func (s *saveContext) takeDirty() bool {
	dirty := s.equipDirty
	for b := range s.iconDirty {
		dirty = dirty || s.iconDirty[b]
		s.iconDirty[b] = false
	}
	s.equipDirty = false
	return dirty
}

// giveAll marks every inventory slot and equipment bit as owned. What is
// worn stays as it was.
func (s *saveContext) giveAll() {
	for slot := 0; slot < save.InventorySize; slot++ {
		if s.Inventory(slot) == save.Empty {
			s.SetInventory(slot, byte(slot))
		}
	}
	s.SetOwnedEquipment(save.Encode(0x7, 0x7, 0x7, 0x7))
}

func (s *saveContext) clear() {
	s.Restore(save.EmptySnapshot())
}
