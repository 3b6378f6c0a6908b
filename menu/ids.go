package menu

import (
	"fmt"

	"github.com/hylian-modding/OcarinaOfTime-LiveMenu/save"
)

// CategoryID names one of the six item groups. The numeric order is also
// the top-to-bottom order of the ring.
type CategoryID uint8

const (
	CategoryProjectile CategoryID = iota
	CategoryWeapon
	CategoryArmor
	CategoryHand
	CategoryMagic
	CategoryBottle
	NumCategories
)

// MaxEntries bounds the number of items a category may hold.
const MaxEntries = 8

var categoryNames = [NumCategories]string{"projectile", "weapon", "armor", "hand", "magic", "bottle"}

func (c CategoryID) String() string {
	if c < NumCategories {
		return categoryNames[c]
	}
	return fmt.Sprintf("CategoryID(%d)", uint8(c))
}

func ParseCategory(s string) (CategoryID, error) {
	for i, name := range categoryNames {
		if name == s {
			return CategoryID(i), nil
		}
	}
	return 0, fmt.Errorf("menu: unknown category %q", s)
}

// State is Closed or Open.
type State uint8

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Side remembers which d-pad direction opened the menu. Confirmed items are
// assigned to the matching C button.
type Side uint8

const (
	SideLeft Side = iota
	SideDown
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideDown:
		return "down"
	case SideRight:
		return "right"
	}
	return fmt.Sprintf("Side(%d)", uint8(s))
}

// Button returns the C button items are assigned to.
func (s Side) Button() save.Button {
	switch s {
	case SideDown:
		return save.ButtonCDown
	case SideRight:
		return save.ButtonCRight
	default:
		return save.ButtonCLeft
	}
}
