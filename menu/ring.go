package menu

import "github.com/hylian-modding/OcarinaOfTime-LiveMenu/common"

// Ring is the fixed above/below neighbour table of the categories. It forms
// a single cycle.
type Ring struct {
	above [NumCategories]CategoryID
	below [NumCategories]CategoryID
}

func NewRing() Ring {
	var r Ring
	n := int(NumCategories)
	for id := 0; id < n; id++ {
		r.above[id] = CategoryID(common.Wrap(id-1, n))
		r.below[id] = CategoryID(common.Wrap(id+1, n))
	}
	return r
}

func (r *Ring) Above(id CategoryID) CategoryID {
	return r.above[id%NumCategories]
}

func (r *Ring) Below(id CategoryID) CategoryID {
	return r.below[id%NumCategories]
}

// Offset returns how many steps up (positive) or down (negative) lead from
// one category to another. The category directly opposite is reported as +3.
func (r *Ring) Offset(from, to CategoryID) int {
	if from == to {
		return 0
	}
	up, down := from, from
	for k := 1; k <= int(NumCategories)/2; k++ {
		up = r.Above(up)
		if up == to {
			return k
		}
		down = r.Below(down)
		if down == to {
			return -k
		}
	}
	return int(NumCategories) / 2
}

// Step walks k steps up (positive) or down (negative) from id.
func (r *Ring) Step(id CategoryID, k int) CategoryID {
	for ; k > 0; k-- {
		id = r.Above(id)
	}
	for ; k < 0; k++ {
		id = r.Below(id)
	}
	return id
}
