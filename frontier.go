package maze

import (
	"fmt"
)

// Holds the wall slots waiting to be examined by Prim's or Kruskal's
// algorithm. Slots on an even column separate two vertically adjacent rooms,
// and slots on an even row separate two horizontally adjacent rooms. Keeping
// them apart is what lets the vertical bias favor one kind over the other.
type frontier struct {
	vertical   []Coordinate
	horizontal []Coordinate
	bias       float64
}

func newFrontier(bias float64, capacity int) *frontier {
	return &frontier{
		vertical:   make([]Coordinate, 0, capacity),
		horizontal: make([]Coordinate, 0, capacity),
		bias:       bias,
	}
}

// Adds the wall slot to the appropriate list. Slots with two odd coordinates
// never connect rooms, so they are ignored.
func (f *frontier) add(c Coordinate) {
	if (c.X & 1) == 0 {
		f.vertical = append(f.vertical, c)
	} else if (c.Y & 1) == 0 {
		f.horizontal = append(f.horizontal, c)
	}
}

func (f *frontier) len() int {
	return len(f.vertical) + len(f.horizontal)
}

func (f *frontier) empty() bool {
	return f.len() == 0
}

// Removes and returns a random slot. The list is chosen using the bias unless
// one of them is empty, then a uniform entry is swap-removed from it. Panics
// if both lists are empty.
func (f *frontier) pop(rng RandomSource) Coordinate {
	vLen := len(f.vertical)
	hLen := len(f.horizontal)
	if (vLen == 0) && (hLen == 0) {
		panic("Internal error: popped an empty frontier")
	}
	useVertical := hLen == 0
	if (vLen != 0) && (hLen != 0) {
		useVertical = rng.Float64() < f.bias
	}
	if useVertical {
		return swapRemove(&f.vertical, rng.Intn(vLen))
	}
	return swapRemove(&f.horizontal, rng.Intn(hLen))
}

// Removes the entry at index i by moving the last entry in its place.
func swapRemove(list *[]Coordinate, i int) Coordinate {
	s := *list
	toReturn := s[i]
	s[i] = s[len(s)-1]
	*list = s[:len(s)-1]
	return toReturn
}

// Picks which way to look across the wall slot w. Slots between vertically
// adjacent rooms look up or down, slots between horizontally adjacent rooms
// look left or right, and slots with two odd coordinates pick an axis using
// the bias. Returns false for a room (two even coordinates), which has no
// meaningful direction.
func randomWallDirection(w Coordinate, bias float64,
	rng RandomSource) (Direction, bool) {
	xOdd := (w.X & 1) == 1
	yOdd := (w.Y & 1) == 1
	switch {
	case !xOdd && yOdd:
		if coinFlip(rng) {
			return Up, true
		}
		return Down, true
	case xOdd && !yOdd:
		if coinFlip(rng) {
			return Left, true
		}
		return Right, true
	case xOdd && yOdd:
		horizontal := rng.Float64() < bias
		if horizontal {
			if coinFlip(rng) {
				return Left, true
			}
			return Right, true
		}
		if coinFlip(rng) {
			return Up, true
		}
		return Down, true
	}
	return Up, false
}

// Like randomWallDirection, but panics on a room. Used for slots taken from a
// frontier, which never holds rooms.
func mustWallDirection(w Coordinate, bias float64,
	rng RandomSource) Direction {
	d, ok := randomWallDirection(w, bias, rng)
	if !ok {
		panic(fmt.Sprintf("Internal error: room %s found in the frontier", w))
	}
	return d
}
