// Package world implements the grid map for the raycasting sandbox: a 2D
// store of cell variants (empty, wall, mirror, portal entrance) plus the
// registry that pairs portal entrances by id.
package world

// Side identifies one of the four edges of a grid cell. Values are ordered
// clockwise so that rotation math is plain modular arithmetic.
type Side uint8

const (
	North Side = iota
	East
	South
	West
)

// sideNames is indexed by Side.
var sideNames = [4]string{"north", "east", "south", "west"}

// String returns the lowercase side name.
func (s Side) String() string {
	if int(s) < len(sideNames) {
		return sideNames[s]
	}
	return "invalid"
}

// Opposite returns the side across the cell.
func (s Side) Opposite() Side {
	return s.Rotate(2)
}

// Rotate returns the side rotated clockwise by the given number of quarter
// turns. Negative values rotate counter-clockwise.
func (s Side) Rotate(quarters int) Side {
	return Side((int(s) + quarters%4 + 4) % 4)
}

// TurnsTo returns the number of clockwise quarter turns from this side to
// the other, in [0, 3].
func (s Side) TurnsTo(other Side) int {
	return (int(other) - int(s) + 4) % 4
}

// Delta returns the outward unit offset of the side: the neighboring cell
// across this edge is at (col+dx, row+dy).
func (s Side) Delta() (dx, dy int) {
	switch s {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default:
		return -1, 0
	}
}

// Horizontal reports whether the edge itself runs horizontally
// (the north and south edges).
func (s Side) Horizontal() bool {
	return s == North || s == South
}

// ParseSide converts a side name to a Side.
func ParseSide(name string) (Side, bool) {
	for i, n := range sideNames {
		if n == name {
			return Side(i), true
		}
	}
	return North, false
}

// SideSet is a bit set of cell edges, used for mirror orientations.
// A mirror is reflective only on the edges present in the set.
type SideSet uint8

// NewSideSet builds a set from individual sides.
func NewSideSet(sides ...Side) SideSet {
	var ss SideSet
	for _, s := range sides {
		ss = ss.With(s)
	}
	return ss
}

// Has reports whether the set contains the side.
func (ss SideSet) Has(s Side) bool {
	return ss&(1<<s) != 0
}

// With returns the set with the side added.
func (ss SideSet) With(s Side) SideSet {
	return ss | 1<<s
}

// Without returns the set with the side removed.
func (ss SideSet) Without(s Side) SideSet {
	return ss &^ (1 << s)
}

// Toggle returns the set with the side flipped.
func (ss SideSet) Toggle(s Side) SideSet {
	return ss ^ 1<<s
}

// Empty reports whether the set contains no sides.
func (ss SideSet) Empty() bool {
	return ss == 0
}

// Sides returns the individual sides in the set, in clockwise order.
func (ss SideSet) Sides() []Side {
	var out []Side
	for s := North; s <= West; s++ {
		if ss.Has(s) {
			out = append(out, s)
		}
	}
	return out
}
