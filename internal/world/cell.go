package world

// CellKind is the discriminant of the Cell variant. Traversal classifies the
// cell it just entered with a single switch on the kind, keeping the hot loop
// branch-predictable and allocation-free.
type CellKind uint8

const (
	// Empty cells let rays and the player pass through.
	Empty CellKind = iota
	// Wall cells terminate rays and block movement.
	Wall
	// Mirror cells reflect rays that strike one of their oriented edges and
	// block the player. Rays crossing a non-oriented edge pass through.
	Mirror
	// Portal cells host up to four portal entrances, one per edge subsquare.
	// A linked entrance teleports rays and the player to its partner.
	Portal
)

// String returns a human-readable kind name.
func (k CellKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Mirror:
		return "mirror"
	case Portal:
		return "portal"
	default:
		return "invalid"
	}
}

// PortalID names a portal pair. The zero value means "no entrance".
type PortalID uint16

// Cell is one grid square. It is a tagged variant: Kind selects which of the
// associated fields are meaningful.
type Cell struct {
	Kind CellKind

	// Mirror holds the reflective edges when Kind == Mirror.
	Mirror SideSet

	// Entrances holds one portal id per edge subsquare when Kind == Portal,
	// indexed by Side. Zero means the edge hosts no entrance.
	Entrances [4]PortalID
}

// WallCell is the cell returned for out-of-bounds lookups: the world boundary
// behaves as a solid wall, so traversal never needs a bounds check.
var WallCell = Cell{Kind: Wall}

// EmptyCell is the zero cell.
var EmptyCell = Cell{Kind: Empty}

// MirrorCell builds a mirror cell reflective on the given edges.
func MirrorCell(sides SideSet) Cell {
	return Cell{Kind: Mirror, Mirror: sides}
}

// Solid reports whether the cell blocks player movement.
// Portal cells are passable; mirrors are solid barriers even though only
// their oriented edges reflect rays.
func (c Cell) Solid() bool {
	return c.Kind == Wall || c.Kind == Mirror
}

// EntranceOn returns the portal id on the given edge subsquare, if any.
func (c Cell) EntranceOn(s Side) (PortalID, bool) {
	if c.Kind != Portal {
		return 0, false
	}
	id := c.Entrances[s]
	return id, id != 0
}

// HasEntrances reports whether any edge of the cell hosts an entrance.
func (c Cell) HasEntrances() bool {
	for _, id := range c.Entrances {
		if id != 0 {
			return true
		}
	}
	return false
}
