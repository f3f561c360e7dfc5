package world

import (
	"errors"
	"fmt"
)

// ErrNotLinked is returned when a portal entrance has no partner yet.
// Traversal treats such entrances as empty space rather than failing.
var ErrNotLinked = errors.New("world: portal entrance not linked")

// PortalConfigurationError reports an attempt to build an invalid portal
// pair. It is raised at edit time, never during traversal.
type PortalConfigurationError struct {
	ID     PortalID
	Reason string
}

func (e *PortalConfigurationError) Error() string {
	return fmt.Sprintf("world: portal %d: %s", e.ID, e.Reason)
}

// Entrance locates one end of a portal: the cell that hosts it and the edge
// subsquare it occupies within that cell.
type Entrance struct {
	Col, Row int
	Sub      Side
}

func (e Entrance) String() string {
	return fmt.Sprintf("(%d,%d %s)", e.Col, e.Row, e.Sub)
}

// Grid is the cell-type store and portal-link registry. It is mutated only
// between frames (by the editor); during a frame every ray reads it
// concurrently without locking.
type Grid struct {
	cols, rows int
	cells      []Cell
	portals    map[PortalID][]Entrance
	nextID     PortalID
}

// NewGrid creates a grid of empty cells.
func NewGrid(cols, rows int) *Grid {
	return &Grid{
		cols:    cols,
		rows:    rows,
		cells:   make([]Cell, cols*rows),
		portals: make(map[PortalID][]Entrance),
		nextID:  1,
	}
}

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// InBounds reports whether the cell coordinates are inside the grid.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

// At returns the cell at (col, row). Out-of-bounds lookups return a wall:
// the boundary of the world is solid, so traversal needs no bounds check.
func (g *Grid) At(col, row int) Cell {
	if !g.InBounds(col, row) {
		return WallCell
	}
	return g.cells[row*g.cols+col]
}

// Set replaces the cell at (col, row) with a non-portal cell. Any portal
// entrances previously hosted by the cell are removed first, demoting their
// partners to inert entrances. Out-of-bounds sets are ignored.
// Portal entrances are placed with PlacePortal, not Set.
func (g *Grid) Set(col, row int, c Cell) {
	if !g.InBounds(col, row) {
		return
	}
	old := g.cells[row*g.cols+col]
	if old.Kind == Portal {
		g.removeEntrances(col, row)
	}
	c.Entrances = [4]PortalID{}
	if c.Kind == Portal {
		c.Kind = Empty
	}
	g.cells[row*g.cols+col] = c
}

// PlacePortal places a portal entrance with the given id on an edge subsquare
// of the cell at (col, row). The first entrance of an id is inert; a second
// entrance on a distinct subsquare completes the link. Misconfigurations
// (occupied subsquare, duplicate subsquare within an id, a third entrance)
// fail fast with *PortalConfigurationError.
func (g *Grid) PlacePortal(col, row int, sub Side, id PortalID) error {
	if id == 0 {
		return &PortalConfigurationError{ID: id, Reason: "id must be non-zero"}
	}
	if !g.InBounds(col, row) {
		return &PortalConfigurationError{ID: id, Reason: "entrance out of bounds"}
	}

	ends := g.portals[id]
	switch len(ends) {
	case 0:
		// First entrance: created inert.
	case 1:
		if ends[0].Sub == sub {
			return &PortalConfigurationError{
				ID:     id,
				Reason: fmt.Sprintf("second entrance reuses subsquare %s of %s", sub, ends[0]),
			}
		}
	default:
		return &PortalConfigurationError{ID: id, Reason: "portal already has two entrances"}
	}

	idx := row*g.cols + col
	cell := g.cells[idx]
	if cell.Kind == Portal && cell.Entrances[sub] != 0 {
		return &PortalConfigurationError{
			ID:     id,
			Reason: fmt.Sprintf("subsquare %s of cell (%d,%d) already hosts portal %d", sub, col, row, cell.Entrances[sub]),
		}
	}
	if cell.Kind != Portal {
		// Converting a solid cell clears it; existing entrances on a portal
		// cell are preserved.
		cell = Cell{Kind: Portal}
	}
	cell.Entrances[sub] = id
	g.cells[idx] = cell

	g.portals[id] = append(ends, Entrance{Col: col, Row: row, Sub: sub})
	if id >= g.nextID {
		g.nextID = id + 1
	}
	return nil
}

// Exit returns the partner of the given entrance. ErrNotLinked is returned
// while the id still has a single entrance.
func (g *Grid) Exit(id PortalID, from Entrance) (Entrance, error) {
	ends := g.portals[id]
	if len(ends) < 2 {
		return Entrance{}, ErrNotLinked
	}
	if ends[0] == from {
		return ends[1], nil
	}
	return ends[0], nil
}

// Linked reports whether the portal id has both entrances placed.
func (g *Grid) Linked(id PortalID) bool {
	return len(g.portals[id]) == 2
}

// NextPortalID returns an id that is not yet in use.
func (g *Grid) NextPortalID() PortalID {
	return g.nextID
}

// Portals returns a copy of the entrance registry, keyed by portal id.
// Used by the world file codec; traversal goes through Exit instead.
func (g *Grid) Portals() map[PortalID][]Entrance {
	out := make(map[PortalID][]Entrance, len(g.portals))
	for id, ends := range g.portals {
		out[id] = append([]Entrance(nil), ends...)
	}
	return out
}

// removeEntrances drops every entrance hosted by the cell from the registry.
// A partner entrance left behind becomes inert rather than dangling.
func (g *Grid) removeEntrances(col, row int) {
	cell := g.cells[row*g.cols+col]
	for s := North; s <= West; s++ {
		id := cell.Entrances[s]
		if id == 0 {
			continue
		}
		self := Entrance{Col: col, Row: row, Sub: s}
		kept := g.portals[id][:0]
		for _, e := range g.portals[id] {
			if e != self {
				kept = append(kept, e)
			}
		}
		if len(kept) == 0 {
			delete(g.portals, id)
		} else {
			g.portals[id] = kept
		}
	}
}

// Clone returns a deep copy of the grid. The frame orchestrator hands clones
// to traversal when the editor may mutate the live grid mid-frame, keeping
// the read-only-during-a-frame invariant without locks.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		cols:    g.cols,
		rows:    g.rows,
		cells:   make([]Cell, len(g.cells)),
		portals: make(map[PortalID][]Entrance, len(g.portals)),
		nextID:  g.nextID,
	}
	copy(c.cells, g.cells)
	for id, ends := range g.portals {
		c.portals[id] = append([]Entrance(nil), ends...)
	}
	return c
}
