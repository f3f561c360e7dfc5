package world

import "fmt"

// Layout runes. Mirrors reflective on a single edge are written as an arrow
// pointing out of that edge; mirrors with several reflective edges and all
// portal entrances are declared separately in the world file.
const (
	runeWall   = '#'
	runeEmpty  = '.'
	runeSpace  = ' '
	runeNorth  = '^'
	runeEast   = '>'
	runeSouth  = 'v'
	runeWest   = '<'
	runeMirror = 'm' // placeholder for mirrors declared in the mirror list
	runePortal = 'o' // placeholder for cells declared in the portal list
)

// ParseLayout builds a grid from rows of layout runes. Rows may have
// different lengths; missing trailing cells are empty. Unknown runes are an
// error so malformed world files fail at load time.
func ParseLayout(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("world: empty layout")
	}
	cols := 0
	for _, r := range rows {
		if n := len([]rune(r)); n > cols {
			cols = n
		}
	}
	if cols == 0 {
		return nil, fmt.Errorf("world: layout has no columns")
	}

	g := NewGrid(cols, len(rows))
	for y, rowStr := range rows {
		for x, r := range []rune(rowStr) {
			var c Cell
			switch r {
			case runeWall:
				c = Cell{Kind: Wall}
			case runeEmpty, runeSpace, runeMirror, runePortal:
				c = EmptyCell
			case runeNorth:
				c = MirrorCell(NewSideSet(North))
			case runeEast:
				c = MirrorCell(NewSideSet(East))
			case runeSouth:
				c = MirrorCell(NewSideSet(South))
			case runeWest:
				c = MirrorCell(NewSideSet(West))
			default:
				return nil, fmt.Errorf("world: unknown layout rune %q at (%d,%d)", r, x, y)
			}
			g.Set(x, y, c)
		}
	}
	return g, nil
}

// EncodeLayout renders the grid back into layout rows. Multi-edge mirrors and
// portal cells are emitted as placeholders; the caller serializes their
// details alongside the layout.
func EncodeLayout(g *Grid) []string {
	rows := make([]string, g.Rows())
	for y := 0; y < g.Rows(); y++ {
		line := make([]rune, g.Cols())
		for x := 0; x < g.Cols(); x++ {
			c := g.At(x, y)
			switch c.Kind {
			case Wall:
				line[x] = runeWall
			case Mirror:
				line[x] = mirrorRune(c.Mirror)
			case Portal:
				line[x] = runePortal
			default:
				line[x] = runeEmpty
			}
		}
		rows[y] = string(line)
	}
	return rows
}

// mirrorRune picks the arrow for single-edge mirrors and the placeholder
// otherwise.
func mirrorRune(sides SideSet) rune {
	switch sides {
	case NewSideSet(North):
		return runeNorth
	case NewSideSet(East):
		return runeEast
	case NewSideSet(South):
		return runeSouth
	case NewSideSet(West):
		return runeWest
	default:
		return runeMirror
	}
}
