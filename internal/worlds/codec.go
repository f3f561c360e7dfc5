// Package worlds ships the built-in worlds and the YAML world file format
// used both for the embedded levels and for maps saved from the editor.
package worlds

import (
	"fmt"
	"math"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-raycast/internal/core"
	"github.com/vovakirdan/tui-raycast/internal/world"
)

// File is the YAML representation of a world. The layout holds walls,
// empty space and single-edge mirrors; multi-edge mirrors and portal
// entrances are declared explicitly.
type File struct {
	Name    string       `yaml:"name"`
	Layout  []string     `yaml:"layout"`
	Mirrors []MirrorSpec `yaml:"mirrors,omitempty"`
	Portals []PortalSpec `yaml:"portals,omitempty"`
	Spawn   SpawnSpec    `yaml:"spawn"`
}

// MirrorSpec declares a mirror cell with an explicit edge list.
type MirrorSpec struct {
	Col   int      `yaml:"col"`
	Row   int      `yaml:"row"`
	Sides []string `yaml:"sides"`
}

// PortalSpec declares a portal pair. The second end may be omitted for an
// intentionally inert entrance.
type PortalSpec struct {
	ID uint16   `yaml:"id"`
	A  *EndSpec `yaml:"a"`
	B  *EndSpec `yaml:"b,omitempty"`
}

// EndSpec locates one portal entrance.
type EndSpec struct {
	Col  int    `yaml:"col"`
	Row  int    `yaml:"row"`
	Side string `yaml:"side"`
}

// SpawnSpec is the player's starting pose. Heading is in degrees,
// 0 pointing east and growing clockwise.
type SpawnSpec struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Heading float64 `yaml:"heading"`
}

// Decode parses a world file into a Level. Portal misconfigurations in the
// file surface as *world.PortalConfigurationError.
func Decode(id string, data []byte) (*world.Level, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("worlds: parsing %s: %w", id, err)
	}

	g, err := world.ParseLayout(f.Layout)
	if err != nil {
		return nil, fmt.Errorf("worlds: %s: %w", id, err)
	}

	for _, m := range f.Mirrors {
		var sides world.SideSet
		for _, name := range m.Sides {
			s, ok := world.ParseSide(name)
			if !ok {
				return nil, fmt.Errorf("worlds: %s: unknown mirror side %q", id, name)
			}
			sides = sides.With(s)
		}
		g.Set(m.Col, m.Row, world.MirrorCell(sides))
	}

	for _, p := range f.Portals {
		if p.A == nil {
			return nil, fmt.Errorf("worlds: %s: portal %d has no entrance", id, p.ID)
		}
		if err := placeEnd(g, p.ID, p.A); err != nil {
			return nil, fmt.Errorf("worlds: %s: %w", id, err)
		}
		if p.B != nil {
			if err := placeEnd(g, p.ID, p.B); err != nil {
				return nil, fmt.Errorf("worlds: %s: %w", id, err)
			}
		}
	}

	spawn := core.V(f.Spawn.X, f.Spawn.Y)
	if spawn == (core.Vec2{}) {
		spawn = core.V(float64(g.Cols())/2, float64(g.Rows())/2)
	}
	return &world.Level{
		ID:    id,
		Name:  f.Name,
		Grid:  g,
		Spawn: spawn,
		Dir:   core.V(1, 0).Rotated(core.Deg2Rad(f.Spawn.Heading)),
	}, nil
}

func placeEnd(g *world.Grid, id uint16, end *EndSpec) error {
	s, ok := world.ParseSide(end.Side)
	if !ok {
		return fmt.Errorf("portal %d: unknown side %q", id, end.Side)
	}
	return g.PlacePortal(end.Col, end.Row, s, world.PortalID(id))
}

// Encode serializes a level back into the world file format, preserving
// multi-edge mirrors and portal pairs. Inverse of Decode up to layout
// placeholder runes.
func Encode(lvl *world.Level) ([]byte, error) {
	f := File{
		Name:   lvl.Name,
		Layout: world.EncodeLayout(lvl.Grid),
		Spawn: SpawnSpec{
			X:       lvl.Spawn.X,
			Y:       lvl.Spawn.Y,
			Heading: lvl.Dir.Angle() * 180 / math.Pi,
		},
	}

	g := lvl.Grid
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			c := g.At(x, y)
			if c.Kind != world.Mirror || len(c.Mirror.Sides()) == 1 {
				continue
			}
			spec := MirrorSpec{Col: x, Row: y}
			for _, s := range c.Mirror.Sides() {
				spec.Sides = append(spec.Sides, s.String())
			}
			f.Mirrors = append(f.Mirrors, spec)
		}
	}

	portals := g.Portals()
	ids := make([]int, 0, len(portals))
	for id := range portals {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	for _, id := range ids {
		ends := portals[world.PortalID(id)]
		spec := PortalSpec{ID: uint16(id), A: endSpec(ends[0])}
		if len(ends) > 1 {
			spec.B = endSpec(ends[1])
		}
		f.Portals = append(f.Portals, spec)
	}

	return yaml.Marshal(f)
}

func endSpec(e world.Entrance) *EndSpec {
	return &EndSpec{Col: e.Col, Row: e.Row, Side: e.Sub.String()}
}
