package worlds

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-raycast/internal/core"
	"github.com/vovakirdan/tui-raycast/internal/registry"
	"github.com/vovakirdan/tui-raycast/internal/world"
)

const sampleWorld = `
name: Sample
layout:
  - "#####"
  - "#.>m#"
  - "#.o.#"
  - "#####"
mirrors:
  - col: 3
    row: 1
    sides: [north, west]
portals:
  - id: 7
    a: { col: 2, row: 2, side: west }
    b: { col: 1, row: 2, side: north }
spawn:
  x: 1.5
  y: 1.5
  heading: 90
`

func TestDecodeWorldFile(t *testing.T) {
	lvl, err := Decode("sample", []byte(sampleWorld))
	if err != nil {
		t.Fatal(err)
	}
	if lvl.Name != "Sample" {
		t.Errorf("Name = %q", lvl.Name)
	}

	g := lvl.Grid
	if g.Cols() != 5 || g.Rows() != 4 {
		t.Fatalf("grid is %dx%d, expected 5x4", g.Cols(), g.Rows())
	}
	if g.At(0, 0).Kind != world.Wall {
		t.Error("corner should be a wall")
	}
	if c := g.At(2, 1); c.Kind != world.Mirror || !c.Mirror.Has(world.East) {
		t.Errorf("(2,1) = %+v, expected an east-edge mirror", c)
	}
	if c := g.At(3, 1); c.Kind != world.Mirror || !c.Mirror.Has(world.North) || !c.Mirror.Has(world.West) {
		t.Errorf("(3,1) = %+v, expected a north+west mirror", c)
	}

	if !g.Linked(7) {
		t.Error("portal 7 should be linked")
	}
	if id, ok := g.At(2, 2).EntranceOn(world.West); !ok || id != 7 {
		t.Errorf("(2,2) entrance = %d,%v, expected portal 7 on the west edge", id, ok)
	}

	if !vecAlmostEqual(lvl.Spawn, core.V(1.5, 1.5)) {
		t.Errorf("Spawn = %v", lvl.Spawn)
	}
	// Heading 90 is a quarter turn clockwise from east: facing south.
	if !vecAlmostEqual(lvl.Dir, core.V(0, 1)) {
		t.Errorf("Dir = %v, expected (0,1)", lvl.Dir)
	}
}

func TestDecodeDefaultsSpawnToCenter(t *testing.T) {
	lvl, err := Decode("t", []byte("layout:\n  - \"####\"\n  - \"#..#\"\n  - \"####\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !vecAlmostEqual(lvl.Spawn, core.V(2, 1.5)) {
		t.Errorf("Spawn = %v, expected the grid center", lvl.Spawn)
	}
}

func TestDecodeRejectsBadPortal(t *testing.T) {
	bad := `
layout:
  - "####"
  - "#..#"
  - "####"
portals:
  - id: 1
    a: { col: 1, row: 1, side: west }
    b: { col: 2, row: 1, side: west }
`
	_, err := Decode("bad", []byte(bad))
	var perr *world.PortalConfigurationError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, expected a portal configuration error", err)
	}
}

func TestDecodeRejectsUnknownRune(t *testing.T) {
	if _, err := Decode("bad", []byte("layout:\n  - \"#?#\"\n")); err == nil {
		t.Fatal("expected an error for an unknown layout rune")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	lvl, err := Decode("sample", []byte(sampleWorld))
	if err != nil {
		t.Fatal(err)
	}
	data, err := Encode(lvl)
	if err != nil {
		t.Fatal(err)
	}
	lvl2, err := Decode("sample", data)
	if err != nil {
		t.Fatalf("re-decoding encoded world: %v", err)
	}

	g, g2 := lvl.Grid, lvl2.Grid
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			if g.At(x, y) != g2.At(x, y) {
				t.Errorf("cell (%d,%d) changed across the round trip: %+v vs %+v",
					x, y, g.At(x, y), g2.At(x, y))
			}
		}
	}
	if !g2.Linked(7) {
		t.Error("portal link lost across the round trip")
	}
	if !vecAlmostEqual(lvl2.Spawn, lvl.Spawn) {
		t.Errorf("spawn changed: %v vs %v", lvl2.Spawn, lvl.Spawn)
	}
}

func TestBuiltinWorldsRegister(t *testing.T) {
	for _, id := range []string{"corridor", "mirror-hall", "portal-loop", "atrium"} {
		if !registry.Exists(id) {
			t.Errorf("builtin world %q not registered", id)
			continue
		}
		a, err := registry.Create(id)
		if err != nil {
			t.Errorf("creating %q: %v", id, err)
			continue
		}
		b, err := registry.Create(id)
		if err != nil {
			t.Errorf("creating %q again: %v", id, err)
			continue
		}
		// Each instance carries its own grid so editor changes stay local.
		a.Grid.Set(1, 1, world.WallCell)
		if b.Grid.At(1, 1).Kind == world.Wall {
			t.Errorf("%q instances share a grid", id)
		}
	}
}

func vecAlmostEqual(a, b core.Vec2) bool {
	const eps = 1e-9
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx > -eps && dx < eps && dy > -eps && dy < eps
}
