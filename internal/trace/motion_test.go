package trace

import (
	"testing"

	"github.com/vovakirdan/tui-raycast/internal/core"
	"github.com/vovakirdan/tui-raycast/internal/world"
)

const playerRadius = 0.25

func TestMoveThroughOpenSpace(t *testing.T) {
	g := boxGrid(t, 9, 9)
	pose := Pose{Pos: core.V(4.5, 4.5), Dir: core.V(1, 0)}

	res := Move(g, pose, core.V(0.2, -0.1), playerRadius)
	if res.Teleported {
		t.Error("unexpected teleport in open space")
	}
	if !vecAlmostEqual(res.Pose.Pos, core.V(4.7, 4.4), eps) {
		t.Errorf("Pos = %v, expected (4.7, 4.4)", res.Pose.Pos)
	}
	if !vecAlmostEqual(res.Pose.Dir, pose.Dir, eps) {
		t.Errorf("Dir changed without a portal: %v", res.Pose.Dir)
	}
}

func TestMoveSlidesAlongWall(t *testing.T) {
	g := boxGrid(t, 9, 9)

	// Pressed against the east wall while moving diagonally: the X axis is
	// blocked but the Y component still applies.
	pose := Pose{Pos: core.V(7.9, 4.5), Dir: core.V(1, 0)}
	res := Move(g, pose, core.V(0.3, 0.3), playerRadius)

	if !almostEqual(res.Pose.Pos.X, 7.9, eps) {
		t.Errorf("X = %v, expected clamped at 7.9", res.Pose.Pos.X)
	}
	if !almostEqual(res.Pose.Pos.Y, 4.8, eps) {
		t.Errorf("Y = %v, expected sliding to 4.8", res.Pose.Pos.Y)
	}
}

func TestMoveBlockedOnBothAxes(t *testing.T) {
	g := boxGrid(t, 9, 9)
	// Tucked into the inside corner by the north-east walls.
	pose := Pose{Pos: core.V(7.9, 1.1), Dir: core.V(1, 0)}

	res := Move(g, pose, core.V(0.5, -0.5), playerRadius)
	if !vecAlmostEqual(res.Pose.Pos, pose.Pos, eps) {
		t.Errorf("Pos = %v, expected unchanged %v", res.Pose.Pos, pose.Pos)
	}
}

func TestMirrorsBlockButNeverReflectPlayer(t *testing.T) {
	g := boxGrid(t, 9, 9)
	g.Set(5, 4, world.MirrorCell(world.NewSideSet(world.West)))

	pose := Pose{Pos: core.V(4.6, 4.5), Dir: core.V(1, 0)}
	res := Move(g, pose, core.V(0.8, 0), playerRadius)

	if !almostEqual(res.Pose.Pos.X, 4.6, eps) {
		t.Errorf("X = %v, expected blocked by the mirror", res.Pose.Pos.X)
	}
	if !vecAlmostEqual(res.Pose.Dir, pose.Dir, eps) {
		t.Errorf("Dir = %v, the player must not be reflected", res.Pose.Dir)
	}
}

func TestMoveClampsToBounds(t *testing.T) {
	g := world.NewGrid(9, 9) // no fence, only the implicit boundary
	pose := Pose{Pos: core.V(0.3, 4.5), Dir: core.V(-1, 0)}

	res := Move(g, pose, core.V(-1, 0), playerRadius)
	if res.Pose.Pos.X < playerRadius {
		t.Errorf("X = %v, expected clamped to radius %v", res.Pose.Pos.X, playerRadius)
	}
}

func TestPlayerTeleportsThroughLinkedPortal(t *testing.T) {
	g := boxGrid(t, 10, 10)
	if err := g.PlacePortal(5, 4, world.West, 1); err != nil {
		t.Fatal(err)
	}
	if err := g.PlacePortal(2, 7, world.East, 1); err != nil {
		t.Fatal(err)
	}

	pose := Pose{Pos: core.V(4.9, 4.5), Dir: core.V(1, 0)}
	res := Move(g, pose, core.V(0.3, 0), playerRadius)

	if !res.Teleported {
		t.Fatal("expected a teleport through the linked entrance")
	}
	// Opposite faces: heading is preserved, position lands by the partner.
	if !vecAlmostEqual(res.Pose.Dir, core.V(1, 0), 1e-6) {
		t.Errorf("Dir = %v, expected (1,0)", res.Pose.Dir)
	}
	if res.Pose.Pos.X < 2.7 || res.Pose.Pos.X > 3.0 {
		t.Errorf("Pos.X = %v, expected just east of the partner cell", res.Pose.Pos.X)
	}
	if !almostEqual(res.Pose.Pos.Y, 7.5, 0.25) {
		t.Errorf("Pos.Y = %v, expected near the partner row center", res.Pose.Pos.Y)
	}
}

func TestPlayerPassesInertPortal(t *testing.T) {
	g := boxGrid(t, 10, 10)
	if err := g.PlacePortal(5, 4, world.West, 1); err != nil {
		t.Fatal(err)
	}

	pose := Pose{Pos: core.V(4.9, 4.5), Dir: core.V(1, 0)}
	res := Move(g, pose, core.V(0.3, 0), playerRadius)

	if res.Teleported {
		t.Error("inert entrance must not teleport")
	}
	if !almostEqual(res.Pose.Pos.X, 5.2, eps) {
		t.Errorf("X = %v, expected walking straight through to 5.2", res.Pose.Pos.X)
	}
}

func TestPlayerPortalRotatesFacing(t *testing.T) {
	g := boxGrid(t, 12, 12)
	if err := g.PlacePortal(5, 4, world.West, 1); err != nil {
		t.Fatal(err)
	}
	if err := g.PlacePortal(8, 8, world.North, 1); err != nil {
		t.Fatal(err)
	}

	pose := Pose{Pos: core.V(4.9, 4.5), Dir: core.V(1, 0)}
	res := Move(g, pose, core.V(0.3, 0), playerRadius)

	if !res.Teleported {
		t.Fatal("expected a teleport")
	}
	// West entrance to north entrance is one clockwise quarter turn: the
	// eastbound player emerges heading north, out of the partner's edge.
	if !vecAlmostEqual(res.Pose.Dir, core.V(0, -1), 1e-6) {
		t.Errorf("Dir = %v, expected (0,-1)", res.Pose.Dir)
	}
}
