package game

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-raycast/internal/config"
	"github.com/vovakirdan/tui-raycast/internal/core"
	"github.com/vovakirdan/tui-raycast/internal/world"
)

func testLevel(t *testing.T) *world.Level {
	t.Helper()
	g, err := world.ParseLayout([]string{
		"#########",
		"#.......#",
		"#.......#",
		"#.......#",
		"#.......#",
		"#.......#",
		"#########",
	})
	if err != nil {
		t.Fatal(err)
	}
	return &world.Level{
		ID:    "test",
		Name:  "Test Box",
		Grid:  g,
		Spawn: core.V(4.5, 3.5),
		Dir:   core.V(1, 0),
	}
}

func newTestGame(t *testing.T, lvl *world.Level) *Game {
	t.Helper()
	g := New(lvl, config.Default())
	g.Reset(core.DefaultConfig())
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestResetSpawnsAtLevelPose(t *testing.T) {
	lvl := testLevel(t)
	g := newTestGame(t, lvl)

	pose := g.Pose()
	if pose.Pos != lvl.Spawn {
		t.Errorf("Pos = %v, expected spawn %v", pose.Pos, lvl.Spawn)
	}
	if pose.Dir != lvl.Dir {
		t.Errorf("Dir = %v, expected %v", pose.Dir, lvl.Dir)
	}
	st := g.State()
	if st.Paused || st.Editing || st.Steps != 0 || st.Teleports != 0 {
		t.Errorf("fresh state = %+v", st)
	}
}

func TestStepMovesForward(t *testing.T) {
	g := newTestGame(t, testLevel(t))

	// MoveSpeed 3.0 at 60 ticks/s is 0.05 cells per tick.
	for i := 0; i < 10; i++ {
		g.Step(frame(core.ActionForward))
	}
	pose := g.Pose()
	if math.Abs(pose.Pos.X-5.0) > 1e-9 {
		t.Errorf("X = %v, expected 5.0 after 10 forward ticks", pose.Pos.X)
	}
	if math.Abs(pose.Pos.Y-3.5) > 1e-9 {
		t.Errorf("Y = %v, expected unchanged", pose.Pos.Y)
	}
	if g.State().Steps != 10 {
		t.Errorf("Steps = %d", g.State().Steps)
	}
}

func TestSprintMovesFaster(t *testing.T) {
	g := newTestGame(t, testLevel(t))
	g.Step(frame(core.ActionForward, core.ActionSprint))

	// One sprint tick covers 0.05 * 1.8 cells.
	want := 4.5 + 0.05*config.Default().Player.SprintMultiplier
	if got := g.Pose().Pos.X; math.Abs(got-want) > 1e-9 {
		t.Errorf("X = %v, expected %v", got, want)
	}
}

func TestDiagonalMovesAtCardinalSpeed(t *testing.T) {
	lvl := testLevel(t)

	g := newTestGame(t, lvl)
	g.Step(frame(core.ActionForward))
	cardinal := g.Pose().Pos.Sub(lvl.Spawn).Len()

	g = newTestGame(t, lvl)
	g.Step(frame(core.ActionForward, core.ActionStrafeRight))
	diagonal := g.Pose().Pos.Sub(lvl.Spawn).Len()

	if math.Abs(cardinal-0.05) > 1e-9 {
		t.Errorf("cardinal step = %v, expected 0.05", cardinal)
	}
	if math.Abs(diagonal-cardinal) > 1e-9 {
		t.Errorf("diagonal step = %v, cardinal step = %v, expected equal lengths", diagonal, cardinal)
	}
}

func TestTurnChangesHeading(t *testing.T) {
	g := newTestGame(t, testLevel(t))

	// TurnSpeed 120 deg/s at 60 ticks/s is 2 degrees per tick; 45 ticks make
	// a quarter turn clockwise, from east to south.
	for i := 0; i < 45; i++ {
		g.Step(frame(core.ActionTurnRight))
	}
	dir := g.Pose().Dir
	if math.Abs(dir.X) > 1e-6 || math.Abs(dir.Y-1) > 1e-6 {
		t.Errorf("Dir = %v, expected (0,1)", dir)
	}

	g.Step(frame(core.ActionTurnAround))
	dir = g.Pose().Dir
	if math.Abs(dir.X) > 1e-6 || math.Abs(dir.Y+1) > 1e-6 {
		t.Errorf("Dir after turnaround = %v, expected (0,-1)", dir)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, testLevel(t))
	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}

	before := g.Pose()
	steps := g.State().Steps
	for i := 0; i < 5; i++ {
		g.Step(frame(core.ActionForward))
	}
	if g.Pose() != before {
		t.Error("pose changed while paused")
	}
	if g.State().Steps != steps {
		t.Error("step counter advanced while paused")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("expected unpaused")
	}
}

func TestRestartRestoresWorld(t *testing.T) {
	lvl := testLevel(t)
	g := newTestGame(t, lvl)

	g.Step(frame(core.ActionEditToggle))
	g.Step(frame(core.ActionPlaceWall))
	if g.Level().Grid.At(5, 3).Kind != world.Wall {
		t.Fatal("edit did not place a wall")
	}
	for i := 0; i < 5; i++ {
		g.Step(frame(core.ActionBackward))
	}

	g.Step(frame(core.ActionRestart))
	if g.Pose().Pos != lvl.Spawn {
		t.Errorf("Pos = %v, expected respawn at %v", g.Pose().Pos, lvl.Spawn)
	}
	if g.Level().Grid.At(5, 3).Kind == world.Wall {
		t.Error("restart did not restore the original grid")
	}
	if g.State().Editing {
		t.Error("restart should leave edit mode")
	}
}

func TestEditsDoNotLeakIntoSourceLevel(t *testing.T) {
	lvl := testLevel(t)
	g := newTestGame(t, lvl)

	g.Step(frame(core.ActionEditToggle))
	g.Step(frame(core.ActionPlaceWall))

	if lvl.Grid.At(5, 3).Kind == world.Wall {
		t.Error("session edit mutated the source level")
	}
}

func TestEditorPlacesAheadOfPlayer(t *testing.T) {
	g := newTestGame(t, testLevel(t))
	g.Step(frame(core.ActionEditToggle))
	if !g.State().Editing {
		t.Fatal("expected edit mode")
	}

	// Facing east from (4.5,3.5): the target is (5,3) and the faced edge is
	// its west side.
	g.Step(frame(core.ActionPlaceMirror))
	cell := g.Level().Grid.At(5, 3)
	if cell.Kind != world.Mirror || !cell.Mirror.Has(world.West) {
		t.Errorf("cell = %+v, expected a west-edge mirror", cell)
	}

	// A second placement after a quarter turn extends the same mirror.
	for i := 0; i < 45; i++ {
		g.Step(frame(core.ActionTurnRight))
	}
	// Now facing south: target is (4,4).
	g.Step(frame(core.ActionPlaceMirror))
	cell = g.Level().Grid.At(4, 4)
	if cell.Kind != world.Mirror || !cell.Mirror.Has(world.North) {
		t.Errorf("cell = %+v, expected a north-edge mirror", cell)
	}

	g.Step(frame(core.ActionClearCell))
	if g.Level().Grid.At(4, 4).Kind != world.Empty {
		t.Error("clear did not empty the target cell")
	}
}

func TestEditorPortalLinkFlow(t *testing.T) {
	g := newTestGame(t, testLevel(t))
	g.Step(frame(core.ActionEditToggle))

	g.Step(frame(core.ActionPlacePortal))
	grid := g.Level().Grid
	if id, ok := grid.At(5, 3).EntranceOn(world.West); !ok || id == 0 {
		t.Fatal("first placement did not create an entrance")
	}
	if grid.Linked(1) {
		t.Fatal("portal should still be inert after one entrance")
	}

	g.Step(frame(core.ActionTurnAround))
	// Facing west: target is (3,3), faced edge east.
	g.Step(frame(core.ActionPlacePortal))
	grid = g.Level().Grid
	if !grid.Linked(1) {
		t.Fatal("second placement should complete the link")
	}
	if id, ok := grid.At(3, 3).EntranceOn(world.East); !ok || id != 1 {
		t.Errorf("partner entrance = %d,%v", id, ok)
	}
}

func TestPlayerTeleportCounted(t *testing.T) {
	lvl := testLevel(t)
	if err := lvl.Grid.PlacePortal(6, 3, world.West, 1); err != nil {
		t.Fatal(err)
	}
	if err := lvl.Grid.PlacePortal(2, 1, world.East, 1); err != nil {
		t.Fatal(err)
	}
	g := newTestGame(t, lvl)

	// 4.5 -> 6.0 is 30 forward ticks; the crossing into the portal cell
	// happens on the way.
	for i := 0; i < 32; i++ {
		g.Step(frame(core.ActionForward))
	}
	if g.State().Teleports != 1 {
		t.Fatalf("Teleports = %d, expected 1", g.State().Teleports)
	}
	if math.Abs(g.Pose().Pos.Y-1.5) > 0.2 {
		t.Errorf("Y = %v, expected near the partner row", g.Pose().Pos.Y)
	}
}

func TestRenderDrawsWallSlices(t *testing.T) {
	g := newTestGame(t, testLevel(t))
	s := core.NewScreen(80, 24)
	g.Render(s)

	// The wall straight ahead is 3.5 cells away: the center column must hold
	// a shaded wall slice at the horizon.
	mid := s.GetCell(40, 11)
	switch mid.Rune {
	case '█', '▓', '▒', '░':
	default:
		t.Errorf("center cell = %q, expected a wall shade", mid.Rune)
	}

	if s.Row(23) == "" || s.Row(23)[0] != ' ' {
		// Status line starts with a space then the world name.
		t.Errorf("status row = %q", s.Row(23))
	}
	if got := s.Row(23); len(got) < 10 {
		t.Errorf("status row too short: %q", got)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, testLevel(t))
	g.Resize(10, 5)
	if !g.State().TooSmall {
		t.Fatal("expected TooSmall for a 10x5 terminal")
	}

	s := core.NewScreen(10, 5)
	g.Render(s) // must not panic and must not draw the world
	g.Resize(80, 24)
	if g.State().TooSmall {
		t.Error("expected TooSmall to clear after resize")
	}
}
