// Package game implements the raycast session: player movement, the map
// editor, and rendering of the traced view. It contains pure logic with no
// external dependencies (especially no Bubble Tea); the platform handles
// input mapping, timing, and terminal output.
package game

import (
	"math"

	"github.com/vovakirdan/tui-raycast/internal/config"
	"github.com/vovakirdan/tui-raycast/internal/core"
	"github.com/vovakirdan/tui-raycast/internal/trace"
	"github.com/vovakirdan/tui-raycast/internal/world"
)

// Minimum terminal size for a playable view.
const (
	minScreenW = 40
	minScreenH = 12
)

// Game runs one raycast session in a single world.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.Config

	level *world.Level
	grid  *world.Grid
	pose  trace.Pose

	hits []trace.HitRecord

	editing   bool
	paused    bool
	steps     uint64
	teleports int

	// Editor state: a placed-but-unlinked portal entrance waiting for its
	// partner, and the last status line shown in edit mode.
	pendingPortal world.PortalID
	editStatus    string
}

// New creates a session for the given world. The level is not touched until
// Reset, which clones its grid so editor changes never leak back.
func New(level *world.Level, cfg config.Config) *Game {
	return &Game{
		level: level,
		cfg:   cfg,
	}
}

// ID returns the identifier of the world being played.
func (g *Game) ID() string {
	return g.level.ID
}

// Title returns the display name of the world being played.
func (g *Game) Title() string {
	return g.level.Name
}

// Reset initializes or restarts the session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime
	g.grid = g.level.Grid.Clone()
	g.pose = trace.Pose{Pos: g.level.Spawn, Dir: g.level.Dir.Normalized()}
	g.hits = nil
	g.editing = false
	g.paused = false
	g.steps = 0
	g.teleports = 0
	g.pendingPortal = 0
	g.editStatus = ""
	g.castFrame()
}

// Resize adapts the session to a new terminal size mid-play.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.castFrame()
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}
	g.steps++

	if in.Has(core.ActionEditToggle) {
		g.editing = !g.editing
		g.editStatus = ""
	}
	if g.editing {
		// Grid mutations happen here, before the frame is cast, so every
		// ray of the frame sees the same grid.
		g.applyEdits(in)
	}

	dt := 1.0 / float64(g.runtime.TickRate)
	g.applyTurns(in, dt)
	g.applyMovement(in, dt)
	g.castFrame()

	return core.StepResult{State: g.State()}
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Editing:   g.editing,
		Paused:    g.paused,
		TooSmall:  g.runtime.ScreenW < minScreenW || g.runtime.ScreenH < minScreenH,
		Teleports: g.teleports,
		Steps:     g.steps,
	}
}

// Level returns a snapshot of the session's current world, suitable for
// saving. The grid is cloned so the caller cannot race the session.
func (g *Game) Level() *world.Level {
	return &world.Level{
		ID:    g.level.ID,
		Name:  g.level.Name,
		Grid:  g.grid.Clone(),
		Spawn: g.pose.Pos,
		Dir:   g.pose.Dir,
	}
}

// Pose returns the player's current position and facing.
func (g *Game) Pose() trace.Pose {
	return g.pose
}

func (g *Game) applyTurns(in core.InputFrame, dt float64) {
	turn := core.Deg2Rad(g.cfg.Player.TurnSpeed) * dt
	if in.Has(core.ActionTurnLeft) {
		g.pose.Dir = g.pose.Dir.Rotated(-turn)
	}
	if in.Has(core.ActionTurnRight) {
		g.pose.Dir = g.pose.Dir.Rotated(turn)
	}
	if in.Has(core.ActionTurnAround) {
		g.pose.Dir = g.pose.Dir.Rotated(math.Pi)
	}
}

func (g *Game) applyMovement(in core.InputFrame, dt float64) {
	speed := g.cfg.Player.MoveSpeed * dt
	if in.Has(core.ActionSprint) {
		speed *= g.cfg.Player.SprintMultiplier
	}

	var dir core.Vec2
	if in.Has(core.ActionForward) {
		dir = dir.Add(g.pose.Dir)
	}
	if in.Has(core.ActionBackward) {
		dir = dir.Sub(g.pose.Dir)
	}
	right := g.pose.Dir.Rotated(math.Pi / 2)
	if in.Has(core.ActionStrafeRight) {
		dir = dir.Add(right)
	}
	if in.Has(core.ActionStrafeLeft) {
		dir = dir.Sub(right)
	}
	if dir == (core.Vec2{}) {
		return
	}

	// Normalizing keeps diagonal movement at the same speed as cardinal;
	// a forward+strafe tick covers speed cells, not speed*sqrt(2).
	delta := dir.Normalized().Scale(speed)

	res := trace.Move(g.grid, g.pose, delta, g.cfg.Player.CollisionRadius)
	if res.Teleported {
		g.teleports++
	}
	g.pose = res.Pose
}

// castFrame traces the full ray fan for the current pose. Rendering reads
// g.hits; the buffer is reused across frames.
func (g *Game) castFrame() {
	rays := g.cfg.Render.RayCount
	if rays <= 0 {
		rays = g.runtime.ScreenW
	}
	if rays <= 0 {
		rays = 1
	}
	fan := trace.FanConfig{
		FOVDegrees: g.cfg.Render.FOVDegrees,
		RayCount:   rays,
	}
	g.hits = trace.CastFan(g.grid, g.pose, g.traceConfig(), fan, g.hits)
}

func (g *Game) traceConfig() trace.Config {
	return trace.Config{
		MaxTraceDistance: g.cfg.Trace.MaxTraceDistance,
		MaxBounces:       g.cfg.Trace.MaxBounces,
		MaxTeleports:     g.cfg.Trace.MaxTeleports,
	}
}
