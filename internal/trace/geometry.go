// Package trace implements grid traversal for the sandbox: the per-ray
// state machine that walks the grid and resolves walls, mirrors and portals,
// the frame-level ray fan, and the player motion resolver built on the same
// primitives.
package trace

import (
	"math"

	"github.com/vovakirdan/tui-raycast/internal/core"
	"github.com/vovakirdan/tui-raycast/internal/world"
)

const (
	// portalEpsilon is the forward offset applied after a teleport so the
	// ray (or player) does not immediately re-trigger the destination
	// entrance.
	portalEpsilon = 0.05

	// reflectEpsilon pushes a reflected ray off the boundary it bounced on,
	// so the restarted stepper starts strictly inside a cell.
	reflectEpsilon = 1e-9
)

// stepper is an incremental grid walker. Per-axis crossing distances are
// computed once when a segment starts and advanced by a constant delta per
// cell, so each step is O(1). Every reflection or teleport starts a fresh
// segment with a new stepper.
type stepper struct {
	col, row         int
	stepCol, stepRow int
	tMaxX, tMaxY     float64 // distance from segment start to next crossing
	tDeltaX, tDeltaY float64 // distance between consecutive crossings
}

// newStepper initializes a walker at the given continuous position.
func newStepper(pos, dir core.Vec2) stepper {
	s := stepper{
		col:     int(math.Floor(pos.X)),
		row:     int(math.Floor(pos.Y)),
		tMaxX:   math.Inf(1),
		tMaxY:   math.Inf(1),
		tDeltaX: math.Inf(1),
		tDeltaY: math.Inf(1),
	}
	fx := pos.X - math.Floor(pos.X)
	fy := pos.Y - math.Floor(pos.Y)

	switch {
	case dir.X > 0:
		s.stepCol = 1
		s.tDeltaX = 1 / dir.X
		s.tMaxX = (1 - fx) / dir.X
	case dir.X < 0:
		s.stepCol = -1
		s.tDeltaX = 1 / -dir.X
		s.tMaxX = fx / -dir.X
	}
	switch {
	case dir.Y > 0:
		s.stepRow = 1
		s.tDeltaY = 1 / dir.Y
		s.tMaxY = (1 - fy) / dir.Y
	case dir.Y < 0:
		s.stepRow = -1
		s.tDeltaY = 1 / -dir.Y
		s.tMaxY = fy / -dir.Y
	}
	return s
}

// advance crosses the nearest grid line ahead and moves into the next cell.
// It returns the travel distance from the segment start to the crossing and
// the side of the entered cell that was crossed. Ties prefer the X axis.
func (s *stepper) advance() (t float64, entered world.Side) {
	if s.tMaxX <= s.tMaxY {
		t = s.tMaxX
		s.tMaxX += s.tDeltaX
		s.col += s.stepCol
		if s.stepCol > 0 {
			return t, world.West
		}
		return t, world.East
	}
	t = s.tMaxY
	s.tMaxY += s.tDeltaY
	s.row += s.stepRow
	if s.stepRow > 0 {
		return t, world.North
	}
	return t, world.South
}

// NextBoundary returns the minimal positive distance from pos along dir to
// the next vertical or horizontal grid line, and the side through which the
// neighboring cell would be entered. Ties prefer the vertical (X) crossing.
func NextBoundary(pos, dir core.Vec2) (float64, world.Side) {
	s := newStepper(pos, dir)
	return s.advance()
}

// Reflect flips the direction component perpendicular to the struck mirror
// edge: a mirror on a vertical edge (entered from east or west) flips dx, a
// mirror on a horizontal edge flips dy.
func Reflect(dir core.Vec2, struck world.Side) core.Vec2 {
	if struck.Horizontal() {
		dir.Y = -dir.Y
	} else {
		dir.X = -dir.X
	}
	return dir
}

// PortalTransform maps a position on an entrance edge, and the incoming
// direction, to the partner entrance. The transverse coordinate is mirrored
// (stepping into the same face you exit from), the direction is turned
// around and then rotated by the quarter-turn delta between the two entrance
// subsquares, and the result is nudged forward so the exit entrance is not
// immediately re-triggered.
func PortalTransform(pos, dir core.Vec2, enter, exit world.Entrance) (core.Vec2, core.Vec2) {
	cellPos := core.V(pos.X-float64(enter.Col), pos.Y-float64(enter.Row))

	// Base transfer across the same face.
	if enter.Sub.Horizontal() {
		cellPos.X = 1 - cellPos.X
	} else {
		cellPos.Y = 1 - cellPos.Y
	}
	dir = dir.Rotated(math.Pi)

	// Relative orientation of the two entrances.
	turns := enter.Sub.TurnsTo(exit.Sub)
	dir = dir.Rotated(float64(turns) * math.Pi / 2)
	switch turns {
	case 1:
		cellPos = core.V(1-cellPos.Y, cellPos.X)
	case 2:
		cellPos = core.V(1-cellPos.X, 1-cellPos.Y)
	case 3:
		cellPos = core.V(cellPos.Y, 1-cellPos.X)
	}

	out := core.V(float64(exit.Col)+cellPos.X, float64(exit.Row)+cellPos.Y)
	return out.Add(dir.Scale(portalEpsilon)), dir
}
