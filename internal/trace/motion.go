package trace

import (
	"math"

	"github.com/vovakirdan/tui-raycast/internal/core"
	"github.com/vovakirdan/tui-raycast/internal/world"
)

// MoveResult is the outcome of one player movement step.
type MoveResult struct {
	Pose       Pose
	Teleported bool
}

// Move applies a movement delta (already scaled by speed and frame time) to
// the player pose against the grid. Walls and mirrors block per axis, so
// diagonal movement slides along a blocked axis instead of stopping. A
// linked portal entrance crossed by the move teleports the player once,
// rotating the facing by the portal's orientation delta; mirrors never
// reflect the player. radius keeps the player off the outer boundary.
func Move(g *world.Grid, pose Pose, delta core.Vec2, radius float64) MoveResult {
	pos := pose.Pos
	next := pos.Add(delta)

	curCol, curRow := int(math.Floor(pos.X)), int(math.Floor(pos.Y))
	nextCol, nextRow := int(math.Floor(next.X)), int(math.Floor(next.Y))

	cur := g.At(curCol, curRow)
	dest := g.At(nextCol, nextRow)

	if dest.Kind == world.Portal && cur.Kind != world.Portal {
		if res, ok := teleportPlayer(g, pose, next, curCol, curRow, nextCol, nextRow); ok {
			return res
		}
	}

	// Axis-separated collision: each axis applies independently, which makes
	// diagonal movement glide along walls.
	if !g.At(int(math.Floor(next.X)), curRow).Solid() {
		pos.X = next.X
	}
	if !g.At(int(math.Floor(pos.X)), nextRow).Solid() {
		pos.Y = next.Y
	}

	pos.X = core.ClampF(pos.X, radius, float64(g.Cols())-radius)
	pos.Y = core.ClampF(pos.Y, radius, float64(g.Rows())-radius)

	return MoveResult{Pose: Pose{Pos: pos, Dir: pose.Dir}}
}

// teleportPlayer attempts a portal transfer into the destination cell.
// The entrance side is the side of the destination cell the move crossed;
// a diagonal crossing prefers the X axis, matching the tracer's tie rule.
func teleportPlayer(g *world.Grid, pose Pose, next core.Vec2, curCol, curRow, nextCol, nextRow int) (MoveResult, bool) {
	var side world.Side
	switch {
	case nextCol > curCol:
		side = world.West
	case nextCol < curCol:
		side = world.East
	case nextRow > curRow:
		side = world.North
	case nextRow < curRow:
		side = world.South
	default:
		// Still inside the same cell; the entrance is not crossed yet.
		return MoveResult{}, false
	}

	cell := g.At(nextCol, nextRow)
	id, ok := cell.EntranceOn(side)
	if !ok {
		return MoveResult{}, false
	}
	self := world.Entrance{Col: nextCol, Row: nextRow, Sub: side}
	exit, err := g.Exit(id, self)
	if err != nil {
		// Inert entrance: walk through as empty space.
		return MoveResult{}, false
	}

	outPos, outDir := PortalTransform(next, pose.Dir, self, exit)
	return MoveResult{
		Pose:       Pose{Pos: outPos, Dir: outDir},
		Teleported: true,
	}, true
}
