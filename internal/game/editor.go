package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-raycast/internal/core"
	"github.com/vovakirdan/tui-raycast/internal/world"
)

// editReach is how far ahead of the player the editor targets, in cells.
const editReach = 1.2

// applyEdits mutates the grid according to editor actions. Called between
// frames only, so traversal never observes a half-applied edit.
func (g *Game) applyEdits(in core.InputFrame) {
	col, row, face, ok := g.editTarget()
	if !ok {
		return
	}

	switch {
	case in.Has(core.ActionPlaceWall):
		g.grid.Set(col, row, world.WallCell)
		g.editStatus = fmt.Sprintf("wall at (%d,%d)", col, row)
	case in.Has(core.ActionPlaceMirror):
		cell := g.grid.At(col, row)
		if cell.Kind == world.Mirror {
			// Repeated placements extend the mirror edge by edge.
			cell.Mirror = cell.Mirror.With(face)
		} else {
			cell = world.MirrorCell(world.NewSideSet(face))
		}
		g.grid.Set(col, row, cell)
		g.editStatus = fmt.Sprintf("mirror at (%d,%d) facing %s", col, row, face)
	case in.Has(core.ActionPlacePortal):
		g.placePortalEntrance(col, row, face)
	case in.Has(core.ActionClearCell):
		g.grid.Set(col, row, world.EmptyCell)
		g.editStatus = fmt.Sprintf("cleared (%d,%d)", col, row)
	}
}

// placePortalEntrance drives the two-step portal flow: the first placement
// creates an inert entrance, the second links it. Misconfigurations are
// reported on the status line and leave the pending entrance in place.
func (g *Game) placePortalEntrance(col, row int, face world.Side) {
	id := g.pendingPortal
	if id == 0 {
		id = g.grid.NextPortalID()
	}
	if err := g.grid.PlacePortal(col, row, face, id); err != nil {
		g.editStatus = err.Error()
		return
	}
	if g.grid.Linked(id) {
		g.pendingPortal = 0
		g.editStatus = fmt.Sprintf("portal %d linked", id)
	} else {
		g.pendingPortal = id
		g.editStatus = fmt.Sprintf("portal %d placed, pick its partner", id)
	}
}

// editTarget returns the cell one reach ahead of the player and the edge of
// that cell facing the player. The player's own cell is never a target.
func (g *Game) editTarget() (col, row int, face world.Side, ok bool) {
	ahead := g.pose.Pos.Add(g.pose.Dir.Scale(editReach))
	col, row = int(math.Floor(ahead.X)), int(math.Floor(ahead.Y))
	if col == int(math.Floor(g.pose.Pos.X)) && row == int(math.Floor(g.pose.Pos.Y)) {
		return 0, 0, world.North, false
	}
	if !g.grid.InBounds(col, row) {
		return 0, 0, world.North, false
	}

	d := g.pose.Dir
	if math.Abs(d.X) >= math.Abs(d.Y) {
		if d.X > 0 {
			face = world.West
		} else {
			face = world.East
		}
	} else {
		if d.Y > 0 {
			face = world.North
		} else {
			face = world.South
		}
	}
	return col, row, face, true
}
