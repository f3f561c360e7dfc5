package world

import "github.com/vovakirdan/tui-raycast/internal/core"

// Level bundles a grid with its metadata and the player spawn pose.
type Level struct {
	ID    string
	Name  string
	Grid  *Grid
	Spawn core.Vec2 // continuous position, cell units
	Dir   core.Vec2 // initial facing, unit vector
}
