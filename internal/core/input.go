package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps keys to actions so the game logic never sees
// raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionForward            // W - walk forward
	ActionBackward           // S - walk backward
	ActionStrafeLeft         // A - sidestep left
	ActionStrafeRight        // D - sidestep right
	ActionTurnLeft           // Left arrow - rotate facing counter-clockwise
	ActionTurnRight          // Right arrow - rotate facing clockwise
	ActionSprint             // Shift-style speed modifier
	ActionEditToggle         // Tab - switch between play and edit mode
	ActionPlaceWall          // 1 - edit: place a wall in the target cell
	ActionPlaceMirror        // 2 - edit: place/extend a mirror on the faced edge
	ActionPlacePortal        // 3 - edit: place a portal entrance on the faced edge
	ActionClearCell          // 0 - edit: clear the target cell
	ActionTurnAround         // F - flip facing 180 degrees
	ActionPause              // P - pause/unpause
	ActionRestart            // R - reload the current world
	ActionQuit               // Q, Ctrl+C - exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionForward:
		return "Forward"
	case ActionBackward:
		return "Backward"
	case ActionStrafeLeft:
		return "StrafeLeft"
	case ActionStrafeRight:
		return "StrafeRight"
	case ActionTurnLeft:
		return "TurnLeft"
	case ActionTurnRight:
		return "TurnRight"
	case ActionSprint:
		return "Sprint"
	case ActionEditToggle:
		return "EditToggle"
	case ActionPlaceWall:
		return "PlaceWall"
	case ActionPlaceMirror:
		return "PlaceMirror"
	case ActionPlacePortal:
		return "PlacePortal"
	case ActionClearCell:
		return "ClearCell"
	case ActionTurnAround:
		return "TurnAround"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
