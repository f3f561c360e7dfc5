package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-raycast/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to session actions. Shifted movement keys
// carry the sprint modifier, since terminals report no key-up events.
// Returns the actions (may be empty) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (actions []core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return []core.Action{core.ActionQuit}, true
	}

	switch key {
	case "w", "up":
		return []core.Action{core.ActionForward}, false
	case "W":
		return []core.Action{core.ActionForward, core.ActionSprint}, false
	case "s", "down":
		return []core.Action{core.ActionBackward}, false
	case "S":
		return []core.Action{core.ActionBackward, core.ActionSprint}, false
	case "a":
		return []core.Action{core.ActionStrafeLeft}, false
	case "A":
		return []core.Action{core.ActionStrafeLeft, core.ActionSprint}, false
	case "d":
		return []core.Action{core.ActionStrafeRight}, false
	case "D":
		return []core.Action{core.ActionStrafeRight, core.ActionSprint}, false
	case "left":
		return []core.Action{core.ActionTurnLeft}, false
	case "right":
		return []core.Action{core.ActionTurnRight}, false
	case "f":
		return []core.Action{core.ActionTurnAround}, false
	case "tab":
		return []core.Action{core.ActionEditToggle}, false
	case "1":
		return []core.Action{core.ActionPlaceWall}, false
	case "2":
		return []core.Action{core.ActionPlaceMirror}, false
	case "3":
		return []core.Action{core.ActionPlacePortal}, false
	case "0":
		return []core.Action{core.ActionClearCell}, false
	case "p", "esc":
		return []core.Action{core.ActionPause}, false
	case "r":
		return []core.Action{core.ActionRestart}, false
	}

	return nil, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	actions, isQuit := km.MapKey(msg)
	for _, a := range actions {
		frame.Set(a)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionBrowser
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionBrowser
	}

	return MenuActionNone
}
