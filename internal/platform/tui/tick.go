// Package tui provides the Bubble Tea integration for the raycast platform.
// It handles the terminal UI loop, input mapping, and session orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation step. Each tick the session applies the
// buffered input frame, advances the player, and casts a fresh ray fan.
type TickMsg time.Time

// tickCmd schedules the next tick. A non-positive rate falls back to 60, so a
// zeroed runtime config cannot stall the loop with a division by zero.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
