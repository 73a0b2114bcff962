// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTickRate is used for games that do not declare their own rate.
const DefaultTickRate = 60

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickInterval converts a rate in ticks per second to a period.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd returns a Bubble Tea command that sends a tick after one period.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
