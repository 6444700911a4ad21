// Package tui runs snake in a terminal with Bubble Tea, locally or per SSH session.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent when the loop period elapses.
type TickMsg time.Time

// tickCmd schedules the next TickMsg after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
