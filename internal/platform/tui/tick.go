// Package tui provides the Bubble Tea frontend for the invaders game.
// It handles the terminal UI loop, key mapping and drawing the rasterised
// game into the terminal.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
