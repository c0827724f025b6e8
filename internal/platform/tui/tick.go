// Package tui provides the Bubble Tea presenter.
// It drives the game loop from tea ticks, maps keys to actions and draws the
// canvas as half-block cells.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/heart-quest/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends the next tick message.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/core.TickRate, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
