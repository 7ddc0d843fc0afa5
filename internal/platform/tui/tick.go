// Package tui provides the Bubble Tea integration for the rescue platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds between two ticks. The first tick, and
// any tick that arrives out of order, uses the nominal delta.
func frameDelta(last, now time.Time, nominal float64) float64 {
	if last.IsZero() || !now.After(last) {
		return nominal
	}
	return now.Sub(last).Seconds()
}
