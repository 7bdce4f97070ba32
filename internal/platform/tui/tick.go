// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps the time fed to a game in one tick, so a stalled
// terminal or a suspended process does not fast-forward the simulation.
const maxFrameDelta = 250 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// tickInterval is the nominal time between ticks.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// frameDelta returns the time elapsed between two ticks. The first tick,
// and any tick arriving out of order, counts as one nominal interval.
func frameDelta(last, now time.Time, tickRate int) time.Duration {
	if last.IsZero() || !now.After(last) {
		return tickInterval(tickRate)
	}
	return min(now.Sub(last), maxFrameDelta)
}
