// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxTickDelta caps the simulated length of one tick, in seconds.
const maxTickDelta = 0.1

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

// tickDelta returns the seconds between two ticks, falling back to the
// nominal tick length for the first tick and clamping long stalls.
func tickDelta(prev, now time.Time, nominal float64) float64 {
	if prev.IsZero() || !now.After(prev) {
		return nominal
	}
	dt := now.Sub(prev).Seconds()
	if dt > maxTickDelta {
		return maxTickDelta
	}
	return dt
}
