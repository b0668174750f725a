// Package tui runs an arena session in the terminal with Bubble Tea.
// It drives frames, maps keys to actions, and renders the screen buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation frame.
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

// frameDT returns the seconds between two frames, clamped to [0, maxDT].
// A zero last time yields 0.
func frameDT(last, now time.Time, maxDT float64) float64 {
	if last.IsZero() {
		return 0
	}
	dt := now.Sub(last).Seconds()
	if dt < 0 {
		return 0
	}
	if maxDT > 0 && dt > maxDT {
		return maxDT
	}
	return dt
}
