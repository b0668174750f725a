package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ball-arena/internal/core"
)

// KeyMap defines the arena key bindings.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Pause, k.Restart, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to an action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// HoldTracker emulates held direction keys.
// Terminals report key presses and auto-repeat, never releases, so a
// direction counts as held for a short window after each press.
type HoldTracker struct {
	window time.Duration
	until  [len(core.Directions)]time.Time // Indexed like core.Directions; zero means released
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{window: window}
}

// slot returns the index of a in core.Directions, or -1.
func slot(a core.Action) int {
	for i, d := range core.Directions {
		if d == a {
			return i
		}
	}
	return -1
}

// Press marks a direction as held from now. The opposite direction is
// released, so reversing is immediate.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	i := slot(a)
	if i < 0 {
		return
	}
	h.until[i] = now.Add(h.window)
	h.until[slot(a.Opposite())] = time.Time{}
}

// Apply sets every direction still held at now on the frame.
// Expired holds are dropped.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for i, a := range core.Directions {
		if h.until[i].IsZero() {
			continue
		}
		if now.After(h.until[i]) {
			h.until[i] = time.Time{}
			continue
		}
		frame.Set(a)
	}
}

// Reset releases all directions.
func (h *HoldTracker) Reset() {
	h.until = [len(core.Directions)]time.Time{}
}
