package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/ball-arena/internal/core"
	"github.com/vovakirdan/ball-arena/internal/registry"
)

// HelpRows is the number of terminal rows used by the help bar.
const HelpRows = 1

// GameArea returns the screen size left for the game in a terminal of w×h cells.
func GameArea(w, h int) (int, int) {
	return w, h - HelpRows
}

// EventSink consumes the events produced by each frame.
type EventSink interface {
	Handle(events []core.Event) int
}

// Options configures the frame driver.
type Options struct {
	Logger     *log.Logger
	Audio      EventSink
	MaxFrameDT float64       // Seconds; frame dt is clamped to this
	HoldWindow time.Duration // How long a key press counts as held
	FixedSeed  bool          // Restarts reuse the seed instead of drawing a new one
	Now        func() time.Time
}

// Model is the Bubble Tea model running one arena game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	seedFixed bool

	keys    KeyMap
	help    help.Model
	holds   *HoldTracker
	oneShot core.InputFrame

	logger    *log.Logger
	audio     EventSink
	sessionID string
	maxDT     float64
	now       func() time.Time
	last      time.Time

	gameState core.GameState
	quitting  bool
}

// NewModel creates a model for a game that has already been Reset with cfg.
// cfg.ScreenW and cfg.ScreenH are the game area, without the help bar.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		seedFixed: opts.FixedSeed,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		holds:     NewHoldTracker(opts.HoldWindow),
		oneShot:   core.NewInputFrame(),
		logger:    opts.Logger,
		audio:     opts.Audio,
		sessionID: uuid.NewString(),
		maxDT:     opts.MaxFrameDT,
		now:       opts.Now,
		gameState: game.State(),
	}
}

// SessionID returns the identifier used in logs for the current session.
func (m Model) SessionID() string {
	return m.sessionID
}

// Init logs the session start and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logSessionStart("started")
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "session", m.sessionID, "tick", m.gameState.Tick)
		return m, tea.Quit
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		m.holds.Press(a, m.now())
	case core.ActionPause:
		m.oneShot.Set(core.ActionPause)
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.restart("restarted")
		}
	}
	return m, nil
}

// handleResize processes window resize events.
// A new size starts a fresh session; if the new size cannot hold a
// playfield the current session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.help.Width = msg.Width
	w, h := GameArea(msg.Width, msg.Height)
	if w == m.config.ScreenW && h == m.config.ScreenH {
		return m, nil
	}

	prev := m.config
	m.config.ScreenW, m.config.ScreenH = w, h
	if !m.restart("resized") {
		m.config = prev
		return m, nil
	}
	m.screen.Resize(w, h)
	return m, nil
}

// restart resets the game into a fresh session. Returns false if the reset failed.
func (m *Model) restart(reason string) bool {
	cfg := m.config
	if !m.seedFixed {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := m.game.Reset(cfg); err != nil {
		m.logger.Warn("session reset failed", "session", m.sessionID, "reason", reason, "error", err)
		return false
	}

	m.config = cfg
	m.sessionID = uuid.NewString()
	m.gameState = m.game.State()
	m.holds.Reset()
	m.oneShot.Clear()
	m.last = time.Time{}
	m.logSessionStart(reason)
	return true
}

// handleTick runs one simulation frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDT(m.last, now, m.maxDT)
	m.last = now

	frame := core.NewInputFrame()
	m.holds.Apply(&frame, now)
	frame.Merge(m.oneShot)
	m.oneShot.Clear()

	wasOver := m.gameState.GameOver
	result := m.game.Step(frame, dt)
	m.gameState = result.State

	m.drainEvents(result.Events)
	if result.State.GameOver && !wasOver {
		m.logger.Info("session over", "session", m.sessionID, "tick", result.State.Tick)
	}

	return m, tickCmd(m.config.TickRate)
}

// drainEvents forwards frame events to audio and the log.
func (m Model) drainEvents(events []core.Event) {
	if len(events) == 0 {
		return
	}
	if m.audio != nil {
		m.audio.Handle(events)
	}
	for _, ev := range events {
		switch ev.Kind {
		case core.EventEliminated:
			m.logger.Info("player eliminated", "session", m.sessionID, "tick", m.gameState.Tick,
				"enemy", ev.Entity, "x", ev.X, "y", ev.Y)
		case core.EventBounce:
			m.logger.Debug("enemy bounced", "session", m.sessionID, "enemy", ev.Entity, "x", ev.X, "y", ev.Y)
		}
	}
}

func (m Model) logSessionStart(reason string) {
	m.logger.Info("session "+reason,
		"session", m.sessionID,
		"game", m.game.ID(),
		"screen", m.config.ScreenW, "rows", m.config.ScreenH,
		"seed", m.config.Seed,
		"enemies", m.gameState.Enemies,
	)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with a game that has already been Reset with cfg.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
