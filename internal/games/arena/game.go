// Package arena adapts the ball-arena simulation to the registry.Game
// interface: it sizes the playfield from the terminal, turns input frames
// into movement intent, and draws the session into a screen buffer.
package arena

import (
	"fmt"

	"github.com/vovakirdan/ball-arena/internal/config"
	"github.com/vovakirdan/ball-arena/internal/core"
	"github.com/vovakirdan/ball-arena/internal/games/arena/sim"
	"github.com/vovakirdan/ball-arena/internal/registry"
)

// HUDRows is the number of screen rows reserved below the playfield.
const HUDRows = 1

// ClassicEnemyCount is the enemy population of the arena_classic variant.
const ClassicEnemyCount = 4

// Package-level configuration, set by the CLI before games are created.
var activeConfig = config.DefaultArenaConfig()

// SetConfig sets the configuration for games created afterwards.
func SetConfig(cfg config.ArenaConfig) {
	activeConfig = cfg
}

// Game runs one arena session at a time.
type Game struct {
	id    string
	title string
	cfg   config.ArenaConfig

	session *sim.Session
	view    viewport
	paused  bool
}

// New creates the standard arena with the configured enemy count.
func New() *Game {
	return &Game{id: "arena", title: "Ball Arena", cfg: activeConfig}
}

// NewClassic creates the small-population variant.
func NewClassic() *Game {
	cfg := activeConfig
	cfg.Enemies.Count = ClassicEnemyCount
	return &Game{id: "arena_classic", title: "Ball Arena Classic", cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Config returns the settings this game spawns sessions with.
func (g *Game) Config() config.ArenaConfig {
	return g.cfg
}

// Reset spawns a fresh session sized to the screen in runtime.
// The playfield is the screen minus the HUD, in cells, times the cell size.
// On failure the previous session, if any, is kept.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	cols, rows := runtime.ScreenW, runtime.ScreenH-HUDRows
	if cols <= 0 || rows <= 0 {
		return fmt.Errorf("arena: %w: screen %dx%d", sim.ErrPlayfieldUnavailable, runtime.ScreenW, runtime.ScreenH)
	}

	cw, ch := g.cfg.Display.CellWidth, g.cfg.Display.CellHeight
	pf, err := sim.NewPlayfield(float64(cols)*cw, float64(rows)*ch)
	if err != nil {
		return fmt.Errorf("arena: %w", err)
	}

	session, err := sim.NewSession(pf, spawnConfig(g.cfg), sim.NewSource(runtime.Seed))
	if err != nil {
		return fmt.Errorf("arena: %w", err)
	}

	g.session = session
	g.view = newViewport(pf, cols, rows, cw, ch)
	g.paused = false
	return nil
}

// Step advances the session by dt seconds.
// Pause toggles on ActionPause; directions are summed into an intent vector.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if g.session == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	x, y := in.Axis()
	events := g.session.Tick(sim.IntentFromAxis(x, y), dt)
	return core.StepResult{State: g.State(), Events: convertEvents(events)}
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Paused: g.paused}
	}
	return core.GameState{
		GameOver: g.session.Phase() == sim.PhaseOver,
		Paused:   g.paused,
		Tick:     g.session.Ticks(),
		Enemies:  g.session.Store().EnemyCount(),
	}
}

func spawnConfig(c config.ArenaConfig) sim.SpawnConfig {
	return sim.SpawnConfig{
		PlayerStart:    sim.V(c.Player.StartX, c.Player.StartY),
		Player:         sim.Body{Radius: c.Player.Radius, Speed: c.Player.Speed},
		Enemy:          sim.Body{Radius: c.Enemies.Radius, Speed: c.Enemies.Speed},
		EnemyCount:     c.Enemies.Count,
		DirectionRange: c.Enemies.DirectionRange,
	}
}

func convertEvents(events []sim.Event) []core.Event {
	if len(events) == 0 {
		return nil
	}
	out := make([]core.Event, 0, len(events))
	for _, ev := range events {
		kind := core.EventBounce
		if ev.Kind == sim.EventPlayerEliminated {
			kind = core.EventEliminated
		}
		out = append(out, core.Event{Kind: kind, Entity: ev.Enemy, X: ev.Position.X, Y: ev.Position.Y})
	}
	return out
}

// Register games on package initialization
func init() {
	registry.Register("arena", func() registry.Game {
		return New()
	})
	registry.Register("arena_classic", func() registry.Game {
		return NewClassic()
	})
}
