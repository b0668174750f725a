package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to size the playfield and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frame driver ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic spawning
}

// DefaultConfig returns a RuntimeConfig with no screen attached.
// ScreenW and ScreenH must come from the real display before a game is reset.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickSeconds returns the nominal frame length for the configured tick rate.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	GameOver bool   // Whether the session has ended
	Paused   bool   // Whether the game is paused
	Tick     uint64 // Simulation ticks run in this session
	Enemies  int    // Live enemy count
}

// EventKind identifies a one-shot signal raised by a simulation tick.
type EventKind int

const (
	EventBounce     EventKind = iota // An enemy reflected off a playfield edge
	EventEliminated                  // The player touched an enemy
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventBounce:
		return "bounce"
	case EventEliminated:
		return "eliminated"
	default:
		return "unknown"
	}
}

// Event is a platform-level signal consumed by audio and logging.
type Event struct {
	Kind   EventKind
	Entity int     // Enemy that bounced or eliminated the player
	X, Y   float64 // World position where it happened
}

// StepResult is returned by Game.Step() after each simulation tick.
// Events are produced by this tick only and must be drained by the caller.
type StepResult struct {
	State  GameState
	Events []Event
}
