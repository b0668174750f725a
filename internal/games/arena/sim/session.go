package sim

import "math"

// Phase is the session state.
type Phase int

const (
	PhaseRunning Phase = iota // Player alive
	PhaseOver                 // Player eliminated; terminal
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Session runs the per-tick system sequence over one store.
type Session struct {
	store *Store
	phase Phase
	tick  uint64
}

// NewSession spawns a fresh store and starts it in PhaseRunning.
func NewSession(pf Playfield, cfg SpawnConfig, src Source) (*Session, error) {
	store, err := Spawn(pf, cfg, src)
	if err != nil {
		return nil, err
	}
	return NewSessionFromStore(store), nil
}

// NewSessionFromStore wraps an already populated store.
// A store without a player starts in PhaseOver.
func NewSessionFromStore(store *Store) *Session {
	phase := PhaseRunning
	if !store.HasPlayer() {
		phase = PhaseOver
	}
	return &Session{store: store, phase: phase}
}

// Store returns the session's store for read-only collaborators.
func (s *Session) Store() *Store {
	return s.store
}

// Phase returns the current session state.
func (s *Session) Phase() Phase {
	return s.phase
}

// Ticks returns how many ticks have run.
func (s *Session) Ticks() uint64 {
	return s.tick
}

// Tick advances the simulation by dt seconds:
// movement, player confinement, enemy reflection, enemy confinement, collision.
// Negative or non-finite dt is treated as zero. After elimination enemies keep
// moving and bouncing; player systems are no-ops.
func (s *Session) Tick(intent Vec2, dt float64) []Event {
	if !(dt > 0) || math.IsInf(dt, 0) {
		dt = 0
	}
	s.tick++

	MovePlayer(s.store, intent, dt)
	MoveEnemies(s.store, dt)
	ConfinePlayer(s.store)
	events := ReflectEnemies(s.store)
	ConfineEnemies(s.store)

	if ev, ok := DetectCollision(s.store); ok {
		s.phase = PhaseOver
		events = append(events, ev)
	}
	return events
}
