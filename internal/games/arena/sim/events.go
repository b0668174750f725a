package sim

// EventKind identifies a one-shot signal produced by a tick.
type EventKind int

const (
	EventBounced          EventKind = iota // An enemy crossed an edge and reflected
	EventPlayerEliminated                  // The player overlapped an enemy
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventBounced:
		return "bounced"
	case EventPlayerEliminated:
		return "player eliminated"
	default:
		return "unknown"
	}
}

// Event is produced by a tick and drained by the frame driver afterwards.
type Event struct {
	Kind     EventKind
	Enemy    int  // ID of the enemy involved
	Position Vec2 // Bounce: pre-clamp enemy center. Elimination: player center.
	FlipX    bool // Bounce only: direction.x was negated
	FlipY    bool // Bounce only: direction.y was negated
}
