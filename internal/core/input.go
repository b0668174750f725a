package core

// Action represents a semantic game action, abstracted from physical key presses.
// Directions are reported as held for every tick they stay down; the rest fire once.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionPause          // P, Escape - pause/unpause
	ActionRestart        // R - new session after game over
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Directions lists the movement actions in a stable order.
var Directions = [...]Action{ActionUp, ActionDown, ActionLeft, ActionRight}

// Opposite returns the direction pointing the other way, or ActionNone.
func (a Action) Opposite() Action {
	switch a {
	case ActionUp:
		return ActionDown
	case ActionDown:
		return ActionUp
	case ActionLeft:
		return ActionRight
	case ActionRight:
		return ActionLeft
	default:
		return ActionNone
	}
}

// InputFrame represents the input state during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// Merge copies every active action of other into f.
func (f *InputFrame) Merge(other InputFrame) {
	for k, v := range other.Actions {
		if v {
			f.Set(k)
		}
	}
}

// Axis returns the summed direction of held movement actions.
// Right and Up are positive. Opposing directions cancel out.
func (f InputFrame) Axis() (x, y int) {
	if f.Has(ActionRight) {
		x++
	}
	if f.Has(ActionLeft) {
		x--
	}
	if f.Has(ActionUp) {
		y++
	}
	if f.Has(ActionDown) {
		y--
	}
	return x, y
}
