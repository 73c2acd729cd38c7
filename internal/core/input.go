package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, Up arrow - move up / rotate
	ActionDown         // S, Down arrow - move down
	ActionLeft         // A, Left arrow - move left
	ActionRight        // D, Right arrow - move right
	ActionQuit         // Q, Esc, Ctrl+C - exit the game
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
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction maps a directional action to its grid direction.
// The second result is false for non-directional actions.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionUp:
		return DirUp, true
	case ActionDown:
		return DirDown, true
	case ActionLeft:
		return DirLeft, true
	case ActionRight:
		return DirRight, true
	default:
		return DirRight, false
	}
}

// InputSource exposes the most recently pressed direction.
type InputSource interface {
	LatestDirection() Direction
}

// KeyLatch is an InputSource with last-key-wins semantics: every press
// overwrites the previous one and only the latest is seen when sampled.
// It has no queue and no locking; presses must be delivered on the same
// goroutine that samples it.
type KeyLatch struct {
	latest Direction
}

// NewKeyLatch returns a latch holding the initial direction.
func NewKeyLatch(initial Direction) *KeyLatch {
	return &KeyLatch{latest: initial}
}

// Press records a direction key.
func (k *KeyLatch) Press(d Direction) {
	k.latest = d
}

// LatestDirection implements InputSource.
func (k *KeyLatch) LatestDirection() Direction {
	return k.latest
}
