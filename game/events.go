package game

import "github.com/plus3/blockfall/piece"

// EventKind names a state change the presentation layer may react to.
type EventKind uint8

const (
	EventSpawned EventKind = iota + 1
	EventLocking
	EventLockCancelled
	EventLocked
	EventCleared
	EventGameOver
	EventModeChanged
)

func (k EventKind) String() string {
	switch k {
	case EventSpawned:
		return "spawned"
	case EventLocking:
		return "locking"
	case EventLockCancelled:
		return "lock-cancelled"
	case EventLocked:
		return "locked"
	case EventCleared:
		return "cleared"
	case EventGameOver:
		return "game-over"
	case EventModeChanged:
		return "mode-changed"
	default:
		return "unknown"
	}
}

// Event is delivered to listeners after the frame that produced it has
// finished, so the game state they can observe is already consistent.
type Event struct {
	Kind  EventKind
	Time  float64
	Shape piece.Shape
	// Rows lists the cleared row indices for EventCleared.
	Rows []int
	Mode Mode
	// Err is set for EventGameOver.
	Err error
}

// Listener receives events in the order they happened.
type Listener func(Event)

// Presenter receives a snapshot at the end of every frame.
type Presenter interface {
	Present(Snapshot)
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(Snapshot)

func (f PresenterFunc) Present(s Snapshot) { f(s) }
