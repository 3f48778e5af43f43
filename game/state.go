package game

// Mode is the outer wrapper around a session.
type Mode uint8

const (
	ModeMenu Mode = iota
	ModePlaying
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// Phase is the state of the inner piece loop while playing.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseSpawning
	PhaseFalling
	PhaseLocking
	PhaseLineClearing
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSpawning:
		return "spawning"
	case PhaseFalling:
		return "falling"
	case PhaseLocking:
		return "locking"
	case PhaseLineClearing:
		return "line-clearing"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// moving reports whether the active piece accepts movement.
func (p Phase) moving() bool {
	return p == PhaseFalling || p == PhaseLocking
}
