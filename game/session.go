package game

import (
	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/piece"
)

// Session is the whole mutable state of a game. It lives in the scheduler's
// resources and only systems change it.
type Session struct {
	Mode  Mode
	Phase Phase

	Board  *board.Board
	Active *piece.Piece
	Next   piece.Shape

	Clock MovementClock
	Lock  LockTimer

	// Clearing holds full rows waiting out the clear delay.
	Clearing   []int
	ClearSince float64

	Lines  int
	Pieces int

	// signal is the error the current frame reports to Update.
	signal error
	fault  error
}

func newSession(cfg Config) Session {
	return Session{Board: board.New(cfg.Width, cfg.Height)}
}

// reset discards the piece, the board and every timer.
func (s *Session) reset() {
	s.Phase = PhaseIdle
	s.Board.Reset()
	s.Active = nil
	s.Next = 0
	s.Clock = MovementClock{}
	s.Lock.Reset()
	s.Clearing = nil
	s.ClearSince = 0
	s.Lines = 0
	s.Pieces = 0
}

// Faulted reports whether an invariant violation stopped the session.
func (s *Session) Faulted() bool {
	return s.fault != nil
}

func (s *Session) raise(err error) {
	if s.signal == nil {
		s.signal = err
	}
}

func (s *Session) takeSignal() error {
	err := s.signal
	s.signal = nil
	return err
}

func (s *Session) playing() bool {
	return s.Mode == ModePlaying && s.fault == nil
}
