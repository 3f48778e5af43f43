package game

import (
	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/collision"
	"github.com/plus3/blockfall/piece"
)

// Snapshot is a read-only copy of what a front end needs to draw a frame.
type Snapshot struct {
	Time  float64
	Mode  Mode
	Phase Phase
	Board board.Grid

	// Active is nil between pieces.
	Active *piece.Piece
	// Ghost is where Active would land if dropped straight down.
	Ghost *piece.Piece
	Next  piece.Shape

	Clearing []int
	Lines    int
	Pieces   int
}

func (s *Session) snapshot(now float64) Snapshot {
	snap := Snapshot{
		Time:   now,
		Mode:   s.Mode,
		Phase:  s.Phase,
		Board:  s.Board.Snapshot(),
		Next:   s.Next,
		Lines:  s.Lines,
		Pieces: s.Pieces,
	}
	if s.Active != nil {
		active := *s.Active
		ghost := active.Translate(0, collision.DropDistance(s.Board, active))
		snap.Active = &active
		snap.Ghost = &ghost
	}
	if len(s.Clearing) > 0 {
		snap.Clearing = append([]int(nil), s.Clearing...)
	}
	return snap
}

// TagAt returns what to draw at column x, row y: the active piece wins over
// its ghost, which wins over the board. The second result reports whether the
// cell belongs to the ghost.
func (s Snapshot) TagAt(x, y int) (board.Tag, bool) {
	c := board.Cell{X: x, Y: y}
	if s.Active != nil {
		for _, ac := range s.Active.Cells {
			if ac == c {
				return s.Active.Shape.Tag(), false
			}
		}
	}
	if t := s.Board.At(x, y); t != board.Empty {
		return t, false
	}
	if s.Ghost != nil {
		for _, gc := range s.Ghost.Cells {
			if gc == c {
				return s.Ghost.Shape.Tag(), true
			}
		}
	}
	return board.Empty, false
}
