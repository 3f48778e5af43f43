// Package piece defines the seven tetromino shapes and the pure geometry of
// an active piece: spawning, translation and clockwise rotation.
package piece

import (
	"github.com/pkg/errors"
	"github.com/plus3/blockfall/board"
)

var (
	// ErrUndefinedPivot is returned when a pivot does not map cells onto cells.
	ErrUndefinedPivot = errors.New("rotation pivot is undefined")
	// ErrDuplicateCell is returned when two cells of a piece coincide.
	ErrDuplicateCell = errors.New("piece cells are not distinct")
	// ErrInvalidShape is returned for the zero or an unknown Shape.
	ErrInvalidShape = errors.New("invalid shape")
)

// Intent is the vertical intent of a falling piece.
type Intent uint8

const (
	// FallNone leaves the piece to normal gravity.
	FallNone Intent = iota
	// FallSoftDrop requests one fast step down, after which it reverts to FallNone.
	FallSoftDrop
	// FallLocked marks a piece that has committed to the board.
	FallLocked
)

func (i Intent) String() string {
	switch i {
	case FallNone:
		return "none"
	case FallSoftDrop:
		return "soft-drop"
	case FallLocked:
		return "locked"
	default:
		return "unknown"
	}
}

// Piece is the active falling shape. It is a value: every operation returns a
// new candidate and leaves the receiver untouched.
type Piece struct {
	Shape  Shape
	Cells  [board.PieceSize]board.Cell
	Pivot  Pivot
	Intent Intent
}

// Spawn places shape's canonical layout at the spawn anchor of a board with
// the given width.
func Spawn(shape Shape, width int) Piece {
	def := Lookup(shape)
	anchor := SpawnAnchor(width)

	p := Piece{
		Shape: shape,
		Pivot: def.Pivot.add(anchor.X, anchor.Y),
	}
	for i, off := range def.Offsets {
		p.Cells[i] = off.Add(anchor.X, anchor.Y)
	}
	return p
}

// Translate returns p moved by (dx, dy). Positive dy is downward.
func (p Piece) Translate(dx, dy int) Piece {
	for i := range p.Cells {
		p.Cells[i] = p.Cells[i].Add(dx, dy)
	}
	p.Pivot = p.Pivot.add(dx, dy)
	return p
}

// Rotate returns p turned 90 degrees clockwise about its pivot, as seen on a
// screen where rows grow downward. O is rotation-invariant and comes back
// unchanged. No wall kick is attempted.
func (p Piece) Rotate() (Piece, error) {
	if p.Shape == O {
		return p, nil
	}
	if !p.Pivot.Defined() {
		return p, errors.Wrapf(ErrUndefinedPivot, "rotate %v about (%d,%d)/2", p.Shape, p.Pivot.X2, p.Pivot.Y2)
	}

	px, py := p.Pivot.X2, p.Pivot.Y2
	for i, c := range p.Cells {
		nx2 := px - (2*c.Y - py)
		ny2 := py + (2*c.X - px)
		p.Cells[i] = board.Cell{X: nx2 / 2, Y: ny2 / 2}
	}
	return p, nil
}

// Validate checks that p has a known shape and pairwise distinct cells.
func (p Piece) Validate() error {
	if !p.Shape.Valid() {
		return errors.Wrapf(ErrInvalidShape, "shape %d", uint8(p.Shape))
	}
	for i, c := range p.Cells {
		for _, other := range p.Cells[:i] {
			if c == other {
				return errors.Wrapf(ErrDuplicateCell, "%v cell %v", p.Shape, c)
			}
		}
	}
	return nil
}

// Slice returns the cells as a slice, for Board.Settle.
func (p Piece) Slice() []board.Cell {
	cells := make([]board.Cell, len(p.Cells))
	copy(cells, p.Cells[:])
	return cells
}

// Lowest returns the largest row index among the cells.
func (p Piece) Lowest() int {
	lowest := p.Cells[0].Y
	for _, c := range p.Cells[1:] {
		lowest = max(lowest, c.Y)
	}
	return lowest
}

// AboveCeiling reports whether any cell lies in the hidden rows above row 0.
func (p Piece) AboveCeiling() bool {
	for _, c := range p.Cells {
		if c.Y < 0 {
			return true
		}
	}
	return false
}
