// Package board stores the settled cells of a falling-block playfield.
//
// Coordinates use X for the column and Y for the row, with row 0 at the top
// and rows growing downward. Rows above the top (Y < 0) are the spawn buffer:
// they are never stored and always read as free.
package board

import (
	"fmt"

	"github.com/pkg/errors"
)

// PieceSize is the number of cells settled at once.
const PieceSize = 4

var (
	// ErrOccupied is returned when settling onto a cell that is already taken.
	ErrOccupied = errors.New("cell already occupied")
	// ErrOutOfBounds is returned when settling a cell outside the stored grid.
	ErrOutOfBounds = errors.New("cell out of bounds")
	// ErrCellCount is returned when settling other than PieceSize cells.
	ErrCellCount = errors.New("wrong number of cells")
	// ErrEmptyTag is returned when settling with the empty tag.
	ErrEmptyTag = errors.New("settle requires a non-empty tag")
)

// Cell is a board coordinate.
type Cell struct {
	X, Y int
}

// Add returns c translated by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Tag marks a settled cell. The zero Tag is an empty cell.
type Tag uint8

// Empty is the tag of an unoccupied cell.
const Empty Tag = 0

// Board is a fixed-size grid of settled cells. Its dimensions never change
// after New; a settled cell only changes through ClearRows or Reset.
type Board struct {
	width, height int
	cells         []Tag
	settled       int
}

// New creates an empty board. It panics on non-positive dimensions.
func New(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("invalid board size %dx%d", width, height))
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Tag, width*height),
	}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// Settled returns the number of occupied stored cells.
func (b *Board) Settled() int { return b.settled }

func (b *Board) index(c Cell) int {
	return c.Y*b.width + c.X
}

// InBounds reports whether c lies inside the stored grid.
func (b *Board) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < b.width && c.Y >= 0 && c.Y < b.height
}

// IsOccupied reports whether a piece cell may not occupy c: it is left or
// right of the walls, below the floor, or holds a settled block. Cells above
// the ceiling are free.
func (b *Board) IsOccupied(c Cell) bool {
	if c.X < 0 || c.X >= b.width || c.Y >= b.height {
		return true
	}
	if c.Y < 0 {
		return false
	}
	return b.cells[b.index(c)] != Empty
}

// At returns the tag stored at c, or Empty outside the grid.
func (b *Board) At(c Cell) Tag {
	if !b.InBounds(c) {
		return Empty
	}
	return b.cells[b.index(c)]
}

// Settle writes cells into the board with tag. Either every cell is written
// or none is.
func (b *Board) Settle(cells []Cell, tag Tag) error {
	if len(cells) != PieceSize {
		return errors.Wrapf(ErrCellCount, "settle %d cells", len(cells))
	}
	if tag == Empty {
		return errors.WithStack(ErrEmptyTag)
	}

	for i, c := range cells {
		if !b.InBounds(c) {
			return errors.Wrapf(ErrOutOfBounds, "settle %v", c)
		}
		if b.cells[b.index(c)] != Empty {
			return errors.Wrapf(ErrOccupied, "settle %v", c)
		}
		for _, other := range cells[:i] {
			if other == c {
				return errors.Wrapf(ErrOccupied, "settle %v twice", c)
			}
		}
	}

	for _, c := range cells {
		b.cells[b.index(c)] = tag
	}
	b.settled += len(cells)
	return nil
}

func (b *Board) rowFull(y int) bool {
	row := b.cells[y*b.width : (y+1)*b.width]
	for _, t := range row {
		if t == Empty {
			return false
		}
	}
	return true
}

// FullRows returns the indices of completely occupied rows in ascending order.
func (b *Board) FullRows() []int {
	var rows []int
	for y := 0; y < b.height; y++ {
		if b.rowFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearRows removes the given rows and drops every row above each removed row
// by one. Rows are compacted in a single pass from the floor upward, copying
// only surviving rows, so non-adjacent clears need no rescan. Duplicate or
// out-of-range indices are ignored. It returns the number of rows removed.
func (b *Board) ClearRows(rows []int) int {
	if len(rows) == 0 {
		return 0
	}

	remove := make([]bool, b.height)
	removed := 0
	for _, y := range rows {
		if y < 0 || y >= b.height || remove[y] {
			continue
		}
		remove[y] = true
		removed++
	}
	if removed == 0 {
		return 0
	}

	dst := b.height - 1
	for src := b.height - 1; src >= 0; src-- {
		if remove[src] {
			b.settled -= b.countRow(src)
			continue
		}
		if dst != src {
			copy(b.row(dst), b.row(src))
		}
		dst--
	}
	for ; dst >= 0; dst-- {
		clear(b.row(dst))
	}
	return removed
}

func (b *Board) row(y int) []Tag {
	return b.cells[y*b.width : (y+1)*b.width]
}

func (b *Board) countRow(y int) int {
	n := 0
	for _, t := range b.row(y) {
		if t != Empty {
			n++
		}
	}
	return n
}

// Reset empties the board.
func (b *Board) Reset() {
	clear(b.cells)
	b.settled = 0
}

// Snapshot returns a copy of the board contents.
func (b *Board) Snapshot() Grid {
	cells := make([]Tag, len(b.cells))
	copy(cells, b.cells)
	return Grid{Width: b.width, Height: b.height, Cells: cells}
}

// Grid is a read-only copy of a board, stored row-major.
type Grid struct {
	Width, Height int
	Cells         []Tag
}

// At returns the tag at column x, row y, or Empty outside the grid.
func (g Grid) At(x, y int) Tag {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return Empty
	}
	return g.Cells[y*g.Width+x]
}
