package board_test

import (
	"testing"

	"github.com/plus3/blockfall/board"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(y int, xs ...int) []board.Cell {
	cells := make([]board.Cell, len(xs))
	for i, x := range xs {
		cells[i] = board.Cell{X: x, Y: y}
	}
	return cells
}

// fillRow settles a whole row of a 10-wide board except the skipped columns,
// in groups of four, padding with cells from the row above when needed.
func fillRow(t *testing.T, b *board.Board, y int, tag board.Tag, skip ...int) {
	t.Helper()
	var cells []board.Cell
	for x := 0; x < b.Width(); x++ {
		skipped := false
		for _, s := range skip {
			if s == x {
				skipped = true
			}
		}
		if !skipped {
			cells = append(cells, board.Cell{X: x, Y: y})
		}
	}
	for len(cells) > 0 {
		n := min(board.PieceSize, len(cells))
		group := cells[:n]
		cells = cells[n:]
		for pad := 0; len(group) < board.PieceSize; pad++ {
			group = append(group, board.Cell{X: pad, Y: y - 1})
		}
		require.NoError(t, b.Settle(group, tag))
	}
}

func TestIsOccupied(t *testing.T) {
	b := board.New(10, 20)

	t.Run("walls and floor", func(t *testing.T) {
		assert.True(t, b.IsOccupied(board.Cell{X: -1, Y: 5}))
		assert.True(t, b.IsOccupied(board.Cell{X: 10, Y: 5}))
		assert.True(t, b.IsOccupied(board.Cell{X: 3, Y: 20}))
		assert.True(t, b.IsOccupied(board.Cell{X: -1, Y: -3}))
	})

	t.Run("above ceiling is free", func(t *testing.T) {
		assert.False(t, b.IsOccupied(board.Cell{X: 0, Y: -1}))
		assert.False(t, b.IsOccupied(board.Cell{X: 9, Y: -4}))
	})

	t.Run("settled cells", func(t *testing.T) {
		assert.False(t, b.IsOccupied(board.Cell{X: 0, Y: 19}))
		require.NoError(t, b.Settle(row(19, 0, 1, 2, 3), 1))
		assert.True(t, b.IsOccupied(board.Cell{X: 0, Y: 19}))
		assert.False(t, b.IsOccupied(board.Cell{X: 4, Y: 19}))
	})
}

func TestSettle(t *testing.T) {
	t.Run("writes cells with tag", func(t *testing.T) {
		b := board.New(10, 20)
		require.NoError(t, b.Settle(row(19, 3, 4, 5, 6), 7))

		assert.Equal(t, board.Tag(7), b.At(board.Cell{X: 3, Y: 19}))
		assert.Equal(t, board.Empty, b.At(board.Cell{X: 2, Y: 19}))
		assert.Equal(t, 4, b.Settled())
	})

	t.Run("occupied cell is rejected atomically", func(t *testing.T) {
		b := board.New(10, 20)
		require.NoError(t, b.Settle(row(19, 0, 1, 2, 3), 1))

		err := b.Settle(row(19, 6, 5, 4, 3), 2)
		require.Error(t, err)
		assert.True(t, errors.Is(err, board.ErrOccupied))
		assert.Equal(t, board.Empty, b.At(board.Cell{X: 6, Y: 19}))
		assert.Equal(t, 4, b.Settled())
	})

	t.Run("duplicate cells are rejected", func(t *testing.T) {
		b := board.New(10, 20)
		err := b.Settle(row(19, 0, 1, 1, 2), 1)
		assert.True(t, errors.Is(err, board.ErrOccupied))
		assert.Zero(t, b.Settled())
	})

	t.Run("out of bounds", func(t *testing.T) {
		b := board.New(10, 20)
		err := b.Settle(row(-1, 0, 1, 2, 3), 1)
		assert.True(t, errors.Is(err, board.ErrOutOfBounds))

		err = b.Settle(row(5, 7, 8, 9, 10), 1)
		assert.True(t, errors.Is(err, board.ErrOutOfBounds))
	})

	t.Run("cell count", func(t *testing.T) {
		b := board.New(10, 20)
		err := b.Settle(row(19, 0, 1, 2), 1)
		assert.True(t, errors.Is(err, board.ErrCellCount))
	})

	t.Run("empty tag", func(t *testing.T) {
		b := board.New(10, 20)
		err := b.Settle(row(19, 0, 1, 2, 3), board.Empty)
		assert.True(t, errors.Is(err, board.ErrEmptyTag))
	})
}

func TestFullRows(t *testing.T) {
	b := board.New(10, 20)
	assert.Empty(t, b.FullRows())

	fillRow(t, b, 19, 1)
	fillRow(t, b, 15, 2)
	fillRow(t, b, 12, 3, 4)

	assert.Equal(t, []int{15, 19}, b.FullRows())
}

func TestClearRowsScenario(t *testing.T) {
	b := board.New(10, 20)

	require.NoError(t, b.Settle(row(4, 5, 6, 8, 9), 5))
	fillRow(t, b, 5, 1, 3)
	assert.Empty(t, b.FullRows())

	require.NoError(t, b.Settle([]board.Cell{{3, 5}, {3, 6}, {3, 7}, {3, 8}}, 2))
	require.Equal(t, []int{5}, b.FullRows())

	assert.Equal(t, 1, b.ClearRows([]int{5}))

	for x := 0; x < 10; x++ {
		assert.Equal(t, board.Empty, b.At(board.Cell{X: x, Y: 0}))
	}
	assert.Equal(t, board.Tag(1), b.At(board.Cell{X: 0, Y: 5}))
	assert.Equal(t, board.Tag(5), b.At(board.Cell{X: 9, Y: 5}))
	assert.Equal(t, board.Empty, b.At(board.Cell{X: 3, Y: 5}))
	assert.Equal(t, board.Empty, b.At(board.Cell{X: 4, Y: 5}))
	assert.Equal(t, board.Tag(2), b.At(board.Cell{X: 3, Y: 6}))
	assert.Empty(t, b.FullRows())
}

func TestClearRowsNonAdjacent(t *testing.T) {
	b := board.New(10, 20)

	require.NoError(t, b.Settle(row(16, 3, 5, 7, 9), 4))
	fillRow(t, b, 17, 1)
	require.NoError(t, b.Settle(row(18, 2, 4, 6, 8), 6))
	fillRow(t, b, 19, 3)

	before := b.Settled()
	full := b.FullRows()
	require.Equal(t, []int{17, 19}, full)

	assert.Equal(t, 2, b.ClearRows(full))
	assert.Empty(t, b.FullRows())
	assert.Equal(t, before-20, b.Settled())

	// Row 18 had one cleared row below it, row 16 had two.
	for _, x := range []int{2, 4, 6, 8} {
		assert.Equal(t, board.Tag(6), b.At(board.Cell{X: x, Y: 19}))
	}
	assert.Equal(t, board.Tag(3), b.At(board.Cell{X: 0, Y: 19}))
	assert.Equal(t, board.Empty, b.At(board.Cell{X: 9, Y: 19}))
	for _, x := range []int{3, 5, 7, 9} {
		assert.Equal(t, board.Tag(4), b.At(board.Cell{X: x, Y: 18}))
	}
	assert.Equal(t, board.Tag(1), b.At(board.Cell{X: 0, Y: 18}))
	for x := 0; x < 10; x++ {
		assert.Equal(t, board.Empty, b.At(board.Cell{X: x, Y: 17}))
	}
}

func TestClearRowsNoop(t *testing.T) {
	b := board.New(10, 20)
	require.NoError(t, b.Settle(row(19, 0, 1, 2, 3), 1))
	snapshot := b.Snapshot()

	assert.Zero(t, b.ClearRows(b.FullRows()))
	assert.Zero(t, b.ClearRows(nil))
	assert.Zero(t, b.ClearRows([]int{-1, 20}))
	assert.Equal(t, snapshot, b.Snapshot())
}

func TestClearRowsIgnoresDuplicates(t *testing.T) {
	b := board.New(10, 20)
	fillRow(t, b, 19, 1)

	assert.Equal(t, 1, b.ClearRows([]int{19, 19}))
	// Only row 19 and the padding in row 18 existed; padding drops to 19.
	assert.Equal(t, board.Tag(1), b.At(board.Cell{X: 0, Y: 19}))
	assert.Equal(t, board.Empty, b.At(board.Cell{X: 0, Y: 18}))
}

func TestResetAndSnapshot(t *testing.T) {
	b := board.New(4, 6)
	require.NoError(t, b.Settle(row(5, 0, 1, 2, 3), 3))

	grid := b.Snapshot()
	b.Reset()

	assert.Zero(t, b.Settled())
	assert.Equal(t, board.Empty, b.At(board.Cell{X: 0, Y: 5}))
	assert.Equal(t, board.Tag(3), grid.At(0, 5))
	assert.Equal(t, board.Empty, grid.At(-1, 5))
	assert.Equal(t, 4, grid.Width)
	assert.Equal(t, 6, grid.Height)
}

func TestNewPanics(t *testing.T) {
	assert.Panics(t, func() { board.New(0, 20) })
	assert.Panics(t, func() { board.New(10, -1) })
}
