package collision_test

import (
	"testing"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/collision"
	"github.com/plus3/blockfall/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	b := board.New(10, 20)
	require.NoError(t, b.Settle([]board.Cell{{0, 19}, {1, 19}, {2, 19}, {3, 19}}, 1))

	tests := []struct {
		name  string
		cells []board.Cell
		want  collision.Verdict
	}{
		{"free", []board.Cell{{4, 19}, {5, 19}}, collision.Legal},
		{"above ceiling", []board.Cell{{4, -2}, {4, -1}}, collision.Legal},
		{"left wall", []board.Cell{{-1, 5}}, collision.BlockedLeft},
		{"right wall", []board.Cell{{10, 5}}, collision.BlockedRight},
		{"floor", []board.Cell{{5, 20}}, collision.BlockedFloor},
		{"settled", []board.Cell{{5, 18}, {2, 19}}, collision.Overlap},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collision.Check(b, tt.cells))
		})
	}
}

func TestWallBlocksOneSideOnly(t *testing.T) {
	b := board.New(10, 20)

	for _, s := range piece.All {
		t.Run(s.String(), func(t *testing.T) {
			p := piece.Spawn(s, 10).Translate(0, 4)
			for collision.IsLegal(b, p.Translate(-1, 0)) {
				p = p.Translate(-1, 0)
			}
			assert.Equal(t, collision.BlockedLeft, collision.Check(b, p.Translate(-1, 0).Cells[:]))
			assert.True(t, collision.IsLegal(b, p.Translate(1, 0)))

			for collision.IsLegal(b, p.Translate(1, 0)) {
				p = p.Translate(1, 0)
			}
			assert.Equal(t, collision.BlockedRight, collision.Check(b, p.Translate(1, 0).Cells[:]))
			assert.True(t, collision.IsLegal(b, p.Translate(-1, 0)))
		})
	}
}

func TestRotationUsesSameCheck(t *testing.T) {
	b := board.New(10, 20)

	// Vertical I against the right wall cannot turn back to horizontal.
	p, err := piece.Spawn(piece.I, 10).Translate(0, 5).Rotate()
	require.NoError(t, err)
	for collision.IsLegal(b, p.Translate(1, 0)) {
		p = p.Translate(1, 0)
	}
	rotated, err := p.Rotate()
	require.NoError(t, err)
	assert.Equal(t, collision.BlockedRight, collision.Check(b, rotated.Cells[:]))
}

func TestResting(t *testing.T) {
	b := board.New(10, 20)
	p := piece.Spawn(piece.I, 10)

	assert.False(t, collision.Resting(b, p))
	assert.Equal(t, 19, collision.DropDistance(b, p))

	floor := p.Translate(0, 19)
	assert.True(t, collision.Resting(b, floor))
	assert.Zero(t, collision.DropDistance(b, floor))

	require.NoError(t, b.Settle([]board.Cell{{4, 10}, {4, 11}, {4, 12}, {4, 13}}, 1))
	assert.Equal(t, 9, collision.DropDistance(b, p))
	assert.True(t, collision.Resting(b, p.Translate(0, 9)))
	assert.False(t, collision.Resting(b, p.Translate(0, 8)))
}

func TestDropDistanceOfIllegalPiece(t *testing.T) {
	b := board.New(10, 20)
	p := piece.Spawn(piece.O, 10).Translate(-10, 0)
	assert.Zero(t, collision.DropDistance(b, p))
}
