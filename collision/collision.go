// Package collision decides whether a candidate cell set may be occupied.
// Translation and rotation candidates go through the same check.
package collision

import (
	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/piece"
)

// Field is the occupancy view the detector needs. *board.Board implements it.
type Field interface {
	Width() int
	Height() int
	IsOccupied(c board.Cell) bool
}

// Verdict classifies a candidate. Only Legal may be committed.
type Verdict uint8

const (
	Legal Verdict = iota
	BlockedLeft
	BlockedRight
	BlockedFloor
	Overlap
)

func (v Verdict) String() string {
	switch v {
	case Legal:
		return "legal"
	case BlockedLeft:
		return "blocked-left"
	case BlockedRight:
		return "blocked-right"
	case BlockedFloor:
		return "blocked-floor"
	case Overlap:
		return "overlap"
	default:
		return "unknown"
	}
}

// Check returns the first reason any cell of cells cannot be occupied.
func Check(f Field, cells []board.Cell) Verdict {
	for _, c := range cells {
		switch {
		case c.X < 0:
			return BlockedLeft
		case c.X >= f.Width():
			return BlockedRight
		case c.Y >= f.Height():
			return BlockedFloor
		case f.IsOccupied(c):
			return Overlap
		}
	}
	return Legal
}

// IsLegal reports whether p may be placed on f.
func IsLegal(f Field, p piece.Piece) bool {
	return Check(f, p.Cells[:]) == Legal
}

// Resting reports whether p is in contact: one more step down is illegal.
func Resting(f Field, p piece.Piece) bool {
	return !IsLegal(f, p.Translate(0, 1))
}

// DropDistance returns how many rows p can fall before it rests. A piece that
// is already illegal returns 0.
func DropDistance(f Field, p piece.Piece) int {
	if !IsLegal(f, p) {
		return 0
	}
	n := 0
	for IsLegal(f, p.Translate(0, n+1)) {
		n++
	}
	return n
}
