package piece

import "github.com/plus3/blockfall/board"

//go:generate go run ../cmd/shapegen -in shapes.txt -out catalog_gen.go

// Pivot is a rotation centre stored at twice its real coordinates, so that
// half-cell centres such as (1.5, 0.5) stay integral.
type Pivot struct {
	X2, Y2 int
}

// Point returns the pivot in cell units.
func (p Pivot) Point() (x, y float64) {
	return float64(p.X2) / 2, float64(p.Y2) / 2
}

// Defined reports whether rotating about p maps cells onto cells. That holds
// when both coordinates are whole or both are half-cell.
func (p Pivot) Defined() bool {
	return (p.X2+p.Y2)%2 == 0
}

func (p Pivot) add(dx, dy int) Pivot {
	return Pivot{X2: p.X2 + 2*dx, Y2: p.Y2 + 2*dy}
}

// Definition is the canonical layout of a shape: four cell offsets from the
// top-left of its spawn box, and the pivot in the same frame.
type Definition struct {
	Offsets [board.PieceSize]board.Cell
	Pivot   Pivot
}

// Lookup returns the catalog entry for s. It panics on an invalid shape.
func Lookup(s Shape) Definition {
	if !s.Valid() {
		panic("piece: lookup of invalid shape " + s.String())
	}
	return catalog[s]
}

// SpawnAnchor returns where a shape's spawn box is placed on a board of the
// given width: centred, touching row 0.
func SpawnAnchor(width int) board.Cell {
	return board.Cell{X: width/2 - 2, Y: 0}
}
