package piece

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/plus3/blockfall/board"
)

// Shape identifies one of the seven tetrominoes. The zero Shape is invalid.
type Shape uint8

const (
	I Shape = iota + 1
	L
	J
	S
	Z
	T
	O
)

// All lists every shape in catalog order.
var All = [...]Shape{I, L, J, S, Z, T, O}

var shapeNames = [...]string{"?", "I", "L", "J", "S", "Z", "T", "O"}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("Shape(%d)", uint8(s))
}

// Valid reports whether s is one of the seven shapes.
func (s Shape) Valid() bool {
	return s >= I && s <= O
}

// Tag is the board marker used for cells settled from this shape.
func (s Shape) Tag() board.Tag {
	return board.Tag(s)
}

// ShapeOf maps a settled cell tag back to its shape.
func ShapeOf(tag board.Tag) Shape {
	return Shape(tag)
}

// ParseShape looks up a shape by its letter.
func ParseShape(name string) (Shape, error) {
	for _, s := range All {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidShape, "%q", name)
}
