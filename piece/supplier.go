package piece

import (
	"math/rand/v2"

	"github.com/pkg/errors"
)

// Supplier yields the shape of each new piece.
type Supplier interface {
	Next() Shape
}

// Supplier kinds accepted by NewSupplier.
const (
	KindRandom = "random"
	KindBag    = "bag"
)

// NewSupplier builds a seeded supplier of the named kind.
func NewSupplier(kind string, seed uint64) (Supplier, error) {
	switch kind {
	case KindRandom, "":
		return NewRandom(seed), nil
	case KindBag:
		return NewBag(seed), nil
	default:
		return nil, errors.Errorf("unknown supplier kind %q", kind)
	}
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomSupplier draws each shape independently and uniformly from all seven.
type RandomSupplier struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *RandomSupplier {
	return &RandomSupplier{rng: newRand(seed)}
}

func (r *RandomSupplier) Next() Shape {
	return All[r.rng.IntN(len(All))]
}

// BagSupplier deals all seven shapes in a shuffled order before reshuffling.
type BagSupplier struct {
	rng *rand.Rand
	bag []Shape
}

func NewBag(seed uint64) *BagSupplier {
	return &BagSupplier{rng: newRand(seed)}
}

func (b *BagSupplier) Next() Shape {
	if len(b.bag) == 0 {
		b.bag = append(b.bag[:0], All[:]...)
		b.rng.Shuffle(len(b.bag), func(i, j int) {
			b.bag[i], b.bag[j] = b.bag[j], b.bag[i]
		})
	}
	s := b.bag[0]
	b.bag = b.bag[1:]
	return s
}

// SequenceSupplier replays a fixed list of shapes, starting over at the end.
type SequenceSupplier struct {
	shapes []Shape
	next   int
}

// NewSequence panics if shapes is empty or holds an invalid shape.
func NewSequence(shapes ...Shape) *SequenceSupplier {
	if len(shapes) == 0 {
		panic("piece: empty shape sequence")
	}
	for _, s := range shapes {
		if !s.Valid() {
			panic("piece: invalid shape in sequence: " + s.String())
		}
	}
	return &SequenceSupplier{shapes: append([]Shape(nil), shapes...)}
}

func (q *SequenceSupplier) Next() Shape {
	s := q.shapes[q.next]
	q.next = (q.next + 1) % len(q.shapes)
	return s
}
