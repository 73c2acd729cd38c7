package tetris

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

// Kind names a tetromino layout.
type Kind string

// Catalog kinds. S, Z and J are not part of the set.
const (
	KindO Kind = "O"
	KindI Kind = "I"
	KindT Kind = "T"
	KindL Kind = "L"
)

// Kinds lists the catalog in selection order.
var Kinds = []Kind{KindO, KindI, KindT, KindL}

var catalog = map[Kind][]core.Coord{
	KindO: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
	KindI: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}},
	KindT: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 1}},
	KindL: {{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}},
}

// Offsets returns a copy of the catalog layout for kind, or nil if the kind
// is unknown.
func Offsets(kind Kind) []core.Coord {
	src, ok := catalog[kind]
	if !ok {
		return nil
	}
	out := make([]core.Coord, len(src))
	copy(out, src)
	return out
}

// Shape is a set of cell offsets relative to an origin.
type Shape struct {
	Kind    Kind
	Tag     string
	Offsets []core.Coord
}

// NewShape builds a shape of the given kind with a fresh canvas tag.
func NewShape(kind Kind) Shape {
	return Shape{
		Kind:    kind,
		Tag:     "shape_" + uuid.NewString(),
		Offsets: Offsets(kind),
	}
}

// RandomShape picks a kind uniformly from the catalog.
func RandomShape(rng *rand.Rand) Shape {
	return NewShape(Kinds[rng.Intn(len(Kinds))])
}

// Rotated returns the offsets turned a quarter about the local origin:
// (x, y) becomes (y, -x).
func (s Shape) Rotated() []core.Coord {
	out := make([]core.Coord, len(s.Offsets))
	for i, o := range s.Offsets {
		out[i] = core.Coord{X: o.Y, Y: -o.X}
	}
	return out
}

// Bounds returns the min and max offset on each axis.
func (s Shape) Bounds() (minX, maxX, minY, maxY int) {
	return bounds(s.Offsets)
}

// Width is the number of columns the shape spans.
func (s Shape) Width() int {
	minX, maxX, _, _ := s.Bounds()
	return maxX - minX + 1
}

func bounds(offsets []core.Coord) (minX, maxX, minY, maxY int) {
	if len(offsets) == 0 {
		return 0, 0, 0, 0
	}
	minX, maxX = offsets[0].X, offsets[0].X
	minY, maxY = offsets[0].Y, offsets[0].Y
	for _, o := range offsets[1:] {
		minX = core.Min(minX, o.X)
		maxX = core.Max(maxX, o.X)
		minY = core.Min(minY, o.Y)
		maxY = core.Max(maxY, o.Y)
	}
	return minX, maxX, minY, maxY
}
