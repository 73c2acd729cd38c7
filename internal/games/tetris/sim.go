package tetris

import (
	"math/rand"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

// Simulation owns a single falling shape on a square board. There are no
// settled cells: once the shape reaches the floor it stays there and the
// simulation does nothing more.
type Simulation struct {
	gridCount int
	shape     Shape
	origin    core.Coord
	landed    bool
	drops     uint64
}

// NewSimulation spawns a random shape centred on the top row.
func NewSimulation(gridCount int, rng *rand.Rand) *Simulation {
	return NewSimulationWithShape(gridCount, RandomShape(rng))
}

// NewSimulationWithShape spawns the given shape centred on the top row.
func NewSimulationWithShape(gridCount int, shape Shape) *Simulation {
	return &Simulation{
		gridCount: gridCount,
		shape:     shape,
		origin:    core.Coord{X: gridCount/2 - shape.Width()/2, Y: 0},
	}
}

// MoveLeft shifts the shape one column left unless it touches the left edge.
func (s *Simulation) MoveLeft() bool {
	minX, _, _, _ := s.shape.Bounds()
	if s.landed || s.origin.X+minX <= 0 {
		return false
	}
	s.origin.X--
	return true
}

// MoveRight shifts the shape one column right unless it touches the right edge.
func (s *Simulation) MoveRight() bool {
	_, maxX, _, _ := s.shape.Bounds()
	if s.landed || s.origin.X+maxX >= s.gridCount-1 {
		return false
	}
	s.origin.X++
	return true
}

// MoveDown shifts the shape one row down unless it is on the floor. Unlike
// Drop it never lands the shape.
func (s *Simulation) MoveDown() bool {
	if s.landed || s.onFloor() {
		return false
	}
	s.origin.Y++
	return true
}

// Rotate turns the shape a quarter if every resulting column stays on the
// board. Rows are not checked.
func (s *Simulation) Rotate() bool {
	if s.landed {
		return false
	}
	rotated := s.shape.Rotated()
	for _, o := range rotated {
		x := s.origin.X + o.X
		if x < 0 || x >= s.gridCount {
			return false
		}
	}
	s.shape.Offsets = rotated
	return true
}

// Drop moves the shape down one row and reports whether it should be called
// again. On the floor it marks the shape landed and returns false, and every
// later call is a no-op.
func (s *Simulation) Drop() bool {
	if s.landed {
		return false
	}
	if s.onFloor() {
		s.landed = true
		return false
	}
	s.origin.Y++
	s.drops++
	return true
}

func (s *Simulation) onFloor() bool {
	_, _, _, maxY := s.shape.Bounds()
	return s.origin.Y+maxY >= s.gridCount-1
}

// Cells returns the board coordinates the shape occupies.
func (s *Simulation) Cells() []core.Coord {
	out := make([]core.Coord, len(s.shape.Offsets))
	for i, o := range s.shape.Offsets {
		out[i] = s.origin.Add(o)
	}
	return out
}

// Shape returns a copy of the current shape.
func (s *Simulation) Shape() Shape {
	sh := s.shape
	sh.Offsets = append([]core.Coord(nil), s.shape.Offsets...)
	return sh
}

// Origin returns the shape origin.
func (s *Simulation) Origin() core.Coord {
	return s.origin
}

// Landed reports whether the shape has reached the floor.
func (s *Simulation) Landed() bool {
	return s.landed
}

// Drops returns the number of successful drops.
func (s *Simulation) Drops() uint64 {
	return s.drops
}

// GridCount returns the board size.
func (s *Simulation) GridCount() int {
	return s.gridCount
}
