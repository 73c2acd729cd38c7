package snake

import (
	"math/rand"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

// GridCount is the board size the snake always plays on.
const GridCount = 20

// Status is the outcome of a tick. GameOver is terminal.
type Status int

const (
	Running Status = iota
	GameOver
)

func (s Status) String() string {
	if s == GameOver {
		return "game_over"
	}
	return "running"
}

// startPos is where the single initial segment is placed.
var startPos = core.Coord{X: 5, Y: 5}

// Simulation owns the snake body and the food. The board is a torus: the
// head leaves one edge and re-enters on the opposite one, so the only way to
// lose is running into the body.
type Simulation struct {
	gridCount int
	rng       *rand.Rand

	body      []core.Coord // Head at index 0
	direction core.Direction
	pending   core.Direction
	food      core.Coord
	status    Status
	ticks     uint64
}

// NewSimulation creates a one-segment snake at (5,5) heading right and
// places the first food.
func NewSimulation(rng *rand.Rand) *Simulation {
	s := &Simulation{
		gridCount: GridCount,
		rng:       rng,
		body:      []core.Coord{startPos},
		direction: core.DirRight,
		pending:   core.DirRight,
	}
	s.RelocateFood()
	return s
}

// SetDirection queues d for the next tick. A direction opposite to the one
// the snake is currently moving in is ignored.
func (s *Simulation) SetDirection(d core.Direction) {
	if d == s.direction.Opposite() {
		return
	}
	s.pending = d
}

// Tick advances the snake by one cell and reports the resulting status.
func (s *Simulation) Tick() Status {
	if s.status == GameOver {
		return GameOver
	}
	s.ticks++
	s.direction = s.pending

	// Each segment takes its predecessor's old place
	for i := len(s.body) - 1; i > 0; i-- {
		s.body[i] = s.body[i-1]
	}
	s.body[0] = s.body[0].Add(s.direction.Unit()).Wrap(s.gridCount)

	if s.HasSelfCollision() {
		s.status = GameOver
		return GameOver
	}

	if s.body[0] == s.food {
		// The new tail sits on the food cell; the next shift moves it off,
		// so the extra length shows one tick later.
		s.body = append(s.body, s.food)
		s.RelocateFood()
	}

	return Running
}

// HasSelfCollision reports whether the head shares a cell with another
// segment.
func (s *Simulation) HasSelfCollision() bool {
	head := s.body[0]
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// RelocateFood moves the food to a random cell not covered by the body,
// resampling until one is found. The loop is unbounded but short in
// practice; when the body covers every cell the food stays where it is and
// false is returned.
func (s *Simulation) RelocateFood() bool {
	if s.occupiedCells() >= s.gridCount*s.gridCount {
		return false
	}
	for {
		p := core.Coord{X: s.rng.Intn(s.gridCount), Y: s.rng.Intn(s.gridCount)}
		if !s.isSnakeAt(p) {
			s.food = p
			return true
		}
	}
}

// occupiedCells counts distinct cells under the body. A freshly grown tail
// shares its cell with the head, so len(body) can overcount.
func (s *Simulation) occupiedCells() int {
	seen := make(map[core.Coord]struct{}, len(s.body))
	for _, seg := range s.body {
		seen[seg] = struct{}{}
	}
	return len(seen)
}

func (s *Simulation) isSnakeAt(p core.Coord) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Body returns a copy of the segments, head first.
func (s *Simulation) Body() []core.Coord {
	out := make([]core.Coord, len(s.body))
	copy(out, s.body)
	return out
}

// Head returns the head position.
func (s *Simulation) Head() core.Coord {
	return s.body[0]
}

// Len returns the number of segments.
func (s *Simulation) Len() int {
	return len(s.body)
}

// Food returns the food position.
func (s *Simulation) Food() core.Coord {
	return s.food
}

// Direction returns the direction used by the last tick.
func (s *Simulation) Direction() core.Direction {
	return s.direction
}

// Status returns the current status.
func (s *Simulation) Status() Status {
	return s.status
}

// GridCount returns the board size.
func (s *Simulation) GridCount() int {
	return s.gridCount
}

// Ticks returns the number of ticks that advanced the snake.
func (s *Simulation) Ticks() uint64 {
	return s.ticks
}
