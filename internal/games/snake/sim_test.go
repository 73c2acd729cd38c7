package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

func newTestSim(seed int64, body []core.Coord, dir core.Direction, food core.Coord) *Simulation {
	s := NewSimulation(rand.New(rand.NewSource(seed)))
	s.body = body
	s.direction = dir
	s.pending = dir
	s.food = food
	return s
}

func TestInitialState(t *testing.T) {
	s := NewSimulation(rand.New(rand.NewSource(1)))

	if s.Len() != 1 || s.Head() != (core.Coord{X: 5, Y: 5}) {
		t.Errorf("initial body = %v, expected [(5,5)]", s.Body())
	}
	if s.Direction() != core.DirRight {
		t.Errorf("initial direction = %v, expected right", s.Direction())
	}
	if s.Status() != Running {
		t.Errorf("initial status = %v, expected running", s.Status())
	}
	if s.Food() == s.Head() || !s.Food().InBounds(GridCount) {
		t.Errorf("initial food %v should be in bounds and off the snake", s.Food())
	}
}

func TestTickMovesRight(t *testing.T) {
	s := newTestSim(1, []core.Coord{{X: 5, Y: 5}}, core.DirRight, core.Coord{X: 0, Y: 0})

	if status := s.Tick(); status != Running {
		t.Fatalf("Tick() = %v, expected running", status)
	}
	if s.Len() != 1 || s.Head() != (core.Coord{X: 6, Y: 5}) {
		t.Errorf("body = %v, expected [(6,5)]", s.Body())
	}
}

func TestTickWrapsLeftEdge(t *testing.T) {
	s := newTestSim(1, []core.Coord{{X: 0, Y: 5}}, core.DirLeft, core.Coord{X: 10, Y: 10})

	s.Tick()

	if s.Head() != (core.Coord{X: 19, Y: 5}) {
		t.Errorf("head = %v, expected (19,5)", s.Head())
	}
}

func TestWrapInvariant(t *testing.T) {
	for _, d := range core.Directions {
		for x := 0; x < GridCount; x++ {
			for y := 0; y < GridCount; y++ {
				h := core.Coord{X: x, Y: y}
				s := newTestSim(7, []core.Coord{h}, d, core.Coord{X: -1, Y: -1})
				s.Tick()

				u := d.Unit()
				want := core.Coord{
					X: ((x+u.X)%GridCount + GridCount) % GridCount,
					Y: ((y+u.Y)%GridCount + GridCount) % GridCount,
				}
				if s.Head() != want {
					t.Fatalf("head %v moving %v -> %v, expected %v", h, d, s.Head(), want)
				}
				if !s.Head().InBounds(GridCount) {
					t.Fatalf("head %v left the grid", s.Head())
				}
			}
		}
	}
}

func TestReversalRejected(t *testing.T) {
	for _, d := range core.Directions {
		s := newTestSim(3, []core.Coord{{X: 10, Y: 10}, {X: 9, Y: 10}}, d, core.Coord{X: 0, Y: 0})

		s.SetDirection(d.Opposite())
		s.Tick()

		if s.Direction() != d {
			t.Errorf("SetDirection(%v) while moving %v changed direction to %v", d.Opposite(), d, s.Direction())
		}
	}
}

func TestTurnTakesEffectNextTick(t *testing.T) {
	s := newTestSim(3, []core.Coord{{X: 10, Y: 10}}, core.DirRight, core.Coord{X: 0, Y: 0})

	s.SetDirection(core.DirDown)
	if s.Direction() != core.DirRight {
		t.Errorf("direction changed before tick: %v", s.Direction())
	}

	s.Tick()
	if s.Head() != (core.Coord{X: 10, Y: 11}) {
		t.Errorf("head = %v, expected (10,11)", s.Head())
	}
}

func TestReversalCheckedAgainstCommittedDirection(t *testing.T) {
	s := newTestSim(3, []core.Coord{{X: 10, Y: 10}}, core.DirRight, core.Coord{X: 0, Y: 0})

	// Up is pending, but Left is still the reverse of the committed Right
	s.SetDirection(core.DirUp)
	s.SetDirection(core.DirLeft)
	s.Tick()

	if s.Direction() != core.DirUp {
		t.Errorf("direction = %v, expected up", s.Direction())
	}
}

func TestSelfCollision(t *testing.T) {
	body := []core.Coord{
		{X: 5, Y: 5}, // Head
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
		{X: 6, Y: 4},
	}
	s := newTestSim(11, body, core.DirRight, core.Coord{X: 0, Y: 0})

	if status := s.Tick(); status != GameOver {
		t.Fatalf("Tick() = %v, expected game over", status)
	}

	// The shift was applied before the collision was detected
	expected := []core.Coord{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}}
	got := s.Body()
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("body after collision = %v, expected %v", got, expected)
		}
	}
}

func TestOverlappingBodyIsCollision(t *testing.T) {
	s := newTestSim(11, []core.Coord{{X: 5, Y: 5}, {X: 5, Y: 5}}, core.DirRight, core.Coord{X: 0, Y: 0})

	if !s.HasSelfCollision() {
		t.Error("a head sharing its cell with another segment is a collision")
	}
}

func TestGameOverIsTerminal(t *testing.T) {
	body := []core.Coord{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}, {X: 6, Y: 4}}
	s := newTestSim(11, body, core.DirRight, core.Coord{X: 0, Y: 0})
	s.Tick()

	before := s.Snapshot()
	for i := 0; i < 10; i++ {
		s.SetDirection(core.DirUp)
		if status := s.Tick(); status != GameOver {
			t.Fatalf("Tick() after game over = %v, expected game over", status)
		}
	}
	if !s.Snapshot().Equal(before) {
		t.Error("state changed after game over")
	}
}

func TestEatFood(t *testing.T) {
	s := newTestSim(5, []core.Coord{{X: 5, Y: 5}}, core.DirRight, core.Coord{X: 6, Y: 5})

	if status := s.Tick(); status != Running {
		t.Fatalf("Tick() = %v, expected running", status)
	}

	body := s.Body()
	if len(body) != 2 || body[1] != (core.Coord{X: 6, Y: 5}) {
		t.Errorf("body = %v, expected a segment appended at (6,5)", body)
	}
	for _, seg := range body {
		if seg == s.Food() {
			t.Errorf("food relocated onto the snake at %v", s.Food())
		}
	}

	// The overlapping tail must not count as a collision on the next tick
	s.food = core.Coord{X: 0, Y: 0}
	if status := s.Tick(); status != Running {
		t.Errorf("tick after eating = %v, expected running", status)
	}
	if s.Body()[1] != (core.Coord{X: 6, Y: 5}) || s.Head() != (core.Coord{X: 7, Y: 5}) {
		t.Errorf("body = %v, expected [(7,5) (6,5)]", s.Body())
	}
}

func TestGrowthVisibleNextTick(t *testing.T) {
	body := []core.Coord{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}
	s := newTestSim(5, body, core.DirRight, core.Coord{X: 6, Y: 5})

	s.Tick() // tick n: eats
	atN := s.Body()
	if len(atN) != 4 {
		t.Fatalf("length after eating = %d, expected 4", len(atN))
	}
	if distinct(atN) != 3 {
		t.Errorf("growth should not be visible on the eating tick, body = %v", atN)
	}
	secondToLast := atN[len(atN)-2]

	s.food = core.Coord{X: 0, Y: 0}
	s.Tick() // tick n+1
	atN1 := s.Body()

	if distinct(atN1) != 4 {
		t.Errorf("growth should be visible one tick later, body = %v", atN1)
	}
	if atN1[len(atN1)-1] != secondToLast {
		t.Errorf("new tail = %v, expected %v", atN1[len(atN1)-1], secondToLast)
	}
}

func TestRelocateFoodAvoidsBody(t *testing.T) {
	// Snake filling every row but the last
	var body []core.Coord
	for y := 0; y < GridCount-1; y++ {
		for x := 0; x < GridCount; x++ {
			body = append(body, core.Coord{X: x, Y: y})
		}
	}
	s := newTestSim(99, body, core.DirRight, core.Coord{X: 0, Y: GridCount - 1})

	for i := 0; i < 100; i++ {
		if !s.RelocateFood() {
			t.Fatal("RelocateFood() should succeed while cells are free")
		}
		if s.isSnakeAt(s.Food()) {
			t.Fatalf("food placed on snake at %v", s.Food())
		}
		if s.Food().Y != GridCount-1 {
			t.Fatalf("food %v outside the only free row", s.Food())
		}
	}
}

func TestRelocateFoodFullBoard(t *testing.T) {
	var body []core.Coord
	for y := 0; y < GridCount; y++ {
		for x := 0; x < GridCount; x++ {
			body = append(body, core.Coord{X: x, Y: y})
		}
	}
	food := core.Coord{X: 3, Y: 3}
	s := newTestSim(99, body, core.DirRight, food)

	if s.RelocateFood() {
		t.Error("RelocateFood() on a full board should report failure")
	}
	if s.Food() != food {
		t.Errorf("food moved to %v on a full board", s.Food())
	}
}

func TestDeterminism(t *testing.T) {
	s1 := NewSimulation(rand.New(rand.NewSource(12345)))
	s2 := NewSimulation(rand.New(rand.NewSource(12345)))

	turns := map[int]core.Direction{5: core.DirDown, 12: core.DirLeft, 30: core.DirUp, 44: core.DirRight}
	for i := 0; i < 200; i++ {
		if d, ok := turns[i%50]; ok {
			s1.SetDirection(d)
			s2.SetDirection(d)
		}
		s1.Tick()
		s2.Tick()
	}

	if !s1.Snapshot().Equal(s2.Snapshot()) {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1.Snapshot(), s2.Snapshot())
	}
}

func distinct(cells []core.Coord) int {
	seen := make(map[core.Coord]bool)
	for _, c := range cells {
		seen[c] = true
	}
	return len(seen)
}
