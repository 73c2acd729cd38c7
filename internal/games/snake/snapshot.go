package snake

import "github.com/vovakirdan/grid-arcade/internal/core"

// Snapshot captures the complete simulation state for determinism testing.
type Snapshot struct {
	Ticks  uint64
	Body   []core.Coord
	Dir    core.Direction
	Food   core.Coord
	Status Status
}

// Snapshot returns the current simulation snapshot.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Ticks:  s.ticks,
		Body:   s.Body(),
		Dir:    s.direction,
		Food:   s.food,
		Status: s.status,
	}
}

// Equal reports whether two snapshots describe the same state.
func (a Snapshot) Equal(b Snapshot) bool {
	if a.Ticks != b.Ticks || a.Dir != b.Dir || a.Food != b.Food || a.Status != b.Status {
		return false
	}
	if len(a.Body) != len(b.Body) {
		return false
	}
	for i := range a.Body {
		if a.Body[i] != b.Body[i] {
			return false
		}
	}
	return true
}
