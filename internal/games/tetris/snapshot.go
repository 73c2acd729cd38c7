package tetris

import "github.com/vovakirdan/grid-arcade/internal/core"

// Snapshot captures the simulation state. The canvas tag is left out since
// it differs between runs.
type Snapshot struct {
	Kind    Kind
	Origin  core.Coord
	Offsets []core.Coord
	Landed  bool
	Drops   uint64
}

// Snapshot returns the current simulation snapshot.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Kind:    s.shape.Kind,
		Origin:  s.origin,
		Offsets: s.Shape().Offsets,
		Landed:  s.landed,
		Drops:   s.drops,
	}
}

// Equal reports whether two snapshots describe the same state.
func (a Snapshot) Equal(b Snapshot) bool {
	if a.Kind != b.Kind || a.Origin != b.Origin || a.Landed != b.Landed || a.Drops != b.Drops {
		return false
	}
	if len(a.Offsets) != len(b.Offsets) {
		return false
	}
	for i := range a.Offsets {
		if a.Offsets[i] != b.Offsets[i] {
			return false
		}
	}
	return true
}
