package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	GridCount int   // Requested cells per side (a game may override it)
	CellSize  int   // Screen columns per grid cell
	Seed      int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		GridCount: 20,
		CellSize:  2, // Terminal cells are roughly twice as tall as wide
		Seed:      0, // 0 means use current time in platform layer
	}
}

// CanvasSize returns the canvas dimensions in screen characters for a grid
// of gridCount cells per side.
func (c RuntimeConfig) CanvasSize(gridCount int) (width, height int) {
	cell := c.CellSize
	if cell <= 0 {
		cell = 1
	}
	return cell * gridCount, gridCount
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Finished bool   // The game's timer chain has stopped for good
	Steps    uint64 // Timer steps executed so far
}
