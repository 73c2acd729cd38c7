package core

import "fmt"

// Coord is a cell position on a square grid. The same type is used for
// relative offsets (tetromino layouts, direction unit vectors).
type Coord struct {
	X, Y int
}

// Add returns the component-wise sum of two coordinates.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Wrap folds both axes into [0, gridCount), giving toroidal topology.
func (c Coord) Wrap(gridCount int) Coord {
	return Coord{X: Mod(c.X, gridCount), Y: Mod(c.Y, gridCount)}
}

// InBounds reports whether both axes are within [0, gridCount).
func (c Coord) InBounds(gridCount int) bool {
	return c.X >= 0 && c.X < gridCount && c.Y >= 0 && c.Y < gridCount
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction represents a movement direction on the grid.
// The zero value is DirRight, the initial heading of every snake.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Unit returns the one-cell step for the direction. Y grows downwards.
func (d Direction) Unit() Coord {
	switch d {
	case DirUp:
		return Coord{X: 0, Y: -1}
	case DirDown:
		return Coord{X: 0, Y: 1}
	case DirLeft:
		return Coord{X: -1, Y: 0}
	default:
		return Coord{X: 1, Y: 0}
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Directions lists all four directions.
var Directions = []Direction{DirRight, DirDown, DirLeft, DirUp}
