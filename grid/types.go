package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and addressing.
var (
	// ErrInvalidDimensions indicates a width or height that is not positive.
	ErrInvalidDimensions = errors.New("grid: width and height must be positive")
	// ErrOutOfBounds indicates a coordinate outside [0,width) × [0,height).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// Cell is the binary state of one grid cell.
type Cell uint8

const (
	// Wall is a blocked cell. It is the zero value.
	Wall Cell = iota
	// Passage is an open cell.
	Passage
)

// String returns "wall" or "passage".
func (c Cell) String() string {
	switch c {
	case Wall:
		return "wall"
	case Passage:
		return "passage"
	}
	return fmt.Sprintf("Cell(%d)", uint8(c))
}

// Coord addresses a cell by column X and row Y.
type Coord struct {
	X, Y int
}

// String formats the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the coordinate one step from c in direction d.
func (c Coord) Add(d Direction) Coord {
	return Coord{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Adjacent reports whether c and o differ by exactly one unit on exactly one axis.
func (c Coord) Adjacent(o Coord) bool {
	dx, dy := c.X-o.X, c.Y-o.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx+dy == 1
}

// Direction is a unit offset between orthogonally adjacent cells.
type Direction struct {
	DX, DY int
}

// Unit steps.
var (
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
)

// Directions is the fixed neighbor order of every traversal in this module.
// Do not reorder: generated mazes and solve order depend on it.
var Directions = [4]Direction{Left, Right, Up, Down}
