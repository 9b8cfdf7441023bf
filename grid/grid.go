package grid

import (
	"fmt"
	"strings"
)

// Grid is a width × height array of cells stored row-major.
// The zero value is not usable; construct with New.
type Grid struct {
	width, height int
	cells         []Cell
}

// New returns a grid with every cell set to Wall.
// Returns ErrInvalidDimensions if width or height is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}, nil
}

// Parse builds a grid from rows of text, reading wall as Wall and any
// other rune as Passage. All rows must have equal rune length.
func Parse(rows []string, wall rune) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidDimensions)
	}
	w := len([]rune(rows[0]))
	g, err := New(w, len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimensions, y, len(runes), w)
		}
		for x, r := range runes {
			if r != wall {
				g.cells[g.index(x, y)] = Passage
			}
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the total number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (x,y) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Contains reports whether c lies within the grid.
func (g *Grid) Contains(c Coord) bool {
	return g.InBounds(c.X, c.Y)
}

// Check returns ErrOutOfBounds, wrapped with c, when c lies outside the grid.
func (g *Grid) Check(c Coord) error {
	if !g.Contains(c) {
		return fmt.Errorf("%w: %v not in %dx%d", ErrOutOfBounds, c, g.width, g.height)
	}
	return nil
}

// State returns the cell at (x,y). Out-of-bounds reads report Wall.
func (g *Grid) State(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.cells[g.index(x, y)]
}

// StateAt returns the cell at c. Out-of-bounds reads report Wall.
func (g *Grid) StateAt(c Coord) Cell {
	return g.State(c.X, c.Y)
}

// IsPassage reports whether c is an in-bounds Passage cell.
func (g *Grid) IsPassage(c Coord) bool {
	return g.StateAt(c) == Passage
}

// Set stores state at c. Returns ErrOutOfBounds when c lies outside the grid.
func (g *Grid) Set(c Coord, state Cell) error {
	if err := g.Check(c); err != nil {
		return err
	}
	g.cells[g.index(c.X, c.Y)] = state
	return nil
}

// Neighbors returns the in-bounds orthogonal neighbors of c in Directions order.
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(Directions))
	for _, d := range Directions {
		if n := c.Add(d); g.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// PassageNeighbors counts the Passage cells orthogonally adjacent to c.
func (g *Grid) PassageNeighbors(c Coord) int {
	n := 0
	for _, d := range Directions {
		if g.IsPassage(c.Add(d)) {
			n++
		}
	}
	return n
}

// PassageCount returns the number of Passage cells.
func (g *Grid) PassageCount() int {
	n := 0
	for _, c := range g.cells {
		if c == Passage {
			n++
		}
	}
	return n
}

// PassageEdges returns the number of unordered pairs of adjacent Passage cells.
// A perfect maze satisfies PassageEdges() == PassageCount()-1.
func (g *Grid) PassageEdges() int {
	n := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[g.index(x, y)] != Passage {
				continue
			}
			// count right and down only, so each pair is seen once
			if g.State(x+1, y) == Passage {
				n++
			}
			if g.State(x, y+1) == Passage {
				n++
			}
		}
	}
	return n
}

// Clone returns an independent deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// Equal reports whether g and o have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Index maps c to its row-major index y*Width + x.
// The caller must ensure c is in bounds.
func (g *Grid) Index(c Coord) int {
	return g.index(c.X, c.Y)
}

// Coordinate converts a row-major index back to a Coord.
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{X: idx % g.width, Y: idx / g.width}
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Rows renders each row as a string, writing wall for Wall cells and
// passage for Passage cells.
func (g *Grid) Rows(wall, passage rune) []string {
	rows := make([]string, g.height)
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		sb.Reset()
		for x := 0; x < g.width; x++ {
			if g.cells[g.index(x, y)] == Passage {
				sb.WriteRune(passage)
			} else {
				sb.WriteRune(wall)
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

// Text joins Rows with newlines.
func (g *Grid) Text(wall, passage rune) string {
	return strings.Join(g.Rows(wall, passage), "\n")
}

// String renders walls as '#' and passages as ' '.
func (g *Grid) String() string {
	return g.Text('#', ' ')
}
