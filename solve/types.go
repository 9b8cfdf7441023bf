package solve

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
)

// Sentinel errors for Solve and Path validation.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("solve: grid is nil")

	// ErrInvalidPath is returned by Path.Validate for a malformed path.
	ErrInvalidPath = errors.New("solve: invalid path")
)

// Option configures Solve via functional arguments.
type Option func(*Options)

// Options holds callbacks and cancellation for one Solve call.
type Options struct {
	// Ctx allows cancellation; checked once per dequeue.
	Ctx context.Context

	// OnEnqueue is called when a cell is first discovered, with its depth.
	OnEnqueue func(c grid.Coord, depth int)

	// OnVisit is called when a cell is dequeued for expansion.
	OnVisit func(c grid.Coord, depth int)
}

// DefaultOptions returns Options with a background context and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(grid.Coord, int) {},
		OnVisit:   func(grid.Coord, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on discovery.
func WithOnEnqueue(fn func(c grid.Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit.
func WithOnVisit(fn func(c grid.Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a Solve call.
//   - Found: whether end was reached.
//   - Path:  start→end when Found, empty otherwise.
//   - Order: cells in the order they were visited.
type Result struct {
	Found bool
	Path  Path
	Order []grid.Coord
}

// Path is an immutable start→end sequence of adjacent passage cells.
type Path struct {
	coords []grid.Coord
}

// NewPath copies coords into a Path.
func NewPath(coords []grid.Coord) Path {
	cp := make([]grid.Coord, len(coords))
	copy(cp, coords)
	return Path{coords: cp}
}

// Coords returns a copy of the coordinate sequence.
func (p Path) Coords() []grid.Coord {
	cp := make([]grid.Coord, len(p.coords))
	copy(cp, p.coords)
	return cp
}

// Len returns the number of cells on the path, endpoints included.
func (p Path) Len() int { return len(p.coords) }

// At returns the i-th cell.
func (p Path) At(i int) grid.Coord { return p.coords[i] }

// Start returns the first cell. The path must not be empty.
func (p Path) Start() grid.Coord { return p.coords[0] }

// End returns the last cell. The path must not be empty.
func (p Path) End() grid.Coord { return p.coords[len(p.coords)-1] }

// Contains reports whether c lies on the path.
func (p Path) Contains(c grid.Coord) bool {
	for _, pc := range p.coords {
		if pc == c {
			return true
		}
	}
	return false
}

// Validate checks that p is non-empty, stays on g's Passage cells, moves
// one orthogonal step at a time and never repeats a cell.
// Returns ErrInvalidPath wrapped with the first violation.
func (p Path) Validate(g *grid.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	if len(p.coords) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	seen := make(map[grid.Coord]bool, len(p.coords))
	for i, c := range p.coords {
		if !g.IsPassage(c) {
			return fmt.Errorf("%w: step %d at %v is not a passage", ErrInvalidPath, i, c)
		}
		if seen[c] {
			return fmt.Errorf("%w: step %d revisits %v", ErrInvalidPath, i, c)
		}
		seen[c] = true
		if i > 0 && !p.coords[i-1].Adjacent(c) {
			return fmt.Errorf("%w: step %d jumps %v→%v", ErrInvalidPath, i, p.coords[i-1], c)
		}
	}
	return nil
}
