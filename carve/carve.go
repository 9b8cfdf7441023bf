package carve

import (
	"github.com/katalvlaran/lvmaze/grid"
)

// Generate carves a perfect maze over a width × height grid.
// It is GenerateWithStats without the statistics.
func Generate(width, height int, opts ...Option) (*grid.Grid, error) {
	g, _, err := GenerateWithStats(width, height, opts...)
	return g, err
}

// GenerateWithStats carves a perfect maze and reports how the run went.
//
// Steps:
//  1. Allocate an all-Wall grid; open (0,0).
//  2. Seed the candidate list with the in-bounds neighbors of (0,0).
//  3. While candidates remain:
//     a. Remove one at a random index.
//     b. room = candidate cell + its direction.
//     c. If room is in bounds and Wall: open both, fire OnCarve, push the
//     room's Wall neighbors.
//     d. Otherwise drop it.
//  4. Open the exit (width-1, height-1) and bridge it if isolated.
//
// Returns grid.ErrInvalidDimensions for non-positive sizes and ErrNilRand
// for a nil source.
// Complexity: O(W×H) time and memory.
func GenerateWithStats(width, height int, opts ...Option) (*grid.Grid, Stats, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, Stats{}, o.err
	}

	g, err := grid.New(width, height)
	if err != nil {
		return nil, Stats{}, err
	}

	var stats Stats
	origin := grid.Coord{X: 0, Y: 0}
	_ = g.Set(origin, grid.Passage)

	walls := make(candidates, 0, 4)
	walls.push(g, origin)

	for len(walls) > 0 {
		c := walls.take(o.Rand.Intn(len(walls)))
		room := c.cell.Add(c.dir)
		if !g.Contains(room) || g.StateAt(room) == grid.Passage {
			stats.Discarded++
			continue
		}
		_ = g.Set(c.cell, grid.Passage)
		_ = g.Set(room, grid.Passage)
		stats.Carves++
		o.OnCarve(c.cell, room)
		walls.push(g, room)
	}

	exit := grid.Coord{X: width - 1, Y: height - 1}
	stats.Bridged = openExit(g, exit)

	return g, stats, nil
}

// openExit forces exit to Passage. When both dimensions are even the exit
// sits on a cell the carve never reaches, so it is joined to the tree
// through the first neighbor that touches exactly one passage.
// Reports whether a connector was opened.
func openExit(g *grid.Grid, exit grid.Coord) bool {
	if g.IsPassage(exit) {
		return false
	}
	defer func() { _ = g.Set(exit, grid.Passage) }()
	if g.PassageNeighbors(exit) > 0 {
		return false
	}
	for _, n := range g.Neighbors(exit) {
		// more than one open neighbor would close a cycle through exit
		if g.PassageNeighbors(n) == 1 {
			_ = g.Set(n, grid.Passage)
			return true
		}
	}
	return false
}
