package carve

import "github.com/katalvlaran/lvmaze/grid"

// candidate is a wall cell proposed by an adjacent passage. dir points from
// the proposer through cell toward the room that would be opened.
type candidate struct {
	cell grid.Coord
	dir  grid.Direction
}

// candidates is a multiset of pending walls. The same cell may appear more
// than once; each entry is removed independently by index.
type candidates []candidate

// push appends the in-bounds Wall neighbors of from.
func (cs *candidates) push(g *grid.Grid, from grid.Coord) {
	for _, d := range grid.Directions {
		n := from.Add(d)
		if g.Contains(n) && g.StateAt(n) == grid.Wall {
			*cs = append(*cs, candidate{cell: n, dir: d})
		}
	}
}

// take removes and returns the entry at i by swapping in the last entry.
// Complexity: O(1).
func (cs *candidates) take(i int) candidate {
	old := *cs
	last := len(old) - 1
	c := old[i]
	old[i] = old[last]
	*cs = old[:last]
	return c
}
