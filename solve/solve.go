package solve

import (
	"context"

	"github.com/katalvlaran/lvmaze/grid"
)

const noParent = -1

// walker encapsulates mutable BFS state for one Solve call.
type walker struct {
	g      *grid.Grid
	opts   Options
	ctx    context.Context
	queue  []int
	parent []int
	depth  []int
	res    *Result
}

// Solve runs breadth-first search on g from start to end.
//
// Steps:
//  1. Validate the grid and both endpoints.
//  2. A Wall start or end can never be reached: return Found == false.
//  3. Seed the queue with start (predecessor sentinel).
//  4. Pop the front; if it is end, rebuild the path from predecessors.
//  5. Otherwise enqueue unseen Passage neighbors in grid.Directions order.
//  6. An empty queue means end is unreachable: Found == false.
//
// Returns ErrNilGrid, grid.ErrOutOfBounds, or the context error.
// Complexity: O(W×H) time and memory.
func Solve(g *grid.Grid, start, end grid.Coord, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := g.Check(start); err != nil {
		return nil, err
	}
	if err := g.Check(end); err != nil {
		return nil, err
	}

	res := &Result{}
	if !g.IsPassage(start) || !g.IsPassage(end) {
		return res, nil
	}

	parent := make([]int, g.Len())
	for i := range parent {
		parent[i] = noParent
	}
	w := &walker{
		g:      g,
		opts:   o,
		ctx:    o.Ctx,
		queue:  make([]int, 0, g.Len()),
		parent: parent,
		depth:  make([]int, g.Len()),
		res:    res,
	}
	seen := make([]bool, g.Len())
	src := g.Index(start)
	seen[src] = true
	w.enqueue(src, 0)

	target := g.Index(end)
	for qi := 0; qi < len(w.queue); qi++ {
		select {
		case <-w.ctx.Done():
			return nil, w.ctx.Err()
		default:
		}

		u := w.queue[qi]
		c := g.Coordinate(u)
		w.res.Order = append(w.res.Order, c)
		w.opts.OnVisit(c, w.depth[u])

		if u == target {
			w.res.Found = true
			w.res.Path = Path{coords: w.backtrack(u)}
			return w.res, nil
		}

		for _, d := range grid.Directions {
			n := c.Add(d)
			if !g.IsPassage(n) {
				continue
			}
			v := g.Index(n)
			if seen[v] {
				continue
			}
			seen[v] = true
			w.parent[v] = u
			w.enqueue(v, w.depth[u]+1)
		}
	}
	return w.res, nil
}

// enqueue records idx at depth d and fires OnEnqueue.
func (w *walker) enqueue(idx, d int) {
	w.depth[idx] = d
	w.queue = append(w.queue, idx)
	w.opts.OnEnqueue(w.g.Coordinate(idx), d)
}

// backtrack follows predecessors from idx to the start and returns the
// start→idx sequence.
func (w *walker) backtrack(idx int) []grid.Coord {
	path := make([]grid.Coord, 0, w.depth[idx]+1)
	for at := idx; at != noParent; at = w.parent[at] {
		path = append(path, w.g.Coordinate(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
