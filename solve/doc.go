// Package solve finds shortest paths through grid mazes by breadth-first
// search.
//
// What
//
//   - BFS over 4-adjacency restricted to Passage cells.
//   - Neighbors are expanded in grid.Directions order (Left, Right, Up,
//     Down), so the visit order and returned path are reproducible.
//   - Result carries the Path, the visit Order, and Found. A missing path
//     is Found == false, never an error.
//   - Hooks (OnEnqueue, OnVisit) expose traversal progress without
//     touching the algorithm.
//
// Determinism
//
//	For a fixed grid and endpoints Solve always returns the same Result.
//	On a perfect maze the path is the unique simple path between the
//	endpoints and its length equals their tree distance plus one.
//
// Complexity (N = W×H)
//
//   - Time:   O(N)
//   - Memory: O(N) for the predecessor table and queue.
//
// Usage
//
//	res, err := solve.Solve(g, grid.Coord{}, grid.Coord{X: w - 1, Y: h - 1})
//	if err != nil {
//	    // grid.ErrOutOfBounds, ErrNilGrid, or a context error
//	}
//	if !res.Found {
//	    // nothing to draw
//	}
//
// Errors
//
//   - ErrNilGrid           if the grid pointer is nil.
//   - grid.ErrOutOfBounds  if start or end lies outside the grid.
//   - ctx.Err()            if the context passed via WithContext is done.
package solve
