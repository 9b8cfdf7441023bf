// Package carve generates perfect mazes by randomized wall carving.
//
// What
//
//   - Starts from an all-Wall grid with (0,0) open.
//   - Keeps a list of wall candidates, each remembering the direction from
//     the passage cell that proposed it.
//   - Repeatedly removes a random candidate; if the cell two steps from the
//     proposer is still a wall, both cells are opened and the new cell's
//     wall neighbors join the list.
//   - Forces the exit (width-1, height-1) open, bridging it to the tree when
//     no carved passage touches it.
//
// Guarantees
//
//	The passage cells always form one spanning tree under 4-adjacency: every
//	passage is reachable from (0,0), and exactly one simple path joins any
//	two passages. Output depends only on the random source, so a seeded
//	source reproduces the same maze.
//
// Usage
//
//	g, err := carve.Generate(25, 25, carve.WithSeed(42))
//
//	r := rand.New(rand.NewSource(7))
//	g, stats, err := carve.GenerateWithStats(w, h,
//	    carve.WithRand(r),
//	    carve.WithOnCarve(func(cell, room grid.Coord) { /* ... */ }),
//	)
//
// Complexity
//
//   - Time:   O(W×H); each cell turns Passage at most once and adds at most
//     four candidates when it does.
//   - Memory: O(W×H) for the grid and candidate list.
//
// Errors
//
//   - grid.ErrInvalidDimensions  if width or height is not positive.
//   - ErrNilRand                 if WithRand(nil) was supplied.
package carve
