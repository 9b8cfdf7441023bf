// Package lvmaze carves and solves perfect grid mazes.
//
// What is lvmaze?
//
//	A small, zero-cgo library that brings together:
//		• grid:      the Wall/Passage cell grid, coordinates and directions
//		• carve:     randomized Prim-style wall carving into a spanning tree
//		• solve:     breadth-first shortest paths with visit hooks
//		• mazeimage: PNG stills and animated GIFs of a maze and its path
//
// Data flows one way:
//
//	carve.Generate ──► *grid.Grid ──► solve.Solve ──► solve.Path ──► mazeimage
//
// Every maze carve produces is perfect: exactly one simple path joins any
// two passage cells, so the BFS path is also the only path.
//
// Quick example:
//
//	g, _ := carve.Generate(25, 25, carve.WithSeed(42))
//	res, _ := solve.Solve(g, grid.Coord{}, grid.Coord{X: 24, Y: 24})
//	img, _ := mazeimage.Render(g, res.Path)
//
// The mazegen command under cmd/ wires these together from the shell.
package lvmaze
