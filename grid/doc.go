// Package grid provides the rectangular cell grid shared by the maze
// generator and solver.
//
// What:
//
//   - Grid stores width × height cells, each either Wall or Passage.
//   - Coord addresses a cell by (x, y); Direction is a unit step.
//   - Directions fixes the neighbor order (Left, Right, Up, Down) used by
//     every traversal, so carving and solving are reproducible.
//   - Text renders a grid as rows of runes for logs and golden tests.
//
// Complexity:
//
//   - New:     O(W×H) time and memory.
//   - State:   O(1).
//   - Text:    O(W×H).
//
// Errors:
//
//   - ErrInvalidDimensions: width or height is not positive.
//   - ErrOutOfBounds: a coordinate lies outside the grid.
package grid
