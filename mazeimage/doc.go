// Package mazeimage draws a maze grid and an optional solution path as a
// raster image, and writes PNG stills or an animated GIF of the path being
// traced.
//
// Walls are black, passages white and path cells red. Each cell is a
// CellSize × CellSize square; an optional white border frames the maze.
package mazeimage
