// File: solve/example_test.go
package solve_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/solve"
)

// ExampleSolve walks a hand-drawn maze from the top-left to the
// bottom-right corner and prints each step.
//
//	. # .
//	. . .
//	# # .
func ExampleSolve() {
	g, _ := grid.Parse([]string{
		".#.",
		"...",
		"##.",
	}, '#')

	res, _ := solve.Solve(g, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 2, Y: 2})
	fmt.Println("found:", res.Found, "length:", res.Path.Len())
	steps := make([]string, 0, res.Path.Len())
	for _, c := range res.Path.Coords() {
		steps = append(steps, c.String())
	}
	fmt.Println(strings.Join(steps, " "))

	// Output:
	// found: true length: 5
	// (0,0) (0,1) (1,1) (2,1) (2,2)
}

// ExampleWithOnVisit traces the dequeue order, replacing ad-hoc prints
// inside the search loop.
func ExampleWithOnVisit() {
	g, _ := grid.Parse([]string{"...."}, '#')
	_, _ = solve.Solve(g, grid.Coord{X: 1, Y: 0}, grid.Coord{X: 3, Y: 0},
		solve.WithOnVisit(func(c grid.Coord, depth int) {
			fmt.Printf("visit %v depth %d\n", c, depth)
		}),
	)

	// Output:
	// visit (1,0) depth 0
	// visit (0,0) depth 1
	// visit (2,0) depth 1
	// visit (3,0) depth 2
}
