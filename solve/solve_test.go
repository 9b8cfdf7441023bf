package solve_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/carve"
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/solve"
)

type lastRand struct{}

func (lastRand) Intn(n int) int { return n - 1 }

func mustParse(t *testing.T, rows ...string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(rows, '#')
	require.NoError(t, err)
	return g
}

func coords(xy ...int) []grid.Coord {
	out := make([]grid.Coord, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, grid.Coord{X: xy[i], Y: xy[i+1]})
	}
	return out
}

// TestSolve_Errors verifies that invalid inputs are rejected.
func TestSolve_Errors(t *testing.T) {
	if _, err := solve.Solve(nil, grid.Coord{}, grid.Coord{}); !errors.Is(err, solve.ErrNilGrid) {
		t.Errorf("nil grid: want ErrNilGrid, got %v", err)
	}
	g := mustParse(t, "...")
	cases := []struct {
		name       string
		start, end grid.Coord
	}{
		{"StartLeft", grid.Coord{X: -1, Y: 0}, grid.Coord{X: 2, Y: 0}},
		{"StartBelow", grid.Coord{X: 0, Y: 1}, grid.Coord{X: 2, Y: 0}},
		{"EndRight", grid.Coord{X: 0, Y: 0}, grid.Coord{X: 3, Y: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := solve.Solve(g, tc.start, tc.end)
			assert.ErrorIs(t, err, grid.ErrOutOfBounds)
			assert.Nil(t, res)
		})
	}
}

// TestSolve_SingleCell covers the 1×1 scenario.
func TestSolve_SingleCell(t *testing.T) {
	g, err := carve.Generate(1, 1, carve.WithSeed(0))
	require.NoError(t, err)
	res, err := solve.Solve(g, grid.Coord{}, grid.Coord{})
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 1, res.Path.Len())
	assert.Equal(t, coords(0, 0), res.Path.Coords())
}

// TestSolve_WallEndpoints returns NotFound rather than failing.
func TestSolve_WallEndpoints(t *testing.T) {
	g := mustParse(t,
		".#.",
		"...",
	)
	res, err := solve.Solve(g, grid.Coord{X: 1, Y: 0}, grid.Coord{X: 2, Y: 1})
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 0, res.Path.Len())
	assert.Empty(t, res.Order, "a wall start is never visited")

	res, err = solve.Solve(g, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 1, Y: 0})
	require.NoError(t, err)
	assert.False(t, res.Found)
}

// TestSolve_Unreachable explores only the start component.
func TestSolve_Unreachable(t *testing.T) {
	g := mustParse(t, "..#..")
	res, err := solve.Solve(g, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 4, Y: 0})
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, coords(0, 0, 1, 0), res.Order)
}

// TestSolve_VisitOrder checks the Left, Right, Up, Down expansion order
// on an open 2×2 room.
func TestSolve_VisitOrder(t *testing.T) {
	g := mustParse(t,
		"..",
		"..",
	)
	var enq []grid.Coord
	var depths []int
	res, err := solve.Solve(g, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 1, Y: 1},
		solve.WithOnEnqueue(func(c grid.Coord, _ int) { enq = append(enq, c) }),
		solve.WithOnVisit(func(_ grid.Coord, d int) { depths = append(depths, d) }),
	)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, coords(0, 0, 1, 0, 0, 1, 1, 1), res.Order)
	assert.Equal(t, coords(0, 0, 1, 0, 0, 1, 1, 1), enq)
	assert.Equal(t, []int{0, 1, 1, 2}, depths)
	assert.Equal(t, coords(0, 0, 1, 0, 1, 1), res.Path.Coords())
}

// TestSolve_Golden5x5 solves the scripted 5×5 maze corner to corner.
// The maze is a single serpentine corridor, so the path covers every passage.
func TestSolve_Golden5x5(t *testing.T) {
	g, err := carve.Generate(5, 5, carve.WithRand(lastRand{}))
	require.NoError(t, err)

	res, err := solve.Solve(g, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 4, Y: 4})
	require.NoError(t, err)
	require.True(t, res.Found)

	want := coords(
		0, 0, 0, 1, 0, 2, 0, 3, 0, 4,
		1, 4, 2, 4,
		2, 3, 2, 2, 2, 1, 2, 0,
		3, 0, 4, 0,
		4, 1, 4, 2, 4, 3, 4, 4,
	)
	assert.Equal(t, want, res.Path.Coords())
	assert.Equal(t, 17, res.Path.Len())
	assert.Equal(t, g.PassageCount(), res.Path.Len())
	assert.NoError(t, res.Path.Validate(g))
}

// TestSolve_Properties checks validity, determinism and uniqueness on
// seeded mazes between random passage pairs.
func TestSolve_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for seed := int64(0); seed < 10; seed++ {
		g, err := carve.Generate(13, 9, carve.WithSeed(seed))
		require.NoError(t, err)

		var open []grid.Coord
		for i := 0; i < g.Len(); i++ {
			if c := g.Coordinate(i); g.IsPassage(c) {
				open = append(open, c)
			}
		}
		for k := 0; k < 10; k++ {
			a, b := open[r.Intn(len(open))], open[r.Intn(len(open))]

			res, err := solve.Solve(g, a, b)
			require.NoError(t, err)
			require.True(t, res.Found, "seed %d: %v→%v unreachable", seed, a, b)
			require.NoError(t, res.Path.Validate(g))
			assert.Equal(t, a, res.Path.Start())
			assert.Equal(t, b, res.Path.End())

			again, err := solve.Solve(g, a, b)
			require.NoError(t, err)
			assert.Equal(t, res.Path.Coords(), again.Path.Coords(), "solve must be deterministic")

			// in a tree the only simple path back is the same one reversed
			back, err := solve.Solve(g, b, a)
			require.NoError(t, err)
			fwd := res.Path.Coords()
			rev := back.Path.Coords()
			require.Equal(t, len(fwd), len(rev))
			for i := range fwd {
				assert.Equal(t, fwd[i], rev[len(rev)-1-i])
			}
		}
	}
}

// TestSolve_Context aborts on a cancelled context.
func TestSolve_Context(t *testing.T) {
	g := mustParse(t, "....")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := solve.Solve(g, grid.Coord{}, grid.Coord{X: 3, Y: 0}, solve.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestPath_Validate covers each violation.
func TestPath_Validate(t *testing.T) {
	g := mustParse(t,
		"...",
		".#.",
	)
	cases := []struct {
		name string
		path solve.Path
		ok   bool
	}{
		{"Valid", solve.NewPath(coords(0, 1, 0, 0, 1, 0, 2, 0, 2, 1)), true},
		{"Empty", solve.NewPath(nil), false},
		{"Wall", solve.NewPath(coords(0, 1, 1, 1)), false},
		{"Jump", solve.NewPath(coords(0, 0, 2, 0)), false},
		{"Repeat", solve.NewPath(coords(0, 0, 1, 0, 0, 0)), false},
		{"OutOfBounds", solve.NewPath(coords(2, 1, 3, 1)), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.path.Validate(g)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, solve.ErrInvalidPath)
			}
		})
	}
	assert.ErrorIs(t, solve.NewPath(nil).Validate(nil), solve.ErrNilGrid)
}

// TestPath_Immutable checks that Coords hands out copies.
func TestPath_Immutable(t *testing.T) {
	src := coords(0, 0, 1, 0)
	p := solve.NewPath(src)
	src[0] = grid.Coord{X: 9, Y: 9}
	got := p.Coords()
	got[1] = grid.Coord{X: 7, Y: 7}
	assert.Equal(t, coords(0, 0, 1, 0), p.Coords())
	assert.True(t, p.Contains(grid.Coord{X: 1, Y: 0}))
	assert.False(t, p.Contains(grid.Coord{X: 9, Y: 9}))
	assert.Equal(t, grid.Coord{X: 1, Y: 0}, p.At(1))
}
