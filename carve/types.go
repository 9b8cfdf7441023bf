package carve

import (
	"errors"
	"math/rand"
	"time"

	"github.com/katalvlaran/lvmaze/grid"
)

// ErrNilRand is returned when WithRand is given a nil source.
var ErrNilRand = errors.New("carve: random source is nil")

// Rand is the randomness Generate consumes. *math/rand.Rand satisfies it.
type Rand interface {
	// Intn returns a value in [0,n). n is always > 0.
	Intn(n int) int
}

// Option configures Generate via functional arguments.
type Option func(*Options)

// Options holds the random source and hooks for one generation.
type Options struct {
	// Rand picks candidates. Owned by the caller; not safe to share across
	// concurrent Generate calls unless the source itself is.
	Rand Rand

	// OnCarve is called each time a candidate is accepted, with the opened
	// wall cell and the room cell beyond it.
	OnCarve func(cell, room grid.Coord)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a time-seeded source and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
		OnCarve: func(grid.Coord, grid.Coord) {},
	}
}

// WithRand sets the random source. A nil source is recorded and
// surfaced as ErrNilRand.
func WithRand(r Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = ErrNilRand
			return
		}
		o.Rand = r
	}
}

// WithSeed uses a math/rand source seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithOnCarve registers a callback run for every accepted candidate.
func WithOnCarve(fn func(cell, room grid.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCarve = fn
		}
	}
}

// Stats summarizes one generation run.
type Stats struct {
	// Carves is the number of accepted candidates. Each opens two cells.
	Carves int
	// Discarded is the number of candidates dropped because the cell
	// beyond them was out of bounds or already open.
	Discarded int
	// Bridged reports whether the exit needed an extra connector cell.
	Bridged bool
}
