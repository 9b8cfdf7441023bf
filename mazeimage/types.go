package mazeimage

import (
	"errors"
	"fmt"
	"image/color"
)

// Sentinel errors for rendering and encoding.
var (
	// ErrInvalidCellSize indicates a non-positive cell size.
	ErrInvalidCellSize = errors.New("mazeimage: cell size must be positive")
	// ErrInvalidBorder indicates a negative border width.
	ErrInvalidBorder = errors.New("mazeimage: border must not be negative")
	// ErrEncode wraps failures from the image encoders.
	ErrEncode = errors.New("mazeimage: encode failed")
	// ErrNoFrames indicates WriteGIF was given nothing to write.
	ErrNoFrames = errors.New("mazeimage: no frames to encode")
)

// Default drawing parameters.
const (
	DefaultCellSize = 25
	DefaultBorder   = 0
)

// Palette colors.
var (
	WallColor    = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	PassageColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	PathColor    = color.RGBA{R: 230, G: 20, B: 20, A: 255}
	BorderColor  = PassageColor
)

// Option configures rendering via functional arguments.
type Option func(*Options)

// Options holds drawing parameters.
type Options struct {
	// CellSize is the side of one cell in pixels.
	CellSize int
	// Border is the width of the frame around the maze in pixels.
	Border int

	err error
}

// DefaultOptions returns DefaultCellSize and no border.
func DefaultOptions() Options {
	return Options{CellSize: DefaultCellSize, Border: DefaultBorder}
}

// WithCellSize sets the pixel size of each cell. n must be > 0.
func WithCellSize(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: %d", ErrInvalidCellSize, n)
			return
		}
		o.CellSize = n
	}
}

// WithBorder frames the maze with px pixels of BorderColor. px must be >= 0.
func WithBorder(px int) Option {
	return func(o *Options) {
		if px < 0 {
			o.err = fmt.Errorf("%w: %d", ErrInvalidBorder, px)
			return
		}
		o.Border = px
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
