package mazeimage

import (
	"image"
	"image/color"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/solve"
)

// mazeView lazily maps pixels to cell colors. It satisfies image.Image so
// image_utils can rasterize it.
type mazeView struct {
	g        *grid.Grid
	onPath   map[grid.Coord]bool
	cellSize int
}

func (v *mazeView) ColorModel() color.Model {
	return color.RGBAModel
}

func (v *mazeView) Bounds() image.Rectangle {
	return image.Rect(0, 0, v.g.Width()*v.cellSize, v.g.Height()*v.cellSize)
}

func (v *mazeView) At(x, y int) color.Color {
	if !image.Pt(x, y).In(v.Bounds()) {
		return color.Transparent
	}
	c := grid.Coord{X: x / v.cellSize, Y: y / v.cellSize}
	if v.onPath[c] {
		return PathColor
	}
	if v.g.IsPassage(c) {
		return PassageColor
	}
	return WallColor
}

// Render draws g with the given path cells highlighted. An empty path
// draws the bare maze.
// Complexity: O(W×H×CellSize²).
func Render(g *grid.Grid, path solve.Path, opts ...Option) (*image.RGBA, error) {
	if g == nil {
		return nil, solve.ErrNilGrid
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return render(g, path.Coords(), o)
}

func render(g *grid.Grid, cells []grid.Coord, o Options) (*image.RGBA, error) {
	view := &mazeView{
		g:        g,
		onPath:   make(map[grid.Coord]bool, len(cells)),
		cellSize: o.CellSize,
	}
	for _, c := range cells {
		view.onPath[c] = true
	}
	if o.Border == 0 {
		return image_utils.ToRGBA(view), nil
	}

	b := view.Bounds()
	frame := image.NewRGBA(image.Rect(0, 0, b.Dx()+2*o.Border, b.Dy()+2*o.Border))
	for i := 0; i < len(frame.Pix); i += 4 {
		frame.Pix[i+0] = BorderColor.R
		frame.Pix[i+1] = BorderColor.G
		frame.Pix[i+2] = BorderColor.B
		frame.Pix[i+3] = BorderColor.A
	}
	composite := image_utils.NewCompositeImage()
	if err := composite.AddImage(frame, image.Pt(0, 0)); err != nil {
		return nil, err
	}
	if err := composite.AddImage(view, image.Pt(o.Border, o.Border)); err != nil {
		return nil, err
	}
	return image_utils.ToRGBA(composite), nil
}

// RenderFrames returns one image per path prefix: frame i highlights the
// first i+1 cells. A path of length n yields n frames; an empty path
// yields a single frame of the bare maze.
func RenderFrames(g *grid.Grid, path solve.Path, opts ...Option) ([]*image.RGBA, error) {
	if g == nil {
		return nil, solve.ErrNilGrid
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	cells := path.Coords()
	if len(cells) == 0 {
		img, err := render(g, nil, o)
		if err != nil {
			return nil, err
		}
		return []*image.RGBA{img}, nil
	}
	frames := make([]*image.RGBA, 0, len(cells))
	for i := range cells {
		img, err := render(g, cells[:i+1], o)
		if err != nil {
			return nil, err
		}
		frames = append(frames, img)
	}
	return frames, nil
}
