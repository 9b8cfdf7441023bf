package mazeimage

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
)

// palette holds every color Render can emit. BorderColor matches PassageColor.
var palette = color.Palette{WallColor, PassageColor, PathColor}

// WritePNG encodes img to w as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("%w: png: %v", ErrEncode, err)
	}
	return nil
}

// WriteGIF encodes frames as a looping animated GIF, showing each frame
// for delay hundredths of a second; the last frame is held four times longer.
func WriteGIF(w io.Writer, frames []*image.RGBA, delay int) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	anim := &gif.GIF{
		Image: make([]*image.Paletted, 0, len(frames)),
		Delay: make([]int, 0, len(frames)),
	}
	for i, f := range frames {
		p := image.NewPaletted(f.Bounds(), palette)
		draw.Draw(p, p.Rect, f, f.Bounds().Min, draw.Src)
		anim.Image = append(anim.Image, p)
		d := delay
		if i == len(frames)-1 {
			d *= 4
		}
		anim.Delay = append(anim.Delay, d)
	}
	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("%w: gif: %v", ErrEncode, err)
	}
	return nil
}
