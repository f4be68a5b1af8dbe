// Package raster paints projected trajectories into monochrome frames.
package raster

import (
	"github.com/san-kum/chaoswatch/internal/dynamo"
	"github.com/san-kum/chaoswatch/internal/viewport"
)

// Stroke half-widths: 3×3 for history, 5×5 for the current position.
const (
	DefaultStroke   = 1
	DefaultEmphasis = 2
)

// Rasterizer draws pixel lists as filled squares on fresh frames.
type Rasterizer struct {
	Width, Height int
	Stroke        int
	Emphasis      int
}

func New(w, h int) (*Rasterizer, error) {
	if w <= 0 {
		return nil, dynamo.NewConfigError("raster.width", w, "must be positive")
	}
	if h <= 0 {
		return nil, dynamo.NewConfigError("raster.height", h, "must be positive")
	}
	return &Rasterizer{Width: w, Height: h, Stroke: DefaultStroke, Emphasis: DefaultEmphasis}, nil
}

// Paint returns a new frame with every pixel drawn as a Stroke square and
// the last pixel redrawn as an Emphasis square on top.
func (r *Rasterizer) Paint(px []viewport.Pixel) *FrameBuffer {
	fb := NewFrameBuffer(r.Width, r.Height)
	r.PaintInto(fb, px)
	return fb
}

// PaintInto draws onto an existing frame without clearing it.
func (r *Rasterizer) PaintInto(fb *FrameBuffer, px []viewport.Pixel) {
	for _, p := range px {
		square(fb, p, r.Stroke)
	}
	if len(px) > 0 {
		square(fb, px[len(px)-1], r.Emphasis)
	}
}

func square(fb *FrameBuffer, p viewport.Pixel, half int) {
	fb.FillRect(p.X-half, p.Y-half, p.X+half, p.Y+half, Foreground)
}
