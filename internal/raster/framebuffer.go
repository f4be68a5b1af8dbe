package raster

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
)

// Pixel values. The panel is bistable: every pixel is one or the other.
const (
	Background uint8 = 0xFF // unset, white paper
	Foreground uint8 = 0x00 // set, black ink
)

// Palette is the two-entry palette used when a frame is exported as an
// indexed image. Index 0 is the background.
var Palette = color.Palette{color.White, color.Black}

var (
	_ image.Image       = (*FrameBuffer)(nil)
	_ drivers.Displayer = (*FrameBuffer)(nil)
)

// FrameBuffer is a W×H 8-bit grayscale pixel grid, row-major.
//
// It satisfies image.Image for encoders and drivers.Displayer so glyph
// renderers can draw onto it directly.
type FrameBuffer struct {
	Width, Height int
	Pix           []uint8
}

// NewFrameBuffer returns a buffer with every pixel set to Background.
func NewFrameBuffer(w, h int) *FrameBuffer {
	fb := &FrameBuffer{Width: w, Height: h, Pix: make([]uint8, w*h)}
	fb.Fill(Background)
	return fb
}

func (f *FrameBuffer) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.Width && y < f.Height
}

// Set writes v at (x, y). Writes outside the buffer are ignored.
func (f *FrameBuffer) Set(x, y int, v uint8) {
	if !f.inside(x, y) {
		return
	}
	f.Pix[y*f.Width+x] = v
}

// Get returns the value at (x, y), or Background outside the buffer.
func (f *FrameBuffer) Get(x, y int) uint8 {
	if !f.inside(x, y) {
		return Background
	}
	return f.Pix[y*f.Width+x]
}

// IsSet reports whether (x, y) holds ink.
func (f *FrameBuffer) IsSet(x, y int) bool {
	return f.Get(x, y) != Background
}

func (f *FrameBuffer) Fill(v uint8) {
	for i := range f.Pix {
		f.Pix[i] = v
	}
}

// FillRect fills the inclusive rectangle [x0,x1]×[y0,y1], clipped to the
// buffer.
func (f *FrameBuffer) FillRect(x0, y0, x1, y1 int, v uint8) {
	x0, x1 = max(x0, 0), min(x1, f.Width-1)
	y0, y1 = max(y0, 0), min(y1, f.Height-1)
	for y := y0; y <= y1; y++ {
		row := f.Pix[y*f.Width : (y+1)*f.Width]
		for x := x0; x <= x1; x++ {
			row[x] = v
		}
	}
}

// StrokeRect draws the one-pixel outline of the inclusive rectangle.
func (f *FrameBuffer) StrokeRect(x0, y0, x1, y1 int, v uint8) {
	for x := x0; x <= x1; x++ {
		f.Set(x, y0, v)
		f.Set(x, y1, v)
	}
	for y := y0; y <= y1; y++ {
		f.Set(x0, y, v)
		f.Set(x1, y, v)
	}
}

// Count returns how many pixels hold v.
func (f *FrameBuffer) Count(v uint8) int {
	n := 0
	for _, p := range f.Pix {
		if p == v {
			n++
		}
	}
	return n
}

func (f *FrameBuffer) Equal(o *FrameBuffer) bool {
	if o == nil || f.Width != o.Width || f.Height != o.Height {
		return false
	}
	for i := range f.Pix {
		if f.Pix[i] != o.Pix[i] {
			return false
		}
	}
	return true
}

func (f *FrameBuffer) Clone() *FrameBuffer {
	c := &FrameBuffer{Width: f.Width, Height: f.Height, Pix: make([]uint8, len(f.Pix))}
	copy(c.Pix, f.Pix)
	return c
}

// Paletted converts the frame to a two-color indexed image using Palette.
func (f *FrameBuffer) Paletted() *image.Paletted {
	img := image.NewPaletted(f.Bounds(), Palette)
	for i, p := range f.Pix {
		if p != Background {
			img.Pix[i] = 1
		}
	}
	return img
}

func (f *FrameBuffer) ColorModel() color.Model { return color.GrayModel }

func (f *FrameBuffer) Bounds() image.Rectangle { return image.Rect(0, 0, f.Width, f.Height) }

func (f *FrameBuffer) At(x, y int) color.Color { return color.Gray{Y: f.Get(x, y)} }

// Size implements drivers.Displayer.
func (f *FrameBuffer) Size() (x, y int16) {
	return int16(f.Width), int16(f.Height)
}

// SetPixel implements drivers.Displayer. Colors are thresholded to ink or
// paper; fully transparent colors are ignored.
func (f *FrameBuffer) SetPixel(x, y int16, c color.RGBA) {
	if c.A == 0 {
		return
	}
	g := color.GrayModel.Convert(c).(color.Gray)
	v := Background
	if g.Y < 0x80 {
		v = Foreground
	}
	f.Set(int(x), int(y), v)
}

// Display implements drivers.Displayer. The buffer is the display, so there
// is nothing to flush.
func (f *FrameBuffer) Display() error { return nil }
