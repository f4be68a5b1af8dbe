// Package overlay draws the watch-face chrome (time, date, step count and
// battery gauge) on top of a rendered trajectory frame.
package overlay

import (
	"fmt"
	"image/color"
	"math"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/san-kum/chaoswatch/internal/raster"
)

const Inset = 5

var ink = color.RGBA{A: 255}

// Face holds the values shown around the trajectory. Battery is a charge
// level in [0,1].
type Face struct {
	Time    string
	Date    string
	Steps   int
	Battery float64
	Font    tinyfont.Fonter
}

// Default returns a face populated with fixed sample values.
func Default() Face {
	return Face{
		Time:    "14:23",
		Date:    "15/03",
		Steps:   2847,
		Battery: 1.0,
		Font:    &proggy.TinySZ8pt7b,
	}
}

func (f Face) font() tinyfont.Fonter {
	if f.Font == nil {
		return &proggy.TinySZ8pt7b
	}
	return f.Font
}

// ascent is the distance from the top of a digit to the baseline.
func ascent(font tinyfont.Fonter) int16 {
	info := font.GetGlyph('0').Info()
	if info.YOffset < 0 {
		return -int16(info.YOffset)
	}
	return int16(info.Height)
}

// Draw renders the face into fb. Text tops sit at the inset; the date is
// right-aligned against the same inset.
func (f Face) Draw(fb *raster.FrameBuffer) {
	font := f.font()
	w := int16(fb.Width)
	h := int16(fb.Height)
	top := Inset + ascent(font)

	tinyfont.WriteLine(fb, font, Inset, top, f.Time, ink)

	_, dw := tinyfont.LineWidth(font, f.Date)
	tinyfont.WriteLine(fb, font, w-int16(dw)-Inset, top, f.Date, ink)

	steps := fmt.Sprintf("%d", f.Steps)
	tinyfont.WriteLine(fb, font, Inset, h-Inset-10+ascent(font), steps, ink)

	f.drawBattery(fb)
}

// Battery gauge geometry, relative to the bottom-right corner.
const (
	batteryWidth  = 20
	batteryHeight = 10
)

func (f Face) drawBattery(fb *raster.FrameBuffer) {
	x1 := fb.Width - Inset
	y1 := fb.Height - Inset
	x0 := x1 - batteryWidth
	y0 := y1 - batteryHeight

	fb.StrokeRect(x0, y0, x1, y1, raster.Foreground)
	fb.FillRect(x1, y0+2, x1+2, y1-2, raster.Foreground)

	level := math.Max(0, math.Min(1, f.Battery))
	if math.IsNaN(f.Battery) {
		level = 0
	}
	inner := x1 - x0 - 1
	fill := int(math.Round(float64(inner) * level))
	if fill > 0 {
		fb.FillRect(x0+1, y0+1, x0+fill, y1-1, raster.Foreground)
	}
}

// Sink receives finished frames.
type Sink interface {
	AddFrame(fb *raster.FrameBuffer) error
}

// Compositor draws the face on every frame before passing it on.
type Compositor struct {
	Face Face
	Next Sink
}

func (c *Compositor) AddFrame(fb *raster.FrameBuffer) error {
	c.Face.Draw(fb)
	return c.Next.AddFrame(fb)
}
