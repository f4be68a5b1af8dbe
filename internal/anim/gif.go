// Package anim assembles rendered frames into a looping GIF.
package anim

import (
	"fmt"
	"image"
	"image/gif"
	"io"
	"os"
	"time"

	"github.com/san-kum/chaoswatch/internal/raster"
)

// DefaultDelay plays the animation at 10 frames per second.
const DefaultDelay = 100 * time.Millisecond

// Assembler collects frames in the order they are added.
type Assembler struct {
	Delay time.Duration
	// LoopCount follows image/gif: 0 loops forever, -1 plays once.
	LoopCount int
	frames    []*image.Paletted
}

func New(delay time.Duration) *Assembler {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Assembler{Delay: delay}
}

// AddFrame converts fb to an indexed image and appends it. The frame buffer
// is not retained.
func (a *Assembler) AddFrame(fb *raster.FrameBuffer) error {
	if fb == nil {
		return fmt.Errorf("anim: nil frame")
	}
	if len(a.frames) > 0 && a.frames[0].Bounds() != fb.Bounds() {
		return fmt.Errorf("anim: frame %d is %v, want %v", len(a.frames), fb.Bounds(), a.frames[0].Bounds())
	}
	a.frames = append(a.frames, fb.Paletted())
	return nil
}

func (a *Assembler) Len() int { return len(a.frames) }

// Encode writes the animation. GIF delays are in hundredths of a second.
func (a *Assembler) Encode(w io.Writer) error {
	if len(a.frames) == 0 {
		return fmt.Errorf("anim: no frames to encode")
	}
	cs := int(a.Delay / (10 * time.Millisecond))
	if cs < 1 {
		cs = 1
	}

	anim := gif.GIF{LoopCount: a.LoopCount}
	for _, frame := range a.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, cs)
	}
	return gif.EncodeAll(w, &anim)
}

// Save encodes the animation to path.
func (a *Assembler) Save(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return a.Encode(f)
}
