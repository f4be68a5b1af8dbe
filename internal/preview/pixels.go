// Package preview opens a desktop window that plays the animation. The
// window needs the ebiten build tag; without it Run reports ErrUnavailable.
package preview

import (
	"errors"

	"github.com/san-kum/chaoswatch/internal/raster"
)

var ErrUnavailable = errors.New("preview: built without the 'ebiten' tag")

// fillRGBA expands an 8-bit gray frame into dst as opaque RGBA.
func fillRGBA(dst []byte, fb *raster.FrameBuffer) {
	if len(dst) != 4*len(fb.Pix) {
		return
	}
	for i, v := range fb.Pix {
		o := i * 4
		dst[o] = v
		dst[o+1] = v
		dst[o+2] = v
		dst[o+3] = 0xff
	}
}

// ticksPerFrame converts a frame delay in milliseconds to update ticks at
// the given tick rate, never less than one.
func ticksPerFrame(delayMs, tps int) int {
	n := delayMs * tps / 1000
	if n < 1 {
		return 1
	}
	return n
}
