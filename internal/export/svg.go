// Package export writes rendered frames as SVG documents.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/chaoswatch/internal/raster"
	"github.com/san-kum/chaoswatch/internal/viewport"
)

// FrameBufferToSVG emits one square per inked pixel, scaled by scale.
func FrameBufferToSVG(fb *raster.FrameBuffer, scale float64) string {
	if fb == nil {
		return ""
	}
	if scale <= 0 {
		scale = 1
	}

	width := float64(fb.Width) * scale
	height := float64(fb.Height) * scale

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f" shape-rendering="crispEdges">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<g fill="#000000">
`, width, height, width, height)

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			if !fb.IsSet(x, y) {
				continue
			}
			fmt.Fprintf(&sb, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>
`, float64(x)*scale, float64(y)*scale, scale, scale)
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// TrajectoryToSVG draws projected pixels as a polyline in viewport
// coordinates, marking the last one.
func TrajectoryToSVG(px []viewport.Pixel, size int, strokeColor string) string {
	if len(px) < 2 {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<path fill="none" stroke="%s" stroke-width="1" d="M`,
		size, size, size, size, strokeColor)

	for i, p := range px {
		if i == 0 {
			fmt.Fprintf(&sb, "%d,%d", p.X, p.Y)
		} else {
			fmt.Fprintf(&sb, " L%d,%d", p.X, p.Y)
		}
	}

	last := px[len(px)-1]
	fmt.Fprintf(&sb, `"/>
<rect x="%d" y="%d" width="5" height="5" fill="%s"/>
</svg>`, last.X-2, last.Y-2, strokeColor)
	return sb.String()
}
