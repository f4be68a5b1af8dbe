package export

import (
	"strings"
	"testing"

	"github.com/san-kum/chaoswatch/internal/raster"
	"github.com/san-kum/chaoswatch/internal/viewport"
)

func TestFrameBufferToSVG(t *testing.T) {
	fb := raster.NewFrameBuffer(10, 10)
	fb.Set(1, 2, raster.Foreground)
	fb.Set(9, 9, raster.Foreground)

	svg := FrameBufferToSVG(fb, 2)
	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("not an svg document")
	}
	if !strings.Contains(svg, `width="20" height="20"`) {
		t.Error("scaled dimensions missing")
	}
	if got := strings.Count(svg, `width="2.0"`); got != 2 {
		t.Errorf("expected 2 pixel rects, got %d", got)
	}
	if !strings.Contains(svg, `<rect x="2.0" y="4.0"`) {
		t.Error("pixel (1,2) not placed at scaled position")
	}
}

func TestFrameBufferToSVGNil(t *testing.T) {
	if FrameBufferToSVG(nil, 1) != "" {
		t.Error("expected empty output")
	}
}

func TestTrajectoryToSVG(t *testing.T) {
	px := []viewport.Pixel{{X: 10, Y: 20}, {X: 30, Y: 40}, {X: 100, Y: 100}}
	svg := TrajectoryToSVG(px, 200, "#000000")

	if !strings.Contains(svg, `d="M10,20 L30,40 L100,100"`) {
		t.Errorf("unexpected path:\n%s", svg)
	}
	if !strings.Contains(svg, `<rect x="98" y="98" width="5" height="5"`) {
		t.Error("current point marker missing")
	}
	if TrajectoryToSVG(px[:1], 200, "#000") != "" {
		t.Error("single point should produce no path")
	}
}
