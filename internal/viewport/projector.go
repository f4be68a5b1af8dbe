package viewport

import (
	"math"

	"github.com/san-kum/chaoswatch/internal/dynamo"
	"github.com/san-kum/chaoswatch/internal/trajectory"
)

// Defaults for the 200x200 e-paper panel.
const (
	DefaultSize    = 200
	DefaultMargin  = 5.0
	DefaultExtent  = 80.0
	DefaultEpsilon = 0.1
)

// Vec2 is a rotated, projected point in model units.
type Vec2 struct {
	X, Y float64
}

// Pixel is an integer display coordinate.
type Pixel struct {
	X, Y int
}

// Transform is the per-frame affine map from model units to display pixels.
type Transform struct {
	Angle            float64
	Scale            float64
	CenterX, CenterY float64
	MinX, MaxX       float64
	MinY, MaxY       float64
}

// Projector holds the fixed viewport geometry.
type Projector struct {
	Size    int
	Margin  float64
	Extent  float64
	Epsilon float64
}

// Default returns the projector for the standard 200x200 display.
func Default() Projector {
	return Projector{Size: DefaultSize, Margin: DefaultMargin, Extent: DefaultExtent, Epsilon: DefaultEpsilon}
}

// Validate reports geometry that cannot produce a drawable interior.
func (p Projector) Validate() error {
	switch {
	case p.Size <= 0:
		return dynamo.NewConfigError("viewport.size", p.Size, "must be positive")
	case p.Margin < 0 || 2*p.Margin >= float64(p.Size):
		return dynamo.NewConfigError("viewport.margin", p.Margin, "must leave a drawable interior")
	case p.Extent <= 0 || math.IsInf(p.Extent, 0) || math.IsNaN(p.Extent):
		return dynamo.NewConfigError("viewport.extent", p.Extent, "must be positive and finite")
	case p.Epsilon <= 0 || math.IsInf(p.Epsilon, 0) || math.IsNaN(p.Epsilon):
		return dynamo.NewConfigError("viewport.epsilon", p.Epsilon, "must be positive and finite")
	}
	return nil
}

// Rotate turns each point about the y axis by angle and drops z.
func Rotate(points []trajectory.Point, angle float64) []Vec2 {
	sin, cos := math.Sincos(angle)
	out := make([]Vec2, len(points))
	for i, pt := range points {
		out[i] = Vec2{X: pt.X*cos - pt.Z*sin, Y: pt.Y}
	}
	return out
}

// Fit computes the uniform scale and center that place the bounding box of
// pts inside the extent. Axis ranges below Epsilon are widened to Epsilon.
func (p Projector) Fit(pts []Vec2) Transform {
	if len(pts) == 0 {
		return Transform{Scale: p.Extent / p.Epsilon}
	}

	minX, maxX := pts[0].X, pts[0].X
	minY, maxY := pts[0].Y, pts[0].Y
	for _, v := range pts[1:] {
		minX = math.Min(minX, v.X)
		maxX = math.Max(maxX, v.X)
		minY = math.Min(minY, v.Y)
		maxY = math.Max(maxY, v.Y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX < p.Epsilon {
		rangeX = p.Epsilon
	}
	if rangeY < p.Epsilon {
		rangeY = p.Epsilon
	}

	return Transform{
		Scale:   math.Min(p.Extent/rangeX, p.Extent/rangeY),
		CenterX: (minX + maxX) / 2,
		CenterY: (minY + maxY) / 2,
		MinX:    minX,
		MaxX:    maxX,
		MinY:    minY,
		MaxY:    maxY,
	}
}

// Place maps v to display coordinates before clamping.
func (p Projector) Place(t Transform, v Vec2) (float64, float64) {
	mid := float64(p.Size) / 2
	return (v.X-t.CenterX)*t.Scale + mid, (v.Y-t.CenterY)*t.Scale + mid
}

// Pixel clamps a placed coordinate into the drawable interior and rounds it
// down.
func (p Projector) Pixel(x, y float64) Pixel {
	hi := float64(p.Size) - p.Margin
	return Pixel{
		X: int(math.Floor(clamp(x, p.Margin, hi))),
		Y: int(math.Floor(clamp(y, p.Margin, hi))),
	}
}

// Project rotates, fits and clamps the whole trajectory. The result has one
// pixel per input point, in the same order.
func (p Projector) Project(points []trajectory.Point, angle float64) []Pixel {
	px, _ := p.ProjectWithTransform(points, angle)
	return px
}

// ProjectWithTransform is Project that also returns the fitted transform.
func (p Projector) ProjectWithTransform(points []trajectory.Point, angle float64) ([]Pixel, Transform) {
	rotated := Rotate(points, angle)
	t := p.Fit(rotated)
	t.Angle = angle

	out := make([]Pixel, len(rotated))
	for i, v := range rotated {
		out[i] = p.Pixel(p.Place(t, v))
	}
	return out, t
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
