// Package trajectory keeps the bounded history of integrated positions that
// the watch face draws every frame.
package trajectory

import (
	"github.com/san-kum/chaoswatch/internal/dynamo"
)

// DefaultCapacity is the number of positions kept on screen.
const DefaultCapacity = 300

// Point is a recorded position. It is a value: recording copies the state,
// so later integration steps never alter history.
type Point struct {
	X, Y, Z float64
}

// FromState copies the first three components of s.
func FromState(s dynamo.State) Point {
	return Point{X: s[0], Y: s[1], Z: s[2]}
}

// Scale returns p multiplied component-wise by f.
func (p Point) Scale(f float64) Point { return Point{p.X * f, p.Y * f, p.Z * f} }

// Ring is a fixed-capacity FIFO of points. Once full, each Push evicts the
// oldest point. Not safe for concurrent use.
type Ring struct {
	data []Point
	pos  int
	full bool
}

// New creates a ring holding at most capacity points.
func New(capacity int) (*Ring, error) {
	if capacity <= 0 {
		return nil, dynamo.NewConfigError("capacity", capacity, "must be positive")
	}
	return &Ring{data: make([]Point, capacity)}, nil
}

// Push appends p, overwriting the oldest point when the ring is full.
func (r *Ring) Push(p Point) {
	r.data[r.pos] = p
	r.pos++
	if r.pos == len(r.data) {
		r.pos = 0
		r.full = true
	}
}

// Len returns the number of stored points.
func (r *Ring) Len() int {
	if r.full {
		return len(r.data)
	}
	return r.pos
}

// Cap returns the fixed capacity.
func (r *Ring) Cap() int { return len(r.data) }

// Points returns a copy of the contents, oldest first.
func (r *Ring) Points() []Point {
	return r.AppendPoints(make([]Point, 0, r.Len()))
}

// AppendPoints appends the contents, oldest first, to dst.
func (r *Ring) AppendPoints(dst []Point) []Point {
	if r.full {
		dst = append(dst, r.data[r.pos:]...)
	}
	return append(dst, r.data[:r.pos]...)
}

// Last returns the most recently pushed point.
func (r *Ring) Last() (Point, bool) {
	if r.Len() == 0 {
		return Point{}, false
	}
	i := r.pos - 1
	if i < 0 {
		i = len(r.data) - 1
	}
	return r.data[i], true
}

// Reset empties the ring without releasing its storage.
func (r *Ring) Reset() {
	r.pos = 0
	r.full = false
}
