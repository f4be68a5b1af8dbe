package viewport

import "math"

// DefaultRotationStep is the camera orbit per frame in radians.
const DefaultRotationStep = 0.2

const twoPi = 2 * math.Pi

// Rotation is the free-running camera orbit. Angle stays in [0, 2π).
type Rotation struct {
	Angle float64
	Step  float64
	Turns int
}

func NewRotation(step float64) Rotation {
	return Rotation{Step: step}
}

// Advance moves the camera by one step and wraps the angle.
func (r *Rotation) Advance() {
	a := r.Angle + r.Step
	if a >= twoPi || a < 0 {
		r.Turns += int(math.Floor(a / twoPi))
		a = math.Mod(a, twoPi)
		if a < 0 {
			a += twoPi
		}
		if a >= twoPi {
			a = 0
		}
	}
	r.Angle = a
}
