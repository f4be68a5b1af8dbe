package analysis

import (
	"math"

	"github.com/san-kum/chaoswatch/internal/dynamo"
)

// LyapunovExponent estimates the largest Lyapunov exponent by following a
// reference and a perturbed trajectory, rescaling their separation back to
// d0 after every step and averaging the log growth. The first transient
// seconds are integrated but not measured. A positive value indicates chaos.
func LyapunovExponent(
	dyn dynamo.System,
	integ dynamo.Integrator,
	x0 dynamo.State,
	dt, transient, duration float64,
	d0 float64,
) float64 {
	if len(x0) == 0 || dt <= 0 || d0 <= 0 {
		return 0
	}

	ctrl := make(dynamo.Control, dyn.ControlDim())
	x := x0.Clone()
	t := 0.0
	for t < transient {
		x = integ.Step(dyn, x, ctrl, t, dt)
		t += dt
	}

	xp := x.Clone()
	xp[0] += d0

	sumLog := 0.0
	elapsed := 0.0
	for elapsed < duration {
		x = integ.Step(dyn, x, ctrl, t, dt)
		xp = integ.Step(dyn, xp, ctrl, t, dt)
		t += dt
		elapsed += dt

		sep := xp.Sub(x).Norm()
		if sep == 0 || math.IsNaN(sep) {
			return 0
		}
		sumLog += math.Log(sep / d0)

		scale := d0 / sep
		for i := range xp {
			xp[i] = x[i] + (xp[i]-x[i])*scale
		}
	}

	if elapsed == 0 {
		return 0
	}
	return sumLog / elapsed
}
