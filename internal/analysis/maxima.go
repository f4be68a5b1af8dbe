package analysis

import "github.com/san-kum/chaoswatch/internal/dynamo"

// LocalMaxima integrates from x0 and records each local maximum of state
// component idx, refined by fitting a parabola through the three samples
// around the turn. For the Lorenz system with idx 2, successive values form
// the Lorenz return map.
func LocalMaxima(
	dyn dynamo.System,
	integ dynamo.Integrator,
	x0 dynamo.State,
	idx int,
	dt, transient, duration float64,
) []float64 {
	if idx < 0 || idx >= len(x0) || dt <= 0 {
		return nil
	}

	ctrl := make(dynamo.Control, dyn.ControlDim())
	x := x0.Clone()
	t := 0.0
	for t < transient {
		x = integ.Step(dyn, x, ctrl, t, dt)
		t += dt
	}

	peaks := make([]float64, 0)
	prev2, prev1 := x[idx], x[idx]
	for elapsed := 0.0; elapsed < duration; elapsed += dt {
		x = integ.Step(dyn, x, ctrl, t, dt)
		t += dt
		cur := x[idx]

		if prev1 > prev2 && prev1 >= cur {
			peaks = append(peaks, vertex(prev2, prev1, cur))
		}
		prev2, prev1 = prev1, cur
	}
	return peaks
}

// vertex returns the peak of the parabola through three equally spaced
// samples, with b the middle one.
func vertex(a, b, c float64) float64 {
	den := a - 2*b + c
	if den == 0 {
		return b
	}
	return b - (a-c)*(a-c)/(8*den)
}
