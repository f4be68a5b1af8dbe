// Package physics provides the vector field driven by the watch face.
//
// [Lorenz] implements [dynamo.System] for the Lorenz equations
//
//	dx/dt = σ(y − x)
//	dy/dt = x(ρ − z) − y
//	dz/dt = xy − βz
//
// and [dynamo.Configurable] so the coefficients can be read back or tuned
// from configuration. The defaults (σ=10, ρ=28, β=8/3) sit in the classic
// chaotic regime.
package physics
