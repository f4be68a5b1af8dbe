// Package analysis characterizes the attractor behind the animation.
//
//   - [LyapunovExponent]: largest Lyapunov exponent via renormalized
//     trajectory separation
//   - [LocalMaxima]: successive peaks of one state component, the
//     Lorenz return map when applied to z
//
// # Chaos Detection
//
// A positive largest Lyapunov exponent indicates chaotic dynamics:
//
//	lambda := analysis.LyapunovExponent(dyn, integ, x0, dt, transient, duration, 1e-8)
//	if lambda > 0 {
//	    // System is chaotic
//	}
package analysis
