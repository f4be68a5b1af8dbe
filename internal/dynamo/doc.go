// Package dynamo provides core simulation primitives for dynamical systems.
//
// The package defines the fundamental interfaces and types shared by the
// integrator, the vector field and the simulation driver:
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, u, t))
//   - [Integrator]: fixed-step numerical integrator interface
//   - [ConfigError]: construction-time validation failure
//
// # Example
//
//	dyn := physics.NewLorenz()
//	integ := integrators.NewRK4()
//	x := dyn.DefaultState()
//	x = integ.Step(dyn, x, nil, 0, 0.05)
//
// # Thread Safety
//
// Integrators may keep scratch buffers and are NOT thread-safe. Use one
// integrator per goroutine.
package dynamo
