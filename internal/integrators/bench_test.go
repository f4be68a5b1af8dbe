package integrators

import (
	"testing"

	"github.com/san-kum/chaoswatch/internal/physics"
)

func BenchmarkRK4Lorenz(b *testing.B) {
	integrator := NewRK4()
	dyn := physics.NewLorenz()
	x := dyn.DefaultState()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = integrator.Step(dyn, x, nil, 0, 0.05)
	}
}

func BenchmarkRK4LorenzFrame(b *testing.B) {
	integrator := NewRK4()
	dyn := physics.NewLorenz()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x := dyn.DefaultState()
		for j := 0; j < 50; j++ {
			x = integrator.Step(dyn, x, nil, 0, 0.05)
		}
	}
}
