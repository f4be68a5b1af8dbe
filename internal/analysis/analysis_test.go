package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/chaoswatch/internal/dynamo"
	"github.com/san-kum/chaoswatch/internal/integrators"
	"github.com/san-kum/chaoswatch/internal/physics"
)

func TestLyapunovLorenzChaotic(t *testing.T) {
	lambda := LyapunovExponent(physics.NewLorenz(), integrators.NewRK4(), dynamo.State{1, 1, 1}, 0.01, 10, 100, 1e-8)

	// The accepted value for the classic parameters is about 0.906.
	if lambda < 0.6 || lambda > 1.2 {
		t.Errorf("lambda = %f, want roughly 0.9", lambda)
	}
}

func TestLyapunovStableRegime(t *testing.T) {
	// Below rho = 1 the origin is a global attractor.
	lambda := LyapunovExponent(physics.NewLorenzWith(10, 0.5, 8.0/3), integrators.NewRK4(), dynamo.State{1, 1, 1}, 0.01, 5, 50, 1e-8)
	if lambda >= 0 {
		t.Errorf("lambda = %f, want negative", lambda)
	}
}

func TestLyapunovDegenerateInput(t *testing.T) {
	if got := LyapunovExponent(physics.NewLorenz(), integrators.NewRK4(), nil, 0.01, 0, 1, 1e-8); got != 0 {
		t.Errorf("empty state: got %f", got)
	}
	if got := LyapunovExponent(physics.NewLorenz(), integrators.NewRK4(), dynamo.State{1, 1, 1}, 0, 0, 1, 1e-8); got != 0 {
		t.Errorf("zero dt: got %f", got)
	}
}

func TestLocalMaximaLorenzZ(t *testing.T) {
	peaks := LocalMaxima(physics.NewLorenz(), integrators.NewRK4(), dynamo.State{1, 1, 1}, 2, 0.01, 10, 50)

	if len(peaks) < 20 {
		t.Fatalf("only %d peaks in 50 time units", len(peaks))
	}
	for i, p := range peaks {
		if p < 20 || p > 55 || math.IsNaN(p) {
			t.Errorf("peak %d = %f outside the attractor's z range", i, p)
		}
	}
}

func TestLocalMaximaBadIndex(t *testing.T) {
	if LocalMaxima(physics.NewLorenz(), integrators.NewRK4(), dynamo.State{1, 1, 1}, 3, 0.01, 0, 1) != nil {
		t.Error("expected nil for out-of-range index")
	}
}

func TestVertex(t *testing.T) {
	// Samples of -(t-0.25)^2 at t = -1, 0, 1.
	f := func(t float64) float64 { return -(t - 0.25) * (t - 0.25) }
	if got := vertex(f(-1), f(0), f(1)); math.Abs(got) > 1e-12 {
		t.Errorf("vertex = %g, want 0", got)
	}
	if vertex(2, 2, 2) != 2 {
		t.Error("flat samples should return the middle value")
	}
}
