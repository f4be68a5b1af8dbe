package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/chaoswatch/internal/dynamo"
	"github.com/san-kum/chaoswatch/internal/integrators"
	"github.com/san-kum/chaoswatch/internal/physics"
)

func testSweep() Sweep {
	return Sweep{
		Param:     "rho",
		Min:       0.5,
		Max:       28,
		Steps:     2,
		Dt:        0.01,
		Transient: 5,
		Duration:  40,
		InitState: dynamo.State{1, 1, 1},
	}
}

func TestRunSweepCrossesIntoChaos(t *testing.T) {
	lorenz := physics.NewLorenz()
	results, err := RunSweep(context.Background(), testSweep(), lorenz, integrators.NewRK4())
	if err != nil {
		t.Fatalf("RunSweep: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results", len(results))
	}
	if results[0].ParamValue != 0.5 || results[1].ParamValue != 28 {
		t.Errorf("param values %v, %v", results[0].ParamValue, results[1].ParamValue)
	}
	if results[0].Lyapunov >= 0 {
		t.Errorf("rho=0.5: lambda = %f, want negative", results[0].Lyapunov)
	}
	if results[1].Lyapunov <= 0.3 {
		t.Errorf("rho=28: lambda = %f, want clearly positive", results[1].Lyapunov)
	}
	if results[1].Peaks == 0 {
		t.Error("no z maxima in the chaotic regime")
	}
	if got := lorenz.GetParams()["rho"]; got != physics.LorenzRho {
		t.Errorf("rho not restored: %f", got)
	}
}

func TestRunSweepErrors(t *testing.T) {
	integ := integrators.NewRK4()

	bad := testSweep()
	bad.Param = "gamma"
	if _, err := RunSweep(context.Background(), bad, physics.NewLorenz(), integ); !errors.Is(err, dynamo.ErrParameterBounds) {
		t.Errorf("unknown param: %v", err)
	}

	bad = testSweep()
	bad.Steps = 0
	if _, err := RunSweep(context.Background(), bad, physics.NewLorenz(), integ); !errors.Is(err, dynamo.ErrInvalidConfig) {
		t.Errorf("zero steps: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := RunSweep(ctx, testSweep(), physics.NewLorenz(), integ); !errors.Is(err, dynamo.ErrContextCanceled) {
		t.Errorf("canceled: %v", err)
	}
}
