package analysis

import (
	"context"
	"fmt"

	"github.com/san-kum/chaoswatch/internal/dynamo"
)

// Sweep describes a scan of one system parameter.
type Sweep struct {
	Param     string
	Min, Max  float64
	Steps     int
	Dt        float64
	Transient float64
	Duration  float64
	InitState dynamo.State
}

// SweepResult holds the measurements for one parameter value.
type SweepResult struct {
	ParamValue float64
	Lyapunov   float64
	Peaks      int
}

// RunSweep estimates the largest Lyapunov exponent across the parameter
// range. dyn must implement dynamo.Configurable; its original parameter is
// restored before returning.
func RunSweep(ctx context.Context, sweep Sweep, dyn dynamo.System, integ dynamo.Integrator) ([]SweepResult, error) {
	tunable, ok := dyn.(dynamo.Configurable)
	if !ok {
		return nil, fmt.Errorf("analysis: system is not tunable: %w", dynamo.ErrInvalidConfig)
	}
	original, ok := tunable.GetParams()[sweep.Param]
	if !ok {
		return nil, fmt.Errorf("analysis: unknown parameter %q: %w", sweep.Param, dynamo.ErrParameterBounds)
	}
	if sweep.Steps < 1 {
		return nil, dynamo.NewConfigError("steps", sweep.Steps, "must be positive")
	}
	defer tunable.SetParam(sweep.Param, original)

	paramStep := 0.0
	if sweep.Steps > 1 {
		paramStep = (sweep.Max - sweep.Min) / float64(sweep.Steps-1)
	}

	results := make([]SweepResult, 0, sweep.Steps)
	for i := 0; i < sweep.Steps; i++ {
		if err := ctx.Err(); err != nil {
			return results, fmt.Errorf("%w: %w", dynamo.ErrContextCanceled, err)
		}

		paramVal := sweep.Min + float64(i)*paramStep
		if err := tunable.SetParam(sweep.Param, paramVal); err != nil {
			return results, err
		}

		results = append(results, SweepResult{
			ParamValue: paramVal,
			Lyapunov:   LyapunovExponent(dyn, integ, sweep.InitState, sweep.Dt, sweep.Transient, sweep.Duration, 1e-8),
			Peaks:      len(LocalMaxima(dyn, integ, sweep.InitState, len(sweep.InitState)-1, sweep.Dt, sweep.Transient, sweep.Duration)),
		})
	}
	return results, nil
}
