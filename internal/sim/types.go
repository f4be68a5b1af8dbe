package sim

import (
	"math"

	"github.com/san-kum/chaoswatch/internal/dynamo"
	"github.com/san-kum/chaoswatch/internal/physics"
	"github.com/san-kum/chaoswatch/internal/raster"
	"github.com/san-kum/chaoswatch/internal/trajectory"
	"github.com/san-kum/chaoswatch/internal/viewport"
)

const (
	DefaultDt            = 0.05
	DefaultStepsPerFrame = 50
)

// Config fixes everything a Simulator needs at construction.
type Config struct {
	Dt            float64
	StepsPerFrame int
	Capacity      int
	RotationStep  float64
	InitState     dynamo.State
	Sigma         float64
	Rho           float64
	Beta          float64
	Viewport      viewport.Projector
}

func DefaultConfig() Config {
	return Config{
		Dt:            DefaultDt,
		StepsPerFrame: DefaultStepsPerFrame,
		Capacity:      trajectory.DefaultCapacity,
		RotationStep:  viewport.DefaultRotationStep,
		InitState:     dynamo.State{1.0, 1.0, 1.0},
		Sigma:         physics.LorenzSigma,
		Rho:           physics.LorenzRho,
		Beta:          physics.LorenzBeta,
		Viewport:      viewport.Default(),
	}
}

// Validate checks every construction precondition.
func (c Config) Validate() error {
	if c.Dt <= 0 || !finite(c.Dt) {
		return dynamo.NewConfigError("dt", c.Dt, "must be positive and finite")
	}
	if c.StepsPerFrame <= 0 {
		return dynamo.NewConfigError("steps_per_frame", c.StepsPerFrame, "must be positive")
	}
	if c.Capacity <= 0 {
		return dynamo.NewConfigError("max_points", c.Capacity, "must be positive")
	}
	if !finite(c.RotationStep) {
		return dynamo.NewConfigError("rotation_step", c.RotationStep, "must be finite")
	}
	if len(c.InitState) != 3 {
		return dynamo.NewConfigError("init_state", c.InitState, "must have three components")
	}
	if !c.InitState.IsValid() {
		return &dynamo.ConfigError{Field: "init_state", Value: c.InitState, Reason: "must be finite", Wrapped: dynamo.ErrInvalidState}
	}
	for name, v := range map[string]float64{"sigma": c.Sigma, "rho": c.Rho, "beta": c.Beta} {
		if !finite(v) {
			return dynamo.NewConfigError(name, v, "must be finite")
		}
	}
	return c.Viewport.Validate()
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// FrameSink consumes rendered frames in render order.
type FrameSink interface {
	AddFrame(fb *raster.FrameBuffer) error
}

// Observer is notified once per frame, after the integration batch and the
// rotation advance, with the current position. x is only valid for the
// duration of the call.
type Observer interface {
	OnFrame(frame int, x dynamo.State, angle float64)
}

// Snapshot is a self-contained copy of a Simulator's evolving state.
type Snapshot struct {
	State  dynamo.State
	Time   float64
	Points []trajectory.Point
	Angle  float64
	Turns  int
	Frame  int
}
