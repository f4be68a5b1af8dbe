package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/chaoswatch/internal/dynamo"
	"github.com/san-kum/chaoswatch/internal/overlay"
	"github.com/san-kum/chaoswatch/internal/physics"
	"github.com/san-kum/chaoswatch/internal/sim"
	"github.com/san-kum/chaoswatch/internal/trajectory"
	"github.com/san-kum/chaoswatch/internal/viewport"
)

const (
	DefaultFrames       = 30
	DefaultFrameDelayMs = 100
)

type Config struct {
	Dt            float64         `yaml:"dt"`
	StepsPerFrame int             `yaml:"steps_per_frame"`
	MaxPoints     int             `yaml:"max_points"`
	RotationStep  float64         `yaml:"rotation_step"`
	Frames        int             `yaml:"frames"`
	FrameDelayMs  int             `yaml:"frame_delay_ms"`
	InitState     InitStateConfig `yaml:"init_state"`
	Lorenz        LorenzConfig    `yaml:"lorenz"`
	Viewport      ViewportConfig  `yaml:"viewport"`
	Overlay       OverlayConfig   `yaml:"overlay"`
}

type InitStateConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type LorenzConfig struct {
	Sigma float64 `yaml:"sigma"`
	Rho   float64 `yaml:"rho"`
	Beta  float64 `yaml:"beta"`
}

type ViewportConfig struct {
	Size    int     `yaml:"size"`
	Margin  float64 `yaml:"margin"`
	Extent  float64 `yaml:"extent"`
	Epsilon float64 `yaml:"epsilon"`
}

type OverlayConfig struct {
	Enabled bool    `yaml:"enabled"`
	Time    string  `yaml:"time"`
	Date    string  `yaml:"date"`
	Steps   int     `yaml:"steps"`
	Battery float64 `yaml:"battery"`
}

func DefaultConfig() *Config {
	face := overlay.Default()
	return &Config{
		Dt:            sim.DefaultDt,
		StepsPerFrame: sim.DefaultStepsPerFrame,
		MaxPoints:     trajectory.DefaultCapacity,
		RotationStep:  viewport.DefaultRotationStep,
		Frames:        DefaultFrames,
		FrameDelayMs:  DefaultFrameDelayMs,
		InitState:     InitStateConfig{X: 1, Y: 1, Z: 1},
		Lorenz: LorenzConfig{
			Sigma: physics.LorenzSigma,
			Rho:   physics.LorenzRho,
			Beta:  physics.LorenzBeta,
		},
		Viewport: ViewportConfig{
			Size:    viewport.DefaultSize,
			Margin:  viewport.DefaultMargin,
			Extent:  viewport.DefaultExtent,
			Epsilon: viewport.DefaultEpsilon,
		},
		Overlay: OverlayConfig{
			Enabled: true,
			Time:    face.Time,
			Date:    face.Date,
			Steps:   face.Steps,
			Battery: face.Battery,
		},
	}
}

// Load reads a YAML file over the defaults, so a file only needs the keys it
// changes.
func Load(path string) (*Config, error) {
	return LoadFrom(path, DefaultConfig())
}

// LoadFrom reads a YAML file over base, which is modified and returned.
func LoadFrom(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, base); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return base, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SimConfig maps the file layout onto the simulator's construction
// parameters. The result is validated by sim.New.
func (c *Config) SimConfig() sim.Config {
	return sim.Config{
		Dt:            c.Dt,
		StepsPerFrame: c.StepsPerFrame,
		Capacity:      c.MaxPoints,
		RotationStep:  c.RotationStep,
		InitState:     dynamo.State{c.InitState.X, c.InitState.Y, c.InitState.Z},
		Sigma:         c.Lorenz.Sigma,
		Rho:           c.Lorenz.Rho,
		Beta:          c.Lorenz.Beta,
		Viewport: viewport.Projector{
			Size:    c.Viewport.Size,
			Margin:  c.Viewport.Margin,
			Extent:  c.Viewport.Extent,
			Epsilon: c.Viewport.Epsilon,
		},
	}
}

func (c *Config) Face() overlay.Face {
	f := overlay.Default()
	f.Time = c.Overlay.Time
	f.Date = c.Overlay.Date
	f.Steps = c.Overlay.Steps
	f.Battery = c.Overlay.Battery
	return f
}

// Validate reports the first invalid field, including those only the CLI
// uses.
func (c *Config) Validate() error {
	if c.Frames <= 0 {
		return dynamo.NewConfigError("frames", c.Frames, "must be positive")
	}
	if c.FrameDelayMs <= 0 {
		return dynamo.NewConfigError("frame_delay_ms", c.FrameDelayMs, "must be positive")
	}
	return c.SimConfig().Validate()
}
