package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/chaoswatch/internal/dynamo"
	"github.com/san-kum/chaoswatch/internal/integrators"
	"github.com/san-kum/chaoswatch/internal/physics"
	"github.com/san-kum/chaoswatch/internal/raster"
	"github.com/san-kum/chaoswatch/internal/trajectory"
	"github.com/san-kum/chaoswatch/internal/viewport"
)

// Simulator owns the Lorenz state, the trajectory ring and the camera angle,
// and turns them into one frame per RenderFrame call.
type Simulator struct {
	cfg        Config
	dyn        dynamo.System
	integrator dynamo.Integrator
	state      dynamo.State
	t          float64
	ring       *trajectory.Ring
	rotation   viewport.Rotation
	projector  viewport.Projector
	raster     *raster.Rasterizer
	frame      int
	observers  []Observer
}

// frameJob is what projection and rasterization need from one frame.
type frameJob struct {
	points []trajectory.Point
	angle  float64
}

func New(cfg Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ring, err := trajectory.New(cfg.Capacity)
	if err != nil {
		return nil, err
	}
	r, err := raster.New(cfg.Viewport.Size, cfg.Viewport.Size)
	if err != nil {
		return nil, err
	}

	return &Simulator{
		cfg:        cfg,
		dyn:        physics.NewLorenzWith(cfg.Sigma, cfg.Rho, cfg.Beta),
		integrator: integrators.NewRK4(),
		state:      cfg.InitState.Clone(),
		ring:       ring,
		rotation:   viewport.NewRotation(cfg.RotationStep),
		projector:  cfg.Viewport,
		raster:     r,
		observers:  make([]Observer, 0),
	}, nil
}

func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Config() Config { return s.cfg }

// Step performs one integration step and records the new position.
func (s *Simulator) Step() {
	s.state = s.integrator.Step(s.dyn, s.state, nil, s.t, s.cfg.Dt)
	s.t += s.cfg.Dt
	s.ring.Push(trajectory.FromState(s.state))
}

// advance runs one frame's integration batch and rotation and returns the
// inputs for projection. The points are a copy, so the job stays valid
// after later frames evict them.
func (s *Simulator) advance() frameJob {
	for i := 0; i < s.cfg.StepsPerFrame; i++ {
		s.Step()
	}
	s.rotation.Advance()
	s.frame++

	for _, o := range s.observers {
		o.OnFrame(s.frame, s.state, s.rotation.Angle)
	}
	return frameJob{points: s.ring.Points(), angle: s.rotation.Angle}
}

func (s *Simulator) render(job frameJob) *raster.FrameBuffer {
	return s.raster.Paint(s.projector.Project(job.points, job.angle))
}

// RenderFrame advances the simulation by one frame and returns the freshly
// painted frame buffer. The caller owns the returned buffer.
func (s *Simulator) RenderFrame() *raster.FrameBuffer {
	return s.render(s.advance())
}

// Run renders frames in order into sink, checking ctx between frames.
func (s *Simulator) Run(ctx context.Context, frames int, sink FrameSink) error {
	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w at frame %d: %w", dynamo.ErrContextCanceled, s.frame, ctx.Err())
		default:
		}

		if err := sink.AddFrame(s.RenderFrame()); err != nil {
			return fmt.Errorf("frame %d: %w", s.frame, err)
		}
	}
	return nil
}

// Transform returns the viewport fit the next render would use for the
// current trajectory and angle.
func (s *Simulator) Transform() viewport.Transform {
	_, t := s.projector.ProjectWithTransform(s.ring.Points(), s.rotation.Angle)
	return t
}

func (s *Simulator) State() dynamo.State           { return s.state.Clone() }
func (s *Simulator) Time() float64                 { return s.t }
func (s *Simulator) Angle() float64                { return s.rotation.Angle }
func (s *Simulator) Turns() int                    { return s.rotation.Turns }
func (s *Simulator) Frame() int                    { return s.frame }
func (s *Simulator) Points() []trajectory.Point    { return s.ring.Points() }
func (s *Simulator) Projector() viewport.Projector { return s.projector }

// Snapshot copies the evolving state so that Restore can fork it.
func (s *Simulator) Snapshot() Snapshot {
	return Snapshot{
		State:  s.state.Clone(),
		Time:   s.t,
		Points: s.ring.Points(),
		Angle:  s.rotation.Angle,
		Turns:  s.rotation.Turns,
		Frame:  s.frame,
	}
}

// Restore builds an independent Simulator that continues from snap exactly
// as the original would.
func Restore(cfg Config, snap Snapshot) (*Simulator, error) {
	if len(snap.State) > 0 {
		cfg.InitState = snap.State
	}
	s, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if len(snap.Points) > s.ring.Cap() {
		return nil, dynamo.NewConfigError("snapshot.points", len(snap.Points), "exceeds capacity")
	}

	for _, p := range snap.Points {
		s.ring.Push(p)
	}
	s.t = snap.Time
	s.rotation.Angle = snap.Angle
	s.rotation.Turns = snap.Turns
	s.frame = snap.Frame
	return s, nil
}
