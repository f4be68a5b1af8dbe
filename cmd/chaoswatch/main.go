package main

import (
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/chaoswatch/internal/analysis"
	"github.com/san-kum/chaoswatch/internal/anim"
	"github.com/san-kum/chaoswatch/internal/config"
	"github.com/san-kum/chaoswatch/internal/dynamo"
	"github.com/san-kum/chaoswatch/internal/export"
	"github.com/san-kum/chaoswatch/internal/integrators"
	"github.com/san-kum/chaoswatch/internal/overlay"
	"github.com/san-kum/chaoswatch/internal/physics"
	"github.com/san-kum/chaoswatch/internal/preview"
	"github.com/san-kum/chaoswatch/internal/raster"
	"github.com/san-kum/chaoswatch/internal/sim"
	"github.com/san-kum/chaoswatch/internal/storage"
	"github.com/san-kum/chaoswatch/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string

	// Overrides, applied only when set on the command line.
	frames        int
	dt            float64
	stepsPerFrame int
	maxPoints     int
	rotationStep  float64
	frameDelayMs  int
	noOverlay     bool

	gifOut  string
	save    bool
	workers int

	svgOut     string
	svgFrame   int
	svgScale   float64
	trajectory bool

	analyzeDt   float64
	transient   float64
	analyzeTime float64
	sweepParam  string
	sweepFrom   float64
	sweepTo     float64
	sweepSteps  int

	scale      int
	recordPath string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "chaoswatch",
		Short:         "rotating Lorenz attractor watch face",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".chaoswatch", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().IntVar(&frames, "frames", config.DefaultFrames, "number of frames")
	rootCmd.PersistentFlags().Float64Var(&dt, "dt", sim.DefaultDt, "integration timestep")
	rootCmd.PersistentFlags().IntVar(&stepsPerFrame, "steps", sim.DefaultStepsPerFrame, "integration steps per frame")
	rootCmd.PersistentFlags().IntVar(&maxPoints, "points", 300, "trajectory points kept")
	rootCmd.PersistentFlags().Float64Var(&rotationStep, "rotation", 0.2, "rotation per frame (radians)")
	rootCmd.PersistentFlags().IntVar(&frameDelayMs, "delay", config.DefaultFrameDelayMs, "frame delay (ms)")
	rootCmd.PersistentFlags().BoolVar(&noOverlay, "no-overlay", false, "draw the trajectory only")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render frames to an animated gif",
		Args:  cobra.NoArgs,
		RunE:  renderAnimation,
	}
	renderCmd.Flags().StringVarP(&gifOut, "out", "o", "chaoswatch.gif", "output gif")
	renderCmd.Flags().BoolVar(&save, "save", false, "store the run in the data directory")
	renderCmd.Flags().IntVar(&workers, "workers", 1, "paint frames on this many goroutines")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "play the animation in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&recordPath, "record", "chaoswatch-live.gif", "gif path for G recordings")

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "play the animation in a desktop window (ebiten builds)",
		Args:  cobra.NoArgs,
		RunE:  runPreview,
	}
	previewCmd.Flags().IntVar(&scale, "scale", 3, "window scale")

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "write one frame as svg",
		Args:  cobra.NoArgs,
		RunE:  exportSVG,
	}
	svgCmd.Flags().StringVarP(&svgOut, "out", "o", "frame.svg", "output svg")
	svgCmd.Flags().IntVar(&svgFrame, "frame", 1, "frame number to export")
	svgCmd.Flags().Float64Var(&svgScale, "scale", 2, "pixel scale")
	svgCmd.Flags().BoolVar(&trajectory, "trajectory", false, "export the projected polyline instead of pixels")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "estimate the largest lyapunov exponent",
		Args:  cobra.NoArgs,
		RunE:  analyzeSystem,
	}
	analyzeCmd.Flags().Float64Var(&analyzeDt, "step", 0.01, "analysis timestep")
	analyzeCmd.Flags().Float64Var(&transient, "transient", 10, "settling time before measuring")
	analyzeCmd.Flags().Float64Var(&analyzeTime, "time", 100, "measurement time")
	analyzeCmd.Flags().StringVar(&sweepParam, "sweep", "", "sweep a parameter (sigma, rho, beta)")
	analyzeCmd.Flags().Float64Var(&sweepFrom, "from", 0.5, "sweep start")
	analyzeCmd.Flags().Float64Var(&sweepTo, "to", 30, "sweep end")
	analyzeCmd.Flags().IntVar(&sweepSteps, "n", 12, "sweep values")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(renderCmd, liveCmd, previewCmd, svgCmd, listCmd, plotCmd, analyzeCmd, presetsCmd)
	return rootCmd
}

// loadConfig resolves defaults, then the preset, then the config file, then
// explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		var err error
		cfg, err = config.LoadFrom(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("frames") {
		cfg.Frames = frames
	}
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("steps") {
		cfg.StepsPerFrame = stepsPerFrame
	}
	if flags.Changed("points") {
		cfg.MaxPoints = maxPoints
	}
	if flags.Changed("rotation") {
		cfg.RotationStep = rotationStep
	}
	if flags.Changed("delay") {
		cfg.FrameDelayMs = frameDelayMs
	}
	if noOverlay {
		cfg.Overlay.Enabled = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func faceFor(cfg *config.Config) *overlay.Face {
	if !cfg.Overlay.Enabled {
		return nil
	}
	f := cfg.Face()
	return &f
}

func frameDelay(cfg *config.Config) time.Duration {
	return time.Duration(cfg.FrameDelayMs) * time.Millisecond
}

func renderAnimation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	s, err := sim.New(cfg.SimConfig())
	if err != nil {
		return err
	}
	rec := &storage.Recorder{}
	s.AddObserver(rec)

	assembler := anim.New(frameDelay(cfg))
	var sink sim.FrameSink = assembler
	if face := faceFor(cfg); face != nil {
		sink = &overlay.Compositor{Face: *face, Next: assembler}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	start := time.Now()
	if workers > 1 {
		fbs, err := sim.RenderParallel(ctx, s, cfg.Frames, workers)
		if err != nil {
			return err
		}
		for _, fb := range fbs {
			if err := sink.AddFrame(fb); err != nil {
				return err
			}
		}
	} else if err := s.Run(ctx, cfg.Frames, sink); err != nil {
		return err
	}

	if err := assembler.Save(gifOut); err != nil {
		return fmt.Errorf("write %s: %w", gifOut, err)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "rendered %d frames in %s\n", assembler.Len(), time.Since(start).Round(time.Millisecond))
	fmt.Fprintf(out, "wrote %s\n", gifOut)

	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(preset, cfg, rec, assembler)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "saved run: %s\n", runID)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	m, err := viz.NewModel(cfg.SimConfig(), faceFor(cfg), frameDelay(cfg), recordPath)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return preview.Run(cfg.SimConfig(), faceFor(cfg), scale, cfg.FrameDelayMs)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if svgFrame < 1 {
		return dynamo.NewConfigError("frame", svgFrame, "must be at least 1")
	}

	s, err := sim.New(cfg.SimConfig())
	if err != nil {
		return err
	}
	var fb *raster.FrameBuffer
	for i := 0; i < svgFrame; i++ {
		fb = s.RenderFrame()
	}

	var doc string
	if trajectory {
		px := s.Projector().Project(s.Points(), s.Angle())
		doc = export.TrajectoryToSVG(px, cfg.Viewport.Size, "#000000")
	} else {
		if face := faceFor(cfg); face != nil {
			face.Draw(fb)
		}
		doc = export.FrameBufferToSVG(fb, svgScale)
	}

	if err := os.WriteFile(svgOut, []byte(doc), 0644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote frame %d to %s\n", svgFrame, svgOut)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tFRAMES\tSTEPS\tPOINTS\tGIF")

	for _, run := range runs {
		name := run.Preset
		if name == "" {
			name = "-"
		}
		steps, points := 0, 0
		if run.Config != nil {
			steps, points = run.Config.StepsPerFrame, run.Config.MaxPoints
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%t\n",
			run.ID,
			name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			steps,
			points,
			run.HasGIF,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	samples, err := st.LoadStates(runID)
	if err != nil {
		return err
	}
	if len(samples) < 2 {
		return fmt.Errorf("no data to plot")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run: %s\n", meta.ID)
	fmt.Fprintf(out, "frames: %d\n\n", len(samples))

	series := []struct {
		caption string
		value   func(storage.Sample) float64
	}{
		{"x vs frame", func(s storage.Sample) float64 { return s.X }},
		{"y vs frame", func(s storage.Sample) float64 { return s.Y }},
		{"z vs frame", func(s storage.Sample) float64 { return s.Z }},
		{"view angle (rad)", func(s storage.Sample) float64 { return s.Angle }},
	}
	for _, ser := range series {
		data := make([]float64, len(samples))
		for i, smp := range samples {
			data[i] = ser.value(smp)
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(ser.caption),
		)
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}
	return nil
}

func analyzeSystem(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	dyn := physics.NewLorenzWith(cfg.Lorenz.Sigma, cfg.Lorenz.Rho, cfg.Lorenz.Beta)
	integ := integrators.NewRK4()
	x0 := cfg.SimConfig().InitState

	if sweepParam != "" {
		return sweepSystem(cmd, dyn, integ, x0)
	}

	lambda := analysis.LyapunovExponent(dyn, integ, x0, analyzeDt, transient, analyzeTime, 1e-8)
	peaks := analysis.LocalMaxima(dyn, integ, x0, 2, analyzeDt, transient, analyzeTime)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "sigma=%.4g rho=%.4g beta=%.4g\n", cfg.Lorenz.Sigma, cfg.Lorenz.Rho, cfg.Lorenz.Beta)
	fmt.Fprintf(out, "largest lyapunov exponent: %.4f\n", lambda)
	if lambda > 0.01 {
		fmt.Fprintln(out, "regime: chaotic")
	} else {
		fmt.Fprintln(out, "regime: regular")
	}

	if len(peaks) > 1 {
		fmt.Fprintf(out, "z maxima: %d\n\n", len(peaks))
		graph := asciigraph.Plot(peaks,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("successive z maxima"),
		)
		fmt.Fprintln(out, graph)
	}
	return nil
}

func sweepSystem(cmd *cobra.Command, dyn *physics.Lorenz, integ dynamo.Integrator, x0 dynamo.State) error {
	sweep := analysis.Sweep{
		Param:     sweepParam,
		Min:       sweepFrom,
		Max:       sweepTo,
		Steps:     sweepSteps,
		Dt:        analyzeDt,
		Transient: transient,
		Duration:  analyzeTime,
		InitState: x0,
	}
	results, err := analysis.RunSweep(cmd.Context(), sweep, dyn, integ)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tLYAPUNOV\tZ MAXIMA\n", sweepParam)
	lambdas := make([]float64, len(results))
	for i, r := range results {
		fmt.Fprintf(w, "%.4f\t%.4f\t%d\n", r.ParamValue, r.Lyapunov, r.Peaks)
		lambdas[i] = r.Lyapunov
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(lambdas) > 1 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, asciigraph.Plot(lambdas,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("lyapunov exponent vs "+sweepParam),
		))
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFRAMES\tSTEPS\tPOINTS\tROTATION")
	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%.4f\n", name, cfg.Frames, cfg.StepsPerFrame, cfg.MaxPoints, cfg.RotationStep)
	}
	return w.Flush()
}
