package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/galaxy/internal/analysis"
	"github.com/san-kum/galaxy/internal/config"
	"github.com/san-kum/galaxy/internal/dynamo"
	"github.com/san-kum/galaxy/internal/export"
	"github.com/san-kum/galaxy/internal/gui"
	"github.com/san-kum/galaxy/internal/metrics"
	"github.com/san-kum/galaxy/internal/physics"
	"github.com/san-kum/galaxy/internal/sim"
	"github.com/san-kum/galaxy/internal/viz"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

var (
	configFile string
	preset     string
	particles  int
	gravity    float64
	seed       int64
	frameRate  int
	paused     bool
	theme      string
	logLevel   string
	logFile    string
	// headless run
	frames   int
	plot     bool
	realtime bool
	svgPath  string
	spectrum bool
	// bench
	benchSteps int
	benchMax   int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "galaxy",
		Short: "2d gravitational n-body simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			switch cfg.Renderer {
			case "gui":
				return runGUI(cfg)
			case "headless":
				return runHeadless(cfg)
			}
			return runLive(cfg)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file (yaml)")
	pf.StringVar(&preset, "preset", "", "preset name (see 'galaxy presets')")
	pf.IntVarP(&particles, "particles", "n", config.DefaultParticles, "particle count")
	pf.Float64VarP(&gravity, "gravity", "g", config.DefaultGravity, "gravitational constant")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 = time)")
	pf.IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate cap")
	pf.BoolVar(&paused, "paused", false, "start with simulation paused")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "tui theme")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.StringVar(&logFile, "log-file", "galaxy.log", "log file used while the tui owns the terminal")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return runLive(cfg)
		},
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run in a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return runGUI(cfg)
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and print metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return runHeadless(cfg)
		},
	}
	runCmd.Flags().IntVar(&frames, "frames", 600, "number of frames")
	runCmd.Flags().BoolVar(&plot, "plot", false, "plot live count and kinetic energy")
	runCmd.Flags().BoolVar(&realtime, "realtime", false, "cap the frame rate at --fps")
	runCmd.Flags().StringVar(&svgPath, "svg", "", "write the final frame as svg")
	runCmd.Flags().BoolVar(&spectrum, "spectrum", false, "report the kinetic energy power spectrum")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "measure steps per second for each particle count",
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&benchSteps, "steps", 10, "steps per count")
	benchCmd.Flags().IntVar(&benchMax, "max", 2000, "largest particle count to measure")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tPARTICLES\tGRAVITY\tFPS")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%g\t%d\n", name, p.Particles, p.Gravity, p.FPS)
			}
			w.Flush()
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); err == nil {
				return fmt.Errorf("%s already exists", args[0])
			}
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(liveCmd, guiCmd, runCmd, benchCmd, presetsCmd, configCmd)
	return rootCmd
}

// resolveConfig layers defaults, preset, config file and explicitly set flags,
// later layers winning.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("particles") {
		cfg.Particles = particles
	}
	if flags.Changed("gravity") {
		cfg.Gravity = gravity
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Changed("paused") {
		cfg.Simulate = !paused
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	return cfg, cfg.Validate()
}

func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "galaxy",
		Level:           lvl,
	}), nil
}

func newSession(cfg *config.Config, target sim.Target, logger *log.Logger) (*sim.Session, error) {
	engine := physics.New(physics.NewLogObserver(logger))
	session, err := sim.NewSession(sim.Settings{
		Particles: cfg.Particles,
		Gravity:   cfg.Gravity,
		Seed:      cfg.Seed,
		Paused:    !cfg.Simulate,
	}, engine, target, logger)
	if err != nil {
		return nil, err
	}
	for _, m := range metrics.Defaults() {
		session.AddMetric(m)
	}
	session.OnTeardown(func(old *dynamo.System) {
		snap := metrics.Take(old)
		logger.Info("teardown", "live", snap.Live, "total", snap.Total, "max_mass", snap.MaxMass)
	})
	return session, nil
}

func runLive(cfg *config.Config) error {
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	logger, err := newLogger(f, cfg.LogLevel)
	if err != nil {
		return err
	}

	canvas := viz.NewCanvas(80, 40)
	session, err := newSession(cfg, canvas, logger)
	if err != nil {
		return err
	}

	m := viz.NewModel(session, canvas, cfg.FPS, cfg.Theme, logger).
		WithSnapshot(func(frame uint64, c *viz.Canvas) (string, error) {
			path := fmt.Sprintf("galaxy-%06d.svg", frame)
			return path, os.WriteFile(path, []byte(export.CanvasSVG(c, 4)), 0644)
		})
	_, err = viz.NewProgram(m).Run()
	return err
}

func runGUI(cfg *config.Config) error {
	logger, err := newLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	target := gui.NewTarget()
	session, err := newSession(cfg, target, logger)
	if err != nil {
		return err
	}
	gui.Run(session, target, cfg.FPS, logger)
	return nil
}

func runHeadless(cfg *config.Config) error {
	logger, err := newLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	session, err := newSession(cfg, sim.Discard{}, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var limiter *sim.Limiter
	if realtime {
		limiter = sim.NewLimiter(cfg.FPS)
	}

	n := frames
	if n <= 0 {
		n = 600
	}
	ke := findMetric(session, metrics.NewKineticEnergy().Name())
	if ke == nil {
		return fmt.Errorf("session has no kinetic energy metric")
	}
	live := make([]float64, 0, n)
	energy := make([]float64, 0, n)

	start := time.Now()
	for i := 0; i < n; i++ {
		if err := session.Run(ctx, limiter, 1); err != nil {
			return err
		}
		live = append(live, float64(session.System().Live()))
		energy = append(energy, ke.Value())
	}
	elapsed := time.Since(start)

	fmt.Printf("%d particles, %d frames in %v\n\n", cfg.Particles, session.Frames(), elapsed.Round(time.Millisecond))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, m := range session.Metrics() {
		fmt.Fprintf(w, "%s\t%.6g\n", m.Name(), m.Value())
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if spectrum {
		if err := printSpectrum(energy); err != nil {
			return err
		}
	}

	if svgPath != "" {
		if err := export.WriteSystem(svgPath, session.System(), 800); err != nil {
			return err
		}
		fmt.Printf("\nwrote %s\n", svgPath)
	}

	if plot && len(live) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(live,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("live particles"),
		))
		fmt.Println()
		fmt.Println(asciigraph.Plot(energy,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("kinetic energy"),
		))
	}
	return nil
}

func findMetric(session *sim.Session, name string) metrics.Metric {
	for _, m := range session.Metrics() {
		if m.Name() == name {
			return m
		}
	}
	return nil
}

func printSpectrum(series []float64) error {
	ps := analysis.PowerSpectrum(series)
	if len(ps) < 8 {
		return fmt.Errorf("not enough frames for a spectrum: %d", len(series))
	}

	fmt.Println()
	fmt.Println(asciigraph.Plot(ps[1:len(ps)/2],
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum (kinetic energy)"),
	))

	period, power, ok := analysis.DominantPeriod(series)
	if !ok {
		fmt.Println("\nno dominant oscillation")
		return nil
	}
	fmt.Printf("\ndominant period: %.1f frames (magnitude %.3g)\n", period, power)
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	benchSeed := uint64(42)
	if cfg.Seed != 0 {
		benchSeed = uint64(cfg.Seed)
	}
	steps := benchSteps
	if steps <= 0 {
		steps = 1
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "benchmarking gravity sweep, G=%g, %d steps per count\n\n", cfg.Gravity, steps)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PARTICLES\tSTEPS\tTIME\tSTEPS/SEC\tLIVE")

	engine := physics.New(nil)
	for _, n := range config.AllowedCounts {
		if benchMax > 0 && n > benchMax {
			break
		}
		sys := dynamo.Disk(n, cfg.Gravity, rand.New(rand.NewSource(benchSeed)), nil)

		start := time.Now()
		for i := 0; i < steps; i++ {
			engine.Step(sys)
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "%d\t%d\t%v\t%.1f\t%d\n",
			n, steps, elapsed.Round(time.Microsecond), float64(steps)/elapsed.Seconds(), sys.Live())
	}
	return w.Flush()
}
