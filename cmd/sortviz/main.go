package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/driver"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/tui"
	"github.com/san-kum/sortviz/internal/viz"
)

var (
	size        int
	seed        int64
	pattern     string
	intervalMs  int
	theme       string
	configFile  string
	preset      string
	logLevel    string
	logFile     string
	metricsAddr string

	// run
	verbose   bool
	live      bool
	frameRate int
	// trace, snapshot, record
	format    string
	outPath   string
	stepIndex int
	imgWidth  int
	imgHeight int
	gifDelay  int
	gifPath   string
	gifWidth  int
	gifHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "sortviz",
		Short:        "step-by-step sorting algorithm visualizer",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runInteractive,
	}

	pf := rootCmd.PersistentFlags()
	pf.IntVar(&size, "size", config.DefaultSize, "array size (8-50)")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	pf.StringVar(&pattern, "pattern", "random", "input pattern: random, sorted, reversed, nearly_sorted, few_unique")
	pf.IntVar(&intervalMs, "interval", config.DefaultIntervalMs, "step interval in ms (10-500)")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "color theme: "+strings.Join(viz.ThemeNames(), ", "))
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file")
	pf.StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")
	rootCmd.Flags().StringVar(&gifPath, "gif", "sortviz.gif", "file written when GIF recording stops")

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "run an algorithm headless and print a summary",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHeadless,
	}
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print every step")
	runCmd.Flags().BoolVar(&live, "live", false, "render steps in the terminal")
	runCmd.Flags().IntVar(&frameRate, "fps", 0, "max frames per second with --live (0 = every step)")

	traceCmd := &cobra.Command{
		Use:   "trace [algorithm]",
		Short: "export the full step trace of a run",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportTrace,
	}
	traceCmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json, csv")
	traceCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	recordCmd := &cobra.Command{
		Use:   "record [algorithm]",
		Short: "record a run as an animated GIF",
		Args:  cobra.MaximumNArgs(1),
		RunE:  recordGIF,
	}
	recordCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default <algorithm>.gif)")
	recordCmd.Flags().IntVar(&gifWidth, "width", 640, "frame width in pixels")
	recordCmd.Flags().IntVar(&gifHeight, "height", 360, "frame height in pixels")
	recordCmd.Flags().IntVar(&gifDelay, "delay", 0, "frame delay in 1/100 s (default from --interval)")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [algorithm]",
		Short: "render one step of a run as SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  snapshotSVG,
	}
	snapshotCmd.Flags().IntVar(&stepIndex, "step", -1, "step to render (negative counts from the end)")
	snapshotCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	snapshotCmd.Flags().IntVar(&imgWidth, "width", 800, "image width")
	snapshotCmd.Flags().IntVar(&imgHeight, "height", 450, "image height")

	compareCmd := &cobra.Command{
		Use:   "compare [algorithm...]",
		Short: "run algorithms on the same array and compare step counts",
		RunE:  compareAlgorithms,
	}

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list available algorithms",
		Args:  cobra.NoArgs,
		RunE:  listAlgorithms,
	}
	algorithmsCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "describe how each algorithm works")

	presetsCmd := &cobra.Command{
		Use:   "presets [algorithm]",
		Short: "list available presets for an algorithm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for algorithm: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, name := range presets {
				p := config.GetPreset(args[0], name)
				fmt.Printf("  %-8s size=%-3d pattern=%-14s interval=%dms\n", name, p.Size, p.Pattern, p.IntervalMs)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, traceCmd, recordCmd, snapshotCmd, compareCmd, algorithmsCmd, presetsCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// loadConfig merges defaults, preset, config file, the algorithm argument and
// explicitly set flags, in that order.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	alg := cfg.Algorithm
	if len(args) > 0 {
		alg = args[0]
	}

	if preset != "" {
		parsed, err := sorting.ParseAlgorithm(alg)
		if err != nil {
			return nil, err
		}
		p := config.GetPreset(string(parsed), preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(string(parsed)))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if len(args) > 0 {
		cfg.Algorithm = args[0]
	}
	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Size = size
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("pattern") {
		cfg.Pattern = pattern
	}
	if flags.Changed("interval") {
		cfg.IntervalMs = intervalMs
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// setup builds the logger and a driver for the merged configuration. The
// returned cleanup closes the log file, if any.
func setup(cmd *cobra.Command, args []string, logOut io.Writer) (*config.Config, *driver.Driver, *slog.Logger, func(), error) {
	cleanup := func() {}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, nil, cleanup, err
		}
		logOut, cleanup = f, func() { f.Close() }
	}
	logger, err := newLogger(logOut)
	if err != nil {
		return nil, nil, nil, cleanup, err
	}

	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return nil, nil, nil, cleanup, err
	}
	opts, err := cfg.DriverOptions(logger)
	if err != nil {
		return nil, nil, nil, cleanup, err
	}
	drv, err := driver.New(opts)
	if err != nil {
		return nil, nil, nil, cleanup, err
	}
	logger.Debug("configured",
		slog.String("algorithm", cfg.Algorithm),
		slog.Int("size", cfg.Size),
		slog.String("pattern", cfg.Pattern),
		slog.Int64("seed", cfg.Seed),
	)
	return cfg, drv, logger, cleanup, nil
}

func serveMetrics(ctx context.Context, drv *driver.Driver, logger *slog.Logger) {
	if metricsAddr == "" {
		return
	}
	exp := metrics.NewExporter(nil)
	drv.AddObserver(exp)
	go func() {
		if err := exp.Serve(ctx, metricsAddr, logger); err != nil {
			logger.Error("metrics server failed", slog.String("addr", metricsAddr), slog.Any("error", err))
		}
	}()
}

func runInteractive(cmd *cobra.Command, args []string) error {
	// the TUI owns the terminal, so logs go nowhere unless --log-file is set
	cfg, drv, logger, cleanup, err := setup(cmd, args, io.Discard)
	defer cleanup()
	if err != nil {
		return err
	}
	serveMetrics(cmd.Context(), drv, logger)

	m := viz.NewModel(drv, viz.Options{Theme: cfg.Theme, GIFPath: gifPath, Logger: logger})
	return viz.Run(m)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, drv, logger, cleanup, err := setup(cmd, args, os.Stderr)
	defer cleanup()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	serveMetrics(ctx, drv, logger)

	inv := metrics.NewInversions()
	set := metrics.NewSet(metrics.NewSteps(), metrics.NewComparisons(), metrics.NewWrites(), inv)
	drv.AddObserver(set)

	var renderer *tui.LiveRenderer
	if live {
		renderer = tui.NewLiveRenderer(os.Stdout, 16, frameRate)
		drv.AddObserver(renderer)
		renderer.Start()
		defer renderer.Stop()
	}

	input := drv.Array()
	if err := drv.Start(); err != nil {
		return err
	}

	var ticker *time.Ticker
	if live {
		ticker = time.NewTicker(drv.Interval())
		defer ticker.Stop()
	}

	start := time.Now()
	for {
		step, st := drv.Tick()
		if st != driver.StatusStep {
			break
		}
		if verbose && !live {
			fmt.Printf("%5d  %-8s %s\n", step.Seq, step.Kind, step.Description)
		}
		if step.Terminal {
			continue
		}
		if ticker != nil {
			select {
			case <-ctx.Done():
				drv.StopRun()
				return ctx.Err()
			case <-ticker.C:
			}
		} else if ctx.Err() != nil {
			drv.StopRun()
			return ctx.Err()
		}
	}
	elapsed := time.Since(start)

	alg, _ := sorting.ParseAlgorithm(cfg.Algorithm)
	fmt.Printf("\n%s on %d elements (%s)\n", alg.Name(), len(input), cfg.Pattern)
	fmt.Printf("input:  %v\n", input)
	if last, ok := drv.Last(); ok {
		fmt.Printf("output: %v\n\n", last.Values)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	vals := set.Values()
	for _, name := range set.Names() {
		fmt.Fprintf(w, "%s\t%.0f\n", name, vals[name])
	}
	fmt.Fprintf(w, "elapsed\t%s\n", elapsed.Round(time.Microsecond))
	if err := w.Flush(); err != nil {
		return err
	}

	if hist := inv.History(); len(hist) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(hist,
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Caption("inversions per step"),
		))
	}
	return nil
}

// traceRun runs the configured algorithm to completion through the driver
// and returns the input and every step.
func traceRun(cmd *cobra.Command, args []string) (*config.Config, []int, []sorting.Step, error) {
	cfg, drv, _, cleanup, err := setup(cmd, args, os.Stderr)
	defer cleanup()
	if err != nil {
		return nil, nil, nil, err
	}

	input := drv.Array()
	if err := drv.Start(); err != nil {
		return nil, nil, nil, err
	}
	var steps []sorting.Step
	for {
		step, st := drv.Tick()
		if st != driver.StatusStep {
			break
		}
		steps = append(steps, step)
	}
	return cfg, input, steps, nil
}

func exportTrace(cmd *cobra.Command, args []string) error {
	f, err := export.ParseFormat(format)
	if err != nil {
		return err
	}
	cfg, input, steps, err := traceRun(cmd, args)
	if err != nil {
		return err
	}
	alg, _ := sorting.ParseAlgorithm(cfg.Algorithm)
	if err := export.Write(outPath, f, export.NewTrace(alg, input, steps)); err != nil {
		return err
	}
	if outPath != "" {
		fmt.Fprintf(os.Stderr, "wrote %d steps to %s\n", len(steps), outPath)
	}
	return nil
}

func recordGIF(cmd *cobra.Command, args []string) error {
	cfg, drv, _, cleanup, err := setup(cmd, args, os.Stderr)
	defer cleanup()
	if err != nil {
		return err
	}

	delay := gifDelay
	if delay <= 0 {
		delay = int(cfg.Interval() / (10 * time.Millisecond))
	}
	rec := export.NewRecorder(gifWidth, gifHeight, delay, viz.GetTheme(cfg.Theme).Palette())
	drv.AddObserver(rec)

	if err := drv.Start(); err != nil {
		return err
	}
	for _, st := drv.Tick(); st == driver.StatusStep; _, st = drv.Tick() {
	}

	path := outPath
	if path == "" {
		alg, _ := sorting.ParseAlgorithm(cfg.Algorithm)
		path = string(alg) + ".gif"
	}
	if err := rec.Save(path); err != nil {
		return err
	}
	fmt.Printf("saved %d frames to %s\n", rec.Frames(), path)
	return nil
}

func snapshotSVG(cmd *cobra.Command, args []string) error {
	cfg, _, steps, err := traceRun(cmd, args)
	if err != nil {
		return err
	}

	idx := stepIndex
	if idx < 0 {
		idx += len(steps)
	}
	if idx < 0 || idx >= len(steps) {
		return fmt.Errorf("step %d out of range: run has %d steps", stepIndex, len(steps))
	}

	alg, _ := sorting.ParseAlgorithm(cfg.Algorithm)
	svg := export.StepToSVG(alg, steps[idx], imgWidth, imgHeight, viz.GetTheme(cfg.Theme).Palette())
	if outPath == "" {
		fmt.Println(svg)
		return nil
	}
	return os.WriteFile(outPath, []byte(svg), 0644)
}

func compareAlgorithms(cmd *cobra.Command, args []string) error {
	algs := sorting.Algorithms()
	if len(args) > 0 {
		algs = nil
		for _, a := range args {
			parsed, err := sorting.ParseAlgorithm(a)
			if err != nil {
				return err
			}
			algs = append(algs, parsed)
		}
	}

	cfg, drv, _, cleanup, err := setup(cmd, nil, os.Stderr)
	defer cleanup()
	if err != nil {
		return err
	}
	input := drv.Array()

	fmt.Printf("comparing on %d elements (%s)\n\n", len(input), cfg.Pattern)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "algorithm\tsteps\tcomparisons\twrites\ttime\tstable\t")

	set := metrics.Default()
	drv.AddObserver(set)
	for _, alg := range algs {
		if err := drv.StartRun(alg, input); err != nil {
			return err
		}
		for _, st := drv.Tick(); st == driver.StatusStep; _, st = drv.Tick() {
		}
		info, err := sorting.Info(alg)
		if err != nil {
			return err
		}
		v := set.Values()
		stable := "no"
		if info.Stable {
			stable = "yes"
		}
		fmt.Fprintf(w, "%s\t%.0f\t%.0f\t%.0f\t%s\t%s\t\n", info.Name, v["steps"], v["comparisons"], v["writes"], info.Time, stable)
	}
	return w.Flush()
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIME\tBEST\tSPACE\tSTABLE")
	for _, alg := range sorting.Algorithms() {
		info, err := sorting.Info(alg)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%t\n", alg, info.Name, info.Time, info.Best, info.Space, info.Stable)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if verbose {
		for _, alg := range sorting.Algorithms() {
			info, _ := sorting.Info(alg)
			fmt.Printf("\n%s\n  %s\n", info.Name, info.Description)
			for i, line := range info.HowItWorks {
				fmt.Printf("  %d. %s\n", i+1, line)
			}
		}
	}
	return nil
}
