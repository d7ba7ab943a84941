package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/phanxgames/bezier"
	"github.com/phanxgames/bezier/config"
	"github.com/phanxgames/bezier/ebitenhost"
	"github.com/spf13/cobra"
)

var (
	configFile  string
	samples     int
	animate     bool
	width       int
	height      int
	scriptFile  string
	debug       bool
	logLevel    string
	noHUD       bool
	sampleCount int
	plotCount   int
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	pointStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("201"))
)

// main registers the commands and flags and executes the root command,
// which opens the editor window. It exits with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "bezier",
		Short:        "interactive cubic Bézier curve editor",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging()
		},
		RunE: runEditor,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().IntVar(&samples, "samples", 0, "curve samples per frame (overrides config)")
	rootCmd.Flags().BoolVar(&animate, "animate", false, "start with animation enabled")
	rootCmd.Flags().IntVar(&width, "width", 0, "window width (overrides config)")
	rootCmd.Flags().IntVar(&height, "height", 0, "window height (overrides config)")
	rootCmd.Flags().StringVar(&scriptFile, "script", "", "test script to replay (json)")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "log per-frame stats")
	rootCmd.Flags().BoolVar(&noHUD, "no-hud", false, "hide the overlay")

	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "print sampled curve points",
		RunE:  printSamples,
	}
	sampleCmd.Flags().IntVarP(&sampleCount, "count", "n", 11, "number of samples")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot x(t) and y(t) in the terminal",
		RunE:  plotCurve,
	}
	plotCmd.Flags().IntVarP(&plotCount, "count", "n", 80, "number of samples")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage configuration files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(sampleCmd, plotCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("log level %q: %w", logLevel, err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// loadConfig reads --config if given, applies flag overrides and validates.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return nil, err
		}
	}
	if samples > 0 {
		cfg.Curve.Samples = samples
	}
	if f := cmd.Flags().Lookup("animate"); f != nil && f.Changed {
		cfg.Animation.Enabled = animate
	}
	if width > 0 {
		cfg.Window.Width = width
	}
	if height > 0 {
		cfg.Window.Height = height
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runEditor(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	editor, err := bezier.NewEditor(cfg.EditorConfig())
	if err != nil {
		return err
	}
	editor.SetDebugMode(debug)

	if scriptFile != "" {
		data, err := os.ReadFile(scriptFile)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := bezier.LoadTestScript(data)
		if err != nil {
			return err
		}
		editor.SetTestRunner(runner)
		slog.Info("replaying script", "path", scriptFile)
	}

	return ebitenhost.Run(editor, ebitenhost.RunConfig{
		Title:         cfg.Window.Title,
		Width:         cfg.Window.Width,
		Height:        cfg.Window.Height,
		TPS:           cfg.Window.TPS,
		ShowHUD:       !noHUD,
		ScreenshotDir: cfg.ScreenshotDir,
	})
}

// curveFromConfig builds the configured curve for the offline commands.
func curveFromConfig(cmd *cobra.Command, count int) (*bezier.Curve, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if count < 2 {
		return nil, fmt.Errorf("n %d: must be at least 2", count)
	}
	return bezier.NewCurve(cfg.EditorConfig().ControlPoints), nil
}

func printSamples(cmd *cobra.Command, args []string) error {
	count := sampleCount
	curve, err := curveFromConfig(cmd, count)
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render("control points"))
	for i, p := range curve.ControlPoints() {
		fmt.Println(pointStyle.Render(fmt.Sprintf("  P%d  %8.4f  %8.4f", i, p.X, p.Y)))
	}
	fmt.Println()
	fmt.Println(headerStyle.Render(fmt.Sprintf("%4s  %8s  %8s  %8s", "i", "t", "x", "y")))
	last := float64(count - 1)
	for i, p := range curve.Samples(count) {
		fmt.Printf("%4d  %8.4f  %8.4f  %8.4f\n", i, float64(i)/last, p.X, p.Y)
	}
	b := curve.Bounds()
	fmt.Println(dimStyle.Render(fmt.Sprintf("control box [%.4f, %.4f] x [%.4f, %.4f]",
		b.Min.X, b.Max.X, b.Min.Y, b.Max.Y)))
	return nil
}

func plotCurve(cmd *cobra.Command, args []string) error {
	count := plotCount
	curve, err := curveFromConfig(cmd, count)
	if err != nil {
		return err
	}
	xs := make([]float64, 0, count)
	ys := make([]float64, 0, count)
	for _, p := range curve.Samples(count) {
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
	}
	graph := asciigraph.PlotMany([][]float64{xs, ys},
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Magenta),
		asciigraph.Caption("x(t) green, y(t) magenta, t in [0, 1]"),
	)
	fmt.Println(graph)
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "bezier.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Println(dimStyle.Render("wrote " + path))
	return nil
}
