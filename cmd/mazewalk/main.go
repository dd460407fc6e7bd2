package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/san-kum/mazewalk/internal/automation"
	"github.com/san-kum/mazewalk/internal/config"
	"github.com/san-kum/mazewalk/internal/grid"
	"github.com/san-kum/mazewalk/internal/logging"
	"github.com/san-kum/mazewalk/internal/viz"
	"github.com/san-kum/mazewalk/internal/walker"
	"github.com/spf13/cobra"
)

var (
	logLevel   string
	theme      string
	configFile string
	rows       []string
	width      int
	height     int
	start      int
	row        int
	col        int
	heading    string
	trace      bool
	plainOut   bool
	chart      bool
	chartWidth int
	frameRate  int
	saveFile   string

	logger *slog.Logger
)

var errCheckFailed = errors.New("check failed")

func main() {
	rootCmd := &cobra.Command{
		Use:           "mazewalk",
		Short:         "maze robot walk simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logger = logging.New(level)
			viz.SetTheme(theme)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "cyberpunk", "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "walk the robot and print the outcome",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runWalk,
	}
	addMazeFlags(runCmd)
	runCmd.Flags().BoolVar(&trace, "trace", false, "print every visited state and walk metrics")
	runCmd.Flags().BoolVar(&plainOut, "plain", false, "print the outcome name only")

	printCmd := &cobra.Command{
		Use:   "print [preset]",
		Short: "print the maze with the robot",
		Args:  cobra.MaximumNArgs(1),
		RunE:  printMaze,
	}
	addMazeFlags(printCmd)
	printCmd.Flags().BoolVar(&plainOut, "plain", false, "print without colors")

	sweepCmd := &cobra.Command{
		Use:   "sweep [preset]",
		Short: "walk from every cell in every heading",
		Args:  cobra.MaximumNArgs(1),
		RunE:  sweepMaze,
	}
	addMazeFlags(sweepCmd)
	sweepCmd.Flags().BoolVar(&chart, "chart", false, "plot steps per start index")
	sweepCmd.Flags().IntVar(&chartWidth, "chart-width", 60, "chart width")

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "step through a walk interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addMazeFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 5, "steps per second")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	checkCmd := &cobra.Command{
		Use:   "check [suite.yaml]",
		Short: "run a suite of walks against their expected outcomes",
		Args:  cobra.MaximumNArgs(1),
		RunE:  checkSuite,
	}

	validateCmd := &cobra.Command{
		Use:   "validate [preset]",
		Short: "validate a maze config",
		Args:  cobra.MaximumNArgs(1),
		RunE:  validateConfig,
	}
	addMazeFlags(validateCmd)
	validateCmd.Flags().StringVar(&saveFile, "save", "", "write the resolved config to this yaml file")

	rootCmd.AddCommand(runCmd, printCmd, sweepCmd, liveCmd, presetsCmd, checkCmd, validateCmd)

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errCheckFailed) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func addMazeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringArrayVar(&rows, "rows", nil, "map row (repeatable)")
	cmd.Flags().IntVar(&width, "width", 0, "map width (default: row length)")
	cmd.Flags().IntVar(&height, "height", 0, "map height (default: row count)")
	cmd.Flags().IntVar(&start, "start", 0, "start flat index")
	cmd.Flags().IntVar(&row, "row", 0, "start row (with --col)")
	cmd.Flags().IntVar(&col, "col", 0, "start column (with --row)")
	cmd.Flags().StringVar(&heading, "heading", config.DefaultHeading, "initial heading (^ v < > or north/south/east/west)")
}

// resolveConfig merges preset, config file and flags, in that order.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if len(args) > 0 {
		cfg = config.GetPreset(args[0])
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("rows") {
		cfg.Rows = rows
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("start") {
		cfg.Start = config.Index(start)
	}
	if flags.Changed("row") || flags.Changed("col") {
		cfg.Start = nil
		cfg.Row, cfg.Col = row, col
	}
	if flags.Changed("heading") {
		cfg.Heading = heading
	}
	if cfg.Name == "" {
		cfg.Name = "maze"
	}

	return cfg, nil
}

func buildMaze(cmd *cobra.Command, args []string) (*config.Config, *grid.Grid, grid.Coord, grid.Heading, error) {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return nil, nil, grid.Coord{}, 0, err
	}
	g, s, h, err := cfg.Build()
	if err != nil {
		return nil, nil, grid.Coord{}, 0, err
	}
	return cfg, g, s, h, nil
}

func runWalk(cmd *cobra.Command, args []string) error {
	cfg, g, s, h, err := buildMaze(cmd, args)
	if err != nil {
		return err
	}

	opts := []walker.Option{walker.WithLogger(logger)}
	if trace {
		opts = append(opts, walker.WithPath())
	}
	w := walker.New(g, opts...)
	if trace {
		for _, m := range walker.DefaultMetrics() {
			w.AddMetric(m)
		}
	}

	result := w.Walk(s, h)

	if plainOut {
		fmt.Println(result.Outcome)
		return nil
	}

	fmt.Printf("maze: %s (%dx%d)\n", cfg.Name, g.Width, g.Height)
	fmt.Printf("start: %s\n", result.Start)
	fmt.Printf("outcome: %s\n", viz.RenderOutcome(result.Outcome))
	fmt.Printf("steps: %d\n", result.Steps)

	if want, ok, _ := cfg.ExpectedOutcome(); ok {
		verdict := "ok"
		if want != result.Outcome {
			verdict = "MISMATCH"
		}
		fmt.Printf("expected: %s (%s)\n", want, verdict)
	}

	if trace {
		fmt.Println()
		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "STEP\tROW\tCOL\tHEADING\tCELL")
		for i, st := range result.Path {
			fmt.Fprintf(tw, "%d\t%d\t%d\t%s\t%c\n", i, st.Pos.Row, st.Pos.Col, st.Heading, g.Cell(st.Pos))
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		fmt.Println()
		for _, m := range walker.DefaultMetrics() {
			fmt.Printf("%-15s %.0f\n", m.Name(), result.Metrics[m.Name()])
		}
	}

	return nil
}

func printMaze(cmd *cobra.Command, args []string) error {
	_, g, s, h, err := buildMaze(cmd, args)
	if err != nil {
		return err
	}

	if plainOut {
		return g.Print(os.Stdout, s, h)
	}

	fmt.Println(viz.RenderMaze(g, walker.State{Pos: s, Heading: h}, nil))
	return nil
}

func sweepMaze(cmd *cobra.Command, args []string) error {
	cfg, g, _, _, err := buildMaze(cmd, args)
	if err != nil {
		return err
	}

	res := walker.Sweep(g, walker.WithLogger(logger))

	fmt.Printf("maze: %s (%dx%d), %d walks\n\n", cfg.Name, g.Width, g.Height, res.Total())
	fmt.Print(viz.OutcomeSummary(res))

	for _, h := range grid.Headings {
		fmt.Printf("\nstarting %s (%c):\n", h, h.Symbol())
		fmt.Print(viz.SweepMap(res, h))
	}

	if chart {
		fmt.Println()
		fmt.Println(viz.StepsChart(res, chartWidth))
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, g, s, h, err := buildMaze(cmd, args)
	if err != nil {
		return err
	}

	out, err := viz.RunLive(cfg.Name, g, s, h, frameRate)
	if err != nil {
		return err
	}
	if out.Terminal() {
		fmt.Printf("outcome: %s\n", out)
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tSTART\tHEADING\tEXPECT")

	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		wd, ht := cfg.Dimensions()
		startDesc := fmt.Sprintf("(%d,%d)", cfg.Row, cfg.Col)
		if cfg.Start != nil {
			startDesc = fmt.Sprintf("%d", *cfg.Start)
		}
		fmt.Fprintf(w, "%s\t%dx%d\t%s\t%s\t%s\n", name, wd, ht, startDesc, cfg.Heading, cfg.Expect)
	}

	return w.Flush()
}

func checkSuite(cmd *cobra.Command, args []string) error {
	suite := automation.PresetSuite()
	if len(args) > 0 {
		loaded, err := automation.LoadSuite(args[0])
		if err != nil {
			return fmt.Errorf("load suite: %w", err)
		}
		suite = loaded
	}

	report := automation.RunSuite(suite, logger)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CASE\tEXPECTED\tGOT\tSTEPS\tRESULT")
	for _, res := range report.Results {
		expected := "-"
		if res.Checked {
			expected = res.Expected.String()
		}
		verdict := "pass"
		switch {
		case res.Err != nil:
			verdict = "error: " + res.Err.Error()
		case !res.Passed():
			verdict = "FAIL"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", res.Name, expected, res.Got, res.Steps, verdict)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	failed := len(report.Failed())
	fmt.Printf("\n%s: %d cases, %d failed\n", report.Suite, len(report.Results), failed)
	if failed > 0 {
		return errCheckFailed
	}
	return nil
}

func validateConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	wd, ht := cfg.Dimensions()
	fmt.Printf("%s: ok (%dx%d)\n", cfg.Name, wd, ht)

	if saveFile != "" {
		if err := config.Save(saveFile, cfg); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		fmt.Printf("saved to %s\n", saveFile)
	}
	return nil
}
