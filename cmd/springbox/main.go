package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/springbox/internal/config"
	"github.com/san-kum/springbox/internal/export"
	"github.com/san-kum/springbox/internal/gui"
	"github.com/san-kum/springbox/internal/metrics"
	"github.com/san-kum/springbox/internal/scenario"
	"github.com/san-kum/springbox/internal/sim"
	"github.com/san-kum/springbox/internal/storage"
	"github.com/san-kum/springbox/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string
	frames     int
	vx, vy     float64
	radius     float64
	roomK      float64
	roomQ      float64
	friction   float64
	wall       float64
	handK      float64
	handQ      float64
	maxElapsed float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "springbox",
		Short: "pointer-driven bouncing ball simulation lab",
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the windowed GUI when no command given
			cfg, err := resolveConfig(cmd)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			gui.Run(cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".springbox", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset tuning")
	addTuningFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run a scripted scenario headless",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().IntVar(&frames, "frames", 600, "number of simulated frames (60/s)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run frames to a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export the ball's trajectory as an SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available tuning presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s (scenario: %s)\n", p, config.Presets[p].Scenario)
			}
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "live terminal view with mouse grabbing",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "windowed view with mouse grabbing",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			gui.Run(cfg)
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd, presetsCmd, tuiCmd, guiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addTuningFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.Float64Var(&vx, "vx", 300, "initial horizontal velocity")
	f.Float64Var(&vy, "vy", 0, "initial vertical velocity")
	f.Float64Var(&radius, "radius", config.DefaultBallRadius, "ball radius")
	f.Float64Var(&roomK, "k", config.DefaultRoomK, "wall spring stiffness")
	f.Float64Var(&roomQ, "q", config.DefaultRoomQ, "wall quality factor")
	f.Float64Var(&friction, "friction", config.DefaultFriction, "cross-axis friction coefficient")
	f.Float64Var(&wall, "wall", config.DefaultWall, "wall thickness")
	f.Float64Var(&handK, "hand-k", config.DefaultHandK, "hand spring stiffness")
	f.Float64Var(&handQ, "hand-q", config.DefaultHandQ, "hand quality factor")
	f.Float64Var(&maxElapsed, "max-elapsed", 0.25, "per-frame elapsed time cap (seconds)")
}

// resolveConfig layers tuning sources: defaults, then preset, then config
// file, then any explicitly set flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("vx") {
		cfg.Ball.VX = vx
	}
	if flags.Changed("vy") {
		cfg.Ball.VY = vy
	}
	if flags.Changed("radius") {
		cfg.Ball.Radius = radius
	}
	if flags.Changed("k") {
		cfg.Room.K = roomK
	}
	if flags.Changed("q") {
		cfg.Room.QFactor = roomQ
	}
	if flags.Changed("friction") {
		cfg.Room.Friction = friction
	}
	if flags.Changed("wall") {
		cfg.Room.Wall = wall
	}
	if flags.Changed("hand-k") {
		cfg.Hand.K = handK
	}
	if flags.Changed("hand-q") {
		cfg.Hand.QFactor = handQ
	}
	if flags.Changed("max-elapsed") {
		cfg.MaxElapsed = maxElapsed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	name := cfg.Scenario
	if len(args) > 0 {
		name = args[0]
	}

	sc, err := scenario.Get(name)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	simulator := sim.New(sim.Config{MaxElapsed: cfg.MaxElapsed})
	simulator.AddMetric(metrics.NewEnergy())
	simulator.AddMetric(metrics.NewSettling())
	simulator.AddMetric(metrics.NewPenetration())
	simulator.AddMetric(metrics.NewGrabDistance())

	fmt.Printf("running %s scenario...\n", name)
	start := time.Now()

	result, err := simulator.Run(context.Background(), cfg.NewState(), sc.Inputs(frames))
	if err != nil {
		return err
	}
	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "warning: %v\n", e)
	}

	elapsed := time.Since(start)

	runID, err := st.Save(name, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("frames: %d\n", result.FramesRun)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tFRAMES")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
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

	rows, _, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n", meta.Scenario)
	fmt.Printf("samples: %d\n\n", len(rows))

	// height above the floor, then speed
	height := make([]float64, len(rows))
	speed := make([]float64, len(rows))
	for i, row := range rows {
		if len(row) < 8 {
			continue
		}
		height[i] = row[1] + row[7]/2
		speed[i] = math.Hypot(row[2], row[3])
	}

	fmt.Println(asciigraph.Plot(height,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("height above floor"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(speed,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("speed"),
	))

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	frames, _, err := st.LoadRun(runID)
	if err != nil {
		return err
	}

	svg := export.TrajectorySVG(frames)
	if svg == "" {
		return fmt.Errorf("not enough data to draw a trajectory")
	}

	outPath := runID + ".svg"
	if err := os.WriteFile(outPath, []byte(svg), 0644); err != nil {
		return err
	}

	fmt.Printf("exported trajectory to %s\n", outPath)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	rows, times, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	outPath := runID + ".csv"
	file, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write(append([]string{"time"}, storage.FrameColumns...)); err != nil {
		return err
	}
	for i, row := range rows {
		record := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, v := range row {
			record = append(record, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	fmt.Printf("exported %d frames to %s\n", len(rows), outPath)
	return nil
}
