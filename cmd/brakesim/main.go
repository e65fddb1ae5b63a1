package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/brakesim/internal/analysis"
	"github.com/san-kum/brakesim/internal/chart"
	"github.com/san-kum/brakesim/internal/config"
	"github.com/san-kum/brakesim/internal/logging"
	"github.com/san-kum/brakesim/internal/physics"
	"github.com/san-kum/brakesim/internal/scenario"
	"github.com/san-kum/brakesim/internal/storage"
	"github.com/san-kum/brakesim/internal/tui"
)

var (
	dataDir    string
	verbose    bool
	configFile string
	preset     string

	speed    float64
	reaction float64
	weather  string
	tyres    string
	abs      bool
	slope    float64
	car      string
	massKg   float64
	cd       float64
	area     float64
	dt       float64
	noSave   bool

	chartWidth  int
	chartHeight int

	sweepFrom float64
	sweepTo   float64
	sweepStep float64

	targetSpeed float64
	svgWidth    int
	svgHeight   int
	svgColor    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "brakesim",
		Short: "vehicle stopping distance estimator",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			return tui.Run(cfg.Environment())
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".brakesim", "data directory")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "debug logging")

	stopCmd := &cobra.Command{
		Use:   "stop",
		Short: "evaluate one braking scenario",
		RunE:  runStop,
	}
	addScenarioFlags(stopCmd)
	stopCmd.Flags().BoolVar(&noSave, "no-save", false, "skip persisting the run")

	chartCmd := &cobra.Command{
		Use:   "chart",
		Short: "weather/alertness comparison grid",
		RunE:  runChart,
	}
	addScenarioFlags(chartCmd)
	chartCmd.Flags().IntVar(&chartWidth, "width", 50, "panel width")
	chartCmd.Flags().IntVar(&chartHeight, "height", 10, "panel height")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "closed-form vs numeric across a speed sweep",
		RunE:  runCompare,
	}
	addScenarioFlags(compareCmd)
	compareCmd.Flags().Float64Var(&sweepFrom, "from", 20, "sweep start speed (km/h)")
	compareCmd.Flags().Float64Var(&sweepTo, "to", 120, "sweep end speed (km/h)")
	compareCmd.Flags().Float64Var(&sweepStep, "step", 10, "sweep step (km/h)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&chartWidth, "width", 80, "plot width")
	plotCmd.Flags().IntVar(&chartHeight, "height", 12, "plot height")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "deceleration analysis of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().Float64Var(&targetSpeed, "at-speed", 30, "report distance at this speed (km/h)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata and trajectory as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run trajectory as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export run trajectory as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 450, "image height")
	exportSVGCmd.Flags().StringVar(&svgColor, "color", "#00ffcc", "stroke color")

	carsCmd := &cobra.Command{
		Use:   "cars",
		Short: "list the vehicle database",
		RunE:  listCars,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list scenario presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSPEED\tWEATHER\tTYRES\tABS\tSLOPE\tCAR")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.0f km/h\t%s\t%s\t%v\t%+.0f%%\t%s\n",
					name, p.SpeedKmh, p.Weather, p.Tyres, p.ABS, p.SlopePercent, p.Car)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(stopCmd, chartCmd, compareCmd, listCmd, plotCmd, analyzeCmd,
		exportJSONCmd, exportCSVCmd, exportSVGCmd, carsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset scenario")
	cmd.Flags().Float64Var(&speed, "speed", config.DefaultSpeedKmh, "initial speed (km/h)")
	cmd.Flags().Float64Var(&reaction, "reaction", config.DefaultReactionTime, "reaction time (s)")
	cmd.Flags().StringVar(&weather, "weather", "dry", "weather: dry, wet, snow, ice")
	cmd.Flags().StringVar(&tyres, "tyres", "decent", "tyres: good, decent, worn")
	cmd.Flags().BoolVar(&abs, "abs", false, "anti-lock braking fitted")
	cmd.Flags().Float64Var(&slope, "slope", 0, "road grade (percent, negative downhill)")
	cmd.Flags().StringVar(&car, "car", "", "car from the database (enables the drag model)")
	cmd.Flags().Float64Var(&massKg, "mass", 0, "manual vehicle mass (kg)")
	cmd.Flags().Float64Var(&cd, "cd", 0, "manual drag coefficient")
	cmd.Flags().Float64Var(&area, "area", 0, "manual frontal area (m^2)")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "integration step (s)")
}

// buildConfig resolves preset, config file, and flags in that order;
// explicitly set flags win.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
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

	if cmd.Flags().Changed("speed") {
		cfg.SpeedKmh = speed
	}
	if cmd.Flags().Changed("reaction") {
		cfg.ReactionTime = reaction
	}
	if cmd.Flags().Changed("weather") {
		cfg.Weather = weather
	}
	if cmd.Flags().Changed("tyres") {
		cfg.Tyres = tyres
	}
	if cmd.Flags().Changed("abs") {
		cfg.ABS = abs
	}
	if cmd.Flags().Changed("slope") {
		cfg.SlopePercent = slope
	}
	if cmd.Flags().Changed("car") {
		cfg.Car = car
	}
	if cmd.Flags().Changed("mass") {
		cfg.MassKg = massKg
	}
	if cmd.Flags().Changed("cd") {
		cfg.Cd = cd
	}
	if cmd.Flags().Changed("area") {
		cfg.FrontalAreaM2 = area
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}

	return cfg, nil
}

func runStop(cmd *cobra.Command, args []string) error {
	log := logging.New(verbose)

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	sc, err := cfg.Scenario()
	if err != nil {
		return err
	}
	env := cfg.Environment()

	out, err := sc.Evaluate(env)
	if err != nil {
		return err
	}

	fmt.Print(chart.Summary(out))

	if noSave {
		return nil
	}

	var samples []physics.Sample
	if out.Stoppable {
		samples = sc.Profile(env, cfg.ProfileDt)
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(sc, cfg.Car, out, samples)
	if err != nil {
		return err
	}
	log.Info("run saved", "id", runID, "samples", len(samples))

	return nil
}

func runChart(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	sc, err := cfg.Scenario()
	if err != nil {
		return err
	}

	fmt.Println(chart.Grid(cfg.Environment(), sc, chartWidth, chartHeight))
	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	sc, err := cfg.Scenario()
	if err != nil {
		return err
	}
	env := cfg.Environment()

	if sweepStep <= 0 {
		return fmt.Errorf("step must be positive, got %f", sweepStep)
	}

	// The numeric column needs aerodynamics; default car when none given.
	veh := sc.Vehicle
	if veh == nil {
		c := scenario.DefaultCar()
		veh = &physics.Vehicle{MassKg: c.MassKg, DragCoefficient: c.DragCoefficient, FrontalAreaM2: c.FrontalAreaM2}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SPEED\tCLOSED-FORM\tNUMERIC\tDRAG EFFECT")

	for v := sweepFrom; v <= sweepTo+1e-9; v += sweepStep {
		closed := sc
		closed.SpeedKmh = v
		closed.Vehicle = nil
		co, err := closed.Evaluate(env)
		if err != nil {
			return err
		}

		numeric := sc
		numeric.SpeedKmh = v
		numeric.Vehicle = veh
		no, err := numeric.Evaluate(env)
		if err != nil {
			return err
		}

		if !co.Stoppable {
			fmt.Fprintf(w, "%.0f km/h\tcannot stop\tcannot stop\t-\n", v)
			continue
		}
		fmt.Fprintf(w, "%.0f km/h\t%.2f m\t%.2f m\t%+.2f m\n",
			v, co.TotalDistance, no.TotalDistance, no.TotalDistance-co.TotalDistance)
	}

	return w.Flush()
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
	fmt.Fprintln(w, "ID\tTIME\tMODEL\tSPEED\tWEATHER\tTYRES\tSLOPE\tTOTAL")

	for _, run := range runs {
		total := "-"
		if d, ok := run.Results["total_distance"]; ok {
			total = fmt.Sprintf("%.2f m", d)
		} else if !run.Stoppable {
			total = "cannot stop"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.0f km/h\t%s\t%s\t%+.0f%%\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Model,
			run.SpeedKmh,
			run.Weather,
			run.Tyres,
			run.SlopePercent,
			total,
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

	samples, err := st.LoadProfile(runID)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no trajectory data for run %s", runID)
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("conditions: %s, %s, %+.0f%% grade\n", meta.Weather, meta.Tyres, meta.SlopePercent)
	fmt.Printf("samples: %d\n\n", len(samples))

	fmt.Println(chart.Plot(samples, chartWidth, chartHeight))
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	samples, err := st.LoadProfile(runID)
	if err != nil {
		return err
	}
	if len(samples) < 2 {
		return fmt.Errorf("not enough trajectory data for run %s", runID)
	}

	// Profiles are sampled at the coarse charting step, not the
	// integration dt stored in the metadata.
	sampleDt := config.DefaultProfileDt

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "run\t%s\n", meta.ID)
	fmt.Fprintf(w, "peak deceleration\t%.2f m/s^2\n", analysis.PeakDeceleration(samples, sampleDt))
	fmt.Fprintf(w, "mean deceleration\t%.2f m/s^2\n", analysis.MeanDeceleration(samples, sampleDt))

	if onset := analysis.BrakingOnset(samples); onset >= 0 {
		fmt.Fprintf(w, "braking onset\t%.2f m\n", samples[onset].Distance)
	} else {
		fmt.Fprintf(w, "braking onset\tnever\n")
	}

	if d, ok := analysis.DistanceAtSpeed(samples, targetSpeed); ok {
		fmt.Fprintf(w, "distance at %.0f km/h\t%.2f m\n", targetSpeed, d)
	} else {
		fmt.Fprintf(w, "distance at %.0f km/h\tnot reached\n", targetSpeed)
	}

	return w.Flush()
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	samples, _ := st.LoadProfile(runID)
	return storage.ExportJSON(os.Stdout, meta, samples)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	samples, err := st.LoadProfile(runID)
	if err != nil {
		return err
	}

	return storage.ExportCSV(os.Stdout, samples)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	samples, err := st.LoadProfile(runID)
	if err != nil {
		return err
	}
	if len(samples) < 2 {
		return fmt.Errorf("not enough trajectory data for run %s", runID)
	}

	svg := chart.ProfileToSVG(samples, svgWidth, svgHeight, svgColor)
	_, err = fmt.Print(svg)
	return err
}

func listCars(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMASS\tCD\tAREA")
	for _, c := range scenario.Cars {
		fmt.Fprintf(w, "%s\t%.0f kg\t%.2f\t%.1f m^2\n", c.Name, c.MassKg, c.DragCoefficient, c.FrontalAreaM2)
	}
	return w.Flush()
}
