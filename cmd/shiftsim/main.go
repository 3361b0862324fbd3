package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/shift-lab/shiftsim/internal/analysis"
	"github.com/shift-lab/shiftsim/internal/automation"
	"github.com/shift-lab/shiftsim/internal/chart"
	"github.com/shift-lab/shiftsim/internal/config"
	"github.com/shift-lab/shiftsim/internal/dynamo"
	"github.com/shift-lab/shiftsim/internal/experiment"
	"github.com/shift-lab/shiftsim/internal/reactor"
	"github.com/shift-lab/shiftsim/internal/storage"
	"github.com/shift-lab/shiftsim/internal/sweep"
	"github.com/shift-lab/shiftsim/internal/tui"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	dataDir        string
	integratorName string
	wMax           float64
	points         int
	tolerance      float64
	temperature    float64
	pressure       float64
	inletCO        float64
	inletH2O       float64
	inletCO2       float64
	inletH2        float64
	configFile     string
	preset         string
	chartPath      string
	outPath        string
	sweepParams    []string
	sweepMetric    string
	numTrials      int
	perturbation   float64
	seed           int64
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	rootCmd := &cobra.Command{
		Use:   "shiftsim",
		Short: "water-gas shift reactor bed simulator",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".shiftsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [reactor]",
		Short: "integrate a catalyst bed and store the profile",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBed,
	}
	addBedFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().StringVar(&chartPath, "chart", "", "write a flow-profile PNG to this path")

	chartCmd := &cobra.Command{
		Use:   "chart [run_id]",
		Short: "render a stored profile as a PNG chart",
		Args:  cobra.ExactArgs(1),
		RunE:  chartRun,
	}
	chartCmd.Flags().StringVar(&outPath, "out", "profile.png", "output PNG path")

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored profile in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a stored profile to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [reactor]",
		Short: "list available presets for a reactor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for reactor: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	compareCmd := &cobra.Command{
		Use:   "compare [reactor] [integrator1] [integrator2] ...",
		Short: "compare integrators on the same bed",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareIntegrators,
	}
	addBedFlags(compareCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep [reactor]",
		Short: "grid-sweep operating parameters",
		Args:  cobra.MaximumNArgs(1),
		RunE:  sweepParameters,
	}
	addBedFlags(sweepCmd)
	sweepCmd.Flags().StringArrayVar(&sweepParams, "param", nil, "parameter range as name=from:to:steps (repeatable)")
	sweepCmd.Flags().StringVar(&sweepMetric, "metric", "conversion", "metric to maximize")

	watchCmd := &cobra.Command{
		Use:   "watch [reactor]",
		Short: "march the bed live in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  watchBed,
	}
	addBedFlags(watchCmd)

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "bed diagnostics for a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	batchCmd := &cobra.Command{
		Use:   "batch [campaign.yaml]",
		Short: "run a scripted campaign of bed integrations",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	monteCarloCmd := &cobra.Command{
		Use:   "montecarlo [reactor]",
		Short: "feed-variability study with perturbed inlets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runMonteCarlo,
	}
	addBedFlags(monteCarloCmd)
	monteCarloCmd.Flags().IntVar(&numTrials, "trials", 50, "number of trials")
	monteCarloCmd.Flags().Float64Var(&perturbation, "perturbation", 0.05, "relative inlet perturbation")
	monteCarloCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 means time-based)")

	rootCmd.AddCommand(runCmd, chartCmd, plotCmd, listCmd, exportCmd, exportCSVCmd, exportJSONCmd, presetsCmd, compareCmd, sweepCmd, watchCmd, analyzeCmd, batchCmd, monteCarloCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addBedFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&integratorName, "integrator", "rk45", "integrator (euler, rk4, rk45)")
	cmd.Flags().Float64Var(&wMax, "wmax", config.DefaultWMax, "catalyst mass, kg")
	cmd.Flags().IntVar(&points, "points", config.DefaultPoints, "output grid points")
	cmd.Flags().Float64Var(&tolerance, "tolerance", config.DefaultTolerance, "adaptive step tolerance")
	cmd.Flags().Float64Var(&temperature, "temp", config.DefaultTemp, "bed temperature, K")
	cmd.Flags().Float64Var(&pressure, "pressure", config.DefaultPressure, "bed pressure, Pa")
	cmd.Flags().Float64Var(&inletCO, "co", config.DefaultInletCO, "inlet CO, mol/s")
	cmd.Flags().Float64Var(&inletH2O, "h2o", config.DefaultInletH2O, "inlet H2O, mol/s")
	cmd.Flags().Float64Var(&inletCO2, "co2", config.DefaultInletCO2, "inlet CO2, mol/s")
	cmd.Flags().Float64Var(&inletH2, "h2", config.DefaultInletH2, "inlet H2, mol/s")
}

// resolveConfig folds preset, config file, and flags into one Config.
// Flags the user set explicitly win over the file, which wins over the
// preset, which wins over the compiled-in defaults.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if len(args) > 0 {
		cfg.Reactor = args[0]
	}

	if preset != "" {
		p := config.GetPreset(cfg.Reactor, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(cfg.Reactor))
		}
		clone := *p
		cfg = &clone
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		if len(args) > 0 {
			cfg.Reactor = args[0]
		}
	}

	if cmd.Flags().Changed("integrator") {
		cfg.Integrator = integratorName
	}
	if cmd.Flags().Changed("wmax") {
		cfg.WMax = wMax
	}
	if cmd.Flags().Changed("points") {
		cfg.Points = points
	}
	if cmd.Flags().Changed("tolerance") {
		cfg.Tolerance = tolerance
	}
	if cmd.Flags().Changed("temp") {
		cfg.Temp = temperature
	}
	if cmd.Flags().Changed("pressure") {
		cfg.Pressure = pressure
	}
	if cmd.Flags().Changed("co") {
		cfg.Inlet.CO = inletCO
	}
	if cmd.Flags().Changed("h2o") {
		cfg.Inlet.H2O = inletH2O
	}
	if cmd.Flags().Changed("co2") {
		cfg.Inlet.CO2 = inletCO2
	}
	if cmd.Flags().Changed("h2") {
		cfg.Inlet.H2 = inletH2
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildExperiment(cfg *config.Config) (*experiment.Experiment, error) {
	registry := experiment.NewRegistry()

	sys, err := registry.GetReactor(cfg.Reactor)
	if err != nil {
		return nil, err
	}
	integ, err := registry.GetIntegrator(cfg.Integrator)
	if err != nil {
		return nil, err
	}

	exp := experiment.New(experiment.Config{
		Reactor:    cfg.Reactor,
		Integrator: cfg.Integrator,
		InitState:  cfg.GetInitState(),
		WMax:       cfg.WMax,
		Points:     cfg.Points,
		Tolerance:  cfg.Tolerance,
		Params: map[string]float64{
			"temperature": cfg.Temp,
			"pressure":    cfg.Pressure,
		},
	})
	if err := exp.Setup(sys, integ, registry.DefaultMetrics(sys)); err != nil {
		return nil, err
	}
	return exp, nil
}

func runBed(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	exp, err := buildExperiment(cfg)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"reactor":    cfg.Reactor,
		"integrator": cfg.Integrator,
		"w_max":      cfg.WMax,
		"points":     cfg.Points,
	}).Info("integrating bed")
	start := time.Now()

	result, err := exp.Run(context.Background())
	if err != nil {
		log.WithError(err).Error("integration failed")
		return err
	}

	runID, err := st.Save(storage.RunMetadata{
		Reactor:    cfg.Reactor,
		WMax:       cfg.WMax,
		Points:     cfg.Points,
		Integrator: cfg.Integrator,
		Temp:       cfg.Temp,
		Pressure:   cfg.Pressure,
	}, result)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"run_id":  runID,
		"points":  len(result.States),
		"steps":   result.StepsTaken,
		"elapsed": time.Since(start).Round(time.Microsecond),
	}).Info("completed")

	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	outlet := result.States[len(result.States)-1]
	fmt.Println("\noutlet flows (mol/s):")
	for i := 0; i < reactor.NumSpecies && i < len(outlet); i++ {
		fmt.Printf("  %s: %.2f\n", reactor.SpeciesNames[i], outlet[i])
	}

	if chartPath != "" {
		opts := chart.Options{Title: chartTitle(cfg.Reactor)}
		if err := chart.Flows(result.Masses, result.States, opts, chartPath); err != nil {
			return err
		}
		fmt.Printf("\nchart written to %s\n", chartPath)
	}

	return nil
}

func chartTitle(reactorName string) string {
	return strings.ToUpper(reactorName) + " Molar Flow as Function of Cat. Mass"
}

func chartRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, masses, err := st.LoadProfile(runID)
	if err != nil {
		return err
	}

	opts := chart.Options{Title: chartTitle(meta.Reactor)}
	if err := chart.Flows(masses, states, opts, outPath); err != nil {
		return err
	}

	fmt.Printf("chart written to %s\n", outPath)
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, _, err := st.LoadProfile(runID)
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("reactor: %s\n", meta.Reactor)
	fmt.Printf("samples: %d\n\n", len(states))

	for i := 0; i < reactor.NumSpecies; i++ {
		data := make([]float64, len(states))
		for j := range states {
			data[j] = states[j][i]
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(reactor.SpeciesNames[i]+" vs catalyst mass"),
		)
		fmt.Println(graph)
		fmt.Println()
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
	fmt.Fprintln(w, "ID\tREACTOR\tTIME\tW_MAX\tPOINTS\tINTEG\tTEMP")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.0fkg\t%d\t%s\t%.1fK\n",
			run.ID,
			run.Reactor,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.WMax,
			run.Points,
			run.Integrator,
			run.Temp,
		)
	}

	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	states, masses, err := st.LoadProfile(args[0])
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data to export")
	}
	return storage.ExportCSV(os.Stdout, states, masses)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, masses, err := st.LoadProfile(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(meta, states, masses)
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	integrators := args[1:]

	fmt.Printf("comparing integrators for %s (w_max=%.0f kg, %d points)\n\n", args[0], wMax, points)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTEGRATOR\tOUTLET_CO\tCONVERSION\tFLOW_DRIFT\tSTEPS\tTIME")

	for _, name := range integrators {
		cfg, err := resolveConfig(cmd, args[:1])
		if err != nil {
			return err
		}
		cfg.Integrator = name

		exp, err := buildExperiment(cfg)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", name, err)
			continue
		}

		start := time.Now()
		result, err := exp.Run(context.Background())
		elapsed := time.Since(start)

		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", name, err)
			continue
		}

		outlet := result.States[len(result.States)-1]
		fmt.Fprintf(w, "%s\t%.4f\t%.6f\t%.2e\t%d\t%v\n",
			name,
			outlet[reactor.CO],
			result.Metrics["conversion"],
			result.Metrics["total_flow_drift"],
			result.StepsTaken,
			elapsed.Round(time.Microsecond),
		)
	}

	return w.Flush()
}

// parseParamRange parses "name=from:to:steps" into a sweep axis.
func parseParamRange(spec string) (string, []float64, error) {
	name, rangeSpec, ok := strings.Cut(spec, "=")
	if !ok {
		return "", nil, fmt.Errorf("invalid param range %q, want name=from:to:steps", spec)
	}

	parts := strings.Split(rangeSpec, ":")
	if len(parts) != 3 {
		return "", nil, fmt.Errorf("invalid param range %q, want name=from:to:steps", spec)
	}

	from, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return "", nil, fmt.Errorf("invalid range start in %q: %w", spec, err)
	}
	to, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return "", nil, fmt.Errorf("invalid range end in %q: %w", spec, err)
	}
	steps, err := strconv.Atoi(parts[2])
	if err != nil {
		return "", nil, fmt.Errorf("invalid step count in %q: %w", spec, err)
	}

	return name, sweep.Range(from, to, steps), nil
}

func sweepParameters(cmd *cobra.Command, args []string) error {
	if len(sweepParams) == 0 {
		return fmt.Errorf("at least one --param range is required")
	}

	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(sweepParams))
	values := make([][]float64, 0, len(sweepParams))
	for _, spec := range sweepParams {
		name, vals, err := parseParamRange(spec)
		if err != nil {
			return err
		}
		names = append(names, name)
		values = append(values, vals)
	}

	grid := sweep.NewGridSweep(names, values)
	cases, best := grid.Run(context.Background(), func(params map[string]float64) (*experiment.Experiment, error) {
		caseCfg := *cfg
		if t, ok := params["temperature"]; ok {
			caseCfg.Temp = t
		}
		if p, ok := params["pressure"]; ok {
			caseCfg.Pressure = p
		}
		return buildExperiment(&caseCfg)
	}, sweepMetric)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	header := strings.ToUpper(strings.Join(names, "\t"))
	fmt.Fprintf(w, "%s\t%s\n", header, strings.ToUpper(sweepMetric))

	for _, c := range cases {
		for _, name := range names {
			fmt.Fprintf(w, "%.4g\t", c.Params[name])
		}
		if c.Err != nil {
			fmt.Fprintf(w, "error: %v\n", c.Err)
			continue
		}
		fmt.Fprintf(w, "%.6f\n", c.Value)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if best < 0 {
		return fmt.Errorf("all sweep cases failed")
	}

	fmt.Printf("\nbest %s: %.6f at", sweepMetric, cases[best].Value)
	for _, name := range names {
		fmt.Printf(" %s=%.4g", name, cases[best].Params[name])
	}
	fmt.Println()
	return nil
}

func watchBed(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	sys, err := registry.GetReactor(cfg.Reactor)
	if err != nil {
		return err
	}
	integ, err := registry.GetIntegrator(cfg.Integrator)
	if err != nil {
		return err
	}

	if tunable, ok := sys.(dynamo.Configurable); ok {
		if err := tunable.SetParam("temperature", cfg.Temp); err != nil {
			return err
		}
		if err := tunable.SetParam("pressure", cfg.Pressure); err != nil {
			return err
		}
	}

	m := tui.NewModel(sys, integ, cfg.GetInitState(), cfg.WMax/float64(cfg.Points), cfg.WMax, cfg.Reactor)

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, masses, err := st.LoadProfile(runID)
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	sys, err := registry.GetReactor(meta.Reactor)
	if err != nil {
		return err
	}
	if tunable, ok := sys.(dynamo.Configurable); ok {
		if err := tunable.SetParam("temperature", meta.Temp); err != nil {
			return err
		}
		if err := tunable.SetParam("pressure", meta.Pressure); err != nil {
			return err
		}
	}

	model, ok := sys.(analysis.Kinetics)
	if !ok {
		return fmt.Errorf("reactor %s does not expose kinetics", meta.Reactor)
	}

	profile, err := analysis.Profile(model, states, masses)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("reactor: %s at %.1f K, %.2e Pa\n\n", meta.Reactor, meta.Temp, meta.Pressure)

	graph := asciigraph.Plot(profile.Rates,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("reaction rate vs catalyst mass (mol/s/kg)"),
	)
	fmt.Println(graph)
	fmt.Println()

	graph = asciigraph.Plot(profile.Betas,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("approach to equilibrium vs catalyst mass"),
	)
	fmt.Println(graph)
	fmt.Println()

	peakRate, peakMass := profile.PeakRate()
	fmt.Printf("peak rate: %.4f mol/s/kg at w = %.1f kg\n", peakRate, peakMass)
	fmt.Printf("outlet conversion: %.4f\n", profile.Conversion[len(profile.Conversion)-1])
	for _, frac := range []float64{0.5, 0.9, 0.99} {
		fmt.Printf("w at %.0f%% of outlet conversion: %.1f kg\n", frac*100, profile.MassAtConversion(frac))
	}
	fmt.Printf("bed utilization: %.3f\n", profile.Utilization())

	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	campaign, err := automation.LoadCampaign(args[0])
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	results, err := automation.RunCampaign(context.Background(), campaign, registry)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tREACTOR\tW_MAX\tCONVERSION\tOUTLET_CO")
	for i, r := range results {
		outlet := r.Result.States[len(r.Result.States)-1]
		fmt.Fprintf(w, "%d\t%s\t%.0fkg\t%.6f\t%.2f\n",
			i+1, r.Step.Reactor, r.Step.WMax,
			r.Result.Metrics["conversion"], outlet[reactor.CO])
	}
	return w.Flush()
}

func runMonteCarlo(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	mcCfg := &automation.MonteCarloConfig{
		Reactor:      cfg.Reactor,
		Integrator:   cfg.Integrator,
		BaseInlet:    cfg.GetInitState(),
		Perturbation: perturbation,
		NumTrials:    numTrials,
		WMax:         cfg.WMax,
		Points:       cfg.Points,
		Seed:         seed,
	}

	log.WithFields(log.Fields{
		"reactor":      cfg.Reactor,
		"trials":       numTrials,
		"perturbation": perturbation,
	}).Info("running feed-variability study")

	registry := experiment.NewRegistry()
	results, err := automation.RunMonteCarlo(context.Background(), mcCfg, registry)
	if err != nil {
		return err
	}

	mean, min, max, failed := automation.MonteCarloStats(results)
	fmt.Printf("trials: %d (%d failed)\n", len(results), failed)
	fmt.Printf("conversion: mean %.6f, min %.6f, max %.6f\n", mean, min, max)

	conversions := make([]float64, 0, len(results))
	for _, r := range results {
		if r.Err == nil {
			conversions = append(conversions, r.Conversion)
		}
	}
	if len(conversions) > 1 {
		graph := asciigraph.Plot(conversions,
			asciigraph.Height(8),
			asciigraph.Width(70),
			asciigraph.Caption("conversion per trial"),
		)
		fmt.Println()
		fmt.Println(graph)
	}

	return nil
}
