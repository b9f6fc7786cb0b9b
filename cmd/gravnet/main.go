package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/gravnet/internal/body"
	"github.com/san-kum/gravnet/internal/config"
	"github.com/san-kum/gravnet/internal/gen"
	"github.com/san-kum/gravnet/internal/metrics"
	"github.com/san-kum/gravnet/internal/report"
	"github.com/san-kum/gravnet/internal/sim"
	"github.com/san-kum/gravnet/internal/store"
	"github.com/san-kum/gravnet/internal/tui"
)

var (
	dataDir     string
	timePeriod  float64
	dt          float64
	bodies      int
	initialMass float64
	softening   float64
	velScale    float64
	workers     int
	seed        int64
	configFile  string
	preset      string
	progress    bool
	quiet       bool
	noSave      bool
	// Plot axes
	bodyIndex int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gravnet",
		Short: "distributed gravitational n-body simulator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".gravnet", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run simulation",
		RunE:  runSimulation,
	}
	runCmd.Flags().Float64Var(&timePeriod, "time", config.DefaultTimePeriod, "simulated time period")
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	runCmd.Flags().IntVar(&bodies, "bodies", config.DefaultBodies, "number of bodies")
	runCmd.Flags().Float64Var(&initialMass, "mass", config.DefaultInitialMass, "initial body mass scale")
	runCmd.Flags().Float64Var(&softening, "softening", config.DefaultSoftening, "softening length")
	runCmd.Flags().Float64Var(&velScale, "vel-scale", config.DefaultVelScale, "initial velocity scale")
	runCmd.Flags().IntVar(&workers, "workers", config.DefaultWorkers, "worker count (must divide bodies)")
	runCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().BoolVar(&progress, "progress", false, "show live progress")
	runCmd.Flags().BoolVar(&quiet, "quiet", false, "suppress text report on stdout")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not persist the run")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot acceleration history",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&bodyIndex, "body", -1, "plot a single body's |a| (default: mean over all bodies)")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// CLI flags override preset and config file.
	if cmd.Flags().Changed("time") || cfg.TimePeriod == 0 {
		cfg.TimePeriod = timePeriod
	}
	if cmd.Flags().Changed("dt") || cfg.Dt == 0 {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("bodies") || cfg.Bodies == 0 {
		cfg.Bodies = bodies
	}
	if cmd.Flags().Changed("mass") || cfg.InitialMass == 0 {
		cfg.InitialMass = initialMass
	}
	if cmd.Flags().Changed("softening") {
		cfg.Softening = softening
	}
	if cmd.Flags().Changed("vel-scale") {
		cfg.VelScale = velScale
	}
	if cmd.Flags().Changed("workers") || cfg.Workers == 0 {
		cfg.Workers = workers
	}
	if cmd.Flags().Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}

	simCfg := sim.Config{
		TimePeriod:    cfg.TimePeriod,
		Dt:            cfg.Dt,
		Softening:     cfg.Softening,
		Workers:       cfg.Workers,
		ValidateState: true,
	}

	snap := gen.Bodies(gen.Params{
		Bodies:      cfg.Bodies,
		InitialMass: cfg.InitialMass,
		VelScale:    cfg.VelScale,
		Seed:        cfg.Seed,
	})

	if !quiet {
		if err := report.WriteInitial(os.Stdout, snap, cfg.TimePeriod, cfg.Dt); err != nil {
			return err
		}
	}

	start := time.Now()

	var result *sim.Result
	var err error
	if progress {
		result, err = runWithProgress(simCfg, cfg, snap)
	} else {
		result, err = sim.New(simCfg).Run(context.Background(), snap)
	}
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	if !quiet {
		if err := report.WriteHistory(os.Stdout, result.History); err != nil {
			return err
		}
	}

	px, py := metrics.Momentum(result.Final)
	fmt.Fprintf(os.Stderr, "completed %d iterations in %v\n", result.Iterations, elapsed)
	fmt.Fprintf(os.Stderr, "energy drift: %.3e\n", result.EnergyDrift)
	fmt.Fprintf(os.Stderr, "momentum: (%.6g, %.6g)\n", px, py)

	if !noSave {
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(cfg, result)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "run id: %s\n", runID)
	}

	return nil
}

func runWithProgress(simCfg sim.Config, cfg *config.Config, snap body.Snapshot) (*sim.Result, error) {
	m := tui.NewModel(cfg.Bodies, cfg.Workers)
	p := tea.NewProgram(m, tea.WithOutput(os.Stderr))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var result *sim.Result
	var runErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		s := sim.New(simCfg)
		s.AddObserver(tui.NewObserver(p, cfg.Softening, simCfg.Iterations()))
		result, runErr = s.Run(ctx, snap)
		p.Send(tui.DoneMsg{Err: runErr})
	}()

	final, err := p.Run()
	if fm, ok := final.(tui.Model); ok && fm.Canceled() {
		cancel()
	}
	<-done

	if err != nil {
		return nil, err
	}
	return result, runErr
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tBODIES\tWORKERS\tPERIOD\tDT\tITERS\tDRIFT")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.2f\t%.4f\t%d\t%.2e\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Bodies,
			run.Workers,
			run.TimePeriod,
			run.Dt,
			run.Iterations,
			run.EnergyDrift,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	history, err := st.LoadHistory(runID)
	if err != nil {
		return err
	}
	if len(history) == 0 || meta.Bodies == 0 {
		return fmt.Errorf("no data to plot")
	}
	if bodyIndex >= meta.Bodies {
		return fmt.Errorf("body %d out of range (run has %d bodies)", bodyIndex, meta.Bodies)
	}

	iterations := len(history) / meta.Bodies
	data := make([]float64, iterations)
	for iter := 0; iter < iterations; iter++ {
		if bodyIndex >= 0 {
			a := history[iter*meta.Bodies+bodyIndex]
			data[iter] = math.Hypot(a.AX, a.AY)
			continue
		}
		sum := 0.0
		for i := 0; i < meta.Bodies; i++ {
			a := history[iter*meta.Bodies+i]
			sum += math.Hypot(a.AX, a.AY)
		}
		data[iter] = sum / float64(meta.Bodies)
	}

	caption := "mean |a| vs iteration"
	if bodyIndex >= 0 {
		caption = fmt.Sprintf("|a| of body %d vs iteration", bodyIndex)
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("bodies: %d, iterations: %d\n\n", meta.Bodies, iterations)

	graph := asciigraph.Plot(data,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	history, err := st.LoadHistory(runID)
	if err != nil {
		return err
	}

	return store.ExportJSON(os.Stdout, meta, history)
}
