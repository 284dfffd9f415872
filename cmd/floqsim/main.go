package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/san-kum/floqsim/internal/config"
	"github.com/san-kum/floqsim/internal/experiment"
	"github.com/san-kum/floqsim/internal/storage"
	"github.com/san-kum/floqsim/internal/viz"
)

var (
	dataDir string
	verbose bool

	ej        float64
	ec        float64
	ng        float64
	nCharge   int
	nMax      int
	mMax      int
	frequency float64
	detuning  float64
	coupling  string
	ampStart  float64
	ampStop   float64
	ampSteps  int
	levels    int
	workers   int

	configFile string
	preset     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "floqsim",
		Short: "Floquet quasi-energy spectroscopy of driven superconducting qubits",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".floqsim", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum [variant]",
		Short: "print the bare qubit spectrum",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSpectrum,
	}
	addQubitFlags(spectrumCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep [variant]",
		Short: "run an amplitude sweep and plot the ac-Stark curves",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSweep,
	}
	addQubitFlags(sweepCmd)
	addDriveFlags(sweepCmd)

	liveCmd := &cobra.Command{
		Use:   "live [variant]",
		Short: "run an amplitude sweep with live visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addQubitFlags(liveCmd)
	addDriveFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a stored run to CSV",
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
		Use:   "presets [variant]",
		Short: "list available presets for a qubit variant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for variant: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(spectrumCmd, sweepCmd, liveCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addQubitFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&ej, "ej", config.DefaultEj, "Josephson energy (GHz)")
	cmd.Flags().Float64Var(&ec, "ec", config.DefaultEc, "charging energy (GHz)")
	cmd.Flags().Float64Var(&ng, "ng", 0, "charge offset")
	cmd.Flags().IntVar(&nCharge, "n-charge", config.DefaultNCharge, "charge basis half range")
	cmd.Flags().IntVar(&nMax, "n-max", config.DefaultNMax, "kept energy eigenstates")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func addDriveFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&mMax, "m-max", config.DefaultMMax, "drive photon half range")
	cmd.Flags().Float64Var(&frequency, "freq", 0, "drive frequency (GHz, 0 = qubit freq + detuning)")
	cmd.Flags().Float64Var(&detuning, "detuning", config.DefaultDetuning, "drive detuning from the qubit (GHz)")
	cmd.Flags().StringVar(&coupling, "coupling", "charge-number", "drive coupling scheme")
	cmd.Flags().Float64Var(&ampStart, "amp-start", 0, "first drive amplitude (GHz)")
	cmd.Flags().Float64Var(&ampStop, "amp-stop", config.DefaultAmpStop, "last drive amplitude (GHz)")
	cmd.Flags().IntVar(&ampSteps, "amp-steps", config.DefaultAmpSteps, "sweep points")
	cmd.Flags().IntVar(&levels, "levels", 3, "tracked qubit levels")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel diagonalizations (0 = all cores)")
}

func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// buildConfig resolves precedence: preset, then config file, then explicit
// CLI flags on top.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	variant := "transmon"
	if len(args) > 0 {
		variant = args[0]
	}

	cfg := config.DefaultConfig()
	cfg.Qubit.Variant = variant

	if preset != "" {
		p := config.GetPreset(variant, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(variant))
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

	flagOverrides := map[string]func(){
		"ej":        func() { cfg.Qubit.Ej = ej },
		"ec":        func() { cfg.Qubit.Ec = ec },
		"ng":        func() { cfg.Qubit.Ng = ng },
		"n-charge":  func() { cfg.Qubit.NCharge = nCharge },
		"n-max":     func() { cfg.Qubit.NMax = nMax },
		"m-max":     func() { cfg.Drive.MMax = mMax },
		"freq":      func() { cfg.Drive.Frequency = frequency },
		"detuning":  func() { cfg.Drive.Detuning = detuning },
		"coupling":  func() { cfg.Drive.Coupling = coupling },
		"amp-start": func() { cfg.Sweep.AmpStart = ampStart },
		"amp-stop":  func() { cfg.Sweep.AmpStop = ampStop },
		"amp-steps": func() { cfg.Sweep.AmpSteps = ampSteps },
		"levels":    func() { cfg.Sweep.Levels = levels },
		"workers":   func() { cfg.Sweep.Workers = workers },
	}
	for name, apply := range flagOverrides {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}

	return cfg, nil
}

func runSpectrum(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	exp := experiment.New(cfg, newLogger())
	if err := exp.Setup(); err != nil {
		return err
	}

	spec := exp.Spectrum()
	fmt.Printf("%s spectrum (Ej=%.3g, Ec=%.3g, ng=%.3g)\n\n", cfg.Qubit.Variant, cfg.Qubit.Ej, cfg.Qubit.Ec, cfg.Qubit.Ng)
	fmt.Println(spec)
	fmt.Println()

	energies := exp.Driven().BareEnergies()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LEVEL\tENERGY (GHz)")
	for i, e := range energies {
		fmt.Fprintf(w, "%d\t%.6f\n", i, e)
	}
	return w.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	exp := experiment.New(cfg, newLogger())
	if err := exp.Setup(); err != nil {
		return err
	}

	res, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	runID, err := st.Save(cfg.Qubit.Variant, cfg.Drive.Coupling, res.Spectrum, res.Sweep, res.Metrics)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", res.Elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("drive frequency: %.6f GHz\n", res.Frequency)
	fmt.Println("\nmetrics:")
	for name, val := range res.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}
	fmt.Println()

	plotCurves(res.Sweep.QubitFreq, res.Sweep.Anharmonicity)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	exp := experiment.New(cfg, newLogger())
	if err := exp.Setup(); err != nil {
		return err
	}

	m, err := viz.NewModel(exp.Driven(), exp.Frequency(), cfg.Amplitudes())
	if err != nil {
		return err
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
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
	fmt.Fprintln(w, "ID\tVARIANT\tCOUPLING\tTIME\tFREQ (GHz)\tPOINTS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.4f\t%d\n",
			run.ID,
			run.Variant,
			run.Coupling,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frequency,
			run.Points,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	res, err := st.LoadCurves(args[0])
	if err != nil {
		return err
	}
	if len(res.Amplitudes) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("variant: %s\n", meta.Variant)
	fmt.Printf("drive frequency: %.6f GHz\n\n", meta.Frequency)

	plotCurves(res.QubitFreq, res.Anharmonicity)
	return nil
}

func plotCurves(qubitFreq, anharm []float64) {
	graph := asciigraph.Plot(qubitFreq,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("qubit frequency (GHz) vs amplitude"),
	)
	fmt.Println(graph)
	fmt.Println()

	mhz := make([]float64, len(anharm))
	for i, a := range anharm {
		mhz[i] = a * 1e3
	}
	graph = asciigraph.Plot(mhz,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("anharmonicity (MHz) vs amplitude"),
	)
	fmt.Println(graph)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	res, err := st.LoadCurves(args[0])
	if err != nil {
		return err
	}
	if len(res.Amplitudes) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"amplitude"}
	for i := range res.Energies[0] {
		header = append(header, fmt.Sprintf("e%d", i))
	}
	header = append(header, "qubit_freq", "anharmonicity")
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range res.Amplitudes {
		row := []string{strconv.FormatFloat(res.Amplitudes[i], 'f', 9, 64)}
		for _, e := range res.Energies[i] {
			row = append(row, strconv.FormatFloat(e, 'f', 9, 64))
		}
		row = append(row,
			strconv.FormatFloat(res.QubitFreq[i], 'f', 9, 64),
			strconv.FormatFloat(res.Anharmonicity[i], 'f', 9, 64))
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	res, err := st.LoadCurves(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSONStdout(meta, res)
}
