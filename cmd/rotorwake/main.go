package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/rotorwake/internal/bem"
	"github.com/san-kum/rotorwake/internal/config"
	"github.com/san-kum/rotorwake/internal/momentum"
	"github.com/san-kum/rotorwake/internal/rotor"
	"github.com/san-kum/rotorwake/internal/solver"
	"github.com/san-kum/rotorwake/internal/viz"
	"github.com/san-kum/rotorwake/internal/wake"
	"github.com/spf13/cobra"
)

var (
	modelName string
	yawDeg    float64
	loading   float64
	beta      float64
	eps       float64
	maxiter   int
	relax     float64
	// Sweep range
	sweepFrom  float64
	sweepTo    float64
	sweepSteps int
	csvPath    string
	jsonPath   string
	// Distribution
	rotorName string
	annuli    int
	tsr       float64
	// Config file / preset
	configFile string
	preset     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rotorwake",
		Short: "unified momentum theory solver for yawed actuator disks",
	}

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "solve a single operating point",
		RunE:  runSolve,
	}
	addModelFlags(solveCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep the loading coefficient and plot the response",
		RunE:  runSweep,
	}
	addModelFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0, "sweep start loading")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 4, "sweep end loading")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 40, "sweep steps")
	sweepCmd.Flags().StringVar(&csvPath, "csv", "", "write sweep results to CSV")
	sweepCmd.Flags().StringVar(&jsonPath, "json", "", "write sweep results to JSON")

	distCmd := &cobra.Command{
		Use:   "distribution",
		Short: "solve a per-annulus radial distribution for a rotor preset",
		RunE:  runDistribution,
	}
	addModelFlags(distCmd)
	distCmd.Flags().StringVar(&rotorName, "rotor", "iea15mw", "rotor preset")
	distCmd.Flags().IntVar(&annuli, "annuli", config.DefaultAnnuli, "number of annuli")
	distCmd.Flags().Float64Var(&tsr, "tsr", 0, "tip speed ratio (default: rotor rated)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list run and rotor presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("run presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			fmt.Println("rotor presets:")
			for _, p := range rotor.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list momentum model variants",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tVARIABLES\tDESCRIPTION")
			fmt.Fprintln(w, "limited\t-\tclosed-form limiting case (v4 << u4)")
			fmt.Fprintln(w, "heck\tan,u4,v4\titerative coupled-velocity model")
			fmt.Fprintln(w, "unified\tan,u4,v4,dp\tunified model with nonlinear pressure")
			fmt.Fprintln(w, "thrust\tan,u4,v4,dp,Ctprime\tunified model parameterized by Ct")
			return w.Flush()
		},
	}

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactively explore loading and yaw",
		RunE:  runExplore,
	}
	addModelFlags(exploreCmd)

	rootCmd.AddCommand(solveCmd, sweepCmd, distCmd, presetsCmd, modelsCmd, exploreCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addModelFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&modelName, "model", "unified", "momentum model (limited|heck|unified|thrust)")
	cmd.Flags().Float64Var(&yawDeg, "yaw", 0, "yaw angle in degrees")
	cmd.Flags().Float64Var(&loading, "ct", 2.0, "loading coefficient (Ctprime, or Ct for thrust model)")
	cmd.Flags().Float64Var(&beta, "beta", config.DefaultBeta, "near-wake length parameter")
	cmd.Flags().Float64Var(&eps, "eps", config.DefaultEps, "convergence tolerance")
	cmd.Flags().IntVar(&maxiter, "maxiter", 0, "iteration ceiling (0: model default)")
	cmd.Flags().Float64Var(&relax, "relax", 0, "relaxation override (0: model default)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a run preset")
}

// effectiveConfig merges preset, config file and explicitly-set flags, in
// that order of precedence.
func effectiveConfig(cmd *cobra.Command) (*config.Config, error) {
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
			return nil, err
		}
		cfg = loaded
	}

	f := cmd.Flags()
	if f.Changed("model") {
		cfg.Model = modelName
	}
	if f.Changed("yaw") {
		cfg.Yaw = yawDeg
	}
	if f.Changed("ct") {
		cfg.Loading = loading
	}
	if f.Changed("beta") {
		cfg.Beta = beta
	}
	if f.Changed("eps") {
		cfg.Eps = eps
	}
	if f.Changed("maxiter") {
		cfg.MaxIter = maxiter
	}
	if f.Changed("relax") {
		cfg.Relax = relax
	}
	return cfg, nil
}

// buildModel constructs the selected momentum model with the config's tuning.
func buildModel(cfg *config.Config) (momentum.Model, error) {
	switch cfg.Model {
	case "limited":
		return momentum.NewLimitedHeck(), nil
	case "heck":
		m := momentum.NewHeck()
		m.Eps = cfg.Eps
		if cfg.MaxIter > 0 {
			m.MaxIter = cfg.MaxIter
		}
		m.Relax = solver.RelaxPolicy{
			Threshold: cfg.RelaxThreshold,
			Low:       cfg.RelaxLow,
			High:      cfg.RelaxHigh,
		}
		return m, nil
	case "unified":
		m := momentum.NewUnifiedMomentum()
		m.Beta = cfg.Beta
		m.Eps = cfg.Eps
		if cfg.MaxIter > 0 {
			m.MaxIter = cfg.MaxIter
		}
		if cfg.Relax > 0 {
			m.Relax = cfg.Relax
		}
		return m, nil
	case "thrust":
		m := momentum.NewThrustBasedUnified()
		m.Unified.Beta = cfg.Beta
		m.Eps = cfg.Eps
		if cfg.MaxIter > 0 {
			m.MaxIter = cfg.MaxIter
		}
		if cfg.Relax > 0 {
			m.Relax = cfg.Relax
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unknown model: %s", cfg.Model)
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return err
	}
	model, err := buildModel(cfg)
	if err != nil {
		return err
	}

	yaw := cfg.Yaw * math.Pi / 180
	sol := model.Solve(wake.Scalar(cfg.Loading), yaw)

	fmt.Println(viz.HeaderStyle.Render(fmt.Sprintf("%s model @ Ct'=%.3f yaw=%.1f°", cfg.Model, cfg.Loading, cfg.Yaw)))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "an\t%.6f\n", sol.An.At(0))
	fmt.Fprintf(w, "u4\t%.6f\n", sol.U4.At(0))
	fmt.Fprintf(w, "v4\t%.6f\n", sol.V4.At(0))
	fmt.Fprintf(w, "dp\t%.6f\n", sol.Dp.At(0))
	fmt.Fprintf(w, "dp_NL\t%.6f\n", sol.DpNL.At(0))
	fmt.Fprintf(w, "Ct\t%.6f\n", sol.Ct().At(0))
	fmt.Fprintf(w, "Cp\t%.6f\n", sol.Cp().At(0))
	fmt.Fprintf(w, "x0\t%.4f\n", sol.X0().At(0))
	fmt.Fprintf(w, "niter\t%d\n", sol.Niter)
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Println(viz.Status(sol.Converged))
	if !sol.Converged {
		return fmt.Errorf("solve: %w after %d iterations", wake.ErrNotConverged, sol.Niter)
	}
	return nil
}

type sweepPoint struct {
	Loading   float64 `json:"loading"`
	An        float64 `json:"an"`
	U4        float64 `json:"u4"`
	V4        float64 `json:"v4"`
	Dp        float64 `json:"dp"`
	Ct        float64 `json:"ct"`
	Cp        float64 `json:"cp"`
	Niter     int     `json:"niter"`
	Converged bool    `json:"converged"`
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return err
	}
	model, err := buildModel(cfg)
	if err != nil {
		return err
	}

	if sweepSteps < 2 {
		return fmt.Errorf("sweep needs at least 2 steps")
	}
	yaw := cfg.Yaw * math.Pi / 180

	points := make([]sweepPoint, sweepSteps)
	cps := make([]float64, sweepSteps)
	ans := make([]float64, sweepSteps)
	for i := 0; i < sweepSteps; i++ {
		ct := sweepFrom + (sweepTo-sweepFrom)*float64(i)/float64(sweepSteps-1)
		sol := model.Solve(wake.Scalar(ct), yaw)
		points[i] = sweepPoint{
			Loading:   ct,
			An:        sol.An.At(0),
			U4:        sol.U4.At(0),
			V4:        sol.V4.At(0),
			Dp:        sol.Dp.At(0),
			Ct:        sol.Ct().At(0),
			Cp:        sol.Cp().At(0),
			Niter:     sol.Niter,
			Converged: sol.Converged,
		}
		cps[i] = points[i].Cp
		ans[i] = points[i].An
	}

	fmt.Println(viz.HeaderStyle.Render(fmt.Sprintf("%s model, yaw=%.1f°, Ct' %g..%g", cfg.Model, cfg.Yaw, sweepFrom, sweepTo)))
	fmt.Println(viz.Plot(cps, "Cp vs loading"))
	fmt.Println()
	fmt.Println(viz.Plot(ans, "an vs loading"))

	if csvPath != "" {
		if err := writeSweepCSV(csvPath, points); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", csvPath)
	}
	if jsonPath != "" {
		if err := writeSweepJSON(jsonPath, points); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", jsonPath)
	}
	return nil
}

func writeSweepCSV(path string, points []sweepPoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"loading", "an", "u4", "v4", "dp", "ct", "cp", "niter", "converged"}); err != nil {
		return err
	}
	for _, p := range points {
		rec := []string{
			strconv.FormatFloat(p.Loading, 'g', -1, 64),
			strconv.FormatFloat(p.An, 'g', -1, 64),
			strconv.FormatFloat(p.U4, 'g', -1, 64),
			strconv.FormatFloat(p.V4, 'g', -1, 64),
			strconv.FormatFloat(p.Dp, 'g', -1, 64),
			strconv.FormatFloat(p.Ct, 'g', -1, 64),
			strconv.FormatFloat(p.Cp, 'g', -1, 64),
			strconv.Itoa(p.Niter),
			strconv.FormatBool(p.Converged),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func writeSweepJSON(path string, points []sweepPoint) error {
	data, err := json.MarshalIndent(points, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func runDistribution(cmd *cobra.Command, args []string) error {
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return err
	}
	model, err := buildModel(cfg)
	if err != nil {
		return err
	}

	def := rotor.GetPreset(rotorName)
	if def == nil {
		return fmt.Errorf("unknown rotor: %s (available: %v)", rotorName, rotor.ListPresets())
	}
	if tsr == 0 {
		tsr = def.RatedTSR
	}

	geom := bem.NewGeometry(annuli)
	yaw := cfg.Yaw * math.Pi / 180

	// Uniform loading across the disk, solved in one vectorized call so the
	// whole distribution shares a single iteration count.
	ctprime := make(wake.Field, geom.Nr())
	for i := range ctprime {
		ctprime[i] = cfg.Loading
	}
	sol := model.Solve(ctprime, yaw)
	if !sol.Converged {
		return fmt.Errorf("distribution: %w after %d iterations", wake.ErrNotConverged, sol.Niter)
	}

	aprime := tangentialEstimate(sol, def, geom, tsr, yaw)

	fmt.Println(viz.HeaderStyle.Render(fmt.Sprintf("%s, %s model, %d annuli, yaw=%.1f°", def.Name, cfg.Model, geom.Nr(), cfg.Yaw)))
	fmt.Println(viz.Plot(sol.An, "an vs r/R"))
	fmt.Println()
	fmt.Println(viz.Plot(aprime, "a' vs r/R"))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "disk-averaged Ct\t%.4f\n", geom.Average(sol.Ct()))
	fmt.Fprintf(w, "disk-averaged Cp\t%.4f\n", geom.Average(sol.Cp()))
	fmt.Fprintf(w, "disk-averaged an\t%.4f\n", geom.Average(sol.An))
	fmt.Fprintf(w, "niter\t%d\n", sol.Niter)
	return w.Flush()
}

// tangentialEstimate runs the default tangential induction model on a crude
// aerodynamic closure: W from the velocity triangle, Ctan from the local
// torque balance. Good enough for a diagnostic column without airfoil polars.
func tangentialEstimate(sol momentum.Solution, def *rotor.Definition, geom *bem.Geometry, tsr, yaw float64) wake.Field {
	n := geom.Nr()
	w := make(wake.Field, n)
	ctan := make(wake.Field, n)
	sigma := make(wake.Field, n)

	ct := sol.Ct()
	cosy := math.Cos(yaw)
	for i := 0; i < n; i++ {
		a := sol.An.At(i)
		mu := math.Max(geom.Mu[i], 0.1)
		axial := (1 - a) * cosy
		tangential := tsr * mu
		w[i] = math.Sqrt(axial*axial + tangential*tangential)
		ctan[i] = ct.At(i) * (1 - a) / tangential
		sigma[i] = def.Solidity(geom.Mu[i])
	}

	props := bem.AeroProperties{An: sol.An, W: w, Ctan: ctan, Solidity: sigma}
	return bem.NewDefaultTangentialInduction().Aprime(props, tsr, yaw, geom)
}

func runExplore(cmd *cobra.Command, args []string) error {
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return err
	}
	if _, err := buildModel(cfg); err != nil {
		return err
	}
	p := tea.NewProgram(newExploreModel(cfg))
	_, err = p.Run()
	return err
}
