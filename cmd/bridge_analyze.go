package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gospan/internal/bridge"
	"github.com/alexiusacademia/gospan/internal/config"
	"github.com/alexiusacademia/gospan/internal/diagram"
	"github.com/alexiusacademia/gospan/internal/frame"
)

var (
	// Input file
	analyzeConfig string

	// Geometry and girder
	analyzeSpans    []float64
	analyzeModulus  float64
	analyzeFc       float64
	analyzeArea     float64
	analyzeInertia  float64
	analyzeSection  string
	analyzeSupports []string

	// Loading (kN/m, kN)
	analyzeDead       float64
	analyzeLive       float64
	analyzePoints     []string
	analyzeSelfWeight bool
	analyzeCombo      string

	// Mesh and output
	analyzeSubdivisions int
	analyzePlot         string
	analyzeASCII        bool
)

var bridgeAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute support reactions of a continuous beam bridge",
	Long: `Build a 2D beam model of a continuous girder, solve it by the
direct stiffness method and report the support reactions together with
a load balance check, the deflected shape and the bending moments.

Without a configuration file the built-in three-span example is used:
20 m + 25 m + 20 m, E = 34.5 GPa, A = 0.45 m², I = 0.082 m⁴,
11.25 kN/m dead load, 15 kN/m live load and two 125 kN vehicle loads
over the interior piers.

Examples:
  # Built-in example
  gospan bridge analyze

  # From a configuration file, factored with the governing combination
  gospan bridge analyze --config bridge.yaml --combo governing

  # Two spans, midspan vehicle load, finer mesh and PNG charts
  gospan bridge analyze --spans 30,30 --dead 12 --live 9 \
      --point 15:300 --subdivisions 10 --plot out/bridge.png`,
	RunE: runBridgeAnalyze,
}

func init() {
	bridgeCmd.AddCommand(bridgeAnalyzeCmd)
	f := bridgeAnalyzeCmd.Flags()

	f.StringVarP(&analyzeConfig, "config", "f", "", "Bridge configuration file (.yaml, .toml)")

	// Geometry flags
	f.Float64SliceVar(&analyzeSpans, "spans", nil, "Span lengths (m), comma separated")
	f.StringSliceVar(&analyzeSupports, "supports", nil, "Support types left to right (pin, roller, fixed)")

	// Girder flags
	f.Float64Var(&analyzeModulus, "modulus", 0, "Elastic modulus E (GPa)")
	f.Float64Var(&analyzeFc, "fc", 0, "Concrete strength f'c (MPa), used when --modulus is not given")
	f.Float64Var(&analyzeArea, "area", 0, "Cross-sectional area A (m²)")
	f.Float64Var(&analyzeInertia, "inertia", 0, "Second moment of area I (m⁴)")
	f.StringVar(&analyzeSection, "section", "", "Polygon section file (vertices in mm)")

	// Load flags
	f.Float64VarP(&analyzeDead, "dead", "d", 0, "Dead line load (kN/m)")
	f.Float64VarP(&analyzeLive, "live", "l", 0, "Live line load (kN/m)")
	f.StringSliceVarP(&analyzePoints, "point", "p", nil, "Point live load as position:force (m:kN), repeatable")
	f.BoolVar(&analyzeSelfWeight, "self-weight", false, "Add girder self weight to the dead load")
	f.StringVarP(&analyzeCombo, "combo", "c", "", "Load combination ID (S, 1, 2, 3, 6) or 'governing'")

	// Mesh and output flags
	f.IntVarP(&analyzeSubdivisions, "subdivisions", "n", 0, "Elements per span")
	f.StringVar(&analyzePlot, "plot", "", "Export charts to this file (.png, .svg, .pdf)")
	f.BoolVar(&analyzeASCII, "ascii", true, "Print ASCII diagrams")
}

func runBridgeAnalyze(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())

	cfg := config.DefaultConfig()
	if analyzeConfig != "" {
		loaded, err := config.Load(analyzeConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
		logger.Debug("loaded configuration", "path", analyzeConfig, "name", cfg.Name)
	}
	if err := applyAnalyzeFlags(cmd, cfg); err != nil {
		return err
	}

	params, err := cfg.Parameters()
	if err != nil {
		return err
	}
	combo, err := cfg.LoadCombination(params)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	b, err := bridge.Build(params, combo, frame.WithLogger(logger))
	if err != nil {
		return err
	}
	res, err := b.Analyze()
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	prog.done("analysis complete", "nodes", len(b.Stations), "dofs", b.Model.NumDOF())

	out := cmd.OutOrStdout()
	printBridgeReport(out, cfg.Name, params, res)

	data := diagramData(cfg.Name, params, res)
	if cfg.Output.ASCII {
		fmt.Fprint(out, diagram.DrawBridgeLayout(data))
		fmt.Fprint(out, diagram.DrawReactionBars(data))
		fmt.Fprintln(out)
		fmt.Fprint(out, diagram.DrawDeflectionGraph(data))
		fmt.Fprintln(out)
		fmt.Fprint(out, diagram.DrawMomentGraph(data))
		fmt.Fprintln(out)
	}

	if cfg.Output.Plot != "" {
		paths, err := diagram.ExportCombinedDiagram(data, cfg.Output.Plot)
		if err != nil {
			return fmt.Errorf("exporting charts: %w", err)
		}
		for _, p := range paths {
			logger.Info("chart written", "path", p)
		}
	}

	if !res.Balanced() {
		logger.Warn("load balance error exceeds tolerance", "error_pct", res.BalanceError, "tolerance_pct", bridge.BalanceTolerance)
	}
	return nil
}

// applyAnalyzeFlags overrides configuration values with flags the user set.
func applyAnalyzeFlags(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed("spans") {
		cfg.Spans = analyzeSpans
	}
	if f.Changed("supports") {
		cfg.Supports = analyzeSupports
	}
	if f.Changed("modulus") {
		cfg.Material.Modulus = analyzeModulus * 1e9
	}
	if f.Changed("fc") {
		cfg.Material.Fc = analyzeFc
		if !f.Changed("modulus") {
			cfg.Material.Modulus = 0
		}
	}
	if f.Changed("area") {
		cfg.Section.Area = analyzeArea
	}
	if f.Changed("inertia") {
		cfg.Section.Inertia = analyzeInertia
	}
	if f.Changed("section") {
		cfg.Section.File = analyzeSection
	}
	if f.Changed("dead") {
		cfg.Loads.Dead = analyzeDead * 1000
	}
	if f.Changed("live") {
		cfg.Loads.Live = analyzeLive * 1000
	}
	if f.Changed("self-weight") {
		cfg.Loads.SelfWeight = analyzeSelfWeight
	}
	if f.Changed("point") {
		cfg.Loads.PointLoads = nil
		for _, s := range analyzePoints {
			pl, err := parsePointLoad(s)
			if err != nil {
				return err
			}
			cfg.Loads.PointLoads = append(cfg.Loads.PointLoads, pl)
		}
	}
	if f.Changed("combo") {
		cfg.Combination = analyzeCombo
	}
	if f.Changed("subdivisions") {
		cfg.Mesh.Subdivisions = analyzeSubdivisions
	}
	if f.Changed("plot") {
		cfg.Output.Plot = analyzePlot
	}
	if f.Changed("ascii") {
		cfg.Output.ASCII = analyzeASCII
	}
	return nil
}

// parsePointLoad parses "position:force" in m and kN.
func parsePointLoad(s string) (config.PointLoadConfig, error) {
	pos, force, ok := strings.Cut(s, ":")
	if !ok {
		return config.PointLoadConfig{}, fmt.Errorf("point load %q: expected position:force", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(pos), 64)
	if err != nil {
		return config.PointLoadConfig{}, fmt.Errorf("point load %q: bad position: %w", s, err)
	}
	p, err := strconv.ParseFloat(strings.TrimSpace(force), 64)
	if err != nil {
		return config.PointLoadConfig{}, fmt.Errorf("point load %q: bad force: %w", s, err)
	}
	return config.PointLoadConfig{Position: x, Force: p * 1000}, nil
}

func diagramData(name string, p bridge.Parameters, res *bridge.Result) diagram.BridgeDiagramData {
	data := diagram.BridgeDiagramData{
		Title:    name,
		Spans:    p.Spans,
		SupportX: p.SupportPositions(),
		LineLoad: res.LineLoad,
	}
	for _, pl := range p.PointLoads {
		data.PointLoadX = append(data.PointLoadX, pl.Position)
	}
	for _, r := range res.Reactions {
		data.Reactions = append(data.Reactions, r.Ry)
	}
	for _, d := range res.Deflections {
		data.Deflections = append(data.Deflections, diagram.Point{X: d.X, Y: d.Value})
	}
	for _, m := range res.Moments {
		data.Moments = append(data.Moments, diagram.Point{X: m.X, Y: m.Value})
	}
	return data
}

func printBridgeReport(out io.Writer, name string, p bridge.Parameters, res *bridge.Result) {
	printBanner(out, "CONTINUOUS BEAM BRIDGE SUPPORT REACTIONS")
	if name != "" {
		fmt.Fprintf(out, "  Bridge: %s\n\n", name)
	}

	// Input summary
	printHeading(out, "INPUT DATA:")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	spans := make([]string, len(p.Spans))
	for i, s := range p.Spans {
		spans[i] = strconv.FormatFloat(s, 'f', -1, 64) + " m"
	}
	fmt.Fprintf(w, "  Spans:\t%s (total %.1f m)\n", strings.Join(spans, " + "), p.TotalLength())
	fmt.Fprintf(w, "  Elastic Modulus (E):\t%.1f GPa\n", p.E/1e9)
	fmt.Fprintf(w, "  Area (A):\t%.4f m²\n", p.A)
	fmt.Fprintf(w, "  Inertia (I):\t%.5f m⁴\n", p.I)
	fmt.Fprintf(w, "  Dead Load (D):\t%.2f kN/m\n", p.DeadLoad/1000)
	fmt.Fprintf(w, "  Live Load (L):\t%.2f kN/m\n", p.LiveLoad/1000)
	for i, pl := range p.PointLoads {
		fmt.Fprintf(w, "  Point Load %d:\t%.1f kN at x = %.2f m\n", i+1, pl.Force/1000, pl.Position)
	}
	fmt.Fprintf(w, "  Elements per span:\t%d\n", max(p.Subdivisions, 1))
	w.Flush()
	fmt.Fprintln(out)

	// Loading
	printHeading(out, "LOAD COMBINATION:")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Combination:\t%s (%s)\n", res.Combination.ID, res.Combination.Description)
	fmt.Fprintf(w, "  Factored line load (w):\t%.2f kN/m\n", res.LineLoad/1000)
	w.Flush()
	fmt.Fprintln(out)

	// Reactions
	printHeading(out, "SUPPORT REACTIONS:")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Support\tx (m)\tType\tRy (kN)\tRx (kN)\tMz (kN-m)\n")
	fmt.Fprintf(w, "  ───────\t─────\t────\t───────\t───────\t─────────\n")
	for _, r := range res.Reactions {
		kind := "interior"
		if r.IsEnd(len(res.Reactions)) {
			kind = "end"
		}
		fmt.Fprintf(w, "  %d\t%.2f\t%s\t%.2f\t%.2f\t%.2f\n", r.Support, r.X, kind, r.Ry/1000, r.Rx/1000, r.Mz/1000)
	}
	w.Flush()
	fmt.Fprintln(out)

	// Equilibrium
	printHeading(out, "LOAD BALANCE:")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Total applied load:\t%.2f kN\n", res.TotalLoad/1000)
	fmt.Fprintf(w, "  Total vertical reaction:\t%.2f kN\n", res.TotalReaction/1000)
	fmt.Fprintf(w, "  Balance error:\t%.4f%%\t%s\n", res.BalanceError,
		status(res.Balanced(), fmt.Sprintf("≤ %.2f%%", bridge.BalanceTolerance), fmt.Sprintf("> %.2f%%", bridge.BalanceTolerance)))
	w.Flush()
	fmt.Fprintln(out)

	// Distribution
	printHeading(out, "REACTION DISTRIBUTION:")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	maxR, minR := res.MaxReaction(), res.MinReaction()
	fmt.Fprintf(w, "  Maximum reaction:\t%.2f kN (support %d)\n", maxR.Ry/1000, maxR.Support)
	fmt.Fprintf(w, "  Minimum reaction:\t%.2f kN (support %d)\n", minR.Ry/1000, minR.Support)
	if res.InteriorEndRatio != 0 {
		fmt.Fprintf(w, "  Interior / end ratio:\t%.2f\n", res.InteriorEndRatio)
	}
	fmt.Fprintf(w, "  Maximum deflection:\t%.2f mm at x = %.2f m\n", res.MaxDeflection*1000, res.MaxDeflectionAt)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprint(out, diagram.DrawSummaryBox("RESULT", []string{
		fmt.Sprintf("ΣR = %.1f kN  (applied %.1f kN)", res.TotalReaction/1000, res.TotalLoad/1000),
		fmt.Sprintf("Balance error = %.4f%%", res.BalanceError),
		fmt.Sprintf("Solved in %s", res.Elapsed),
	}))
	fmt.Fprintln(out)
}
