package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/alexiusacademia/gobeam/internal/report"
)

var (
	// Beam definition
	analyzeLength   float64
	analyzeBoundary string
	analyzeSupportA float64
	analyzeSupportB float64
	analyzeElastic  float64
	analyzeYield    float64

	// Section
	analyzeShape       string
	analyzeWidth       float64
	analyzeHeight      float64
	analyzeFlangeWidth float64
	analyzeFlangeThk   float64
	analyzeWebThk      float64

	// Base load (used when no load flags are given)
	analyzeForce    float64
	analyzePosition float64

	// Load list
	analyzePoints  []string
	analyzeUDLs    []string
	analyzeTris    []string
	analyzeMoments []string

	// Output options
	analyzeSamples     int
	analyzeShowDiagram bool
	analyzeExportFile  string
	analyzeReportFile  string
	analyzeXLSXFile    string
)

var beamAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Solve reactions, diagrams and piecewise V/M polynomials",
	Long: `Solve static equilibrium for the beam under its load set, sweep the
shear and bending moment diagrams, and derive the exact per-segment
polynomial expressions for V(x) and M(x).

Examples:
  # Simply supported 8 m beam, 50 kN downward at midspan
  gobeam beam analyze --length 8 --bc simply-supported \
    --shape rectangular --width 0.2 --height 0.5 \
    --elastic 200e9 --yield 250e6 --force -50000 --position 4

  # Overhanging beam with a mixed load set and ASCII diagrams
  gobeam beam analyze --length 10 --bc overhanging \
    --support-a 2 --support-b 8 \
    --point 1:-1000 --udl 3:7:-500 --tri 6:9:-800:left --moment 5:2000 \
    --diagram

  # Export a PDF calculation sheet and the diagram arrays
  gobeam beam analyze --length 8 --bc simply-supported \
    --force -50000 --position 4 --report beam.pdf --xlsx beam.xlsx`,
	Run: runBeamAnalyze,
}

func init() {
	beamCmd.AddCommand(beamAnalyzeCmd)

	// Beam flags
	beamAnalyzeCmd.Flags().Float64VarP(&analyzeLength, "length", "L", 0, "Beam length (m) [required]")
	beamAnalyzeCmd.Flags().StringVar(&analyzeBoundary, "bc", "simply-supported", "Boundary condition (cantilever|simply-supported|overhanging)")
	beamAnalyzeCmd.Flags().Float64Var(&analyzeSupportA, "support-a", 0, "Support A position for overhanging beams (m)")
	beamAnalyzeCmd.Flags().Float64Var(&analyzeSupportB, "support-b", 0, "Support B position for overhanging beams (m)")
	beamAnalyzeCmd.Flags().Float64VarP(&analyzeElastic, "elastic", "E", 200e9, "Young's modulus E (Pa)")
	beamAnalyzeCmd.Flags().Float64Var(&analyzeYield, "yield", 250e6, "Yield strength (Pa)")

	// Section flags
	beamAnalyzeCmd.Flags().StringVar(&analyzeShape, "shape", "rectangular", "Section shape (rectangular|circular|ibeam)")
	beamAnalyzeCmd.Flags().Float64VarP(&analyzeWidth, "width", "b", 0.2, "Section width (m)")
	beamAnalyzeCmd.Flags().Float64Var(&analyzeHeight, "height", 0.5, "Section depth, or diameter for circular (m)")
	beamAnalyzeCmd.Flags().Float64Var(&analyzeFlangeWidth, "flange-width", 0, "I-beam flange width (m)")
	beamAnalyzeCmd.Flags().Float64Var(&analyzeFlangeThk, "flange-thickness", 0, "I-beam flange thickness (m)")
	beamAnalyzeCmd.Flags().Float64Var(&analyzeWebThk, "web-thickness", 0, "I-beam web thickness (m)")

	// Load flags
	beamAnalyzeCmd.Flags().Float64VarP(&analyzeForce, "force", "P", 0, "Base point load (N, negative = downward)")
	beamAnalyzeCmd.Flags().Float64Var(&analyzePosition, "position", 0, "Base point load position (m)")
	beamAnalyzeCmd.Flags().StringArrayVar(&analyzePoints, "point", nil, "Point load x:P (repeatable)")
	beamAnalyzeCmd.Flags().StringArrayVar(&analyzeUDLs, "udl", nil, "Uniform load x1:x2:w (repeatable)")
	beamAnalyzeCmd.Flags().StringArrayVar(&analyzeTris, "tri", nil, "Triangular load x1:x2:q:side (repeatable)")
	beamAnalyzeCmd.Flags().StringArrayVar(&analyzeMoments, "moment", nil, "Applied moment x:M (repeatable)")

	// Output flags
	beamAnalyzeCmd.Flags().IntVarP(&analyzeSamples, "samples", "n", 400, "Diagram sweep sample count")
	beamAnalyzeCmd.Flags().BoolVar(&analyzeShowDiagram, "diagram", false, "Show ASCII shear/moment diagrams")
	beamAnalyzeCmd.Flags().StringVarP(&analyzeExportFile, "output", "o", "", "Export diagram plot to file (png, svg, pdf)")
	beamAnalyzeCmd.Flags().StringVar(&analyzeReportFile, "report", "", "Write a PDF calculation sheet to file")
	beamAnalyzeCmd.Flags().StringVar(&analyzeXLSXFile, "xlsx", "", "Write diagram arrays to an XLSX workbook")

	beamAnalyzeCmd.MarkFlagRequired("length")
}

func runBeamAnalyze(cmd *cobra.Command, args []string) {
	cfg, loads, err := buildAnalyzeCase()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	reactions := beam.SolveReactions(cfg, loads)
	diagrams := beam.SweepDiagrams(cfg, loads, reactions, analyzeSamples)
	segments := beam.BuildSegments(cfg, loads, reactions)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("                      BEAM ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")

	fmt.Println(diagram.BeamSketch(cfg, loads))

	// Input summary
	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Length (L):\t%g m\n", cfg.Length)
	fmt.Fprintf(w, "  Boundary condition:\t%s\n", cfg.Boundary)
	if cfg.Boundary == beam.Overhanging {
		supA, supB := cfg.Supports()
		fmt.Fprintf(w, "  Supports:\tA = %g m, B = %g m\n", supA, supB)
	}
	fmt.Fprintf(w, "  E:\t%.4g Pa\n", cfg.Elastic)
	props := cfg.Section.Properties()
	fmt.Fprintf(w, "  Section:\t%s\n", cfg.Section.Shape)
	fmt.Fprintf(w, "  Moment of inertia (I):\t%.6g m⁴\n", props.MomentOfInertia)
	fmt.Fprintf(w, "  Area:\t%.6g m²\n", props.Area)
	w.Flush()
	fmt.Println()

	fmt.Println("LOADS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for i, l := range loads {
		fmt.Fprintf(w, "  %d\t%s\n", i+1, describeLoad(l))
	}
	w.Flush()
	fmt.Println()

	// Reactions
	fmt.Println("SUPPORT REACTIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Ra:\t%.4f N\n", reactions.A)
	if cfg.Boundary == beam.Cantilever {
		fmt.Fprintf(w, "  Ma:\t%.4f N·m\n", reactions.MomentA)
	} else {
		fmt.Fprintf(w, "  Rb:\t%.4f N\n", reactions.B)
	}
	sumF, sumM := beam.Residual(cfg, loads, reactions, 0)
	equilibrium := "✓"
	if absFloat(sumF) > 1e-6 || absFloat(sumM) > 1e-6 {
		equilibrium = "⚠"
	}
	fmt.Fprintf(w, "  Equilibrium (ΣFy, ΣM):\t%.2e, %.2e %s\n", sumF, sumM, equilibrium)
	w.Flush()
	if reactions.Degenerate {
		fmt.Println("  ⚠ Coincident supports: results are numerically defined but not physical.")
	}
	fmt.Println()

	// Extremes from the sweep
	maxV, xV := maxAbsAt(diagrams.X, diagrams.V)
	maxM, xM := maxAbsAt(diagrams.X, diagrams.M)
	fmt.Println(diagram.DrawSummaryBox("DIAGRAM EXTREMA", []string{
		fmt.Sprintf("max |V| = %.4g N at x = %.4g m", maxV, xV),
		fmt.Sprintf("max |M| = %.4g N·m at x = %.4g m", maxM, xM),
	}))

	// Piecewise polynomials
	fmt.Println("PIECEWISE EXPRESSIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	for _, s := range segments {
		fmt.Printf("  x ∈ [%.4g, %.4g)\n", s.X1, s.X2)
		fmt.Printf("    V(x) = %s\n", beam.FormatPolynomial(s.Shear, "x"))
		fmt.Printf("    M(x) = %s\n", beam.FormatPolynomial(s.Moment, "x"))
	}
	fmt.Println()

	if analyzeShowDiagram {
		fmt.Println(diagram.ShearDiagram(diagrams, 61, 10))
		fmt.Println()
		fmt.Println(diagram.MomentDiagram(diagrams, 61, 10))
		fmt.Println()
	}

	if analyzeExportFile != "" {
		if err := diagram.ExportShearMomentDiagram(diagrams, analyzeExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", analyzeExportFile)
		}
	}

	if analyzeReportFile != "" || analyzeXLSXFile != "" {
		mesh := beam.SolveField(cfg, beam.FieldRequest{
			Magnitude: baseLoadOf(loads),
			Position:  basePositionOf(loads),
			NX:        60, NY: 12,
			Scale: 1,
		})
		summary := beam.Summarize(cfg, mesh)

		if analyzeReportFile != "" {
			err := report.WritePDF(report.BeamReport{
				Config:    cfg,
				Loads:     loads,
				Reactions: reactions,
				Summary:   summary,
				Segments:  segments,
			}, analyzeReportFile)
			if err != nil {
				fmt.Printf("Error writing report: %v\n", err)
			} else {
				fmt.Printf("Report written to: %s\n", analyzeReportFile)
			}
		}
		if analyzeXLSXFile != "" {
			if err := report.WriteDiagramsXLSX(diagrams, segments, analyzeXLSXFile); err != nil {
				fmt.Printf("Error writing workbook: %v\n", err)
			} else {
				fmt.Printf("Workbook written to: %s\n", analyzeXLSXFile)
			}
		}
	}
}

func buildAnalyzeCase() (beam.Config, []beam.Load, error) {
	bc, err := parseBoundary(analyzeBoundary)
	if err != nil {
		return beam.Config{}, nil, err
	}
	sec, err := parseSection(analyzeShape, analyzeWidth, analyzeHeight,
		analyzeFlangeWidth, analyzeFlangeThk, analyzeWebThk)
	if err != nil {
		return beam.Config{}, nil, err
	}

	cfg := beam.Config{
		Length:   analyzeLength,
		Boundary: bc,
		SupportA: analyzeSupportA,
		SupportB: analyzeSupportB,
		Elastic:  analyzeElastic,
		Yield:    analyzeYield,
		Section:  sec,
	}
	if cfg.Boundary == beam.Overhanging && cfg.SupportB == 0 {
		cfg.SupportB = cfg.Length
	}
	if err := cfg.Validate(); err != nil {
		return beam.Config{}, nil, err
	}

	explicit, err := parseLoads(analyzePoints, analyzeUDLs, analyzeTris, analyzeMoments)
	if err != nil {
		return beam.Config{}, nil, err
	}

	var lc beam.LoadCase
	if len(explicit) > 0 {
		lc = beam.ExplicitLoads(explicit)
	} else {
		lc = beam.SingleLoad(analyzeForce, analyzePosition)
	}
	return cfg, lc.Resolve(cfg.Length), nil
}

// describeLoad renders one load for the input summary table
func describeLoad(l beam.Load) string {
	switch l.Kind {
	case beam.PointLoad:
		return fmt.Sprintf("Point %g N at x = %g m", l.Magnitude, l.X)
	case beam.UniformLoad:
		return fmt.Sprintf("Uniform %g N/m over [%g, %g] m", l.Magnitude, l.X1, l.X2)
	case beam.TriangularLoad:
		return fmt.Sprintf("Triangular peak %g N/m (%s) over [%g, %g] m", l.Magnitude, l.Peak, l.X1, l.X2)
	case beam.AppliedMoment:
		return fmt.Sprintf("Moment %g N·m at x = %g m", l.Magnitude, l.X)
	}
	return "unknown"
}

// baseLoadOf picks the first point load for the closed-form field solver
func baseLoadOf(loads []beam.Load) float64 {
	for _, l := range loads {
		if l.Kind == beam.PointLoad {
			return l.Magnitude
		}
	}
	return 0
}

func basePositionOf(loads []beam.Load) float64 {
	for _, l := range loads {
		if l.Kind == beam.PointLoad {
			return l.X
		}
	}
	return 0
}

func maxAbsAt(xs, ys []float64) (maxAbs, at float64) {
	for i, y := range ys {
		if absFloat(y) > maxAbs {
			maxAbs = absFloat(y)
			at = xs[i]
		}
	}
	return maxAbs, at
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
