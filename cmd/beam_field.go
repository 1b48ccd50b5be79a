package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/diagram"
)

var (
	// Beam definition
	fieldLength   float64
	fieldBoundary string
	fieldElastic  float64
	fieldYield    float64

	// Section
	fieldShape       string
	fieldWidth       float64
	fieldHeight      float64
	fieldFlangeWidth float64
	fieldFlangeThk   float64
	fieldWebThk      float64

	// Load and discretization
	fieldForce    float64
	fieldPosition float64
	fieldNX       int
	fieldNY       int
	fieldScale    float64

	fieldExportFile string
)

var beamFieldCmd = &cobra.Command{
	Use:   "field",
	Short: "Evaluate the closed-form stress and deflection field",
	Long: `Evaluate deflection, slope, bending moment and bending stress on a
regular grid using the Euler–Bernoulli closed-form expressions for a
single point load. Supported boundary conditions: cantilever and
simply supported.

Examples:
  # Simply supported 8 m beam, 50 kN downward at midspan
  gobeam beam field --length 8 --bc simply-supported \
    --shape rectangular --width 0.2 --height 0.5 \
    --elastic 200e9 --yield 250e6 --force -50000 --position 4

  # Cantilever with the deflected shape exported as a plot
  gobeam beam field --length 5 --bc cantilever \
    --force -1000 --position 5 --scale 200 --output deflected.png`,
	Run: runBeamField,
}

func init() {
	beamCmd.AddCommand(beamFieldCmd)

	beamFieldCmd.Flags().Float64VarP(&fieldLength, "length", "L", 0, "Beam length (m) [required]")
	beamFieldCmd.Flags().StringVar(&fieldBoundary, "bc", "simply-supported", "Boundary condition (cantilever|simply-supported)")
	beamFieldCmd.Flags().Float64VarP(&fieldElastic, "elastic", "E", 200e9, "Young's modulus E (Pa)")
	beamFieldCmd.Flags().Float64Var(&fieldYield, "yield", 250e6, "Yield strength (Pa)")

	beamFieldCmd.Flags().StringVar(&fieldShape, "shape", "rectangular", "Section shape (rectangular|circular|ibeam)")
	beamFieldCmd.Flags().Float64VarP(&fieldWidth, "width", "b", 0.2, "Section width (m)")
	beamFieldCmd.Flags().Float64Var(&fieldHeight, "height", 0.5, "Section depth, or diameter for circular (m)")
	beamFieldCmd.Flags().Float64Var(&fieldFlangeWidth, "flange-width", 0, "I-beam flange width (m)")
	beamFieldCmd.Flags().Float64Var(&fieldFlangeThk, "flange-thickness", 0, "I-beam flange thickness (m)")
	beamFieldCmd.Flags().Float64Var(&fieldWebThk, "web-thickness", 0, "I-beam web thickness (m)")

	beamFieldCmd.Flags().Float64VarP(&fieldForce, "force", "P", 0, "Point load (N, negative = downward) [required]")
	beamFieldCmd.Flags().Float64Var(&fieldPosition, "position", 0, "Point load position (m)")
	beamFieldCmd.Flags().IntVar(&fieldNX, "nx", 60, "Mesh density along the span")
	beamFieldCmd.Flags().IntVar(&fieldNY, "ny", 12, "Mesh density through the depth")
	beamFieldCmd.Flags().Float64Var(&fieldScale, "scale", 100, "Deformation exaggeration factor")

	beamFieldCmd.Flags().StringVarP(&fieldExportFile, "output", "o", "", "Export the deflected shape to file (png, svg, pdf)")

	beamFieldCmd.MarkFlagRequired("length")
	beamFieldCmd.MarkFlagRequired("force")
}

func runBeamField(cmd *cobra.Command, args []string) {
	bc, err := parseBoundary(fieldBoundary)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if bc == beam.Overhanging {
		fmt.Println("Error: the field solver supports cantilever and simply-supported beams only")
		return
	}
	sec, err := parseSection(fieldShape, fieldWidth, fieldHeight, fieldFlangeWidth, fieldFlangeThk, fieldWebThk)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	cfg := beam.Config{
		Length:   fieldLength,
		Boundary: bc,
		Elastic:  fieldElastic,
		Yield:    fieldYield,
		Section:  sec,
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	mesh := beam.SolveField(cfg, beam.FieldRequest{
		Magnitude: fieldForce,
		Position:  fieldPosition,
		NX:        fieldNX,
		NY:        fieldNY,
		Scale:     fieldScale,
	})
	summary := beam.Summarize(cfg, mesh)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("                  BEAM STRESS FIELD ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Length (L):\t%g m\n", cfg.Length)
	fmt.Fprintf(w, "  Boundary condition:\t%s\n", cfg.Boundary)
	fmt.Fprintf(w, "  E:\t%.4g Pa\n", cfg.Elastic)
	fmt.Fprintf(w, "  Load:\t%g N at x = %g m\n", fieldForce, fieldPosition)
	props := cfg.Section.Properties()
	fmt.Fprintf(w, "  Moment of inertia (I):\t%.6g m⁴\n", props.MomentOfInertia)
	fmt.Fprintf(w, "  Mesh:\t%d × %d cells\n", mesh.NX, mesh.NY)
	w.Flush()
	fmt.Println()

	fmt.Println("RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Max bending stress:\t%.6g Pa\n", summary.MaxStress)
	fmt.Fprintf(w, "  Max deflection:\t%.6g m\n", summary.MaxDeflection)
	fmt.Fprintf(w, "  Safety factor:\t%.3f\n", summary.SafetyFactor)
	deflStatus := "✓"
	if !summary.DeflectionOK {
		deflStatus = "⚠ exceeded"
	}
	fmt.Fprintf(w, "  Deflection limit (L/360):\t%.6g m %s\n", summary.DeflectionLimit, deflStatus)
	w.Flush()
	fmt.Println()

	fmt.Println(diagram.DrawSummaryBox("SERVICEABILITY", []string{
		fmt.Sprintf("Safety factor     %.3f", summary.SafetyFactor),
		fmt.Sprintf("Deflection check  %s", deflStatus),
	}))

	if fieldExportFile != "" {
		if err := diagram.ExportDeflectedShape(mesh, fieldExportFile); err != nil {
			fmt.Printf("Error exporting deflected shape: %v\n", err)
		} else {
			fmt.Printf("Deflected shape exported to: %s\n", fieldExportFile)
		}
	}
}
