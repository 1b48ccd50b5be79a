package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/bearing"
	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/alexiusacademia/gobeam/internal/report"
)

var (
	bearingOuter float64
	bearingInner float64
	bearingBalls int
	bearingLoad  float64

	bearingExportFile string
	bearingXLSXFile   string
)

var bearingAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Distribute the radial load over the rolling elements",
	Long: `Distribute a radial load over the bearing's balls and derive the
approximate Hertzian contact stress and compressive deformation per
element.

Examples:
  # 12-ball bearing under 5 kN
  gobeam bearing analyze --outer 100 --inner 60 --balls 12 --load 5000

  # Export the load distribution plot and the element table
  gobeam bearing analyze --outer 100 --inner 60 --balls 12 --load 5000 \
    --output bearing.png --xlsx bearing.xlsx`,
	Run: runBearingAnalyze,
}

func init() {
	bearingCmd.AddCommand(bearingAnalyzeCmd)

	bearingAnalyzeCmd.Flags().Float64Var(&bearingOuter, "outer", 0, "Outer raceway radius [required]")
	bearingAnalyzeCmd.Flags().Float64Var(&bearingInner, "inner", 0, "Inner raceway radius [required]")
	bearingAnalyzeCmd.Flags().IntVar(&bearingBalls, "balls", 8, "Number of rolling elements")
	bearingAnalyzeCmd.Flags().Float64Var(&bearingLoad, "load", 0, "Radial load (N)")

	bearingAnalyzeCmd.Flags().StringVarP(&bearingExportFile, "output", "o", "", "Export load distribution plot (png, svg, pdf)")
	bearingAnalyzeCmd.Flags().StringVar(&bearingXLSXFile, "xlsx", "", "Write the element table to an XLSX workbook")

	bearingAnalyzeCmd.MarkFlagRequired("outer")
	bearingAnalyzeCmd.MarkFlagRequired("inner")
}

func runBearingAnalyze(cmd *cobra.Command, args []string) {
	if bearingOuter <= bearingInner || bearingInner <= 0 {
		fmt.Printf("Error: radii must satisfy outer > inner > 0, got outer=%g inner=%g\n",
			bearingOuter, bearingInner)
		return
	}
	if bearingBalls < 1 {
		fmt.Printf("Error: ball count must be at least 1, got %d\n", bearingBalls)
		return
	}
	if bearingLoad < 0 {
		fmt.Printf("Error: radial load must be non-negative, got %g\n", bearingLoad)
		return
	}

	cfg := bearing.Config{
		OuterRadius: bearingOuter,
		InnerRadius: bearingInner,
		BallCount:   bearingBalls,
		RadialLoad:  bearingLoad,
	}
	elements := bearing.Distribute(cfg)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("                BEARING LOAD DISTRIBUTION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Outer radius:\t%g\n", cfg.OuterRadius)
	fmt.Fprintf(w, "  Inner radius:\t%g\n", cfg.InnerRadius)
	fmt.Fprintf(w, "  Pitch radius:\t%g\n", cfg.PitchRadius())
	fmt.Fprintf(w, "  Ball radius:\t%g\n", cfg.BallRadius())
	fmt.Fprintf(w, "  Ball count:\t%d\n", cfg.BallCount)
	fmt.Fprintf(w, "  Radial load:\t%g N\n", cfg.RadialLoad)
	fmt.Fprintf(w, "  Qmax (Stribeck):\t%.2f N\n", bearing.StribeckFactor*cfg.RadialLoad/float64(cfg.BallCount))
	w.Flush()
	fmt.Println()

	fmt.Println("ELEMENT LOADS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Ball\tAngle (°)\tLoad (N)\tContact Stress\tDeformation\n")
	fmt.Fprintf(w, "  ────\t─────────\t────────\t──────────────\t───────────\n")
	loadedCount := 0
	for i, e := range elements {
		marker := ""
		if e.Load > 0 {
			loadedCount++
		} else {
			marker = " (outside load zone)"
		}
		fmt.Fprintf(w, "  %d\t%.1f\t%.2f\t%.3f\t%.5f%s\n",
			i+1, e.Angle*180/math.Pi, e.Load, e.ContactStress, e.Deformation, marker)
	}
	w.Flush()
	fmt.Println()

	fmt.Println(diagram.DrawSummaryBox("LOAD ZONE", []string{
		fmt.Sprintf("%d of %d balls carry load", loadedCount, len(elements)),
	}))

	if bearingExportFile != "" {
		if err := diagram.ExportBearingDiagram(elements, bearingExportFile); err != nil {
			fmt.Printf("Error exporting bearing diagram: %v\n", err)
		} else {
			fmt.Printf("Bearing diagram exported to: %s\n", bearingExportFile)
		}
	}
	if bearingXLSXFile != "" {
		if err := report.WriteBearingXLSX(elements, bearingXLSXFile); err != nil {
			fmt.Printf("Error writing workbook: %v\n", err)
		} else {
			fmt.Printf("Workbook written to: %s\n", bearingXLSXFile)
		}
	}
}
