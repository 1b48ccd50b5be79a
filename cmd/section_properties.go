package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	sectionShape       string
	sectionWidth       float64
	sectionHeight      float64
	sectionFlangeWidth float64
	sectionFlangeThk   float64
	sectionWebThk      float64
)

var sectionPropertiesCmd = &cobra.Command{
	Use:   "properties",
	Short: "Calculate second moment of area and cross-sectional area",
	Long: `Calculate the second moment of area (I) about the neutral axis and
the gross cross-sectional area for a described section.

Examples:
  gobeam section properties --shape rectangular --width 0.2 --height 0.5
  gobeam section properties --shape circular --height 0.1
  gobeam section properties --shape ibeam --flange-width 0.2 --height 0.4 \
    --flange-thickness 0.02 --web-thickness 0.01`,
	Run: runSectionProperties,
}

func init() {
	sectionCmd.AddCommand(sectionPropertiesCmd)

	sectionPropertiesCmd.Flags().StringVar(&sectionShape, "shape", "rectangular", "Section shape (rectangular|circular|ibeam)")
	sectionPropertiesCmd.Flags().Float64VarP(&sectionWidth, "width", "b", 0, "Section width (m)")
	sectionPropertiesCmd.Flags().Float64Var(&sectionHeight, "height", 0, "Section depth, or diameter for circular (m) [required]")
	sectionPropertiesCmd.Flags().Float64Var(&sectionFlangeWidth, "flange-width", 0, "I-beam flange width (m)")
	sectionPropertiesCmd.Flags().Float64Var(&sectionFlangeThk, "flange-thickness", 0, "I-beam flange thickness (m)")
	sectionPropertiesCmd.Flags().Float64Var(&sectionWebThk, "web-thickness", 0, "I-beam web thickness (m)")

	sectionPropertiesCmd.MarkFlagRequired("height")
}

func runSectionProperties(cmd *cobra.Command, args []string) {
	sec, err := parseSection(sectionShape, sectionWidth, sectionHeight,
		sectionFlangeWidth, sectionFlangeThk, sectionWebThk)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	props := sec.Properties()

	fmt.Println()
	fmt.Println("SECTION PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Shape:\t%s\n", sec.Shape)
	fmt.Fprintf(w, "  Moment of inertia (I):\t%.6g m⁴\n", props.MomentOfInertia)
	fmt.Fprintf(w, "  Area:\t%.6g m²\n", props.Area)
	w.Flush()
	fmt.Println()
}
