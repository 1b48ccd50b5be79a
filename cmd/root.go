package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "gobeam",
	Short: "Beam and Bearing Structural Analysis Tool",
	Long: `gobeam - Go Beam & Bearing Analyzer

A CLI tool for deterministic structural-mechanics analysis of beams
and rolling-element bearings.

This tool helps engineers perform:
  - Static equilibrium solving for arbitrary mixed load sets
  - Shear and bending moment diagrams (numeric sweep)
  - Exact piecewise polynomial V(x) / M(x) expressions
  - Closed-form stress and deflection fields
  - Stribeck load distribution and Hertzian contact stress for bearings`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gobeam v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Beam & Bearing Analyzer                              ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for structural analysis of beams and bearings.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Support reactions for cantilever, simply supported and")
		fmt.Println("      overhanging beams under mixed load sets")
		fmt.Println("    • Shear/moment diagrams and exact piecewise polynomials")
		fmt.Println("    • Bending stress and deflection fields with serviceability checks")
		fmt.Println("    • Radial bearing load distribution and contact stress")
		fmt.Println()
		fmt.Println("  Use 'gobeam --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
