package cmd

import (
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Cross-section property calculation",
	Long: `Calculate elastic section properties for the supported shapes.

Shapes:
  rectangular  - width b, depth h:       I = b·h³/12
  circular     - diameter d:             I = π·d⁴/64
  ibeam        - outer box minus hollow: I = (B·H³ − b·h³)/12

An I-beam whose hollow cutout would exceed the outer box falls back to
the solid outer rectangle instead of producing a negative inertia.

Subcommands:
  properties  - Second moment of area and cross-sectional area`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}
