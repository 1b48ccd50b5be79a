package cmd

import (
	"github.com/spf13/cobra"
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Beam reaction, diagram and stress-field analysis",
	Long: `Analyze beams under arbitrary mixed load sets.

Boundary conditions: cantilever (fixed at x=0), simply-supported
(supports at both ends), overhanging (supports anywhere inside the
span). Loads are given as repeated flags:

  --point x:P        concentrated force P (N) at x (m)
  --udl x1:x2:w      uniform load w (N/m) over [x1, x2]
  --tri x1:x2:q:side triangular load peaking at q (N/m) on side left|right
  --moment x:M       concentrated couple M (N·m) at x

Downward loads carry a negative magnitude. If no load flag is given, a
single point load is synthesized from --force and --position.

Subcommands:
  analyze  - Reactions, diagrams and piecewise V/M polynomials
  field    - Closed-form stress/deflection field for one point load`,
}

func init() {
	rootCmd.AddCommand(beamCmd)
}
