package cmd

import (
	"github.com/spf13/cobra"
)

var bearingCmd = &cobra.Command{
	Use:   "bearing",
	Short: "Radial bearing load distribution and contact stress",
	Long: `Analyze rolling-element bearings under a radial load.

The radial load is distributed over the balls with the classical
Stribeck approximation: only the half-circle facing the load vector
carries force, falling off as cos^1.5 of the angular distance from the
load direction. Contact stress and deformation are calibrated
power-law approximations for relative comparison.

Subcommands:
  analyze  - Per-ball load table and load-zone summary`,
}

func init() {
	rootCmd.AddCommand(bearingCmd)
}
