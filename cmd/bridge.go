package cmd

import (
	"github.com/spf13/cobra"
)

var bridgeCmd = &cobra.Command{
	Use:   "bridge",
	Short: "Continuous beam bridge analysis",
	Long: `Analyze continuous beam bridges on point supports using the
direct stiffness method.

Subcommands:
  analyze  - Compute support reactions, deflections and moments
  init     - Write a starter configuration file

A bridge is described by a YAML or TOML configuration file, by flags,
or by both (flags override the file).`,
}

func init() {
	rootCmd.AddCommand(bridgeCmd)
}
