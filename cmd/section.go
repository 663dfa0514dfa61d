package cmd

import (
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Girder cross-section properties",
	Long: `Calculate geometric properties of girder cross-sections
defined by polygon vertices in JSON, YAML or TOML files.

This allows box girders, T-girders, I-girders or any simple
polygonal shape to be used in a bridge analysis.

Subcommands:
  properties  - Area, centroid, moments of inertia and section moduli

Example JSON file structure (vertices in mm, counter-clockwise):
{
  "name": "T-Girder",
  "vertices": [
    {"x": 700, "y": 0},
    {"x": 1100, "y": 0},
    {"x": 1100, "y": 1200},
    {"x": 1800, "y": 1200},
    {"x": 1800, "y": 1400},
    {"x": 0, "y": 1400},
    {"x": 0, "y": 1200},
    {"x": 700, "y": 1200}
  ]
}`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}
