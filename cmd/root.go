package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gospan/internal/version"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gospan",
	Short: "Continuous Beam Bridge Support Reaction Analyzer",
	Long: `gospan - Go Continuous Span Analyzer

A CLI tool for the analysis of continuous beam bridges using the
direct stiffness method with 2D Euler-Bernoulli beam elements.

This tool helps structural engineers perform:
  - Support reaction analysis of multi-span girders
  - Load balance (equilibrium) verification
  - Deflected shape and bending moment diagrams
  - Cross-section property calculation for polygon sections

Load combinations follow NSCP 2015 (Volume 1) Section 203.3.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := log.InfoLevel
		if verbose {
			level = log.DebugLevel
		}
		cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   gospan v%-48s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Go Continuous Span Analyzer                             ║")
		fmt.Fprintf(out, "  ║   %s ©  %-36s║\n", version.Author, version.Year)
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  A CLI tool for support reaction analysis of continuous")
		fmt.Fprintln(out, "  beam bridges by the direct stiffness method.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Multi-span girder analysis with point and line loads")
		fmt.Fprintln(out, "    • NSCP load combinations (service or factored)")
		fmt.Fprintln(out, "    • Equilibrium (balance error) verification")
		fmt.Fprintln(out, "    • Deflection and bending moment diagrams (ASCII, PNG, SVG)")
		fmt.Fprintln(out, "    • Polygon cross-section properties")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'gospan --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
