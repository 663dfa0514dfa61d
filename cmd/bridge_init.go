package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gospan/internal/config"
)

var (
	initOutput string
	initForce  bool
)

var bridgeInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter bridge configuration",
	Long: `Write the built-in three-span example as a configuration file that
can be edited and passed to 'gospan bridge analyze --config'.

The format follows the file extension (.yaml, .yml or .toml).

Examples:
  gospan bridge init
  gospan bridge init --output bridge.toml`,
	RunE: runBridgeInit,
}

func init() {
	bridgeCmd.AddCommand(bridgeInitCmd)

	bridgeInitCmd.Flags().StringVarP(&initOutput, "output", "o", "bridge.yaml", "Output file (.yaml, .toml)")
	bridgeInitCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing file")
}

func runBridgeInit(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())

	if !initForce {
		if _, err := os.Stat(initOutput); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", initOutput)
		}
	}
	if err := config.DefaultConfig().Save(initOutput); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	logger.Info("configuration written", "path", initOutput)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", initOutput)
	return nil
}
