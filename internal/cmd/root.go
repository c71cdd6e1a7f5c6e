// Package cmd provides command implementations for the forge CLI.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/forgeframework/forge/internal/config"
	"github.com/forgeframework/forge/internal/output"
	"github.com/forgeframework/forge/internal/version"
)

// Global flags shared by all commands.
var (
	flagConfig  string
	flagVerbose bool
)

// NewRootCmd creates the base command for the forge CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "forge",
		Short: "Forge project generator",
		Long: `forge scaffolds new Forge backend-service projects.

It provides commands to:
  - Generate a new project skeleton with selectable API styles
  - Manage CLI configuration
  - Inspect CLI and runtime version information`,
		PersistentPreRunE: initializeGlobals,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to config file (env: FORGE_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "increase output verbosity")

	rootCmd.AddCommand(NewNewCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and output styling based on global flags
// and configuration. A broken config file is reported but does not block
// commands that never read it; `forge new` surfaces the load error itself.
func initializeGlobals(_ *cobra.Command, _ []string) error {
	output.SetupLogging(flagVerbose)

	cfg, err := config.NewLoader().LoadWithDefaults(flagConfig)
	if err != nil {
		output.Warn("could not load configuration", "error", err)
	} else if cfg.NoColor {
		output.DisableColor()
	}

	info := version.GetInfo()
	output.Debug("forge started", "version", info.Version)

	return nil
}
