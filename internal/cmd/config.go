package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/forgeframework/forge/internal/config"
	oerrors "github.com/forgeframework/forge/internal/errors"
	"github.com/forgeframework/forge/internal/output"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  `Commands for creating and inspecting the forge CLI configuration file.`,
	}

	c.AddCommand(newConfigInitCmd())
	c.AddCommand(newConfigShowCmd())

	return c
}

func newConfigInitCmd() *cobra.Command {
	var forceFlag bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigInit(forceFlag)
		},
	}

	c.Flags().BoolVar(&forceFlag, "force", false, "overwrite an existing config file")

	return c
}

func runConfigInit(force bool) error {
	path := flagConfig
	if path == "" {
		var err error
		path, err = config.GetConfigFile()
		if err != nil {
			return oerrors.NewExitError(err, oerrors.ExitGeneralError)
		}
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitGeneralError)
	}
	if exists && !force {
		return oerrors.NewExitError(
			fmt.Errorf("config file %s already exists; use --force to overwrite", path),
			oerrors.ExitGeneralError)
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return oerrors.NewExitError(fmt.Errorf("marshaling config: %w", err), oerrors.ExitGeneralError)
	}

	expanded, err := config.ExpandPath(path)
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitGeneralError)
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return oerrors.NewExitError(fmt.Errorf("creating config directory: %w", err), oerrors.ExitGeneralError)
	}
	if err := os.WriteFile(expanded, data, 0o644); err != nil {
		return oerrors.NewExitError(fmt.Errorf("writing config file: %w", err), oerrors.ExitGeneralError)
	}

	output.Println(output.FormatCheckmark("Wrote " + expanded))
	return nil
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.NewLoader().LoadWithDefaults(flagConfig)
			if err != nil {
				return oerrors.NewExitError(err, oerrors.ExitGeneralError)
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return oerrors.NewExitError(fmt.Errorf("marshaling config: %w", err), oerrors.ExitGeneralError)
			}

			output.Print(string(data))
			return nil
		},
	}
}
