package cmd

import (
	"github.com/spf13/cobra"

	"github.com/forgeframework/forge/internal/output"
	"github.com/forgeframework/forge/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print CLI and runtime version information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			info := version.GetInfo()
			elixirInfo := version.DetectElixir()
			output.Println(version.FullVersionString(info, elixirInfo))
			return nil
		},
	}
}
