// Package commands defines the plugsmith CLI.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/plugsmith/plugsmith"
	"github.com/plugsmith/plugsmith/internal/output"
)

// RootCmd creates and returns the root command for the plugsmith CLI.
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "plugsmith",
		Short: "Scaffold new Zsh plugin projects",
		Long: `Plugsmith generates a complete Zsh plugin skeleton from a handful of
options: the main plugin source with unload support, optional autoloaded
functions, a bin directory, GitHub Actions workflows for shellcheck and
shellspec, and git initialization.

Example:
  plugsmith init my-plugin --preset complete`,
		Version: plugsmith.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}
