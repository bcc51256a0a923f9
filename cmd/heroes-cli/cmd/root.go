package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. Each call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "heroes-cli",
		Short: "Life Heroes site tool",
		Long: `heroes-cli inspects the Life Heroes site without starting the server.

Available commands:
  validate    Run the login or signup validation on given field values
  routes      List the HTTP routes the server registers
  version     Print the version

Use "heroes-cli [command] --help" for more information about a specific command.`,
		SilenceUsage: true,
	}
	root.AddCommand(newVersionCmd(), newValidateCmd(), newRoutesCmd())
	return root
}

// Execute executes the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
