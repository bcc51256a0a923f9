package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nfrund/lifeheroes/internal/app"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of heroes-cli",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "heroes-cli %s\n", app.Version)
		},
	}
}
