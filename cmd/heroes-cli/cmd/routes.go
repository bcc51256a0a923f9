package cmd

import (
	"context"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nfrund/lifeheroes/internal/app"
	"github.com/nfrund/lifeheroes/internal/config"
	"github.com/nfrund/lifeheroes/internal/server"
)

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the HTTP routes of the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			deps, err := app.Resolve(app.NewInjector(ctx, config.FromEnv()))
			if err != nil {
				return err
			}
			defer deps.Store.Close()

			s := server.New(deps)
			s.RegisterRoutes()

			routes := s.E.Routes()
			sort.Slice(routes, func(i, j int) bool {
				if routes[i].Path == routes[j].Path {
					return routes[i].Method < routes[j].Method
				}
				return routes[i].Path < routes[j].Path
			})

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "METHOD\tPATH")
			for _, r := range routes {
				fmt.Fprintf(w, "%s\t%s\n", r.Method, r.Path)
			}
			return w.Flush()
		},
	}
}
