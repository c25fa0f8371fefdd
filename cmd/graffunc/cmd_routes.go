package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newRoutesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List registered converters in registration order",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, r := range a.graph.RoutingTable() {
				names := make([]string, len(r.Converters))
				for i, c := range r.Converters {
					names[i] = c.Name()
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s: %s\n", r.Inputs, r.Outputs, strings.Join(names, ", "))
			}

			return nil
		},
	}
}
