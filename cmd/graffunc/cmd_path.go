package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graffunc/graph"
)

func newPathCmd(a *app) *cobra.Command {
	var (
		from     []string
		targets  []string
		strategy string
	)
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Show the converter chain from known labels to targets without running it",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.strategy(strategy)
			if err != nil {
				return err
			}
			path, err := a.graph.Resolve(parseLabels(from), parseLabels(targets), graph.WithSearchStrategy(s))
			if err != nil {
				return err
			}
			for i, e := range path {
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %s %s -> %s\n", i+1, e.Converter.Name(), e.Inputs, e.Outputs)
			}

			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&from, "from", "f", nil, "known labels (comma separated)")
	cmd.Flags().StringSliceVarP(&targets, "target", "t", nil, "labels to produce (comma separated)")
	cmd.Flags().StringVar(&strategy, "strategy", "", "search strategy: greedy, pruned or shortest")

	return cmd
}
