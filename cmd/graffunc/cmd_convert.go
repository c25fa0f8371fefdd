package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/graffunc/graph"
)

func newConvertCmd(a *app) *cobra.Command {
	var (
		sets     []string
		targets  []string
		strategy string
		strict   bool
	)
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert known values into the target labels",
		Example: `  graffunc convert --set celsius=0 --target fahrenheit
  graffunc convert --set meters=100 --set seconds=9.58 --target speed_kmh`,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := parseAssignments(sets)
			if err != nil {
				return err
			}
			target := parseLabels(targets)
			if target.Empty() {
				return fmt.Errorf("at least one --target label is required")
			}
			s, err := a.strategy(strategy)
			if err != nil {
				return err
			}
			opts := []graph.ConvertOption{graph.WithSearchStrategy(s)}
			if strict {
				opts = append(opts, graph.WithStrictOutputs())
			}

			a.logger.Info("Converting",
				zap.Stringer("known", source.Keys()),
				zap.Stringer("target", target),
				zap.String("strategy", s.Name()))
			out, err := a.graph.Convert(source, target, opts...)
			if err != nil {
				return err
			}
			for _, l := range target.Labels() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%v\n", l, out[l])
			}

			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&sets, "set", "s", nil, "known value as label=value (repeatable)")
	cmd.Flags().StringSliceVarP(&targets, "target", "t", nil, "labels to produce (comma separated)")
	cmd.Flags().StringVar(&strategy, "strategy", "", "search strategy: greedy, pruned or shortest")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when a converter omits a declared output")

	return cmd
}
