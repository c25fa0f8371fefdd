// Package main provides the graffunc CLI: it loads converter catalogs into a
// routing graph and resolves or runs conversions between labeled values.
//
//	graffunc convert --set celsius=21.5 --target fahrenheit,kelvin
//	graffunc path --from kilometers,hours --target speed_kmh --strategy shortest
//	graffunc routes
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/graffunc/config"
	"github.com/katalvlaran/graffunc/core"
	"github.com/katalvlaran/graffunc/graph"
	"github.com/katalvlaran/graffunc/search"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
	graph  *graph.Graph
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "graffunc",
		Short: "Resolve and run chains of data converters",
		Long: `graffunc routes labeled data through registered converters.

Each converter declares the labels it consumes and the labels it produces.
Given some known values and the labels you want, graffunc picks a chain of
converters that gets there and runs it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newConvertCmd(a), newPathCmd(a), newRoutesCmd(a))

	return root
}

// init loads configuration, builds the logger and the graph.
func (a *app) init() error {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return err
		}
	}
	logger, err := cfg.Logger(a.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	g, err := cfg.NewGraph(logger)
	if err != nil {
		return err
	}
	a.cfg, a.logger, a.graph = cfg, logger, g

	return nil
}

// strategy resolves a --strategy flag, falling back to the configured one.
func (a *app) strategy(name string) (search.Strategy, error) {
	if name == "" {
		return a.cfg.Strategy()
	}

	return search.ByName(name)
}

// parseLabels turns "a,b" flag values into a LabelSet.
func parseLabels(values []string) core.LabelSet {
	var labels []core.Label
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				labels = append(labels, core.Label(part))
			}
		}
	}

	return core.NewLabelSet(labels...)
}

// parseAssignments turns label=value pairs into Data. Values that parse as
// numbers become float64; anything else stays a string.
func parseAssignments(pairs []string) (core.Data, error) {
	data := make(core.Data, len(pairs))
	for _, p := range pairs {
		label, raw, ok := strings.Cut(p, "=")
		label = strings.TrimSpace(label)
		if !ok || label == "" {
			return nil, fmt.Errorf("invalid assignment %q, want label=value", p)
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			data[core.Label(label)] = f
		} else {
			data[core.Label(label)] = raw
		}
	}

	return data, nil
}
