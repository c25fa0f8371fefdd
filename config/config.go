// Package config loads the YAML configuration used by the graffunc CLI:
// logging, the graph's duplicate policy and search strategy, and which
// built-in converter catalogs to register.
//
//	log:
//	  level: info          # debug | info | warn | error
//	  development: false
//	graph:
//	  duplicates: reject   # reject | ignore
//	  strategy: greedy     # greedy | pruned | shortest
//	  max_states: 4096     # shortest only
//	catalog: [temperature, length, kinematics]
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graffunc/catalog"
	"github.com/katalvlaran/graffunc/graph"
	"github.com/katalvlaran/graffunc/search"
)

// ErrInvalidConfig is returned by Validate and Load for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root configuration document.
type Config struct {
	Log     LogConfig   `yaml:"log"`
	Graph   GraphConfig `yaml:"graph"`
	Catalog []string    `yaml:"catalog"`
}

// LogConfig selects the zap logger.
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// GraphConfig configures the graph facade.
type GraphConfig struct {
	Duplicates string `yaml:"duplicates"`
	Strategy   string `yaml:"strategy"`
	MaxStates  int    `yaml:"max_states"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log:     LogConfig{Level: "info"},
		Graph:   GraphConfig{Duplicates: "reject", Strategy: "greedy", MaxStates: search.DefaultMaxStates},
		Catalog: catalog.Names(),
	}
}

// Load reads and validates the YAML file at path, on top of Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML on top of Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	if _, err := graph.ParseDuplicatePolicy(c.Graph.Duplicates); err != nil {
		return fmt.Errorf("%w: graph.duplicates: %v", ErrInvalidConfig, err)
	}
	if _, err := c.Strategy(); err != nil {
		return fmt.Errorf("%w: graph: %v", ErrInvalidConfig, err)
	}
	for _, name := range c.Catalog {
		if !catalog.Has(name) {
			return fmt.Errorf("%w: catalog: unknown %q (known: %v)", ErrInvalidConfig, name, catalog.Names())
		}
	}

	return nil
}

// Strategy builds the configured search strategy.
func (c *Config) Strategy() (search.Strategy, error) {
	if c.Graph.Strategy == "shortest" {
		return search.NewShortest(search.WithMaxStates(c.Graph.MaxStates))
	}

	return search.ByName(c.Graph.Strategy)
}

// Logger builds a zap logger from Log. verbose forces debug level.
func (c *Config) Logger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}

// NewGraph builds a graph.Graph from Graph and registers the configured catalogs.
func (c *Config) NewGraph(logger *zap.Logger) (*graph.Graph, error) {
	policy, err := graph.ParseDuplicatePolicy(c.Graph.Duplicates)
	if err != nil {
		return nil, err
	}
	strategy, err := c.Strategy()
	if err != nil {
		return nil, err
	}
	g, err := graph.New(
		graph.WithLogger(logger),
		graph.WithDuplicatePolicy(policy),
		graph.WithStrategy(strategy),
	)
	if err != nil {
		return nil, err
	}
	if err = catalog.Register(g, c.Catalog...); err != nil {
		return nil, err
	}

	return g, nil
}
