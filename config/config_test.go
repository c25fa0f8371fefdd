package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/graffunc/config"
	"github.com/katalvlaran/graffunc/core"
	"github.com/katalvlaran/graffunc/search"
)

// TestDefault verifies the default configuration is valid.
func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, "greedy", cfg.Graph.Strategy)
	require.Equal(t, search.DefaultMaxStates, cfg.Graph.MaxStates)
	require.Equal(t, []string{"kinematics", "length", "temperature"}, cfg.Catalog)
}

// TestParse_OverridesDefaults verifies YAML values override the defaults.
func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte(`
log:
  level: debug
graph:
  duplicates: ignore
  strategy: shortest
  max_states: 64
catalog: [temperature]
`))
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "ignore", cfg.Graph.Duplicates)
	require.Equal(t, []string{"temperature"}, cfg.Catalog)

	s, err := cfg.Strategy()
	require.NoError(t, err)
	require.Equal(t, "shortest", s.Name())

	g, err := cfg.NewGraph(nil)
	require.NoError(t, err)
	require.Equal(t, 5, g.Len())
	out, err := g.Convert(core.Data{"celsius": 0.0}, core.NewLabelSet("fahrenheit"))
	require.NoError(t, err)
	require.Equal(t, core.Data{"fahrenheit": 32.0}, out)
}

// TestParse_Empty verifies an empty document yields the defaults.
func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

// TestParse_Invalid verifies invalid documents are rejected with ErrInvalidConfig.
func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown key":     "graph:\n  colour: red\n",
		"bad level":       "log:\n  level: loud\n",
		"bad policy":      "graph:\n  duplicates: merge\n",
		"bad strategy":    "graph:\n  strategy: astar\n",
		"bad max states":  "graph:\n  strategy: shortest\n  max_states: 0\n",
		"unknown catalog": "catalog: [currency]\n",
		"malformed yaml":  "graph: [\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

// TestLoad verifies configuration is read from a file.
func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graffunc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("graph:\n  strategy: pruned\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "pruned", cfg.Graph.Strategy)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

// TestLogger verifies the logger level follows configuration and verbose.
func TestLogger(t *testing.T) {
	cfg := config.Default()
	l, err := cfg.Logger(false)
	require.NoError(t, err)
	require.False(t, l.Core().Enabled(zapcore.DebugLevel))

	l, err = cfg.Logger(true)
	require.NoError(t, err)
	require.True(t, l.Core().Enabled(zapcore.DebugLevel))

	cfg.Log.Development = true
	cfg.Log.Level = "warn"
	l, err = cfg.Logger(false)
	require.NoError(t, err)
	require.False(t, l.Core().Enabled(zapcore.InfoLevel))
}
