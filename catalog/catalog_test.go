package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graffunc/catalog"
	"github.com/katalvlaran/graffunc/core"
	"github.com/katalvlaran/graffunc/graph"
)

func newGraph(t *testing.T, names ...string) *graph.Graph {
	t.Helper()
	g, err := graph.New()
	require.NoError(t, err)
	require.NoError(t, catalog.Register(g, names...))

	return g
}

// TestNames verifies the catalog names are listed in ascending order.
func TestNames(t *testing.T) {
	require.Equal(t, []string{"kinematics", "length", "temperature"}, catalog.Names())
	require.True(t, catalog.Has("length"))
	require.False(t, catalog.Has("currency"))
}

// TestRegister_Unknown verifies an unknown catalog name is rejected.
func TestRegister_Unknown(t *testing.T) {
	g, err := graph.New()
	require.NoError(t, err)
	require.ErrorIs(t, catalog.Register(g, "currency"), catalog.ErrUnknownCatalog)
}

// TestRegister_Twice verifies registering a catalog twice creates fresh converters each time.
func TestRegister_Twice(t *testing.T) {
	// Fresh handles per Register call: distinct converters for the same pair
	// are interchangeable candidates, not duplicate registrations.
	g := newGraph(t, "temperature", "temperature")
	require.Equal(t, 10, g.Len())
}

// TestTemperature verifies conversions through the temperature catalog.
func TestTemperature(t *testing.T) {
	g := newGraph(t, "temperature")

	out, err := g.Convert(core.Data{"celsius": 100.0}, core.NewLabelSet("fahrenheit", "kelvin"))
	require.NoError(t, err)
	require.InDelta(t, 212.0, out["fahrenheit"], 1e-9)
	require.InDelta(t, 373.15, out["kelvin"], 1e-9)

	out, err = g.Convert(core.Data{"kelvin": 0}, core.NewLabelSet("rankine"))
	require.NoError(t, err)
	require.InDelta(t, 0.0, out["rankine"], 1e-9)
}

// TestKinematics_MultiInput verifies multi-input converters of the kinematics catalog.
func TestKinematics_MultiInput(t *testing.T) {
	g := newGraph(t, "length", "kinematics")

	out, err := g.Convert(core.Data{"kilometers": 1.0, "hours": 0.5}, core.NewLabelSet("speed_kmh"))
	require.NoError(t, err)
	require.InDelta(t, 2.0, out["speed_kmh"], 1e-9)

	_, err = g.Convert(core.Data{"kilometers": 1.0}, core.NewLabelSet("speed_kmh"))
	require.ErrorIs(t, err, core.ErrUnreachable)
}

// TestConverterErrors verifies catalog converters reject non-numeric and invalid values.
func TestConverterErrors(t *testing.T) {
	g := newGraph(t, "temperature", "kinematics")

	_, err := g.Convert(core.Data{"celsius": "hot"}, core.NewLabelSet("kelvin"))
	require.ErrorIs(t, err, core.ErrConverterFailed)
	require.ErrorIs(t, err, catalog.ErrNotNumeric)

	_, err = g.Convert(core.Data{"meters": 1.0, "seconds": 0.0}, core.NewLabelSet("speed_mps"))
	require.ErrorIs(t, err, core.ErrConverterFailed)
}
