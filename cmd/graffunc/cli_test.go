package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graffunc/core"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

// TestConvert verifies convert prints target values in label order.
func TestConvert(t *testing.T) {
	out, err := run(t, "convert", "--set", "celsius=0", "--target", "kelvin,fahrenheit")
	require.NoError(t, err)
	require.Equal(t, "fahrenheit=32\nkelvin=273.15\n", out)
}

// TestConvert_MultiInput verifies convert with several known values.
func TestConvert_MultiInput(t *testing.T) {
	out, err := run(t, "convert", "-s", "meters=100", "-s", "seconds=20", "-t", "speed_mps", "--strategy", "shortest")
	require.NoError(t, err)
	require.Equal(t, "speed_mps=5\n", out)
}

// TestConvert_Errors verifies convert rejects bad flags and reports failures.
func TestConvert_Errors(t *testing.T) {
	_, err := run(t, "convert", "--set", "celsius=0")
	require.ErrorContains(t, err, "--target")

	_, err = run(t, "convert", "--set", "celsius", "--target", "kelvin")
	require.ErrorContains(t, err, "label=value")

	_, err = run(t, "convert", "--set", "celsius=0", "--target", "meters")
	require.ErrorIs(t, err, core.ErrUnreachable)

	_, err = run(t, "convert", "--set", "celsius=0", "--target", "kelvin", "--strategy", "astar")
	require.Error(t, err)

	_, err = run(t, "convert", "--set", "celsius=warm", "--target", "kelvin")
	require.ErrorIs(t, err, core.ErrConverterFailed)
}

// TestPath verifies path prints the resolved chain.
func TestPath(t *testing.T) {
	out, err := run(t, "path", "--from", "kilometers,hours", "--target", "speed_kmh", "--strategy", "pruned")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	require.Contains(t, out, "distance/time→speed {meters,seconds} -> {speed_mps}")
	require.True(t, strings.HasPrefix(lines[3], "4. mps→kmh "))
}

// TestRoutes verifies routes prints the table in registration order.
func TestRoutes(t *testing.T) {
	out, err := run(t, "routes")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 15)
	require.Equal(t, "{meters,seconds} -> {speed_mps}: distance/time→speed", lines[0])
}

// TestConfigFlag verifies --config selects the loaded catalogs.
func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graffunc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalog: [temperature]\n"), 0o600))

	out, err := run(t, "--config", path, "routes")
	require.NoError(t, err)
	require.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 5)

	_, err = run(t, "--config", path, "convert", "--set", "meters=1", "--target", "feet")
	require.ErrorIs(t, err, core.ErrUnreachable)

	_, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "routes")
	require.Error(t, err)
}

// TestParseAssignments verifies label=value parsing.
func TestParseAssignments(t *testing.T) {
	data, err := parseAssignments([]string{"a=1.5", "b=text", " c = 2 "})
	require.NoError(t, err)
	require.Equal(t, core.Data{"a": 1.5, "b": "text", "c": 2.0}, data)

	_, err = parseAssignments([]string{"=1"})
	require.Error(t, err)
}

// TestParseLabels verifies comma separated labels become a LabelSet.
func TestParseLabels(t *testing.T) {
	got := parseLabels([]string{"b, a", "c", ""})
	require.True(t, got.Equal(core.NewLabelSet("a", "b", "c")))
}
