// Package catalog provides named sets of ready-made unit converters used by
// the CLI and the examples. Values are float64 (ints are accepted on input).
//
//	temperature: celsius ⇄ fahrenheit, celsius ⇄ kelvin, fahrenheit → rankine
//	length:      meters ⇄ feet, meters ⇄ kilometers, feet → inches
//	kinematics:  {meters, seconds} → speed_mps, speed_mps → speed_kmh,
//	             {speed_mps, seconds} → meters, hours ⇄ seconds
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/graffunc/core"
)

// ErrUnknownCatalog is returned by Register for an unknown catalog name.
var ErrUnknownCatalog = errors.New("catalog: unknown catalog")

// ErrNotNumeric is returned by a catalog converter given a non-numeric value.
var ErrNotNumeric = errors.New("catalog: value is not numeric")

// Registrar is what Register needs from a graph.
type Registrar interface {
	Add(conv *core.Converter, inputs, outputs core.LabelSet) error
}

// entry describes one converter of a catalog.
type entry struct {
	name    string
	inputs  []core.Label
	outputs []core.Label
	fn      core.Func
}

func scale(name string, in, out core.Label, f func(float64) float64) entry {
	return entry{
		name:    name,
		inputs:  []core.Label{in},
		outputs: []core.Label{out},
		fn: func(d core.Data) (core.Data, error) {
			x, err := number(d[in], in)
			if err != nil {
				return nil, err
			}

			return core.Data{out: f(x)}, nil
		},
	}
}

var catalogs = map[string][]entry{
	"temperature": {
		scale("celsius→fahrenheit", "celsius", "fahrenheit", func(c float64) float64 { return c*9/5 + 32 }),
		scale("fahrenheit→celsius", "fahrenheit", "celsius", func(f float64) float64 { return (f - 32) * 5 / 9 }),
		scale("celsius→kelvin", "celsius", "kelvin", func(c float64) float64 { return c + 273.15 }),
		scale("kelvin→celsius", "kelvin", "celsius", func(k float64) float64 { return k - 273.15 }),
		scale("fahrenheit→rankine", "fahrenheit", "rankine", func(f float64) float64 { return f + 459.67 }),
	},
	"length": {
		scale("meters→feet", "meters", "feet", func(m float64) float64 { return m / 0.3048 }),
		scale("feet→meters", "feet", "meters", func(ft float64) float64 { return ft * 0.3048 }),
		scale("meters→kilometers", "meters", "kilometers", func(m float64) float64 { return m / 1000 }),
		scale("kilometers→meters", "kilometers", "meters", func(km float64) float64 { return km * 1000 }),
		scale("feet→inches", "feet", "inches", func(ft float64) float64 { return ft * 12 }),
	},
	"kinematics": {
		{
			name:    "distance/time→speed",
			inputs:  []core.Label{"meters", "seconds"},
			outputs: []core.Label{"speed_mps"},
			fn: func(d core.Data) (core.Data, error) {
				m, err := number(d["meters"], "meters")
				if err != nil {
					return nil, err
				}
				s, err := number(d["seconds"], "seconds")
				if err != nil {
					return nil, err
				}
				if s == 0 {
					return nil, fmt.Errorf("catalog: seconds must be non-zero")
				}

				return core.Data{"speed_mps": m / s}, nil
			},
		},
		{
			name:    "speed·time→distance",
			inputs:  []core.Label{"speed_mps", "seconds"},
			outputs: []core.Label{"meters"},
			fn: func(d core.Data) (core.Data, error) {
				v, err := number(d["speed_mps"], "speed_mps")
				if err != nil {
					return nil, err
				}
				s, err := number(d["seconds"], "seconds")
				if err != nil {
					return nil, err
				}

				return core.Data{"meters": v * s}, nil
			},
		},
		scale("mps→kmh", "speed_mps", "speed_kmh", func(v float64) float64 { return v * 3.6 }),
		scale("hours→seconds", "hours", "seconds", func(h float64) float64 { return h * 3600 }),
		scale("seconds→hours", "seconds", "hours", func(s float64) float64 { return s / 3600 }),
	},
}

// Names lists the available catalogs in ascending order.
func Names() []string {
	out := make([]string, 0, len(catalogs))
	for n := range catalogs {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}

// Has reports whether name is a known catalog.
func Has(name string) bool {
	_, ok := catalogs[name]

	return ok
}

// Register adds fresh converters of every named catalog to r, in catalog
// order. It stops at the first error.
func Register(r Registrar, names ...string) error {
	for _, name := range names {
		entries, ok := catalogs[name]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownCatalog, name)
		}
		for _, e := range entries {
			conv := core.NewConverter(e.name, e.fn)
			if err := r.Add(conv, core.NewLabelSet(e.inputs...), core.NewLabelSet(e.outputs...)); err != nil {
				return fmt.Errorf("catalog %s: %w", name, err)
			}
		}
	}

	return nil
}

func number(v any, l core.Label) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	default:
		return 0, fmt.Errorf("%w: %s=%v (%T)", ErrNotNumeric, l, v, v)
	}
}
