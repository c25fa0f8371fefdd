// Package walk executes a core.Path against concrete data.
//
// A walk keeps Data = copy of the source mapping. For each edge in order it
// checks that every declared input label is present, calls the converter
// with Data restricted to those inputs, and merges the returned mapping back
// into Data (last writer wins). After the last edge it returns Data
// projected onto the target labels.
//
// Errors
//
//   - *core.MissingInputError   an input is absent before a step, a target
//     label never materialized, or (WithStrictOutputs) a
//     converter omitted a declared output.
//   - *core.ConverterError      a converter returned an error.
//
// A walk is all-or-nothing: on error no partial data is returned, and the
// source mapping is never modified.
package walk

import "github.com/katalvlaran/graffunc/core"

// Option configures a walk via functional arguments.
type Option func(*Options)

// Options holds walk hooks and checks.
type Options struct {
	// OnStep is called after each converter returns, with the edge index,
	// the edge and the converter's raw output.
	OnStep func(i int, e core.Edge, out core.Data)

	// StrictOutputs fails a step whose converter omits a declared output.
	StrictOutputs bool
}

// DefaultOptions returns Options with a no-op hook and lenient outputs.
func DefaultOptions() Options {
	return Options{
		OnStep:        func(int, core.Edge, core.Data) {},
		StrictOutputs: false,
	}
}

// WithOnStep registers a callback run after each step.
func WithOnStep(fn func(i int, e core.Edge, out core.Data)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithStrictOutputs makes every step verify its declared outputs.
func WithStrictOutputs() Option {
	return func(o *Options) {
		o.StrictOutputs = true
	}
}
