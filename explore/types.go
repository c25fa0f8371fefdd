package explore

import "github.com/katalvlaran/graffunc/core"

// Step is one emission of the explorer.
type Step struct {
	// Edge is the emitted (inputs, outputs, converter) candidate.
	Edge core.Edge

	// New holds the output labels this emission added to Found.
	New core.LabelSet

	// Pass is the 1-based pass number the emission happened in.
	Pass int
}

// Option configures exploration via functional arguments.
type Option func(*Options)

// Options holds the exploration hooks.
type Options struct {
	// OnEmit is called for every Step, before it is yielded.
	OnEmit func(s Step)

	// OnPass is called after each full pass with whether Found grew.
	OnPass func(pass int, grew bool)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEmit: func(Step) {},
		OnPass: func(int, bool) {},
	}
}

// WithOnEmit registers a callback run on each emission.
func WithOnEmit(fn func(s Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEmit = fn
		}
	}
}

// WithOnPass registers a callback run after each pass.
func WithOnPass(fn func(pass int, grew bool)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPass = fn
		}
	}
}

// Result is the outcome of running exploration to its fixed point.
type Result struct {
	// Known is the starting label set.
	Known core.LabelSet

	// Found is the fixed point: every label reachable from Known.
	Found core.LabelSet

	// Steps lists emissions in order.
	Steps []Step

	// Passes counts full passes, including the final one that emitted nothing.
	Passes int
}

// Covers reports whether every label of target was found.
func (r *Result) Covers(target core.LabelSet) bool {
	return target.SubsetOf(r.Found)
}

// Missing returns the labels of target that were not found.
func (r *Result) Missing(target core.LabelSet) core.LabelSet {
	return target.Minus(r.Found)
}

// Usable returns every table edge whose inputs lie within the fixed point,
// emitted or not, in registration order.
func (r *Result) Usable(t *core.Table) []core.Edge {
	if t == nil {
		return nil
	}
	var out []core.Edge
	for _, e := range t.Edges() {
		if e.Inputs.SubsetOf(r.Found) {
			out = append(out, e)
		}
	}

	return out
}
