package explore

import (
	"iter"

	"github.com/katalvlaran/graffunc/core"
)

// explorer encapsulates mutable state of one exploration run.
type explorer struct {
	edges   []core.Edge
	opts    Options
	found   map[core.Label]struct{}
	yielded map[*core.Converter]struct{}
}

// Explore returns the lazy emission sequence for t starting from known.
// Each iteration restarts from scratch; a nil table yields nothing.
func Explore(t *core.Table, known core.LabelSet, opts ...Option) iter.Seq[Step] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return func(yield func(Step) bool) {
		if t == nil {
			return
		}
		w := newExplorer(t, known, o)
		w.run(yield)
	}
}

// Reach drains Explore to its fixed point. Caller hooks still run.
func Reach(t *core.Table, known core.LabelSet, opts ...Option) *Result {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	res := &Result{Known: known, Found: known}
	onPass := o.OnPass
	hooks := []Option{
		WithOnEmit(o.OnEmit),
		WithOnPass(func(pass int, grew bool) {
			res.Passes = pass
			onPass(pass, grew)
		}),
	}

	for step := range Explore(t, known, hooks...) {
		res.Steps = append(res.Steps, step)
		res.Found = res.Found.Union(step.New)
	}

	return res
}

func newExplorer(t *core.Table, known core.LabelSet, o Options) *explorer {
	w := &explorer{
		edges:   t.Edges(),
		opts:    o,
		found:   make(map[core.Label]struct{}, known.Len()),
		yielded: make(map[*core.Converter]struct{}),
	}
	for _, l := range known.Labels() {
		w.found[l] = struct{}{}
	}

	return w
}

// run performs passes until one emits nothing or the consumer stops.
func (w *explorer) run(yield func(Step) bool) {
	for pass := 1; ; pass++ {
		grew := false
		for _, e := range w.edges {
			if !w.admissible(e) {
				continue
			}
			step := Step{Edge: e, New: w.admit(e), Pass: pass}
			grew = true
			w.opts.OnEmit(step)
			if !yield(step) {
				return
			}
		}
		w.opts.OnPass(pass, grew)
		if !grew {
			return
		}
	}
}

// admissible reports whether e fires now and adds information.
func (w *explorer) admissible(e core.Edge) bool {
	if _, done := w.yielded[e.Converter]; done {
		return false
	}

	return w.contains(e.Inputs) && !w.contains(e.Outputs)
}

// admit records e as emitted and returns the labels it added to found.
func (w *explorer) admit(e core.Edge) core.LabelSet {
	var fresh []core.Label
	for _, l := range e.Outputs.Labels() {
		if _, ok := w.found[l]; !ok {
			w.found[l] = struct{}{}
			fresh = append(fresh, l)
		}
	}
	w.yielded[e.Converter] = struct{}{}

	return core.NewLabelSet(fresh...)
}

func (w *explorer) contains(s core.LabelSet) bool {
	for _, l := range s.Labels() {
		if _, ok := w.found[l]; !ok {
			return false
		}
	}

	return true
}
