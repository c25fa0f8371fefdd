package walk

import "github.com/katalvlaran/graffunc/core"

// walker encapsulates mutable walk state.
type walker struct {
	opts Options
	data core.Data
}

// Walk applies path to source and returns the values of target.
func Walk(path core.Path, source core.Data, target core.LabelSet, opts ...Option) (core.Data, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	w := &walker{opts: o, data: source.Clone()}

	for i, e := range path {
		if err := w.step(i, e); err != nil {
			return nil, err
		}
	}

	out, missing := w.data.Project(target)
	if !missing.Empty() {
		return nil, &core.MissingInputError{Label: missing.Labels()[0], Step: -1}
	}

	return out, nil
}

// step runs edge i: input check, call, optional output check, merge.
func (w *walker) step(i int, e core.Edge) error {
	in, missing := w.data.Project(e.Inputs)
	if !missing.Empty() {
		return &core.MissingInputError{Label: missing.Labels()[0], Converter: e.Converter, Step: i}
	}

	out, err := e.Converter.Call(in)
	if err != nil {
		return &core.ConverterError{Converter: e.Converter, Step: i, Err: err}
	}
	w.opts.OnStep(i, e, out)

	if w.opts.StrictOutputs {
		for _, l := range e.Outputs.Labels() {
			if _, ok := out[l]; !ok {
				return &core.MissingInputError{Label: l, Converter: e.Converter, Step: i}
			}
		}
	}
	w.data.Merge(out)

	return nil
}
