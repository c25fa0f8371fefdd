// File: table.go
// Role: Routing table storage: Insert/Remove/Converters/Edges/Inputs/Locate/Len.
// Determinism:
//   - Every level keeps registration order; Edges() enumerates input sets,
//     then output sets, then candidate converters, each in insertion order.
// Concurrency:
//   - None. Table is plain data; callers serialize mutations.

package core

import "slices"

// route holds the candidates registered for one (inputs, outputs) pair.
type route struct {
	outputs    LabelSet
	converters []*Converter
}

// fanout holds every output set registered under one input set.
type fanout struct {
	inputs LabelSet
	order  []string          // output keys in registration order
	routes map[string]*route // output key → route
}

// Table maps input LabelSets to output LabelSets to candidate Converters.
// The zero value is not usable; call NewTable.
type Table struct {
	order   []string           // input keys in registration order
	fanouts map[string]*fanout // input key → fanout
	edges   int                // total candidate count
}

// NewTable returns an empty Table.
// Complexity: O(1).
func NewTable() *Table {
	return &Table{fanouts: make(map[string]*fanout)}
}

// Insert appends conv as a candidate for (inputs, outputs). It performs no
// validation: empty sets, repeated converters and nil handles are stored as
// given so that validate.Check can report them.
// Complexity: O(1) amortized.
func (t *Table) Insert(inputs, outputs LabelSet, conv *Converter) {
	ik, okey := inputs.Key(), outputs.Key()
	f, exists := t.fanouts[ik]
	if !exists {
		f = &fanout{inputs: inputs, routes: make(map[string]*route)}
		t.fanouts[ik] = f
		t.order = append(t.order, ik)
	}
	r, exists := f.routes[okey]
	if !exists {
		r = &route{outputs: outputs}
		f.routes[okey] = r
		f.order = append(f.order, okey)
	}
	r.converters = append(r.converters, conv)
	t.edges++
}

// Remove deletes every occurrence of conv and prunes routes left empty.
// Returns true if anything was removed.
// Complexity: O(E).
func (t *Table) Remove(conv *Converter) bool {
	removed := false
	for _, ik := range slices.Clone(t.order) {
		f := t.fanouts[ik]
		for _, okey := range slices.Clone(f.order) {
			r := f.routes[okey]
			before := len(r.converters)
			r.converters = slices.DeleteFunc(r.converters, func(c *Converter) bool { return c == conv })
			if n := before - len(r.converters); n > 0 {
				removed = true
				t.edges -= n
			}
			if len(r.converters) == 0 {
				delete(f.routes, okey)
				f.order = slices.DeleteFunc(f.order, func(k string) bool { return k == okey })
			}
		}
		if len(f.routes) == 0 {
			delete(t.fanouts, ik)
			t.order = slices.DeleteFunc(t.order, func(k string) bool { return k == ik })
		}
	}

	return removed
}

// Converters returns the candidates registered for exactly (inputs, outputs),
// in registration order. It never fails; an unknown pair yields nil.
func (t *Table) Converters(inputs, outputs LabelSet) []*Converter {
	f, ok := t.fanouts[inputs.Key()]
	if !ok {
		return nil
	}
	r, ok := f.routes[outputs.Key()]
	if !ok {
		return nil
	}

	return slices.Clone(r.converters)
}

// Locate returns the first (inputs, outputs) pair conv is registered under.
func (t *Table) Locate(conv *Converter) (inputs, outputs LabelSet, found bool) {
	for _, e := range t.Edges() {
		if e.Converter == conv {
			return e.Inputs, e.Outputs, true
		}
	}

	return LabelSet{}, LabelSet{}, false
}

// Edges enumerates every candidate as an Edge, in registration order.
// Complexity: O(E).
func (t *Table) Edges() []Edge {
	out := make([]Edge, 0, t.edges)
	for _, ik := range t.order {
		f := t.fanouts[ik]
		for _, okey := range f.order {
			r := f.routes[okey]
			for _, c := range r.converters {
				out = append(out, Edge{Inputs: f.inputs, Outputs: r.outputs, Converter: c})
			}
		}
	}

	return out
}

// Inputs returns the registered input sets in registration order.
func (t *Table) Inputs() []LabelSet {
	out := make([]LabelSet, len(t.order))
	for i, ik := range t.order {
		out[i] = t.fanouts[ik].inputs
	}

	return out
}

// Labels returns every label mentioned by any input or output set.
func (t *Table) Labels() LabelSet {
	var out LabelSet
	for _, e := range t.Edges() {
		out = out.Union(e.Inputs).Union(e.Outputs)
	}

	return out
}

// Len returns the number of candidates (edges) in t.
func (t *Table) Len() int { return t.edges }
