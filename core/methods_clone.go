// File: methods_clone.go
// Role: Cloning and snapshotting routing tables.
// Determinism:
//   - Clone and Snapshot preserve registration order at every level.
// Concurrency:
//   - Reads only; the source Table is never mutated.

package core

import "slices"

// Route is one (inputs, outputs) entry of a Snapshot with its candidates.
type Route struct {
	Inputs     LabelSet
	Outputs    LabelSet
	Converters []*Converter
}

// Snapshot is a detached, registration-ordered view of a Table.
// Mutating a Snapshot never affects the Table it came from.
type Snapshot []Route

// Clone returns a deep copy of the Table structure. Converter handles are
// shared; they are immutable.
//
// Complexity: O(E).
func (t *Table) Clone() *Table {
	clone := &Table{
		order:   slices.Clone(t.order),
		fanouts: make(map[string]*fanout, len(t.fanouts)),
		edges:   t.edges,
	}
	var (
		ik, okey string
		f        *fanout
		r        *route
	)
	for ik, f = range t.fanouts {
		nf := &fanout{
			inputs: f.inputs,
			order:  slices.Clone(f.order),
			routes: make(map[string]*route, len(f.routes)),
		}
		for okey, r = range f.routes {
			nf.routes[okey] = &route{outputs: r.outputs, converters: slices.Clone(r.converters)}
		}
		clone.fanouts[ik] = nf
	}

	return clone
}

// Snapshot returns the table as a flat list of routes in registration order.
//
// Complexity: O(E).
func (t *Table) Snapshot() Snapshot {
	out := make(Snapshot, 0, len(t.order))
	for _, ik := range t.order {
		f := t.fanouts[ik]
		for _, okey := range f.order {
			r := f.routes[okey]
			out = append(out, Route{
				Inputs:     f.inputs,
				Outputs:    r.outputs,
				Converters: slices.Clone(r.converters),
			})
		}
	}

	return out
}

// Table rebuilds a standalone Table from the snapshot, preserving order.
// Routes are inserted as-is; run validation on the result if the snapshot
// was edited.
func (s Snapshot) Table() *Table {
	t := NewTable()
	for _, r := range s {
		for _, c := range r.Converters {
			t.Insert(r.Inputs, r.Outputs, c)
		}
	}

	return t
}

// Converters returns the candidates recorded for (inputs, outputs), or nil.
func (s Snapshot) Converters(inputs, outputs LabelSet) []*Converter {
	for _, r := range s {
		if r.Inputs.Equal(inputs) && r.Outputs.Equal(outputs) {
			return r.Converters
		}
	}

	return nil
}
