// Package explore computes which converters of a core.Table become usable
// from a starting set of known labels.
//
// What
//
//	Exploration is a level-less breadth-first search over a hypergraph: an
//	edge fires only when its whole input LabelSet is already found. Starting
//	from Found = known, the explorer makes full passes over Table.Edges(); an
//	edge is emitted when
//	  - its inputs are a subset of Found,
//	  - its converter has not been emitted yet in this run, and
//	  - its outputs are not already contained in Found.
//	Emitting adds the outputs to Found immediately, so later edges in the
//	same pass can use them. A pass with no emission is the fixed point.
//
// Guarantees
//
//   - Termination: every emitting pass grows Found, and Found is bounded by
//     the labels in the table, so there are at most |labels| emitting passes
//     plus one final pass that detects the fixed point.
//   - No duplicate emission: a converter is emitted at most once per run.
//   - Monotonic Found: labels are only ever added.
//   - Completeness: any label reachable by some sequence of edges is in the
//     fixed point.
//
// Laziness
//
//	Explore returns an iter.Seq. Each range over it restarts from scratch
//	with a fresh Found set; breaking out early stops the work. There is no
//	persisted cursor. Reach drains the sequence and reports the fixed point.
//
// Determinism
//
//	Edges are visited in Table registration order, so the emission sequence
//	for a given table and known set is reproducible.
//
// Complexity (E = candidates, L = labels in the table)
//
//   - Time:   O(L · E · s) where s is the largest label set size.
//   - Memory: O(L + E).
//
// Usage
//
//	for step := range explore.Explore(tbl, known) {
//	    fmt.Println(step.Edge.Converter.Name(), step.New)
//	}
//
//	res := explore.Reach(tbl, known, explore.WithOnPass(func(pass int, grew bool) {}))
//	if !res.Covers(target) { /* unreachable */ }
package explore
