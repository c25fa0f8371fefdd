package search

import (
	"slices"

	"github.com/katalvlaran/graffunc/core"
)

// Pruned runs Greedy and then drops every edge whose outputs feed neither
// the target nor a later kept edge.
//
// Backward relevance pass over the greedy path p:
//
//	need := target − known
//	for i := len(p)-1 … 0:
//	    if p[i].Outputs ∩ need ≠ ∅: keep p[i]; need = (need − p[i].Outputs) ∪ (p[i].Inputs − known)
//
// A kept edge's inputs were available at its greedy position, and each
// needed label is attributed to the closest earlier producer, so the result
// is still a valid path. Complexity: O(|p| · s).
var Pruned Strategy = pruned{}

type pruned struct{}

func (pruned) Name() string { return "pruned" }

func (pruned) Search(t *core.Table, known, target core.LabelSet) (core.Path, error) {
	path, err := Greedy.Search(t, known, target)
	if err != nil {
		return nil, err
	}

	return prune(path, known, target), nil
}

func prune(path core.Path, known, target core.LabelSet) core.Path {
	need := target.Minus(known)
	kept := make(core.Path, 0, len(path))
	for i := len(path) - 1; i >= 0 && !need.Empty(); i-- {
		e := path[i]
		if !e.Outputs.Intersects(need) {
			continue
		}
		kept = append(kept, e)
		need = need.Minus(e.Outputs).Union(e.Inputs.Minus(known))
	}
	slices.Reverse(kept)

	return kept
}
