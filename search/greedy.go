package search

import (
	"github.com/katalvlaran/graffunc/core"
	"github.com/katalvlaran/graffunc/explore"
)

// Greedy is the default strategy: it appends explorer emissions in order and
// stops as soon as the target is covered.
//
// The result is first-found, not shortest. It depends on table registration
// order and may contain edges that do not contribute to the target. It always
// succeeds when any path exists, because the explorer's fixed point is
// complete.
var Greedy Strategy = greedy{}

type greedy struct{}

func (greedy) Name() string { return "greedy" }

func (greedy) Search(t *core.Table, known, target core.LabelSet) (core.Path, error) {
	if t == nil {
		return nil, ErrTableNil
	}
	found := known
	if target.SubsetOf(found) {
		return core.Path{}, nil
	}

	var path core.Path
	for step := range explore.Explore(t, known) {
		path = append(path, step.Edge)
		found = found.Union(step.New)
		if target.SubsetOf(found) {
			return path, nil
		}
	}

	return nil, unreachable(known, target, found)
}
