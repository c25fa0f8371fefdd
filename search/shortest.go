package search

import (
	"github.com/katalvlaran/graffunc/core"
	"github.com/katalvlaran/graffunc/explore"
)

// Shortest is the minimum-edge-count strategy with DefaultMaxStates.
var Shortest Strategy = shortest{maxStates: DefaultMaxStates}

// NewShortest returns a Shortest strategy configured by opts.
// Returns ErrOptionViolation for invalid options.
func NewShortest(opts ...Option) (Strategy, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return shortest{maxStates: o.MaxStates}, nil
}

// shortest runs breadth-first search over found-set states. A state is the
// set of labels known after some prefix of edges; its neighbors are the
// states reached by firing one more usable edge. The first state covering
// the target is reached by a minimum number of edges.
//
// Only edges usable at the explorer's fixed point are considered, and only
// the first candidate of each (inputs, outputs) pair, since interchangeable
// converters lead to the same state. When more than maxStates states would
// be enqueued the search falls back to Pruned, which keeps the strategy
// complete at the cost of optimality.
type shortest struct {
	maxStates int
}

// stateItem pairs a found set with the queue index of its parent and the
// candidate edge that produced it.
type stateItem struct {
	found  core.LabelSet
	parent int // -1 for root
	edge   int // index into walker.edges; -1 for root
}

// stateWalker encapsulates mutable BFS state.
type stateWalker struct {
	edges   []core.Edge
	target  core.LabelSet
	queue   []stateItem
	visited map[string]bool
	limit   int
}

func (shortest) Name() string { return "shortest" }

func (s shortest) Search(t *core.Table, known, target core.LabelSet) (core.Path, error) {
	if t == nil {
		return nil, ErrTableNil
	}
	if target.SubsetOf(known) {
		return core.Path{}, nil
	}
	reach := explore.Reach(t, known)
	if !reach.Covers(target) {
		return nil, unreachable(known, target, reach.Found)
	}

	w := &stateWalker{
		edges:   firstCandidates(reach.Usable(t)),
		target:  target,
		visited: map[string]bool{known.Key(): true},
		limit:   s.maxStates,
	}
	w.queue = append(w.queue, stateItem{found: known, parent: -1, edge: -1})

	if goal, ok := w.loop(); ok {
		return w.pathTo(goal), nil
	}

	return Pruned.Search(t, known, target)
}

// loop processes the queue until the target is covered or the budget is spent.
// Returns the goal's queue index.
func (w *stateWalker) loop() (int, bool) {
	for head := 0; head < len(w.queue); head++ {
		cur := w.queue[head].found
		for i, e := range w.edges {
			if !e.Inputs.SubsetOf(cur) || e.Outputs.SubsetOf(cur) {
				continue
			}
			next := cur.Union(e.Outputs)
			if w.visited[next.Key()] {
				continue
			}
			if len(w.queue) >= w.limit {
				return 0, false
			}
			w.visited[next.Key()] = true
			w.queue = append(w.queue, stateItem{found: next, parent: head, edge: i})
			if w.target.SubsetOf(next) {
				return len(w.queue) - 1, true
			}
		}
	}

	return 0, false
}

// pathTo reconstructs the edge sequence from the root to the goal state.
func (w *stateWalker) pathTo(goal int) core.Path {
	var rev core.Path
	for cur := goal; w.queue[cur].parent >= 0; cur = w.queue[cur].parent {
		rev = append(rev, w.edges[w.queue[cur].edge])
	}
	// reverse to get root → goal
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// firstCandidates keeps the earliest registered converter per (inputs, outputs) pair.
func firstCandidates(edges []core.Edge) []core.Edge {
	seen := make(map[[2]string]bool, len(edges))
	out := make([]core.Edge, 0, len(edges))
	for _, e := range edges {
		k := [2]string{e.Inputs.Key(), e.Outputs.Key()}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, e)
	}

	return out
}
