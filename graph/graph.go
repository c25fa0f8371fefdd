package graph

import (
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/graffunc/core"
	"github.com/katalvlaran/graffunc/search"
	"github.com/katalvlaran/graffunc/validate"
	"github.com/katalvlaran/graffunc/walk"
)

// Graph owns a routing table and resolves conversions over it.
type Graph struct {
	mu    sync.RWMutex // guards table
	table *core.Table

	logger     *zap.Logger
	duplicates DuplicatePolicy
	strategy   search.Strategy

	// internal error recorded during option parsing
	err error
}

// New creates an empty Graph. Defaults: no-op logger, DuplicateReject,
// search.Greedy. Returns ErrOptionViolation for invalid options.
func New(opts ...Option) (*Graph, error) {
	g := &Graph{
		table:      core.NewTable(),
		logger:     zap.NewNop(),
		duplicates: DuplicateReject,
		strategy:   search.Greedy,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.err != nil {
		return nil, g.err
	}

	return g, nil
}

// Add registers conv as a converter from inputs to outputs.
//
// Steps:
//  1. Identical (conv, inputs, outputs) already present: apply the duplicate policy.
//  2. Insert into a clone of the table.
//  3. Validate the clone; on violation return *core.ConfigurationError and
//     keep the current table untouched.
//  4. Swap the clone in.
//
// Distinct converters for the same pair are allowed and kept in
// registration order; the earliest one is preferred by every strategy.
// Complexity: O(E) for clone and validation.
func (g *Graph) Add(conv *core.Converter, inputs, outputs core.LabelSet) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if in, out, found := g.table.Locate(conv); found && in.Equal(inputs) && out.Equal(outputs) {
		if g.duplicates == DuplicateIgnore {
			g.logger.Debug("duplicate registration ignored",
				zap.Stringer("converter", conv),
				zap.Stringer("inputs", inputs),
				zap.Stringer("outputs", outputs))
			return nil
		}
		err := &core.ConfigurationError{Violations: []core.Violation{{
			Rule:      core.RuleDuplicateRegistration,
			Inputs:    inputs,
			Outputs:   outputs,
			Converter: conv,
			Detail:    "converter already registered for this pair",
		}}}
		g.logger.Warn("registration rejected", zap.Error(err))
		return err
	}

	next := g.table.Clone()
	next.Insert(inputs, outputs, conv)
	if err := validate.Validate(next); err != nil {
		g.logger.Warn("registration rejected", zap.Error(err))
		return err
	}
	g.table = next
	g.logger.Debug("converter registered",
		zap.Stringer("converter", conv),
		zap.Stringer("inputs", inputs),
		zap.Stringer("outputs", outputs),
		zap.Int("edges", next.Len()))

	return nil
}

// AddFunc wraps fn in a new Converter named name, registers it and returns the handle.
func (g *Graph) AddFunc(name string, fn core.Func, inputs, outputs core.LabelSet) (*core.Converter, error) {
	conv := core.NewConverter(name, fn)
	if err := g.Add(conv, inputs, outputs); err != nil {
		return nil, err
	}

	return conv, nil
}

// AddUnary registers a single-value converter from label in to label out.
func (g *Graph) AddUnary(name string, in, out core.Label, fn func(v any) (any, error)) (*core.Converter, error) {
	conv := core.Unary(name, in, out, fn)
	if err := g.Add(conv, core.NewLabelSet(in), core.NewLabelSet(out)); err != nil {
		return nil, err
	}

	return conv, nil
}

// Remove unregisters conv. Returns false if it was not registered.
func (g *Graph) Remove(conv *core.Converter) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	removed := g.table.Remove(conv)
	if removed {
		g.logger.Debug("converter removed", zap.Stringer("converter", conv))
	}

	return removed
}

// Converters returns the candidates registered for exactly (inputs, outputs).
// An unknown pair yields nil.
func (g *Graph) Converters(inputs, outputs core.LabelSet) []*core.Converter {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.table.Converters(inputs, outputs)
}

// RoutingTable returns a detached snapshot of the routing table.
func (g *Graph) RoutingTable() core.Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.table.Snapshot()
}

// Len returns the number of registered candidates.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.table.Len()
}

// Resolve returns the path the configured strategy chooses from known to
// target, without executing it. Non-canonical label sets are accepted and
// normalized first.
func (g *Graph) Resolve(known, target core.LabelSet, opts ...ConvertOption) (core.Path, error) {
	o := g.convertOptions(opts)

	return g.lockedResolve(canonical(known), canonical(target), o)
}

// Convert produces the target labels from source data. It is all-or-nothing:
// on error the returned Data is nil.
//
// Errors: *core.ConfigurationError (table invalid), *core.UnreachableError,
// *core.MissingInputError, *core.ConverterError.
func (g *Graph) Convert(source core.Data, target core.LabelSet, opts ...ConvertOption) (core.Data, error) {
	o := g.convertOptions(opts)
	target = canonical(target)

	// The path is fixed under the read lock; the walk runs without it, so
	// converters may call back into g.
	path, err := g.lockedResolve(source.Keys(), target, o)
	if err != nil {
		return nil, err
	}

	walkOpts := []walk.Option{walk.WithOnStep(func(i int, e core.Edge, _ core.Data) {
		g.logger.Debug("step applied", zap.Int("step", i), zap.Stringer("edge", e))
	})}
	if o.strict {
		walkOpts = append(walkOpts, walk.WithStrictOutputs())
	}
	out, err := walk.Walk(path, source, target, walkOpts...)
	if err != nil {
		g.logger.Debug("walk failed", zap.Stringer("path", path), zap.Error(err))
		return nil, err
	}

	return out, nil
}

func (g *Graph) lockedResolve(known, target core.LabelSet, o convertOptions) (core.Path, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.resolve(known, target, o)
}

// resolve validates the table and searches it; callers hold the read lock.
func (g *Graph) resolve(known, target core.LabelSet, o convertOptions) (core.Path, error) {
	if err := validate.Validate(g.table); err != nil {
		return nil, err
	}
	path, err := search.Search(g.table, known, target, o.strategy)
	if err != nil {
		g.logger.Debug("no path",
			zap.Stringer("known", known),
			zap.Stringer("target", target),
			zap.String("strategy", o.strategy.Name()),
			zap.Error(err))
		return nil, err
	}
	g.logger.Debug("path resolved",
		zap.Stringer("known", known),
		zap.Stringer("target", target),
		zap.String("strategy", o.strategy.Name()),
		zap.Stringer("path", path))

	return path, nil
}

func (g *Graph) convertOptions(opts []ConvertOption) convertOptions {
	o := convertOptions{strategy: g.strategy}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// canonical returns s sorted and deduplicated.
func canonical(s core.LabelSet) core.LabelSet {
	if s.Canonical() {
		return s
	}

	return core.NewLabelSet(s.Labels()...)
}
