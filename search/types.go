// Package search chooses a concrete core.Path from known labels to a target
// label set, on top of the reachability computed by package explore.
package search

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/graffunc/core"
)

// Sentinel errors for path search.
var (
	// ErrTableNil is returned when a nil *core.Table is searched.
	ErrTableNil = errors.New("search: table is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnknownStrategy is returned by ByName for an unregistered name.
	ErrUnknownStrategy = errors.New("search: unknown strategy")
)

// DefaultMaxStates bounds the number of found-set states Shortest explores.
const DefaultMaxStates = 4096

// Strategy selects a Path that turns known into a superset of target.
// Implementations fail with *core.UnreachableError when no path exists and
// must return a valid Path whenever one does.
type Strategy interface {
	// Name identifies the strategy in configuration and logs.
	Name() string

	// Search returns the chosen path. An empty path means target ⊆ known.
	Search(t *core.Table, known, target core.LabelSet) (core.Path, error)
}

// StrategyFunc adapts a plain function to Strategy.
type StrategyFunc func(t *core.Table, known, target core.LabelSet) (core.Path, error)

// Name implements Strategy.
func (f StrategyFunc) Name() string { return "func" }

// Search implements Strategy.
func (f StrategyFunc) Search(t *core.Table, known, target core.LabelSet) (core.Path, error) {
	return f(t, known, target)
}

// Search runs s over t; a nil s means Greedy.
func Search(t *core.Table, known, target core.LabelSet, s Strategy) (core.Path, error) {
	if t == nil {
		return nil, ErrTableNil
	}
	if s == nil {
		s = Greedy
	}

	return s.Search(t, known, target)
}

// Option configures a parameterized strategy.
type Option func(*Options)

// Options holds strategy parameters.
type Options struct {
	// MaxStates caps the states Shortest may enqueue before falling back to Pruned.
	MaxStates int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with MaxStates = DefaultMaxStates.
func DefaultOptions() Options {
	return Options{MaxStates: DefaultMaxStates}
}

// WithMaxStates sets the Shortest state budget.
//
//	n > 0: limit to n states
//	n <= 0: invalid option → ErrOptionViolation
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxStates must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

var registry = map[string]Strategy{
	"greedy":   Greedy,
	"pruned":   Pruned,
	"shortest": Shortest,
}

// ByName returns the built-in strategy registered under name.
func ByName(name string) (Strategy, error) {
	s, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownStrategy, name, Names())
	}

	return s, nil
}

// Names lists the built-in strategy names in ascending order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}

func unreachable(known, target, found core.LabelSet) error {
	return &core.UnreachableError{Known: known, Target: target, Missing: target.Minus(found)}
}
