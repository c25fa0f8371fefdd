// Package graph is the facade that owns a routing table and turns
// registrations and conversion requests into validated table mutations,
// path searches and walks.
//
// Each Graph owns its own table; there is no process-wide registry, so any
// number of independent graphs can coexist.
//
// Concurrency
//
//	A Graph guards its table with a sync.RWMutex. Registrations take the
//	write lock; Resolve and the path-resolution part of Convert take the read
//	lock, so concurrent conversions proceed in parallel and never observe a
//	half-applied registration. The walk itself runs after the lock is
//	released: a Convert executes the path chosen at the time it resolved,
//	and converters may call back into the same Graph (Add, Remove, Convert).
//
//	Converters are assumed pure and synchronous. There is no cancellation at
//	this layer; a hung converter hangs Convert.
package graph

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/graffunc/search"
)

// ErrOptionViolation is returned by New when an invalid Option is supplied.
var ErrOptionViolation = errors.New("graph: invalid option supplied")

// DuplicatePolicy decides what Add does when the identical converter is
// registered again for the identical (inputs, outputs) pair.
type DuplicatePolicy int

const (
	// DuplicateReject fails with a ConfigurationError (RuleDuplicateRegistration).
	DuplicateReject DuplicatePolicy = iota

	// DuplicateIgnore treats the repeated registration as a no-op.
	DuplicateIgnore
)

// String implements fmt.Stringer.
func (p DuplicatePolicy) String() string {
	switch p {
	case DuplicateReject:
		return "reject"
	case DuplicateIgnore:
		return "ignore"
	default:
		return fmt.Sprintf("DuplicatePolicy(%d)", int(p))
	}
}

// ParseDuplicatePolicy maps "reject" or "ignore" to a DuplicatePolicy.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch s {
	case "reject", "":
		return DuplicateReject, nil
	case "ignore":
		return DuplicateIgnore, nil
	default:
		return DuplicateReject, fmt.Errorf("%w: unknown duplicate policy %q", ErrOptionViolation, s)
	}
}

// Option configures a Graph at construction.
type Option func(*Graph)

// WithLogger sets the structured logger. Nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(g *Graph) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithDuplicatePolicy sets the re-registration policy.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(g *Graph) {
		if p != DuplicateReject && p != DuplicateIgnore {
			g.err = fmt.Errorf("%w: %v", ErrOptionViolation, p)
			return
		}
		g.duplicates = p
	}
}

// WithStrategy sets the default search strategy used by Convert and Resolve.
// Nil keeps search.Greedy.
func WithStrategy(s search.Strategy) Option {
	return func(g *Graph) {
		if s != nil {
			g.strategy = s
		}
	}
}

// ConvertOption adjusts a single Convert or Resolve call.
type ConvertOption func(*convertOptions)

type convertOptions struct {
	strategy search.Strategy
	strict   bool
}

// WithSearchStrategy overrides the Graph's default strategy for one call.
func WithSearchStrategy(s search.Strategy) ConvertOption {
	return func(o *convertOptions) {
		if s != nil {
			o.strategy = s
		}
	}
}

// WithStrictOutputs makes the walk fail at the first converter that omits
// one of its declared outputs.
func WithStrictOutputs() ConvertOption {
	return func(o *convertOptions) {
		o.strict = true
	}
}
