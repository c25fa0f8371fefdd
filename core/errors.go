package core

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors matched by the typed errors below through errors.Is.
var (
	// ErrConfiguration indicates a routing table invariant was violated.
	ErrConfiguration = errors.New("core: invalid routing table")

	// ErrUnreachable indicates the requested labels cannot be produced.
	ErrUnreachable = errors.New("core: target labels unreachable")

	// ErrMissingInput indicates a label was absent from the data mapping when required.
	ErrMissingInput = errors.New("core: missing label in data")

	// ErrConverterFailed indicates a converter returned an error.
	ErrConverterFailed = errors.New("core: converter failed")
)

// Rule names a routing table invariant.
type Rule string

// Routing table invariants.
const (
	RuleEmptyInputs           Rule = "empty-inputs"
	RuleEmptyOutputs          Rule = "empty-outputs"
	RuleDuplicateConverter    Rule = "duplicate-converter"
	RuleDuplicateRegistration Rule = "duplicate-registration"
	RuleNonCanonicalSet       Rule = "non-canonical-set"
	RuleNilConverter          Rule = "nil-converter"
)

// Violation describes one broken invariant.
type Violation struct {
	Rule      Rule
	Inputs    LabelSet
	Outputs   LabelSet
	Converter *Converter
	Detail    string
}

// String renders v for error messages.
func (v Violation) String() string {
	s := fmt.Sprintf("%s at %s->%s", v.Rule, v.Inputs, v.Outputs)
	if v.Converter != nil {
		s += " (" + v.Converter.Name() + ")"
	}
	if v.Detail != "" {
		s += ": " + v.Detail
	}

	return s
}

// ConfigurationError reports routing table invariants violated by a mutation.
// The mutation that produced it was not applied.
type ConfigurationError struct {
	Violations []Violation
}

func (e *ConfigurationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}

	return fmt.Sprintf("%v: %s", ErrConfiguration, strings.Join(parts, "; "))
}

// Is matches ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// Has reports whether any violation of rule r is present.
func (e *ConfigurationError) Has(r Rule) bool {
	for _, v := range e.Violations {
		if v.Rule == r {
			return true
		}
	}

	return false
}

// UnreachableError reports labels that stayed unreached at the exploration fixed point.
type UnreachableError struct {
	Known   LabelSet
	Target  LabelSet
	Missing LabelSet
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("%v: %s from %s", ErrUnreachable, e.Missing, e.Known)
}

// Is matches ErrUnreachable.
func (e *UnreachableError) Is(target error) bool { return target == ErrUnreachable }

// MissingInputError reports a label absent from the data mapping.
// Step is the index of the path edge that needed it, or -1 when a requested
// target label never materialized.
type MissingInputError struct {
	Label     Label
	Converter *Converter
	Step      int
}

func (e *MissingInputError) Error() string {
	if e.Step < 0 || e.Converter == nil {
		return fmt.Sprintf("%v: %q", ErrMissingInput, e.Label)
	}

	return fmt.Sprintf("%v: %q required by %s at step %d", ErrMissingInput, e.Label, e.Converter.Name(), e.Step)
}

// Is matches ErrMissingInput.
func (e *MissingInputError) Is(target error) bool { return target == ErrMissingInput }

// ConverterError wraps an error returned by a converter during a walk.
type ConverterError struct {
	Converter *Converter
	Step      int
	Err       error
}

func (e *ConverterError) Error() string {
	return fmt.Sprintf("%v: %s at step %d: %v", ErrConverterFailed, e.Converter.Name(), e.Step, e.Err)
}

// Is matches ErrConverterFailed.
func (e *ConverterError) Is(target error) bool { return target == ErrConverterFailed }

// Unwrap exposes the converter's own error.
func (e *ConverterError) Unwrap() error { return e.Err }
