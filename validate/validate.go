// Package validate checks the structural invariants of a core.Table.
//
// Invariants:
//
//   - RuleEmptyInputs:        no input LabelSet is empty.
//   - RuleEmptyOutputs:       no output LabelSet is empty.
//   - RuleDuplicateConverter: a Converter appears under exactly one
//     (inputs, outputs) pair, and at most once within it.
//   - RuleNonCanonicalSet:    every LabelSet is sorted with no duplicate labels.
//   - RuleNilConverter:       every candidate is a non-nil handle with a function.
//
// Check collects every violation in registration order; Validate wraps them
// in a *core.ConfigurationError. Both only read the table.
//
// Complexity: O(E · L) where L is the largest label set.
package validate

import (
	"fmt"

	"github.com/katalvlaran/graffunc/core"
)

// Check returns every invariant violation found in t, or nil if t is valid.
// A nil table is treated as empty.
func Check(t *core.Table) []core.Violation {
	if t == nil {
		return nil
	}
	var out []core.Violation
	// first location of each converter, for duplicate reporting
	seen := make(map[*core.Converter]core.Edge)
	// sets already reported as non-canonical, so each is flagged once
	flagged := make(map[string]bool)

	for _, e := range t.Edges() {
		if e.Inputs.Empty() {
			out = append(out, violation(core.RuleEmptyInputs, e, "input label set is empty"))
		}
		if e.Outputs.Empty() {
			out = append(out, violation(core.RuleEmptyOutputs, e, "output label set is empty"))
		}
		for _, s := range []core.LabelSet{e.Inputs, e.Outputs} {
			if !s.Canonical() && !flagged[s.Key()] {
				flagged[s.Key()] = true
				out = append(out, violation(core.RuleNonCanonicalSet, e,
					fmt.Sprintf("label set %s is not a set", s)))
			}
		}
		if !e.Converter.Valid() {
			out = append(out, violation(core.RuleNilConverter, e, "converter has no function"))
			if e.Converter == nil {
				continue
			}
		}
		if first, dup := seen[e.Converter]; dup {
			out = append(out, violation(core.RuleDuplicateConverter, e,
				fmt.Sprintf("already registered at %s->%s", first.Inputs, first.Outputs)))
			continue
		}
		seen[e.Converter] = e
	}

	return out
}

// Validate returns nil if t satisfies every invariant, otherwise a
// *core.ConfigurationError listing all violations.
func Validate(t *core.Table) error {
	if v := Check(t); len(v) > 0 {
		return &core.ConfigurationError{Violations: v}
	}

	return nil
}

func violation(r core.Rule, e core.Edge, detail string) core.Violation {
	return core.Violation{
		Rule:      r,
		Inputs:    e.Inputs,
		Outputs:   e.Outputs,
		Converter: e.Converter,
		Detail:    detail,
	}
}
