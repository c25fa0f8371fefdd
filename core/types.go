// File: types.go
// Role: Label, LabelSet and Data value types.
// Determinism:
//   - LabelSet.Labels() is sorted ascending; Key() is a stable textual encoding.
// Concurrency:
//   - LabelSet is immutable after construction and safe to share.

package core

import (
	"slices"
	"strconv"
	"strings"
)

// Label names a kind of data. No internal structure is assumed.
type Label string

// LabelSet is an immutable set of Labels kept in canonical (sorted, unique) form.
// The zero value is the empty set.
type LabelSet struct {
	labels []Label
}

// NewLabelSet builds a canonical LabelSet from labels; duplicates collapse.
// Complexity: O(n log n).
func NewLabelSet(labels ...Label) LabelSet {
	if len(labels) == 0 {
		return LabelSet{}
	}
	out := make([]Label, len(labels))
	copy(out, labels)
	slices.Sort(out)

	return LabelSet{labels: slices.Compact(out)}
}

// UncheckedLabelSet wraps labels as given, without sorting or deduplication.
// It exists for callers that already hold canonical data; sets that turn out
// not to be canonical are reported by validate.Check as RuleNonCanonicalSet
// when used as table keys. Set algebra assumes canonical sets; graph.Graph
// normalizes known and target sets before using them.
func UncheckedLabelSet(labels ...Label) LabelSet {
	if len(labels) == 0 {
		return LabelSet{}
	}

	return LabelSet{labels: slices.Clone(labels)}
}

// Len returns the number of labels in s.
func (s LabelSet) Len() int { return len(s.labels) }

// Empty reports whether s has no labels.
func (s LabelSet) Empty() bool { return len(s.labels) == 0 }

// Labels returns a copy of the labels in ascending order.
func (s LabelSet) Labels() []Label { return slices.Clone(s.labels) }

// Has reports whether l is a member of s.
// Complexity: O(log n).
func (s LabelSet) Has(l Label) bool {
	_, ok := slices.BinarySearch(s.labels, l)

	return ok
}

// SubsetOf reports whether every label of s is in other.
// Complexity: O(|s| + |other|) merge walk.
func (s LabelSet) SubsetOf(other LabelSet) bool {
	if len(s.labels) > len(other.labels) {
		return false
	}
	j := 0
	for _, l := range s.labels {
		for j < len(other.labels) && other.labels[j] < l {
			j++
		}
		if j == len(other.labels) || other.labels[j] != l {
			return false
		}
		j++
	}

	return true
}

// Equal reports whether s and other hold the same labels.
func (s LabelSet) Equal(other LabelSet) bool {
	return slices.Equal(s.labels, other.labels)
}

// Intersects reports whether s and other share at least one label.
func (s LabelSet) Intersects(other LabelSet) bool {
	i, j := 0, 0
	for i < len(s.labels) && j < len(other.labels) {
		switch {
		case s.labels[i] == other.labels[j]:
			return true
		case s.labels[i] < other.labels[j]:
			i++
		default:
			j++
		}
	}

	return false
}

// Union returns s ∪ other.
func (s LabelSet) Union(other LabelSet) LabelSet {
	if len(other.labels) == 0 {
		return s
	}
	if len(s.labels) == 0 {
		return other
	}
	out := make([]Label, 0, len(s.labels)+len(other.labels))
	i, j := 0, 0
	for i < len(s.labels) && j < len(other.labels) {
		switch {
		case s.labels[i] == other.labels[j]:
			out = append(out, s.labels[i])
			i++
			j++
		case s.labels[i] < other.labels[j]:
			out = append(out, s.labels[i])
			i++
		default:
			out = append(out, other.labels[j])
			j++
		}
	}
	out = append(out, s.labels[i:]...)
	out = append(out, other.labels[j:]...)

	return LabelSet{labels: out}
}

// Minus returns the labels of s that are not in other.
func (s LabelSet) Minus(other LabelSet) LabelSet {
	var out []Label
	j := 0
	for _, l := range s.labels {
		for j < len(other.labels) && other.labels[j] < l {
			j++
		}
		if j < len(other.labels) && other.labels[j] == l {
			continue
		}
		out = append(out, l)
	}

	return LabelSet{labels: out}
}

// Canonical reports whether s is strictly ascending (sorted, no duplicates).
// Sets built with NewLabelSet are always canonical.
func (s LabelSet) Canonical() bool {
	for i := 1; i < len(s.labels); i++ {
		if s.labels[i-1] >= s.labels[i] {
			return false
		}
	}

	return true
}

// Key returns a stable string usable as a map key. Each label is length-prefixed,
// so labels containing arbitrary bytes cannot collide.
func (s LabelSet) Key() string {
	var b strings.Builder
	for _, l := range s.labels {
		b.WriteString(strconv.Itoa(len(l)))
		b.WriteByte(':')
		b.WriteString(string(l))
	}

	return b.String()
}

// String renders s as {a,b,c}.
func (s LabelSet) String() string {
	parts := make([]string, len(s.labels))
	for i, l := range s.labels {
		parts[i] = string(l)
	}

	return "{" + strings.Join(parts, ",") + "}"
}

// Data maps Labels to values. It is the payload threaded through a walk.
type Data map[Label]any

// Clone returns a shallow copy of d. Values are shared.
func (d Data) Clone() Data {
	out := make(Data, len(d))
	for k, v := range d {
		out[k] = v
	}

	return out
}

// Keys returns the labels present in d.
func (d Data) Keys() LabelSet {
	labels := make([]Label, 0, len(d))
	for k := range d {
		labels = append(labels, k)
	}

	return NewLabelSet(labels...)
}

// Project returns the entries of d whose labels are in set, along with the
// labels of set that d does not hold.
func (d Data) Project(set LabelSet) (Data, LabelSet) {
	out := make(Data, set.Len())
	var missing []Label
	for _, l := range set.labels {
		v, ok := d[l]
		if !ok {
			missing = append(missing, l)
			continue
		}
		out[l] = v
	}

	return out, LabelSet{labels: missing}
}

// Merge copies every entry of other into d; existing labels are overwritten.
func (d Data) Merge(other Data) {
	for k, v := range other {
		d[k] = v
	}
}
