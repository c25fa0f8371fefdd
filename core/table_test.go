package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graffunc/core"
)

// cmpOpts compares LabelSets by content and Converters by identity.
var cmpOpts = cmp.Options{
	cmp.Comparer(func(a, b core.LabelSet) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b *core.Converter) bool { return a == b }),
}

func identity(in core.Data) (core.Data, error) { return in, nil }

// TestTable_InsertOrder verifies registration order is kept at every level.
func TestTable_InsertOrder(t *testing.T) {
	tb := core.NewTable()
	a, b, c := core.NewLabelSet("a"), core.NewLabelSet("b"), core.NewLabelSet("c")
	f := core.NewConverter("f", identity)
	g := core.NewConverter("g", identity)
	h := core.NewConverter("h", identity)

	tb.Insert(b, c, g)
	tb.Insert(a, b, f)
	tb.Insert(b, c, h)

	require.Equal(t, 3, tb.Len())
	want := core.Path{
		{Inputs: b, Outputs: c, Converter: g},
		{Inputs: b, Outputs: c, Converter: h},
		{Inputs: a, Outputs: b, Converter: f},
	}
	if diff := cmp.Diff(want, core.Path(tb.Edges()), cmpOpts); diff != "" {
		t.Errorf("Edges() mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, []*core.Converter{g, h}, tb.Converters(b, c))
	require.Nil(t, tb.Converters(c, a))
	require.Contains(t, tb.Converters(a, b), f)
	require.NotContains(t, tb.Converters(a, b), g)

	in, out, ok := tb.Locate(h)
	require.True(t, ok)
	require.True(t, in.Equal(b))
	require.True(t, out.Equal(c))

	require.True(t, tb.Labels().Equal(core.NewLabelSet("a", "b", "c")))
	require.Len(t, tb.Inputs(), 2)
}

// TestTable_Remove verifies Remove prunes emptied routes.
func TestTable_Remove(t *testing.T) {
	tb := core.NewTable()
	a, b := core.NewLabelSet("a"), core.NewLabelSet("b")
	f := core.NewConverter("f", identity)
	g := core.NewConverter("g", identity)
	tb.Insert(a, b, f)
	tb.Insert(a, b, g)

	require.True(t, tb.Remove(f))
	require.False(t, tb.Remove(f))
	require.Equal(t, []*core.Converter{g}, tb.Converters(a, b))

	require.True(t, tb.Remove(g))
	require.Zero(t, tb.Len())
	require.Empty(t, tb.Edges())
	require.Empty(t, tb.Inputs(), "empty input sets are pruned")
}

// TestTable_CloneAndSnapshotDetached verifies clones and snapshots are independent of the table.
func TestTable_CloneAndSnapshotDetached(t *testing.T) {
	tb := core.NewTable()
	a, b := core.NewLabelSet("a"), core.NewLabelSet("b")
	f := core.NewConverter("f", identity)
	tb.Insert(a, b, f)

	before := tb.Snapshot()
	snap := tb.Snapshot()
	snap[0].Converters[0] = nil
	snap = append(snap, core.Route{Inputs: b, Outputs: a})
	_ = snap

	clone := tb.Clone()
	clone.Insert(b, a, core.NewConverter("g", identity))

	if diff := cmp.Diff(before, tb.Snapshot(), cmpOpts); diff != "" {
		t.Errorf("table changed through a snapshot or clone (-before +after):\n%s", diff)
	}
	require.Equal(t, 2, clone.Len())
	require.Equal(t, 1, tb.Len())

	require.True(t, tb.Remove(f))
	require.Zero(t, tb.Len())
	require.Equal(t, 2, clone.Len())
}

// TestSnapshot_Table verifies a snapshot rebuilds an equivalent table.
func TestSnapshot_Table(t *testing.T) {
	tb := core.NewTable()
	a, b, c := core.NewLabelSet("a"), core.NewLabelSet("b"), core.NewLabelSet("c")
	tb.Insert(b, c, core.NewConverter("g", identity))
	tb.Insert(a, b, core.NewConverter("f", identity))
	tb.Insert(b, c, core.NewConverter("h", identity))

	rebuilt := tb.Snapshot().Table()
	require.Equal(t, tb.Len(), rebuilt.Len())
	if diff := cmp.Diff(core.Path(tb.Edges()), core.Path(rebuilt.Edges()), cmpOpts); diff != "" {
		t.Errorf("rebuilt table mismatch (-orig +rebuilt):\n%s", diff)
	}

	snap := tb.Snapshot()
	require.Len(t, snap.Converters(b, c), 2)
	require.Equal(t, "h", snap.Converters(b, c)[1].Name())
	require.Nil(t, snap.Converters(c, a))

	rebuilt.Remove(rebuilt.Edges()[0].Converter)
	require.Equal(t, 3, tb.Len())
}

// TestPath_Helpers verifies Path helpers.
func TestPath_Helpers(t *testing.T) {
	f := core.NewConverter("f", identity)
	g := core.NewConverter("g", identity)
	p := core.Path{
		{Inputs: core.NewLabelSet("a"), Outputs: core.NewLabelSet("b"), Converter: f},
		{Inputs: core.NewLabelSet("b"), Outputs: core.NewLabelSet("c", "d"), Converter: g},
	}
	require.Equal(t, []*core.Converter{f, g}, p.Converters())
	require.True(t, p.Produces().Equal(core.NewLabelSet("b", "c", "d")))
	require.Equal(t, "f:{a}->{b} | g:{b}->{c,d}", p.String())
}
