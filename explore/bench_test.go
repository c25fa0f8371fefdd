package explore_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/graffunc/core"
	"github.com/katalvlaran/graffunc/explore"
)

// BenchmarkReach_ReverseChain1000 registers L999→L1000, ..., L0→L1 so that
// every pass admits exactly one edge: the worst case of L passes over E edges.
func BenchmarkReach_ReverseChain1000(b *testing.B) {
	tb := core.NewTable()
	for i := 999; i >= 0; i-- {
		tb.Insert(
			core.NewLabelSet(core.Label(fmt.Sprintf("L%d", i))),
			core.NewLabelSet(core.Label(fmt.Sprintf("L%d", i+1))),
			core.NewConverter(fmt.Sprintf("c%d", i), identity),
		)
	}
	known := core.NewLabelSet("L0")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = explore.Reach(tb, known)
	}
}
