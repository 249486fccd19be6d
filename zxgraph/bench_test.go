package zxgraph_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/zxeval/zxgraph"
)

// ladder builds an n-rung CNOT ladder diagram.
func ladder(n int) string {
	var rows []string
	for i := 0; i < n; i++ {
		rows = append(rows, "!---@---?", "    |", "    |", "    |", "!---O---?")
		if i+1 < n {
			rows = append(rows, "", "", "")
		}
	}

	return strings.Join(rows, "\n")
}

func BenchmarkFromDiagram_Ladder32(b *testing.B) {
	text := ladder(32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := zxgraph.FromDiagram(text); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNewPortQubitMapping_Ladder32(b *testing.B) {
	g := zxgraph.MustFromDiagram(ladder(32))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := zxgraph.NewPortQubitMapping(g); err != nil {
			b.Fatal(err)
		}
	}
}
