package zxeval_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/katalvlaran/zxeval/zxeval"
	"github.com/katalvlaran/zxeval/zxgraph"
)

// chain is an input and an output joined by n alternating Z and X spiders.
func chain(n int) *zxgraph.Graph {
	var b strings.Builder
	b.WriteString("!")
	for k := 0; k < n; k++ {
		b.WriteString("---")
		b.WriteString([]string{"@", "O"}[k%2])
	}
	b.WriteString("---?")

	return zxgraph.MustFromDiagram(b.String())
}

func BenchmarkEvaluate_Chain(b *testing.B) {
	g := chain(32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := zxeval.Evaluate(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAnalyze_CNOT(b *testing.B) {
	g := zxgraph.MustFromDiagram(cnotDiagram)
	opt := zxeval.WithRand(rand.New(rand.NewPCG(1, 1)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := zxeval.Analyze(g, opt); err != nil {
			b.Fatal(err)
		}
	}
}
