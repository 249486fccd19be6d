package pauli_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/zxeval/pauli"
)

// BenchmarkGaussianEliminate_32x32 reduces 32 random rows over 32 qubits.
func BenchmarkGaussianEliminate_32x32(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 1))
	rows := make([]pauli.PauliProduct, 32)
	for k := range rows {
		rows[k] = randomProduct(rng, 32)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pauli.GaussianEliminate(rows); err != nil {
			b.Fatalf("GaussianEliminate failed: %v", err)
		}
	}
}
