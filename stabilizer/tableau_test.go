package stabilizer_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zxeval/pauli"
	"github.com/katalvlaran/zxeval/stabilizer"
)

func seeded() *stabilizer.Tableau {
	return stabilizer.NewTableau(stabilizer.WithRand(rand.New(rand.NewPCG(1, 2))))
}

func render(ps []pauli.PauliProduct) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}

	return out
}

// bell prepares (|00⟩+|11⟩)/√2 and returns its handles.
func bell(t *stabilizer.Tableau) (int, int) {
	a, b := t.QAlloc(), t.QAlloc()
	t.Hadamard(a)
	t.CNOT(a, b)

	return a, b
}

func TestTableau_AllocStartsInZero(t *testing.T) {
	tab := seeded()
	q := tab.QAlloc()
	assert.Equal(t, 0, q)
	assert.Equal(t, 1, tab.NumQubits())
	assert.Equal(t, []string{"+Z"}, render(tab.Stabilizers()))
	assert.Equal(t, 0.0, tab.Probability(q))

	m := tab.Measure(q, 1)
	assert.False(t, m.Result)
	assert.False(t, m.Random)
}

func TestTableau_Bell(t *testing.T) {
	tab := seeded()
	a, b := bell(tab)
	assert.Equal(t, []string{"+XX", "+ZZ"}, render(tab.Stabilizers()))
	assert.Equal(t, 0.5, tab.Probability(a))

	first := tab.Measure(a, 1)
	assert.True(t, first.Random)
	assert.True(t, first.Result)

	second := tab.Measure(b, 0)
	assert.False(t, second.Random)
	assert.True(t, second.Result, "partner must agree")
	assert.Equal(t, 1.0, tab.Probability(b))
}

func TestTableau_BiasZeroForcesFalse(t *testing.T) {
	tab := seeded()
	for k := 0; k < 20; k++ {
		q := tab.QAlloc()
		tab.Hadamard(q)
		m := tab.Measure(q, 0)
		require.True(t, m.Random)
		require.False(t, m.Result)
	}
}

func TestTableau_UnbiasedSamplesBoth(t *testing.T) {
	tab := seeded()
	seen := map[bool]int{}
	for k := 0; k < 200; k++ {
		q := tab.QAlloc()
		tab.Hadamard(q)
		seen[tab.Measure(q, stabilizer.Unbiased).Result]++
		tab.Free(q)
	}
	assert.Greater(t, seen[true], 50)
	assert.Greater(t, seen[false], 50)
	assert.Equal(t, 1, tab.NumQubits(), "freed handles are reused")
}

func TestTableau_GHZParity(t *testing.T) {
	tab := seeded()
	q := []int{tab.QAlloc(), tab.QAlloc(), tab.QAlloc()}
	tab.Hadamard(q[0])
	tab.CNOT(q[0], q[1])
	tab.CNOT(q[1], q[2])

	r0 := tab.Measure(q[0], stabilizer.Unbiased)
	assert.True(t, r0.Random)
	for _, k := range q[1:] {
		m := tab.Measure(k, stabilizer.Unbiased)
		assert.False(t, m.Random)
		assert.Equal(t, r0.Result, m.Result)
	}
}

func TestTableau_Collapse(t *testing.T) {
	tab := seeded()
	q := tab.QAlloc()
	assert.ErrorIs(t, tab.Collapse(q, true), stabilizer.ErrImpossibleCollapse)
	assert.NoError(t, tab.Collapse(q, false))

	tab.Hadamard(q)
	require.NoError(t, tab.Collapse(q, true))
	assert.Equal(t, 1.0, tab.Probability(q))
	assert.Equal(t, []string{"-Z"}, render(tab.Stabilizers()))
}

func TestTableau_FreeResets(t *testing.T) {
	tab := seeded()
	a := tab.QAlloc()
	stabilizer.X(tab, a)
	assert.Equal(t, 1.0, tab.Probability(a))
	tab.Free(a)

	b := tab.QAlloc()
	assert.Equal(t, a, b)
	assert.Equal(t, 0.0, tab.Probability(b))
}

func TestTableau_Misuse(t *testing.T) {
	tab := seeded()
	q := tab.QAlloc()
	assert.Panics(t, func() { tab.Hadamard(q + 1) })
	assert.Panics(t, func() { tab.CNOT(q, q) })
	tab.Free(q)
	assert.Panics(t, func() { tab.Phase(q) })

	tab.Destruct()
	assert.PanicsWithValue(t, stabilizer.ErrReleased, func() { tab.QAlloc() })
}
