package stabilizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zxeval/pauli"
	"github.com/katalvlaran/zxeval/stabilizer"
)

func TestDerivedGates(t *testing.T) {
	tab := seeded()
	q := tab.QAlloc()
	stabilizer.Z(tab, q)
	assert.Equal(t, []string{"+Z"}, render(tab.Stabilizers()))
	stabilizer.X(tab, q)
	assert.Equal(t, []string{"-Z"}, render(tab.Stabilizers()))

	tab.Hadamard(q)
	assert.Equal(t, []string{"-X"}, render(tab.Stabilizers()))
	stabilizer.SDagger(tab, q)
	assert.Equal(t, []string{"+Y"}, render(tab.Stabilizers()))
}

func TestSwap(t *testing.T) {
	tab := seeded()
	a, b := tab.QAlloc(), tab.QAlloc()
	stabilizer.X(tab, a)
	stabilizer.Swap(tab, a, b)
	assert.Equal(t, 0.0, tab.Probability(a))
	assert.Equal(t, 1.0, tab.Probability(b))
}

func TestBlochVector(t *testing.T) {
	tab := seeded()
	q := tab.QAlloc()
	assert.Equal(t, [3]float64{0, 0, 1}, stabilizer.BlochVector(tab, q))

	tab.Hadamard(q)
	assert.Equal(t, [3]float64{1, 0, 0}, stabilizer.BlochVector(tab, q))

	tab.Phase(q)
	assert.Equal(t, [3]float64{0, 1, 0}, stabilizer.BlochVector(tab, q))
	assert.Equal(t, [3]float64{0, 1, 0}, stabilizer.BlochVector(tab, q), "state is left unchanged")

	a, b := bell(tab)
	assert.Equal(t, [3]float64{0, 0, 0}, stabilizer.BlochVector(tab, a))
	_ = b
}

func TestMeasureObservable(t *testing.T) {
	tab := seeded()
	a, b := bell(tab)
	handles := []int{a, b}

	cases := []struct {
		obs    string
		result bool
	}{
		{"XX", false},
		{"ZZ", false},
		{"YY", true},
		{"-XX", true},
		{"-YY", false},
	}
	for _, tc := range cases {
		m, err := stabilizer.MeasureObservable(tab, handles, pauli.MustFromString(tc.obs), stabilizer.Unbiased)
		require.NoError(t, err, tc.obs)
		assert.False(t, m.Random, tc.obs)
		assert.Equal(t, tc.result, m.Result, tc.obs)
	}
	assert.Equal(t, []string{"+XX", "+ZZ"}, render(tab.Stabilizers()), "deterministic checks do not disturb")

	m, err := stabilizer.MeasureObservable(tab, handles, pauli.MustFromString("Z."), 1)
	require.NoError(t, err)
	assert.True(t, m.Random)
	assert.True(t, m.Result)
	assert.Equal(t, 1.0, tab.Probability(a))
	assert.Equal(t, 1.0, tab.Probability(b))

	_, err = stabilizer.MeasureObservable(tab, handles, pauli.MustFromString("iXX"), 0)
	assert.ErrorIs(t, err, stabilizer.ErrNotHermitian)
	_, err = stabilizer.MeasureObservable(tab, handles, pauli.MustFromString("X"), 0)
	assert.ErrorIs(t, err, pauli.ErrLengthMismatch)

	m, err = stabilizer.MeasureObservable(tab, handles, pauli.MustFromString("-.."), 0)
	require.NoError(t, err)
	assert.True(t, m.Result)
}
