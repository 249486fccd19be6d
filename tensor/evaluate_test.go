package tensor_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zxeval/tensor"
	"github.com/katalvlaran/zxeval/zxgraph"
)

func canonical(t *testing.T, diagram string) []complex128 {
	t.Helper()
	d, err := tensor.Evaluate(zxgraph.MustFromDiagram(diagram))
	require.NoError(t, err, diagram)

	return d.CanonicalPhase()
}

func TestEvaluate_Wires(t *testing.T) {
	r := 1 / math.Sqrt2
	id := []complex128{complex(r, 0), 0, 0, complex(r, 0)}
	zWire := []complex128{complex(r, 0), 0, 0, complex(-r, 0)}

	cases := []struct {
		diagram string
		want    []complex128
	}{
		{"!---?", id},
		{"!---@---?", id},
		{"!---O---?", id},
		{"!---@---@---?", id},
		{"!-Z-?", zWire},
		{"!---z---?", zWire},
		{"!---@-z-?", zWire},
		{"!-h-?", []complex128{0.5, 0.5, 0.5, -0.5}},
		{"!---h---?", []complex128{0.5, 0.5, 0.5, -0.5}},
		{"!-s-?", []complex128{complex(r, 0), 0, 0, complex(0, r)}},
		{"!---a---?", []complex128{complex(r, 0), 0, 0, complex(0, -r)}},
		{"!-x-?", []complex128{0, complex(r, 0), complex(r, 0), 0}},
	}
	for _, tc := range cases {
		got := canonical(t, tc.diagram)
		assert.True(t, tensor.ApproxEqual(tc.want, got, 1e-9), "%s: %v", tc.diagram, got)
	}
}

func TestEvaluate_CNOT(t *testing.T) {
	got := canonical(t, "!---@---?\n    |\n    |\n    |\n!---O---?")
	// Row = output bits, column = input bits, both little-endian.
	want := []complex128{
		0.5, 0, 0, 0,
		0, 0, 0, 0.5,
		0, 0, 0.5, 0,
		0, 0.5, 0, 0,
	}
	assert.True(t, tensor.ApproxEqual(want, got, 1e-9), "%v", got)
}

func TestEvaluate_PostSelectedAndScalars(t *testing.T) {
	got := canonical(t, "!---@---O!")
	assert.True(t, tensor.ApproxEqual([]complex128{1, 0}, got, 1e-9), "%v", got)

	d, err := tensor.Evaluate(zxgraph.MustFromDiagram("z"))
	require.NoError(t, err)
	assert.True(t, d.IsZero(1e-12))

	d, err = tensor.Evaluate(zxgraph.MustFromDiagram("@"))
	require.NoError(t, err)
	assert.Equal(t, []complex128{2}, d.Data())

	// A conflicting post-selection evaluates to zero.
	d, err = tensor.Evaluate(zxgraph.MustFromDiagram("O---x---O!"))
	require.NoError(t, err)
	assert.True(t, d.IsZero(1e-12))
}

func TestEvaluate_BadDegree(t *testing.T) {
	_, err := tensor.Evaluate(zxgraph.MustFromDiagram("h"))
	assert.ErrorIs(t, err, zxgraph.ErrBadDegree)

	_, err = tensor.Evaluate(zxgraph.MustFromDiagram("!"))
	assert.ErrorIs(t, err, zxgraph.ErrBadDegree)
}
