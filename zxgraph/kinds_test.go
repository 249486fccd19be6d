package zxgraph_test

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zxeval/pauli"
	"github.com/katalvlaran/zxeval/program"
	"github.com/katalvlaran/zxeval/zxgraph"
)

// applyPauli returns p·v for a little-endian state vector v.
func applyPauli(p pauli.PauliProduct, v []complex128) []complex128 {
	var xmask, zmask, nY int
	for q, c := range p.Paulis {
		if c&pauli.X != 0 {
			xmask |= 1 << q
		}
		if c&pauli.Z != 0 {
			zmask |= 1 << q
		}
		if c == pauli.Y {
			nY++
		}
	}
	unit := [4]complex128{1, 1i, -1, -1i}[(p.Phase+nY)%4]
	out := make([]complex128, len(v))
	for k, a := range v {
		amp := unit * a
		if bits.OnesCount(uint(k&zmask))%2 == 1 {
			amp = -amp
		}
		out[k^xmask] += amp
	}

	return out
}

func allSpiders() []zxgraph.NodeKind {
	var out []zxgraph.NodeKind
	for k := zxgraph.KindZ; k <= zxgraph.KindXMinusHalfPost; k++ {
		out = append(out, k)
	}

	return out
}

func TestFixedPoints_StabilizeTensor(t *testing.T) {
	type probe struct {
		kind   zxgraph.NodeKind
		degree int
	}
	var probes []probe
	for _, k := range allSpiders() {
		s, _ := k.Spider()
		if s.Post {
			probes = append(probes, probe{k, 1})
			continue
		}
		for d := 1; d <= 4; d++ {
			probes = append(probes, probe{k, d})
		}
	}
	probes = append(probes, probe{zxgraph.KindHadamard, 2}, probe{zxgraph.KindCross, 4})

	for _, pr := range probes {
		tensor := pr.kind.Tensor(pr.degree)
		require.Len(t, tensor, 1<<pr.degree)
		fps := pr.kind.FixedPoints(pr.degree)
		assert.Len(t, fps, pr.degree, "%s/%d", pr.kind, pr.degree)

		// A full set of generators is independent and pairwise commuting.
		reduced, err := pauli.GaussianEliminate(fps)
		require.NoError(t, err)
		assert.Len(t, reduced, pr.degree)
		for _, p := range fps {
			for _, q := range fps {
				assert.True(t, p.CommutesWith(q))
			}
			got := applyPauli(p, tensor)
			for i := range tensor {
				assert.InDelta(t, real(tensor[i]), real(got[i]), 1e-12, "%s/%d %s", pr.kind, pr.degree, p)
				assert.InDelta(t, imag(tensor[i]), imag(got[i]), 1e-12, "%s/%d %s", pr.kind, pr.degree, p)
			}
		}
	}
}

func TestFixedPoints_Table(t *testing.T) {
	render := func(ps []pauli.PauliProduct) []string {
		out := make([]string, len(ps))
		for i, p := range ps {
			out[i] = p.String()
		}

		return out
	}
	assert.Equal(t, []string{"+ZZ.", "+Z.Z", "+XXX"}, render(zxgraph.KindZ.FixedPoints(3)))
	assert.Equal(t, []string{"+ZZ", "-XX"}, render(zxgraph.KindZPi.FixedPoints(2)))
	assert.Equal(t, []string{"+ZZ", "+YX"}, render(zxgraph.KindZHalf.FixedPoints(2)))
	assert.Equal(t, []string{"+XX", "+ZZ"}, render(zxgraph.KindX.FixedPoints(2)))
	assert.Equal(t, []string{"-Y"}, render(zxgraph.KindXHalf.FixedPoints(1)))
	assert.Equal(t, []string{"+XZ", "+ZX"}, render(zxgraph.KindHadamard.FixedPoints(2)))

	// Degree-0: the π spider is the zero scalar, the others are non-zero.
	assert.Equal(t, []string{"-"}, render(zxgraph.KindZPi.FixedPoints(0)))
	assert.Empty(t, zxgraph.KindZ.FixedPoints(0))
	assert.Nil(t, zxgraph.KindIn.FixedPoints(1))
}

func TestPostSelection(t *testing.T) {
	cases := map[zxgraph.NodeKind]string{
		zxgraph.KindZPost:          "+X",
		zxgraph.KindXPost:          "+Z",
		zxgraph.KindZPiPost:        "-X",
		zxgraph.KindXPiPost:        "-Z",
		zxgraph.KindZHalfPost:      "-Y",
		zxgraph.KindZMinusHalfPost: "+Y",
		zxgraph.KindXHalfPost:      "+Y",
		zxgraph.KindXMinusHalfPost: "-Y",
	}
	for k, want := range cases {
		got, ok := k.PostSelection()
		require.True(t, ok, k.String())
		assert.Equal(t, want, got.String(), k.String())
	}
	_, ok := zxgraph.KindZ.PostSelection()
	assert.False(t, ok)
}

func TestCheckDegree(t *testing.T) {
	assert.NoError(t, zxgraph.KindIn.CheckDegree(1))
	assert.ErrorIs(t, zxgraph.KindOut.CheckDegree(2), zxgraph.ErrBadDegree)
	assert.ErrorIs(t, zxgraph.KindHadamard.CheckDegree(3), zxgraph.ErrBadDegree)
	assert.ErrorIs(t, zxgraph.KindCross.CheckDegree(2), zxgraph.ErrBadDegree)
	assert.NoError(t, zxgraph.KindCross.CheckDegree(4))
	assert.ErrorIs(t, zxgraph.KindZPost.CheckDegree(2), zxgraph.ErrBadDegree)
	for d := 0; d < 6; d++ {
		assert.NoError(t, zxgraph.KindXHalf.CheckDegree(d))
	}
	assert.ErrorIs(t, zxgraph.KindInvalid.CheckDegree(1), zxgraph.ErrMalformedGraph)
}

func TestRootAction(t *testing.T) {
	assert.Equal(t, program.GateI, zxgraph.KindZ.RootAction())
	assert.Equal(t, program.GateS, zxgraph.KindZHalf.RootAction())
	assert.Equal(t, program.GateZ, zxgraph.KindZPi.RootAction())
	assert.Equal(t, program.GateSDagger, zxgraph.KindZMinusHalf.RootAction())
	assert.Equal(t, program.GateSqrtX, zxgraph.KindXHalf.RootAction())
	assert.Equal(t, program.GateX, zxgraph.KindXPi.RootAction())
	assert.Equal(t, program.GateSqrtXDagger, zxgraph.KindXMinusHalf.RootAction())
	assert.Equal(t, program.GateH, zxgraph.KindHadamard.RootAction())
	assert.Equal(t, program.GateI, zxgraph.KindZHalfPost.RootAction())
}

func TestGlyphs_RoundTrip(t *testing.T) {
	kinds := append(allSpiders(), zxgraph.KindIn, zxgraph.KindOut, zxgraph.KindCross, zxgraph.KindHadamard)
	for _, k := range kinds {
		back, ok := zxgraph.ParseNodeGlyph(k.Glyph())
		require.True(t, ok, k.Glyph())
		assert.Equal(t, k, back)
	}
	for e := zxgraph.EdgePlain; e <= zxgraph.EdgeH; e++ {
		back, ok := zxgraph.ParseEdgeGlyph(e.Glyph())
		require.True(t, ok, e.Glyph())
		assert.Equal(t, e, back)
	}
	k, ok := zxgraph.ParseNodeGlyph("H")
	assert.True(t, ok)
	assert.Equal(t, zxgraph.KindHadamard, k)
	_, ok = zxgraph.ParseEdgeGlyph("xx")
	assert.False(t, ok)
	assert.Equal(t, "#", zxgraph.EdgeInvalid.Glyph())
	assert.Equal(t, zxgraph.KindInvalid, zxgraph.EdgeInvalid.NodeKind())
}

// Every edge matrix, read as a two-leg tensor, is the tensor of its node kind
// up to normalization.
func TestEdgeKind_MatchesNodeTensor(t *testing.T) {
	for e := zxgraph.EdgePlain; e <= zxgraph.EdgeH; e++ {
		m := e.Matrix()
		node := e.NodeKind().Tensor(2)
		// Leg 0 is the row (bit 0), leg 1 the column.
		ratio := complex128(0)
		for idx := 0; idx < 4; idx++ {
			row, col := idx&1, idx>>1
			entry := m[2*row+col]
			if entry == 0 {
				assert.InDelta(t, 0, real(node[idx])+imag(node[idx]), 1e-12, e.String())
				continue
			}
			r := node[idx] / entry
			if ratio == 0 {
				ratio = r
			}
			assert.InDelta(t, real(ratio), real(r), 1e-9, e.String())
			assert.InDelta(t, imag(ratio), imag(r), 1e-9, e.String())
		}
	}
}
