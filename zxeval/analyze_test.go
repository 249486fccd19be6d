package zxeval_test

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zxeval/stabilizer"
	"github.com/katalvlaran/zxeval/tensor"
	"github.com/katalvlaran/zxeval/zxeval"
	"github.com/katalvlaran/zxeval/zxgraph"
)

// oracleDiagrams are small enough for the dense tensor evaluator.
var oracleDiagrams = []string{
	"!---?",
	"!---@---?",
	"!---O---?",
	"!-Z-?",
	"!-x-?",
	"!-h-?",
	"!-s-?",
	"!-f-?",
	"!---h---?",
	"!---s---?",
	"!---a---?",
	"!---f---?",
	"!---w---?",
	"!---z---?",
	"!---x---?",
	"!---@-s-@---?",
	"!---O-h-@---?",
	cnotDiagram,
	"!---O---?\n    |\n    |\n    |\n!---@---?",
	"!---@---?\n    |\n    |\n    |\n    ?",
	"!---@---?\n    |\n    |\n    |\n    !",
	"!---O---?\n    |\n    s\n    |\n    ?",
	"    !\n    |\n    |\n    |\n!---+---?\n    |\n    |\n    |\n    ?",
	"!---@---?\n    |\n    |\n    |\n    O!",
	"!---@---?\n    |\n    x\n    |\n    O!",
	"!---O---?\n    |\n    |\n    |\n    s!",
	"!---O---?\n    |\n    |\n    |\n    a!",
	"!---@---?\n    |\n    |\n    |\n    f!",
	"!---@---?\n    |\n    |\n    |\n    z!",
	"@",
	"s",
	"z",
	"O---O!",
	"O---x---O",
	"O---x---O!",
}

func TestAnalyze_MatchesTensorOracle(t *testing.T) {
	for _, diagram := range oracleDiagrams {
		g := zxgraph.MustFromDiagram(diagram)
		want, err := tensor.Evaluate(g)
		require.NoError(t, err, diagram)

		for seed := uint64(1); seed <= 4; seed++ {
			res, err := zxeval.Analyze(g, zxeval.WithRand(rand.New(rand.NewPCG(seed, 3))))
			require.NoError(t, err, "%s seed %d", diagram, seed)

			assert.Equal(t, !want.IsZero(1e-9), res.Satisfiable, diagram)
			if res.Satisfiable {
				assert.True(t, tensor.ApproxEqual(want.CanonicalPhase(), res.Wavefunction, 1e-9),
					"%s\nstabilizers %v\noracle %v\ngot    %v",
					diagram, render(res.Stabilizers), want.CanonicalPhase(), res.Wavefunction)
			}
		}
	}
}

func TestAnalyze_SuccessProbability(t *testing.T) {
	// Z spider with a leg post-selected on |0⟩: a maximally mixed input
	// passes half of the time.
	res, err := zxeval.AnalyzeDiagram("!---@---?\n    |\n    |\n    |\n    O!", seeded())
	require.NoError(t, err)
	assert.InDelta(t, 0.5, res.SuccessProbability, 1e-12)

	// A deterministic preparation that agrees with its post-selection.
	res, err = zxeval.AnalyzeDiagram("O---O!", seeded())
	require.NoError(t, err)
	assert.True(t, res.Satisfiable)
	assert.InDelta(t, 1.0, res.SuccessProbability, 1e-12)
}

func TestAnalyze_Errors(t *testing.T) {
	_, err := zxeval.AnalyzeDiagram("!---?---?")
	assert.ErrorIs(t, err, zxeval.ErrBadDegree)
	assert.ErrorIs(t, err, zxgraph.ErrBadDegree)

	_, err = zxeval.AnalyzeDiagram("!---h")
	assert.ErrorIs(t, err, zxeval.ErrBadDegree)

	_, err = zxeval.AnalyzeDiagram("!---Q")
	assert.ErrorIs(t, err, zxgraph.ErrUnknownGlyph)
}

func TestAnalyze_CustomSimulator(t *testing.T) {
	calls := 0
	sim := zxeval.WithSimulator(func() stabilizer.Simulator {
		calls++

		return stabilizer.NewTableau(stabilizer.WithRand(rand.New(rand.NewPCG(5, 5))))
	})
	_, err := zxeval.AnalyzeDiagram(cnotDiagram, sim)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

// lyingTableau misreports every random unbiased measurement, so the
// program applies the wrong corrections.
type lyingTableau struct {
	*stabilizer.Tableau
	destructed *int
}

func (l lyingTableau) Measure(q int, bias float64) stabilizer.Measurement {
	m := l.Tableau.Measure(q, bias)
	if m.Random && bias == stabilizer.Unbiased {
		m.Result = !m.Result
	}

	return m
}

func (l lyingTableau) Destruct() {
	*l.destructed++
	l.Tableau.Destruct()
}

func TestAnalyze_WrongOutcomesAreInconsistent(t *testing.T) {
	for seed := uint64(1); seed <= 8; seed++ {
		created, destructed := 0, 0
		sim := zxeval.WithSimulator(func() stabilizer.Simulator {
			created++

			return lyingTableau{
				Tableau:    stabilizer.NewTableau(stabilizer.WithRand(rand.New(rand.NewPCG(seed, 3)))),
				destructed: &destructed,
			}
		})
		_, err := zxeval.AnalyzeDiagram(cnotDiagram, sim)
		require.Error(t, err, "seed %d", seed)
		assert.True(t, errors.Is(err, zxeval.ErrInconsistentFeedback), "seed %d: %v", seed, err)
		assert.Equal(t, 2, created, "seed %d", seed)
		assert.Equal(t, 2, destructed, "seed %d", seed)
	}
}
