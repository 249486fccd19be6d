package zxeval

import (
	"fmt"

	"github.com/katalvlaran/zxeval/pauli"
	"github.com/katalvlaran/zxeval/program"
	"github.com/katalvlaran/zxeval/stabilizer"
	"github.com/katalvlaran/zxeval/zxgraph"
)

// Analyze evaluates g and runs the resulting program twice on fresh
// simulators.
//
// The biased run forces every random outcome to false and decides
// Satisfiable and SuccessProbability; it must agree with the symbolic
// verdict of OutputStabilizers. The unbiased run samples the internal
// measurements, applies the feedback and then checks every output
// stabilizer on the simulator; any mismatch is ErrInconsistentFeedback.
//
// Complexity: O(Q²) simulator work plus O(n·4^n) for the wavefunction.
func Analyze(g *zxgraph.Graph, opts ...Option) (*AnalyzedProgram, error) {
	cfg := newConfig(opts)
	ev, err := evaluate(g, cfg)
	if err != nil {
		return nil, err
	}
	m := ev.Mapping
	inLo, _ := m.Range(zxgraph.ClassInput)
	_, outHi := m.Range(zxgraph.ClassOutput)

	stabs, symbolic, err := ev.OutputStabilizers()
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}

	res := &AnalyzedProgram{
		Program:    ev.Program,
		NumInputs:  m.Count(zxgraph.ClassInput),
		NumOutputs: m.Count(zxgraph.ClassOutput),
	}
	if res.QASM, err = ev.Program.QASM(); err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}
	if res.CircuitURL, err = ev.Program.CircuitURL(); err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}

	biased, err := ev.Program.Run(cfg.simulator(), program.RunOptions{Biased: true})
	if err != nil {
		return nil, fmt.Errorf("Analyze: biased run: %w", err)
	}
	if biased.Satisfied() != symbolic {
		return nil, fmt.Errorf("Analyze: simulator satisfied=%t, stabilizers satisfied=%t: %w",
			biased.Satisfied(), symbolic, ErrInconsistentFeedback)
	}
	res.Satisfiable = symbolic && !ev.ZeroScalar
	if res.Satisfiable {
		res.SuccessProbability = biased.SuccessProbability()
		res.Stabilizers = stabs
	}
	cfg.logger.Debug("biased run",
		"satisfiable", res.Satisfiable, "success", res.SuccessProbability,
		"measurements", len(biased.Outcomes))

	check := func(sim stabilizer.Simulator, handles []int) error {
		if !res.Satisfiable {
			return nil
		}
		for _, s := range stabs {
			got, err := stabilizer.MeasureObservable(sim, handles[inLo:outHi], s, stabilizer.Unbiased)
			if err != nil {
				return err
			}
			if got.Random || got.Result {
				return fmt.Errorf("stabilizer %v reads %+v: %w", s, got, ErrInconsistentFeedback)
			}
		}

		return nil
	}
	sampled, err := ev.Program.Run(cfg.simulator(), program.RunOptions{Inspect: check})
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}
	cfg.logger.Debug("sampled run", "measurements", len(sampled.Outcomes), "stabilizers", len(stabs))

	if res.Wavefunction, err = wavefunction(res.Satisfiable, stabs, outHi-inLo); err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}

	return res, nil
}

// AnalyzeDiagram parses diagram text and analyzes it.
func AnalyzeDiagram(text string, opts ...Option) (*AnalyzedProgram, error) {
	g, err := zxgraph.FromDiagram(text)
	if err != nil {
		return nil, err
	}

	return Analyze(g, opts...)
}

func wavefunction(satisfiable bool, stabs []pauli.PauliProduct, n int) ([]complex128, error) {
	if n > stabilizer.MaxWavefunctionQubits {
		return nil, nil
	}
	if !satisfiable {
		return make([]complex128, 1<<n), nil
	}

	return stabilizer.Wavefunction(stabs)
}
