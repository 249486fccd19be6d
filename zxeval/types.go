package zxeval

import (
	"github.com/katalvlaran/zxeval/pauli"
	"github.com/katalvlaran/zxeval/program"
	"github.com/katalvlaran/zxeval/zxgraph"
)

// Evaluation is a compiled diagram together with the Pauli bookkeeping
// derived from it. All rows span Mapping.Size() qubits and are expressed
// just before the internal measurements.
type Evaluation struct {
	Graph   *zxgraph.Graph
	Mapping *zxgraph.PortQubitMapping
	Program *program.QuantumProgram

	// Frame is the index of the first statement after the EPR preparation.
	Frame int

	// EdgeRows stabilize the state right before the internal measurements.
	EdgeRows []pauli.PauliProduct

	// NodeRows are the observables whose +1 outcome realizes each node;
	// each one is a +Z on a single internal qubit.
	NodeRows []pauli.PauliProduct

	// PostRows are the post-selection requirements, one per post-selected node.
	PostRows []pauli.PauliProduct

	Feedback Feedback

	// ZeroScalar is set when a disconnected node contributes the scalar 0.
	ZeroScalar bool
}

// Feedback is the outcome of DeriveFeedback.
type Feedback struct {
	// Rules maps every measured internal qubit to the external qubit-axes
	// that flip when its measurement reads true. Redundant measurements,
	// forced to agree with a control, map to an empty rule.
	Rules map[int][]pauli.QubitAxis

	// Corrections holds one entry per external qubit-axis, controlled by
	// the XOR of every measurement whose rule names it. Targets are sorted
	// by qubit, X before Z.
	Corrections []program.Correction
}

// AnalyzedProgram is the result bundle of Analyze.
type AnalyzedProgram struct {
	Program *program.QuantumProgram

	// Stabilizers generate the output state over inputs then outputs, in
	// reduced row echelon form. Empty when the diagram is not satisfiable.
	Stabilizers []pauli.PauliProduct

	// Wavefunction is the normalized state fixed by Stabilizers,
	// little-endian with inputs on the low bits. It is all zeros when the
	// diagram is not satisfiable, and nil beyond
	// stabilizer.MaxWavefunctionQubits.
	Wavefunction []complex128

	QASM       string
	CircuitURL string

	Satisfiable        bool
	SuccessProbability float64

	NumInputs, NumOutputs int
}
