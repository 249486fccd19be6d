// Package zxeval evaluates ZX diagrams with a stabilizer simulator.
//
// What:
//
//   - Evaluate compiles a zxgraph.Graph into a program.QuantumProgram in
//     which every edge is an EPR pair and every node is a parity-check
//     measurement on its port qubits, followed by Pauli feedback that makes
//     the result deterministic.
//   - DeriveFeedback is the pure map from edge fixed points to the
//     measurement-controlled corrections.
//   - Analyze runs the program on a stabilizer simulator and packages the
//     output stabilizers, wavefunction, QASM text and circuit link.
//
// Qubit layout:
//
//	[ internal ports | inputs | outputs | post-selection ports ]
//
// Internal qubits are measured and eliminated first; the input and output
// qubits carry the result.
//
// Complexity:
//
//   - Evaluate: O(Q²) Pauli work for Q port qubits.
//   - Analyze: two simulator runs of O(Q²) each, plus O(n·4^n) for the
//     wavefunction on n = inputs+outputs qubits.
//
// Errors:
//
//   - ErrBadDegree: a node has an active port count its kind does not allow.
//   - ErrUnknownKind: a node kind outside the closed vocabulary.
//   - ErrInconsistentFeedback: the derived feedback does not reproduce the
//     derived stabilizers. No well-formed diagram triggers it.
package zxeval
