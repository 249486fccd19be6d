// Package program holds the measurement-based quantum program produced by
// the ZX evaluator, together with its three interpretations.
//
// What:
//
//   - QuantumProgram is an ordered list of Statement values drawn from a
//     closed set: HeaderAlloc, Comment, InitEprPairs, EdgeActions, MultiCnot,
//     Hadamards, MeasurementsWithPauliFeedback, PostSelection, AmpsDisplay.
//   - QASM renders OpenQASM 2.0 text.
//   - Circuit/CircuitJSON/CircuitURL render the column layout understood by
//     the Quirk circuit simulator.
//   - Run executes the program on a stabilizer.Simulator and always releases
//     the simulator afterwards.
//   - Conjugate pushes a Pauli product through the unitary statements.
//
// Every interpretation is a single type switch over the statement set, so a
// new statement kind is added in one place per interpretation.
//
// Errors:
//
//   - ErrNoHeader: the program does not start by allocating qubits.
//   - ErrQubitOutOfRange: a statement names a qubit outside the allocation.
//   - ErrBadObservable: a post-selection observable is not a single-qubit Pauli.
package program
