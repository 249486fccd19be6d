// Package stabilizer provides the simulator and wavefunction collaborators
// of the ZX evaluator.
//
// What:
//
//   - Simulator is the primitive interface a program runs against: qubit
//     allocation, H, S, CNOT, Z measurement with an outcome bias, forced
//     collapse and outcome probability, and release.
//   - Tableau implements Simulator with the Aaronson–Gottesman (CHP)
//     stabilizer tableau; every row is a pauli.PauliProduct, so gates are
//     the Heisenberg-picture updates of package pauli.
//   - X, Z, SDagger, Swap, BlochVector and MeasureObservable are derived
//     operations written only against the Simulator interface.
//   - Wavefunction turns n independent commuting stabilizers into the unit
//     state vector they fix, with a canonical global phase.
//
// Conventions:
//
//   - Measurement bias is the probability of reading true when the outcome
//     is random: Unbiased (0.5) samples fairly, 0 forces false.
//   - Vectors are little-endian: bit q of an index is qubit q.
//
// Errors:
//
//   - ErrReleased: a Tableau used after Destruct (raised as a panic).
//   - ErrUnknownQubit: a handle that is not allocated (raised as a panic).
//   - ErrImpossibleCollapse: Collapse onto a zero-probability outcome.
//   - ErrNotHermitian, ErrAnticommuting, ErrNotIndependent, ErrTooLarge:
//     invalid Wavefunction or MeasureObservable input.
package stabilizer
