// SPDX-License-Identifier: MIT

// Package pauli implements the n-qubit Pauli group up to the four global
// phases {+1, +i, -1, -i}.
//
// What:
//
//   - QubitAxis names the X or Z observable of a single qubit.
//   - PauliProduct is a phase plus one 2-bit code per qubit (I, X, Z, Y).
//   - Times/InlineTimes multiply group elements with exact phase tracking.
//   - GaussianEliminate row-reduces a list of products into an independent
//     generating set; EliminateOn is the same kernel over caller-chosen columns.
//   - ApplyH/ApplyS/ApplyCNOT conjugate a product through Clifford gates.
//
// Why:
//
//   - Stabilizer states and measurement feedback are bookkept entirely as
//     products of Paulis; elimination is linear algebra over GF(2) in which
//     "addition" is group multiplication, so phases survive reduction.
//
// Complexity:
//
//   - Times: O(n). GaussianEliminate: O(r·c·n) for r rows over c bit columns.
//
// Errors:
//
//   - ErrParse: malformed textual product.
//   - ErrLengthMismatch: operands of differing qubit counts.
//   - ErrQubitOutOfRange: sparse constructor index outside [0, n).
package pauli
