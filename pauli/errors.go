// SPDX-License-Identifier: MIT

package pauli

import "errors"

var (
	// ErrParse indicates a textual Pauli product could not be parsed.
	ErrParse = errors.New("pauli: cannot parse product")

	// ErrLengthMismatch indicates operands with differing qubit counts.
	ErrLengthMismatch = errors.New("pauli: qubit count mismatch")

	// ErrQubitOutOfRange indicates a qubit index outside [0, n).
	ErrQubitOutOfRange = errors.New("pauli: qubit index out of range")
)
