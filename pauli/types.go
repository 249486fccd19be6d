// SPDX-License-Identifier: MIT

package pauli

import "fmt"

// Single-qubit Pauli codes. Bit 0 is the X component, bit 1 the Z component,
// so Y (= iXZ) carries both.
const (
	I uint8 = 0b00
	X uint8 = 0b01
	Z uint8 = 0b10
	Y uint8 = 0b11
)

// xBit and zBit select the components of a code.
const (
	xBit uint8 = 0b01
	zBit uint8 = 0b10
)

// pauliChars renders codes in the textual form; index is the code.
const pauliChars = ".XZY"

// productPhase[a][b] is the exponent e with σa·σb = i^e · σ(a^b).
// X·Z = -iY, Z·X = +iY, and cyclic Y/Z, X/Y relations follow.
var productPhase = [4][4]int{
	//        I  X  Z  Y
	/* I */ {0, 0, 0, 0},
	/* X */ {0, 0, 3, 1},
	/* Z */ {0, 1, 0, 3},
	/* Y */ {0, 3, 1, 0},
}

// QubitAxis identifies the X (Axis == false) or Z (Axis == true) observable
// of one qubit. It doubles as the name of one bit column of a PauliProduct.
type QubitAxis struct {
	Qubit int
	Axis  bool
}

// AxisX returns the X observable of qubit q.
func AxisX(q int) QubitAxis { return QubitAxis{Qubit: q, Axis: false} }

// AxisZ returns the Z observable of qubit q.
func AxisZ(q int) QubitAxis { return QubitAxis{Qubit: q, Axis: true} }

// bit returns the code bit this axis occupies.
func (a QubitAxis) bit() uint8 {
	if a.Axis {
		return zBit
	}

	return xBit
}

// Code returns the single-qubit Pauli code of the observable (X or Z).
func (a QubitAxis) Code() uint8 { return a.bit() }

// String renders the axis as "X3" or "Z3".
func (a QubitAxis) String() string {
	if a.Axis {
		return fmt.Sprintf("Z%d", a.Qubit)
	}

	return fmt.Sprintf("X%d", a.Qubit)
}

// AllColumns lists every bit column of an n-qubit product in elimination
// order: qubit-major, X bit before Z bit.
func AllColumns(n int) []QubitAxis {
	cols := make([]QubitAxis, 0, 2*n)
	for q := 0; q < n; q++ {
		cols = append(cols, AxisX(q), AxisZ(q))
	}

	return cols
}

// PauliProduct is an element of the n-qubit Pauli group: i^Phase times a
// tensor product of single-qubit Paulis. Phase is always kept in [0, 4) and
// the length of Paulis is fixed at construction.
type PauliProduct struct {
	Phase  int
	Paulis []uint8
}
