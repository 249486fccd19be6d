// SPDX-License-Identifier: MIT

package pauli

// Heisenberg-picture updates: after a gate U the product P becomes U·P·U†.

// ApplyH conjugates p by a Hadamard on qubit q: X↔Z, Y→-Y.
func (p *PauliProduct) ApplyH(q int) {
	switch p.Paulis[q] {
	case X:
		p.Paulis[q] = Z
	case Z:
		p.Paulis[q] = X
	case Y:
		p.Phase = mod4(p.Phase + 2)
	}
}

// ApplyS conjugates p by S = diag(1, i) on qubit q: X→Y, Y→-X, Z→Z.
func (p *PauliProduct) ApplyS(q int) {
	switch p.Paulis[q] {
	case X:
		p.Paulis[q] = Y
	case Y:
		p.Paulis[q] = X
		p.Phase = mod4(p.Phase + 2)
	}
}

// ApplyCNOT conjugates p by a CNOT from control c onto target t:
// X_c→X_cX_t, Z_t→Z_cZ_t, and Y images follow from Y = iXZ.
func (p *PauliProduct) ApplyCNOT(c, t int) {
	pc, pt := p.Paulis[c], p.Paulis[t]
	n := len(p.Paulis)

	// The two factors act on distinct qubits, so their images commute and
	// may be multiplied in either order.
	img := Identity(n)
	img.Phase = p.Phase
	switch pc {
	case X:
		img.Paulis[c], img.Paulis[t] = X, X
	case Z:
		img.Paulis[c] = Z
	case Y:
		img.Paulis[c], img.Paulis[t] = Y, X
	}
	second := Identity(n)
	switch pt {
	case X:
		second.Paulis[t] = X
	case Z:
		second.Paulis[c], second.Paulis[t] = Z, Z
	case Y:
		second.Paulis[c], second.Paulis[t] = Z, Y
	}
	img.InlineTimes(second)

	p.Paulis[c], p.Paulis[t] = img.Paulis[c], img.Paulis[t]
	p.Phase = img.Phase
}
