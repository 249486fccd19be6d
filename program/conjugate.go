package program

import "github.com/katalvlaran/zxeval/pauli"

// IsUnitary reports whether s acts on the state by a Clifford unitary.
// Comments, headers and displays count as the identity; measurements and
// post-selections do not.
func IsUnitary(s Statement) bool {
	switch s.(type) {
	case MeasurementsWithPauliFeedback, PostSelection:
		return false
	}

	return true
}

// Conjugate returns U·p·U† where U is the product of the statements from
// index from up to the first non-unitary one. p must span every allocated
// qubit.
// Complexity: O(gates·n).
func (qp *QuantumProgram) Conjugate(p pauli.PauliProduct, from int) pauli.PauliProduct {
	out := p.Clone()
	for _, s := range qp.Statements[from:] {
		if !IsUnitary(s) {
			break
		}
		conjugateStatement(s, &out)
	}

	return out
}

func conjugateStatement(s Statement, p *pauli.PauliProduct) {
	switch st := s.(type) {
	case InitEprPairs:
		for _, pair := range st.Pairs {
			p.ApplyH(pair[0])
			p.ApplyCNOT(pair[0], pair[1])
		}
	case EdgeActions:
		for _, a := range st.Actions {
			a.Gate.Conjugate(p, a.Qubit)
		}
	case MultiCnot:
		for _, o := range st.Others {
			if st.PivotIsTarget {
				p.ApplyCNOT(o, st.Pivot)
			} else {
				p.ApplyCNOT(st.Pivot, o)
			}
		}
	case Hadamards:
		for _, q := range st.Qubits {
			p.ApplyH(q)
		}
	}
}
