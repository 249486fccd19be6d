package program

import "fmt"

// New returns an empty program.
func New() *QuantumProgram {
	return &QuantumProgram{}
}

// Append adds statements at the end of the program.
func (qp *QuantumProgram) Append(s ...Statement) {
	qp.Statements = append(qp.Statements, s...)
}

// Len returns the number of statements.
func (qp *QuantumProgram) Len() int { return len(qp.Statements) }

// NumQubits returns the allocation size declared by the leading HeaderAlloc,
// or 0 when there is none.
func (qp *QuantumProgram) NumQubits() int {
	if len(qp.Statements) == 0 {
		return 0
	}
	if h, ok := qp.Statements[0].(HeaderAlloc); ok {
		return h.NumQubits
	}

	return 0
}

// qubitsOf lists every qubit index a statement touches.
func qubitsOf(s Statement) []int {
	var out []int
	switch st := s.(type) {
	case InitEprPairs:
		for _, p := range st.Pairs {
			out = append(out, p[0], p[1])
		}
	case EdgeActions:
		for _, a := range st.Actions {
			out = append(out, a.Qubit)
		}
	case MultiCnot:
		out = append(out, st.Pivot)
		out = append(out, st.Others...)
	case Hadamards:
		out = append(out, st.Qubits...)
	case MeasurementsWithPauliFeedback:
		out = append(out, st.Measured...)
		for _, c := range st.Corrections {
			out = append(out, c.Target.Qubit)
			out = append(out, c.Controls...)
		}
	case PostSelection:
		out = append(out, st.Qubit)
	case AmpsDisplay:
		if st.Count > 0 {
			out = append(out, st.First, st.First+st.Count-1)
		}
	}

	return out
}

// Validate checks that the program starts with HeaderAlloc and that every
// statement stays inside the allocation.
// Complexity: O(total statement size).
func (qp *QuantumProgram) Validate() error {
	if len(qp.Statements) == 0 {
		return fmt.Errorf("Validate: empty program: %w", ErrNoHeader)
	}
	if _, ok := qp.Statements[0].(HeaderAlloc); !ok {
		return fmt.Errorf("Validate: first statement is %T: %w", qp.Statements[0], ErrNoHeader)
	}
	n := qp.NumQubits()
	for i, s := range qp.Statements {
		for _, q := range qubitsOf(s) {
			if q < 0 || q >= n {
				return fmt.Errorf("Validate: statement %d (%T) uses qubit %d of %d: %w",
					i, s, q, n, ErrQubitOutOfRange)
			}
		}
	}

	return nil
}

// MeasuredQubits returns, in program order, every qubit read by a
// MeasurementsWithPauliFeedback statement.
func (qp *QuantumProgram) MeasuredQubits() []int {
	var out []int
	for _, s := range qp.Statements {
		if m, ok := s.(MeasurementsWithPauliFeedback); ok {
			out = append(out, m.Measured...)
		}
	}

	return out
}

// PostSelectedQubits returns, in program order, every post-selected qubit.
func (qp *QuantumProgram) PostSelectedQubits() []int {
	var out []int
	for _, s := range qp.Statements {
		if p, ok := s.(PostSelection); ok {
			out = append(out, p.Qubit)
		}
	}

	return out
}
