package program

import (
	"fmt"
	"strings"
)

// QASM renders the program as OpenQASM 2.0. Every measured qubit k gets a
// one-bit register m_k and every post-selected qubit k a register post_k.
// A correction with several controls emits one conditional gate per
// control; the repeated Paulis cancel exactly when the XOR is 0. OpenQASM 2.0
// compares a single creg per if, so the XOR cannot be written as one
// condition.
func (qp *QuantumProgram) QASM() (string, error) {
	if err := qp.Validate(); err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("OPENQASM 2.0;\n")
	b.WriteString("include \"qelib1.inc\";\n")
	fmt.Fprintf(&b, "qreg q[%d];\n", qp.NumQubits())
	for _, q := range qp.MeasuredQubits() {
		fmt.Fprintf(&b, "creg m_%d[1];\n", q)
	}
	for _, q := range qp.PostSelectedQubits() {
		fmt.Fprintf(&b, "creg post_%d[1];\n", q)
	}

	for _, s := range qp.Statements {
		switch st := s.(type) {
		case Comment:
			for _, line := range strings.Split(st.Text, "\n") {
				fmt.Fprintf(&b, "// %s\n", line)
			}
		case InitEprPairs:
			for _, p := range st.Pairs {
				fmt.Fprintf(&b, "h q[%d];\n", p[0])
				fmt.Fprintf(&b, "cx q[%d],q[%d];\n", p[0], p[1])
			}
		case EdgeActions:
			for _, a := range st.Actions {
				if a.Gate != GateI {
					fmt.Fprintf(&b, "%s q[%d];\n", a.Gate.QASM(), a.Qubit)
				}
			}
		case MultiCnot:
			for _, o := range st.Others {
				if st.PivotIsTarget {
					fmt.Fprintf(&b, "cx q[%d],q[%d];\n", o, st.Pivot)
				} else {
					fmt.Fprintf(&b, "cx q[%d],q[%d];\n", st.Pivot, o)
				}
			}
		case Hadamards:
			for _, q := range st.Qubits {
				fmt.Fprintf(&b, "h q[%d];\n", q)
			}
		case MeasurementsWithPauliFeedback:
			for _, q := range st.Measured {
				fmt.Fprintf(&b, "measure q[%d] -> m_%d[0];\n", q, q)
			}
			for _, c := range st.Corrections {
				gate := "x"
				if c.Target.Axis {
					gate = "z"
				}
				for _, ctl := range c.Controls {
					fmt.Fprintf(&b, "if(m_%d==1) %s q[%d];\n", ctl, gate, c.Target.Qubit)
				}
			}
		case PostSelection:
			if st.Label != "" {
				fmt.Fprintf(&b, "// post-select %s on q[%d]\n", st.Label, st.Qubit)
			}
			for _, g := range st.Rotation {
				if g != GateI {
					fmt.Fprintf(&b, "%s q[%d];\n", g.QASM(), st.Qubit)
				}
			}
			fmt.Fprintf(&b, "measure q[%d] -> post_%d[0];\n", st.Qubit, st.Qubit)
		}
	}

	return b.String(), nil
}
