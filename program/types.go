package program

import "github.com/katalvlaran/zxeval/pauli"

// Statement is one step of a QuantumProgram. The set of implementations is
// closed; see the package documentation.
type Statement interface {
	statement()
}

// HeaderAlloc allocates NumQubits qubits, all in |0⟩.
type HeaderAlloc struct {
	NumQubits int
}

// Comment annotates the QASM output and is otherwise ignored.
type Comment struct {
	Text string
}

// InitEprPairs turns each pair (a, b) into a Bell pair: H on a, then CNOT a→b.
type InitEprPairs struct {
	Pairs [][2]int
}

// GateAction applies Gate to Qubit.
type GateAction struct {
	Gate  Gate
	Qubit int
}

// EdgeActions applies single-qubit basis changes. Identity actions are kept
// in the program but emit nothing.
type EdgeActions struct {
	Actions []GateAction
}

// MultiCnot is a fan of CNOTs sharing the qubit Pivot. With PivotIsTarget
// unset, Pivot controls a CNOT onto each of Others; otherwise each of Others
// controls a CNOT onto Pivot.
type MultiCnot struct {
	Pivot         int
	Others        []int
	PivotIsTarget bool
}

// Hadamards applies H to each listed qubit.
type Hadamards struct {
	Qubits []int
}

// Correction applies the Pauli named by Target when the XOR of the results
// of the Controls measurements is 1.
type Correction struct {
	Target   pauli.QubitAxis
	Controls []int
}

// MeasurementsWithPauliFeedback measures Measured in Z, in order, and then
// applies each Correction.
type MeasurementsWithPauliFeedback struct {
	Measured    []int
	Corrections []Correction
}

// PostSelection rotates Qubit with Rotation and measures it in Z; only the
// false outcome is accepted.
type PostSelection struct {
	Qubit    int
	Rotation []Gate
	Label    string
}

// AmpsDisplay shows the amplitudes of qubits [First, First+Count) in the
// circuit rendering. It does nothing elsewhere.
type AmpsDisplay struct {
	First, Count int
}

func (HeaderAlloc) statement()                   {}
func (Comment) statement()                       {}
func (InitEprPairs) statement()                  {}
func (EdgeActions) statement()                   {}
func (MultiCnot) statement()                     {}
func (Hadamards) statement()                     {}
func (MeasurementsWithPauliFeedback) statement() {}
func (PostSelection) statement()                 {}
func (AmpsDisplay) statement()                   {}

// QuantumProgram is an ordered statement list. The zero value is an empty
// program.
type QuantumProgram struct {
	Statements []Statement
}
