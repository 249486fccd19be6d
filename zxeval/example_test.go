package zxeval_test

import (
	"fmt"

	"github.com/katalvlaran/zxeval/pauli"
	"github.com/katalvlaran/zxeval/zxeval"
)

// ExampleAnalyzeDiagram evaluates a wire carrying a π phase.
func ExampleAnalyzeDiagram() {
	res, err := zxeval.AnalyzeDiagram("!-Z-?")
	if err != nil {
		fmt.Println(err)

		return
	}
	fmt.Println("satisfiable:", res.Satisfiable)
	for _, s := range res.Stabilizers {
		fmt.Println(s)
	}
	// Output:
	// satisfiable: true
	// -XX
	// +ZZ
}

// ExampleDeriveFeedback corrects the second half of a Bell pair after the
// first half is measured.
func ExampleDeriveFeedback() {
	rows := []pauli.PauliProduct{pauli.MustFromString("+XX"), pauli.MustFromString("+ZZ")}
	fb, err := zxeval.DeriveFeedback(rows, 1)
	if err != nil {
		fmt.Println(err)

		return
	}
	for _, c := range fb.Corrections {
		fmt.Println(c.Target, "if", c.Controls)
	}
	// Output:
	// X1 if [0]
}
