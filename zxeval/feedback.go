package zxeval

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/zxeval/pauli"
	"github.com/katalvlaran/zxeval/program"
)

// DeriveFeedback computes the Pauli frame for measuring qubits
// 0..numInternal-1 in Z on a state stabilized by rows.
//
// rows are reduced on the X bits of the internal qubits, in index order.
// A reduced row with pivot X_q makes q the control of that row. Its other
// internal X bits belong to measurements forced to agree with q, its
// internal Z bits only contribute a global sign, and its support on qubits
// >= numInternal is the correction owed when q reads true. Rows without a
// pivot commute with every measurement and need no rule. Every internal
// qubit that controls nothing maps to an empty rule.
//
// The corrections of several controls are merged per external qubit-axis,
// so each target is flipped once by the XOR of its controls.
//
// Complexity: O(numInternal·len(rows)·n).
func DeriveFeedback(rows []pauli.PauliProduct, numInternal int) (Feedback, error) {
	fb := Feedback{Rules: make(map[int][]pauli.QubitAxis)}
	if len(rows) == 0 || numInternal == 0 {
		fillRedundant(fb.Rules, numInternal)

		return fb, nil
	}
	if numInternal > rows[0].Len() {
		return Feedback{}, fmt.Errorf("DeriveFeedback: %d internal qubits in %d-qubit rows: %w",
			numInternal, rows[0].Len(), pauli.ErrQubitOutOfRange)
	}
	cols := make([]pauli.QubitAxis, numInternal)
	for q := range cols {
		cols[q] = pauli.AxisX(q)
	}
	e, err := pauli.EliminateOn(rows, cols)
	if err != nil {
		return Feedback{}, fmt.Errorf("DeriveFeedback: %w", err)
	}

	controls := make(map[pauli.QubitAxis][]int)
	for k, row := range e.PivotRows() {
		control := e.Pivots[k].Qubit
		// Pivot columns are distinct, so a second claim means a broken reduction.
		if _, dup := fb.Rules[control]; dup {
			return Feedback{}, fmt.Errorf("DeriveFeedback: qubit %d controls two generators: %w",
				control, ErrInconsistentFeedback)
		}
		targets := []pauli.QubitAxis{}
		for _, ax := range row.ActiveQubitAxes() {
			if ax.Qubit >= numInternal {
				targets = append(targets, ax)
				controls[ax] = append(controls[ax], control)
			}
		}
		fb.Rules[control] = targets
	}
	fillRedundant(fb.Rules, numInternal)

	axes := make([]pauli.QubitAxis, 0, len(controls))
	for ax := range controls {
		axes = append(axes, ax)
	}
	sort.Slice(axes, func(i, j int) bool {
		if axes[i].Qubit != axes[j].Qubit {
			return axes[i].Qubit < axes[j].Qubit
		}

		return !axes[i].Axis && axes[j].Axis
	})
	for _, ax := range axes {
		fb.Corrections = append(fb.Corrections, program.Correction{Target: ax, Controls: controls[ax]})
	}

	return fb, nil
}

// fillRedundant gives every internal qubit without a rule an empty one.
func fillRedundant(rules map[int][]pauli.QubitAxis, numInternal int) {
	for q := 0; q < numInternal; q++ {
		if _, ok := rules[q]; !ok {
			rules[q] = []pauli.QubitAxis{}
		}
	}
}

// numControls counts the rules that flip at least one external axis.
func (fb Feedback) numControls() int {
	n := 0
	for _, targets := range fb.Rules {
		if len(targets) > 0 {
			n++
		}
	}

	return n
}
