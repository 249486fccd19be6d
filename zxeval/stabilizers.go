package zxeval

import (
	"fmt"

	"github.com/katalvlaran/zxeval/pauli"
	"github.com/katalvlaran/zxeval/zxgraph"
)

// project updates the commuting generator list rows for a measurement of
// the Hermitian observable o that reads +1. If o anticommutes with some
// rows, the first one is multiplied into the others and then replaced by
// o; otherwise o is appended and later reduces to ±I.
// Complexity: O(len(rows)·n).
func project(rows []pauli.PauliProduct, o pauli.PauliProduct) []pauli.PauliProduct {
	p := -1
	for k := range rows {
		if rows[k].CommutesWith(o) {
			continue
		}
		if p < 0 {
			p = k

			continue
		}
		rows[k].InlineTimes(rows[p])
	}
	if p < 0 {
		return append(rows, o.Clone())
	}
	rows[p] = o.Clone()

	return rows
}

// OutputStabilizers returns the generators of the state left on the input
// and output qubits when every internal measurement and post-selection
// reads +1, in reduced row echelon form over inputs then outputs.
//
// Stage 1: project the edge stabilizers onto every node and post-selection
// observable, in program order.
// Stage 2: eliminate internal columns, then post-selection columns, then
// input/output columns. A leftover -I means the +1 branch has probability
// zero and the diagram is not satisfiable.
// Stage 3: keep the rows pivoted on input/output qubits.
//
// Complexity: O(Q³) for Q port qubits.
func (ev *Evaluation) OutputStabilizers() (stabs []pauli.PauliProduct, satisfiable bool, err error) {
	m := ev.Mapping
	rows := make([]pauli.PauliProduct, 0, len(ev.EdgeRows)+len(ev.NodeRows)+len(ev.PostRows))
	for _, r := range ev.EdgeRows {
		rows = append(rows, r.Clone())
	}
	for _, o := range ev.NodeRows {
		rows = project(rows, o)
	}
	for _, o := range ev.PostRows {
		rows = project(rows, o)
	}

	inLo, _ := m.Range(zxgraph.ClassInput)
	_, outHi := m.Range(zxgraph.ClassOutput)
	postLo, postHi := m.Range(zxgraph.ClassPost)
	cols := pauli.AllColumns(m.NumInternal())
	for q := postLo; q < postHi; q++ {
		cols = append(cols, pauli.AxisX(q), pauli.AxisZ(q))
	}
	for q := inLo; q < outHi; q++ {
		cols = append(cols, pauli.AxisX(q), pauli.AxisZ(q))
	}
	e, err := pauli.EliminateOn(rows, cols)
	if err != nil {
		return nil, false, fmt.Errorf("OutputStabilizers: %w", err)
	}
	for _, r := range e.Leftover() {
		if r.Phase != 0 {
			return nil, false, nil
		}
	}

	var kept []pauli.PauliProduct
	for k, r := range e.PivotRows() {
		if q := e.Pivots[k].Qubit; q >= inLo && q < outHi {
			kept = append(kept, r.Slice(inLo, outHi))
		}
	}
	stabs, err = pauli.GaussianEliminate(kept)
	if err != nil {
		return nil, false, fmt.Errorf("OutputStabilizers: %w", err)
	}

	return stabs, true, nil
}
