// SPDX-License-Identifier: MIT

package pauli

import "fmt"

// Elimination is the outcome of EliminateOn.
//
// Rows holds every input row after reduction: the first len(Pivots) rows are
// pivot rows, Rows[k] having Pivots[k] as its leading column, followed by the
// leftover rows, which have no bit set in any eliminated column.
type Elimination struct {
	Rows   []PauliProduct
	Pivots []QubitAxis
}

// PivotRows returns the reduced rows that own a pivot column.
func (e Elimination) PivotRows() []PauliProduct {
	return e.Rows[:len(e.Pivots)]
}

// Leftover returns the rows that own no pivot column.
func (e Elimination) Leftover() []PauliProduct {
	return e.Rows[len(e.Pivots):]
}

// EliminateOn row-reduces rows over the given bit columns, in order.
// For each column it picks the first not-yet-used row with that bit set as
// pivot, multiplies it (with phase tracking) into every other row having the
// bit, and swaps it into the next free slot. Inputs are not modified.
//
// Complexity: O(len(columns)·len(rows)·n).
func EliminateOn(rows []PauliProduct, columns []QubitAxis) (Elimination, error) {
	work := make([]PauliProduct, len(rows))
	for k, r := range rows {
		if k > 0 && r.Len() != rows[0].Len() {
			return Elimination{}, fmt.Errorf("EliminateOn: row %d has %d qubits, row 0 has %d: %w",
				k, r.Len(), rows[0].Len(), ErrLengthMismatch)
		}
		work[k] = r.Clone()
	}

	var pivots []QubitAxis
	next := 0
	for _, col := range columns {
		if next == len(work) {
			break
		}
		if len(work) > 0 && (col.Qubit < 0 || col.Qubit >= work[0].Len()) {
			return Elimination{}, fmt.Errorf("EliminateOn: column %v: %w", col, ErrQubitOutOfRange)
		}
		pivot := -1
		for k := next; k < len(work); k++ {
			if work[k].Has(col) {
				pivot = k
				break
			}
		}
		if pivot < 0 {
			continue
		}
		for k := range work {
			if k != pivot && work[k].Has(col) {
				work[k].InlineTimes(work[pivot])
			}
		}
		work[next], work[pivot] = work[pivot], work[next]
		pivots = append(pivots, col)
		next++
	}

	return Elimination{Rows: work, Pivots: pivots}, nil
}

// GaussianEliminate reduces rows of equal length into an independent
// generating set with sorted pivots: qubit by qubit, first on the X bit
// ("X or Y present") then on the Z bit ("Z or Y present"). Phases are carried
// through every multiplication. Rows that reduce to a bare phase are dropped.
func GaussianEliminate(rows []PauliProduct) ([]PauliProduct, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	e, err := EliminateOn(rows, AllColumns(rows[0].Len()))
	if err != nil {
		return nil, err
	}

	return e.PivotRows(), nil
}
