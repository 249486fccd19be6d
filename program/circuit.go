package program

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// CircuitURLPrefix is the address of the circuit simulator the JSON targets.
const CircuitURLPrefix = "https://algassert.com/quirk#circuit="

// Circuit glyphs.
const (
	glyphControl  = "•"
	glyphParity   = "zpar"
	glyphMeasure  = "Measure"
	glyphPostZero = "|0⟩⟨0|"
)

// Circuit is the column layout of the Quirk simulator: Cols[t][q] is the
// gate identifier at time t on qubit q, with 1 for an empty slot.
type Circuit struct {
	Cols [][]any `json:"cols"`
	Init []any   `json:"init,omitempty"`
}

// column returns n empty slots.
func column(n int) []any {
	col := make([]any, n)
	for i := range col {
		col[i] = 1
	}

	return col
}

// trim drops trailing empty slots.
func trim(col []any) []any {
	end := len(col)
	for end > 0 && col[end-1] == 1 {
		end--
	}

	return col[:end]
}

// Circuit lays the program out in columns. Gates on distinct qubits that
// commute share a column; every controlled operation gets its own.
func (qp *QuantumProgram) Circuit() (*Circuit, error) {
	if err := qp.Validate(); err != nil {
		return nil, err
	}
	n := qp.NumQubits()
	c := &Circuit{Cols: [][]any{}}
	push := func(col []any) {
		if t := trim(col); len(t) > 0 {
			c.Cols = append(c.Cols, t)
		}
	}
	// gates packs single-qubit gates into as few columns as possible.
	gates := func(actions []GateAction) {
		col := column(n)
		used := make(map[int]bool)
		for _, a := range actions {
			if a.Gate == GateI {
				continue
			}
			if used[a.Qubit] {
				push(col)
				col, used = column(n), make(map[int]bool)
			}
			col[a.Qubit] = a.Gate.Glyph()
			used[a.Qubit] = true
		}
		push(col)
	}

	for _, s := range qp.Statements {
		switch st := s.(type) {
		case InitEprPairs:
			hs := make([]GateAction, len(st.Pairs))
			for i, p := range st.Pairs {
				hs[i] = GateAction{Gate: GateH, Qubit: p[0]}
			}
			gates(hs)
			for _, p := range st.Pairs {
				col := column(n)
				col[p[0]], col[p[1]] = glyphControl, "X"
				push(col)
			}
		case EdgeActions:
			gates(st.Actions)
		case MultiCnot:
			if len(st.Others) == 0 {
				continue
			}
			col := column(n)
			if st.PivotIsTarget {
				col[st.Pivot] = "X"
				for _, o := range st.Others {
					col[o] = glyphParity
				}
			} else {
				col[st.Pivot] = glyphControl
				for _, o := range st.Others {
					col[o] = "X"
				}
			}
			push(col)
		case Hadamards:
			hs := make([]GateAction, len(st.Qubits))
			for i, q := range st.Qubits {
				hs[i] = GateAction{Gate: GateH, Qubit: q}
			}
			gates(hs)
		case MeasurementsWithPauliFeedback:
			col := column(n)
			for _, q := range st.Measured {
				col[q] = glyphMeasure
			}
			push(col)
			for _, corr := range st.Corrections {
				target := "X"
				if corr.Target.Axis {
					target = "Z"
				}
				for _, ctl := range corr.Controls {
					col := column(n)
					col[ctl], col[corr.Target.Qubit] = glyphControl, target
					push(col)
				}
			}
		case PostSelection:
			rot := make([]GateAction, len(st.Rotation))
			for i, g := range st.Rotation {
				rot[i] = GateAction{Gate: g, Qubit: st.Qubit}
			}
			gates(rot)
			col := column(n)
			col[st.Qubit] = glyphPostZero
			push(col)
		case AmpsDisplay:
			if st.Count == 0 {
				continue
			}
			col := column(n)
			col[st.First] = fmt.Sprintf("Amps%d", st.Count)
			c.Cols = append(c.Cols, col[:st.First+1])
		}
	}

	return c, nil
}

// CircuitJSON renders Circuit as compact JSON.
func (qp *QuantumProgram) CircuitJSON() (string, error) {
	c, err := qp.Circuit()
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("CircuitJSON: %w", err)
	}

	return string(data), nil
}

// CircuitURL returns a link that opens the circuit in the simulator.
func (qp *QuantumProgram) CircuitURL() (string, error) {
	text, err := qp.CircuitJSON()
	if err != nil {
		return "", err
	}

	return CircuitURLPrefix + url.PathEscape(text), nil
}
