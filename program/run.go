package program

import (
	"fmt"

	"github.com/katalvlaran/zxeval/stabilizer"
)

// RunOptions configures Run.
type RunOptions struct {
	// Biased forces every random feedback measurement to read false.
	// Post-selections always measure with that bias.
	Biased bool

	// Inspect, when set, is called after the last statement and before the
	// simulator is released; qubits[k] is the handle of program qubit k.
	Inspect func(sim stabilizer.Simulator, qubits []int) error
}

// Outcome records one measurement taken by Run.
type Outcome struct {
	Qubit        int
	Result       bool
	Random       bool
	Probability  float64 // probability of reading true, taken just before measuring
	PostSelected bool
}

// RunReport lists the measurements of one Run in program order.
type RunReport struct {
	Biased   bool
	Outcomes []Outcome
}

// Result returns the last recorded result for qubit q.
func (r RunReport) Result(q int) (bool, bool) {
	for k := len(r.Outcomes) - 1; k >= 0; k-- {
		if r.Outcomes[k].Qubit == q {
			return r.Outcomes[k].Result, true
		}
	}

	return false, false
}

// Satisfied reports whether every post-selection read false and, for a
// biased run, whether every feedback measurement did too.
func (r RunReport) Satisfied() bool {
	for _, o := range r.Outcomes {
		if o.Result && (o.PostSelected || r.Biased) {
			return false
		}
	}

	return true
}

// SuccessProbability is the chance that all post-selections succeed: the
// product of 1-p over the post-selection outcomes, or 0 when unsatisfied.
func (r RunReport) SuccessProbability() float64 {
	if !r.Satisfied() {
		return 0
	}
	p := 1.0
	for _, o := range r.Outcomes {
		if o.PostSelected {
			p *= 1 - o.Probability
		}
	}

	return p
}

// applyGate runs g on handle h through the simulator primitives.
func applyGate(sim stabilizer.Simulator, g Gate, h int) {
	for _, prim := range g.Primitives() {
		if prim == PrimH {
			sim.Hadamard(h)
		} else {
			sim.Phase(h)
		}
	}
}

// Run interprets the program on sim. The simulator is released on every
// return path, including panics raised by the simulator itself.
// Complexity: O(gates) simulator calls.
func (qp *QuantumProgram) Run(sim stabilizer.Simulator, opts RunOptions) (report RunReport, err error) {
	defer sim.Destruct()

	if err = qp.Validate(); err != nil {
		return RunReport{}, err
	}
	report.Biased = opts.Biased
	bias := stabilizer.Unbiased
	if opts.Biased {
		bias = 0
	}

	var handles []int
	measure := func(q int, b float64, post bool) bool {
		h := handles[q]
		p := sim.Probability(h)
		m := sim.Measure(h, b)
		report.Outcomes = append(report.Outcomes, Outcome{
			Qubit: q, Result: m.Result, Random: m.Random, Probability: p, PostSelected: post,
		})

		return m.Result
	}

	for _, s := range qp.Statements {
		switch st := s.(type) {
		case HeaderAlloc:
			for k := 0; k < st.NumQubits; k++ {
				handles = append(handles, sim.QAlloc())
			}
		case InitEprPairs:
			for _, p := range st.Pairs {
				sim.Hadamard(handles[p[0]])
				sim.CNOT(handles[p[0]], handles[p[1]])
			}
		case EdgeActions:
			for _, a := range st.Actions {
				applyGate(sim, a.Gate, handles[a.Qubit])
			}
		case MultiCnot:
			for _, o := range st.Others {
				if st.PivotIsTarget {
					sim.CNOT(handles[o], handles[st.Pivot])
				} else {
					sim.CNOT(handles[st.Pivot], handles[o])
				}
			}
		case Hadamards:
			for _, q := range st.Qubits {
				sim.Hadamard(handles[q])
			}
		case MeasurementsWithPauliFeedback:
			results := make(map[int]bool, len(st.Measured))
			for _, q := range st.Measured {
				results[q] = measure(q, bias, false)
			}
			for _, c := range st.Corrections {
				parity := false
				for _, ctl := range c.Controls {
					parity = parity != results[ctl]
				}
				if !parity {
					continue
				}
				g := GateX
				if c.Target.Axis {
					g = GateZ
				}
				applyGate(sim, g, handles[c.Target.Qubit])
			}
		case PostSelection:
			for _, g := range st.Rotation {
				applyGate(sim, g, handles[st.Qubit])
			}
			measure(st.Qubit, 0, true)
		}
	}

	if opts.Inspect != nil {
		if err = opts.Inspect(sim, handles); err != nil {
			return report, fmt.Errorf("Run: inspect: %w", err)
		}
	}

	return report, nil
}
