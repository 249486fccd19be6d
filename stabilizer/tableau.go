package stabilizer

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/zxeval/pauli"
)

// Tableau is a CHP stabilizer simulator. Row k of stab and destab acts on
// all allocated handles; handle q is column q. Columns are never removed:
// freed handles are reset to |0⟩ and reused by QAlloc.
//
// A Tableau is not safe for concurrent use.
type Tableau struct {
	destab   []pauli.PauliProduct
	stab     []pauli.PauliProduct
	live     []bool
	free     []int
	rng      *rand.Rand
	released bool
}

// Option configures a Tableau.
type Option func(*Tableau)

// WithRand sets the random source used for random measurement outcomes.
func WithRand(r *rand.Rand) Option {
	return func(t *Tableau) {
		t.rng = r
	}
}

// NewTableau returns an empty simulator.
func NewTableau(opts ...Option) *Tableau {
	t := &Tableau{}
	for _, opt := range opts {
		opt(t)
	}
	if t.rng == nil {
		t.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return t
}

// NumQubits returns the number of columns, live or free.
func (t *Tableau) NumQubits() int { return len(t.stab) }

// Stabilizers returns a copy of the current stabilizer generators.
func (t *Tableau) Stabilizers() []pauli.PauliProduct {
	out := make([]pauli.PauliProduct, len(t.stab))
	for i, s := range t.stab {
		out[i] = s.Clone()
	}

	return out
}

func (t *Tableau) check(qs ...int) {
	if t.released {
		panic(ErrReleased)
	}
	for _, q := range qs {
		if q < 0 || q >= len(t.live) || !t.live[q] {
			panic(fmt.Errorf("qubit %d: %w", q, ErrUnknownQubit))
		}
	}
}

func hasX(p pauli.PauliProduct, q int) bool { return p.Paulis[q]&pauli.X != 0 }

// QAlloc returns a qubit in |0⟩, reusing a freed handle when possible.
// Complexity: O(n²) when the tableau grows.
func (t *Tableau) QAlloc() int {
	if t.released {
		panic(ErrReleased)
	}
	if k := len(t.free); k > 0 {
		q := t.free[k-1]
		t.free = t.free[:k-1]
		t.live[q] = true

		return q
	}

	q := len(t.stab)
	for i := range t.stab {
		t.stab[i].Paulis = append(t.stab[i].Paulis, pauli.I)
		t.destab[i].Paulis = append(t.destab[i].Paulis, pauli.I)
	}
	d := pauli.Identity(q + 1)
	d.Paulis[q] = pauli.X
	s := pauli.Identity(q + 1)
	s.Paulis[q] = pauli.Z
	t.destab = append(t.destab, d)
	t.stab = append(t.stab, s)
	t.live = append(t.live, true)

	return q
}

// Free measures q, resets it to |0⟩ and makes the handle reusable.
func (t *Tableau) Free(q int) {
	t.check(q)
	if t.Measure(q, Unbiased).Result {
		X(t, q)
	}
	t.live[q] = false
	t.free = append(t.free, q)
}

// Hadamard applies H to q.
func (t *Tableau) Hadamard(q int) {
	t.check(q)
	for i := range t.stab {
		t.stab[i].ApplyH(q)
		t.destab[i].ApplyH(q)
	}
}

// Phase applies S to q.
func (t *Tableau) Phase(q int) {
	t.check(q)
	for i := range t.stab {
		t.stab[i].ApplyS(q)
		t.destab[i].ApplyS(q)
	}
}

// CNOT applies a controlled X from c onto tg.
func (t *Tableau) CNOT(c, tg int) {
	t.check(c, tg)
	if c == tg {
		panic(fmt.Errorf("CNOT(%d, %d): control equals target: %w", c, tg, ErrUnknownQubit))
	}
	for i := range t.stab {
		t.stab[i].ApplyCNOT(c, tg)
		t.destab[i].ApplyCNOT(c, tg)
	}
}

// randomPivot returns the first stabilizer anticommuting with Z_q, or -1
// when the Z outcome of q is determined.
func (t *Tableau) randomPivot(q int) int {
	for i := range t.stab {
		if hasX(t.stab[i], q) {
			return i
		}
	}

	return -1
}

// determined returns the Z outcome of q when randomPivot(q) < 0: the sign
// of the stabilizer product equal to ±Z_q.
func (t *Tableau) determined(q int) bool {
	scratch := pauli.Identity(len(t.stab))
	for i := range t.destab {
		if hasX(t.destab[i], q) {
			scratch.InlineTimes(t.stab[i])
		}
	}

	return scratch.Phase == 2
}

// project fixes the random outcome of q to result, p being randomPivot(q).
func (t *Tableau) project(q, p int, result bool) {
	for i := range t.stab {
		if i != p && hasX(t.stab[i], q) {
			t.stab[i].InlineTimes(t.stab[p])
		}
	}
	for i := range t.destab {
		if i != p && hasX(t.destab[i], q) {
			t.destab[i].InlineTimes(t.stab[p])
		}
	}
	t.destab[p] = t.stab[p]
	z := pauli.Identity(len(t.stab))
	z.Paulis[q] = pauli.Z
	if result {
		z.Phase = 2
	}
	t.stab[p] = z
}

// Measure measures q in the Z basis.
// Complexity: O(n²).
func (t *Tableau) Measure(q int, bias float64) Measurement {
	t.check(q)
	p := t.randomPivot(q)
	if p < 0 {
		return Measurement{Result: t.determined(q)}
	}
	result := t.rng.Float64() < bias
	t.project(q, p, result)

	return Measurement{Result: result, Random: true}
}

// Collapse projects q onto outcome, failing if that outcome is impossible.
func (t *Tableau) Collapse(q int, outcome bool) error {
	t.check(q)
	p := t.randomPivot(q)
	if p < 0 {
		if t.determined(q) != outcome {
			return fmt.Errorf("Collapse(%d, %v): %w", q, outcome, ErrImpossibleCollapse)
		}

		return nil
	}
	t.project(q, p, outcome)

	return nil
}

// Probability returns P(measuring q reads true).
func (t *Tableau) Probability(q int) float64 {
	t.check(q)
	if t.randomPivot(q) >= 0 {
		return 0.5
	}
	if t.determined(q) {
		return 1
	}

	return 0
}

// Destruct releases the tableau.
func (t *Tableau) Destruct() {
	t.released = true
	t.stab, t.destab, t.live, t.free = nil, nil, nil, nil
}
