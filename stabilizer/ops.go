package stabilizer

import (
	"fmt"

	"github.com/katalvlaran/zxeval/pauli"
)

// X applies the Pauli X to q as H·S·S·H.
func X(sim Simulator, q int) {
	sim.Hadamard(q)
	Z(sim, q)
	sim.Hadamard(q)
}

// Z applies the Pauli Z to q as S·S.
func Z(sim Simulator, q int) {
	sim.Phase(q)
	sim.Phase(q)
}

// SDagger applies S† to q as S·S·S.
func SDagger(sim Simulator, q int) {
	sim.Phase(q)
	Z(sim, q)
}

// Swap exchanges qubits a and b with three CNOTs.
func Swap(sim Simulator, a, b int) {
	sim.CNOT(a, b)
	sim.CNOT(b, a)
	sim.CNOT(a, b)
}

// BlochVector returns the expectations (⟨X⟩, ⟨Y⟩, ⟨Z⟩) of q, each in
// {-1, 0, +1} for a stabilizer state. The state is left unchanged.
func BlochVector(sim Simulator, q int) [3]float64 {
	expect := func() float64 { return 1 - 2*sim.Probability(q) }

	z := expect()
	sim.Hadamard(q)
	x := expect()
	sim.Hadamard(q)
	SDagger(sim, q)
	sim.Hadamard(q)
	y := expect()
	sim.Hadamard(q)
	sim.Phase(q)

	return [3]float64{x, y, z}
}

// toZ rotates the factor c of q onto Z; fromZ undoes it.
func toZ(sim Simulator, c uint8, q int) {
	switch c {
	case pauli.X:
		sim.Hadamard(q)
	case pauli.Y:
		SDagger(sim, q)
		sim.Hadamard(q)
	}
}

func fromZ(sim Simulator, c uint8, q int) {
	switch c {
	case pauli.X:
		sim.Hadamard(q)
	case pauli.Y:
		sim.Hadamard(q)
		sim.Phase(q)
	}
}

// MeasureObservable measures the Hermitian product obs, whose factor k acts
// on handles[k], without collapsing anything beyond its eigenspace. Result
// true means the -1 eigenvalue. A random outcome reads true with
// probability bias.
// Complexity: O(weight) simulator calls.
func MeasureObservable(sim Simulator, handles []int, obs pauli.PauliProduct, bias float64) (Measurement, error) {
	if obs.Len() != len(handles) {
		return Measurement{}, fmt.Errorf("MeasureObservable: %d factors for %d handles: %w",
			obs.Len(), len(handles), pauli.ErrLengthMismatch)
	}
	if obs.Phase%2 != 0 {
		return Measurement{}, fmt.Errorf("MeasureObservable(%v): %w", obs, ErrNotHermitian)
	}
	negate := obs.Phase == 2

	var support []int
	for k, c := range obs.Paulis {
		if c != pauli.I {
			support = append(support, k)
		}
	}
	if len(support) == 0 {
		return Measurement{Result: negate}, nil
	}

	for _, k := range support {
		toZ(sim, obs.Paulis[k], handles[k])
	}
	last := handles[support[len(support)-1]]
	for _, k := range support[:len(support)-1] {
		sim.CNOT(handles[k], last)
	}
	m := sim.Measure(last, bias)
	for _, k := range support[:len(support)-1] {
		sim.CNOT(handles[k], last)
	}
	for _, k := range support {
		fromZ(sim, obs.Paulis[k], handles[k])
	}
	m.Result = m.Result != negate

	return m, nil
}
