package stabilizer

// Unbiased is the measurement bias of a fair random outcome.
const Unbiased = 0.5

// MaxWavefunctionQubits bounds Wavefunction, whose cost is exponential.
const MaxWavefunctionQubits = 24

// Measurement is the outcome of a Z measurement. Random is false when the
// state determined the result.
type Measurement struct {
	Result bool
	Random bool
}

// Simulator is a stabilizer-circuit simulator addressed by integer handles.
//
// Gate methods panic on an unknown handle or after Destruct, like an
// out-of-range slice index; they are programmer errors.
type Simulator interface {
	// QAlloc returns a fresh qubit in |0⟩.
	QAlloc() int
	// Free measures q out, resets it and returns it to the pool.
	Free(q int)
	// Hadamard applies H to q.
	Hadamard(q int)
	// Phase applies S = diag(1, i) to q.
	Phase(q int)
	// CNOT applies a controlled X from control onto target.
	CNOT(control, target int)
	// Measure measures q in Z. A random outcome reads true with
	// probability bias.
	Measure(q int, bias float64) Measurement
	// Collapse projects q onto the given Z outcome.
	Collapse(q int, outcome bool) error
	// Probability returns the probability that measuring q reads true,
	// without disturbing the state.
	Probability(q int) float64
	// Destruct releases the simulator. Further use panics.
	Destruct()
}
