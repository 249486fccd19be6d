package stabilizer

import "errors"

var (
	// ErrReleased indicates use of a simulator after Destruct.
	ErrReleased = errors.New("stabilizer: simulator released")

	// ErrUnknownQubit indicates a handle that is not currently allocated.
	ErrUnknownQubit = errors.New("stabilizer: unknown qubit handle")

	// ErrImpossibleCollapse indicates collapsing onto an outcome of probability 0.
	ErrImpossibleCollapse = errors.New("stabilizer: impossible collapse")

	// ErrNotHermitian indicates a product with phase ±i.
	ErrNotHermitian = errors.New("stabilizer: observable is not Hermitian")

	// ErrAnticommuting indicates two stabilizers that anticommute.
	ErrAnticommuting = errors.New("stabilizer: stabilizers anticommute")

	// ErrNotIndependent indicates a generator list that does not fix one state.
	ErrNotIndependent = errors.New("stabilizer: need n independent generators on n qubits")

	// ErrTooLarge indicates a state vector beyond MaxWavefunctionQubits.
	ErrTooLarge = errors.New("stabilizer: too many qubits for a state vector")
)
