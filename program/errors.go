package program

import "errors"

var (
	// ErrNoHeader indicates a program whose first statement is not HeaderAlloc.
	ErrNoHeader = errors.New("program: missing HeaderAlloc")

	// ErrQubitOutOfRange indicates a statement addressing an unallocated qubit.
	ErrQubitOutOfRange = errors.New("program: qubit out of range")

	// ErrBadObservable indicates an observable that cannot be rotated onto Z.
	ErrBadObservable = errors.New("program: not a single-qubit Pauli observable")
)
