package stabilizer

import (
	"fmt"
	"math"
	"math/bits"
	"math/cmplx"

	"github.com/katalvlaran/zxeval/pauli"
)

// phaseTolerance decides ties when choosing the amplitude made positive real.
const phaseTolerance = 1e-9

// ApplyPauli returns p·v for a little-endian state vector v of length 2^n.
// Complexity: O(2^n).
func ApplyPauli(p pauli.PauliProduct, v []complex128) []complex128 {
	var xmask, zmask uint
	nY := 0
	for q, c := range p.Paulis {
		if c&pauli.X != 0 {
			xmask |= 1 << q
		}
		if c&pauli.Z != 0 {
			zmask |= 1 << q
		}
		if c == pauli.Y {
			nY++
		}
	}
	unit := [4]complex128{1, 1i, -1, -1i}[(p.Phase+nY)%4]
	out := make([]complex128, len(v))
	for k, a := range v {
		if a == 0 {
			continue
		}
		amp := unit * a
		if bits.OnesCount(uint(k)&zmask)%2 == 1 {
			amp = -amp
		}
		out[uint(k)^xmask] += amp
	}

	return out
}

// validateGenerators checks that stabs are n Hermitian, pairwise commuting,
// independent products on n qubits.
func validateGenerators(stabs []pauli.PauliProduct) error {
	n := len(stabs)
	for k, s := range stabs {
		if s.Len() != n {
			return fmt.Errorf("generator %d spans %d qubits, want %d: %w", k, s.Len(), n, ErrNotIndependent)
		}
		if s.Phase%2 != 0 {
			return fmt.Errorf("generator %v: %w", s, ErrNotHermitian)
		}
	}
	for i := range stabs {
		for j := i + 1; j < n; j++ {
			if !stabs[i].CommutesWith(stabs[j]) {
				return fmt.Errorf("%v and %v: %w", stabs[i], stabs[j], ErrAnticommuting)
			}
		}
	}
	reduced, err := pauli.GaussianEliminate(stabs)
	if err != nil {
		return err
	}
	if len(reduced) != n {
		return fmt.Errorf("rank %d of %d: %w", len(reduced), n, ErrNotIndependent)
	}

	return nil
}

// Wavefunction returns the unit vector fixed by the n generators stabs,
// little-endian over their n qubits. The global phase is chosen so that the
// first amplitude of largest magnitude is positive real.
//
// The vector is obtained by projecting basis states with ∏(I+S)/2 until the
// projection is non-zero.
// Complexity: O(n·4^n) worst case.
func Wavefunction(stabs []pauli.PauliProduct) ([]complex128, error) {
	n := len(stabs)
	if n > MaxWavefunctionQubits {
		return nil, fmt.Errorf("Wavefunction: %d qubits: %w", n, ErrTooLarge)
	}
	if err := validateGenerators(stabs); err != nil {
		return nil, fmt.Errorf("Wavefunction: %w", err)
	}

	size := 1 << n
	for basis := 0; basis < size; basis++ {
		v := make([]complex128, size)
		v[basis] = 1
		for _, s := range stabs {
			sv := ApplyPauli(s, v)
			for k := range v {
				v[k] = (v[k] + sv[k]) / 2
			}
		}
		if norm(v) > phaseTolerance {
			return CanonicalPhase(v), nil
		}
	}

	// Unreachable for a valid generator set: the projector has rank one.
	return nil, fmt.Errorf("Wavefunction: empty projection: %w", ErrNotIndependent)
}

func norm(v []complex128) float64 {
	s := 0.0
	for _, a := range v {
		s += real(a)*real(a) + imag(a)*imag(a)
	}

	return math.Sqrt(s)
}

// CanonicalPhase scales v in place to unit norm and rotates it so that the
// first amplitude within phaseTolerance of the largest magnitude is
// positive real. A zero vector is returned unchanged.
func CanonicalPhase(v []complex128) []complex128 {
	nrm := norm(v)
	if nrm == 0 {
		return v
	}
	best := 0.0
	for _, a := range v {
		best = math.Max(best, cmplx.Abs(a))
	}
	var rot complex128
	for _, a := range v {
		if m := cmplx.Abs(a); m >= best-phaseTolerance {
			rot = cmplx.Conj(a) / complex(m*nrm, 0)

			break
		}
	}
	for k := range v {
		v[k] *= rot
	}

	return v
}
