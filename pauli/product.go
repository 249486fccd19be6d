// SPDX-License-Identifier: MIT

package pauli

import (
	"fmt"
	"strings"
)

// mod4 reduces k into [0, 4).
func mod4(k int) int {
	return ((k % 4) + 4) % 4
}

// Identity returns the n-qubit identity with phase +1.
// A zero-qubit product is a valid scalar.
func Identity(n int) PauliProduct {
	return PauliProduct{Phase: 0, Paulis: make([]uint8, n)}
}

// Scalar returns the zero-qubit product i^phase.
func Scalar(phase int) PauliProduct {
	return PauliProduct{Phase: mod4(phase), Paulis: []uint8{}}
}

// FromString parses products such as "+X.XX", "-iZ_", "iY" or "XYZ".
// The sign and the "i" are optional; identity factors may be written
// '.', '_' or 'I'.
func FromString(text string) (PauliProduct, error) {
	s := strings.TrimSpace(text)
	phase := 0
	if strings.HasPrefix(s, "+") {
		s = s[1:]
	} else if strings.HasPrefix(s, "-") {
		phase = 2
		s = s[1:]
	}
	if strings.HasPrefix(s, "i") {
		phase++
		s = s[1:]
	}
	paulis := make([]uint8, len(s))
	for k := 0; k < len(s); k++ {
		switch s[k] {
		case '.', '_', 'I':
			paulis[k] = I
		case 'X', 'x':
			paulis[k] = X
		case 'Z', 'z':
			paulis[k] = Z
		case 'Y', 'y':
			paulis[k] = Y
		default:
			return PauliProduct{}, fmt.Errorf("FromString(%q): unexpected %q: %w", text, s[k], ErrParse)
		}
	}

	return PauliProduct{Phase: mod4(phase), Paulis: paulis}, nil
}

// MustFromString is FromString for literals known to be valid.
func MustFromString(text string) PauliProduct {
	p, err := FromString(text)
	if err != nil {
		panic(err)
	}

	return p
}

// FromSparse builds an n-qubit product from qubit → letter ('X', 'Y', 'Z', 'I').
func FromSparse(n int, factors map[int]byte) (PauliProduct, error) {
	p := Identity(n)
	for q, letter := range factors {
		if q < 0 || q >= n {
			return PauliProduct{}, fmt.Errorf("FromSparse: qubit %d of %d: %w", q, n, ErrQubitOutOfRange)
		}
		code := strings.IndexByte(pauliChars, letter)
		if letter == 'I' {
			code = int(I)
		}
		if code < 0 {
			return PauliProduct{}, fmt.Errorf("FromSparse: letter %q: %w", letter, ErrParse)
		}
		p.Paulis[q] = uint8(code)
	}

	return p, nil
}

// FromSparseByType builds an n-qubit product from letter → qubits, e.g.
// {'X': {0, 2}, 'Z': {1}}.
func FromSparseByType(n int, byType map[byte][]int) (PauliProduct, error) {
	factors := make(map[int]byte)
	for letter, qubits := range byType {
		for _, q := range qubits {
			factors[q] = letter
		}
	}

	return FromSparse(n, factors)
}

// FromSparseQubitAxes sets the listed observable bits on an n-qubit identity.
// Listing both axes of a qubit yields +Y there; listing an axis twice clears it.
func FromSparseQubitAxes(n int, axes []QubitAxis) (PauliProduct, error) {
	p := Identity(n)
	for _, a := range axes {
		if a.Qubit < 0 || a.Qubit >= n {
			return PauliProduct{}, fmt.Errorf("FromSparseQubitAxes: %v of %d: %w", a, n, ErrQubitOutOfRange)
		}
		p.Paulis[a.Qubit] ^= a.bit()
	}

	return p, nil
}

// FromXzParity places the given observable (Z when zAxis, else X) on every
// listed qubit, optionally negated. Listing a qubit twice cancels it.
func FromXzParity(n int, zAxis bool, qubits []int, negate bool) (PauliProduct, error) {
	axes := make([]QubitAxis, len(qubits))
	for k, q := range qubits {
		axes[k] = QubitAxis{Qubit: q, Axis: zAxis}
	}
	p, err := FromSparseQubitAxes(n, axes)
	if err != nil {
		return PauliProduct{}, err
	}
	if negate {
		p.Phase = 2
	}

	return p, nil
}

// Len returns the number of qubits.
func (p PauliProduct) Len() int { return len(p.Paulis) }

// Clone returns a deep copy.
func (p PauliProduct) Clone() PauliProduct {
	c := make([]uint8, len(p.Paulis))
	copy(c, p.Paulis)

	return PauliProduct{Phase: p.Phase, Paulis: c}
}

// Times returns p·q without modifying either operand.
// Panics when the operands have different lengths.
func (p PauliProduct) Times(q PauliProduct) PauliProduct {
	out := p.Clone()
	out.InlineTimes(q)

	return out
}

// InlineTimes replaces p with p·q.
// Panics when the operands have different lengths.
func (p *PauliProduct) InlineTimes(q PauliProduct) {
	if len(p.Paulis) != len(q.Paulis) {
		panic(fmt.Errorf("InlineTimes(%d, %d): %w", len(p.Paulis), len(q.Paulis), ErrLengthMismatch))
	}
	phase := p.Phase + q.Phase
	for k, b := range q.Paulis {
		a := p.Paulis[k]
		phase += productPhase[a][b]
		p.Paulis[k] = a ^ b
	}
	p.Phase = mod4(phase)
}

// TimesPhase returns p multiplied by the scalar i^k.
func (p PauliProduct) TimesPhase(k int) PauliProduct {
	out := p.Clone()
	out.Phase = mod4(out.Phase + k)

	return out
}

// Neg returns -p.
func (p PauliProduct) Neg() PauliProduct { return p.TimesPhase(2) }

// Inv returns the group inverse; every factor is self-inverse so only the
// phase changes.
func (p PauliProduct) Inv() PauliProduct {
	out := p.Clone()
	out.Phase = mod4(-p.Phase)

	return out
}

// Conj returns the entrywise complex conjugate of the operator: Y and i flip sign.
func (p PauliProduct) Conj() PauliProduct {
	out := p.Clone()
	phase := -p.Phase
	for _, c := range p.Paulis {
		if c == Y {
			phase += 2
		}
	}
	out.Phase = mod4(phase)

	return out
}

// Abs drops the phase.
func (p PauliProduct) Abs() PauliProduct {
	out := p.Clone()
	out.Phase = 0

	return out
}

// BitwiseAnd keeps only the observable bits present in both operands; the
// phase exponents are ANDed as well. Used for masking.
func (p PauliProduct) BitwiseAnd(q PauliProduct) PauliProduct {
	if len(p.Paulis) != len(q.Paulis) {
		panic(fmt.Errorf("BitwiseAnd(%d, %d): %w", len(p.Paulis), len(q.Paulis), ErrLengthMismatch))
	}
	out := Identity(len(p.Paulis))
	for k := range p.Paulis {
		out.Paulis[k] = p.Paulis[k] & q.Paulis[k]
	}
	out.Phase = p.Phase & q.Phase

	return out
}

// CommutesWith reports whether p and q commute: they do when an even number
// of positions hold two different non-identity factors.
func (p PauliProduct) CommutesWith(q PauliProduct) bool {
	if len(p.Paulis) != len(q.Paulis) {
		panic(fmt.Errorf("CommutesWith(%d, %d): %w", len(p.Paulis), len(q.Paulis), ErrLengthMismatch))
	}
	odd := false
	for k, a := range p.Paulis {
		b := q.Paulis[k]
		if a != I && b != I && a != b {
			odd = !odd
		}
	}

	return !odd
}

// Has reports whether the bit column a is set.
func (p PauliProduct) Has(a QubitAxis) bool {
	return p.Paulis[a.Qubit]&a.bit() != 0
}

// XzBitWeight counts set observable bits (a Y counts twice).
func (p PauliProduct) XzBitWeight() int {
	w := 0
	for _, c := range p.Paulis {
		w += int(c&xBit) + int((c&zBit)>>1)
	}

	return w
}

// XzSingleton returns the only set bit column, if exactly one is set.
func (p PauliProduct) XzSingleton() (QubitAxis, bool) {
	if p.XzBitWeight() != 1 {
		return QubitAxis{}, false
	}
	axes := p.ActiveQubitAxes()

	return axes[0], true
}

// ActiveQubitAxes lists the set bit columns in qubit order, X before Z.
func (p PauliProduct) ActiveQubitAxes() []QubitAxis {
	var out []QubitAxis
	for q, c := range p.Paulis {
		if c&xBit != 0 {
			out = append(out, AxisX(q))
		}
		if c&zBit != 0 {
			out = append(out, AxisZ(q))
		}
	}

	return out
}

// IsIdentity reports whether every factor is I (the phase is ignored).
func (p PauliProduct) IsIdentity() bool {
	for _, c := range p.Paulis {
		if c != I {
			return false
		}
	}

	return true
}

// Slice restricts p to qubits [lo, hi), keeping the phase.
func (p PauliProduct) Slice(lo, hi int) PauliProduct {
	c := make([]uint8, hi-lo)
	copy(c, p.Paulis[lo:hi])

	return PauliProduct{Phase: p.Phase, Paulis: c}
}

// Equal reports phase and factor equality.
func (p PauliProduct) Equal(q PauliProduct) bool {
	if p.Phase != q.Phase || len(p.Paulis) != len(q.Paulis) {
		return false
	}
	for k := range p.Paulis {
		if p.Paulis[k] != q.Paulis[k] {
			return false
		}
	}

	return true
}

// String renders the product as e.g. "+X.XX", "-iZ." or "+" for a scalar.
func (p PauliProduct) String() string {
	var b strings.Builder
	b.WriteString([4]string{"+", "+i", "-", "-i"}[mod4(p.Phase)])
	for _, c := range p.Paulis {
		b.WriteByte(pauliChars[c&0b11])
	}

	return b.String()
}
