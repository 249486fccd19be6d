// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/zxeval/zxgraph"
)

// phaseTolerance decides ties when choosing the amplitude made positive real.
const phaseTolerance = 1e-9

// Dense is a complex tensor over labelled dimension-2 legs.
// legs[k] is bit k of the index into data, so len(data) == 1<<len(legs).
type Dense struct {
	legs []zxgraph.Port
	data []complex128
}

// New wraps data as a tensor over legs. The slices are copied.
// Stage 1 (Validate): len(data) must equal 2^len(legs).
// Stage 2 (Prepare): copy both slices.
// Complexity: O(len(data)).
func New(legs []zxgraph.Port, data []complex128) (*Dense, error) {
	if len(data) != 1<<len(legs) {
		return nil, fmt.Errorf("New: %d legs, %d entries: %w", len(legs), len(data), ErrShape)
	}

	return &Dense{
		legs: append([]zxgraph.Port(nil), legs...),
		data: append([]complex128(nil), data...),
	}, nil
}

// Scalar returns the rank-0 tensor c.
func Scalar(c complex128) *Dense {
	return &Dense{data: []complex128{c}}
}

// Legs returns the leg labels in index-bit order.
func (d *Dense) Legs() []zxgraph.Port { return append([]zxgraph.Port(nil), d.legs...) }

// Data returns a copy of the entries.
func (d *Dense) Data() []complex128 { return append([]complex128(nil), d.data...) }

// legIndex returns the bit position of leg p.
func (d *Dense) legIndex(p zxgraph.Port) (int, error) {
	for k, l := range d.legs {
		if l == p {
			return k, nil
		}
	}

	return 0, fmt.Errorf("leg %v: %w", p, ErrUnknownLeg)
}

// dropBit removes bit pos from idx, shifting the higher bits down.
func dropBit(idx, pos int) int {
	low := idx & (1<<pos - 1)

	return low | (idx>>(pos+1))<<pos
}

// Product returns the outer product d⊗o; o's legs follow d's.
// Complexity: O(|d|·|o|).
func (d *Dense) Product(o *Dense) *Dense {
	out := &Dense{
		legs: append(append([]zxgraph.Port(nil), d.legs...), o.legs...),
		data: make([]complex128, len(d.data)*len(o.data)),
	}
	shift := len(d.legs)
	for j, b := range o.data {
		if b == 0 {
			continue
		}
		for i, a := range d.data {
			out.data[i|j<<shift] = a * b
		}
	}

	return out
}

// Contract sums legs a and b against the 2×2 row-major matrix m:
// out = Σ_{i,j} d[a=i, b=j]·m[i][j].
// Stage 1 (Validate): both legs exist and differ.
// Stage 2 (Execute): accumulate every entry into its reduced index.
// Complexity: O(|d|).
func (d *Dense) Contract(a, b zxgraph.Port, m [4]complex128) (*Dense, error) {
	ia, err := d.legIndex(a)
	if err != nil {
		return nil, fmt.Errorf("Contract: %w", err)
	}
	ib, err := d.legIndex(b)
	if err != nil {
		return nil, fmt.Errorf("Contract: %w", err)
	}
	if ia == ib {
		return nil, fmt.Errorf("Contract: leg %v twice: %w", a, ErrUnknownLeg)
	}
	hi, lo := max(ia, ib), min(ia, ib)

	out := &Dense{data: make([]complex128, len(d.data)/4)}
	for k, l := range d.legs {
		if k != ia && k != ib {
			out.legs = append(out.legs, l)
		}
	}
	for idx, v := range d.data {
		if v == 0 {
			continue
		}
		w := m[2*(idx>>ia&1)+(idx>>ib&1)]
		out.data[dropBit(dropBit(idx, hi), lo)] += v * w
	}

	return out, nil
}

// ApplyToLeg multiplies leg a by m, out[a=i] = Σ_j m[i][j]·d[a=j], and
// renames the leg to relabel.
// Complexity: O(|d|).
func (d *Dense) ApplyToLeg(a zxgraph.Port, m [4]complex128, relabel zxgraph.Port) (*Dense, error) {
	ia, err := d.legIndex(a)
	if err != nil {
		return nil, fmt.Errorf("ApplyToLeg: %w", err)
	}
	out := &Dense{legs: d.Legs(), data: make([]complex128, len(d.data))}
	out.legs[ia] = relabel
	bit := 1 << ia
	for idx, v := range d.data {
		if v == 0 {
			continue
		}
		j := idx >> ia & 1
		base := idx &^ bit
		out.data[base] += m[j] * v
		out.data[base|bit] += m[2+j] * v
	}

	return out, nil
}

// Permute reorders the legs to order, which must list every leg once.
// Complexity: O(|d|·legs).
func (d *Dense) Permute(order []zxgraph.Port) (*Dense, error) {
	if len(order) != len(d.legs) {
		return nil, fmt.Errorf("Permute: %d of %d legs: %w", len(order), len(d.legs), ErrUnknownLeg)
	}
	src := make([]int, len(order))
	seen := make(map[int]bool, len(order))
	for k, p := range order {
		i, err := d.legIndex(p)
		if err != nil || seen[i] {
			return nil, fmt.Errorf("Permute: leg %v: %w", p, ErrUnknownLeg)
		}
		src[k], seen[i] = i, true
	}
	out := &Dense{legs: append([]zxgraph.Port(nil), order...), data: make([]complex128, len(d.data))}
	for idx, v := range d.data {
		n := 0
		for k, s := range src {
			n |= (idx >> s & 1) << k
		}
		out.data[n] = v
	}

	return out, nil
}

// Norm returns the Euclidean norm of the entries.
func (d *Dense) Norm() float64 {
	s := 0.0
	for _, a := range d.data {
		s += real(a)*real(a) + imag(a)*imag(a)
	}

	return math.Sqrt(s)
}

// IsZero reports whether every entry has magnitude at most tol.
func (d *Dense) IsZero(tol float64) bool {
	for _, a := range d.data {
		if cmplx.Abs(a) > tol {
			return false
		}
	}

	return true
}

// Normalized returns the entries scaled to unit norm, or a copy of the zero
// entries unchanged.
func (d *Dense) Normalized() []complex128 {
	out := d.Data()
	nrm := d.Norm()
	if nrm == 0 {
		return out
	}
	for k := range out {
		out[k] /= complex(nrm, 0)
	}

	return out
}

// CanonicalPhase returns the normalized entries rotated so that the first
// entry within phaseTolerance of the largest magnitude is positive real.
func (d *Dense) CanonicalPhase() []complex128 {
	out := d.Normalized()
	best := 0.0
	for _, a := range out {
		best = math.Max(best, cmplx.Abs(a))
	}
	if best == 0 {
		return out
	}
	for _, a := range out {
		if m := cmplx.Abs(a); m >= best-phaseTolerance {
			rot := cmplx.Conj(a) / complex(m, 0)
			for k := range out {
				out[k] *= rot
			}

			break
		}
	}

	return out
}

// ApproxEqual reports whether a and b have equal length and every entry
// differs by at most tol.
func ApproxEqual(a, b []complex128, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if cmplx.Abs(a[k]-b[k]) > tol {
			return false
		}
	}

	return true
}
