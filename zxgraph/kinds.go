package zxgraph

import (
	"fmt"

	"github.com/katalvlaran/zxeval/pauli"
	"github.com/katalvlaran/zxeval/program"
)

// NodeKind is the closed set of node kinds. The zero value is invalid.
type NodeKind uint8

const (
	KindInvalid NodeKind = iota
	KindIn
	KindOut
	KindCross
	KindHadamard

	// Spiders: Z and X basis, phase in quarter turns 0, π/2, π, -π/2.
	KindZ
	KindX
	KindZHalf
	KindXHalf
	KindZPi
	KindXPi
	KindZMinusHalf
	KindXMinusHalf

	// Post-selected degree-1 spider variants, same order as above.
	KindZPost
	KindXPost
	KindZHalfPost
	KindXHalfPost
	KindZPiPost
	KindXPiPost
	KindZMinusHalfPost
	KindXMinusHalfPost

	numKinds
)

// Class partitions nodes for qubit assignment. The numeric order is the
// order in which qubit ranges are laid out.
type Class uint8

const (
	ClassInternal Class = iota
	ClassInput
	ClassOutput
	ClassPost
)

// String names the class.
func (c Class) String() string {
	switch c {
	case ClassInternal:
		return "internal"
	case ClassInput:
		return "input"
	case ClassOutput:
		return "output"
	case ClassPost:
		return "post-selection"
	}

	return fmt.Sprintf("Class(%d)", uint8(c))
}

// Spider describes a spider node: basis, phase i^Quarter, post-selection.
type Spider struct {
	XBasis  bool
	Quarter int
	Post    bool
}

// spiderGlyphs is the spider glyph table indexed by [xBasis][quarter].
var spiderGlyphs = [2][4]string{
	{"@", "s", "z", "a"},
	{"O", "f", "x", "w"},
}

// Spider reports the spider parameters of k, if k is a spider.
func (k NodeKind) Spider() (Spider, bool) {
	if k < KindZ || k >= numKinds {
		return Spider{}, false
	}
	offset := int(k - KindZ)
	post := offset >= 8
	offset %= 8

	return Spider{XBasis: offset%2 == 1, Quarter: offset / 2, Post: post}, true
}

// spiderKind is the inverse of Spider.
func spiderKind(s Spider) NodeKind {
	offset := 2 * s.Quarter
	if s.XBasis {
		offset++
	}
	if s.Post {
		offset += 8
	}

	return KindZ + NodeKind(offset)
}

// Valid reports whether k is a member of the closed vocabulary.
func (k NodeKind) Valid() bool { return k > KindInvalid && k < numKinds }

// Glyph returns the canonical diagram glyph of k.
func (k NodeKind) Glyph() string {
	switch k {
	case KindIn:
		return "!"
	case KindOut:
		return "?"
	case KindCross:
		return "+"
	case KindHadamard:
		return "h"
	}
	if s, ok := k.Spider(); ok {
		g := spiderGlyphs[b2i(s.XBasis)][s.Quarter]
		if s.Post {
			g += "!"
		}

		return g
	}

	return "#"
}

// String returns the glyph.
func (k NodeKind) String() string { return k.Glyph() }

// Class returns the qubit-assignment class of k.
func (k NodeKind) Class() Class {
	switch k {
	case KindIn:
		return ClassInput
	case KindOut:
		return ClassOutput
	}
	if s, ok := k.Spider(); ok && s.Post {
		return ClassPost
	}

	return ClassInternal
}

// CheckDegree validates the number of active ports for k.
func (k NodeKind) CheckDegree(degree int) error {
	want := -1
	switch k {
	case KindIn, KindOut:
		want = 1
	case KindHadamard:
		want = 2
	case KindCross:
		want = 4
	default:
		s, ok := k.Spider()
		if !ok {
			return fmt.Errorf("CheckDegree(%d): %w", uint8(k), ErrMalformedGraph)
		}
		if s.Post {
			want = 1
		}
	}
	if want >= 0 && degree != want {
		return fmt.Errorf("%s has degree %d, want %d: %w", k.Glyph(), degree, want, ErrBadDegree)
	}

	return nil
}

// RootAction is the basis change applied to a node's first port before its
// parity measurement, turning a phased or Hadamard node into a phase-free
// Z or X spider.
func (k NodeKind) RootAction() program.Gate {
	if k == KindHadamard {
		return program.GateH
	}
	s, ok := k.Spider()
	if !ok || s.Post {
		return program.GateI
	}
	if s.XBasis {
		return [4]program.Gate{program.GateI, program.GateSqrtX, program.GateX, program.GateSqrtXDagger}[s.Quarter]
	}

	return [4]program.Gate{program.GateI, program.GateS, program.GateZ, program.GateSDagger}[s.Quarter]
}

// FixedPoints returns generators of the stabilizer group of the node's
// tensor read as a degree-qubit state, over qubits 0..degree-1 in port
// order. A zero scalar (degree-0 π spider) yields the single product -1.
func (k NodeKind) FixedPoints(degree int) []pauli.PauliProduct {
	switch k {
	case KindHadamard:
		return []pauli.PauliProduct{pauli.MustFromString("XZ"), pauli.MustFromString("ZX")}
	case KindCross:
		return []pauli.PauliProduct{
			pauli.MustFromString("X.X."), pauli.MustFromString("Z.Z."),
			pauli.MustFromString(".X.X"), pauli.MustFromString(".Z.Z"),
		}
	}
	s, ok := k.Spider()
	if !ok {
		return nil
	}
	if degree == 0 {
		if s.Quarter == 2 {
			return []pauli.PauliProduct{pauli.Scalar(2)}
		}

		return nil
	}

	// Work in the Z basis; the X spider is the Hadamard-conjugate.
	pair, all := pauli.Z, pauli.X
	if s.XBasis {
		pair, all = pauli.X, pauli.Z
	}
	var out []pauli.PauliProduct
	for j := 1; j < degree; j++ {
		p := pauli.Identity(degree)
		p.Paulis[0], p.Paulis[j] = pair, pair
		out = append(out, p)
	}
	p := pauli.Identity(degree)
	for j := range p.Paulis {
		p.Paulis[j] = all
	}
	switch s.Quarter {
	case 1:
		p.Paulis[0] = pauli.Y
	case 2:
		p.Phase = 2
	case 3:
		p.Paulis[0] = pauli.Y
		p.Phase = 2
	}
	if s.XBasis && p.Paulis[0] == pauli.Y {
		p.Phase ^= 2
	}

	return append(out, p)
}

// PostSelection returns the single-qubit observable a post-selected node
// requires to read +1 on its port.
func (k NodeKind) PostSelection() (pauli.PauliProduct, bool) {
	s, ok := k.Spider()
	if !ok || !s.Post {
		return pauli.PauliProduct{}, false
	}
	fp := k.FixedPoints(1)

	return fp[len(fp)-1].Conj(), true
}

// Tensor returns the node's tensor over degree legs, little-endian (bit j
// of the index is leg j). Boundary nodes have no tensor and return nil.
func (k NodeKind) Tensor(degree int) []complex128 {
	switch k {
	case KindHadamard:
		return []complex128{1, 1, 1, -1}
	case KindCross:
		t := make([]complex128, 16)
		for idx := range t {
			if idx&1 == (idx>>2)&1 && (idx>>1)&1 == (idx>>3)&1 {
				t[idx] = 1
			}
		}

		return t
	}
	s, ok := k.Spider()
	if !ok {
		return nil
	}
	t := make([]complex128, 1<<degree)
	t[0] = 1
	t[len(t)-1] += [4]complex128{1, 1i, -1, -1i}[s.Quarter]
	if s.XBasis {
		for leg := 0; leg < degree; leg++ {
			hadamardLeg(t, leg)
		}
	}

	return t
}

// hadamardLeg applies the unnormalized [[1,1],[1,-1]] to one leg in place.
func hadamardLeg(t []complex128, leg int) {
	bit := 1 << leg
	for idx := range t {
		if idx&bit == 0 {
			a, b := t[idx], t[idx|bit]
			t[idx], t[idx|bit] = a+b, a-b
		}
	}
}

func b2i(b bool) int {
	if b {
		return 1
	}

	return 0
}

// EdgeKind is the closed set of edge kinds. The zero value is invalid.
type EdgeKind uint8

const (
	EdgeInvalid EdgeKind = iota
	EdgePlain
	EdgeX
	EdgeZ
	EdgeS
	EdgeF
	EdgeH
)

// Valid reports whether e is a member of the closed vocabulary.
func (e EdgeKind) Valid() bool { return e > EdgeInvalid && e <= EdgeH }

// Glyph returns the canonical serialized glyph ("-" for a plain edge).
func (e EdgeKind) Glyph() string {
	if !e.Valid() {
		return "#"
	}

	return [...]string{"#", "-", "x", "z", "s", "f", "h"}[e]
}

// String returns the glyph.
func (e EdgeKind) String() string { return e.Glyph() }

// Gate returns the basis change the edge applies to one qubit of its EPR pair.
func (e EdgeKind) Gate() program.Gate {
	if !e.Valid() {
		return program.GateI
	}

	return [...]program.Gate{program.GateI, program.GateI, program.GateX, program.GateZ,
		program.GateS, program.GateSqrtX, program.GateH}[e]
}

// Matrix returns the edge's 2×2 matrix, row-major.
func (e EdgeKind) Matrix() [4]complex128 { return e.Gate().Matrix() }

// NodeKind returns the degree-2 node whose tensor equals this edge's matrix.
func (e EdgeKind) NodeKind() NodeKind {
	if !e.Valid() {
		return KindInvalid
	}

	return [...]NodeKind{KindInvalid, KindZ, KindXPi, KindZPi, KindZHalf, KindXHalf, KindHadamard}[e]
}

// nodeGlyphTable maps every accepted node glyph to its kind.
var nodeGlyphTable = func() map[string]NodeKind {
	m := map[string]NodeKind{
		"!": KindIn, "?": KindOut, "+": KindCross, "h": KindHadamard, "H": KindHadamard,
	}
	for x := 0; x < 2; x++ {
		for q := 0; q < 4; q++ {
			for _, post := range []bool{false, true} {
				k := spiderKind(Spider{XBasis: x == 1, Quarter: q, Post: post})
				m[k.Glyph()] = k
			}
		}
	}

	return m
}()

// edgeGlyphTable maps accepted edge glyphs; '-' and '|' are orientation-checked by the parser.
var edgeGlyphTable = map[byte]EdgeKind{
	'-': EdgePlain, '|': EdgePlain,
	'x': EdgeX, 'X': EdgeX,
	'z': EdgeZ, 'Z': EdgeZ,
	's': EdgeS, 'S': EdgeS,
	'f': EdgeF, 'F': EdgeF,
	'h': EdgeH, 'H': EdgeH,
}

// ParseNodeGlyph resolves a node glyph such as "@", "O!" or "h".
func ParseNodeGlyph(glyph string) (NodeKind, bool) {
	k, ok := nodeGlyphTable[glyph]

	return k, ok
}

// ParseEdgeGlyph resolves an edge glyph such as "-", "|" or "h".
func ParseEdgeGlyph(glyph string) (EdgeKind, bool) {
	if len(glyph) != 1 {
		return EdgeInvalid, false
	}
	e, ok := edgeGlyphTable[glyph[0]]

	return e, ok
}
