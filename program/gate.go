package program

import (
	"fmt"
	"math"

	"github.com/katalvlaran/zxeval/pauli"
)

// Gate is a single-qubit Clifford gate from a fixed vocabulary.
type Gate uint8

const (
	GateI Gate = iota
	GateX
	GateZ
	GateS
	GateSDagger
	GateH
	GateSqrtX
	GateSqrtXDagger
)

// Primitive is one of the two generators every Gate is built from.
type Primitive uint8

const (
	PrimH Primitive = iota
	PrimS
)

// gatePrimitives lists, in time order, the H/S sequence equal to each gate
// up to global phase.
var gatePrimitives = [...][]Primitive{
	GateI:           nil,
	GateX:           {PrimH, PrimS, PrimS, PrimH},
	GateZ:           {PrimS, PrimS},
	GateS:           {PrimS},
	GateSDagger:     {PrimS, PrimS, PrimS},
	GateH:           {PrimH},
	GateSqrtX:       {PrimH, PrimS, PrimH},
	GateSqrtXDagger: {PrimH, PrimS, PrimS, PrimS, PrimH},
}

var gateNames = [...]string{"I", "X", "Z", "S", "S†", "H", "√X", "√X†"}

// Valid reports whether g is a known gate.
func (g Gate) Valid() bool { return int(g) < len(gateNames) }

// String returns the conventional gate name.
func (g Gate) String() string {
	if !g.Valid() {
		return fmt.Sprintf("Gate(%d)", uint8(g))
	}

	return gateNames[g]
}

// Primitives returns the H/S decomposition of g in time order.
func (g Gate) Primitives() []Primitive {
	if !g.Valid() {
		return nil
	}

	return gatePrimitives[g]
}

// Inverse returns the gate undoing g.
func (g Gate) Inverse() Gate {
	switch g {
	case GateS:
		return GateSDagger
	case GateSDagger:
		return GateS
	case GateSqrtX:
		return GateSqrtXDagger
	case GateSqrtXDagger:
		return GateSqrtX
	}

	return g
}

// QASM returns the qelib1 instruction name of g, parameters included.
func (g Gate) QASM() string {
	switch g {
	case GateI:
		return "id"
	case GateX:
		return "x"
	case GateZ:
		return "z"
	case GateS:
		return "s"
	case GateSDagger:
		return "sdg"
	case GateH:
		return "h"
	case GateSqrtX:
		return "rx(pi/2)"
	case GateSqrtXDagger:
		return "rx(-pi/2)"
	}

	return "id"
}

// Glyph returns the circuit-JSON gate identifier of g. GateI has none and
// renders as an empty slot.
func (g Gate) Glyph() any {
	switch g {
	case GateX:
		return "X"
	case GateZ:
		return "Z"
	case GateS:
		return "Z^½"
	case GateSDagger:
		return "Z^-½"
	case GateH:
		return "H"
	case GateSqrtX:
		return "X^½"
	case GateSqrtXDagger:
		return "X^-½"
	}

	return 1
}

// Matrix returns the 2×2 unitary of g, row-major.
func (g Gate) Matrix() [4]complex128 {
	r := complex(1/math.Sqrt2, 0)
	switch g {
	case GateX:
		return [4]complex128{0, 1, 1, 0}
	case GateZ:
		return [4]complex128{1, 0, 0, -1}
	case GateS:
		return [4]complex128{1, 0, 0, 1i}
	case GateSDagger:
		return [4]complex128{1, 0, 0, -1i}
	case GateH:
		return [4]complex128{r, r, r, -r}
	case GateSqrtX:
		return [4]complex128{(1 + 1i) / 2, (1 - 1i) / 2, (1 - 1i) / 2, (1 + 1i) / 2}
	case GateSqrtXDagger:
		return [4]complex128{(1 - 1i) / 2, (1 + 1i) / 2, (1 + 1i) / 2, (1 - 1i) / 2}
	}

	return [4]complex128{1, 0, 0, 1}
}

// Conjugate replaces p with g·p·g† where g acts on qubit q.
func (g Gate) Conjugate(p *pauli.PauliProduct, q int) {
	for _, prim := range g.Primitives() {
		if prim == PrimH {
			p.ApplyH(q)
		} else {
			p.ApplyS(q)
		}
	}
}

// ToZBasis returns the gates, in time order, that rotate the single-qubit
// observable obs onto +Z, so that a Z measurement reading false certifies
// obs = +1. obs must be a Hermitian ±X, ±Y or ±Z.
func ToZBasis(obs pauli.PauliProduct) ([]Gate, error) {
	if obs.Len() != 1 || obs.IsIdentity() || obs.Phase%2 != 0 {
		return nil, fmt.Errorf("ToZBasis(%v): %w", obs, ErrBadObservable)
	}
	neg := obs.Phase == 2
	switch obs.Paulis[0] {
	case pauli.X:
		if neg {
			return []Gate{GateH, GateX}, nil
		}

		return []Gate{GateH}, nil
	case pauli.Y:
		if neg {
			return []Gate{GateSqrtXDagger}, nil
		}

		return []Gate{GateSqrtX}, nil
	default:
		if neg {
			return []Gate{GateX}, nil
		}

		return nil, nil
	}
}
