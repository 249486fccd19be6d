package zxeval

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/zxeval/pauli"
	"github.com/katalvlaran/zxeval/program"
	"github.com/katalvlaran/zxeval/zxgraph"
)

// measuredAxis is the basis a port qubit is read in after its node's CNOT fan.
type measuredAxis struct {
	qubit int
	xAxis bool
}

// internalNode is a measured node with at least one port.
type internalNode struct {
	node   zxgraph.Node
	kind   zxgraph.NodeKind
	qubits []int
}

// postNode is a post-selected node and its single port qubit.
type postNode struct {
	node  zxgraph.Node
	kind  zxgraph.NodeKind
	qubit int
	obs   pauli.PauliProduct
}

// embed places the factors of p on the given qubits of an n-qubit product.
func embed(p pauli.PauliProduct, n int, qubits []int) pauli.PauliProduct {
	out := pauli.Identity(n)
	out.Phase = p.Phase
	for k, q := range qubits {
		out.Paulis[q] = p.Paulis[k]
	}

	return out
}

// parityCheck appends the CNOT fan that turns the stabilizers of a
// phase-free spider over qubits into single-qubit observables. For a Z
// spider the first qubit is read in X and the rest in Z; an X spider is
// the mirror image.
func parityCheck(qp *program.QuantumProgram, qubits []int, xBasis bool) []measuredAxis {
	if len(qubits) > 1 {
		qp.Append(program.MultiCnot{
			Pivot:         qubits[0],
			Others:        append([]int(nil), qubits[1:]...),
			PivotIsTarget: xBasis,
		})
	}
	out := make([]measuredAxis, len(qubits))
	for k, q := range qubits {
		out[k] = measuredAxis{qubit: q, xAxis: (k == 0) != xBasis}
	}

	return out
}

// measureNode appends the parity measurement of one internal node, whose
// root action has already been applied.
func measureNode(qp *program.QuantumProgram, nd internalNode) ([]measuredAxis, error) {
	q := nd.qubits
	switch nd.kind {
	case zxgraph.KindCross:
		axes := parityCheck(qp, []int{q[0], q[2]}, false)

		return append(axes, parityCheck(qp, []int{q[1], q[3]}, false)...), nil
	case zxgraph.KindHadamard:
		return parityCheck(qp, q, false), nil
	}
	s, ok := nd.kind.Spider()
	if !ok || s.Post {
		return nil, fmt.Errorf("measureNode %v (%s): %w", nd.node, nd.kind, ErrUnknownKind)
	}

	return parityCheck(qp, q, s.XBasis), nil
}

// validate checks every node and edge before compilation.
func validate(g *zxgraph.Graph) error {
	for _, n := range g.Nodes() {
		k, _ := g.Kind(n)
		if !k.Valid() {
			return fmt.Errorf("Evaluate: node %v: %w", n, ErrUnknownKind)
		}
		if err := k.CheckDegree(g.Degree(n)); err != nil {
			return fmt.Errorf("Evaluate: node %v: %w", n, err)
		}
	}
	for _, e := range g.Edges() {
		if ek, _ := g.EdgeKindAt(e); !ek.Valid() {
			return fmt.Errorf("Evaluate: edge %v: %w", e, ErrUnknownKind)
		}
		a, b := e.Ends()
		if !g.Has(a) || !g.Has(b) {
			return fmt.Errorf("Evaluate: edge %v: %w", e, zxgraph.ErrDanglingEdge)
		}
	}

	return nil
}

// Evaluate compiles g into an EPR-edge, parity-node program and derives its
// feedback. The graph is cloned; later changes to g do not affect the result.
//
// Stage 1 (Validate): node kinds, degrees and edge endpoints.
// Stage 2 (Prepare): one EPR pair per edge, with the edge's basis change on
// the pair's lower-right qubit.
// Stage 3 (Measure): root actions, CNOT fans and Hadamards so that every
// node stabilizer is a single +Z on an internal qubit.
// Stage 4 (Feedback): edge stabilizers pushed to the measurement point and
// reduced by DeriveFeedback.
// Stage 5 (Post-select): rotate and measure every post-selected port.
//
// Complexity: O(Q²) for Q port qubits.
func Evaluate(g *zxgraph.Graph, opts ...Option) (*Evaluation, error) {
	return evaluate(g, newConfig(opts))
}

func evaluate(g *zxgraph.Graph, cfg *config) (*Evaluation, error) {
	if err := validate(g); err != nil {
		return nil, err
	}
	g = g.Clone()
	m, err := zxgraph.NewPortQubitMapping(g)
	if err != nil {
		return nil, fmt.Errorf("Evaluate: %w", err)
	}
	n := m.Size()
	ev := &Evaluation{Graph: g, Mapping: m, Program: program.New()}
	qp := ev.Program
	qp.Append(
		program.HeaderAlloc{NumQubits: n},
		program.Comment{Text: fmt.Sprintf("%d port qubits: %d internal, %d external",
			n, m.NumInternal(), m.NumExternal())},
	)

	// Stage 2: edges.
	var (
		pairs    [][2]int
		actions  []program.GateAction
		edgeRows []pauli.PauliProduct
	)
	for _, e := range g.Edges() {
		ek, _ := g.EdgeKindAt(e)
		a, b := e.Ends()
		qa, _ := m.QubitOf(zxgraph.Port{Node: a, Edge: e})
		qb, _ := m.QubitOf(zxgraph.Port{Node: b, Edge: e})
		pairs = append(pairs, [2]int{qa, qb})
		if gate := ek.Gate(); gate != program.GateI {
			actions = append(actions, program.GateAction{Gate: gate, Qubit: qb})
		}
		for _, fp := range ek.NodeKind().FixedPoints(2) {
			edgeRows = append(edgeRows, embed(fp, n, []int{qa, qb}))
		}
	}
	qp.Append(program.Comment{Text: "edges as EPR pairs"}, program.InitEprPairs{Pairs: pairs})
	if len(actions) > 0 {
		qp.Append(program.EdgeActions{Actions: actions})
	}
	ev.Frame = qp.Len()

	// Stage 3: nodes.
	var (
		internal []internalNode
		posts    []postNode
		roots    []program.GateAction
		nodeRows []pauli.PauliProduct
	)
	for _, nd := range g.Nodes() {
		k, _ := g.Kind(nd)
		qubits := m.QubitsOf(g.ActivePortsOf(nd))
		switch k.Class() {
		case zxgraph.ClassInput, zxgraph.ClassOutput:
			continue
		case zxgraph.ClassPost:
			obs, _ := k.PostSelection()
			posts = append(posts, postNode{node: nd, kind: k, qubit: qubits[0], obs: obs})
			ev.PostRows = append(ev.PostRows, embed(obs, n, qubits))

			continue
		}
		fps := k.FixedPoints(len(qubits))
		if len(qubits) == 0 {
			for _, fp := range fps {
				if fp.Phase == 2 {
					ev.ZeroScalar = true
				}
			}

			continue
		}
		for _, fp := range fps {
			nodeRows = append(nodeRows, embed(fp.Conj(), n, qubits))
		}
		if r := k.RootAction(); r != program.GateI {
			roots = append(roots, program.GateAction{Gate: r, Qubit: qubits[0]})
		}
		internal = append(internal, internalNode{node: nd, kind: k, qubits: qubits})
	}
	if len(roots) > 0 {
		qp.Append(program.Comment{Text: "node basis changes"}, program.EdgeActions{Actions: roots})
	}
	if len(internal) > 0 {
		qp.Append(program.Comment{Text: "node parity checks"})
	}
	var xAxes []int
	for _, nd := range internal {
		axes, err := measureNode(qp, nd)
		if err != nil {
			return nil, fmt.Errorf("Evaluate: %w", err)
		}
		for _, ax := range axes {
			if ax.xAxis {
				xAxes = append(xAxes, ax.qubit)
			}
		}
	}
	sort.Ints(xAxes)
	if len(xAxes) > 0 {
		qp.Append(program.Hadamards{Qubits: xAxes})
	}

	// Every row is now expressed at the measurement point.
	for _, r := range edgeRows {
		ev.EdgeRows = append(ev.EdgeRows, qp.Conjugate(r, ev.Frame))
	}
	for _, r := range nodeRows {
		t := qp.Conjugate(r, ev.Frame)
		ax, ok := t.XzSingleton()
		if !ok || !ax.Axis || t.Phase != 0 || ax.Qubit >= m.NumInternal() {
			return nil, fmt.Errorf("Evaluate: node stabilizer %v measures as %v: %w", r, t, ErrInconsistentFeedback)
		}
		ev.NodeRows = append(ev.NodeRows, t)
	}

	// Stage 4: feedback.
	ev.Feedback, err = DeriveFeedback(ev.EdgeRows, m.NumInternal())
	if err != nil {
		return nil, fmt.Errorf("Evaluate: %w", err)
	}
	if m.NumInternal() > 0 {
		measured := make([]int, m.NumInternal())
		for q := range measured {
			measured[q] = q
		}
		qp.Append(
			program.Comment{Text: "measure internal qubits, then correct"},
			program.MeasurementsWithPauliFeedback{Measured: measured, Corrections: ev.Feedback.Corrections},
		)
	}

	// Stage 5: post-selection.
	for _, p := range posts {
		rot, err := program.ToZBasis(p.obs)
		if err != nil {
			return nil, fmt.Errorf("Evaluate: post-selection at %v: %w", p.node, err)
		}
		qp.Append(program.PostSelection{
			Qubit:    p.qubit,
			Rotation: rot,
			Label:    fmt.Sprintf("%s at %d,%d", p.kind.Glyph(), p.node.X, p.node.Y),
		})
	}
	inLo, _ := m.Range(zxgraph.ClassInput)
	_, outHi := m.Range(zxgraph.ClassOutput)
	if outHi > inLo {
		qp.Append(program.AmpsDisplay{First: inLo, Count: outHi - inLo})
	}

	cfg.logger.Debug("compiled diagram",
		"nodes", g.NumNodes(), "edges", g.NumEdges(), "components", len(g.ConnectedComponents()), "qubits", n,
		"internal", m.NumInternal(), "statements", qp.Len(),
		"controls", ev.Feedback.numControls(), "corrections", len(ev.Feedback.Corrections))

	return ev, nil
}
