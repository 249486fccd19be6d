// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"

	"github.com/katalvlaran/zxeval/zxgraph"
)

func isBoundary(k zxgraph.NodeKind) bool {
	return k == zxgraph.KindIn || k == zxgraph.KindOut
}

// Evaluate contracts g into a tensor over its boundary ports: input ports
// first, then output ports, each group in node order.
//
// Every non-boundary node contributes Tensor(degree) over its active ports.
// An edge between two such nodes is contracted through the edge matrix; an
// edge reaching a boundary node applies the matrix to the other end, which
// becomes the open boundary leg; an edge joining two boundaries is the
// matrix itself.
// Complexity: O(2^(legs)·edges), exponential in the number of ports.
func Evaluate(g *zxgraph.Graph) (*Dense, error) {
	t := Scalar(1)
	var inputs, outputs []zxgraph.Port

	for _, n := range g.Nodes() {
		k, _ := g.Kind(n)
		ports := g.ActivePortsOf(n)
		if err := k.CheckDegree(len(ports)); err != nil {
			return nil, fmt.Errorf("Evaluate: node %v: %w", n, err)
		}
		switch k {
		case zxgraph.KindIn:
			inputs = append(inputs, ports...)
			continue
		case zxgraph.KindOut:
			outputs = append(outputs, ports...)
			continue
		}
		nt, err := New(ports, k.Tensor(len(ports)))
		if err != nil {
			return nil, fmt.Errorf("Evaluate: node %v: %w", n, err)
		}
		t = t.Product(nt)
	}

	for _, e := range g.Edges() {
		a, b := e.Ends()
		if !g.Has(a) || !g.Has(b) {
			continue
		}
		ka, _ := g.Kind(a)
		kb, _ := g.Kind(b)
		ek, _ := g.EdgeKindAt(e)
		m := ek.Matrix()
		pa, pb := zxgraph.Port{Node: a, Edge: e}, zxgraph.Port{Node: b, Edge: e}

		var err error
		switch {
		case isBoundary(ka) && isBoundary(kb):
			var wire *Dense
			wire, err = New([]zxgraph.Port{pa, pb}, []complex128{m[0], m[2], m[1], m[3]})
			if err == nil {
				t = t.Product(wire)
			}
		case isBoundary(ka):
			t, err = t.ApplyToLeg(pb, m, pa)
		case isBoundary(kb):
			t, err = t.ApplyToLeg(pa, m, pb)
		default:
			t, err = t.Contract(pa, pb, m)
		}
		if err != nil {
			return nil, fmt.Errorf("Evaluate: edge %v: %w", e, err)
		}
	}

	return t.Permute(append(inputs, outputs...))
}
