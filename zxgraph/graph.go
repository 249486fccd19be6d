package zxgraph

import (
	"fmt"
	"sort"
)

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[Node]NodeKind),
		edges: make(map[Edge]EdgeKind),
	}
}

// AddNode places a node. Placing two nodes at one position is an error.
func (g *Graph) AddNode(n Node, k NodeKind) error {
	if !k.Valid() {
		return fmt.Errorf("AddNode(%v): kind %d: %w", n, uint8(k), ErrMalformedGraph)
	}
	if _, ok := g.nodes[n]; ok {
		return fmt.Errorf("AddNode(%v): %w", n, ErrDoubleAssign)
	}
	g.nodes[n] = k

	return nil
}

// AddEdge places an edge. Placing two edges at one position is an error.
// Endpoints are not required to exist yet.
func (g *Graph) AddEdge(e Edge, k EdgeKind) error {
	if !k.Valid() {
		return fmt.Errorf("AddEdge(%v): kind %d: %w", e, uint8(k), ErrMalformedGraph)
	}
	if _, ok := g.edges[e]; ok {
		return fmt.Errorf("AddEdge(%v): %w", e, ErrDoubleAssign)
	}
	g.edges[e] = k

	return nil
}

// Has reports whether a node occupies n.
func (g *Graph) Has(n Node) bool {
	_, ok := g.nodes[n]

	return ok
}

// HasEdge reports whether an edge occupies e.
func (g *Graph) HasEdge(e Edge) bool {
	_, ok := g.edges[e]

	return ok
}

// Kind returns the kind of the node at n.
func (g *Graph) Kind(n Node) (NodeKind, bool) {
	k, ok := g.nodes[n]

	return k, ok
}

// EdgeKindAt returns the kind of the edge at e.
func (g *Graph) EdgeKindAt(e Edge) (EdgeKind, bool) {
	k, ok := g.edges[e]

	return k, ok
}

// NumNodes returns the node count.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// NumEdges returns the edge count.
func (g *Graph) NumEdges() int { return len(g.edges) }

// Nodes returns node positions sorted y-major, x-minor.
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.nodes))
	for n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}

		return out[i].X < out[j].X
	})

	return out
}

// Edges returns edge positions sorted y-major, x-minor, horizontal first.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		if a.X != b.X {
			return a.X < b.X
		}

		return a.Horizontal && !b.Horizontal
	})

	return out
}

// edgeSlot returns the edge position in port slot s of node n.
func edgeSlot(n Node, s int) Edge {
	o := portOffsets[s]

	return Edge{X: n.X + o.dx, Y: n.Y + o.dy, Horizontal: o.horizontal}
}

// ActivePortsOf lists the ports of n whose edge and opposite node both
// exist, in slot order right, down, left, up. Dangling geometry is skipped.
// Complexity: O(1).
func (g *Graph) ActivePortsOf(n Node) []Port {
	var out []Port
	for s := range portOffsets {
		e := edgeSlot(n, s)
		if !g.HasEdge(e) || !g.Has(e.Opposite(n)) {
			continue
		}
		out = append(out, Port{Node: n, Edge: e})
	}

	return out
}

// NeighborsOf lists the nodes joined to n by an active port, in port order.
func (g *Graph) NeighborsOf(n Node) []Node {
	ports := g.ActivePortsOf(n)
	out := make([]Node, len(ports))
	for k, p := range ports {
		out[k] = p.Edge.Opposite(n)
	}

	return out
}

// Degree returns the number of active ports of n.
func (g *Graph) Degree(n Node) int { return len(g.ActivePortsOf(n)) }

// Clone returns an independent copy.
func (g *Graph) Clone() *Graph {
	c := NewGraph()
	for n, k := range g.nodes {
		c.nodes[n] = k
	}
	for e, k := range g.edges {
		c.edges[e] = k
	}

	return c
}

// Equal reports structural equality, defined through the serialized form.
func (g *Graph) Equal(other *Graph) bool {
	return g.Serialize() == other.Serialize()
}
