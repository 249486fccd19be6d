package zxgraph

// Node is a node position on the diagram grid (text column/4, row/4).
type Node struct {
	X, Y int
}

// Edge is an edge position. A horizontal edge joins (X,Y) and (X+1,Y);
// a vertical edge joins (X,Y) and (X,Y+1).
type Edge struct {
	X, Y       int
	Horizontal bool
}

// Port is the attachment of one edge to one of its endpoint nodes.
type Port struct {
	Node Node
	Edge Edge
}

// portOffsets lists, per port slot, the edge offset relative to a node and
// the edge orientation: right, down, left, up. This is the port order used
// by every query and by the crossing's opposite-pair rule (slots 0/2, 1/3).
var portOffsets = [4]struct {
	dx, dy     int
	horizontal bool
}{
	{0, 0, true},
	{0, 0, false},
	{-1, 0, true},
	{0, -1, false},
}

// Ends returns the two endpoint nodes of e, upper-left first.
func (e Edge) Ends() (Node, Node) {
	if e.Horizontal {
		return Node{e.X, e.Y}, Node{e.X + 1, e.Y}
	}

	return Node{e.X, e.Y}, Node{e.X, e.Y + 1}
}

// Opposite returns the endpoint of e that is not n.
func (e Edge) Opposite(n Node) Node {
	a, b := e.Ends()
	if a == n {
		return b
	}

	return a
}

// Graph is a ZX diagram: node positions → NodeKind, edge positions → EdgeKind.
// The zero value is not usable; build one with NewGraph, FromDiagram or
// Deserialize. A Graph is not safe for concurrent mutation; evaluators work
// on a Clone.
type Graph struct {
	nodes map[Node]NodeKind
	edges map[Edge]EdgeKind
}
