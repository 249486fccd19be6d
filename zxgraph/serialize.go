package zxgraph

import (
	"fmt"
	"strconv"
	"strings"
)

// Serialize renders the compact form "x,y,kind;...:x,y,h|v,kind;...",
// nodes and edges each sorted y-major, x-minor.
// Complexity: O((V+E)·log(V+E)).
func (g *Graph) Serialize() string {
	var b strings.Builder
	for i, n := range g.Nodes() {
		if i > 0 {
			b.WriteByte(';')
		}
		fmt.Fprintf(&b, "%d,%d,%s", n.X, n.Y, g.nodes[n].Glyph())
	}
	b.WriteByte(':')
	for i, e := range g.Edges() {
		if i > 0 {
			b.WriteByte(';')
		}
		dir := "v"
		if e.Horizontal {
			dir = "h"
		}
		fmt.Fprintf(&b, "%d,%d,%s,%s", e.X, e.Y, dir, g.edges[e].Glyph())
	}

	return b.String()
}

// Deserialize parses the output of Serialize.
func Deserialize(text string) (*Graph, error) {
	nodePart, edgePart, ok := strings.Cut(text, ":")
	if !ok {
		return nil, fmt.Errorf("Deserialize: missing ':': %w", ErrBadSerialization)
	}
	g := NewGraph()

	for _, item := range splitItems(nodePart) {
		fields := strings.Split(item, ",")
		if len(fields) != 3 {
			return nil, fmt.Errorf("Deserialize: node %q: %w", item, ErrBadSerialization)
		}
		x, y, err := parseXY(fields[0], fields[1])
		if err != nil {
			return nil, fmt.Errorf("Deserialize: node %q: %w", item, err)
		}
		k, ok := ParseNodeGlyph(fields[2])
		if !ok {
			return nil, fmt.Errorf("Deserialize: node kind %q: %w", fields[2], ErrBadSerialization)
		}
		if err := g.AddNode(Node{x, y}, k); err != nil {
			return nil, fmt.Errorf("Deserialize: %w", err)
		}
	}

	for _, item := range splitItems(edgePart) {
		fields := strings.Split(item, ",")
		if len(fields) != 4 || (fields[2] != "h" && fields[2] != "v") {
			return nil, fmt.Errorf("Deserialize: edge %q: %w", item, ErrBadSerialization)
		}
		x, y, err := parseXY(fields[0], fields[1])
		if err != nil {
			return nil, fmt.Errorf("Deserialize: edge %q: %w", item, err)
		}
		k, ok := ParseEdgeGlyph(fields[3])
		if !ok {
			return nil, fmt.Errorf("Deserialize: edge kind %q: %w", fields[3], ErrBadSerialization)
		}
		if err := g.AddEdge(Edge{X: x, Y: y, Horizontal: fields[2] == "h"}, k); err != nil {
			return nil, fmt.Errorf("Deserialize: %w", err)
		}
	}

	return g, nil
}

func splitItems(part string) []string {
	if part == "" {
		return nil
	}

	return strings.Split(part, ";")
}

func parseXY(xs, ys string) (int, int, error) {
	x, err := strconv.Atoi(xs)
	if err != nil {
		return 0, 0, ErrBadSerialization
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return 0, 0, ErrBadSerialization
	}

	return x, y, nil
}
