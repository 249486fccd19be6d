package zxgraph

// ConnectedComponents groups nodes joined by active edges. Components are
// listed in order of their first node in Nodes order; inside a component,
// nodes are in BFS order from that first node.
//
// Time:   O(V·d), d ≤ 4.
// Memory: O(V) for visited flags and output.
func (g *Graph) ConnectedComponents() [][]Node {
	seen := make(map[Node]bool, len(g.nodes))
	var comps [][]Node

	for _, n0 := range g.Nodes() {
		if seen[n0] {
			continue
		}
		queue := []Node{n0}
		seen[n0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range g.NeighborsOf(queue[qi]) {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
