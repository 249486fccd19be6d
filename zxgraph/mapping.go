package zxgraph

import "fmt"

// PortQubitMapping assigns one dense qubit index per active port.
//
// Indices are laid out in class order: internal (crossings, Hadamards,
// spiders), then inputs, outputs and post-selection ports; inside a class,
// nodes follow Graph.Nodes order and ports follow ActivePortsOf order.
// Feedback derivation relies on this layout: low indices are measured and
// eliminated, high indices stay free.
type PortQubitMapping struct {
	qubits map[Port]int
	ports  []Port
	counts [4]int
}

// NewPortQubitMapping builds the mapping for g. It fails with
// ErrMalformedGraph when a node kind cannot be classified.
// Complexity: O(V log V).
func NewPortQubitMapping(g *Graph) (*PortQubitMapping, error) {
	var byClass [4][]Port
	recognized := 0
	for _, n := range g.Nodes() {
		k := g.nodes[n]
		if !k.Valid() {
			continue
		}
		recognized++
		c := k.Class()
		byClass[c] = append(byClass[c], g.ActivePortsOf(n)...)
	}
	if recognized != g.NumNodes() {
		return nil, fmt.Errorf("NewPortQubitMapping: %d of %d nodes recognized: %w",
			recognized, g.NumNodes(), ErrMalformedGraph)
	}

	m := &PortQubitMapping{qubits: make(map[Port]int)}
	for c, ports := range byClass {
		m.counts[c] = len(ports)
		for _, p := range ports {
			m.qubits[p] = len(m.ports)
			m.ports = append(m.ports, p)
		}
	}

	return m, nil
}

// Size returns the total number of qubits.
func (m *PortQubitMapping) Size() int { return len(m.ports) }

// QubitOf returns the qubit assigned to p.
func (m *PortQubitMapping) QubitOf(p Port) (int, bool) {
	q, ok := m.qubits[p]

	return q, ok
}

// PortOf returns the port assigned to qubit q.
func (m *PortQubitMapping) PortOf(q int) Port { return m.ports[q] }

// QubitsOf maps a list of ports to their qubits, in order.
func (m *PortQubitMapping) QubitsOf(ports []Port) []int {
	out := make([]int, len(ports))
	for k, p := range ports {
		out[k] = m.qubits[p]
	}

	return out
}

// Count returns the number of qubits in class c.
func (m *PortQubitMapping) Count(c Class) int { return m.counts[c] }

// Range returns the half-open qubit range [lo, hi) of class c.
func (m *PortQubitMapping) Range(c Class) (lo, hi int) {
	for k := Class(0); k < c; k++ {
		lo += m.counts[k]
	}

	return lo, lo + m.counts[c]
}

// ClassOf returns the class of qubit q.
func (m *PortQubitMapping) ClassOf(q int) Class {
	for c := ClassInternal; c <= ClassPost; c++ {
		if _, hi := m.Range(c); q < hi {
			return c
		}
	}

	return ClassPost
}

// NumInternal returns the number of measured structural qubits.
func (m *PortQubitMapping) NumInternal() int { return m.counts[ClassInternal] }

// NumExternal returns the number of input, output and post-selection qubits.
func (m *PortQubitMapping) NumExternal() int {
	return m.counts[ClassInput] + m.counts[ClassOutput] + m.counts[ClassPost]
}
