package zxgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zxeval/zxgraph"
)

func TestPortQubitMapping_ClassOrder(t *testing.T) {
	g := zxgraph.MustFromDiagram(cnotDiagram)
	m, err := zxgraph.NewPortQubitMapping(g)
	require.NoError(t, err)

	assert.Equal(t, 10, m.Size())
	assert.Equal(t, 6, m.NumInternal())
	assert.Equal(t, 4, m.NumExternal())
	assert.Equal(t, 2, m.Count(zxgraph.ClassInput))
	assert.Equal(t, 0, m.Count(zxgraph.ClassPost))

	lo, hi := m.Range(zxgraph.ClassInput)
	assert.Equal(t, [2]int{6, 8}, [2]int{lo, hi})
	lo, hi = m.Range(zxgraph.ClassOutput)
	assert.Equal(t, [2]int{8, 10}, [2]int{lo, hi})

	zNode := zxgraph.Node{X: 1, Y: 0}
	xNode := zxgraph.Node{X: 1, Y: 1}
	vertical := zxgraph.Edge{X: 1, Y: 0, Horizontal: false}
	assert.Equal(t, []int{0, 1, 2}, m.QubitsOf(g.ActivePortsOf(zNode)))
	assert.Equal(t, []int{3, 4, 5}, m.QubitsOf(g.ActivePortsOf(xNode)))

	q, ok := m.QubitOf(zxgraph.Port{Node: xNode, Edge: vertical})
	require.True(t, ok)
	assert.Equal(t, 5, q)
	assert.Equal(t, zxgraph.Port{Node: zNode, Edge: vertical}, m.PortOf(1))

	in, ok := m.QubitOf(zxgraph.Port{Node: zxgraph.Node{X: 0, Y: 1}, Edge: zxgraph.Edge{X: 0, Y: 1, Horizontal: true}})
	require.True(t, ok)
	assert.Equal(t, 7, in)

	assert.Equal(t, zxgraph.ClassInternal, m.ClassOf(5))
	assert.Equal(t, zxgraph.ClassInput, m.ClassOf(6))
	assert.Equal(t, zxgraph.ClassOutput, m.ClassOf(9))
}

func TestPortQubitMapping_PostSelection(t *testing.T) {
	g := zxgraph.MustFromDiagram("!---@---?\n    |\n    |\n    |\n    O!")
	m, err := zxgraph.NewPortQubitMapping(g)
	require.NoError(t, err)

	assert.Equal(t, 3, m.NumInternal())
	assert.Equal(t, 1, m.Count(zxgraph.ClassPost))
	lo, hi := m.Range(zxgraph.ClassPost)
	assert.Equal(t, [2]int{5, 6}, [2]int{lo, hi})
	assert.Equal(t, zxgraph.ClassPost, m.ClassOf(5))
	assert.Equal(t, zxgraph.Node{X: 1, Y: 1}, m.PortOf(5).Node)
}

func TestPortQubitMapping_SkipsDanglingPorts(t *testing.T) {
	g := zxgraph.NewGraph()
	require.NoError(t, g.AddNode(zxgraph.Node{}, zxgraph.KindZ))
	require.NoError(t, g.AddEdge(zxgraph.Edge{Horizontal: true}, zxgraph.EdgePlain))

	m, err := zxgraph.NewPortQubitMapping(g)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Size())
	_, ok := m.QubitOf(zxgraph.Port{Edge: zxgraph.Edge{Horizontal: true}})
	assert.False(t, ok)
}
