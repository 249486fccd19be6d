package zxgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zxeval/zxgraph"
)

// TestConnectedComponents_Islands splits a diagram into a CNOT gadget, a
// separate wire and a lone spider.
func TestConnectedComponents_Islands(t *testing.T) {
	g := zxgraph.MustFromDiagram(cnotDiagram + "\n\n\n\n!---?   z")
	comps := g.ConnectedComponents()
	require.Len(t, comps, 3)

	sizes := []int{len(comps[0]), len(comps[1]), len(comps[2])}
	assert.Equal(t, []int{6, 2, 1}, sizes)
	assert.Equal(t, zxgraph.Node{X: 0, Y: 0}, comps[0][0])
	assert.Equal(t, []zxgraph.Node{{X: 0, Y: 2}, {X: 1, Y: 2}}, comps[1])
	assert.Equal(t, []zxgraph.Node{{X: 2, Y: 2}}, comps[2])
}

func TestConnectedComponents_Empty(t *testing.T) {
	assert.Empty(t, zxgraph.NewGraph().ConnectedComponents())
}
