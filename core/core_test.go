package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/medax/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSquare returns the 4-cycle 0-1-2-3-0 with weights 1,2,3,4.
func buildSquare(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(2, 3, 3))
	require.NoError(t, g.AddEdge(3, 0, 4))
	return g
}

func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddEdge(-1, 2, 1), core.ErrNegativeID)
	assert.ErrorIs(t, g.AddEdge(2, 2, 1), core.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.AddEdge(1, 2, -1), core.ErrBadWeight)
	assert.ErrorIs(t, g.AddEdge(1, 2, math.NaN()), core.ErrBadWeight)
	require.NoError(t, g.AddEdge(1, 2, 0))
	assert.ErrorIs(t, g.AddEdge(2, 1, 5), core.ErrMultiEdgeNotAllowed)
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, []int{1, 2}, g.Nodes(), "node 0 is an unused arena slot")
}

func TestQueries_Sorted(t *testing.T) {
	g := buildSquare(t)

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, nbs)

	assert.Equal(t, []core.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 0, V: 3, Weight: 4},
		{U: 1, V: 2, Weight: 2},
		{U: 2, V: 3, Weight: 3},
	}, g.Edges())
	assert.Equal(t, 10.0, g.TotalWeight())

	w, ok := g.Weight(3, 2)
	assert.True(t, ok)
	assert.Equal(t, 3.0, w)
	assert.False(t, g.HasEdge(0, 2))

	_, err = g.Neighbors(9)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestRemoveNode_DropsIncidentEdges(t *testing.T) {
	g := buildSquare(t)
	require.NoError(t, g.RemoveNode(1))

	assert.Equal(t, []int{0, 2, 3}, g.Nodes())
	assert.Equal(t, 2, g.EdgeCount())
	d, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 1, d)

	assert.ErrorIs(t, g.RemoveNode(1), core.ErrNodeNotFound)
	assert.ErrorIs(t, g.RemoveEdge(0, 1), core.ErrEdgeNotFound)
}

func TestRemoveNodes_StopsAtMissing(t *testing.T) {
	g := buildSquare(t)
	err := g.RemoveNodes(0, 7, 2)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	assert.Equal(t, []int{1, 2, 3}, g.Nodes())
}

func TestAttrs(t *testing.T) {
	g := core.NewGraph(core.WithNodes(3))
	require.NoError(t, g.SetAttr(2, core.AttrRad, 1.5))
	r, ok := g.Attr(2, core.AttrRad)
	assert.True(t, ok)
	assert.Equal(t, 1.5, r)

	_, ok = g.Attr(1, core.AttrRad)
	assert.False(t, ok)
	assert.ErrorIs(t, g.SetAttr(5, core.AttrRad, 1), core.ErrNodeNotFound)
}

func TestClone_IsIndependent(t *testing.T) {
	g := buildSquare(t)
	require.NoError(t, g.SetAttr(0, core.AttrRad, 2))
	c := g.Clone()

	require.NoError(t, c.RemoveNode(0))
	require.NoError(t, c.SetAttr(1, core.AttrRad, 9))

	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 4, g.EdgeCount())
	_, ok := g.Attr(1, core.AttrRad)
	assert.False(t, ok)
	assert.Equal(t, 3, c.NodeCount())
	assert.Equal(t, 2, c.EdgeCount())
}

func TestSubgraph_Induced(t *testing.T) {
	g := buildSquare(t)
	require.NoError(t, g.SetAttr(2, core.AttrRad, 0.5))

	s := g.Subgraph([]int{1, 2, 3, 42})
	assert.Equal(t, []int{1, 2, 3}, s.Nodes())
	assert.Equal(t, []core.Edge{{U: 1, V: 2, Weight: 2}, {U: 2, V: 3, Weight: 3}}, s.Edges())
	r, ok := s.Attr(2, core.AttrRad)
	assert.True(t, ok)
	assert.Equal(t, 0.5, r)
}

func TestConcurrentReads(t *testing.T) {
	g := buildSquare(t)
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				_ = g.Edges()
				_, _ = g.Neighbors(j % 4)
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
	assert.Equal(t, 4, g.EdgeCount())
}
