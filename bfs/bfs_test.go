package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/medax/bfs"
	"github.com/katalvlaran/medax/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildForest: component {0,1,2,3} as 0-1-2 plus 1-3, component {5,6}, isolated 8.
func buildForest(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(1, 3, 5))
	require.NoError(t, g.AddEdge(5, 6, 1))
	require.NoError(t, g.AddNode(8))
	return g
}

func TestBFS_OrderDepthParent(t *testing.T) {
	g := buildForest(t)
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
	assert.Equal(t, map[int]int{0: 0, 1: 1, 2: 2, 3: 2}, res.Depth)
	assert.Equal(t, map[int]int{1: 0, 2: 1, 3: 1}, res.Parent)

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3}, path)

	_, err = res.PathTo(5)
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := buildForest(t)
	_, err = bfs.BFS(g, 4)
	assert.ErrorIs(t, err, bfs.ErrStartNotFound)

	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	stop := errors.New("stop")
	_, err = bfs.BFS(g, 0, bfs.WithOnVisit(func(id, _ int) error {
		if id == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := buildForest(t)
	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)

	res, err = bfs.BFS(g, 0, bfs.WithFilterNeighbor(func(_, nb int) bool { return nb != 3 }))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
}

func TestComponentsAndLargest(t *testing.T) {
	g := buildForest(t)
	assert.Equal(t, [][]int{{0, 1, 2, 3}, {5, 6}, {8}}, bfs.Components(g))
	assert.Equal(t, []int{0, 1, 2, 3}, bfs.Largest(g))
	assert.False(t, bfs.Connected(g))
	assert.Nil(t, bfs.Largest(core.NewGraph()))
}

func TestLargest_TieBreaksOnLowestID(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(7, 9, 1))
	require.NoError(t, g.AddEdge(2, 4, 1))
	assert.Equal(t, []int{2, 4}, bfs.Largest(g))
}

func TestShortestPath_IgnoresWeights(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(0, 2, 100))
	path, err := bfs.ShortestPath(g, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, path)
}
