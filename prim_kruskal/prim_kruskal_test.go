package prim_kruskal_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/medax/core"
	"github.com/katalvlaran/medax/prim_kruskal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTriangle: 0-1 (1), 1-2 (2), 0-2 (3). MST = {0-1, 1-2}, weight 3.
func buildTriangle(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(0, 2, 3))
	return g
}

// buildMediumGraph chains 0..n-1 and adds random extra edges with a fixed seed.
func buildMediumGraph(t testing.TB, n, edgesCount int) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithNodes(n))
	r := rand.New(rand.NewSource(42))
	for i := 1; i < n; i++ {
		require.NoError(t, g.AddEdge(i-1, i, 1+r.Float64()*9))
	}
	for extra := edgesCount - (n - 1); extra > 0; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v || g.HasEdge(u, v) {
			continue
		}
		require.NoError(t, g.AddEdge(u, v, 1+r.Float64()*99))
		extra--
	}
	return g
}

func TestValidation(t *testing.T) {
	_, _, err := prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
	_, _, err = prim_kruskal.Prim(nil, 0)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	empty := core.NewGraph()
	_, _, err = prim_kruskal.Kruskal(empty)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	_, _, err = prim_kruskal.Prim(empty, -1)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	split := core.NewGraph()
	require.NoError(t, split.AddEdge(0, 1, 1))
	require.NoError(t, split.AddEdge(2, 3, 1))
	_, _, err = prim_kruskal.Kruskal(split)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	_, _, err = prim_kruskal.Prim(split, 0)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	_, _, err = prim_kruskal.Prim(buildTriangle(t), 9)
	assert.ErrorIs(t, err, prim_kruskal.ErrRootNotFound)

	_, _, err = prim_kruskal.Compute(buildTriangle(t), prim_kruskal.MSTOptions{Method: "boruvka"})
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
}

func TestSingleNode(t *testing.T) {
	g := core.NewGraph(core.WithNodes(1))
	edges, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, edges)
	assert.Zero(t, total)

	edges, total, err = prim_kruskal.Prim(g, -1)
	require.NoError(t, err)
	assert.Empty(t, edges)
	assert.Zero(t, total)
}

func TestTriangle(t *testing.T) {
	g := buildTriangle(t)
	want := []core.Edge{{U: 0, V: 1, Weight: 1}, {U: 1, V: 2, Weight: 2}}

	edges, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, want, edges)
	assert.Equal(t, 3.0, total)

	edges, total, err = prim_kruskal.Prim(g, 2)
	require.NoError(t, err)
	assert.ElementsMatch(t, want, edges)
	assert.Equal(t, 3.0, total)
}

func TestTieBreakDeterministic(t *testing.T) {
	// A 4-cycle with equal weights: Kruskal keeps the three smallest pairs.
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(0, 3, 1))

	edges, _, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{U: 0, V: 1, Weight: 1}, {U: 0, V: 3, Weight: 1}, {U: 1, V: 2, Weight: 1}}, edges)
}

func TestPrimMatchesKruskalWeight(t *testing.T) {
	g := buildMediumGraph(t, 200, 800)
	ke, kw, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	pe, pw, err := prim_kruskal.Prim(g, 17)
	require.NoError(t, err)
	assert.Len(t, ke, 199)
	assert.Len(t, pe, 199)
	assert.InDelta(t, kw, pw, 1e-9)
}

func TestTreeKeepsIDsAndAttrs(t *testing.T) {
	g := buildTriangle(t)
	require.NoError(t, g.SetAttr(2, core.AttrRad, 4.5))

	for _, method := range []string{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim} {
		tree, total, err := prim_kruskal.Tree(g, prim_kruskal.WithMethod(method), prim_kruskal.WithRoot(0))
		require.NoError(t, err, method)
		assert.Equal(t, 3.0, total)
		assert.Equal(t, []int{0, 1, 2}, tree.Nodes())
		assert.Equal(t, 2, tree.EdgeCount())
		assert.False(t, tree.HasEdge(0, 2))
		r, ok := tree.Attr(2, core.AttrRad)
		assert.True(t, ok)
		assert.Equal(t, 4.5, r)
	}
	// Source graph untouched.
	assert.Equal(t, 3, g.EdgeCount())
}
