package shape_test

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/katalvlaran/medax/core"
	"github.com/katalvlaran/medax/shape"
	"github.com/katalvlaran/medax/skeleton"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func straightChain(n int) skeleton.PointSet {
	ps := make(skeleton.PointSet, n)
	for i := range ps {
		ps[i] = skeleton.Point{Pos: r3.Vector{X: float64(i)}, Rad: 1}
	}
	return ps
}

func backboneOf(t *testing.T, ps skeleton.PointSet) *skeleton.Backbone {
	t.Helper()
	tree, err := skeleton.Build(ps, skeleton.WithBinWidth(1), skeleton.WithTolerance(0.5))
	require.NoError(t, err)
	bb, err := skeleton.Extract(tree)
	require.NoError(t, err)
	return bb
}

func TestCompute_StraightChain(t *testing.T) {
	ps := straightChain(10)
	m, err := shape.Compute(backboneOf(t, ps), ps)
	require.NoError(t, err)

	assert.True(t, m.Reliable)
	assert.Equal(t, 2, m.Endpoints)
	assert.InDelta(t, 9.0, m.Length, 1e-12)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, m.Order)
	require.Len(t, m.Angles, 8)
	for _, a := range m.Angles {
		assert.InDelta(t, 0, a, 1e-12)
	}
	require.Len(t, m.Correlation, 9)
	for k, c := range m.Correlation {
		assert.InDelta(t, float64(9-k)/9, c, 1e-12)
	}
	assert.InDelta(t, 4.5, m.AspectMax, 1e-12)
	assert.InDelta(t, 4.5, m.AspectMean, 1e-12)
	assert.InDelta(t, 4.5, m.AspectWeighted, 1e-12)
	assert.Equal(t, shape.Diameters{Max: 2, Mean: 2, Weighted: 2}, m.Diameters)
}

func TestLength_DirectionInvariant(t *testing.T) {
	ps := skeleton.PointSet{
		{Pos: r3.Vector{}}, {Pos: r3.Vector{X: 1}}, {Pos: r3.Vector{X: 1.6, Y: 0.8}},
		{Pos: r3.Vector{X: 2.5, Y: 0.9}}, {Pos: r3.Vector{X: 3.1, Y: 0.2, Z: 0.3}},
	}
	bb := backboneOf(t, ps)
	require.True(t, bb.Simple)

	order, err := shape.PathOrder(bb.Graph)
	require.NoError(t, err)
	reversed := make([]int, len(order))
	for i, id := range order {
		reversed[len(order)-1-i] = id
	}
	fwd, err := shape.Tangents(order, ps)
	require.NoError(t, err)
	bwd, err := shape.Tangents(reversed, ps)
	require.NoError(t, err)

	total := shape.Length(bb.Graph)
	assert.InDelta(t, total, sum(shape.SegmentLengths(fwd)), 1e-12)
	assert.InDelta(t, total, sum(shape.SegmentLengths(bwd)), 1e-12)
}

func TestAngles_RightTurn(t *testing.T) {
	tg := []r3.Vector{{X: 1}, {Y: 2}, {Y: 1}}
	ang := shape.Angles(tg)
	require.Len(t, ang, 2)
	assert.InDelta(t, math.Pi/2, ang[0], 1e-12)
	assert.InDelta(t, 0, ang[1], 1e-12)
	assert.Nil(t, shape.Angles(tg[:1]))
}

func TestUnitTangentsAndCorrelation(t *testing.T) {
	units := shape.UnitTangents([]r3.Vector{{X: 3}, {Y: -2}, {}})
	assert.Equal(t, []r3.Vector{{X: 1}, {Y: -1}, {}}, units)

	c := shape.TangentCorrelation([]r3.Vector{{X: 1}, {X: -1}})
	assert.InDeltaSlice(t, []float64{1, -0.5}, c, 1e-12)
	assert.Empty(t, shape.TangentCorrelation(nil))
}

func TestDiametersOf(t *testing.T) {
	d := shape.DiametersOf([]float64{1, 2, 3})
	assert.InDelta(t, 6, d.Max, 1e-12)
	assert.InDelta(t, 4, d.Mean, 1e-12)
	assert.InDelta(t, 2*36.0/14.0, d.Weighted, 1e-12)

	assert.Equal(t, shape.Diameters{}, shape.DiametersOf(nil))
	assert.Equal(t, shape.Diameters{}, shape.DiametersOf([]float64{0, 0}))
}

func TestCompute_BranchedIsUnreliable(t *testing.T) {
	g := core.NewGraph()
	ps := make(skeleton.PointSet, 12)
	for i := 0; i < 10; i++ {
		ps[i] = skeleton.Point{Pos: r3.Vector{X: float64(i)}, Rad: 1}
		require.NoError(t, g.AddNode(i))
		require.NoError(t, g.SetAttr(i, core.AttrRad, 1))
	}
	for i := 0; i < 9; i++ {
		require.NoError(t, g.AddEdge(i, i+1, 1))
	}
	ps[10] = skeleton.Point{Pos: r3.Vector{X: 5, Y: 1}, Rad: 1}
	ps[11] = skeleton.Point{Pos: r3.Vector{X: 5, Y: 2}, Rad: 1}
	require.NoError(t, g.AddEdge(5, 10, 1))
	require.NoError(t, g.AddEdge(10, 11, 1))

	m, err := shape.Compute(&skeleton.Backbone{Graph: g, Simple: false}, ps)
	require.NoError(t, err)
	assert.False(t, m.Reliable)
	assert.Equal(t, 3, m.Endpoints)
	assert.InDelta(t, 11, m.Length, 1e-12)
	assert.Len(t, m.Order, 12)
}

func TestCompute_Degenerate(t *testing.T) {
	g := core.NewGraph(core.WithNodes(1))
	require.NoError(t, g.SetAttr(0, core.AttrRad, 1.5))
	m, err := shape.Compute(&skeleton.Backbone{Graph: g}, skeleton.PointSet{{Rad: 1.5}})
	require.NoError(t, err)
	assert.Zero(t, m.Length)
	assert.Equal(t, []int{0}, m.Order)
	assert.Empty(t, m.Tangents)
	assert.Equal(t, 3.0, m.Diameters.Max)
	assert.Zero(t, m.AspectMax)

	m, err = shape.Compute(&skeleton.Backbone{Graph: core.NewGraph()}, nil)
	require.NoError(t, err)
	assert.Empty(t, m.Order)
	assert.Zero(t, m.AspectMean)
}

func TestErrors(t *testing.T) {
	_, err := shape.Compute(nil, nil)
	assert.ErrorIs(t, err, shape.ErrGraphNil)
	_, err = shape.PathOrder(nil)
	assert.ErrorIs(t, err, shape.ErrGraphNil)

	_, err = shape.Tangents([]int{0, 3}, straightChain(2))
	assert.ErrorIs(t, err, shape.ErrPointMissing)

	ps := straightChain(4)
	_, err = shape.Compute(backboneOf(t, ps), ps[:2])
	assert.ErrorIs(t, err, shape.ErrPointMissing)
	assert.Zero(t, shape.Length(nil))
}

func sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s
}
