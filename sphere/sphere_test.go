package sphere_test

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/katalvlaran/medax/sphere"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fibonacciSphere returns n well spread points on the given sphere.
func fibonacciSphere(c r3.Vector, radius float64, n int) []r3.Vector {
	golden := math.Pi * (3 - math.Sqrt(5))
	pts := make([]r3.Vector, n)
	for i := range pts {
		z := 1 - 2*(float64(i)+0.5)/float64(n)
		rr := math.Sqrt(1 - z*z)
		a := golden * float64(i)
		pts[i] = c.Add(r3.Vector{X: rr * math.Cos(a), Y: rr * math.Sin(a), Z: z}.Mul(radius))
	}
	return pts
}

func TestFit_ExactSphere(t *testing.T) {
	center := r3.Vector{X: 1, Y: -2, Z: 3}
	s := sphere.Fit(fibonacciSphere(center, 5, 200))
	assert.InDelta(t, 0, s.Center.Sub(center).Norm(), 1e-9)
	assert.InDelta(t, 5, s.Radius, 1e-9)
}

func TestFit_TooFewPoints(t *testing.T) {
	pts := []r3.Vector{{X: 1}, {Y: 1}, {Z: 1}}
	assert.Equal(t, sphere.Seed, sphere.Fit(pts))

	seed := sphere.Sphere{Center: r3.Vector{X: 4}, Radius: 2}
	assert.Equal(t, seed, sphere.Fit(pts, sphere.WithSeed(seed)))

	four := fibonacciSphere(r3.Vector{}, 3, 8)
	assert.Equal(t, sphere.Seed, sphere.Fit(four, sphere.WithMinFitPoints(9)))
}

func TestFit_RadiusNonNegative(t *testing.T) {
	s := sphere.Fit(fibonacciSphere(r3.Vector{X: -7}, 0.5, 50))
	assert.GreaterOrEqual(t, s.Radius, 0.0)
	assert.InDelta(t, 0.5, s.Radius, 1e-9)
}

func TestProject_SmallSetUnchanged(t *testing.T) {
	pts := []r3.Vector{{X: 1}, {X: 2}, {X: 3}}
	edt := []float64{0.5, 1.5, 2.5}
	out, err := sphere.Project(pts, edt)
	require.NoError(t, err)
	require.Len(t, out, 3)
	for i := range pts {
		assert.Equal(t, pts[i], out[i].Pos)
		assert.Equal(t, edt[i], out[i].Rad)
	}
}

func TestProject_OnSurface(t *testing.T) {
	center := r3.Vector{X: 10, Y: 10, Z: 10}
	pts := fibonacciSphere(center, 8, 300)
	// Jitter radially so projection has work to do.
	for i := range pts {
		d := pts[i].Sub(center)
		pts[i] = center.Add(d.Mul(1 + 0.05*math.Sin(float64(i))))
	}
	edt := make([]float64, len(pts))
	for i := range edt {
		edt[i] = 1
	}

	for _, opts := range [][]sphere.ProjectOption{
		{sphere.WithBinWidth(3)},
		{sphere.WithBinWidth(3), sphere.WithSphere(sphere.Sphere{Center: center, Radius: 8})},
	} {
		out, err := sphere.Project(pts, edt, opts...)
		require.NoError(t, err)
		require.NotEmpty(t, out)
		assert.Less(t, len(out), len(pts))
		ref := sphere.Fit(pts)
		if len(opts) == 2 {
			ref = sphere.Sphere{Center: center, Radius: 8}
		}
		for _, p := range out {
			assert.True(t, ref.Contains(p.Pos, 1e-9), "point %v off sphere", p.Pos)
		}
	}
}

func TestProject_KeepsNearestRecordsMax(t *testing.T) {
	// Six samples on one ray: the one on the surface survives and takes
	// the largest distance of the group.
	pts := []r3.Vector{{X: 9}, {X: 10}, {X: 11}, {X: 9.5}, {X: 10.6}, {X: 9.8}}
	edt := []float64{5, 1, 3, 2, 2, 2}
	out, err := sphere.Project(pts, edt,
		sphere.WithBinWidth(1), sphere.WithSphere(sphere.Sphere{Radius: 10}))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.InDelta(t, 10, out[0].Pos.X, 1e-12)
	assert.InDelta(t, 0, out[0].Pos.Y, 1e-12)
	assert.InDelta(t, 0, out[0].Pos.Z, 1e-12)
	assert.Equal(t, 5.0, out[0].Rad)
}

func TestProject_HalfWidthIsHalfBin(t *testing.T) {
	// R = 10, δ = 1: on the equator the φ half-width is δ/(2R) = 0.05.
	at := func(phi float64) r3.Vector {
		return r3.Vector{X: 10.5 * math.Cos(phi), Y: 10.5 * math.Sin(phi)}
	}
	pts := []r3.Vector{{X: 10}, at(0.04), at(0.07), at(1), at(2), at(3)}
	edt := []float64{1, 1, 1, 1, 1, 1}
	out, err := sphere.Project(pts, edt,
		sphere.WithBinWidth(1), sphere.WithSphere(sphere.Sphere{Radius: 10}))
	require.NoError(t, err)
	// 0.04 joins the first cell; 0.07 lies inside δ/R but opens its own.
	require.Len(t, out, 5)
	found := false
	for _, p := range out {
		if math.Abs(p.Pos.Y-10*math.Sin(0.07)) < 1e-9 {
			found = true
		}
		assert.Greater(t, math.Abs(10*math.Sin(0.04)-p.Pos.Y), 1e-9)
	}
	assert.True(t, found)
}

func TestProject_SeparateCellsInInputOrder(t *testing.T) {
	pts := []r3.Vector{
		{Y: 10}, {Y: 10.2}, {Y: 9.9},
		{X: 10}, {X: 10.1}, {X: 9.7},
	}
	edt := []float64{1, 2, 3, 4, 5, 6}
	out, err := sphere.Project(pts, edt,
		sphere.WithBinWidth(1), sphere.WithSphere(sphere.Sphere{Radius: 10}))
	require.NoError(t, err)
	require.Len(t, out, 2)
	// Index 0 (on +Y) precedes index 3 (on +X).
	assert.InDelta(t, 10, out[0].Pos.Y, 1e-12)
	assert.Equal(t, 3.0, out[0].Rad)
	assert.InDelta(t, 10, out[1].Pos.X, 1e-12)
	assert.Equal(t, 6.0, out[1].Rad)
}

func TestProject_Errors(t *testing.T) {
	_, err := sphere.Project([]r3.Vector{{}}, nil)
	assert.ErrorIs(t, err, sphere.ErrLengthMismatch)
	_, err = sphere.Project(nil, nil, sphere.WithBinWidth(0))
	assert.ErrorIs(t, err, sphere.ErrBadBinWidth)
}
