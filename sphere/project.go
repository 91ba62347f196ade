package sphere

import (
	"fmt"
	"math"
	"sort"

	"github.com/golang/geo/r3"

	"github.com/katalvlaran/medax"
	"github.com/katalvlaran/medax/skeleton"
)

// Project thins points by angular binning about a sphere and moves the
// survivors onto its surface. edt[i] is the wall distance of points[i].
//
// Steps:
//  1. Validate; sets smaller than MinPoints are returned as-is with their
//     own distances.
//  2. Take the precomputed sphere or fit one to points.
//  3. Convert to (r, θ, φ) about the center and order points by |r − R|
//     (stable, so equal distances keep input order).
//  4. For each still-active point p in that order: over every active point
//     q in p's box (strict bounds) take the largest recorded distance,
//     deactivate q ≠ p and record the maximum at p.
//  5. Emit survivors in input order at center + R·(sinθ cosφ, sinθ sinφ, cosθ).
//
// Complexity: O(n²) worst case for step 4.
func Project(points []r3.Vector, edt []float64, opts ...ProjectOption) (skeleton.PointSet, error) {
	o := DefaultProjectOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 1. Validate and short-circuit.
	if len(points) != len(edt) {
		return nil, fmt.Errorf("%w: %d points, %d distances", ErrLengthMismatch, len(points), len(edt))
	}
	if !(o.BinWidth > 0) || math.IsInf(o.BinWidth, 0) {
		return nil, fmt.Errorf("%w: %v", ErrBadBinWidth, o.BinWidth)
	}
	n := len(points)
	if n < o.MinPoints {
		return unchanged(points, edt), nil
	}

	// 2. Sphere.
	var sph Sphere
	if o.Sphere != nil {
		sph = *o.Sphere
	} else {
		sph = Fit(points, o.Fit...)
	}
	R := sph.Radius
	if !(R > 0) {
		medax.Logger().Warn("sphere: zero radius, skipping projection", "points", n)
		return unchanged(points, edt), nil
	}

	// 3. Spherical coordinates and processing order.
	theta := make([]float64, n)
	phi := make([]float64, n)
	drop := make([]float64, n)
	for i, p := range points {
		var r float64
		theta[i], phi[i], r = spherical(p.Sub(sph.Center))
		drop[i] = math.Abs(r - R)
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return drop[order[a]] < drop[order[b]] })

	// 4. Angular binning.
	active := make([]bool, n)
	for i := range active {
		active[i] = true
	}
	rad := append([]float64(nil), edt...)
	halfTheta := o.BinWidth / R / 2
	for _, p := range order {
		if !active[p] {
			continue
		}
		halfPhi := o.BinWidth / (R * math.Sin(theta[p])) / 2
		if math.IsNaN(halfPhi) || halfPhi < 0 {
			halfPhi = math.Inf(1)
		}
		best := rad[p]
		for q := 0; q < n; q++ {
			if !active[q] {
				continue
			}
			if math.Abs(theta[q]-theta[p]) >= halfTheta || math.Abs(phi[q]-phi[p]) >= halfPhi {
				continue
			}
			if rad[q] > best {
				best = rad[q]
			}
			if q != p {
				active[q] = false
			}
		}
		rad[p] = best
	}

	// 5. Re-project survivors.
	out := make(skeleton.PointSet, 0, n)
	for i := 0; i < n; i++ {
		if !active[i] {
			continue
		}
		st, ct := math.Sincos(theta[i])
		sp, cp := math.Sincos(phi[i])
		pos := sph.Center.Add(r3.Vector{X: st * cp, Y: st * sp, Z: ct}.Mul(R))
		out = append(out, skeleton.Point{Pos: pos, Rad: rad[i]})
	}
	medax.Logger().Debug("sphere: projected candidates", "in", n, "out", len(out), "radius", R)

	return out, nil
}

// spherical returns (θ, φ, r) of v; the origin maps to θ = φ = 0.
func spherical(v r3.Vector) (theta, phi, r float64) {
	r = v.Norm()
	if r == 0 {
		return 0, 0, 0
	}
	c := v.Z / r
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}

	return math.Acos(c), math.Atan2(v.Y, v.X), r
}

func unchanged(points []r3.Vector, edt []float64) skeleton.PointSet {
	out := make(skeleton.PointSet, len(points))
	for i, p := range points {
		out[i] = skeleton.Point{Pos: p, Rad: edt[i]}
	}

	return out
}
