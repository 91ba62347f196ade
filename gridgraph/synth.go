package gridgraph

import (
	"math"

	"github.com/golang/geo/r3"
)

// SyntheticTube builds a field whose domain is the set of voxels closer
// than radius to the polyline path. The EDT is the analytic distance to
// the tube wall, radius - dist(voxel, path), and zero outside.
// It exists to drive demos and tests with a known medial axis.
// Complexity: O(N·len(path)).
func SyntheticTube(shape Shape, path []r3.Vector, radius float64) (*ScalarField, error) {
	if !shape.Valid() {
		return nil, ErrEmptyGrid
	}
	n := shape.Len()
	edt := make([]float64, n)
	mask := make([]uint8, n)
	for i := 0; i < n; i++ {
		p := shape.Voxel(i).Vector()
		d := distToPolyline(p, path)
		if d < radius {
			edt[i] = radius - d
			mask[i] = 1
		}
	}

	return NewScalarField(shape, edt, mask)
}

func distToPolyline(p r3.Vector, path []r3.Vector) float64 {
	switch len(path) {
	case 0:
		return math.Inf(1)
	case 1:
		return p.Distance(path[0])
	}
	best := math.Inf(1)
	for i := 1; i < len(path); i++ {
		if d := distToSegment(p, path[i-1], path[i]); d < best {
			best = d
		}
	}

	return best
}

func distToSegment(p, a, b r3.Vector) float64 {
	ab := b.Sub(a)
	l2 := ab.Norm2()
	if l2 == 0 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / l2
	t = math.Max(0, math.Min(1, t))
	return p.Distance(a.Add(ab.Mul(t)))
}
