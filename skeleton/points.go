package skeleton

import "github.com/golang/geo/r3"

// Point is one medial-axis sample: a position and its inscribed radius
// (the wall distance recorded for it).
type Point struct {
	Pos r3.Vector
	Rad float64
}

// PointSet is the ordered sample list of one component. Graph node i
// refers to PointSet[i].
type PointSet []Point

// Positions returns the sample positions in order.
func (ps PointSet) Positions() []r3.Vector {
	out := make([]r3.Vector, len(ps))
	for i, p := range ps {
		out[i] = p.Pos
	}

	return out
}

// Radii returns the sample radii in order.
func (ps PointSet) Radii() []float64 {
	out := make([]float64, len(ps))
	for i, p := range ps {
		out[i] = p.Rad
	}

	return out
}

// Scaled returns a copy with every position and radius multiplied by f.
func (ps PointSet) Scaled(f float64) PointSet {
	out := make(PointSet, len(ps))
	for i, p := range ps {
		out[i] = Point{Pos: p.Pos.Mul(f), Rad: p.Rad * f}
	}

	return out
}
