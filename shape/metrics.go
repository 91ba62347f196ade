package shape

import (
	"fmt"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/medax"
	"github.com/katalvlaran/medax/core"
	"github.com/katalvlaran/medax/dfs"
	"github.com/katalvlaran/medax/skeleton"
)

// warnBranched logs when g has more than two endpoints.
func warnBranched(g *core.Graph, op string) int {
	n := len(skeleton.Endpoints(g))
	if n > 2 {
		medax.Logger().Warn("shape: metrics on a branched skeleton", "op", op, "endpoints", n)
	}

	return n
}

// Length returns the summed edge weight of g. It is independent of any
// traversal direction.
func Length(g *core.Graph) float64 {
	if g == nil {
		return 0
	}
	warnBranched(g, "length")

	return g.TotalWeight()
}

// PathOrder walks g depth-first from its lowest endpoint (or its lowest
// node if it has none) and returns the visiting order. An empty graph
// yields an empty order.
func PathOrder(g *core.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	warnBranched(g, "path order")

	return pathOrder(g)
}

func pathOrder(g *core.Graph) ([]int, error) {
	start := -1
	if eps := skeleton.Endpoints(g); len(eps) > 0 {
		start = eps[0]
	} else if nodes := g.Nodes(); len(nodes) > 0 {
		start = nodes[0]
	}
	if start < 0 {
		return nil, nil
	}
	res, err := dfs.Preorder(g, start)
	if err != nil {
		return nil, fmt.Errorf("shape: path order: %w", err)
	}

	return res.Order, nil
}

// Tangents returns pos(order[i+1]) − pos(order[i]) for every successive pair.
func Tangents(order []int, points skeleton.PointSet) ([]r3.Vector, error) {
	for _, id := range order {
		if id < 0 || id >= len(points) {
			return nil, fmt.Errorf("%w: %d of %d", ErrPointMissing, id, len(points))
		}
	}
	if len(order) < 2 {
		return nil, nil
	}
	out := make([]r3.Vector, len(order)-1)
	for i := range out {
		out[i] = points[order[i+1]].Pos.Sub(points[order[i]].Pos)
	}

	return out, nil
}

// UnitTangents normalizes each tangent; zero tangents stay zero.
func UnitTangents(tangents []r3.Vector) []r3.Vector {
	out := make([]r3.Vector, len(tangents))
	for i, t := range tangents {
		out[i] = t.Normalize()
	}

	return out
}

// SegmentLengths returns |t| for each tangent.
func SegmentLengths(tangents []r3.Vector) []float64 {
	out := make([]float64, len(tangents))
	for i, t := range tangents {
		out[i] = t.Norm()
	}

	return out
}

// Angles returns the angle in radians between each pair of successive tangents.
func Angles(tangents []r3.Vector) []float64 {
	if len(tangents) < 2 {
		return nil
	}
	out := make([]float64, len(tangents)-1)
	for i := range out {
		out[i] = float64(tangents[i].Angle(tangents[i+1]))
	}

	return out
}

// TangentCorrelation returns C(k) = Σ_{i+k<n} u_i·u_{i+k} / n for k in
// [0, n), where n = len(units). Pairs past the path end count as zero.
// Complexity: O(n²).
func TangentCorrelation(units []r3.Vector) []float64 {
	n := len(units)
	out := make([]float64, n)
	for k := 0; k < n; k++ {
		var sum float64
		for i := 0; i+k < n; i++ {
			sum += units[i].Dot(units[i+k])
		}
		out[k] = sum / float64(n)
	}

	return out
}

// DiametersOf summarizes radii as inscribed diameters. An empty slice gives zeros.
func DiametersOf(radii []float64) Diameters {
	if len(radii) == 0 {
		return Diameters{}
	}
	weights := make([]float64, len(radii))
	for i, r := range radii {
		weights[i] = r * r
	}
	d := Diameters{
		Max:  2 * floats.Max(radii),
		Mean: 2 * stat.Mean(radii, nil),
	}
	if floats.Sum(weights) > 0 {
		d.Weighted = 2 * stat.Mean(radii, weights)
	}

	return d
}

// Compute derives all metrics of bb. points supplies the position of every
// node ID; radii are read from the core.AttrRad node attribute.
//
// Steps:
//  1. Count endpoints; warn if more than two.
//  2. Length, path order, tangents, segment lengths, angles, correlation.
//  3. Diameters and aspect ratios from the radii of the backbone nodes.
func Compute(bb *skeleton.Backbone, points skeleton.PointSet) (*Metrics, error) {
	if bb == nil || bb.Graph == nil {
		return nil, ErrGraphNil
	}
	g := bb.Graph

	// 1. Shape check.
	m := &Metrics{Reliable: bb.Simple, Endpoints: warnBranched(g, "compute")}

	// 2. Path descriptors.
	m.Length = g.TotalWeight()
	order, err := pathOrder(g)
	if err != nil {
		return nil, err
	}
	m.Order = order
	if m.Tangents, err = Tangents(order, points); err != nil {
		return nil, err
	}
	m.SegmentLengths = SegmentLengths(m.Tangents)
	m.Angles = Angles(m.Tangents)
	m.Correlation = TangentCorrelation(UnitTangents(m.Tangents))

	// 3. Cross-section descriptors.
	nodes := g.Nodes()
	radii := make([]float64, 0, len(nodes))
	for _, id := range nodes {
		if r, ok := g.Attr(id, core.AttrRad); ok {
			radii = append(radii, r)
		}
	}
	m.Diameters = DiametersOf(radii)
	m.AspectMax = ratio(m.Length, m.Diameters.Max)
	m.AspectMean = ratio(m.Length, m.Diameters.Mean)
	m.AspectWeighted = ratio(m.Length, m.Diameters.Weighted)

	return m, nil
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}

	return num / den
}
