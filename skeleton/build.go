package skeleton

import (
	"fmt"
	"math"

	"github.com/katalvlaran/medax"
	"github.com/katalvlaran/medax/bfs"
	"github.com/katalvlaran/medax/core"
	"github.com/katalvlaran/medax/prim_kruskal"
)

// minKeptShare is the fraction of samples below which losing the rest to
// disconnected components is logged at Warn.
const minKeptShare = 0.5

// Build connects nearby samples and reduces the result to a spanning tree.
//
// Steps:
//  1. Validate options.
//  2. Create nodes 0..N-1 with core.AttrRad; N ≤ 1 returns immediately.
//  3. For every pair i<j with distance < (1+Tolerance)·BinWidth add an edge
//     weighted by that distance.
//  4. Keep only the largest connected component (lowest node ID on ties);
//     Warn when it holds less than half of the samples.
//  5. Replace it by its minimum spanning tree.
//
// Complexity: O(N²) for step 3, O(E log E) for step 5.
func Build(points PointSet, opts ...BuildOption) (*core.Graph, error) {
	// 1. Options.
	o := DefaultBuildOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !(o.Tolerance > -1) || math.IsInf(o.Tolerance, 0) {
		return nil, fmt.Errorf("%w: %v", ErrBadTolerance, o.Tolerance)
	}
	if !(o.BinWidth > 0) || math.IsInf(o.BinWidth, 0) {
		return nil, fmt.Errorf("%w: %v", ErrBadBinWidth, o.BinWidth)
	}

	// 2. Nodes.
	n := len(points)
	g := core.NewGraph(core.WithNodes(n))
	for i, p := range points {
		if err := g.SetAttr(i, core.AttrRad, p.Rad); err != nil {
			return nil, err
		}
	}
	if n <= 1 {
		return g, nil
	}

	// 3. Distance-thresholded edges.
	cutoff := (1 + o.Tolerance) * o.BinWidth
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := points[i].Pos.Distance(points[j].Pos)
			if d < cutoff {
				if err := g.AddEdge(i, j, d); err != nil {
					return nil, err
				}
			}
		}
	}

	// 4. Largest component.
	keep := bfs.Largest(g)
	if len(keep) < n {
		log := medax.Logger().Debug
		if float64(len(keep)) < minKeptShare*float64(n) {
			// Usually a bin width too small for the sample spacing.
			log = medax.Logger().Warn
		}
		log("skeleton: dropped disconnected samples",
			"kept", len(keep), "dropped", n-len(keep), "cutoff", cutoff)
		g = g.Subgraph(keep)
	}
	if len(keep) == 1 {
		return g, nil
	}

	// 5. MST.
	tree, total, err := prim_kruskal.Tree(g, prim_kruskal.WithMethod(o.Method))
	if err != nil {
		return nil, fmt.Errorf("skeleton: spanning tree: %w", err)
	}
	medax.Logger().Debug("skeleton: built tree",
		"nodes", tree.NodeCount(), "edges", tree.EdgeCount(), "weight", total)

	return tree, nil
}
