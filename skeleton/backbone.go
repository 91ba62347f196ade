package skeleton

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/medax"
	"github.com/katalvlaran/medax/bfs"
	"github.com/katalvlaran/medax/core"
	"github.com/katalvlaran/medax/dfs"
)

// Endpoints returns the degree-1 nodes of g in ascending order.
func Endpoints(g *core.Graph) []int {
	if g == nil {
		return nil
	}
	var out []int
	for _, id := range g.Nodes() {
		if d, _ := g.Degree(id); d == 1 {
			out = append(out, id)
		}
	}

	return out
}

// FindBranches walks depth-first from every endpoint until the first
// junction (degree > 2), summing edge weights on the way. Endpoints whose
// walk meets no junction contribute nothing. Branches are ordered by
// endpoint.
//
// Complexity: O(L·(V+E)) worst case for L endpoints; each walk stops at
// its first junction so in practice it is proportional to branch length.
func FindBranches(g *core.Graph) ([]Branch, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	var out []Branch
	for _, ep := range Endpoints(g) {
		junction := -1
		res, err := dfs.Preorder(g, ep, dfs.WithOnVisit(func(id, _ int) error {
			if id == ep {
				return nil
			}
			if d, _ := g.Degree(id); d > 2 {
				junction = id
				return dfs.ErrStop
			}
			return nil
		}))
		if err != nil {
			return nil, fmt.Errorf("skeleton: walk from %d: %w", ep, err)
		}
		if junction < 0 {
			continue
		}

		// The walk before the first junction never backtracks, so Order is
		// the chain endpoint → junction.
		path := res.Order[:len(res.Order)-1]
		var length float64
		for _, id := range res.Order[1:] {
			w, _ := g.Weight(res.Parent[id], id)
			length += w
		}
		out = append(out, Branch{
			Endpoint: ep,
			Junction: junction,
			Length:   length,
			Path:     append([]int(nil), path...),
		})
	}

	return out, nil
}

// PruneSmallestBranch removes the shortest branch of g in place.
// It reports false, leaving g untouched, when g already has exactly two
// endpoints or when no branch exists. Ties pick the lowest endpoint.
func PruneSmallestBranch(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if len(Endpoints(g)) == 2 {
		return false, nil
	}
	branches, err := FindBranches(g)
	if err != nil {
		return false, err
	}
	if len(branches) == 0 {
		return false, nil
	}

	best := branches[0]
	for _, b := range branches[1:] {
		if b.Length < best.Length {
			best = b
		}
	}
	if err = g.RemoveNodes(best.Path...); err != nil {
		return false, fmt.Errorf("skeleton: prune branch at %d: %w", best.Endpoint, err)
	}
	medax.Logger().Debug("skeleton: pruned branch",
		"endpoint", best.Endpoint, "junction", best.Junction,
		"length", best.Length, "nodes", len(best.Path))

	return true, nil
}

// errBudgetExhausted is logged, not returned, when the pass budget ends
// pruning early.
var errBudgetExhausted = errors.New("skeleton: pruning budget exhausted")

// Extract prunes a copy of tree until a simple path remains.
//
// Steps:
//  1. Clone tree; the input is never modified.
//  2. Loop: check the context and the pass budget, then PruneSmallestBranch.
//     Stop when it reports nothing to prune.
//  3. Classify the result as Simple or not; non-simple results are logged
//     at Warn level.
//
// Returns an error only for a nil graph, a negative budget or a cancelled
// context.
func Extract(tree *core.Graph, opts ...ExtractOption) (*Backbone, error) {
	if tree == nil {
		return nil, ErrGraphNil
	}
	o := DefaultExtractOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.MaxPasses < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadPasses, o.MaxPasses)
	}
	budget := o.MaxPasses
	if budget == 0 {
		budget = tree.NodeCount()
	}

	// 1. Work on a copy.
	g := tree.Clone()
	bb := &Backbone{Graph: g, Sizes: []int{g.NodeCount()}}

	// 2. Prune.
	var stopErr error
	for {
		if err := o.Ctx.Err(); err != nil {
			return nil, fmt.Errorf("skeleton: extract: %w", err)
		}
		if bb.Passes >= budget {
			stopErr = errBudgetExhausted
			break
		}
		pruned, err := PruneSmallestBranch(g)
		if err != nil {
			return nil, err
		}
		if !pruned {
			break
		}
		bb.Passes++
		bb.Sizes = append(bb.Sizes, g.NodeCount())
	}

	// 3. Classify.
	bb.Simple = IsSimplePath(g)
	if !bb.Simple {
		attrs := []any{"nodes", g.NodeCount(), "endpoints", len(Endpoints(g)), "passes", bb.Passes}
		if stopErr != nil {
			attrs = append(attrs, "reason", stopErr)
		}
		medax.Logger().Warn("skeleton: backbone is not a simple path", attrs...)
	}

	return bb, nil
}

// IsSimplePath reports whether g is a connected acyclic graph of at least
// two nodes whose degrees are all 1 or 2 with exactly two leaves.
func IsSimplePath(g *core.Graph) bool {
	if g == nil || g.NodeCount() < 2 {
		return false
	}
	leaves := 0
	for _, id := range g.Nodes() {
		d, _ := g.Degree(id)
		switch {
		case d == 1:
			leaves++
		case d != 2:
			return false
		}
	}

	return leaves == 2 && !dfs.HasCycle(g) && bfs.Connected(g)
}
