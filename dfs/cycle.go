package dfs

import "github.com/katalvlaran/medax/core"

// HasCycle reports whether the undirected graph g contains a cycle.
// A nil graph has none.
//
// Each component is walked once; it is acyclic iff it holds exactly
// nodes−1 edges.
// Complexity: O(V+E).
func HasCycle(g *core.Graph) bool {
	if g == nil {
		return false
	}
	seen := make(map[int]bool, g.NodeCount())
	for _, root := range g.Nodes() {
		if seen[root] {
			continue
		}
		res, err := Preorder(g, root, WithOnVisit(func(id, _ int) error {
			seen[id] = true
			return nil
		}))
		if err != nil {
			continue
		}
		edges := 0
		for _, id := range res.Order {
			d, _ := g.Degree(id)
			edges += d
		}
		edges /= 2
		if edges != len(res.Order)-1 {
			return true
		}
	}

	return false
}
