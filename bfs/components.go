package bfs

import (
	"sort"

	"github.com/katalvlaran/medax/core"
)

// Components partitions g into connected components. Each component is
// sorted ascending and components are ordered by their smallest node ID.
// Time: O(V log V + E).
func Components(g *core.Graph) [][]int {
	if g == nil {
		return nil
	}
	seen := make(map[int]bool, g.NodeCount())
	var comps [][]int
	for _, id := range g.Nodes() {
		if seen[id] {
			continue
		}
		res, err := BFS(g, id)
		if err != nil {
			continue
		}
		comp := append([]int(nil), res.Order...)
		for _, v := range comp {
			seen[v] = true
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}

	return comps
}

// Largest returns the biggest connected component of g. Among components of
// equal size the one containing the lowest node ID wins. Returns nil for an
// empty graph.
func Largest(g *core.Graph) []int {
	var best []int
	for _, c := range Components(g) {
		if len(c) > len(best) {
			best = c
		}
	}

	return best
}

// Connected reports whether g has exactly one component. An empty graph is
// not connected.
func Connected(g *core.Graph) bool {
	return len(Components(g)) == 1
}
