package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/medax/core"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected, weighted graph.
//
// Steps:
//  1. Validate graph; an empty graph is ErrDisconnected, a single node is a
//     trivial empty tree.
//  2. Collect edges (already sorted by U, V) and stable-sort them by weight.
//  3. Initialize the disjoint-set forest.
//  4. Take each edge whose endpoints lie in different sets; stop at |V|-1.
//  5. Fewer than |V|-1 edges means the graph is disconnected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Edge, float64, error) {
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}
	vertices := graph.Nodes()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	// 2. Edges() is ordered by (U, V); a stable sort keeps that as the tie-break.
	edges := graph.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 3. Disjoint-set forest.
	parent := make(map[int]int, len(vertices))
	rank := make(map[int]int, len(vertices))
	for _, v := range vertices {
		parent[v] = v
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	union := func(a, b int) {
		if rank[a] < rank[b] {
			parent[a] = b
			return
		}
		parent[b] = a
		if rank[a] == rank[b] {
			rank[a]++
		}
	}

	// 4. Greedy selection.
	var (
		mst   = make([]core.Edge, 0, len(vertices)-1)
		total float64
	)
	for _, e := range edges {
		ru, rv := find(e.U), find(e.V)
		if ru == rv {
			continue
		}
		union(ru, rv)
		mst = append(mst, e)
		total += e.Weight
		if len(mst) == len(vertices)-1 {
			break
		}
	}

	// 5. Connectivity check.
	if len(mst) < len(vertices)-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}
