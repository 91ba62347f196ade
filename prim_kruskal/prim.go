package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/medax/core"
)

// Prim computes the MST by growing outwards from root using a min-heap.
// A negative root selects the smallest node ID.
//
// Steps:
//  1. Validate graph and root.
//  2. Mark root visited and push its incident edges.
//  3. Pop the lightest edge; skip it if its far end is visited, otherwise
//     accept it, mark the far end and push its edges to unvisited nodes.
//  4. Fewer than |V|-1 accepted edges means the graph is disconnected.
//
// Returned edges are normalized so that U < V.
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(graph *core.Graph, root int) ([]core.Edge, float64, error) {
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}
	vertices := graph.Nodes()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if root < 0 {
		root = vertices[0]
	}
	if !graph.HasNode(root) {
		return nil, 0, fmt.Errorf("%w: %d", ErrRootNotFound, root)
	}
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	n := len(vertices)
	visited := make(map[int]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var total float64

	pq := &edgePQ{}
	heap.Init(pq)
	push := func(u int) {
		nbs, _ := graph.Neighbors(u)
		for _, v := range nbs {
			if visited[v] {
				continue
			}
			w, _ := graph.Weight(u, v)
			heap.Push(pq, candidate{from: u, to: v, weight: w})
		}
	}

	visited[root] = true
	push(root)
	for pq.Len() > 0 && len(mst) < n-1 {
		c := heap.Pop(pq).(candidate)
		if visited[c.to] {
			continue
		}
		visited[c.to] = true
		e := core.Edge{U: c.from, V: c.to, Weight: c.weight}
		if e.U > e.V {
			e.U, e.V = e.V, e.U
		}
		mst = append(mst, e)
		total += c.weight
		push(c.to)
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// candidate is a heap entry: an edge leaving the visited set.
type candidate struct {
	from, to int
	weight   float64
}

// edgePQ is a min-heap of candidates ordered by (weight, from, to).
type edgePQ []candidate

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	if a.from != b.from {
		return a.from < b.from
	}

	return a.to < b.to
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(candidate)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
