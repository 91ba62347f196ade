package core

import (
	"fmt"
	"math"
	"sort"
)

// AddEdge connects u and v with weight w, creating missing endpoints.
//
// Steps:
//  1. Validate IDs, loop and weight.
//  2. Ensure both endpoints exist.
//  3. Reject an existing u–v edge.
//  4. Record the weight in both adjacency maps.
//
// Returns ErrNegativeID, ErrLoopNotAllowed, ErrBadWeight or ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, w float64) error {
	if u < 0 || v < 0 {
		return ErrNegativeID
	}
	if u == v {
		return ErrLoopNotAllowed
	}
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: %v", ErrBadWeight, w)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addNode(u)
	g.addNode(v)
	if _, ok := g.nodes[u].adj[v]; ok {
		return fmt.Errorf("%w: %d-%d", ErrMultiEdgeNotAllowed, u, v)
	}
	g.nodes[u].adj[v] = w
	g.nodes[v].adj[u] = w
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the u–v edge. Returns ErrEdgeNotFound if absent.
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.has(u) || !g.has(v) {
		return fmt.Errorf("%w: %d-%d", ErrEdgeNotFound, u, v)
	}
	if _, ok := g.nodes[u].adj[v]; !ok {
		return fmt.Errorf("%w: %d-%d", ErrEdgeNotFound, u, v)
	}
	delete(g.nodes[u].adj, v)
	delete(g.nodes[v].adj, u)
	g.edgeCount--

	return nil
}

// HasEdge reports whether u and v are adjacent.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.Weight(u, v)
	return ok
}

// Weight returns the weight of the u–v edge.
// Complexity: O(1).
func (g *Graph) Weight(u, v int) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.has(u) || !g.has(v) {
		return 0, false
	}
	w, ok := g.nodes[u].adj[v]

	return w, ok
}

// Neighbors returns IDs adjacent to id in ascending order.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.has(id) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	out := make([]int, 0, len(g.nodes[id].adj))
	for nb := range g.nodes[id].adj {
		out = append(out, nb)
	}
	sort.Ints(out)

	return out, nil
}

// Edges returns all edges sorted by (U, V).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for u := range g.nodes {
		for v, w := range g.nodes[u].adj {
			if u < v {
				out = append(out, Edge{U: u, V: v, Weight: w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// TotalWeight sums all edge weights. The sum is taken in Edges() order so
// it is reproducible bit for bit.
func (g *Graph) TotalWeight() float64 {
	var sum float64
	for _, e := range g.Edges() {
		sum += e.Weight
	}

	return sum
}
