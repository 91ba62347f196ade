package core

// Clone returns a deep copy: nodes (with the same IDs), attributes and edges.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{nodes: make([]node, len(g.nodes)), nodeCount: g.nodeCount, edgeCount: g.edgeCount}
	for id, n := range g.nodes {
		if !n.alive {
			continue
		}
		c.nodes[id] = copyNode(n, nil)
	}

	return c
}

// Subgraph returns the induced subgraph on ids: the listed live nodes, their
// attributes and every edge with both endpoints listed. Missing IDs are skipped.
// Complexity: O(|ids| + sum of their degrees).
func (g *Graph) Subgraph(ids []int) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	keep := make(map[int]bool, len(ids))
	for _, id := range ids {
		if g.has(id) {
			keep[id] = true
		}
	}
	c := &Graph{}
	for id := range keep {
		for len(c.nodes) <= id {
			c.nodes = append(c.nodes, node{})
		}
		c.nodes[id] = copyNode(g.nodes[id], keep)
		c.nodeCount++
		c.edgeCount += len(c.nodes[id].adj)
	}
	c.edgeCount /= 2

	return c
}

// copyNode duplicates n; if keep is non-nil only neighbors in keep survive.
func copyNode(n node, keep map[int]bool) node {
	out := node{
		alive: true,
		attrs: make(map[string]float64, len(n.attrs)),
		adj:   make(map[int]float64, len(n.adj)),
	}
	for k, v := range n.attrs {
		out.attrs[k] = v
	}
	for nb, w := range n.adj {
		if keep == nil || keep[nb] {
			out.adj[nb] = w
		}
	}

	return out
}
