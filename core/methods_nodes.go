package core

import "fmt"

// AddNode inserts node id if missing (idempotent).
// Returns ErrNegativeID for id < 0.
// Complexity: O(1) amortized (the arena grows to id+1).
func (g *Graph) AddNode(id int) error {
	if id < 0 {
		return ErrNegativeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addNode(id)

	return nil
}

func (g *Graph) addNode(id int) {
	for len(g.nodes) <= id {
		g.nodes = append(g.nodes, node{})
	}
	if g.nodes[id].alive {
		return
	}
	g.nodes[id] = node{alive: true, attrs: make(map[string]float64), adj: make(map[int]float64)}
	g.nodeCount++
}

// HasNode reports whether id is a live node.
// Complexity: O(1).
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.has(id)
}

func (g *Graph) has(id int) bool {
	return id >= 0 && id < len(g.nodes) && g.nodes[id].alive
}

// RemoveNode deletes id and all incident edges.
// Returns ErrNodeNotFound if id is absent.
// Complexity: O(deg(id)).
func (g *Graph) RemoveNode(id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.has(id) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	g.removeNode(id)

	return nil
}

// RemoveNodes deletes every listed node. It stops at the first missing ID,
// leaving earlier removals applied.
func (g *Graph) RemoveNodes(ids ...int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, id := range ids {
		if !g.has(id) {
			return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
		}
		g.removeNode(id)
	}

	return nil
}

func (g *Graph) removeNode(id int) {
	for nb := range g.nodes[id].adj {
		delete(g.nodes[nb].adj, id)
		g.edgeCount--
	}
	g.nodes[id] = node{}
	g.nodeCount--
}

// Nodes returns live node IDs in ascending order.
// Complexity: O(len(arena)).
func (g *Graph) Nodes() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, 0, g.nodeCount)
	for id := range g.nodes {
		if g.nodes[id].alive {
			out = append(out, id)
		}
	}

	return out
}

// NodeCount returns the number of live nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodeCount
}

// Degree returns the number of edges incident to id.
// Complexity: O(1).
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.has(id) {
		return 0, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return len(g.nodes[id].adj), nil
}

// SetAttr stores a numeric attribute on id.
func (g *Graph) SetAttr(id int, key string, value float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.has(id) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	g.nodes[id].attrs[key] = value

	return nil
}

// Attr reads a numeric attribute; ok is false if id or key is missing.
func (g *Graph) Attr(id int, key string) (value float64, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.has(id) {
		return 0, false
	}
	value, ok = g.nodes[id].attrs[key]

	return value, ok
}
