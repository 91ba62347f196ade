package bfs

import (
	"fmt"

	"github.com/katalvlaran/medax/core"
)

// BFS runs breadth-first search on g from start.
// Returns ErrGraphNil, ErrStartNotFound, ErrOptionViolation, a context error,
// or any OnVisit error (wrapped).
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	n := g.NodeCount()
	res := &Result{
		Order:  make([]int, 0, n),
		Depth:  make(map[int]int, n),
		Parent: make(map[int]int, n),
	}
	queue := make([]int, 0, n)
	queue = append(queue, start)
	res.Depth[start] = 0

	for qi := 0; qi < len(queue); qi++ {
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}

		u := queue[qi]
		d := res.Depth[u]
		res.Order = append(res.Order, u)
		if err := o.OnVisit(u, d); err != nil {
			return res, fmt.Errorf("bfs: OnVisit error at %d: %w", u, err)
		}
		if o.MaxDepth > 0 && d+1 > o.MaxDepth {
			continue
		}
		nbs, err := g.Neighbors(u)
		if err != nil {
			return res, err
		}
		for _, v := range nbs {
			if _, seen := res.Depth[v]; seen || !o.FilterNeighbor(u, v) {
				continue
			}
			res.Depth[v] = d + 1
			res.Parent[v] = u
			queue = append(queue, v)
		}
	}

	return res, nil
}

// ShortestPath returns the minimum-hop path from→to, inclusive of both ends.
// Edge weights are ignored.
func ShortestPath(g *core.Graph, from, to int) ([]int, error) {
	res, err := BFS(g, from)
	if err != nil {
		return nil, err
	}

	return res.PathTo(to)
}
