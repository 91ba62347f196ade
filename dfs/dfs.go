package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/medax/core"
)

// frame is one level of the explicit DFS stack: a node and the index of
// the next neighbor to try.
type frame struct {
	id   int
	nbs  []int
	next int
}

// Preorder walks g depth-first from start and returns nodes in discovery order.
//
// Steps:
//  1. Validate graph and start node; apply options.
//  2. Discover start (hook, depth 0) and push its frame.
//  3. Loop: take the top frame; advance to its next unvisited, unfiltered
//     neighbor; discover and push it. When a frame is exhausted, pop it.
//  4. Stop on context cancellation, hook error, or ErrStop.
//
// Complexity: O(V+E) time, O(V) memory.
func Preorder(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
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

	// discover records id and pushes its frame; done reports a clean stop.
	var stack []frame
	discover := func(id, depth int) (done bool, err error) {
		res.Order = append(res.Order, id)
		res.Depth[id] = depth
		if o.OnVisit != nil {
			if err = o.OnVisit(id, depth); err != nil {
				if errors.Is(err, ErrStop) {
					res.Stopped = true
					return true, nil
				}
				return true, fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
			}
		}
		if o.MaxDepth >= 0 && depth >= o.MaxDepth {
			return false, nil
		}
		nbs, err := g.Neighbors(id)
		if err != nil {
			return true, err
		}
		stack = append(stack, frame{id: id, nbs: nbs})

		return false, nil
	}

	if done, err := discover(start, 0); done || err != nil {
		return res, err
	}
	for len(stack) > 0 {
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}

		top := &stack[len(stack)-1]
		if top.next >= len(top.nbs) {
			stack = stack[:len(stack)-1]
			continue
		}
		nb := top.nbs[top.next]
		top.next++
		if _, seen := res.Depth[nb]; seen {
			continue
		}
		if o.FilterNeighbor != nil && !o.FilterNeighbor(top.id, nb) {
			continue
		}
		res.Parent[nb] = top.id
		if done, err := discover(nb, res.Depth[top.id]+1); done || err != nil {
			return res, err
		}
	}

	return res, nil
}
