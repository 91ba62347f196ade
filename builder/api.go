package builder

import (
	"fmt"

	"github.com/katalvlaran/medax/core"
)

// Constructor adds a topology to g.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty graph and applies cons in order.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// nextID returns one past the highest node ID of g (0 for an empty graph).
func nextID(g *core.Graph) int {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return 0
	}

	return nodes[len(nodes)-1] + 1
}

// chain links ids in order with weights from cfg.
func chain(g *core.Graph, cfg builderConfig, method string, ids ...int) error {
	for _, id := range ids {
		if err := g.AddNode(id); err != nil {
			return fmt.Errorf("%s: AddNode(%d): %w", method, id, err)
		}
	}
	for i := 1; i < len(ids); i++ {
		w := cfg.weightFn(cfg.rng)
		if err := g.AddEdge(ids[i-1], ids[i], w); err != nil {
			return fmt.Errorf("%s: AddEdge(%d, %d, w=%g): %w", method, ids[i-1], ids[i], w, err)
		}
	}

	return nil
}

func span(from, n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = from + i
	}

	return ids
}
