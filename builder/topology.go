package builder

import (
	"fmt"

	"github.com/katalvlaran/medax/core"
)

// Path adds a chain of n ≥ 1 fresh nodes.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("Path: n=%d < min=1: %w", n, ErrTooFewVertices)
		}

		return chain(g, cfg, "Path", span(nextID(g), n)...)
	}
}

// Star adds a hub and n ≥ 1 leaves; the hub takes the first fresh ID.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("Star: n=%d < min=1: %w", n, ErrTooFewVertices)
		}
		hub := nextID(g)
		for _, leaf := range span(hub+1, n) {
			if err := chain(g, cfg, "Star", hub, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Spur hangs a chain of length ≥ 1 fresh nodes off the existing node at.
// Complexity: O(length).
func Spur(at, length int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if length < 1 {
			return fmt.Errorf("Spur: length=%d < min=1: %w", length, ErrTooFewVertices)
		}
		if !g.HasNode(at) {
			return fmt.Errorf("Spur: anchor %d: %w", at, core.ErrNodeNotFound)
		}

		return chain(g, cfg, "Spur", append([]int{at}, span(nextID(g), length)...)...)
	}
}

// Cycle adds a ring of n ≥ 3 fresh nodes.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 3 {
			return fmt.Errorf("Cycle: n=%d < min=3: %w", n, ErrTooFewVertices)
		}
		ids := span(nextID(g), n)

		return chain(g, cfg, "Cycle", append(ids, ids[0])...)
	}
}

// RandomTree adds a uniformly attached random tree on n ≥ 1 fresh nodes:
// node i links to a random earlier node. Requires an RNG.
// Complexity: O(n).
func RandomTree(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("RandomTree: n=%d < min=1: %w", n, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("RandomTree: %w", ErrNeedRandSource)
		}
		base := nextID(g)
		if err := g.AddNode(base); err != nil {
			return fmt.Errorf("RandomTree: AddNode(%d): %w", base, err)
		}
		for i := 1; i < n; i++ {
			parent := base + cfg.rng.Intn(i)
			if err := chain(g, cfg, "RandomTree", parent, base+i); err != nil {
				return err
			}
		}

		return nil
	}
}
