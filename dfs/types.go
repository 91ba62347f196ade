package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNotFound indicates that the start node does not exist.
	ErrStartNotFound = errors.New("dfs: start node not found")

	// ErrStop may be returned by OnVisit to end the traversal early.
	// Preorder then returns the partial result and a nil error.
	ErrStop = errors.New("dfs: stop traversal")
)

// Option configures optional behavior of a traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is discovered, after it
	// has been appended to Order. Returning ErrStop ends the walk without
	// error; any other error aborts it.
	OnVisit func(id, depth int) error

	// MaxDepth, if non-negative, limits the walk to the given depth.
	// Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called before descending from curr
	// into neighbor; returning false skips the neighbor.
	FilterNeighbor func(curr, neighbor int) bool
}

// DefaultOptions returns Options with a background context, no hook,
// no depth limit and no filter.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the context. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithMaxDepth limits traversal depth; 0 visits only the start node.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips neighbors for which fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records nodes in discovery (pre-)order.
	Order []int

	// Depth maps each discovered node to its tree depth from the start.
	Depth map[int]int

	// Parent maps each discovered node to the node it was reached from.
	// The start node has no entry.
	Parent map[int]int

	// Stopped is true when OnVisit ended the walk with ErrStop.
	Stopped bool
}
