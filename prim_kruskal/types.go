package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/medax/core"
)

// ErrInvalidGraph indicates a nil graph or an unknown MST method.
var ErrInvalidGraph = errors.New("prim_kruskal: invalid graph or method")

// ErrDisconnected indicates that a spanning tree covering all nodes cannot be formed.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrRootNotFound indicates that the Prim root does not exist.
var ErrRootNotFound = errors.New("prim_kruskal: root node not found")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the start node for Prim. A negative Root selects the
	// smallest node ID. Unused by Kruskal.
	Root int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets the starting node for Prim.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns Kruskal with an automatic Prim root.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   -1,
	}
}

// Compute dispatches to Kruskal or Prim based on opts.Method.
//
// Returns the MST edges (empty for a single node), their total weight,
// or an error if the tree cannot be built.
func Compute(graph *core.Graph, opts MSTOptions) ([]core.Edge, float64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, opts.Root)
	default:
		return nil, 0, fmt.Errorf("%w: method %q", ErrInvalidGraph, opts.Method)
	}
}

// Tree computes the MST of graph and returns it as a new graph holding
// every node of graph (IDs and attributes preserved) and only the tree edges.
func Tree(graph *core.Graph, opts ...Option) (*core.Graph, float64, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	edges, total, err := Compute(graph, o)
	if err != nil {
		return nil, 0, err
	}

	// 1. Copy nodes with attributes and no edges.
	tree := graph.Subgraph(graph.Nodes())
	for _, e := range tree.Edges() {
		if err = tree.RemoveEdge(e.U, e.V); err != nil {
			return nil, 0, err
		}
	}
	// 2. Insert tree edges.
	for _, e := range edges {
		if err = tree.AddEdge(e.U, e.V, e.Weight); err != nil {
			return nil, 0, err
		}
	}

	return tree, total, nil
}
