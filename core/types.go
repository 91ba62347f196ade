package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeID indicates a node ID below zero.
	ErrNegativeID = errors.New("core: node ID is negative")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite and non-negative")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// AttrRad is the node attribute holding the local inscribed radius.
const AttrRad = "rad"

// Edge is an undirected weighted connection, stored with U < V.
type Edge struct {
	// U is the smaller endpoint ID.
	U int

	// V is the larger endpoint ID.
	V int

	// Weight is the Euclidean distance between the endpoints.
	Weight float64
}

// Other returns the endpoint of e that is not id.
func (e Edge) Other(id int) int {
	if e.U == id {
		return e.V
	}
	return e.U
}

// node is one arena slot.
type node struct {
	alive bool
	attrs map[string]float64
	adj   map[int]float64 // neighbor ID → weight
}

// GraphOption configures a Graph at construction.
type GraphOption func(g *Graph)

// WithNodes pre-populates nodes 0..n-1.
func WithNodes(n int) GraphOption {
	return func(g *Graph) {
		for i := 0; i < n; i++ {
			g.addNode(i)
		}
	}
}

// Graph is an undirected weighted graph over an arena of int-addressed nodes.
// mu guards every field below it.
type Graph struct {
	mu sync.RWMutex

	nodes     []node
	nodeCount int
	edgeCount int
}

// NewGraph creates an empty Graph and applies opts in order.
// Complexity: O(1) plus option cost.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
