// Package core provides the in-memory weighted, undirected Graph that the
// skeleton stages build, reduce and prune.
//
// The Graph G = (V,E) is an arena of nodes addressed by non-negative int
// IDs. An ID is usually an index into a skeleton point set, so removing a
// node leaves a hole in the arena instead of renumbering the others:
//
//   - Node IDs are stable for the lifetime of a graph and across Clone/Subgraph.
//   - Edges are unordered pairs stored canonically with U < V and a
//     non-negative float64 Weight (the Euclidean length of the bond).
//   - Each node carries an optional attribute map (e.g. AttrRad).
//   - Self-loops and parallel edges are rejected.
//
// Determinism:
//
//   - Nodes(), Neighbors() and Edges() return results in ascending order,
//     so every algorithm built on top iterates reproducibly.
//
// Concurrency:
//
//   - A single sync.RWMutex guards the arena. Pipelines hand graphs from
//     stage to stage by value (Clone) so there is no cross-stage sharing.
//
// Core Methods:
//
//	AddNode(id) error                     // O(1) amortized, idempotent
//	RemoveNode(id) error                  // O(deg(v))
//	AddEdge(u, v, w) error                // O(1)
//	RemoveEdge(u, v) error                // O(1)
//	Weight(u, v) (float64, bool)          // O(1)
//	Degree(id) (int, error)               // O(1)
//	Neighbors(id) ([]int, error)          // O(d log d)
//	Nodes() []int, Edges() []Edge         // sorted
//	Clone() *Graph, Subgraph(ids) *Graph  // deep copies
//
// Errors:
//
//	ErrNegativeID        – node ID below zero
//	ErrNodeNotFound      – missing node
//	ErrEdgeNotFound      – missing edge
//	ErrBadWeight         – negative, NaN or infinite weight
//	ErrLoopNotAllowed    – u == v
//	ErrMultiEdgeNotAllowed – edge already present
package core
