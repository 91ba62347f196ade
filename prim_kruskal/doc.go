// Package prim_kruskal computes minimum spanning trees of undirected,
// float-weighted core.Graph values.
//
// What:
//
//   - Kruskal: sort all edges by (weight, U, V) and merge components with
//     a disjoint-set forest (path compression + union by rank).
//   - Prim: grow the tree from a root using a min-heap of candidate edges.
//   - Tree: run the selected method and materialize the result as a new
//     core.Graph that keeps the original node IDs and attributes.
//
// Both algorithms are deterministic: ties are broken by the ordered edge
// pair, so the same input always yields the same tree.
//
// Complexity:
//
//   - Kruskal: O(E log E + α(V)·E) time, O(V+E) memory
//   - Prim:    O(E log V) time, O(V+E) memory
//
// Errors:
//
//   - ErrInvalidGraph   nil graph or unknown method
//   - ErrDisconnected   the graph is empty or not connected
//   - ErrRootNotFound   the Prim root is not a node of the graph
package prim_kruskal
