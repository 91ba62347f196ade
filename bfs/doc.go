// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order, plus the connected-component
// and unweighted shortest-path helpers the skeleton stages rely on.
//
// BFS explores nodes in increasing hop distance from a start node, visiting
// neighbors in ascending ID order, so every result is deterministic.
//
// Complexity:
//
//   - BFS, ShortestPath: Time O(V+E), Memory O(V)
//   - Components:        Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil          graph pointer is nil
//   - ErrStartNotFound     start node not in graph
//   - ErrOptionViolation   invalid option (e.g. negative depth)
//   - ErrNoPath            destination not reachable
//   - context errors       when Ctx is cancelled
package bfs
