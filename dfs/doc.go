// Package dfs implements depth-first traversal and cycle detection on a
// core.Graph.
//
// What:
//
//   - Preorder: explores as far as possible along each branch before
//     backtracking and reports nodes in discovery (pre-)order. The walk
//     uses an explicit stack of frames, not recursion, so very long
//     skeleton chains cannot overflow the goroutine stack and a hook can
//     end the walk cleanly by returning ErrStop.
//   - HasCycle: reports whether an undirected graph contains a cycle.
//
// Neighbors are explored in ascending ID order, which makes Preorder match
// the recursive textbook definition exactly.
//
// Complexity:
//
//   - Preorder: Time O(V+E), Memory O(V)
//   - HasCycle: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil         graph pointer is nil
//   - ErrStartNotFound    start node not in graph
//   - context errors      when Ctx is cancelled
//   - hook errors         propagated from OnVisit (except ErrStop)
package dfs
