// Package skeleton turns deduplicated medial-axis samples into a backbone.
//
// What:
//
//   - PointSet: ordered (position, radius) samples of one domain component.
//   - Build: connect every pair of samples closer than (1+tol)·binWidth,
//     weight edges by their Euclidean length, keep the largest connected
//     component and reduce it to a minimum spanning tree. Node IDs are
//     indices into the PointSet; every node carries core.AttrRad.
//   - Endpoints / FindBranches / PruneSmallestBranch: the individual steps
//     of greedy branch pruning.
//   - Extract: repeat pruning on a copy of the tree until a simple path
//     remains, no branch can be found, or the pass budget runs out.
//
// Degenerate inputs never fail: 0 or 1 samples give a graph with that many
// nodes and no edges, and a tree that cannot be reduced to a path is
// returned as-is with Backbone.Simple == false.
//
// Complexity:
//
//   - Build:   O(N²) distance pairs + O(E log E) MST
//   - Extract: O(V+E) per pass, at most V passes
package skeleton
