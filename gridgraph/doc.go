// Package gridgraph treats a dense 3-D voxel grid as an implicit graph,
// enabling ridge filtering, morphology and connected-component analysis.
//
// What:
//
//   - ScalarField pairs a Euclidean distance transform (EDT) with a same-shaped
//     occupancy mask. It is immutable once built.
//   - VoxelSet is a boolean grid (a set of voxel coordinates) with 6-, 18- or
//     26-connected neighborhoods.
//   - Laplacian computes the discrete 7-point Laplacian of the EDT with a
//     reflecting border (the edge value is repeated outside the grid).
//   - Dilate / Erode implement binary morphology with the full neighborhood
//     as structuring element; voxels outside the grid count as "off".
//   - ConnectedComponents labels contiguous regions, ordered by the row-major
//     index of their first voxel.
//   - SyntheticTube builds analytic fields around a polyline for demos and tests.
//
// Indexing:
//
//	Voxels are stored row-major with X slowest and Z fastest:
//	index = (X·NY + Y)·NZ + Z
//
// Complexity:
//
//   - Laplacian:           O(N)
//   - Dilate, Erode:       O(N·d), d = 6, 18 or 26
//   - ConnectedComponents: O(N·d), Memory O(N)
//
// Errors:
//
//   - ErrEmptyGrid:      a dimension is not positive.
//   - ErrShapeMismatch:  EDT or mask length differs from the shape volume.
//   - ErrNegativeEDT:    an EDT value is negative or NaN.
package gridgraph
