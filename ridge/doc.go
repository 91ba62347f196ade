// Package ridge finds medial-axis candidate regions in an EDT field.
//
// Detect marks voxels deep inside the domain (EDT ≥ s·d) whose Laplacian
// is strongly negative (below LaplaceThreshold), intersects them with the
// domain mask and dilates the result once. When nothing survives it falls
// back to the single voxel of minimum filtered Laplacian, so the result is
// never empty.
//
// Split labels the dilated candidates into connected components, keeps
// those with more than MinComponentFactor·d·s voxels and erodes each kept
// component once to undo the dilation. When no component survives it
// returns the fallback voxel of Detect.
package ridge
