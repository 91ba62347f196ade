// Package medax extracts a thin, graph-structured spine (the "backbone")
// from a 3-D Euclidean distance transform of an elongated domain and
// derives shape descriptors from it.
//
// What is in the box?
//
//	gridgraph/     ScalarField, VoxelSet, 3-D Laplacian, 26-connected labeling, dilation/erosion
//	ridge/         ridge detection on the EDT and splitting into connected components
//	sphere/        least-squares sphere fit and angular de-duplication of skeleton voxels
//	core/          index-arena weighted undirected Graph with node attributes
//	bfs/, dfs/     traversals, hop shortest paths, components, cycle detection
//	prim_kruskal/  minimum spanning trees with deterministic tie breaking
//	skeleton/      skeleton point sets, graph building, iterative branch pruning
//	shape/         backbone length, tangents, angles, tangent correlation, aspect ratios
//	builder/       fixture graphs: paths, stars, spurs, cycles, random trees
//	pipeline/      configuration, logging and the end-to-end run
//
// Data flows strictly forward:
//
//	EDT ──► ridge ──► components ──► sphere dedup ──► graph+MST ──► backbone ──► metrics
//
// Every stage takes its input by value (or treats it as read-only) and
// returns a freshly allocated output. Degenerate data never produces an
// error: stages fall back to a documented minimal result and report the
// condition through flags and Warn-level log records (see SetLogger).
//
// Components produced by the ridge splitter are independent, so
// pipeline.Run processes them concurrently.
package medax
