// Package builder assembles core.Graph topologies from composable
// constructors: chains, stars, cycles, spurs hung off existing nodes and
// random trees. It feeds tests and benchmarks of the skeleton tooling with
// graphs whose branch structure is known in advance.
//
// Constructors run in order on one graph. Each allocates fresh node IDs
// after the current highest ID, except Spur and Cycle which also reference
// existing nodes. Edge weights come from the configured WeightFn (constant
// 1 by default); stochastic constructors require WithSeed or WithRand.
//
// Example:
//
//	// 0─1─2─3─4─5─6─7─8─9 with a two-node spur 10─11 on node 5
//	g, err := builder.BuildGraph(nil, builder.Path(10), builder.Spur(5, 2))
package builder
