// Package builder produces deterministic fixture graphs for walk and
// corruption pipelines: paths, cycles, stars, complete graphs, Erdős–Rényi
// graphs and planted-partition graphs.
//
// Graphs are gonum weighted graphs (simple.WeightedUndirectedGraph or
// simple.WeightedDirectedGraph) so they feed straight into csr.FromGonum.
//
// The package offers:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds RNG, node-ID scheme and weight function.
//   - Constructors (Constructor closures composed by BuildGraph):
//     – Path, Cycle, Star, Complete, RandomSparse, RandomPartition.
//   - Edge-weight distributions (WeightFn):
//     – DefaultWeightFn, ConstantWeightFn, UniformWeightFn, ExponentialWeightFn.
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed ⇒ identical graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return sentinel errors (errors.Is) and never panic.
//
// Typical use:
//
//	g, err := builder.BuildGraph(false, []builder.BuilderOption{builder.WithSeed(7)},
//		builder.RandomPartition([]int{100, 100, 100}, 0.1, 0.01))
//	src, ids, err := csr.FromGonum(g)
package builder
