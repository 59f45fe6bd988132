// Package builder provides deterministic, functional-options graph
// constructors used to produce MST inputs for tests, benchmarks and the
// mstctl generate command.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds RNG, ID scheme and weight function.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//     – PaddedIDFn(w):     zero-padded decimals ("007"), sortable as strings.
//     – SymbolNumberIDFn:  prefix + index ("v0","v1",…).
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:     constant DefaultEdgeWeight.
//     – ConstantWeightFn:    fixed user-provided value.
//     – UniformWeightFn:     uniform in [min,max).
//     – IntegerWeightFn:     integers in [min,max]; produces many ties.
//     – ExponentialWeightFn: exponential with the given rate.
//   - Topologies (Constructor factories):
//     – Path, Cycle, Star, Complete, Grid.
//     – RandomSparse(n, p):       G(n,p), possibly disconnected.
//     – RandomConnected(n, extra): random spanning tree plus extra edges.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return wrapped sentinels
//     (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
//     ErrConstructFailed) usable with errors.Is.
//   - Same options, same seed and same constructor order give identical graphs,
//     edge IDs included.
//   - Weights are drawn only for weighted graphs; unweighted graphs get 0.
//
// Example:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithWeighted()},
//		[]builder.BuilderOption{builder.WithSeed(42), builder.WithIntegerWeight(1, 10)},
//		builder.RandomConnected(1000, 4000),
//	)
package builder
