// Package builder provides deterministic, functional-options style graph
// constructors on top of core.Graph: complete graphs, random graphs, paths,
// grids and graphs decoded from an adjacency map.
//
// The package offers the following key components:
//
//   - BuildGraph(gopts, bopts, cons...): creates a core.Graph and applies
//     constructors in order.
//   - Constructors: Complete, Random, Path, Grid, FromAdjacency.
//   - Vertex-ID schemes (IDFn): DefaultIDFn ("0","1",…), SymbolIDFn ("A"…"Z"),
//     ExcelColumnIDFn ("A"…"Z","AA",…), PrefixIDFn("v") ("v0","v1",…),
//     NamedIDFn(names) for caller-supplied names.
//   - Edge-weight distributions (WeightFn): ConstantWeightFn, UniformWeightFn.
//     Without a WeightFn, edges carry no weight attribute.
//
// Guarantees:
//
//   - Determinism: the same inputs, options and seed yield identical graphs.
//   - Invalid option parameters panic in the option constructor; invalid
//     build parameters are returned as wrapped sentinel errors.
//
// Errors:
//
//   - ErrTooFewVertices     - size parameter below its minimum.
//   - ErrInvalidProbability - p outside [0,1].
//   - ErrNeedRandSource     - a stochastic constructor without WithSeed/WithRand.
//   - ErrBadGraphInput      - malformed adjacency map.
//   - ErrConstructFailed    - nil constructor passed to BuildGraph.
package builder
