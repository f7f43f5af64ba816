// Package builder provides functional-options constructors that populate a
// core.Graph with a topology: the Erdős–Rényi-style RandomSparse generator
// used by the benchmark sweep, plus deterministic fixtures (Path, Star, Cycle,
// Complete) for tests and examples.
//
// The package offers:
//
//   - BuildGraph(n, opts, cons...): allocate an n-vertex graph, resolve the
//     options, apply constructors in order.
//   - Random(n, p, opts...): shorthand for BuildGraph(n, opts, RandomSparse(n, p)).
//   - Options: WithSeed, WithRand.
//
// Every constructor operates on the vertex prefix 0..n-1 of the target graph
// and emits edges in a stable, documented order, so a fixed seed reproduces
// the same adjacency lists exactly.
//
// Randomness:
//
//   - WithSeed(seed) / WithRand(r) inject the source; tests use these.
//   - Without either, RandomSparse seeds a fresh source from the clock for
//     every graph, so repeated runs produce different graphs.
//
// Errors:
//
//   - ErrGraphNil             constructor applied to a nil graph.
//   - ErrTooFewVertices       n below the constructor's minimum.
//   - ErrGraphSizeMismatch    n larger than the target graph.
//   - ErrInvalidProbability   p outside [0,1] or NaN.
//   - ErrConstructFailed      nil constructor passed to BuildGraph.
//
// Option constructors panic on nil arguments; constructors themselves never
// panic and only return wrapped sentinels.
package builder
