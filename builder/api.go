// Package: travbench/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - BuildGraph allocates the graph, resolves options, runs constructors in order.
//   - Topology factories live in impl_*.go and return Constructor closures.
//   - Same n, options, seed and constructor order ⇒ identical adjacency lists.

package builder

import (
	"fmt"

	"github.com/katalvlaran/travbench/core"
)

// Constructor mutates g using the resolved builderConfig. Constructors
// validate their parameters before touching g and return wrapped sentinels.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an n-vertex core.Graph, resolves bopts and applies cons
// in order. The first constructor error is returned wrapped as
// "BuildGraph: %w"; the partially built graph is discarded.
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %w", ErrTooFewVertices, err)
	}

	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Random builds an n-vertex graph whose edges are sampled by RandomSparse(n, p).
func Random(n int, p float64, opts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(n, opts, RandomSparse(n, p))
}

// checkTarget validates the shared preconditions of every constructor:
// non-nil graph, n ≥ min, and n within the graph's vertex range.
func checkTarget(method string, g *core.Graph, n, minN int) error {
	if g == nil {
		return fmt.Errorf("%s: %w", method, ErrGraphNil)
	}
	if n < minN {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minN, ErrTooFewVertices)
	}
	if n > g.VertexCount() {
		return fmt.Errorf("%s: n=%d > vertices=%d: %w", method, n, g.VertexCount(), ErrGraphSizeMismatch)
	}

	return nil
}

// addEdge wraps core errors with the constructor name and endpoints.
func addEdge(method string, g *core.Graph, a, b int) error {
	if err := g.AddEdge(a, b); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, a, b, err)
	}

	return nil
}
