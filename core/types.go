// Package core declares the Graph type, its sentinel errors and the NewGraph
// constructor.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertexCount indicates NewGraph was asked for fewer than zero vertices.
	ErrNegativeVertexCount = errors.New("core: negative vertex count")

	// ErrVertexOutOfRange indicates a vertex index outside [0, VertexCount()).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")
)

// Graph is an undirected graph over the vertex indices 0..n-1.
//
// adjacency[v] holds v's neighbors in insertion order; edges counts AddEdge
// calls, so a duplicate pair contributes twice.
type Graph struct {
	vertices  int
	edges     int
	adjacency [][]int
}

// NewGraph creates a graph with n isolated vertices.
// Returns ErrNegativeVertexCount if n < 0.
// Complexity: O(n)
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNegativeVertexCount, n)
	}

	return &Graph{
		vertices:  n,
		adjacency: make([][]int, n),
	}, nil
}

// vertexErr wraps ErrVertexOutOfRange with the offending index and bound.
func (g *Graph) vertexErr(v int) error {
	return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, g.vertices)
}
