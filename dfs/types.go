// Package dfs defines options, sentinel errors and the result type for
// depth-first traversal.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates the start index is outside the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// noParent marks roots and unreached vertices in DFSResult.Parent and
// unreached vertices in DFSResult.Depth.
const noParent = -1

// Option configures DFS behavior.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for a traversal.
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, runs when a vertex is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v int) error

	// FullTraversal restarts from every unvisited vertex in index order.
	FullTraversal bool
}

// DefaultOptions returns background context, no hook, single-source mode.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:           context.Background(),
		OnVisit:       nil,
		FullTraversal: false,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithFullTraversal covers every component (forest traversal).
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order lists vertices in discovery (pre-order) sequence.
	Order []int

	// Visited flags the vertices that were reached.
	Visited []bool

	// Parent holds the discovering vertex, or -1 for roots and unreached vertices.
	Parent []int

	// Depth is the tree depth from the root, or -1 if unreached.
	Depth []int
}

// Reached returns how many vertices were visited.
func (r *DFSResult) Reached() int {
	return len(r.Order)
}

// newResult allocates a result for n vertices with Parent/Depth set to -1.
func newResult(n int) *DFSResult {
	res := &DFSResult{
		Order:   make([]int, 0, n),
		Visited: make([]bool, n),
		Parent:  make([]int, n),
		Depth:   make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.Parent[i] = noParent
		res.Depth[i] = noParent
	}

	return res
}
