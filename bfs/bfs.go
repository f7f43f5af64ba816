// Package bfs provides breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/travbench/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	ctx   context.Context
	queue []int
	head  int
	res   *BFSResult
}

// BFS runs breadth-first search on g from start.
// Returns ErrGraphNil, ErrOptionViolation or ErrStartVertexNotFound for
// invalid input; on abort the partial result is returned with the error.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		res: &BFSResult{
			Order:   make([]int, 0, n),
			Visited: make([]bool, n),
			Depth:   make([]int, n),
			Parent:  make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = unreached
		w.res.Parent[i] = unreached
	}

	w.enqueue(start, 0, unreached)

	return w.res, w.loop()
}

// enqueue marks v at depth d under parent and appends it to the frontier.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Visited[v] = true
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, v)
}

// loop processes the frontier until it is empty, a hook fails, or ctx is done.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v := w.queue[w.head]
		w.head++

		w.res.Order = append(w.res.Order, v)
		if err := w.opts.OnVisit(v, w.res.Depth[v]); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
		}
		if err := w.enqueueNeighbors(v); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors marks and enqueues each unmarked neighbor of v that is
// within MaxDepth.
func (w *walker) enqueueNeighbors(v int) error {
	nbs, err := w.graph.Neighbors(v)
	if err != nil {
		return fmt.Errorf("bfs: Neighbors(%d): %w", v, err)
	}

	next := w.res.Depth[v] + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, u := range nbs {
		if !w.res.Visited[u] {
			w.enqueue(u, next, v)
		}
	}

	return nil
}
