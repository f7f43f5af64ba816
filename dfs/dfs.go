// Package dfs implements depth-first search on core.Graph.
//
// The default walker keeps an explicit frame stack so that a 10 000-vertex
// component does not translate into 10 000 nested calls; DFSRecursive in
// recursive.go is the direct recursive form.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/travbench/core"
)

// frame is one pending vertex on the explicit stack: its neighbor list and
// the index of the next neighbor to examine.
type frame struct {
	v    int
	nbs  []int
	next int
}

// dfsWalker encapsulates state during a traversal.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
	stack []frame
}

// DFS performs an iterative depth-first search of g from start.
// With WithFullTraversal every component is covered and start is ignored.
// On abort the partially filled result is returned together with the error.
func DFS(g *core.Graph, start int, opts ...Option) (*DFSResult, error) {
	w, err := newWalker(g, start, opts)
	if err != nil {
		return nil, err
	}

	return w.res, w.run(start, w.traverse)
}

// newWalker validates input, applies options and allocates the result.
func newWalker(g *core.Graph, start int, opts []Option) (*dfsWalker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	if !dopts.FullTraversal && !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	return &dfsWalker{
		graph: g,
		opts:  dopts,
		res:   newResult(g.VertexCount()),
	}, nil
}

// run drives traverse over one tree, or over every unvisited root in
// forest mode.
func (w *dfsWalker) run(start int, traverse func(root int) error) error {
	if !w.opts.FullTraversal {
		return traverse(start)
	}
	for v := 0; v < w.graph.VertexCount(); v++ {
		if !w.res.Visited[v] {
			if err := traverse(v); err != nil {
				return err
			}
		}
	}

	return nil
}

// discover marks v visited under parent at depth, records it in Order and
// fires the hooks. It is shared by both walkers so their bookkeeping matches.
func (w *dfsWalker) discover(v, parent, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Visited[v] = true
	w.res.Parent[v] = parent
	w.res.Depth[v] = depth
	w.res.Order = append(w.res.Order, v)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	return nil
}

// push discovers v and places its frame on the stack.
func (w *dfsWalker) push(v, parent, depth int) error {
	if err := w.discover(v, parent, depth); err != nil {
		return err
	}
	nbs, err := w.graph.Neighbors(v)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%d): %w", v, err)
	}
	w.stack = append(w.stack, frame{v: v, nbs: nbs})

	return nil
}

// traverse walks the tree rooted at root using the frame stack.
// The top frame always advances its cursor before a child is pushed, so when
// the child's subtree is exhausted the parent resumes at its next neighbor,
// exactly where the recursive form would return to.
func (w *dfsWalker) traverse(root int) error {
	w.stack = w.stack[:0]
	if err := w.push(root, noParent, 0); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if top.next == len(top.nbs) {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}

		u := top.nbs[top.next]
		top.next++
		if w.res.Visited[u] {
			continue
		}
		if err := w.push(u, top.v, w.res.Depth[top.v]+1); err != nil {
			return err
		}
	}

	return nil
}
