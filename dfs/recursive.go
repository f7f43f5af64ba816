package dfs

import (
	"fmt"

	"github.com/katalvlaran/travbench/core"
)

// DFSRecursive performs the same traversal as DFS with one call frame per
// tree level. Recursion depth can reach the component size, so prefer DFS
// for large dense graphs.
func DFSRecursive(g *core.Graph, start int, opts ...Option) (*DFSResult, error) {
	w, err := newWalker(g, start, opts)
	if err != nil {
		return nil, err
	}

	return w.res, w.run(start, func(root int) error {
		return w.recurse(root, noParent, 0)
	})
}

// recurse marks v, then descends into each unmarked neighbor in order.
func (w *dfsWalker) recurse(v, parent, depth int) error {
	if err := w.discover(v, parent, depth); err != nil {
		return err
	}

	nbs, err := w.graph.Neighbors(v)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%d): %w", v, err)
	}
	for _, u := range nbs {
		if !w.res.Visited[u] {
			if err = w.recurse(u, v, depth+1); err != nil {
				return err
			}
		}
	}

	return nil
}
