// Package dfs implements single-source and forest depth-first search over a
// core.Graph.
//
// What:
//
//   - DFS(g, start, opts...): explores as deep as possible before
//     backtracking, using an explicit stack of (vertex, neighbor cursor)
//     frames. Depth is bounded by heap, not by the goroutine stack.
//   - DFSRecursive(g, start, opts...): the same traversal written as plain
//     recursion. Kept as the reference the iterative walker is tested
//     against and as a benchmark baseline.
//
// Both variants mark a vertex when it is discovered, then walk its neighbors
// in adjacency (insertion) order and descend into the first unmarked one.
// Order is therefore pre-order and identical between the two.
//
// Only the start vertex's connected component is visited unless
// WithFullTraversal is given, in which case every unvisited vertex in index
// order roots a new tree.
//
// Options:
//
//   - WithContext(ctx)       cancellation, checked once per discovered vertex.
//   - WithOnVisit(fn)        pre-order hook; a non-nil error aborts.
//   - WithFullTraversal()    forest traversal, start is ignored.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for Visited/Parent/Depth and the frame stack.
//
// Errors:
//
//   - ErrGraphNil             g is nil.
//   - ErrStartVertexNotFound  start is not in [0, V).
//   - context errors          ctx is done.
//   - hook errors             wrapped from OnVisit.
package dfs
