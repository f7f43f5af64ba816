// Package bfs provides breadth-first search over a core.Graph, returning the
// visit order, hop distance and BFS-tree parent of every reached vertex.
//
// What
//
//   - Mark the start vertex and enqueue it.
//   - Repeatedly dequeue a vertex and, for each neighbor in adjacency order,
//     mark and enqueue it if it is not yet marked.
//   - Marking on enqueue guarantees each vertex enters the frontier once.
//
// The frontier is a slice with a moving head index; nothing is copied when
// vertices are dequeued, and the slice is dropped with the walker.
//
// Determinism
//
//	Neighbors come back in insertion order, so for a given graph the visit
//	sequence is fixed. Within one level, vertices appear in the order their
//	parents were dequeued and, per parent, in adjacency order.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0)
//	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2), bfs.WithContext(ctx))
//	path, err := res.PathTo(7)
//
// Errors
//
//   - ErrGraphNil             if g is nil.
//   - ErrStartVertexNotFound  if start is outside [0, V).
//   - ErrOptionViolation      for a negative MaxDepth.
//   - ErrNoPath               from PathTo for an unreached vertex.
//   - context errors and wrapped OnVisit errors.
package bfs
