// Package core provides the index-based, undirected adjacency-list Graph used
// by every traversal and builder in travbench.
//
// Vertices are the integers 0..n-1, fixed at construction time. Each vertex
// owns an ordered slice of neighbor indices; AddEdge appends to both
// endpoints, so the adjacency stays symmetric:
//
//	j ∈ Neighbors(i)  ⇔  i ∈ Neighbors(j)
//
// The graph does not suppress self-loops or parallel edges. Calling AddEdge
// twice on the same pair records two edges, and a self-loop appears twice in
// its vertex's own list. Neighbor order is insertion order, which is what makes
// DFS and BFS visit orders deterministic for a given build sequence.
//
// Errors:
//
//	ErrNegativeVertexCount - NewGraph called with n < 0.
//	ErrVertexOutOfRange    - an index outside [0, n) was passed to a method.
//
// Complexity:
//
//   - NewGraph:  O(n)
//   - AddEdge:   amortized O(1)
//   - Neighbors: O(1) (returns the backing slice; do not mutate)
//   - HasEdge:   O(deg(a))
//
// Graph is not safe for concurrent mutation; travbench builds and traverses
// each graph on a single goroutine.
package core
