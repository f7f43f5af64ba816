package core

// VertexCount returns the number of vertices n.
func (g *Graph) VertexCount() int {
	return g.vertices
}

// EdgeCount returns the number of AddEdge calls that succeeded,
// counting duplicates and self-loops once each.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// HasVertex reports whether v is a valid index for g.
func (g *Graph) HasVertex(v int) bool {
	return v >= 0 && v < g.vertices
}

// AddEdge records the undirected edge {a, b}: b is appended to a's neighbors
// and a to b's. Self-loops and duplicates are not filtered.
// Returns ErrVertexOutOfRange if either endpoint is invalid; the graph is
// left untouched in that case.
// Complexity: amortized O(1)
func (g *Graph) AddEdge(a, b int) error {
	if !g.HasVertex(a) {
		return g.vertexErr(a)
	}
	if !g.HasVertex(b) {
		return g.vertexErr(b)
	}

	g.adjacency[a] = append(g.adjacency[a], b)
	g.adjacency[b] = append(g.adjacency[b], a)
	g.edges++

	return nil
}

// Neighbors returns v's neighbor indices in insertion order.
// The returned slice aliases internal storage and must not be modified.
func (g *Graph) Neighbors(v int) ([]int, error) {
	if !g.HasVertex(v) {
		return nil, g.vertexErr(v)
	}

	return g.adjacency[v], nil
}

// Degree returns the length of v's neighbor list.
func (g *Graph) Degree(v int) (int, error) {
	if !g.HasVertex(v) {
		return 0, g.vertexErr(v)
	}

	return len(g.adjacency[v]), nil
}

// HasEdge reports whether b appears in a's neighbor list.
// Invalid indices simply report false.
// Complexity: O(deg(a))
func (g *Graph) HasEdge(a, b int) bool {
	if !g.HasVertex(a) || !g.HasVertex(b) {
		return false
	}
	for _, n := range g.adjacency[a] {
		if n == b {
			return true
		}
	}

	return false
}
