// Package travbench measures how long depth-first and breadth-first search
// take over random undirected graphs of increasing size.
//
// Layout:
//
//	core/          — index-based undirected adjacency list (Graph, AddEdge, Neighbors)
//	builder/       — RandomSparse(n, p) generator plus Path/Star/Cycle/Complete fixtures
//	dfs/           — pre-order DFS: explicit-stack walker and recursive reference
//	bfs/           — level-order BFS with parent/depth tracking and PathTo
//	bench/         — sweep configuration (TOML), timed runner, console report
//	logging/       — leveled logger writing to stderr or a rotating file
//	cmd/travbench/ — the benchmark binary
//
// Quick start:
//
//	go run ./cmd/travbench
//	go run ./cmd/travbench -config sweep.toml
//
// Every sample builds a fresh graph with each of the n(n-1)/2 possible edges
// present with probability p, then times one DFS and one BFS from the start
// vertex. Pass a non-zero seed to make the graphs reproducible.
package travbench
