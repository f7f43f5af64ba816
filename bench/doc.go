// Package bench runs the DFS/BFS timing sweep.
//
// For each configured vertex count a Runner builds a fresh random graph with
// builder.RandomSparse, times one DFS and one BFS from the start vertex, and
// writes a three-line block to its output:
//
//	Network Size: 1000
//	DFS Time: 0.000734 seconds
//	BFS Time: 0.000412 seconds
//
// Graphs are never shared between samples. SweepConfig carries the sizes,
// edge probability, start vertex, seed and DFS walker; DefaultSweep matches
// the classic run of sizes 1 through 10000 at p = 0.1 from vertex 0.
// LoadConfig reads the same settings, plus logging, from a TOML file.
package bench
