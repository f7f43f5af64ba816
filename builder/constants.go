// Package builder defines shared constants used by graph constructors.
package builder

// MinProbability is the inclusive lower bound for RandomSparse's p.
const MinProbability = 0.0

// MaxProbability is the inclusive upper bound for RandomSparse's p.
const MaxProbability = 1.0

// Minimum vertex counts for the deterministic fixtures.
const (
	// MinPathNodes: a path of one vertex is valid and has no edges.
	MinPathNodes = 1
	// MinStarNodes: center plus at least one leaf.
	MinStarNodes = 2
	// MinCycleNodes: smallest ring without loops or parallel edges.
	MinCycleNodes = 3
	// MinCompleteNodes: K_0 is allowed and empty.
	MinCompleteNodes = 0
)

// StarCenter is the hub index used by Star.
const StarCenter = 0
