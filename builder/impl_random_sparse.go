// Package: travbench/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.
//
// Model:
//   - One Bernoulli trial per unordered pair {i,j}, 0 ≤ i < j < n.
//   - Edge added iff rng.Float64() < p; Float64 is in [0,1), so p=1 always
//     adds and p=0 never does.
//
// Contract:
//   - n ≥ 0 (else ErrTooFewVertices); n ≤ g.VertexCount() (else ErrGraphSizeMismatch).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability, NaN included).
//   - Trials run i asc, then j asc; for a fixed seed the adjacency lists are identical.
//
// Complexity:
//   - Time: O(n²) trials. Space: O(1) extra.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/travbench/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 0
)

// RandomSparse returns a Constructor that samples each of the n(n-1)/2
// possible edges independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkTarget(methodRandomSparse, g, n, minRandomSparseVertices); err != nil {
			return err
		}
		if err := ValidateProbability(p); err != nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, err)
		}

		rng := cfg.randSource()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng.Float64() < p {
					if err := addEdge(methodRandomSparse, g, i, j); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// ValidateProbability reports ErrInvalidProbability unless p ∈ [MinProbability, MaxProbability].
func ValidateProbability(p float64) error {
	if math.IsNaN(p) || p < MinProbability || p > MaxProbability {
		return fmt.Errorf("p=%g not in [%.1f,%.1f]: %w", p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}
