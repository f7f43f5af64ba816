// Package: travbench/builder
//
// impl_fixtures.go - deterministic topologies: Path, Star, Cycle, Complete.
//
// Every fixture emits edges in increasing vertex order so the resulting
// adjacency lists (and therefore traversal orders) are fixed.

package builder

import (
	"github.com/katalvlaran/travbench/core"
)

const (
	methodPath     = "Path"
	methodStar     = "Star"
	methodCycle    = "Cycle"
	methodComplete = "Complete"
)

// Path builds 0–1–…–(n-1).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := checkTarget(methodPath, g, n, MinPathNodes); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(methodPath, g, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star connects StarCenter to each of 1..n-1, in that order.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := checkTarget(methodStar, g, n, MinStarNodes); err != nil {
			return err
		}
		for leaf := 1; leaf < n; leaf++ {
			if err := addEdge(methodStar, g, StarCenter, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds the ring 0–1–…–(n-1)–0.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := checkTarget(methodCycle, g, n, MinCycleNodes); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(methodCycle, g, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds K_n with pairs emitted i asc, j asc, matching the trial
// order of RandomSparse(n, 1).
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := checkTarget(methodComplete, g, n, MinCompleteNodes); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(methodComplete, g, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
