// Package: travbench/builder
//
// errors.go — sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach context with %w.

package builder

import "errors"

// ErrGraphNil indicates a constructor was applied to a nil *core.Graph.
var ErrGraphNil = errors.New("builder: graph is nil")

// ErrTooFewVertices indicates n is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrGraphSizeMismatch indicates a constructor was asked for more vertices
// than the target graph holds.
var ErrGraphSizeMismatch = errors.New("builder: graph smaller than requested topology")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrConstructFailed indicates BuildGraph received an unusable constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
