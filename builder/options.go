// Package: travbench/builder
//
// options.go — configuration and functional options.
//
// Contract:
//   • Options mutate builderConfig; later options override earlier ones.
//   • Option constructors panic on nil arguments.
//   • rng == nil means "seed from the clock when randomness is needed".

package builder

import (
	"math/rand"
	"time"
)

// builderConfig aggregates the knobs shared by all constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// rng drives stochastic constructors; nil selects a fresh clock seed.
	rng *rand.Rand
}

// BuilderOption customizes a builderConfig before construction starts.
type BuilderOption func(*builderConfig)

// newBuilderConfig applies opts in order over the zero config.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand supplies an explicit random source. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a deterministic source from seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// randSource returns the configured rng, or a new clock-seeded one.
func (c builderConfig) randSource() *rand.Rand {
	if c.rng != nil {
		return c.rng
	}

	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
