package bench

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/travbench/builder"
	"github.com/katalvlaran/travbench/logging"
)

// DFS walker names accepted in SweepConfig.DFS.
const (
	DFSIterative = "iterative"
	DFSRecursive = "recursive"
)

// DefaultEdgeProbability is the inclusion probability of every candidate edge.
const DefaultEdgeProbability = 0.1

// DefaultSizes returns the vertex counts swept when nothing is configured.
func DefaultSizes() []int {
	return []int{1, 10, 20, 50, 100, 1000, 5000, 10000}
}

// Configuration errors.
var (
	ErrNoSizes               = errors.New("bench: no sizes configured")
	ErrInvalidSize           = errors.New("bench: size must be at least 1")
	ErrStartVertexOutOfRange = errors.New("bench: start vertex outside smallest graph")
	ErrUnknownDFS            = errors.New("bench: unknown dfs walker")
	ErrUnknownKey            = errors.New("bench: unknown configuration key")

	// ErrInvalidProbability is the builder sentinel, re-exported so callers
	// of this package need not import builder.
	ErrInvalidProbability = builder.ErrInvalidProbability
)

// SweepConfig parameterizes one benchmark run.
type SweepConfig struct {
	// Sizes are the vertex counts, run in order.
	Sizes []int `toml:"sizes"`

	// EdgeProbability is p for builder.RandomSparse.
	EdgeProbability float64 `toml:"edge_probability"`

	// StartVertex roots both traversals; it must exist in every graph.
	StartVertex int `toml:"start_vertex"`

	// Seed fixes the random source for the whole sweep; 0 draws a fresh
	// clock seed for every graph.
	Seed int64 `toml:"seed"`

	// DFS selects the walker: DFSIterative (default) or DFSRecursive.
	DFS string `toml:"dfs"`
}

// Config is the layout of a travbench TOML file.
type Config struct {
	Sweep   SweepConfig    `toml:"sweep"`
	Logging logging.Config `toml:"logging"`
}

// DefaultSweep returns the built-in sweep.
func DefaultSweep() SweepConfig {
	return SweepConfig{
		Sizes:           DefaultSizes(),
		EdgeProbability: DefaultEdgeProbability,
		StartVertex:     0,
		Seed:            0,
		DFS:             DFSIterative,
	}
}

// DefaultConfig returns the built-in sweep with stderr logging at WARNING,
// so a default run prints nothing but the report.
func DefaultConfig() *Config {
	return &Config{
		Sweep: DefaultSweep(),
		Logging: logging.Config{
			MaxSize: 10,
			MaxAge:  7,
			Level:   "warning",
		},
	}
}

// LoadConfig decodes the TOML file at path over DefaultConfig, so missing
// keys keep their defaults, then validates the sweep.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("bench: decoding %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w in %s: %s", ErrUnknownKey, path, strings.Join(keys, ", "))
	}
	if err = cfg.Sweep.Validate(); err != nil {
		return nil, fmt.Errorf("bench: %s: %w", path, err)
	}

	return cfg, nil
}

// Validate fails fast on the first invalid field.
func (c SweepConfig) Validate() error {
	if len(c.Sizes) == 0 {
		return ErrNoSizes
	}
	smallest := c.Sizes[0]
	for i, n := range c.Sizes {
		if n < 1 {
			return fmt.Errorf("%w: sizes[%d]=%d", ErrInvalidSize, i, n)
		}
		if n < smallest {
			smallest = n
		}
	}
	if err := builder.ValidateProbability(c.EdgeProbability); err != nil {
		return fmt.Errorf("edge_probability: %w", err)
	}
	if c.StartVertex < 0 || c.StartVertex >= smallest {
		return fmt.Errorf("%w: start_vertex=%d, smallest size=%d", ErrStartVertexOutOfRange, c.StartVertex, smallest)
	}
	switch c.DFS {
	case "", DFSIterative, DFSRecursive:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDFS, c.DFS)
	}

	return nil
}
