package bench

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/travbench/bfs"
	"github.com/katalvlaran/travbench/builder"
	"github.com/katalvlaran/travbench/core"
	"github.com/katalvlaran/travbench/dfs"
	"github.com/katalvlaran/travbench/logging"
)

// dfsFunc is the signature shared by dfs.DFS and dfs.DFSRecursive.
type dfsFunc func(*core.Graph, int, ...dfs.Option) (*dfs.DFSResult, error)

// Runner executes a sweep, writing report lines to out as each sample
// completes.
type Runner struct {
	cfg  SweepConfig
	out  io.Writer
	log  *logging.Logger
	now  func() time.Time
	walk dfsFunc
}

// RunnerOption customizes a Runner.
type RunnerOption func(*Runner)

// WithLogger sends per-sample diagnostics to l.
func WithLogger(l *logging.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithClock replaces time.Now; tests use it to get fixed durations.
func WithClock(now func() time.Time) RunnerOption {
	return func(r *Runner) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRunner validates cfg and returns a Runner reporting to out.
func NewRunner(cfg SweepConfig, out io.Writer, opts ...RunnerOption) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{
		cfg:  cfg,
		out:  out,
		log:  logging.Discard(),
		now:  time.Now,
		walk: dfs.DFS,
	}
	if cfg.DFS == DFSRecursive {
		r.walk = dfs.DFSRecursive
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Run executes every configured size in order. It stops at the first error,
// returning the measurements completed so far.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	var bopts []builder.BuilderOption
	if r.cfg.Seed != 0 {
		bopts = append(bopts, builder.WithRand(rand.New(rand.NewSource(r.cfg.Seed))))
	}

	report := make(Report, 0, len(r.cfg.Sizes))
	for _, size := range r.cfg.Sizes {
		m, err := r.sample(ctx, size, bopts)
		if err != nil {
			return report, fmt.Errorf("bench: size %d: %w", size, err)
		}
		report = append(report, m)

		if err = WriteMeasurement(r.out, m); err != nil {
			return report, fmt.Errorf("bench: writing report: %w", err)
		}
		r.log.Infof("size %s: %s edges, DFS reached %s in %v, BFS reached %s in %v",
			humanize.Comma(int64(m.Size)), humanize.Comma(int64(m.Edges)),
			humanize.Comma(int64(m.DFSReached)), m.DFS,
			humanize.Comma(int64(m.BFSReached)), m.BFS)
	}

	return report, nil
}

// sample builds one graph and times both traversals over it. Graph
// construction is outside the timed sections.
func (r *Runner) sample(ctx context.Context, size int, bopts []builder.BuilderOption) (Measurement, error) {
	m := Measurement{Size: size}

	g, err := builder.Random(size, r.cfg.EdgeProbability, bopts...)
	if err != nil {
		return m, err
	}
	m.Edges = g.EdgeCount()
	r.log.Debugf("built graph: %d vertices, %s edges", size, humanize.Comma(int64(m.Edges)))

	start := r.now()
	dres, err := r.walk(g, r.cfg.StartVertex, dfs.WithContext(ctx))
	m.DFS = r.now().Sub(start)
	if err != nil {
		return m, err
	}
	m.DFSReached = dres.Reached()

	start = r.now()
	bres, err := bfs.BFS(g, r.cfg.StartVertex, bfs.WithContext(ctx))
	m.BFS = r.now().Sub(start)
	if err != nil {
		return m, err
	}
	m.BFSReached = bres.Reached()

	if m.DFSReached != m.BFSReached {
		r.log.Warningf("size %d: DFS reached %d vertices but BFS reached %d", size, m.DFSReached, m.BFSReached)
	}

	return m, nil
}
