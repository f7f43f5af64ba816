// Command travbench times depth-first and breadth-first search over random
// undirected graphs of increasing size.
//
// With no arguments it sweeps 1, 10, 20, 50, 100, 1000, 5000 and 10000
// vertices at edge probability 0.1, starting both traversals at vertex 0.
// A TOML file given with -config can override the sweep and logging.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/katalvlaran/travbench/bench"
	"github.com/katalvlaran/travbench/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}

// run parses args, loads configuration and executes the sweep, writing the
// report to stdout and diagnostics to stderr (or the configured log file).
func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("travbench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "TOML file with [sweep] and [logging] sections")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := bench.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = bench.LoadConfig(*configPath); err != nil {
			return err
		}
	}

	logger, err := cfg.Logging.NewLogger(stderr)
	if err != nil {
		return err
	}
	defer logger.Close()
	logging.SetDefault(logger)

	runner, err := bench.NewRunner(cfg.Sweep, stdout, bench.WithLogger(logger))
	if err != nil {
		return err
	}

	began := time.Now()
	report, err := runner.Run(context.Background())
	if err != nil {
		return err
	}
	logger.Infof("swept %d sizes in %v", len(report), time.Since(began))

	return nil
}
