package bench_test

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/katalvlaran/travbench/bench"
)

// ExampleRunner sweeps two sizes with a fixed seed and a fake clock that
// makes every timed section last 250µs.
func ExampleRunner() {
	cfg := bench.SweepConfig{
		Sizes:           []int{1, 100},
		EdgeProbability: bench.DefaultEdgeProbability,
		Seed:            1,
	}
	tick := time.Unix(0, 0)
	clock := func() time.Time {
		tick = tick.Add(250 * time.Microsecond)
		return tick
	}

	r, err := bench.NewRunner(cfg, os.Stdout, bench.WithClock(clock))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if _, err = r.Run(context.Background()); err != nil {
		fmt.Println("error:", err)
	}

	// Output:
	// Network Size: 1
	// DFS Time: 0.00025 seconds
	// BFS Time: 0.00025 seconds
	// Network Size: 100
	// DFS Time: 0.00025 seconds
	// BFS Time: 0.00025 seconds
}
