package builder_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/travbench/builder"
)

// BenchmarkRandomSparse measures generation at p=0.1 for the sweep sizes
// that finish quickly enough to repeat.
func BenchmarkRandomSparse(b *testing.B) {
	for _, n := range []int{100, 1000} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = builder.Random(n, 0.1, builder.WithSeed(int64(i)))
			}
		})
	}
}
