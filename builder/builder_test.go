package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/travbench/builder"
	"github.com/katalvlaran/travbench/core"
)

// adjacency copies every neighbor list of g.
func adjacency(t *testing.T, g *core.Graph) [][]int {
	t.Helper()
	out := make([][]int, g.VertexCount())
	for v := range out {
		nb, err := g.Neighbors(v)
		require.NoError(t, err)
		out[v] = append([]int(nil), nb...)
	}

	return out
}

// assertSymmetric checks that j appears in adj[i] exactly as often as i appears in adj[j].
func assertSymmetric(t *testing.T, adj [][]int) {
	t.Helper()
	count := func(list []int, x int) int {
		c := 0
		for _, y := range list {
			if y == x {
				c++
			}
		}
		return c
	}
	for i, list := range adj {
		for _, j := range list {
			assert.Equal(t, count(adj[i], j), count(adj[j], i), "asymmetric pair {%d,%d}", i, j)
		}
	}
}

func TestRandomSparse_Invariants(t *testing.T) {
	for _, n := range []int{0, 1, 2, 10, 57} {
		g, err := builder.Random(n, 0.3, builder.WithSeed(int64(n)+1))
		require.NoError(t, err)
		assert.Equal(t, n, g.VertexCount())

		adj := adjacency(t, g)
		for v, list := range adj {
			for _, u := range list {
				assert.True(t, u >= 0 && u < n, "neighbor %d of %d out of range", u, v)
				assert.NotEqual(t, v, u, "RandomSparse never emits self-loops")
			}
		}
		assertSymmetric(t, adj)
	}
}

func TestRandomSparse_ProbabilityOne_IsComplete(t *testing.T) {
	const n = 12
	g, err := builder.Random(n, 1.0, builder.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, n*(n-1)/2, g.EdgeCount())
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				assert.True(t, g.HasEdge(i, j), "missing {%d,%d}", i, j)
			}
		}
	}

	want, err := builder.BuildGraph(n, nil, builder.Complete(n))
	require.NoError(t, err)
	assert.Equal(t, adjacency(t, want), adjacency(t, g), "p=1 must follow the Complete emission order")
}

func TestRandomSparse_ProbabilityZero_IsEmpty(t *testing.T) {
	g, err := builder.Random(50, 0.0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestRandomSparse_SameSeedSameGraph(t *testing.T) {
	a, err := builder.Random(80, 0.1, builder.WithSeed(99))
	require.NoError(t, err)
	b, err := builder.Random(80, 0.1, builder.WithRand(rand.New(rand.NewSource(99))))
	require.NoError(t, err)
	assert.Equal(t, adjacency(t, a), adjacency(t, b))
}

func TestRandomSparse_ExpectedEdgeCount(t *testing.T) {
	const (
		n = 200
		p = 0.1
	)
	g, err := builder.Random(n, p, builder.WithSeed(42))
	require.NoError(t, err)
	expected := p * n * (n - 1) / 2
	assert.InDelta(t, expected, float64(g.EdgeCount()), 0.15*expected)
}

func TestRandomSparse_InvalidProbability(t *testing.T) {
	for _, p := range []float64{-0.01, 1.01, math.NaN(), math.Inf(1)} {
		_, err := builder.Random(5, p, builder.WithSeed(1))
		assert.ErrorIs(t, err, builder.ErrInvalidProbability, "p=%v", p)
	}
}

func TestRandomSparse_NegativeVertices(t *testing.T) {
	_, err := builder.Random(-1, 0.5)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	assert.ErrorIs(t, err, core.ErrNegativeVertexCount)
}

func TestRandomSparse_DirectConstructorErrors(t *testing.T) {
	_, err := builder.BuildGraph(3, nil, builder.RandomSparse(4, 0.5))
	assert.ErrorIs(t, err, builder.ErrGraphSizeMismatch)

	_, err = builder.BuildGraph(3, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestWithRand_NilPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
}

func TestFixtures(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		ctor  builder.Constructor
		wantE int
		adj   [][]int
	}{
		{"Path(4)", 4, builder.Path(4), 3, [][]int{{1}, {0, 2}, {1, 3}, {2}}},
		{"Path(1)", 1, builder.Path(1), 0, [][]int{nil}},
		{"Star(4)", 4, builder.Star(4), 3, [][]int{{1, 2, 3}, {0}, {0}, {0}}},
		{"Cycle(3)", 3, builder.Cycle(3), 3, [][]int{{1, 2}, {0, 2}, {1, 0}}},
		{"Complete(3)", 3, builder.Complete(3), 3, [][]int{{1, 2}, {0, 2}, {0, 1}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.n, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantE, g.EdgeCount())
			assert.Equal(t, tc.adj, adjacency(t, g))
		})
	}
}

func TestFixtures_TooSmall(t *testing.T) {
	for name, ctor := range map[string]builder.Constructor{
		"Path(0)":  builder.Path(0),
		"Star(1)":  builder.Star(1),
		"Cycle(2)": builder.Cycle(2),
	} {
		_, err := builder.BuildGraph(5, nil, ctor)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices, name)
	}
}

func TestBuildGraph_ComposesInOrder(t *testing.T) {
	g, err := builder.BuildGraph(5, nil, builder.Path(3), builder.Star(5))
	require.NoError(t, err)
	nb, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 2, 3, 4}, nb)
	assert.Equal(t, 6, g.EdgeCount())
}
