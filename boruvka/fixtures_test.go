package boruvka_test

import (
	"math/bits"
	"sort"
	"strconv"
	"testing"

	"github.com/katalvlaran/boruvka/builder"
	"github.com/katalvlaran/boruvka/core"
	"github.com/stretchr/testify/require"
)

type wedge struct {
	u, v int
	w    float64
}

// newIntGraph builds a weighted graph over vertices "0".."n-1" and adds the
// edges in order, so the i-th edge gets ID "e<i+1>".
func newIntGraph(t testing.TB, n int, edges []wedge) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(strconv.Itoa(i)))
	}
	for _, e := range edges {
		_, err := g.AddEdge(strconv.Itoa(e.u), strconv.Itoa(e.v), e.w)
		require.NoError(t, err)
	}

	return g
}

// fixtureG is the 7-vertex graph whose MST is
// (2,4,2),(4,5,1),(0,3,5),(3,5,6),(1,4,7),(4,6,9), weight 30.
func fixtureG(t testing.TB) *core.Graph {
	return newIntGraph(t, 7, []wedge{
		{0, 1, 12}, {1, 2, 8}, {1, 3, 10}, {0, 3, 5}, {1, 4, 7}, {2, 4, 2},
		{3, 4, 15}, {3, 5, 6}, {4, 5, 1}, {4, 6, 9}, {5, 6, 11},
	})
}

// fixtureT is the 9-vertex textbook graph with MST weight 37.
func fixtureT(t testing.TB) *core.Graph {
	return newIntGraph(t, 9, []wedge{
		{0, 1, 4}, {0, 7, 8}, {1, 7, 11}, {1, 2, 8}, {7, 8, 7},
		{7, 6, 1}, {2, 8, 2}, {2, 5, 4}, {2, 3, 7}, {8, 6, 6},
		{6, 5, 2}, {3, 5, 14}, {3, 4, 9}, {5, 4, 10},
	})
}

// halvingPath builds a path 0..n-1 where edge (i,i+1) weighs
// TrailingZeros(i+1)+1. Every contraction round merges exactly pairs of
// neighbours, so n (a power of two) halves per round.
func halvingPath(t testing.TB, n int) *core.Graph {
	edges := make([]wedge, 0, n-1)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, wedge{i, i + 1, float64(bits.TrailingZeros(uint(i+1)) + 1)})
	}

	return newIntGraph(t, n, edges)
}

// twoTriangles builds two disjoint weighted triangles {0,1,2} and {3,4,5}.
func twoTriangles(t testing.TB) *core.Graph {
	return newIntGraph(t, 6, []wedge{
		{0, 1, 1}, {1, 2, 2}, {0, 2, 3},
		{3, 4, 1}, {4, 5, 2}, {3, 5, 3},
	})
}

// randomConnected builds a seeded connected graph with integer weights,
// which produces many ties.
func randomConnected(t testing.TB, seed int64, n, extra int) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithIntegerWeight(1, 20)},
		builder.RandomConnected(n, extra),
	)
	require.NoError(t, err)

	return g
}

// keyStrings returns the sorted "U-V" keys of edges.
func keyStrings(edges []core.Edge) []string {
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		lo, hi := e.Endpoints()
		out = append(out, lo+"-"+hi)
	}
	sort.Strings(out)

	return out
}

// edgeIDs returns the edge IDs sorted by core.EdgeIDLess.
func edgeIDs(edges []core.Edge) []string {
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.ID)
	}
	sort.Slice(out, func(i, j int) bool { return core.EdgeIDLess(out[i], out[j]) })

	return out
}
