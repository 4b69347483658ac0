package route_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfind/bellmanford"
	"github.com/katalvlaran/wayfind/core"
	"github.com/katalvlaran/wayfind/route"
)

func TestCompareAll_CallerErrors(t *testing.T) {
	_, err := route.CompareAll(nil, "A", "D")
	require.ErrorIs(t, err, route.ErrNilGraph)

	g := buildDiamond()
	_, err = route.CompareAll(g, "missing", "D")
	require.ErrorIs(t, err, route.ErrNodeNotFound)
	_, err = route.CompareAll(g, "A", "missing")
	require.ErrorIs(t, err, route.ErrNodeNotFound)
}

// TestCompareAll_Diamond: all four succeed; the weighted strategies tie
// at 5 while BFS pays 6 for its two-hop route, so Shortest is never BFS.
func TestCompareAll_Diamond(t *testing.T) {
	g := buildDiamond()

	report, err := route.CompareAll(g, "A", "D")
	require.NoError(t, err)
	require.Len(t, report.Results, 4)
	assert.Empty(t, report.Failures)
	assert.False(t, report.AllFailed())

	// Fixed execution order.
	order := make([]route.Algorithm, 0, 4)
	for _, res := range report.Results {
		order = append(order, res.Algorithm)
	}
	assert.Equal(t, route.Algorithms(), order)

	byAlgo := make(map[route.Algorithm]route.Result, 4)
	for _, res := range report.Results {
		byAlgo[res.Algorithm] = res
	}
	for _, algo := range []route.Algorithm{route.Dijkstra, route.AStar, route.BellmanFord} {
		assert.Equal(t, 5.0, byAlgo[algo].Distance, "%s", algo)
		assert.Equal(t, 4, byAlgo[algo].NodeCount, "%s", algo)
	}
	assert.Equal(t, 6.0, byAlgo[route.BFS].Distance)
	assert.Equal(t, 3, byAlgo[route.BFS].NodeCount)

	require.NotNil(t, report.Fastest)
	require.NotNil(t, report.Shortest)
	assert.Equal(t, 5.0, report.Shortest.Distance)
	assert.NotEqual(t, route.BFS, report.Shortest.Algorithm)
}

// TestCompareAll_PartialFailure: a negative cycle hangs off a region
// the frontier searches never reach before finalizing the target, so
// Dijkstra, A* and BFS succeed while Bellman-Ford — which always scans
// the whole edge list — detects the cycle and is excluded.
func TestCompareAll_PartialFailure(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("A", "X", 1000)
	_, _ = g.AddEdge("X", "Y", -10)
	_, _ = g.AddEdge("Y", "X", -10)

	report, err := route.CompareAll(g, "A", "B")
	require.NoError(t, err)

	require.Len(t, report.Results, 3)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, route.BellmanFord, report.Failures[0].Algorithm)
	assert.ErrorIs(t, report.Failures[0].Err, bellmanford.ErrNegativeCycle)

	// Statistics derive only from the three successes.
	require.NotNil(t, report.Fastest)
	require.NotNil(t, report.Shortest)
	assert.Equal(t, 1.0, report.Shortest.Distance)
	for _, res := range report.Results {
		assert.NotEqual(t, route.BellmanFord, res.Algorithm)
		assert.Equal(t, []string{"A", "B"}, res.Path, "%s", res.Algorithm)
	}
}

// TestCompareAll_TotalFailure: an unreachable target fails all four and
// yields no derived statistics.
func TestCompareAll_TotalFailure(t *testing.T) {
	g := buildDiamond()

	report, err := route.CompareAll(g, "D", "A")
	require.NoError(t, err)

	assert.Empty(t, report.Results)
	require.Len(t, report.Failures, 4)
	assert.True(t, report.AllFailed())
	assert.Nil(t, report.Fastest)
	assert.Nil(t, report.Shortest)
}
