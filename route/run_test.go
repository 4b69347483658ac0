package route_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfind/bellmanford"
	"github.com/katalvlaran/wayfind/core"
	"github.com/katalvlaran/wayfind/route"
)

// buildDiamond: A→B (5), A→C (2), C→B (2), B→D (1).
func buildDiamond() *core.Graph {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 5)
	_, _ = g.AddEdge("A", "C", 2)
	_, _ = g.AddEdge("C", "B", 2)
	_, _ = g.AddEdge("B", "D", 1)

	return g
}

func TestParseAlgorithm(t *testing.T) {
	for _, name := range []string{"Dijkstra", "A*", "BFS", "Bellman-Ford"} {
		a, err := route.ParseAlgorithm(name)
		require.NoError(t, err)
		assert.Equal(t, name, string(a))
	}

	_, err := route.ParseAlgorithm("Floyd-Warshall")
	require.ErrorIs(t, err, route.ErrUnknownAlgorithm)
	_, err = route.ParseAlgorithm("")
	require.ErrorIs(t, err, route.ErrUnknownAlgorithm)
}

func TestRun_CallerErrors(t *testing.T) {
	g := buildDiamond()

	_, err := route.Run(nil, "A", "D", route.Dijkstra)
	require.ErrorIs(t, err, route.ErrNilGraph)

	_, err = route.Run(g, "A", "D", route.Algorithm("Prim"))
	require.ErrorIs(t, err, route.ErrUnknownAlgorithm)

	_, err = route.Run(g, "missing", "D", route.Dijkstra)
	require.ErrorIs(t, err, route.ErrNodeNotFound)
	_, err = route.Run(g, "A", "missing", route.Dijkstra)
	require.ErrorIs(t, err, route.ErrNodeNotFound)
}

// TestRun_WeightedStrategies: Dijkstra, A* and Bellman-Ford all find the
// length-optimal diamond path and agree on the re-priced distance.
func TestRun_WeightedStrategies(t *testing.T) {
	g := buildDiamond()

	for _, algo := range []route.Algorithm{route.Dijkstra, route.AStar, route.BellmanFord} {
		res, err := route.Run(g, "A", "D", algo)
		require.NoError(t, err, "%s", algo)
		require.False(t, res.Failed(), "%s: %v", algo, res.Err)

		assert.Equal(t, algo, res.Algorithm)
		assert.Equal(t, []string{"A", "C", "B", "D"}, res.Path, "%s", algo)
		assert.Equal(t, 5.0, res.Distance, "%s", algo)
		assert.Equal(t, 4, res.NodeCount, "%s", algo)
		assert.GreaterOrEqual(t, res.Elapsed.Nanoseconds(), int64(0), "%s", algo)
	}
}

// TestRun_BFSRepricedWithTrueLengths: BFS optimizes hops, but its
// reported distance is the path's true summed length.
func TestRun_BFSRepricedWithTrueLengths(t *testing.T) {
	g := buildDiamond()

	res, err := route.Run(g, "A", "D", route.BFS)
	require.NoError(t, err)
	require.False(t, res.Failed(), "%v", res.Err)

	assert.Equal(t, []string{"A", "B", "D"}, res.Path)
	assert.Equal(t, 6.0, res.Distance)
	assert.Equal(t, 3, res.NodeCount)
}

// TestRun_NoPathIsAFailedResult: search failure is packaged, not
// propagated as a hard error.
func TestRun_NoPathIsAFailedResult(t *testing.T) {
	g := buildDiamond()

	for _, algo := range route.Algorithms() {
		res, err := route.Run(g, "D", "A", algo)
		require.NoError(t, err, "%s", algo)
		require.True(t, res.Failed(), "%s found a path upstream of one-way edges", algo)
		assert.Nil(t, res.Path, "%s", algo)
		assert.Equal(t, 0.0, res.Distance, "%s", algo)
		assert.Equal(t, 0, res.NodeCount, "%s", algo)
	}
}

// TestRun_NegativeCycleIsDistinct: the Bellman-Ford failure keeps its
// sentinel identity through the harness.
func TestRun_NegativeCycleIsDistinct(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", -2)
	_, _ = g.AddEdge("C", "B", -2)
	_, _ = g.AddEdge("C", "D", 1)

	res, err := route.Run(g, "A", "D", route.BellmanFord)
	require.NoError(t, err)
	require.True(t, res.Failed())
	assert.ErrorIs(t, res.Err, bellmanford.ErrNegativeCycle)
}

// TestRun_Trivial: every strategy prices source == target at 0 over a
// single-node path.
func TestRun_Trivial(t *testing.T) {
	g := buildDiamond()

	for _, algo := range route.Algorithms() {
		res, err := route.Run(g, "C", "C", algo)
		require.NoError(t, err, "%s", algo)
		require.False(t, res.Failed(), "%s: %v", algo, res.Err)
		assert.Equal(t, []string{"C"}, res.Path, "%s", algo)
		assert.Equal(t, 0.0, res.Distance, "%s", algo)
		assert.Equal(t, 1, res.NodeCount, "%s", algo)
	}
}

// TestRun_Deterministic: path and distance are identical across
// repeated runs; only Elapsed may vary.
func TestRun_Deterministic(t *testing.T) {
	g := buildDiamond()

	first, err := route.Run(g, "A", "D", route.Dijkstra)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := route.Run(g, "A", "D", route.Dijkstra)
		require.NoError(t, err)
		assert.Equal(t, first.Path, again.Path)
		assert.Equal(t, first.Distance, again.Distance)
	}
}
