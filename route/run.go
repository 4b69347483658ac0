package route

import (
	"fmt"
	"time"

	"github.com/katalvlaran/wayfind/astar"
	"github.com/katalvlaran/wayfind/bellmanford"
	"github.com/katalvlaran/wayfind/bfs"
	"github.com/katalvlaran/wayfind/core"
	"github.com/katalvlaran/wayfind/dijkstra"
)

// Run executes one algorithm on the (g, source, target) triple and
// packages a Result.
//
// The returned error is reserved for caller misuse (ErrNilGraph,
// ErrUnknownAlgorithm, ErrNodeNotFound) and fails fast before any
// search begins. Search failures — no path, negative cycle, internal
// error — are converted into a Result with Err set and do not surface
// as the second return value.
//
// Elapsed is measured strictly around the algorithm invocation; graph
// access for validation and re-pricing is excluded. Distance is always
// recomputed by core.Graph.PathLength over the returned node sequence,
// independent of whatever weight the algorithm optimized internally.
func Run(g *core.Graph, source, target string, algo Algorithm) (Result, error) {
	if err := validate(g, source, target, algo); err != nil {
		return Result{}, err
	}

	start := time.Now()
	path, err := invoke(g, source, target, algo)
	elapsed := time.Since(start)

	res := Result{Algorithm: algo, Elapsed: elapsed}
	if err != nil {
		res.Err = err
		return res, nil
	}

	dist, err := g.PathLength(path)
	if err != nil {
		// The algorithm returned a sequence the graph cannot price; treat
		// it as an internal failure of this run, not a caller error.
		res.Err = fmt.Errorf("route: re-pricing %s path: %w", algo, err)
		return res, nil
	}
	res.Path = path
	res.Distance = dist
	res.NodeCount = len(path)

	return res, nil
}

// validate fails fast on caller misuse, before any search runs.
func validate(g *core.Graph, source, target string, algo Algorithm) error {
	if g == nil {
		return ErrNilGraph
	}
	if _, err := ParseAlgorithm(string(algo)); err != nil {
		return err
	}
	if !g.HasNode(source) {
		return fmt.Errorf("%w: source %q", ErrNodeNotFound, source)
	}
	if !g.HasNode(target) {
		return fmt.Errorf("%w: target %q", ErrNodeNotFound, target)
	}

	return nil
}

// invoke dispatches to the algorithm package. Distances reported by the
// weighted searches are discarded; Run re-prices every path the same way.
func invoke(g *core.Graph, source, target string, algo Algorithm) ([]string, error) {
	switch algo {
	case Dijkstra:
		path, _, err := dijkstra.ShortestPath(g, source, target)
		return path, err
	case AStar:
		path, _, err := astar.ShortestPath(g, source, target)
		return path, err
	case BFS:
		return bfs.ShortestPath(g, source, target)
	case BellmanFord:
		path, _, err := bellmanford.ShortestPath(g, source, target)
		return path, err
	default:
		// validate has already rejected unknown names.
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}
}
