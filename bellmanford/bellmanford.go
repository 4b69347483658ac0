// Package bellmanford implements relaxation-based shortest paths with
// negative-cycle detection.
package bellmanford

import (
	"fmt"

	"github.com/katalvlaran/wayfind/core"
)

// ShortestPath computes the minimum-length directed path from source to
// target in g, tolerating negative edge lengths.
//
// Returns the path (node IDs, source to target inclusive), its
// accumulated length, and an error per the package sentinels. When
// source == target the trivial single-node path is returned at cost 0
// (unless a reachable negative cycle invalidates the graph as a whole).
//
// Complexity: O(V · E) time, O(V + E) space.
func ShortestPath(g *core.Graph, source, target string) ([]string, float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, 0, fmt.Errorf("%w: source %q", ErrNodeNotFound, source)
	}
	if !g.HasNode(target) {
		return nil, 0, fmt.Errorf("%w: target %q", ErrNodeNotFound, target)
	}

	// One deterministic snapshot of the edge list; every pass iterates
	// it in the same order.
	edges := g.Edges()
	n := g.NodeCount()

	dist := make(map[string]float64, n)
	prev := make(map[string]string, n)
	dist[source] = 0

	// Up to |V|−1 relaxation passes; a pass without improvement means
	// all shortest distances are already final.
	for pass := 1; pass < n; pass++ {
		if !relaxAll(edges, dist, prev) {
			break
		}
	}

	// Detection pass: any further improvement from a finite tail proves
	// a negative cycle reachable from the source.
	for _, e := range edges {
		du, ok := dist[e.From]
		if !ok {
			continue
		}
		if cur, seen := dist[e.To]; !seen || du+e.Length < cur {
			return nil, 0, fmt.Errorf("%w: via edge %s→%s", ErrNegativeCycle, e.From, e.To)
		}
	}

	if source == target {
		return []string{source}, 0, nil
	}
	if _, ok := dist[target]; !ok {
		return nil, 0, fmt.Errorf("%w: %q→%q", ErrNoPath, source, target)
	}

	// Reconstruct target→source via predecessor links and reverse.
	path := []string{target}
	for cur := target; cur != source; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], nil
}

// relaxAll performs one relaxation pass over the edge snapshot and
// reports whether any distance improved. Only strict improvements are
// taken, so equal-length alternatives keep the first discovery and the
// resulting path is deterministic.
func relaxAll(edges []core.Edge, dist map[string]float64, prev map[string]string) bool {
	improved := false
	for _, e := range edges {
		du, ok := dist[e.From]
		if !ok {
			continue
		}
		nd := du + e.Length
		if cur, seen := dist[e.To]; !seen || nd < cur {
			dist[e.To] = nd
			prev[e.To] = e.From
			improved = true
		}
	}

	return improved
}
