// Package bellmanford implements the Bellman-Ford single-source
// shortest-path algorithm for a single (source, target) pair over a
// core.Graph.
//
// Unlike dijkstra and astar, Bellman-Ford is correct for arbitrary real
// edge lengths, including negative ones. It relaxes every edge in up to
// |V|−1 passes, stopping early once a full pass makes no improvement,
// then runs one more detection pass: any further improvement from a
// node with a finite distance proves a negative cycle reachable from
// the source, which makes "shortest path" undefined — the search then
// fails with ErrNegativeCycle rather than returning a path. That
// failure is never conflated with ErrNoPath.
//
// Road lengths are non-negative by construction, so on real road data
// this package returns the same paths as dijkstra, just slower; it
// exists for generality of input and as an independent optimality
// witness in comparisons.
//
// Complexity:
//
//   - Time:  O(V · E) worst case; the no-improvement early exit makes
//     well-behaved graphs far cheaper in practice.
//   - Space: O(V + E) for the edge snapshot and distance/predecessor maps.
//
// Errors:
//
//	ErrNilGraph      - nil graph pointer.
//	ErrNodeNotFound  - source or target absent from the graph.
//	ErrNegativeCycle - negative cycle reachable from the source.
//	ErrNoPath        - target unreachable from the source.
package bellmanford
