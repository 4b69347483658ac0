// Package route is the execution harness and comparison engine tying
// the four shortest-path strategies together.
//
// Run executes one named algorithm on a (graph, source, target) triple,
// measures wall-clock time strictly around the search, and re-prices the
// returned path by summing the minimum-length edge between consecutive
// nodes (core.Graph.PathLength). The re-pricing is identical for every
// algorithm, so BFS — which optimizes hops, not meters — still reports
// its path's true summed length and comparisons stay apples-to-apples.
//
// CompareAll runs all four algorithms in a fixed order (Dijkstra, A*,
// BFS, Bellman-Ford) and is partial-failure tolerant: an algorithm that
// finds no path, detects a negative cycle, or fails internally is
// recorded as a Failure and excluded from the derived fastest/shortest
// statistics, while the remaining algorithms still run. Only caller
// misuse — a nil graph, an unknown algorithm name, or endpoints missing
// from the graph — propagates as a hard error.
//
// Both entry points are pure functions of their inputs: the package
// holds no process-wide state, and the graph is only ever read.
//
// Errors (hard, caller misuse only):
//
//	ErrNilGraph         - nil graph pointer.
//	ErrUnknownAlgorithm - algorithm name not one of the four.
//	ErrNodeNotFound     - source or target absent from the graph.
//
// Per-algorithm failures (never hard) surface on Result.Err and keep
// their originating package's sentinel identity, e.g.
// errors.Is(res.Err, bellmanford.ErrNegativeCycle).
package route
