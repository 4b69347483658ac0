// Package astar implements point-to-point A* search on weighted graphs
// with non-negative edge lengths.
//
// A* is Dijkstra's search with the frontier ordered by accumulated
// length plus an admissible estimate of the length still remaining to
// the target. With a good heuristic it finalizes far fewer nodes than
// Dijkstra on large road graphs while returning a path of identical
// length.
//
// Heuristic:
//
//   - The default estimate is the great-circle (haversine) distance from
//     a node's coordinates to the target's coordinates, in the same
//     meters as edge lengths. Roads are never shorter than the
//     straight-line chord, so the default never overestimates and the
//     returned path is optimal.
//   - Whenever either endpoint lacks coordinates the estimate degrades
//     to zero for that node, reducing A* to Dijkstra instead of failing.
//   - WithHeuristic substitutes a caller-supplied estimate; keeping it
//     admissible (never above the true remaining length) is the caller's
//     contract, otherwise the returned path may be suboptimal.
//
// Complexity matches dijkstra: O((V + E) log V) time, O(V + E) space;
// the heuristic only re-orders the frontier.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph        if the graph pointer is nil.
//   - ErrNodeNotFound    if source or target is absent from the graph.
//   - ErrNegativeLength  if a negative edge length is encountered.
//   - ErrNoPath          if the target is unreachable from the source.
package astar
