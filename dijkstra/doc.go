// Package dijkstra implements point-to-point Dijkstra search on weighted
// graphs with non-negative edge lengths.
//
// Overview:
//
//   - ShortestPath expands nodes in order of increasing accumulated
//     length from the source using a min-heap frontier, and stops as soon
//     as the target is finalized (popped), so only the relevant region of
//     a large road graph is explored.
//   - The returned path is reconstructed from predecessor links; its
//     length is the exact minimum over all directed source→target walks.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is extracted at most once: V extractions from the heap.
//   - Each edge relaxation may push a new entry: up to E pushes.
//   - Each heap operation costs O(log N), N ≤ V + E, simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) for distance and predecessor maps.
//   - O(E) worst-case heap entries under lazy decrease-key.
//
// Preconditions:
//
//   - Edge lengths must be non-negative; the search fails fast with
//     ErrNegativeLength on the first negative edge it touches rather than
//     returning a silently wrong path. Use bellmanford for graphs that
//     may carry negative weights.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph        if the graph pointer is nil.
//   - ErrNodeNotFound    if source or target is absent from the graph.
//   - ErrNegativeLength  if a negative edge length is encountered.
//   - ErrNoPath          if the target is unreachable from the source.
//   - ErrOptionViolation if an invalid Option was supplied.
//
// Determinism: outgoing edges relax in insertion order and a tentative
// distance is replaced only on strict improvement, so repeated runs on
// the same graph return the identical path.
package dijkstra
