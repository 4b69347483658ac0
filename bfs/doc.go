// Package bfs implements point-to-point breadth-first search over a
// core.Graph, returning the path with the fewest edges.
//
// BFS ignores edge lengths entirely: it explores nodes level by level
// and returns the first path to reach the target, which is hop-optimal
// but not necessarily length-optimal. Callers comparing BFS against
// weighted strategies should re-price its path with the graph's true
// edge lengths (core.Graph.PathLength does exactly that).
//
// The search stops the moment the target is discovered. An optional
// context (WithContext) allows cancellation of long traversals.
//
// Complexity: O(V + E) time, O(V) space.
//
// Errors:
//
//	ErrNilGraph     - nil graph pointer.
//	ErrNodeNotFound - source or target absent from the graph.
//	ErrNoPath       - target unreachable from the source.
package bfs
