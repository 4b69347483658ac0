// Package bellmanford: sentinel errors.
package bellmanford

import "errors"

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrNodeNotFound indicates the source or target node does not exist.
	ErrNodeNotFound = errors.New("bellmanford: node not found in graph")

	// ErrNegativeCycle indicates a negative cycle is reachable from the
	// source, so shortest-path distances are unbounded below.
	ErrNegativeCycle = errors.New("bellmanford: negative cycle detected")

	// ErrNoPath indicates the target is unreachable from the source.
	ErrNoPath = errors.New("bellmanford: no path to target")
)
