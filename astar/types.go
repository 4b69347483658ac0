// Package astar: configuration options and sentinel errors.
package astar

import "errors"

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNodeNotFound indicates the source or target node does not exist.
	ErrNodeNotFound = errors.New("astar: node not found in graph")

	// ErrNegativeLength indicates a negative edge length was encountered.
	ErrNegativeLength = errors.New("astar: negative edge length encountered")

	// ErrNoPath indicates the target is unreachable from the source.
	ErrNoPath = errors.New("astar: no path to target")
)

// Heuristic estimates the remaining length from node id to target, in
// the same units as edge lengths. It must never overestimate the true
// remaining length (admissibility) for the search to stay optimal.
type Heuristic func(id, target string) float64

// Options configures the behavior of ShortestPath.
type Options struct {
	// Heuristic overrides the default haversine estimate when non-nil.
	Heuristic Heuristic
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithHeuristic substitutes a caller-supplied remaining-length estimate.
// A nil fn keeps the default. Admissibility is the caller's contract.
func WithHeuristic(fn Heuristic) Option {
	return func(o *Options) {
		if fn != nil {
			o.Heuristic = fn
		}
	}
}

// DefaultOptions returns an Options struct with the default haversine
// heuristic (selected at run time, when the graph is known).
func DefaultOptions() Options {
	return Options{}
}
