// Package dijkstra: configuration options and sentinel errors.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound indicates the source or target node does not exist.
	ErrNodeNotFound = errors.New("dijkstra: node not found in graph")

	// ErrNegativeLength indicates a negative edge length was encountered;
	// Dijkstra's invariants do not hold under negative weights.
	ErrNegativeLength = errors.New("dijkstra: negative edge length encountered")

	// ErrNoPath indicates the target is unreachable from the source.
	ErrNoPath = errors.New("dijkstra: no path to target")

	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Options configures the behavior of ShortestPath.
//
// MaxDistance – cap on accumulated length to explore; nodes whose best
// distance would exceed it are skipped. Must be ≥ 0. Default is +Inf
// (no cap).
type Options struct {
	MaxDistance float64

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithMaxDistance sets a maximum accumulated-length threshold; nodes
// beyond it are not explored, and a target beyond it reports ErrNoPath.
// Negative values surface as ErrOptionViolation when the search runs.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative, got %g", ErrOptionViolation, max)
			return
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct with sensible defaults:
// no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}
