// Package bfs: configuration options and sentinel errors.
package bfs

import (
	"context"
	"errors"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("bfs: graph is nil")

	// ErrNodeNotFound is returned when source or target is absent.
	ErrNodeNotFound = errors.New("bfs: node not found in graph")

	// ErrNoPath is returned when the target is unreachable.
	ErrNoPath = errors.New("bfs: no path to target")
)

// Options holds parameters to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context
}

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// DefaultOptions returns Options with context.Background().
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}
