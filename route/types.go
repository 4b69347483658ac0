// Package route: Algorithm enumeration, Result/Report value types, and
// sentinel errors.
package route

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for harness-level (caller) failures.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("route: graph is nil")

	// ErrUnknownAlgorithm indicates an algorithm name outside the four
	// supported strategies; it fails fast before any search begins.
	ErrUnknownAlgorithm = errors.New("route: unknown algorithm")

	// ErrNodeNotFound indicates the source or target node is absent.
	ErrNodeNotFound = errors.New("route: node not found in graph")
)

// Algorithm names one of the four supported route strategies. The
// values are the user-facing names callers dispatch on.
type Algorithm string

// The four supported strategies.
const (
	Dijkstra    Algorithm = "Dijkstra"
	AStar       Algorithm = "A*"
	BFS         Algorithm = "BFS"
	BellmanFord Algorithm = "Bellman-Ford"
)

// Algorithms returns the four strategies in the fixed order CompareAll
// runs them. The returned slice is a fresh copy.
func Algorithms() []Algorithm {
	return []Algorithm{Dijkstra, AStar, BFS, BellmanFord}
}

// ParseAlgorithm maps a user-facing name to its Algorithm, or
// ErrUnknownAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch a := Algorithm(name); a {
	case Dijkstra, AStar, BFS, BellmanFord:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Result is the outcome of one algorithm run. It is created fresh per
// invocation and never mutated after being returned.
//
// On success Path holds the node sequence source→target, Distance its
// re-priced summed length, and NodeCount len(Path). On failure Err
// holds the originating package's error and Path/Distance/NodeCount are
// zero-valued.
type Result struct {
	Algorithm Algorithm
	Path      []string
	Distance  float64
	Elapsed   time.Duration
	NodeCount int
	Err       error
}

// Failed reports whether the run produced no usable path.
func (r Result) Failed() bool { return r.Err != nil }

// Failure records an algorithm excluded from a comparison and why.
type Failure struct {
	Algorithm Algorithm
	Err       error
}

// Report is the outcome of one CompareAll invocation, built once and
// never mutated after construction.
//
// Results holds the succeeded runs in execution order; Failures the
// excluded ones. Fastest and Shortest point into Results (minimum
// Elapsed and minimum Distance respectively) and are nil when no
// algorithm succeeded.
type Report struct {
	Results  []Result
	Failures []Failure
	Fastest  *Result
	Shortest *Result
}

// AllFailed reports total failure: no strategy found a viable path.
func (r *Report) AllFailed() bool { return len(r.Results) == 0 }
