// Package dijkstra implements Dijkstra's shortest-path algorithm for a
// single (source, target) pair over a core.Graph.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/wayfind/core"
)

// ShortestPath computes the minimum-length directed path from source to
// target in g. It accepts functional options (WithMaxDistance) to bound
// the search.
//
// Returns:
//
//   - path: node IDs from source to target inclusive; [source] when
//     source == target.
//   - dist: the accumulated length of path.
//   - err:  see package sentinel errors.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain source and target (ErrNodeNotFound).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func ShortestPath(g *core.Graph, source, target string, opts ...Option) ([]string, float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, 0, cfg.err
	}
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, 0, fmt.Errorf("%w: source %q", ErrNodeNotFound, source)
	}
	if !g.HasNode(target) {
		return nil, 0, fmt.Errorf("%w: target %q", ErrNodeNotFound, target)
	}

	// Trivial path: a node reaches itself at zero cost.
	if source == target {
		return []string{source}, 0, nil
	}

	r := &runner{
		g:       g,
		options: cfg,
		source:  source,
		target:  target,
		dist:    make(map[string]float64),
		prev:    make(map[string]string),
		visited: make(map[string]bool),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, 0, err
	}

	return r.reconstruct()
}

// runner holds the mutable state for a single point-to-point execution.
type runner struct {
	g       *core.Graph // read-only input graph
	options Options
	source  string
	target  string
	dist    map[string]float64 // node ID → best-known length from source
	prev    map[string]string  // node ID → predecessor on that path
	visited map[string]bool    // node ID → distance finalized
	pq      nodePQ             // lazy min-heap frontier
}

// init seeds the frontier with the source at distance 0.
func (r *runner) init() {
	r.dist[r.source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.source, dist: 0})
}

// process pops the closest frontier node, finalizes it, and relaxes its
// outgoing edges, until the target is finalized or the frontier empties.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// Stale lazy-decrease-key entry: a shorter route to u was
		// already finalized.
		if r.visited[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		// Early exit: once the target is popped its distance is final.
		if u == r.target {
			return nil
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve the tentative distance of every neighbor of
// u, pushing improved entries onto the frontier.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, e := range neighbors {
		if e.Length < 0 {
			return fmt.Errorf("%w: edge %s→%s length=%g", ErrNegativeLength, e.From, e.To, e.Length)
		}
		newDist := r.dist[u] + e.Length
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict improvement only: equal-length routes keep the first
		// discovery, which makes tie-breaking deterministic.
		if cur, ok := r.dist[e.To]; ok && newDist >= cur {
			continue
		}
		r.dist[e.To] = newDist
		r.prev[e.To] = u
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: newDist})
	}

	return nil
}

// reconstruct follows predecessor links target→source and reverses.
func (r *runner) reconstruct() ([]string, float64, error) {
	if !r.visited[r.target] {
		return nil, 0, fmt.Errorf("%w: %q→%q", ErrNoPath, r.source, r.target)
	}

	path := []string{r.target}
	for cur := r.target; cur != r.source; {
		cur = r.prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, r.dist[r.target], nil
}

// nodeItem pairs a node with its tentative distance from the source.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, used with
// the lazy-decrease-key pattern: improved distances push duplicates, and
// stale entries are skipped when popped (checked via visited).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int           { return len(pq) }
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element; called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
