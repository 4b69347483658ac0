// Package bfs implements fewest-hop search for a single (source, target)
// pair over a core.Graph.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/wayfind/core"
)

// walker encapsulates mutable BFS state. The queue holds discovered
// node IDs in level order; hop counts fall out of the parent links.
type walker struct {
	graph   *core.Graph
	opts    Options
	target  string
	queue   []string
	visited map[string]bool
	parent  map[string]string
	found   bool
}

// ShortestPath runs breadth-first search from source and returns the
// fewest-hop path to target, counting edges rather than lengths.
// When source == target the trivial single-node path is returned.
// Returns ErrNilGraph or ErrNodeNotFound for invalid input, ErrNoPath
// when the frontier exhausts without reaching the target, or the
// context's error if cancelled via WithContext.
//
// Complexity: O(V + E) time, O(V) space.
func ShortestPath(g *core.Graph, source, target string, opts ...Option) ([]string, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: source %q", ErrNodeNotFound, source)
	}
	if !g.HasNode(target) {
		return nil, fmt.Errorf("%w: target %q", ErrNodeNotFound, target)
	}
	if source == target {
		return []string{source}, nil
	}

	w := &walker{
		graph:   g,
		opts:    o,
		target:  target,
		queue:   []string{source},
		visited: map[string]bool{source: true},
		parent:  make(map[string]string),
	}

	if err := w.loop(); err != nil {
		return nil, err
	}
	if !w.found {
		return nil, fmt.Errorf("%w: %q→%q", ErrNoPath, source, target)
	}

	return w.pathTo(source), nil
}

// loop processes the queue until the target is discovered, the queue
// empties, or the context is cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 && !w.found {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		id := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.expand(id); err != nil {
			return err
		}
	}

	return nil
}

// expand enqueues each unseen neighbor of id, recording parent links.
// Discovery order follows edge insertion order, so ties between
// equal-hop paths resolve identically on every run.
func (w *walker) expand(id string) error {
	neighbors, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("bfs: failed to get neighbors of %q: %w", id, err)
	}
	for _, e := range neighbors {
		if w.visited[e.To] {
			continue
		}
		w.visited[e.To] = true
		w.parent[e.To] = id
		if e.To == w.target {
			w.found = true
			return nil
		}
		w.queue = append(w.queue, e.To)
	}

	return nil
}

// pathTo reconstructs target→source via parent links and reverses.
func (w *walker) pathTo(source string) []string {
	path := []string{w.target}
	for cur := w.target; cur != source; {
		cur = w.parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
