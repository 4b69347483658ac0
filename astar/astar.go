// Package astar implements A* shortest-path search for a single
// (source, target) pair over a core.Graph.
package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/wayfind/core"
	"github.com/katalvlaran/wayfind/geodist"
)

// ShortestPath computes the minimum-length directed path from source to
// target in g, guided by an admissible heuristic (haversine distance to
// the target by default, see WithHeuristic).
//
// Returns the path (node IDs, source to target inclusive), its
// accumulated length, and an error per the package sentinels. When
// source == target the trivial single-node path is returned at cost 0.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func ShortestPath(g *core.Graph, source, target string, opts ...Option) ([]string, float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
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
	if source == target {
		return []string{source}, 0, nil
	}

	h := cfg.Heuristic
	if h == nil {
		h = haversineHeuristic(g)
	}

	s := &search{
		g:       g,
		h:       h,
		source:  source,
		target:  target,
		dist:    make(map[string]float64),
		prev:    make(map[string]string),
		visited: make(map[string]bool),
	}
	s.dist[source] = 0
	heap.Init(&s.pq)
	heap.Push(&s.pq, &frontierItem{id: source, priority: h(source, target)})

	if err := s.process(); err != nil {
		return nil, 0, err
	}

	return s.reconstruct()
}

// haversineHeuristic builds the default estimate: great-circle meters
// from a node to the target, or 0 when either lacks coordinates (the
// search then degrades to Dijkstra for that node rather than failing).
func haversineHeuristic(g *core.Graph) Heuristic {
	return func(id, target string) float64 {
		lat1, lon1, ok := g.Coords(id)
		if !ok {
			return 0
		}
		lat2, lon2, ok := g.Coords(target)
		if !ok {
			return 0
		}

		return geodist.Haversine(lat1, lon1, lat2, lon2)
	}
}

// search holds the mutable state for a single A* execution.
type search struct {
	g       *core.Graph
	h       Heuristic
	source  string
	target  string
	dist    map[string]float64 // node ID → best-known length from source (g-score)
	prev    map[string]string  // node ID → predecessor on that path
	visited map[string]bool    // node ID → g-score finalized
	pq      frontierPQ         // lazy min-heap ordered by g + h
}

// process pops the lowest-priority frontier node, finalizes it, and
// relaxes its outgoing edges, until the target is finalized or the
// frontier empties.
func (s *search) process() error {
	for s.pq.Len() > 0 {
		item := heap.Pop(&s.pq).(*frontierItem)
		u := item.id

		if s.visited[u] {
			continue
		}
		s.visited[u] = true

		// With an admissible heuristic the target's g-score is final
		// the moment it is popped.
		if u == s.target {
			return nil
		}

		neighbors, err := s.g.Neighbors(u)
		if err != nil {
			return fmt.Errorf("astar: failed to get neighbors of %q: %w", u, err)
		}
		for _, e := range neighbors {
			if e.Length < 0 {
				return fmt.Errorf("%w: edge %s→%s length=%g", ErrNegativeLength, e.From, e.To, e.Length)
			}
			newDist := s.dist[u] + e.Length
			if cur, ok := s.dist[e.To]; ok && newDist >= cur {
				continue
			}
			s.dist[e.To] = newDist
			s.prev[e.To] = u
			// An admissible but inconsistent heuristic can finalize a
			// node before its best g-score is known; a strictly better
			// route re-opens it so optimality rests on admissibility
			// alone.
			delete(s.visited, e.To)
			heap.Push(&s.pq, &frontierItem{
				id:       e.To,
				priority: newDist + s.h(e.To, s.target),
			})
		}
	}

	return nil
}

// reconstruct follows predecessor links target→source and reverses.
func (s *search) reconstruct() ([]string, float64, error) {
	if !s.visited[s.target] {
		return nil, 0, fmt.Errorf("%w: %q→%q", ErrNoPath, s.source, s.target)
	}

	path := []string{s.target}
	for cur := s.target; cur != s.source; {
		cur = s.prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, s.dist[s.target], nil
}

// frontierItem pairs a node with its g+h priority.
type frontierItem struct {
	id       string
	priority float64
}

// frontierPQ is a min-heap of *frontierItem ordered by priority, used
// with the same lazy-decrease-key pattern as package dijkstra.
type frontierPQ []*frontierItem

func (pq frontierPQ) Len() int           { return len(pq) }
func (pq frontierPQ) Less(i, j int) bool { return pq[i].priority < pq[j].priority }
func (pq frontierPQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; called by heap.Push.
func (pq *frontierPQ) Push(x interface{}) { *pq = append(*pq, x.(*frontierItem)) }

// Pop removes and returns the smallest element; called by heap.Pop.
func (pq *frontierPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
