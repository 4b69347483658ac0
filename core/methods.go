package core

import (
	"fmt"
	"sort"
)

// AddNode registers a node by ID, applying any NodeOptions.
// Re-adding an existing ID is not an error: options are applied to the
// stored node, so coordinates can be attached after auto-registration.
// Complexity: O(1)
func (g *Graph) AddNode(id string, opts ...NodeOption) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		n = &Node{ID: id}
		g.nodes[id] = n
	}
	for _, opt := range opts {
		opt(n)
	}

	return nil
}

// AddEdge appends a directed edge from→to with the given length in
// meters, auto-registering missing endpoints (without coordinates).
// Negative lengths are accepted; individual algorithms state their own
// weight preconditions. Returns the parallel-edge key assigned to the
// new edge (0 for the first from→to edge, 1 for the next, ...).
// Complexity: O(deg(from)) for key assignment.
func (g *Graph) AddEdge(from, to string, length float64, opts ...EdgeOption) (int, error) {
	if from == "" || to == "" {
		return 0, ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, id := range [2]string{from, to} {
		if _, ok := g.nodes[id]; !ok {
			g.nodes[id] = &Node{ID: id}
		}
	}

	e := &Edge{From: from, To: to, Length: length}
	for _, opt := range opts {
		opt(e)
	}
	// Parallel-edge key = number of existing from→to edges.
	for _, prev := range g.adj[from] {
		if prev.To == to {
			e.Key++
		}
	}
	g.adj[from] = append(g.adj[from], e)
	g.edgeCount++

	return e.Key, nil
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(1)
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]
	return ok
}

// Coords returns the WGS-84 coordinates of a node. ok is false when the
// node is absent or was registered without coordinates; heuristic
// searches treat that as "no position known" rather than an error.
// Complexity: O(1)
func (g *Graph) Coords(id string) (lat, lon float64, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, found := g.nodes[id]
	if !found || !n.HasCoords {
		return 0, 0, false
	}

	return n.Lat, n.Lon, true
}

// Neighbors returns copies of all outgoing edges of id, in insertion
// order. The returned slice is owned by the caller.
// Complexity: O(deg(id))
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	out := make([]Edge, len(g.adj[id]))
	for i, e := range g.adj[id] {
		out[i] = *e
	}

	return out, nil
}

// Nodes returns all node IDs in sorted order.
// Complexity: O(N log N)
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns copies of every edge, grouped by origin in sorted-ID
// order and insertion order within each origin. The stable ordering
// keeps edge-list algorithms (Bellman-Ford) deterministic.
// Complexity: O(N log N + E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	origins := make([]string, 0, len(g.adj))
	for id := range g.adj {
		origins = append(origins, id)
	}
	sort.Strings(origins)

	out := make([]Edge, 0, g.edgeCount)
	for _, id := range origins {
		for _, e := range g.adj[id] {
			out = append(out, *e)
		}
	}

	return out
}

// NodeCount returns the number of registered nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of directed edges, parallels included.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// MinLength returns the length of the shortest parallel edge from→to.
// This is the standardized multigraph collapse: wherever one weight is
// needed for a node pair (path re-pricing, simple-graph views), the
// minimum-length parallel edge wins, matching road graphs where
// duplicate segments are alternate geometries of one connection.
// Returns ErrNodeNotFound if from is absent, ErrNoEdge if no from→to
// edge exists.
// Complexity: O(deg(from))
func (g *Graph) MinLength(from, to string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[from]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, from)
	}
	best, found := 0.0, false
	for _, e := range g.adj[from] {
		if e.To != to {
			continue
		}
		if !found || e.Length < best {
			best, found = e.Length, true
		}
	}
	if !found {
		return 0, fmt.Errorf("%w: %q→%q", ErrNoEdge, from, to)
	}

	return best, nil
}

// PathLength re-prices a node sequence by summing the minimum-length
// edge between each consecutive pair. Every path is priced the same way
// regardless of which algorithm produced it, so comparisons across
// strategies are apples-to-apples. A single node is a valid trivial path
// of length 0; an empty sequence is ErrEmptyPath; a missing hop is
// ErrPathDisconnected.
// Complexity: O(sum of deg over the path)
func (g *Graph) PathLength(path []string) (float64, error) {
	if len(path) == 0 {
		return 0, ErrEmptyPath
	}
	if !g.HasNode(path[0]) {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, path[0])
	}

	var total float64
	for i := 1; i < len(path); i++ {
		l, err := g.MinLength(path[i-1], path[i])
		if err != nil {
			return 0, fmt.Errorf("%w: hop %q→%q: %v", ErrPathDisconnected, path[i-1], path[i], err)
		}
		total += l
	}

	return total, nil
}
