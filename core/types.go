// Package core: Node, Edge, Graph declarations, functional options,
// sentinel errors, and constructors.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that a node was given an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNoEdge indicates that no edge exists between the given node pair.
	ErrNoEdge = errors.New("core: no edge between nodes")

	// ErrEmptyPath indicates PathLength was called with a zero-length sequence.
	ErrEmptyPath = errors.New("core: path is empty")

	// ErrPathDisconnected indicates two consecutive path nodes share no edge.
	ErrPathDisconnected = errors.New("core: path is disconnected")
)

// Node represents a road-network junction.
//
// ID uniquely identifies this Node within its Graph.
// Lat/Lon are WGS-84 degrees and are meaningful only when HasCoords is
// true; purely topological graphs leave them zero.
type Node struct {
	// ID is the unique identifier for this Node.
	ID string

	// Lat is the latitude in degrees, valid when HasCoords is true.
	Lat float64

	// Lon is the longitude in degrees, valid when HasCoords is true.
	Lon float64

	// HasCoords reports whether Lat/Lon carry a real position.
	HasCoords bool
}

// Edge represents one directed road segment From→To.
//
// Key distinguishes parallel segments between the same node pair, so
// (From, To, Key) is unique within a Graph. Length is the primary weight
// in meters; it may be negative for generality (Bellman-Ford input),
// though real road data is non-negative by construction. TravelTime is
// an optional secondary weight in seconds (zero when unknown); it is
// stored for callers and extensions, the shipped algorithms do not
// optimize over it.
type Edge struct {
	// From is the origin node ID.
	From string

	// To is the destination node ID.
	To string

	// Key is the parallel-edge index among From→To edges, starting at 0.
	Key int

	// Length is the segment length in meters (the primary weight).
	Length float64

	// TravelTime is the segment traversal time in seconds, 0 if unknown.
	TravelTime float64
}

// NodeOption configures properties of a node when added.
type NodeOption func(*Node)

// WithCoords attaches WGS-84 coordinates (degrees) to the node.
func WithCoords(lat, lon float64) NodeOption {
	return func(n *Node) {
		n.Lat = lat
		n.Lon = lon
		n.HasCoords = true
	}
}

// EdgeOption configures properties of an edge when added.
type EdgeOption func(*Edge)

// WithTravelTime records the segment traversal time in seconds.
func WithTravelTime(seconds float64) EdgeOption {
	return func(e *Edge) { e.TravelTime = seconds }
}

// Graph is the in-memory directed weighted multigraph.
//
// mu guards nodes and the outgoing adjacency; edges are treated as
// immutable once added (accessors hand out copies, never aliases into
// internal storage that a caller could mutate concurrently).
type Graph struct {
	mu sync.RWMutex

	nodes map[string]*Node   // node ID → Node
	adj   map[string][]*Edge // origin node ID → outgoing edges, insertion order

	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		adj:   make(map[string][]*Edge),
	}
}

// NewGraphFrom materializes a Graph from a ready-made node/edge set, the
// construction interface consumed from an external map/graph provider.
// Parallel-edge keys on the input are ignored and reassigned in slice
// order. Edge endpoints absent from nodes are auto-registered without
// coordinates.
// Complexity: O(N + E)
func NewGraphFrom(nodes []Node, edges []Edge) (*Graph, error) {
	g := NewGraph()
	for i := range nodes {
		n := nodes[i]
		var opts []NodeOption
		if n.HasCoords {
			opts = append(opts, WithCoords(n.Lat, n.Lon))
		}
		if err := g.AddNode(n.ID, opts...); err != nil {
			return nil, fmt.Errorf("core: node %d: %w", i, err)
		}
	}
	for i := range edges {
		e := edges[i]
		var opts []EdgeOption
		if e.TravelTime != 0 {
			opts = append(opts, WithTravelTime(e.TravelTime))
		}
		if _, err := g.AddEdge(e.From, e.To, e.Length, opts...); err != nil {
			return nil, fmt.Errorf("core: edge %d: %w", i, err)
		}
	}

	return g, nil
}
