// Package core defines the central Graph, Node, and Edge types for
// road-network routing, and provides thread-safe primitives for building
// and querying them.
//
// The Graph is a directed weighted multigraph. Nodes are identified by an
// opaque string key and may carry WGS-84 coordinates (used by heuristic
// searches and by callers for rendering). Parallel edges between the same
// node pair are permitted and distinguished by an integer Key, so a
// physical road network with alternate segment geometries maps onto the
// model without loss.
//
// All read APIs take a sync.RWMutex read lock internally, so a fully
// built graph can be shared across concurrent searches; the routing
// algorithms in this module only ever read.
//
// Determinism: Nodes returns IDs in sorted order and Neighbors returns
// outgoing edges in insertion order, so traversals over an identical
// build sequence visit edges identically on every run.
//
// Errors:
//
//	ErrEmptyNodeID      - node ID is the empty string.
//	ErrNodeNotFound     - requested node does not exist.
//	ErrNoEdge           - no edge exists between the given pair.
//	ErrEmptyPath        - PathLength called with an empty sequence.
//	ErrPathDisconnected - consecutive path nodes share no edge.
package core
