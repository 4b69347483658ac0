// Package wayfind is an in-memory engine for computing and comparing
// point-to-point shortest paths on weighted road-network graphs.
//
// 🚗 What is wayfind?
//
//	A small, thread-safe, zero-dependency library that brings together:
//		• Core primitives: a directed weighted multigraph with optional
//		  per-node geographic coordinates
//		• Four classic route strategies: Dijkstra, A*, unweighted BFS
//		  and Bellman-Ford
//		• A harness that times each strategy and re-prices every returned
//		  path with the same edge weights, so results compare fairly
//		• A comparison engine that runs all four on one origin/destination
//		  pair and reports the fastest and the shortest
//
// ✨ Why choose wayfind?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – R/W locks, deterministic traversal order
//   - Pure Go – no cgo, no hidden deps
//   - Honest comparisons – BFS optimizes hops, yet its reported distance
//     is the true summed length of its path
//
// Under the hood, everything is organized into small subpackages:
//
//	core/        — Graph, Node, Edge types & thread-safe primitives
//	geodist/     — great-circle (haversine) distance helpers
//	dijkstra/    — frontier search keyed by accumulated length
//	astar/       — frontier search keyed by length + admissible heuristic
//	bfs/         — fewest-hop level-order search
//	bellmanford/ — relaxation passes with negative-cycle detection
//	route/       — execution harness and four-way comparison engine
//
// Quick ASCII example:
//
//	    A──5──B
//	    │     │
//	    2     1
//	    │     │
//	    C──2──B──D
//
//	Dijkstra, A* and Bellman-Ford return A→C→B→D (length 5);
//	BFS returns A→B→D (two hops, length 6).
//
// The graph arrives already materialized: map download, geocoding,
// rendering and any UI live in the caller.
//
//	go get github.com/katalvlaran/wayfind
package wayfind
