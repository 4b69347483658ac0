package route_test

import (
	"fmt"

	"github.com/katalvlaran/wayfind/core"
	"github.com/katalvlaran/wayfind/route"
)

// ExampleCompareAll races the four strategies over a one-way street
// diamond. The weighted searches agree on the 5 m route through C; BFS
// saves a hop and pays for it in meters. Elapsed times vary run to run,
// so only the deterministic fields are printed.
func ExampleCompareAll() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 5)
	g.AddEdge("A", "C", 2)
	g.AddEdge("C", "B", 2)
	g.AddEdge("B", "D", 1)

	report, err := route.CompareAll(g, "A", "D")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, res := range report.Results {
		fmt.Printf("%-12s %v  %.0f m  %d nodes\n", res.Algorithm, res.Path, res.Distance, res.NodeCount)
	}
	fmt.Printf("shortest: %s with %.0f m\n", report.Shortest.Algorithm, report.Shortest.Distance)
	// Output:
	// Dijkstra     [A C B D]  5 m  4 nodes
	// A*           [A C B D]  5 m  4 nodes
	// BFS          [A B D]  6 m  3 nodes
	// Bellman-Ford [A C B D]  5 m  4 nodes
	// shortest: Dijkstra with 5 m
}
