package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/wayfind/bfs"
	"github.com/katalvlaran/wayfind/core"
)

// ExampleShortestPath picks the two-hop route even though the detour
// through C is shorter by length — BFS counts edges, not meters.
func ExampleShortestPath() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 5)
	g.AddEdge("A", "C", 2)
	g.AddEdge("C", "B", 2)
	g.AddEdge("B", "D", 1)

	path, err := bfs.ShortestPath(g, "A", "D")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [A B D]
}
