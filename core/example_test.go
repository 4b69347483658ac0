package core_test

import (
	"fmt"

	"github.com/katalvlaran/wayfind/core"
)

// ExampleGraph_PathLength builds a tiny road graph with a duplicate
// segment and prices a path: the shorter of the two parallel A→B
// segments is charged.
func ExampleGraph_PathLength() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 120) // older geometry
	g.AddEdge("A", "B", 95)  // shortcut geometry of the same connection
	g.AddEdge("B", "C", 40)

	length, err := g.PathLength([]string{"A", "B", "C"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.0f m over %d nodes\n", length, g.NodeCount())
	// Output:
	// 135 m over 3 nodes
}
