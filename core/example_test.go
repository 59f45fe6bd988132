package core_test

import (
	"fmt"

	"github.com/katalvlaran/boruvka/core"
)

// ExampleGraph_Neighbors builds a small weighted square and lists the edges
// incident to one corner in creation order.
func ExampleGraph_Neighbors() {
	//	A───B
	//	│   │
	//	C───D
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "D", 2)
	_, _ = g.AddEdge("D", "C", 3)
	_, _ = g.AddEdge("C", "A", 4)

	nbs, _ := g.Neighbors("A")
	for _, e := range nbs {
		fmt.Printf("%s: A-%s (%.0f)\n", e.ID, e.Other("A"), e.Weight)
	}
	// Output:
	// e1: A-B (1)
	// e4: A-C (4)
}
