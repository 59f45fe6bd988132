package boruvka_test

import (
	"fmt"

	"github.com/katalvlaran/boruvka/boruvka"
	"github.com/katalvlaran/boruvka/core"
)

// exampleGraph builds the 7-vertex graph used by the examples.
func exampleGraph() *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	for _, e := range []struct {
		u, v string
		w    float64
	}{
		{"0", "1", 12}, {"1", "2", 8}, {"1", "3", 10}, {"0", "3", 5}, {"1", "4", 7}, {"2", "4", 2},
		{"3", "4", 15}, {"3", "5", 6}, {"4", "5", 1}, {"4", "6", 9}, {"5", "6", 11},
	} {
		g.AddEdge(e.u, e.v, e.w)
	}

	return g
}

// ExampleMST runs Borůvka to completion on a 7-vertex graph.
func ExampleMST() {
	edges, total, err := boruvka.MST(exampleGraph())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %g, Edges:", total)
	for _, e := range edges {
		fmt.Printf(" %s-%s", e.From, e.To)
	}
	fmt.Println()
	// Output: Total: 30, Edges: 0-3 1-4 2-4 3-5 4-5 4-6
}

// ExampleStep shows a single contraction round: five edges are fixed and
// the seven vertices collapse into two components joined by weight 6.
func ExampleStep() {
	next, fixed, err := boruvka.Step(exampleGraph())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("fixed:", fixed.Sorted())
	for _, e := range next.Edges() {
		fmt.Printf("contracted: %s-%s %g\n", e.From, e.To, e.Weight)
	}
	// Output:
	// fixed: [0-3 1-4 2-4 4-5 4-6]
	// contracted: 0-1 6
}

// ExampleHybrid runs ceil(log2(log2 7)) = 2 rounds before handing the rest
// to Kruskal, reporting each round through the hook.
func ExampleHybrid() {
	_, total, err := boruvka.Hybrid(exampleGraph(),
		boruvka.WithOnRound(func(s boruvka.RoundStats) {
			fmt.Printf("round %d: %d vertices -> %d, fixed %d\n", s.Round, s.Vertices, s.Contracted, s.Fixed)
		}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("Total: %g\n", total)
	// Output:
	// round 1: 7 vertices -> 2, fixed 5
	// round 2: 2 vertices -> 0, fixed 1
	// Total: 30
}
