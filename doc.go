// SPDX-License-Identifier: MIT

// Package boruvka is the root of a small library for minimum spanning trees on
// undirected, weighted graphs, centred on Borůvka's contraction technique.
//
// What is in here?
//
//	core/          Graph, Vertex and Edge types; the EdgeLess total order
//	disjointset/   generic union-find with path compression and union by rank
//	boruvka/       contraction rounds (Step, Contract), Borůvka MST,
//	               the O(m log log n) Hybrid, Forest and IsSpanningTree
//	prim_kruskal/  exact Prim and Kruskal solvers
//	converters/    core ⇄ gonum graph conversion
//	builder/       seeded graph generators (path, cycle, grid, random, ...)
//	graphio/       YAML and edge-list graph files, MST results
//	cmd/mstctl/    command line: solve and generate
//
// Every algorithm orders edges by core.EdgeLess (weight, endpoints, edge ID),
// so Borůvka, Kruskal and Prim agree on the same tree, ties included.
//
// Quick start:
//
//	g := core.NewGraph(core.WithWeighted())
//	g.AddEdge("a", "b", 1)
//	g.AddEdge("b", "c", 2)
//	g.AddEdge("a", "c", 3)
//	edges, total, err := boruvka.Hybrid(g)
package boruvka
