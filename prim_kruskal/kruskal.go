// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It assumes a weighted *core.Graph and produces a slice of edges forming the MST.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/boruvka/core"
	"github.com/katalvlaran/boruvka/disjointset"
)

// Kruskal computes the Minimum Spanning Tree (MST) of a weighted graph.
// It uses disjointset.DisjointSet (path compression, union by rank).
//
// Error Conditions:
//   - ErrInvalidGraph  : graph is nil or graph.Weighted() == false.
//   - ErrDisconnected  : |V| == 0, or |V| > 1 but the graph is not fully connected.
//
// Steps:
//  1. Validate graph.
//  2. Retrieve sorted vertex IDs; |V|==0 → ErrDisconnected, |V|==1 → empty MST.
//  3. Collect all edges, skipping self-loops.
//  4. Sort edges by core.EdgeLess (weight, endpoints, ID): a strict total order,
//     so ties resolve identically on every run.
//  5. For each edge (u,v): if Union(u,v) merged two sets, include the edge.
//  6. Stop at |V|-1 edges; fewer after the loop → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Edge, float64, error) {
	// 1. Validate that graph is non-nil and weighted.
	if graph == nil || !graph.Weighted() {
		return nil, 0, ErrInvalidGraph
	}

	// 2. Retrieve all vertex IDs in sorted order for determinism.
	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	// 3. Collect all edges, skipping self-loops: they cannot be part of a spanning tree.
	allEdges := graph.Edges()
	edges := make([]*core.Edge, 0, len(allEdges))
	for _, e := range allEdges {
		if e.IsLoop() {
			continue
		}
		edges = append(edges, e)
	}

	// 4. Sort edges by the shared total order.
	sort.Slice(edges, func(i, j int) bool {
		return core.EdgeLess(edges[i], edges[j])
	})

	// 5. Initialize the disjoint-set over every vertex.
	dsu := disjointset.New(vertices...)

	var (
		mst         = make([]core.Edge, 0, len(vertices)-1)
		totalWeight float64
		numVerts    = len(vertices)
	)
	for _, e := range edges {
		merged, err := dsu.Union(e.From, e.To)
		if err != nil {
			// Edge endpoint missing from the vertex catalog: concurrent mutation.
			return nil, 0, err
		}
		if !merged {
			continue
		}
		mst = append(mst, *e)
		totalWeight += e.Weight
		if len(mst) == numVerts-1 {
			break
		}
	}

	// 6. If MST does not contain exactly |V|-1 edges, graph was disconnected.
	if len(mst) < numVerts-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}
