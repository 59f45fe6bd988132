// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It assumes a weighted *core.Graph and grows the MST from a specified root vertex using a min‐heap.
package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/boruvka/core"
)

// Prim computes the Minimum Spanning Tree (MST) of a weighted graph
// by growing outwards from a specified root vertex using a min‐heap.
//
// Error Conditions:
//   - ErrInvalidGraph       : graph is nil or graph.Weighted() == false.
//   - ErrDisconnected       : |V| == 0, or |V| > 1 but the graph is not fully connected.
//   - core.ErrVertexNotFound: the root vertex does not exist in the graph.
//   - ErrEmptyRoot          : root == "" on a graph with more than one vertex.
//
// Steps:
//  1. Validate graph; handle |V| == 0 and |V| == 1.
//  2. Validate root.
//  3. Mark root visited and push its incident edges.
//  4. While the heap is non-empty and MST has < |V|-1 edges:
//     a. Pop the smallest edge under core.EdgeLess.
//     b. Skip it if its far endpoint is already visited.
//     c. Otherwise include it, mark the far endpoint, push its incident edges.
//  5. Fewer than |V|-1 edges → ErrDisconnected.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(graph *core.Graph, root string) ([]core.Edge, float64, error) {
	// 1. Validate that graph is non-nil and weighted.
	if graph == nil || !graph.Weighted() {
		return nil, 0, ErrInvalidGraph
	}

	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(vertices) == 1 {
		if vertices[0] != root {
			return nil, 0, core.ErrVertexNotFound
		}
		return []core.Edge{}, 0, nil
	}

	// 2. Validate root is non-empty and actually exists in the graph.
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !graph.HasVertex(root) {
		return nil, 0, core.ErrVertexNotFound
	}

	// 3. Initialize visited set, MST container and heap.
	n := len(vertices)
	visited := make(map[string]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var totalWeight float64

	pq := &edgePQ{}
	heap.Init(pq)

	push := func(from string) error {
		neighbors, err := graph.Neighbors(from)
		if err != nil {
			return err
		}
		for _, e := range neighbors {
			if e.IsLoop() {
				continue
			}
			if to := e.Other(from); !visited[to] {
				heap.Push(pq, frontierEdge{edge: e, to: to})
			}
		}
		return nil
	}

	visited[root] = true
	if err := push(root); err != nil {
		return nil, 0, err
	}

	// 4. Main loop: extract smallest edge and expand MST until we have n-1 edges.
	for pq.Len() > 0 && len(mst) < n-1 {
		fe := heap.Pop(pq).(frontierEdge)
		if visited[fe.to] {
			continue
		}
		visited[fe.to] = true
		mst = append(mst, *fe.edge)
		totalWeight += fe.edge.Weight

		if err := push(fe.to); err != nil {
			return nil, 0, err
		}
	}

	// 5. If we did not collect exactly n-1 edges, the graph must be disconnected.
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}

// frontierEdge is a heap entry: an edge leaving the tree and the vertex it reaches.
type frontierEdge struct {
	edge *core.Edge
	to   string
}

// edgePQ implements heap.Interface for a min‐heap of frontier edges ordered by core.EdgeLess.
type edgePQ []frontierEdge

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool { return core.EdgeLess(pq[i].edge, pq[j].edge) }

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new frontierEdge. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(frontierEdge)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	fe := old[n-1]
	*pq = old[:n-1]

	return fe
}
