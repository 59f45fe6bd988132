package core

import (
	"sort"
	"sync/atomic"
)

// InducedSubgraph returns a new Graph induced by the set "keep" of vertex IDs:
// the result contains only vertices v where keep[v] is true, and all edges whose
// endpoints are both in keep. Edge IDs are preserved. The input graph is not mutated.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	g.muVert.RLock()
	out := NewGraph(g.options()...)
	for id, v := range g.vertices {
		if keep[id] {
			out.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
			out.adjacencyList[id] = make(map[string]map[string]struct{})
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	// Carrying the counter forward prevents reusing historical IDs on the subgraph.
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	for eid, e := range g.edges {
		if !keep[e.From] || !keep[e.To] {
			continue
		}
		ne := &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight}
		out.edges[eid] = ne
		linkAdjacency(out, ne)
	}
	g.muEdgeAdj.RUnlock()

	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out
}

// Components partitions the vertices of g into connected components.
//
// Determinism:
//   - Each component lists its vertex IDs sorted lex asc.
//   - Components are ordered by their smallest vertex ID.
//
// Complexity: O(V log V + E). Iterative traversal, no recursion.
func Components(g *Graph) [][]string {
	vertices := g.Vertices()
	seen := make(map[string]bool, len(vertices))
	var out [][]string

	for _, start := range vertices {
		if seen[start] {
			continue
		}
		seen[start] = true
		comp := []string{start}
		stack := []string{start}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			nbs, err := g.NeighborIDs(cur)
			if err != nil {
				// vertex vanished under a concurrent writer; skip it
				continue
			}
			for _, nb := range nbs {
				if !seen[nb] {
					seen[nb] = true
					comp = append(comp, nb)
					stack = append(stack, nb)
				}
			}
		}
		sort.Strings(comp)
		out = append(out, comp)
	}

	return out
}
