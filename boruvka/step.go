package boruvka

import (
	"sort"

	"github.com/katalvlaran/boruvka/core"
	"github.com/katalvlaran/boruvka/disjointset"
)

// Round is the result of one Borůvka contraction round.
type Round struct {
	// Graph is the contracted graph: one vertex per representative that still
	// has an edge to another component, one edge per adjacent component pair.
	// It is always weighted and never holds loops or parallel edges.
	Graph *core.Graph

	// Fixed holds the keys of the edges selected this round, in terms of the
	// input graph's vertex IDs. By the cut property they all belong to an MST.
	Fixed KeySet

	// Selected holds the selected input edges, sorted by edge ID.
	Selected []core.Edge

	// Representative maps every input vertex to the input vertex that stands
	// for its component in Graph.
	Representative map[string]string

	// origin maps each edge ID of Graph to the input edge it was kept from.
	origin map[string]string
}

// Origin returns the ID of the input edge that contracted edge id stands for.
func (r *Round) Origin(id string) (string, bool) {
	src, ok := r.origin[id]

	return src, ok
}

// Step performs one Borůvka contraction round on g and returns the
// contracted graph together with the keys of the edges it fixed.
// It is Contract without the bookkeeping.
func Step(g *core.Graph, opts ...Option) (*core.Graph, KeySet, error) {
	r, err := Contract(g, opts...)
	if err != nil {
		return nil, nil, err
	}

	return r.Graph, r.Fixed, nil
}

// Contract performs one Borůvka contraction round on g.
//
// Steps:
//  1. |V| <= 1: return g itself with nothing fixed.
//  2. For every vertex (sorted order) pick its cheapest incident non-loop edge
//     under core.EdgeLess. All picks finish before any merge.
//  3. Fix every picked edge and union its endpoints, vertex by vertex.
//  4. Map every edge to its endpoints' representatives; drop edges inside a
//     component and keep, per representative pair, the smallest edge.
//  5. Build the contracted graph from the survivors in key order.
//
// The input graph is never mutated and identical inputs give identical
// rounds: same representatives, same keys, same edge IDs.
//
// Errors:
//   - ErrNilGraph: g is nil.
//   - ErrDisconnectedNode: some vertex has no incident non-loop edge; the
//     smallest such vertex ID is reported.
//   - ErrOptionViolation: an invalid Option was supplied.
//
// Complexity: O(E log E) time (sorted edge listing), O(V + E) memory.
func Contract(g *core.Graph, opts ...Option) (*Round, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return contract(g, o.Workers, core.EdgeLess)
}

// contract runs one round ordering edges by less. The drivers pass an order
// that ranks contracted edges by the input edges they stand for, so ties are
// broken the same way in every round.
func contract(g *core.Graph, workers int, less edgeOrder) (*Round, error) {
	vertices := g.Vertices()
	if len(vertices) <= 1 {
		return identityRound(g, vertices), nil
	}

	// 2. Cheapest edge per vertex.
	best, err := cheapestEdges(g, vertices, workers, less)
	if err != nil {
		return nil, err
	}

	// 3. Fix and merge.
	dsu := disjointset.New(vertices...)
	fixed := make(KeySet, len(best))
	picked := make(map[string]*core.Edge, len(best))
	for i, e := range best {
		k, _ := NewEdgeKey(e.From, e.To)
		fixed.Add(k)
		picked[e.ID] = e
		if _, err = dsu.Union(vertices[i], e.Other(vertices[i])); err != nil {
			return nil, err
		}
	}
	selected := make([]core.Edge, 0, len(picked))
	for _, e := range picked {
		selected = append(selected, *e)
	}
	sort.Slice(selected, func(i, j int) bool { return core.EdgeIDLess(selected[i].ID, selected[j].ID) })

	reps := make(map[string]string, len(vertices))
	for _, v := range vertices {
		if reps[v], err = dsu.Find(v); err != nil {
			return nil, err
		}
	}

	// 4. Cheapest edge per representative pair.
	survivors := make(map[EdgeKey]*core.Edge)
	for _, e := range g.Edges() {
		k, ok := NewEdgeKey(reps[e.From], reps[e.To])
		if !ok {
			continue
		}
		if cur, seen := survivors[k]; !seen || less(e, cur) {
			survivors[k] = e
		}
	}
	keys := make([]EdgeKey, 0, len(survivors))
	for k := range survivors {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	// 5. Contracted graph.
	next := core.NewGraph(core.WithWeighted())
	origin := make(map[string]string, len(keys))
	for _, k := range keys {
		e := survivors[k]
		id, err := next.AddEdge(k.U, k.V, e.Weight)
		if err != nil {
			return nil, err
		}
		origin[id] = e.ID
	}

	return &Round{
		Graph:          next,
		Fixed:          fixed,
		Selected:       selected,
		Representative: reps,
		origin:         origin,
	}, nil
}

// identityRound is the no-op round of a graph with at most one vertex.
func identityRound(g *core.Graph, vertices []string) *Round {
	reps := make(map[string]string, len(vertices))
	for _, v := range vertices {
		reps[v] = v
	}
	origin := make(map[string]string)
	for _, e := range g.Edges() {
		origin[e.ID] = e.ID
	}

	return &Round{
		Graph:          g,
		Fixed:          KeySet{},
		Selected:       nil,
		Representative: reps,
		origin:         origin,
	}
}
