package boruvka

import (
	"github.com/katalvlaran/boruvka/core"
)

// MST computes a minimum spanning tree of g by repeated Borůvka contraction.
//
// Rounds run until the graph has at most one vertex or a round fixes nothing.
// Every round's selected edges are resolved back to edges of g and collected.
//
// Returns the tree edges sorted by ordered endpoint pair then edge ID, and
// their total weight. An empty or single-vertex graph yields no edges.
//
// Errors:
//   - ErrNilGraph: g is nil.
//   - ErrDisconnectedNode: g has an isolated vertex (use Forest instead).
//   - ErrDisconnected: two or more components carry edges.
//   - ErrOptionViolation: an invalid Option was supplied.
//
// Complexity: O(E log E · log V): at most log2(V) rounds, each halving the
// vertex count.
func MST(g *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, 0, err
	}

	lin := newLineage(g)
	cur := g
	for round := 1; cur.VertexCount() > 1; round++ {
		r, err := contract(cur, o.Workers, lin.less)
		if err != nil {
			return nil, 0, err
		}
		if len(r.Selected) == 0 {
			break
		}
		lin.absorb(r)
		o.OnRound(statsOf(round, cur, r))
		cur = r.Graph
	}

	edges, total := lin.result()
	if n := g.VertexCount(); n > 0 && len(edges) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return edges, total, nil
}

// MSTKeys returns the endpoint keys of MST(g).
func MSTKeys(g *core.Graph, opts ...Option) (KeySet, error) {
	edges, _, err := MST(g, opts...)
	if err != nil {
		return nil, err
	}
	keys := make(KeySet, len(edges))
	for _, e := range edges {
		if k, ok := KeyOf(e); ok {
			keys.Add(k)
		}
	}

	return keys, nil
}

// statsOf summarises round r, which consumed graph in.
func statsOf(round int, in *core.Graph, r *Round) RoundStats {
	return RoundStats{
		Round:      round,
		Vertices:   in.VertexCount(),
		Edges:      in.EdgeCount(),
		Fixed:      len(r.Selected),
		Contracted: r.Graph.VertexCount(),
	}
}
