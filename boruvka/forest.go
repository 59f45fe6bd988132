package boruvka

import (
	"github.com/katalvlaran/boruvka/core"
)

// Forest computes a minimum spanning forest of g: MST on every connected
// component with at least two vertices. Isolated vertices contribute nothing.
// Edges are sorted like MST's and keep g's edge IDs.
func Forest(g *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}

	all := make(map[string]core.Edge)
	for _, comp := range core.Components(g) {
		if len(comp) < 2 {
			continue
		}
		keep := make(map[string]bool, len(comp))
		for _, v := range comp {
			keep[v] = true
		}
		edges, _, err := MST(core.InducedSubgraph(g, keep), opts...)
		if err != nil {
			return nil, 0, err
		}
		for _, e := range edges {
			all[e.ID] = e
		}
	}

	edges, total := sortEdges(all)

	return edges, total, nil
}
