package boruvka

import (
	"fmt"

	"github.com/katalvlaran/boruvka/core"
	"github.com/katalvlaran/boruvka/disjointset"
)

// IsSpanningTree reports whether edges form a spanning tree of g.
// It does not check minimality.
//
// Errors:
//   - ErrNilGraph: g is nil.
//   - ErrForeignEdge: an edge ID is unknown to g or its endpoints or weight differ.
//   - ErrCycle: an edge joins two already connected vertices.
//   - ErrNotSpanning: some vertex is left unreached.
func IsSpanningTree(g *core.Graph, edges []core.Edge) error {
	if g == nil {
		return ErrNilGraph
	}

	dsu := disjointset.New(g.Vertices()...)
	for _, e := range edges {
		ge, err := g.GetEdge(e.ID)
		if err != nil || ge.From != e.From || ge.To != e.To || ge.Weight != e.Weight {
			return fmt.Errorf("%w: %s (%s-%s)", ErrForeignEdge, e.ID, e.From, e.To)
		}
		merged, err := dsu.Union(e.From, e.To)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrForeignEdge, e.ID)
		}
		if !merged {
			return fmt.Errorf("%w: %s (%s-%s)", ErrCycle, e.ID, e.From, e.To)
		}
	}
	if dsu.Len() > 0 && dsu.Count() != 1 {
		return fmt.Errorf("%w: %d components remain", ErrNotSpanning, dsu.Count())
	}

	return nil
}
