package boruvka

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/boruvka/core"
)

// lineage tracks, across rounds, which edge of the caller's graph every edge
// of the current contracted graph stands for, and accumulates MST edges.
type lineage struct {
	current map[string]core.Edge // current-graph edge ID → caller edge
	tree    map[string]core.Edge // caller edge ID → caller edge
}

func newLineage(g *core.Graph) *lineage {
	edges := g.Edges()
	l := &lineage{
		current: make(map[string]core.Edge, len(edges)),
		tree:    make(map[string]core.Edge),
	}
	for _, e := range edges {
		l.current[e.ID] = *e
	}

	return l
}

// absorb records r's selected edges and re-points lineage at r.Graph.
func (l *lineage) absorb(r *Round) {
	for _, e := range r.Selected {
		src := l.current[e.ID]
		l.tree[src.ID] = src
	}
	next := make(map[string]core.Edge, len(r.origin))
	for id, in := range r.origin {
		next[id] = l.current[in]
	}
	l.current = next
}

// less orders edges of the current graph by the caller edges they stand for.
// In the first round this is core.EdgeLess itself.
func (l *lineage) less(a, b *core.Edge) bool {
	sa, sb := l.current[a.ID], l.current[b.ID]

	return core.EdgeLess(&sa, &sb)
}

// add records edges of the current graph, e.g. an exact solver's output.
func (l *lineage) add(edges []core.Edge) error {
	for _, e := range edges {
		src, ok := l.current[e.ID]
		if !ok {
			return fmt.Errorf("%w: %s", ErrForeignEdge, e.ID)
		}
		l.tree[src.ID] = src
	}

	return nil
}

// result returns the accumulated edges sorted by key then ID, and their total.
func (l *lineage) result() ([]core.Edge, float64) {
	return sortEdges(l.tree)
}

// sortEdges flattens a set of edges into key-then-ID order and sums weights.
func sortEdges(set map[string]core.Edge) ([]core.Edge, float64) {
	out := make([]core.Edge, 0, len(set))
	for _, e := range set {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeKeyLess(out[i], out[j]) })

	// sum in sorted order: map order would perturb the float total
	var total float64
	for _, e := range out {
		total += e.Weight
	}

	return out, total
}

// edgeKeyLess orders edges by their ordered endpoint pair, then by ID.
func edgeKeyLess(a, b core.Edge) bool {
	alo, ahi := a.Endpoints()
	blo, bhi := b.Endpoints()
	if alo != blo {
		return alo < blo
	}
	if ahi != bhi {
		return ahi < bhi
	}

	return core.EdgeIDLess(a.ID, b.ID)
}
