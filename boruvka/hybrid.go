package boruvka

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/boruvka/core"
	"github.com/katalvlaran/boruvka/prim_kruskal"
)

// Rounds returns the number of contraction rounds Hybrid runs on a graph of
// n vertices: ceil(log2(log2(n))).
//
// Errors: ErrGraphTooSmall when n <= 2.
func Rounds(n int) (int, error) {
	if n <= 2 {
		return 0, fmt.Errorf("%w: n=%d", ErrGraphTooSmall, n)
	}

	return int(math.Ceil(math.Log2(math.Log2(float64(n))))), nil
}

// Hybrid computes a minimum spanning tree of g in O(E log log V) time:
// exactly Rounds(|V|) contraction rounds shrink the graph to at most
// V / log V vertices, then the exact solver (Kruskal unless WithSolver says
// otherwise) finishes the residual graph. The union of both edge sets, resolved
// to edges of g, is the result.
//
// There is no early exit: once contraction leaves a single vertex the
// remaining rounds are no-ops. The solver is skipped when the residual graph
// has fewer than two vertices.
//
// Return shape and ordering match MST.
//
// Errors:
//   - ErrNilGraph: g is nil.
//   - ErrGraphTooSmall: |V| <= 2.
//   - ErrDisconnectedNode: g has an isolated vertex.
//   - ErrDisconnected: two or more components carry edges.
//   - ErrForeignEdge: the solver returned an edge not in the residual graph.
//   - ErrCycle: the solver returned more edges than a spanning tree holds.
//   - any other solver error, wrapped.
func Hybrid(g *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, 0, err
	}
	n := g.VertexCount()
	rounds, err := Rounds(n)
	if err != nil {
		return nil, 0, err
	}

	lin := newLineage(g)
	cur := g
	for round := 1; round <= rounds; round++ {
		r, err := contract(cur, o.Workers, lin.less)
		if err != nil {
			return nil, 0, err
		}
		lin.absorb(r)
		o.OnRound(statsOf(round, cur, r))
		cur = r.Graph
	}

	if cur.VertexCount() >= 2 {
		rest, _, err := o.Solver.Solve(cur)
		if err != nil {
			if errors.Is(err, prim_kruskal.ErrDisconnected) {
				return nil, 0, fmt.Errorf("%w: %w", ErrDisconnected, err)
			}
			return nil, 0, fmt.Errorf("boruvka: exact solver: %w", err)
		}
		if err = lin.add(rest); err != nil {
			return nil, 0, err
		}
	}

	edges, total := lin.result()
	switch {
	case len(edges) < n-1:
		return nil, 0, ErrDisconnected
	case len(edges) > n-1:
		return nil, 0, fmt.Errorf("%w: solver left %d edges for %d vertices", ErrCycle, len(edges), n)
	}

	return edges, total, nil
}
