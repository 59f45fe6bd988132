package boruvka

import (
	"math"

	"github.com/katalvlaran/boruvka/converters"
	"github.com/katalvlaran/boruvka/core"
	"github.com/katalvlaran/boruvka/prim_kruskal"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

// Solver is an exact MST algorithm. Solve must return edges of g itself
// (same IDs) and their total weight.
type Solver interface {
	Solve(g *core.Graph) ([]core.Edge, float64, error)
}

// SolverFunc adapts a plain function to Solver.
type SolverFunc func(g *core.Graph) ([]core.Edge, float64, error)

// Solve calls f(g).
func (f SolverFunc) Solve(g *core.Graph) ([]core.Edge, float64, error) { return f(g) }

// KruskalSolver solves with prim_kruskal.Kruskal.
type KruskalSolver struct{}

// Solve implements Solver.
func (KruskalSolver) Solve(g *core.Graph) ([]core.Edge, float64, error) {
	return prim_kruskal.Kruskal(g)
}

// PrimSolver solves with prim_kruskal.Prim rooted at the smallest vertex ID.
type PrimSolver struct{}

// Solve implements Solver.
func (PrimSolver) Solve(g *core.Graph) ([]core.Edge, float64, error) {
	return prim_kruskal.Compute(g, prim_kruskal.WithMethod(prim_kruskal.MethodPrim))
}

// GonumSolver exports the graph with converters.ToGonum and solves it with
// gonum's path.Kruskal, or path.Prim when Prim is set. gonum builds a
// minimum spanning forest on disconnected input; callers comparing the edge
// count against |V|-1 detect that.
//
// gonum breaks weight ties in its own order, so on graphs with repeated
// weights the edge set may differ from KruskalSolver while the total matches.
type GonumSolver struct {
	Prim bool
}

// Solve implements Solver.
func (s GonumSolver) Solve(g *core.Graph) ([]core.Edge, float64, error) {
	src, m, err := converters.ToGonum(g)
	if err != nil {
		return nil, 0, err
	}
	dst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	if s.Prim {
		path.Prim(dst, src)
	} else {
		path.Kruskal(dst, src)
	}

	edges := m.EdgesOf(dst)
	var total float64
	for _, e := range edges {
		total += e.Weight
	}

	return edges, total, nil
}
