// SPDX-License-Identifier: MIT

// Package boruvka implements Borůvka's contraction technique for Minimum
// Spanning Trees over an undirected, weighted *core.Graph, and the hybrid
// O(m log log n) algorithm built on it.
//
// What & Why
//
//   - A Borůvka round lets every vertex pick its cheapest incident edge. By the
//     cut property each picked edge belongs to an MST. Merging along the picks
//     at least halves the number of components, so the graph shrinks
//     geometrically while the fixed edges accumulate.
//
//   - Running ceil(log2(log2 n)) rounds leaves at most n / log n vertices.
//     An exact O(m log n') solver on that residual graph then costs
//     O(m log log n), which is the hybrid bound.
//
// Algorithms Provided
//
//   - Contract(g) (*Round, error) / Step(g) (*core.Graph, KeySet, error)
//     One round: cheapest edge per vertex, union-find merge
//     (disjointset.DisjointSet), then rebuild a contracted graph with one vertex
//     per surviving representative and, per representative pair, only the
//     smallest edge. Self-loops vanish; parallel edges never appear.
//
//   - MST(g) ([]core.Edge, float64, error)
//     Rounds until one vertex remains or nothing is fixed. O(m log n).
//
//   - Hybrid(g) ([]core.Edge, float64, error)
//     Exactly Rounds(n) rounds, then Solver on the residual graph.
//
//   - Forest(g) ([]core.Edge, float64, error)
//     MST per connected component.
//
//   - IsSpanningTree(g, edges) error
//     Structural check of a claimed spanning tree.
//
// Determinism
//
// All edge comparisons use core.EdgeLess: weight, then the ordered endpoint
// pair, then edge-ID sequence ("e2" before "e10"). It is a strict total order,
// so the MST is unique under it. Contracted edges are ranked by the input
// edges they stand for, so MST and Forest return the same edge set as both
// prim_kruskal algorithms. Hybrid's solver ranks residual edges by its own
// rules and may pick a different tree of equal weight when weights repeat.
// Vertices are scanned in sorted order and contracted graphs are built in key
// order, so replays produce identical edge IDs and representatives.
//
// Lineage
//
// A contracted graph has fresh edge IDs. Every Round records which input edge
// each contracted edge was kept from (Round.Origin), and the drivers chain
// these records so that edges fixed in late rounds, and the solver's edges on
// the residual graph, are reported as edges of the caller's graph.
//
// Error Conditions
//
//   - ErrNilGraph         : nil graph.
//   - ErrDisconnectedNode : a vertex has no incident non-loop edge.
//   - ErrDisconnected     : several components carry edges.
//   - ErrGraphTooSmall    : Hybrid / Rounds with n <= 2.
//   - ErrOptionViolation  : invalid WithWorkers / WithSolver argument.
//
// Options
//
//   - WithSolver(Solver): exact solver for Hybrid (KruskalSolver by default;
//     PrimSolver, GonumSolver, or any SolverFunc).
//   - WithWorkers(n): scan cheapest edges with n goroutines. The result is
//     identical to the sequential scan.
//   - WithOnRound(fn): observe RoundStats after each round.
//
// The input graph is never mutated.
package boruvka
