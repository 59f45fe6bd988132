// Package converters provides two-way adapters between core.Graph and
// gonum.org/v1/gonum/graph.
//
// ToGonum exports a *core.Graph into a *simple.WeightedUndirectedGraph and
// returns a Mapping that remembers, for every gonum node and node pair, which
// core vertex and which core edge it stands for. gonum's simple graphs hold at
// most one edge per pair and no self-loops, so the export keeps the lightest
// parallel edge (under core.EdgeLess) and drops loops.
//
// FromGonum imports any gonum weighted undirected graph back into a weighted
// *core.Graph, naming vertices by their decimal node IDs.
//
// The Mapping lets gonum's own algorithms (path.Kruskal, path.Prim) run as
// exact MST solvers whose result is reported in terms of core edges.
package converters
