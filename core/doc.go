// Package core provides a thread-safe in-memory undirected Graph
// implementation with a minimal, composable API surface. It is the graph
// collaborator the contraction engine in package boruvka reads from and
// builds into.
//
// The Graph G = (V,E) supports:
//
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[u][v][edgeID] = struct{}{} (mirrored for u != v)
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Determinism:
//
//	Vertices(), NeighborIDs() and Components() return lexicographically
//	sorted IDs; Edges() and Neighbors() return edges in creation order
//	(EdgeIDLess). Algorithms built on core can therefore replay exactly.
//
// Core Methods:
//
//	// Construction
//	NewGraph(opts...)                           // O(1)
//	NewGraphFrom(vertices, edges, opts...)      // O(V+E)
//
//	// Vertex lifecycle
//	AddVertex(id string) error                  // O(1)
//	HasVertex(id string) bool                   // O(1)
//	RemoveVertex(id string) error               // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight float64) (edgeID string, err error) // O(1)
//	RemoveEdge(edgeID string) error             // O(1)
//	HasEdge(from, to string) bool               // O(1)
//	GetEdge(edgeID string) (*Edge, error)       // O(1)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)       // O(d·log d)
//	NeighborIDs(id string) ([]string, error)    // O(d·log d)
//	Vertices() []string                         // O(V·log V)
//	Edges() []*Edge                             // O(E·log E)
//	Degree(id string) (int, error)              // O(d)
//
//	// Views
//	Clone(), CloneEmpty(), InducedSubgraph(g, keep), Components(g)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – NaN/Inf weight, or non-zero weight on unweighted graph
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
