package converters

import (
	"errors"
	"math"
	"sort"
	"strconv"

	"github.com/katalvlaran/boruvka/core"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// ErrNilGraph is returned when a nil graph is passed to a converter.
var ErrNilGraph = errors.New("converters: nil graph")

// pair is an ordered gonum node pair with lo <= hi.
type pair struct{ lo, hi int64 }

func newPair(x, y int64) pair {
	if x > y {
		x, y = y, x
	}

	return pair{lo: x, hi: y}
}

// Mapping relates a gonum graph produced by ToGonum to its source core.Graph.
type Mapping struct {
	ids   []string         // gonum node ID → core vertex ID
	index map[string]int64 // core vertex ID → gonum node ID
	edges map[pair]*core.Edge
}

// NodeID returns the gonum node ID assigned to vertex id.
func (m *Mapping) NodeID(id string) (int64, bool) {
	n, ok := m.index[id]

	return n, ok
}

// VertexID returns the core vertex ID behind gonum node n.
func (m *Mapping) VertexID(n int64) (string, bool) {
	if n < 0 || n >= int64(len(m.ids)) {
		return "", false
	}

	return m.ids[n], true
}

// Edge returns the core edge exported between gonum nodes x and y.
func (m *Mapping) Edge(x, y int64) (core.Edge, bool) {
	e, ok := m.edges[newPair(x, y)]
	if !ok {
		return core.Edge{}, false
	}

	return *e, true
}

// Len returns the number of mapped vertices.
func (m *Mapping) Len() int { return len(m.ids) }

// ToGonum exports g into a gonum weighted undirected graph.
//
// Node IDs are assigned 0..|V|-1 following g.Vertices() (sorted), so the
// export is deterministic. Self-loops are skipped; among parallel edges the
// one that is smallest under core.EdgeLess is kept.
//
// Complexity: O(V + E log E) (sorting inside g.Edges()).
func ToGonum(g *core.Graph) (*simple.WeightedUndirectedGraph, *Mapping, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	vertices := g.Vertices()
	m := &Mapping{
		ids:   vertices,
		index: make(map[string]int64, len(vertices)),
		edges: make(map[pair]*core.Edge),
	}
	dst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i, id := range vertices {
		m.index[id] = int64(i)
		dst.AddNode(simple.Node(i))
	}

	for _, e := range g.Edges() {
		if e.IsLoop() {
			continue
		}
		p := newPair(m.index[e.From], m.index[e.To])
		if cur, ok := m.edges[p]; ok && !core.EdgeLess(e, cur) {
			continue
		}
		m.edges[p] = e
	}
	for p, e := range m.edges {
		dst.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(p.lo),
			T: simple.Node(p.hi),
			W: e.Weight,
		})
	}

	return dst, m, nil
}

// FromGonum imports a gonum weighted undirected graph into a new weighted
// core.Graph. Vertex IDs are the decimal gonum node IDs and edges are added in
// ascending node-pair order, so repeated imports assign identical edge IDs.
func FromGonum(src graph.WeightedUndirected) (*core.Graph, error) {
	if src == nil {
		return nil, ErrNilGraph
	}

	dst := core.NewGraph(core.WithWeighted())
	nodes := sortedNodes(src.Nodes())
	for _, n := range nodes {
		if err := dst.AddVertex(strconv.FormatInt(n.ID(), 10)); err != nil {
			return nil, err
		}
	}
	for _, u := range nodes {
		uid := u.ID()
		for _, v := range sortedNodes(src.From(uid)) {
			vid := v.ID()
			if vid <= uid {
				continue
			}
			w, ok := src.Weight(uid, vid)
			if !ok {
				continue
			}
			if _, err := dst.AddEdge(strconv.FormatInt(uid, 10), strconv.FormatInt(vid, 10), w); err != nil {
				return nil, err
			}
		}
	}

	return dst, nil
}

// EdgesOf resolves the edges of a gonum graph built over the same node IDs as
// m back to core edges, sorted by edge ID. Edges with no exported counterpart
// are skipped.
func (m *Mapping) EdgesOf(src graph.WeightedUndirected) []core.Edge {
	var out []core.Edge
	for _, u := range graph.NodesOf(src.Nodes()) {
		uid := u.ID()
		for _, v := range graph.NodesOf(src.From(uid)) {
			vid := v.ID()
			if vid <= uid {
				continue
			}
			if e, ok := m.Edge(uid, vid); ok {
				out = append(out, e)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return core.EdgeIDLess(out[i].ID, out[j].ID) })

	return out
}

// sortedNodes drains it into a slice ordered by node ID.
func sortedNodes(it graph.Nodes) []graph.Node {
	nodes := graph.NodesOf(it)
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })

	return nodes
}
