package boruvka

import (
	"fmt"

	"github.com/katalvlaran/boruvka/core"
	"golang.org/x/sync/errgroup"
)

// edgeOrder is a strict total order over the edges of one graph.
type edgeOrder func(a, b *core.Edge) bool

// cheapestEdges returns, for every vertex in vertices, its cheapest incident
// non-loop edge under less. out[i] belongs to vertices[i].
//
// With workers > 1 the vertex list is split into contiguous chunks scanned
// concurrently; the graph is only read. Isolated vertices are detected after
// the join, in vertex order, so the reported vertex never depends on
// scheduling.
func cheapestEdges(g *core.Graph, vertices []string, workers int, less edgeOrder) ([]*core.Edge, error) {
	out := make([]*core.Edge, len(vertices))

	if workers <= 1 || len(vertices) < 2*workers {
		for i, v := range vertices {
			e, err := cheapestEdge(g, v, less)
			if err != nil {
				return nil, err
			}
			out[i] = e
		}
	} else {
		var eg errgroup.Group
		chunk := (len(vertices) + workers - 1) / workers
		for lo := 0; lo < len(vertices); lo += chunk {
			lo := lo
			hi := min(lo+chunk, len(vertices))
			eg.Go(func() error {
				for i := lo; i < hi; i++ {
					e, err := cheapestEdge(g, vertices[i], less)
					if err != nil {
						return err
					}
					out[i] = e
				}
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	}

	for i, e := range out {
		if e == nil {
			return nil, fmt.Errorf("%w: %q", ErrDisconnectedNode, vertices[i])
		}
	}

	return out, nil
}

// cheapestEdge returns v's minimum incident non-loop edge, or nil if none.
func cheapestEdge(g *core.Graph, v string, less edgeOrder) (*core.Edge, error) {
	nbrs, err := g.Neighbors(v)
	if err != nil {
		return nil, err
	}
	var best *core.Edge
	for _, e := range nbrs {
		if e.IsLoop() {
			continue
		}
		if best == nil || less(e, best) {
			best = e
		}
	}

	return best, nil
}
