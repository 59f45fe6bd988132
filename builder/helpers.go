// Package builder provides internal helper functions
// used by Constructor implementations to build common topologies.
package builder

import (
	"fmt"

	"github.com/katalvlaran/boruvka/core"
)

// addVertices inserts cfg.idFn(0..n-1) into g in ascending index order and
// returns the IDs. AddVertex is idempotent, so re-running is a no-op.
//
// Complexity: O(n) time and space.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// addEdge adds u—v with the next configured weight, wrapping failures with
// the method context.
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weight(g)
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s—%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}
