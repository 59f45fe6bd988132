// SPDX-License-Identifier: MIT
// Package: boruvka/builder
//
// impl_random_connected.go - implementation of RandomConnected(n, extra) constructor.
//
// Canonical model:
//   - Random recursive tree: vertices are visited in a random permutation and
//     each one attaches to a uniformly chosen earlier vertex. This guarantees
//     connectivity with exactly n-1 edges.
//   - Then `extra` further distinct pairs are added uniformly at random.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); extra ≥ 0 (else ErrTooFewVertices).
//   - extra ≤ n(n-1)/2 - (n-1) (else ErrConstructFailed).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Never emits loops or parallel edges.
//   - Weight policy: if g.Weighted() then cfg.weightFn(cfg.rng) else 0.
//
// Complexity:
//   - Sparse extra (≤ half of the free pairs): O(n + extra) expected, by
//     rejection sampling.
//   - Dense extra: O(n²) by enumerating the free pairs and shuffling them.
//
// Determinism:
//   - All draws come from cfg.rng in a fixed order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/boruvka/core"
)

const (
	methodRandomConnected = "RandomConnected"
	minConnectedVertices  = 1
)

// RandomConnected returns a Constructor that builds a connected random graph
// with n vertices and n-1+extra edges.
func RandomConnected(n, extra int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minConnectedVertices || extra < 0 {
			return fmt.Errorf("%s: n=%d, extra=%d: %w", methodRandomConnected, n, extra, ErrTooFewVertices)
		}
		free := n*(n-1)/2 - (n - 1)
		if extra > free {
			return fmt.Errorf("%s: extra=%d exceeds %d free pairs: %w",
				methodRandomConnected, extra, free, ErrConstructFailed)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomConnected, ErrNeedRandSource)
		}

		ids, err := addVertices(g, cfg, methodRandomConnected, n)
		if err != nil {
			return err
		}

		// used records emitted pairs as i*n+j with i<j.
		used := make(map[int]struct{}, n-1+extra)
		link := func(i, j int) error {
			if i > j {
				i, j = j, i
			}
			used[i*n+j] = struct{}{}
			return addEdge(g, cfg, methodRandomConnected, ids[i], ids[j])
		}

		// 1) Spanning tree.
		perm := cfg.rng.Perm(n)
		for k := 1; k < n; k++ {
			if err = link(perm[k], perm[cfg.rng.Intn(k)]); err != nil {
				return err
			}
		}

		// 2) Extra edges.
		if extra == 0 {
			return nil
		}
		if 2*extra <= free {
			for added := 0; added < extra; {
				i, j := cfg.rng.Intn(n), cfg.rng.Intn(n)
				if i == j {
					continue
				}
				if i > j {
					i, j = j, i
				}
				if _, dup := used[i*n+j]; dup {
					continue
				}
				if err = link(i, j); err != nil {
					return err
				}
				added++
			}
			return nil
		}

		candidates := make([][2]int, 0, free)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if _, dup := used[i*n+j]; !dup {
					candidates = append(candidates, [2]int{i, j})
				}
			}
		}
		cfg.rng.Shuffle(len(candidates), func(a, b int) {
			candidates[a], candidates[b] = candidates[b], candidates[a]
		})
		for _, c := range candidates[:extra] {
			if err = link(c[0], c[1]); err != nil {
				return err
			}
		}

		return nil
	}
}
