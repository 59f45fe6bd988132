// Package disjointset provides a union-find (disjoint-set) structure over
// arbitrary comparable element identifiers, with two-pass path compression
// and union by rank.
//
// What & Why
//
//   - A DisjointSet tracks a partition of a fixed element set into disjoint
//     groups. Find returns a canonical representative of an element's group;
//     Union merges two groups.
//   - The Borůvka contraction engine builds one DisjointSet per round over the
//     current graph's vertices and discards it at round end; Kruskal uses one
//     to reject cycle-closing edges.
//
// Guarantees
//
//   - Find is iterative: it never recurses, whatever the chain length before
//     compression.
//   - After Find(x) every vertex visited on the way to the root points
//     directly at the root.
//   - Union by rank: the lower-rank root is attached under the higher-rank
//     root; on a tie y's root goes under x's root and that root's rank grows.
//     Together with path compression this keeps Find amortized near O(1).
//   - The representative of an element changes only through Union.
//   - There is no removal; the structure is write-once, merge-many.
//
// Errors
//
//	ErrKeyNotFound - Find/Union referenced an element that was never added.
//
// Complexity: New O(n); Find/Union O(α(n)) amortized; Sets O(n).
// Concurrency: a DisjointSet is not safe for concurrent mutation; even Find
// writes (compression). Own one per goroutine or guard it externally.
package disjointset
