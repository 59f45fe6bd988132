package disjointset

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound indicates an operation referenced an element unknown to the set.
var ErrKeyNotFound = errors.New("disjointset: key not found")

// DisjointSet is a union-find structure over elements of type T.
// The zero value is not usable; construct with New.
type DisjointSet[T comparable] struct {
	parent map[T]T   // parent[x] == x iff x is a root
	rank   map[T]int // upper bound on tree height; meaningful for roots only
	order  []T       // insertion order, for deterministic Sets()
	count  int       // number of disjoint sets remaining
}

// New builds a DisjointSet in which every element of elems is its own
// singleton set with rank 0. Duplicate elements are ignored.
// An empty elems is valid: Count() is 0 and every lookup reports ErrKeyNotFound.
// Complexity: O(n).
func New[T comparable](elems ...T) *DisjointSet[T] {
	d := &DisjointSet[T]{
		parent: make(map[T]T, len(elems)),
		rank:   make(map[T]int, len(elems)),
		order:  make([]T, 0, len(elems)),
	}
	for _, x := range elems {
		if _, dup := d.parent[x]; dup {
			continue
		}
		d.parent[x] = x
		d.rank[x] = 0
		d.order = append(d.order, x)
	}
	d.count = len(d.order)

	return d
}

// Has reports whether x is a known element.
func (d *DisjointSet[T]) Has(x T) bool {
	_, ok := d.parent[x]

	return ok
}

// Len returns the number of elements.
func (d *DisjointSet[T]) Len() int { return len(d.order) }

// Count returns the number of disjoint sets.
func (d *DisjointSet[T]) Count() int { return d.count }

// Find returns the representative of the set containing x.
//
// The first pass walks parent links to the root; the second re-points every
// visited element directly at that root.
//
// Errors: ErrKeyNotFound if x was never added.
// Complexity: O(α(n)) amortized.
func (d *DisjointSet[T]) Find(x T) (T, error) {
	if _, ok := d.parent[x]; !ok {
		var zero T
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, x)
	}

	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for x != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}

	return root, nil
}

// Union merges the sets containing x and y.
// It reports true if two distinct sets were merged, false if x and y were
// already together (no-op).
//
// Errors: ErrKeyNotFound if either element is unknown; nothing is merged then.
// Complexity: O(α(n)) amortized.
func (d *DisjointSet[T]) Union(x, y T) (bool, error) {
	rx, err := d.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := d.Find(y)
	if err != nil {
		return false, err
	}
	if rx == ry {
		return false, nil
	}

	switch {
	case d.rank[rx] < d.rank[ry]:
		d.parent[rx] = ry
	case d.rank[rx] > d.rank[ry]:
		d.parent[ry] = rx
	default:
		d.parent[ry] = rx
		d.rank[rx]++
	}
	d.count--

	return true, nil
}

// Connected reports whether x and y belong to the same set.
// Errors: ErrKeyNotFound if either element is unknown.
func (d *DisjointSet[T]) Connected(x, y T) (bool, error) {
	rx, err := d.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := d.Find(y)
	if err != nil {
		return false, err
	}

	return rx == ry, nil
}

// Sets returns the current partition. Groups are ordered by the insertion
// position of their first element, and each group lists its elements in
// insertion order.
// Complexity: O(n α(n)).
func (d *DisjointSet[T]) Sets() [][]T {
	index := make(map[T]int, d.count)
	out := make([][]T, 0, d.count)
	for _, x := range d.order {
		root, _ := d.Find(x) // x is known by construction
		i, ok := index[root]
		if !ok {
			i = len(out)
			index[root] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], x)
	}

	return out
}
