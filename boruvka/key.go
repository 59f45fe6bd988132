package boruvka

import (
	"sort"

	"github.com/katalvlaran/boruvka/core"
)

// EdgeKey is an unordered vertex pair normalised so that U < V.
// It is comparable and serves directly as a map key.
type EdgeKey struct {
	U, V string
}

// NewEdgeKey returns the canonical key for the pair {u, v}.
// ok is false when u == v: a self-loop has no key.
func NewEdgeKey(u, v string) (k EdgeKey, ok bool) {
	switch {
	case u < v:
		return EdgeKey{U: u, V: v}, true
	case u > v:
		return EdgeKey{U: v, V: u}, true
	default:
		return EdgeKey{}, false
	}
}

// KeyOf returns the key of e's endpoints.
func KeyOf(e core.Edge) (EdgeKey, bool) { return NewEdgeKey(e.From, e.To) }

// Less orders keys by U, then V.
func (k EdgeKey) Less(o EdgeKey) bool {
	if k.U != o.U {
		return k.U < o.U
	}

	return k.V < o.V
}

func (k EdgeKey) String() string { return k.U + "-" + k.V }

// KeySet is a set of edge keys.
type KeySet map[EdgeKey]struct{}

// Add inserts k.
func (s KeySet) Add(k EdgeKey) { s[k] = struct{}{} }

// Has reports whether k is in s.
func (s KeySet) Has(k EdgeKey) bool {
	_, ok := s[k]

	return ok
}

// Union adds every key of o to s.
func (s KeySet) Union(o KeySet) {
	for k := range o {
		s[k] = struct{}{}
	}
}

// Len returns the number of keys.
func (s KeySet) Len() int { return len(s) }

// Sorted returns the keys in EdgeKey.Less order.
func (s KeySet) Sorted() []EdgeKey {
	out := make([]EdgeKey, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}
