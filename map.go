package pds

import (
	"fmt"
	"strings"

	"github.com/vecspine/pds/internal/tree234"
)

// kv is a Map's stored element: a key-value pair ordered by key alone.
type kv[K, V any] struct {
	k K
	v V
}

func liftKeyCmp[K, V any](cmpK CompareFunc[K]) tree234.CompareFunc[kv[K, V]] {
	return func(a, b kv[K, V]) int { return cmpK(a.k, b.k) }
}

// Map is a persistent ordered map from K to V, backed by a 2-3-4 tree
// keyed on K. The zero value is not usable directly; build one with
// EmptyMap so it carries a key comparator.
type Map[K, V any] struct {
	root  *tree234.Node[kv[K, V]]
	cmpK  CompareFunc[K]
	cmpKV tree234.CompareFunc[kv[K, V]]
}

// EmptyMap returns the empty Map, keyed by cmpK (or K's Comparer, if
// cmpK is nil).
func EmptyMap[K, V any](cmpK CompareFunc[K]) Map[K, V] {
	cmpK = resolveCompare(cmpK)
	return Map[K, V]{cmpK: cmpK, cmpKV: liftKeyCmp[K, V](cmpK)}
}

// Size returns m's entry count. O(1).
func (m Map[K, V]) Size() int { return tree234.Len(m.root) }

// Find looks up k in m. O(log n).
func (m Map[K, V]) Find(k K) (V, bool) {
	pair, ok := tree234.Search(m.root, kv[K, V]{k: k}, m.cmpKV)
	return pair.v, ok
}

// Insert returns a Map with k bound to v, replacing any prior binding. O(log n).
func (m Map[K, V]) Insert(k K, v V) Map[K, V] {
	root, _ := tree234.Insert(m.root, kv[K, V]{k: k, v: v}, m.cmpKV, true)
	return Map[K, V]{root: root, cmpK: m.cmpK, cmpKV: m.cmpKV}
}

// Erase returns a Map with k unbound. O(log n).
func (m Map[K, V]) Erase(k K) Map[K, V] {
	root, _ := tree234.Delete(m.root, kv[K, V]{k: k}, m.cmpKV)
	return Map[K, V]{root: root, cmpK: m.cmpK, cmpKV: m.cmpKV}
}

// Keys returns m's keys in ascending order.
func (m Map[K, V]) Keys() []K {
	pairs := tree234.ToList(m.root)
	out := make([]K, len(pairs))
	for i, p := range pairs {
		out[i] = p.k
	}
	return out
}

// Values returns m's values, ordered by ascending key.
func (m Map[K, V]) Values() []V {
	pairs := tree234.ToList(m.root)
	out := make([]V, len(pairs))
	for i, p := range pairs {
		out[i] = p.v
	}
	return out
}

// Split partitions m at k into (less, matched, greater): entries with
// keys below k, k's own binding if present, and entries with keys above
// k.
func (m Map[K, V]) Split(k K) (less Map[K, V], matched *V, greater Map[K, V]) {
	l, mid, g := tree234.Split(m.root, kv[K, V]{k: k}, m.cmpKV)
	less = Map[K, V]{root: l, cmpK: m.cmpK, cmpKV: m.cmpKV}
	greater = Map[K, V]{root: g, cmpK: m.cmpK, cmpKV: m.cmpKV}
	if mid != nil {
		matched = &mid.v
	}
	return
}

// MergeMaps unions a and b; on key overlap, a's binding wins.
func MergeMaps[K, V any](a, b Map[K, V]) Map[K, V] {
	return Map[K, V]{root: tree234.Union(a.root, b.root, a.cmpKV), cmpK: a.cmpK, cmpKV: a.cmpKV}
}

// FoldLMap folds m's entries left to right, in ascending key order.
func FoldLMap[K, V, A any](m Map[K, V], init A, f func(A, K, V) A) A {
	return tree234.FoldL(m.root, init, func(acc A, p kv[K, V]) A { return f(acc, p.k, p.v) })
}

// FoldRMap folds m's entries right to left, in ascending key order overall.
func FoldRMap[K, V, A any](m Map[K, V], init A, f func(K, V, A) A) A {
	return tree234.FoldR(m.root, init, func(p kv[K, V], acc A) A { return f(p.k, p.v, acc) })
}

// MapValues applies f to every value of m, keeping keys unchanged.
func MapValues[K, V, W any](m Map[K, V], f func(K, V) W) Map[K, W] {
	out := EmptyMap[K, W](m.cmpK)
	pairs := tree234.ToList(m.root)
	newPairs := make([]kv[K, W], len(pairs))
	for i, p := range pairs {
		newPairs[i] = kv[K, W]{k: p.k, v: f(p.k, p.v)}
	}
	out.root = tree234.FromList(newPairs, out.cmpKV)
	return out
}

// CompareMaps lexicographically compares a and b by (key, value) pairs in
// ascending key order. cmpV compares values.
func CompareMaps[K, V any](a, b Map[K, V], cmpV CompareFunc[V]) int {
	cmp := func(x, y kv[K, V]) int {
		if c := a.cmpK(x.k, y.k); c != 0 {
			return c
		}
		return cmpV(x.v, y.v)
	}
	return tree234.Compare(a.root, b.root, cmp)
}

// Show renders m as "{k0: v0, k1: v1, ...}" in ascending key order.
func (m Map[K, V]) Show() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	it := tree234.NewIter(m.root)
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%s: %s", showValue(p.k), showValue(p.v))
	}
	b.WriteByte('}')
	return b.String()
}

// VerifyMap checks m's tree balance and key-ordering invariants.
func VerifyMap[K, V any](m Map[K, V]) bool {
	return tree234.Verify(m.root, m.cmpKV)
}

// MapIter iterates m's entries in ascending key order.
type MapIter[K, V any] struct {
	it *tree234.Iter[kv[K, V]]
}

// NewMapIter returns an iterator positioned before m's first entry.
func NewMapIter[K, V any](m Map[K, V]) *MapIter[K, V] {
	return &MapIter[K, V]{it: tree234.NewIter(m.root)}
}

// Next advances the iterator, returning false once exhausted.
func (it *MapIter[K, V]) Next() (K, V, bool) {
	p, ok := it.it.Next()
	return p.k, p.v, ok
}
