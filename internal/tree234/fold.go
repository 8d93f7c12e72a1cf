package tree234

import "strings"

// FoldL folds the keys of t in ascending order.
func FoldL[K, A any](t *Node[K], init A, f func(A, K) A) A {
	acc := init
	it := NewIter(t)
	for {
		k, ok := it.Next()
		if !ok {
			return acc
		}
		acc = f(acc, k)
	}
}

// FoldR folds the keys of t in descending order. The keys are
// materialized first so this does not recurse to a depth proportional
// to t's size.
func FoldR[K, A any](t *Node[K], init A, f func(K, A) A) A {
	keys := ToList(t)
	acc := init
	for i := len(keys) - 1; i >= 0; i-- {
		acc = f(keys[i], acc)
	}
	return acc
}

// Compare lexicographically compares the ascending key sequences of t
// and u.
func Compare[K any](t, u *Node[K], cmp CompareFunc[K]) int {
	it1, it2 := NewIter(t), NewIter(u)
	for {
		k1, ok1 := it1.Next()
		k2, ok2 := it2.Next()
		switch {
		case !ok1 && !ok2:
			return 0
		case !ok1:
			return -1
		case !ok2:
			return 1
		}
		if c := cmp(k1, k2); c != 0 {
			return c
		}
	}
}

// Show renders t's keys as "{k0,k1,...,kn}" using show for each key.
func Show[K any](t *Node[K], show func(K) string) string {
	var b strings.Builder
	b.WriteByte('{')
	it := NewIter(t)
	first := true
	for {
		k, ok := it.Next()
		if !ok {
			break
		}
		if !first {
			b.WriteByte(',')
		}
		first = false
		b.WriteString(show(k))
	}
	b.WriteByte('}')
	return b.String()
}

// Verify checks every structural invariant: node arity, ordering within
// and across nodes, equal leaf depth, and cached size correctness. It
// is never invoked by normal operation; its presence is a self-check
// for the containers built atop this package.
func Verify[K any](t *Node[K], cmp CompareFunc[K]) bool {
	_, _, ok := verify(t, cmp, nil, nil)
	return ok
}

func verify[K any](n *Node[K], cmp CompareFunc[K], lo, hi *K) (depth, size int, ok bool) {
	if n == nil {
		return 0, 0, true
	}
	nk := len(n.Keys)
	if nk < 1 || nk > 3 {
		return 0, 0, false
	}
	for i := 1; i < nk; i++ {
		if cmp(n.Keys[i-1], n.Keys[i]) >= 0 {
			return 0, 0, false
		}
	}
	if lo != nil && cmp(*lo, n.Keys[0]) >= 0 {
		return 0, 0, false
	}
	if hi != nil && cmp(n.Keys[nk-1], *hi) >= 0 {
		return 0, 0, false
	}
	if isLeaf(n) {
		if n.Size != nk {
			return 0, 0, false
		}
		return 0, nk, true
	}
	if len(n.Children) != nk+1 {
		return 0, 0, false
	}
	size = nk
	var depth0 int
	for i, child := range n.Children {
		var clo, chi *K
		if i > 0 {
			clo = &n.Keys[i-1]
		}
		if i < nk {
			chi = &n.Keys[i]
		}
		d, s, childOK := verify(child, cmp, clo, chi)
		if !childOK {
			return 0, 0, false
		}
		if i == 0 {
			depth0 = d
		} else if d != depth0 {
			return 0, 0, false
		}
		size += s
	}
	if size != n.Size {
		return 0, 0, false
	}
	return depth0 + 1, size, true
}
