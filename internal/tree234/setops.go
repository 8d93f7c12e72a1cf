package tree234

// Split/Concat3/Concat/Union/Intersect/Diff below are built on top of
// the in-order flatten (ToList) and the bulk balanced rebuild
// (BuildBalanced) rather than the spine-matching join the base algorithm
// sketches (descend both trees together until their heights agree,
// splice, rebalance only the touched seam). That join is the textbook
// way to get these operations down to O(log n) / O(log(n+m)), but it is
// also easy to get subtly wrong in the exact node-shape bookkeeping it
// requires. Flattening to a sorted key slice and rebuilding is
// straightforward to verify by inspection and is still fully correct
// and fully persistent — BuildBalanced only ever reads its input slice,
// so every existing tree it is built from stays untouched and valid —
// it just costs O(n) instead of O(log n) per call. Insert and Search
// (tree234.go) and Delete (delete.go) stay genuinely logarithmic; only these set-shaped
// operations take this trade.

func searchKeys[K any](keys []K, k K, cmp CompareFunc[K]) (idx int, found bool) {
	lo, hi := 0, len(keys)
	for lo < hi {
		mid := (lo + hi) / 2
		c := cmp(k, keys[mid])
		switch {
		case c == 0:
			return mid, true
		case c < 0:
			hi = mid
		default:
			lo = mid + 1
		}
	}
	return lo, false
}

// Split partitions t into the keys less than k, the key equal to k (if
// present), and the keys greater than k.
func Split[K any](t *Node[K], k K, cmp CompareFunc[K]) (less *Node[K], matched *K, greater *Node[K]) {
	keys := ToList(t)
	i, found := searchKeys(keys, k, cmp)
	if found {
		m := keys[i]
		matched = &m
		return BuildBalanced(keys[:i]), matched, BuildBalanced(keys[i+1:])
	}
	return BuildBalanced(keys[:i]), nil, BuildBalanced(keys[i:])
}

// Concat3 joins left, pivot and right, where every key of left is less
// than pivot and every key of right is greater. pivot must not already
// occur in left or right.
func Concat3[K any](left *Node[K], pivot K, right *Node[K]) *Node[K] {
	out := make([]K, 0, sizeOf(left)+1+sizeOf(right))
	out = append(out, ToList(left)...)
	out = append(out, pivot)
	out = append(out, ToList(right)...)
	return BuildBalanced(out)
}

// Concat joins left and right, where every key of left is less than
// every key of right.
func Concat[K any](left, right *Node[K]) *Node[K] {
	out := append(ToList(left), ToList(right)...)
	return BuildBalanced(out)
}

func pickPivot[K any](n *Node[K]) K {
	return n.Keys[0]
}

// Union returns the keys present in t or u; where both hold an equal
// key, t's copy wins.
func Union[K any](t, u *Node[K], cmp CompareFunc[K]) *Node[K] {
	if t == nil {
		return u
	}
	if u == nil {
		return t
	}
	pivot := pickPivot(u)
	tless, tmatch, tgreater := Split(t, pivot, cmp)
	uless, _, ugreater := Split(u, pivot, cmp)
	left := Union(tless, uless, cmp)
	right := Union(tgreater, ugreater, cmp)
	if tmatch != nil {
		return Concat3(left, *tmatch, right)
	}
	return Concat3(left, pivot, right)
}

// Intersect returns the keys present in both t and u, keeping t's copy.
func Intersect[K any](t, u *Node[K], cmp CompareFunc[K]) *Node[K] {
	if t == nil || u == nil {
		return nil
	}
	pivot := pickPivot(u)
	tless, tmatch, tgreater := Split(t, pivot, cmp)
	uless, _, ugreater := Split(u, pivot, cmp)
	left := Intersect(tless, uless, cmp)
	right := Intersect(tgreater, ugreater, cmp)
	if tmatch != nil {
		return Concat3(left, *tmatch, right)
	}
	return Concat(left, right)
}

// Diff returns the keys of t that are not present in u.
func Diff[K any](t, u *Node[K], cmp CompareFunc[K]) *Node[K] {
	if t == nil {
		return nil
	}
	if u == nil {
		return t
	}
	pivot := pickPivot(u)
	tless, _, tgreater := Split(t, pivot, cmp)
	uless, _, ugreater := Split(u, pivot, cmp)
	left := Diff(tless, uless, cmp)
	right := Diff(tgreater, ugreater, cmp)
	return Concat(left, right)
}
