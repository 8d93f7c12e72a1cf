// Package tree234 implements a persistent 2-3-4 tree: every node holds
// 1-3 keys and, if internal, exactly len(keys)+1 children, and every leaf
// sits at the same depth. It is the ordered engine behind the root
// package's Map and Set; it knows nothing about key/value pairs, only
// about a generic key type ordered by a caller-supplied comparator,
// matching the root package's CompareFunc idiom (slices.SortFunc-style,
// not a Comparable interface constraint).
//
// Insert and Delete clone the nodes on the touched root-to-leaf path and
// share every untouched subtree, the same path-copying discipline the
// teacher library uses for its route tries. The set-shaped operations in
// setops.go instead build a fresh tree from a flattened key slice; they
// share no nodes with their inputs and leave those inputs untouched.
package tree234

import "slices"

// CompareFunc totally orders K.
type CompareFunc[K any] func(a, b K) int

// Node is a 2-3-4 tree node. A nil *Node is the empty tree. Leaf nodes
// have a nil Children; internal nodes have len(Children) == len(Keys)+1.
// Size is the total key count of the subtree rooted here, cached so that
// Nth/Len are O(1) or O(log n) rather than O(n).
type Node[K any] struct {
	Keys     []K
	Children []*Node[K]
	Size     int
}

func isLeaf[K any](n *Node[K]) bool {
	return len(n.Children) == 0
}

func sizeOf[K any](n *Node[K]) int {
	if n == nil {
		return 0
	}
	return n.Size
}

func newLeaf[K any](keys ...K) *Node[K] {
	return &Node[K]{Keys: keys, Size: len(keys)}
}

func computeSize[K any](keys []K, children []*Node[K]) int {
	s := len(keys)
	for _, c := range children {
		s += sizeOf(c)
	}
	return s
}

// Len reports the number of keys in the tree rooted at n.
func Len[K any](n *Node[K]) int {
	return sizeOf(n)
}

// Depth reports the height of the tree rooted at n, 0 for an empty or
// single-leaf tree.
func Depth[K any](n *Node[K]) int {
	d := 0
	for n != nil && !isLeaf(n) {
		d++
		n = n.Children[0]
	}
	return d
}

func searchIndex[K any](n *Node[K], k K, cmp CompareFunc[K]) (idx int, found bool) {
	for i, key := range n.Keys {
		c := cmp(k, key)
		if c == 0 {
			return i, true
		}
		if c < 0 {
			return i, false
		}
	}
	return len(n.Keys), false
}

// Search returns the stored key equal to k (under cmp) and whether one
// was found. O(log n).
func Search[K any](n *Node[K], k K, cmp CompareFunc[K]) (K, bool) {
	for n != nil {
		i, found := searchIndex(n, k, cmp)
		if found {
			return n.Keys[i], true
		}
		if isLeaf(n) {
			break
		}
		n = n.Children[i]
	}
	var zero K
	return zero, false
}

func insertAt[K any](s []K, i int, k K) []K {
	out := make([]K, 0, len(s)+1)
	out = append(out, s[:i]...)
	out = append(out, k)
	out = append(out, s[i:]...)
	return out
}

// splitOverflow splits a temporary 4-key node (5-node) produced mid-insert
// into a left 2-node, a separator key, and a right 3-node.
func splitOverflow[K any](n *Node[K]) (left *Node[K], mid K, right *Node[K]) {
	mid = n.Keys[1]
	if isLeaf(n) {
		left = newLeaf(n.Keys[0])
		right = newLeaf(n.Keys[2], n.Keys[3])
		return
	}
	left = &Node[K]{Keys: []K{n.Keys[0]}, Children: slices.Clone(n.Children[0:2])}
	left.Size = computeSize(left.Keys, left.Children)
	right = &Node[K]{Keys: []K{n.Keys[2], n.Keys[3]}, Children: slices.Clone(n.Children[2:5])}
	right.Size = computeSize(right.Keys, right.Children)
	return
}

// insert recurses down, inserting k (or overwriting the equal key it
// finds, if overwrite is set), and returns a subtree root that may
// transiently carry 4 keys (5-node overflow); the caller is responsible
// for splitting any overflow it receives back.
func insert[K any](n *Node[K], k K, cmp CompareFunc[K], overwrite bool) (*Node[K], bool) {
	if n == nil {
		return newLeaf(k), false
	}
	i, found := searchIndex(n, k, cmp)
	if found {
		if !overwrite {
			return n, true
		}
		newKeys := slices.Clone(n.Keys)
		newKeys[i] = k
		return &Node[K]{Keys: newKeys, Children: n.Children, Size: n.Size}, true
	}
	if isLeaf(n) {
		newKeys := insertAt(n.Keys, i, k)
		return &Node[K]{Keys: newKeys, Size: len(newKeys)}, false
	}
	childResult, replaced := insert(n.Children[i], k, cmp, overwrite)
	if replaced {
		newChildren := slices.Clone(n.Children)
		newChildren[i] = childResult
		return &Node[K]{Keys: n.Keys, Children: newChildren, Size: n.Size}, true
	}
	if len(childResult.Keys) <= 3 {
		newChildren := slices.Clone(n.Children)
		newChildren[i] = childResult
		return &Node[K]{Keys: n.Keys, Children: newChildren, Size: n.Size + 1}, false
	}
	left, mid, right := splitOverflow(childResult)
	newKeys := insertAt(n.Keys, i, mid)
	newChildren := make([]*Node[K], 0, len(n.Children)+1)
	newChildren = append(newChildren, n.Children[:i]...)
	newChildren = append(newChildren, left, right)
	newChildren = append(newChildren, n.Children[i+1:]...)
	merged := &Node[K]{Keys: newKeys, Children: newChildren}
	merged.Size = computeSize(merged.Keys, merged.Children)
	return merged, false
}

// Insert returns a tree with k inserted (or, if overwrite is set and an
// equal key is already present, with that key replaced by k), and
// whether an equal key already existed. O(log n).
func Insert[K any](t *Node[K], k K, cmp CompareFunc[K], overwrite bool) (*Node[K], bool) {
	newRoot, replaced := insert(t, k, cmp, overwrite)
	if len(newRoot.Keys) > 3 {
		left, mid, right := splitOverflow(newRoot)
		newRoot = &Node[K]{Keys: []K{mid}, Children: []*Node[K]{left, right}}
		newRoot.Size = computeSize(newRoot.Keys, newRoot.Children)
	}
	return newRoot, replaced
}
