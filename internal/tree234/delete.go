package tree234

import "slices"

func removeAt[K any](s []K, i int) []K {
	out := make([]K, 0, len(s)-1)
	out = append(out, s[:i]...)
	out = append(out, s[i+1:]...)
	return out
}

// Delete returns a tree with the key equal to k (under cmp) removed, and
// whether such a key existed. O(log n).
func Delete[K any](t *Node[K], k K, cmp CompareFunc[K]) (*Node[K], bool) {
	newRoot, existed, underflow := deleteRec(t, k, cmp)
	if !existed {
		return t, false
	}
	if underflow {
		if newRoot == nil {
			return nil, true
		}
		if len(newRoot.Keys) == 0 {
			if len(newRoot.Children) == 1 {
				return newRoot.Children[0], true
			}
			return nil, true
		}
	}
	return newRoot, true
}

// deleteRec removes k from the subtree rooted at n. The returned
// underflow flag means the returned node has 0 keys (and, if internal,
// exactly one surviving child); the caller must fold that node into a
// sibling via fixUnderflow, or, at the root, simply unwrap it.
func deleteRec[K any](n *Node[K], k K, cmp CompareFunc[K]) (result *Node[K], existed, underflow bool) {
	if n == nil {
		return nil, false, false
	}
	i, found := searchIndex(n, k, cmp)
	if isLeaf(n) {
		if !found {
			return n, false, false
		}
		newKeys := removeAt(n.Keys, i)
		return &Node[K]{Keys: newKeys, Size: len(newKeys)}, true, len(newKeys) == 0
	}
	if found {
		succKey, childResult, childUnderflow := deleteMin(n.Children[i+1])
		newKeys := slices.Clone(n.Keys)
		newKeys[i] = succKey
		newChildren := slices.Clone(n.Children)
		newChildren[i+1] = childResult
		merged := &Node[K]{Keys: newKeys, Children: newChildren}
		if childUnderflow {
			fixed, parentUnderflow := fixUnderflow(merged, i+1)
			fixed.Size = computeSize(fixed.Keys, fixed.Children)
			return fixed, true, parentUnderflow
		}
		merged.Size = computeSize(merged.Keys, merged.Children)
		return merged, true, false
	}
	childResult, existed, childUnderflow := deleteRec(n.Children[i], k, cmp)
	if !existed {
		return n, false, false
	}
	newChildren := slices.Clone(n.Children)
	newChildren[i] = childResult
	merged := &Node[K]{Keys: n.Keys, Children: newChildren}
	if childUnderflow {
		fixed, parentUnderflow := fixUnderflow(merged, i)
		fixed.Size = computeSize(fixed.Keys, fixed.Children)
		return fixed, true, parentUnderflow
	}
	merged.Size = computeSize(merged.Keys, merged.Children)
	return merged, true, false
}

// deleteMin removes and returns the smallest key in the subtree rooted
// at n, mirroring deleteRec's underflow propagation.
func deleteMin[K any](n *Node[K]) (minKey K, result *Node[K], underflow bool) {
	if isLeaf(n) {
		minKey = n.Keys[0]
		newKeys := n.Keys[1:]
		out := &Node[K]{Keys: slices.Clone(newKeys), Size: len(newKeys)}
		return minKey, out, len(newKeys) == 0
	}
	minKey, childResult, childUnderflow := deleteMin(n.Children[0])
	newChildren := slices.Clone(n.Children)
	newChildren[0] = childResult
	merged := &Node[K]{Keys: n.Keys, Children: newChildren}
	if childUnderflow {
		fixed, parentUnderflow := fixUnderflow(merged, 0)
		fixed.Size = computeSize(fixed.Keys, fixed.Children)
		return minKey, fixed, parentUnderflow
	}
	merged.Size = computeSize(merged.Keys, merged.Children)
	return minKey, merged, false
}

// fixUnderflow repairs parent.Children[idx], which has 0 keys, by
// rotating a key in from a sibling that can spare one, or else merging
// with a sibling and pulling the separating key down. It returns the
// repaired parent and whether the parent itself now underflows.
func fixUnderflow[K any](parent *Node[K], idx int) (*Node[K], bool) {
	children := slices.Clone(parent.Children)
	keys := slices.Clone(parent.Keys)
	child := children[idx]

	if idx > 0 && len(children[idx-1].Keys) > 1 {
		left := children[idx-1]
		newChildKeys := insertAt(child.Keys, 0, keys[idx-1])
		var newChildChildren, newLeftChildren []*Node[K]
		if !isLeaf(left) {
			borrowed := left.Children[len(left.Children)-1]
			newChildChildren = append([]*Node[K]{borrowed}, child.Children...)
			newLeftChildren = slices.Clone(left.Children[:len(left.Children)-1])
		}
		newChild := &Node[K]{Keys: newChildKeys, Children: newChildChildren}
		newChild.Size = computeSize(newChild.Keys, newChild.Children)
		newLeft := &Node[K]{Keys: slices.Clone(left.Keys[:len(left.Keys)-1]), Children: newLeftChildren}
		newLeft.Size = computeSize(newLeft.Keys, newLeft.Children)
		keys[idx-1] = left.Keys[len(left.Keys)-1]
		children[idx-1] = newLeft
		children[idx] = newChild
		return &Node[K]{Keys: keys, Children: children, Size: parent.Size}, false
	}

	if idx < len(children)-1 && len(children[idx+1].Keys) > 1 {
		right := children[idx+1]
		newChildKeys := append(slices.Clone(child.Keys), keys[idx])
		var newChildChildren, newRightChildren []*Node[K]
		if !isLeaf(right) {
			borrowed := right.Children[0]
			newChildChildren = append(slices.Clone(child.Children), borrowed)
			newRightChildren = slices.Clone(right.Children[1:])
		}
		newChild := &Node[K]{Keys: newChildKeys, Children: newChildChildren}
		newChild.Size = computeSize(newChild.Keys, newChild.Children)
		keys[idx] = right.Keys[0]
		newRight := &Node[K]{Keys: slices.Clone(right.Keys[1:]), Children: newRightChildren}
		newRight.Size = computeSize(newRight.Keys, newRight.Children)
		children[idx] = newChild
		children[idx+1] = newRight
		return &Node[K]{Keys: keys, Children: children, Size: parent.Size}, false
	}

	if idx < len(children)-1 {
		right := children[idx+1]
		mergedKeys := append(append(slices.Clone(child.Keys), keys[idx]), right.Keys...)
		mergedChildren := append(slices.Clone(child.Children), right.Children...)
		merged := &Node[K]{Keys: mergedKeys, Children: mergedChildren}
		merged.Size = computeSize(merged.Keys, merged.Children)
		newKeys := removeAt(keys, idx)
		newChildren := make([]*Node[K], 0, len(children)-1)
		newChildren = append(newChildren, children[:idx]...)
		newChildren = append(newChildren, merged)
		newChildren = append(newChildren, children[idx+2:]...)
		out := &Node[K]{Keys: newKeys, Children: newChildren}
		out.Size = parent.Size
		return out, len(newKeys) == 0
	}

	left := children[idx-1]
	mergedKeys := append(append(slices.Clone(left.Keys), keys[idx-1]), child.Keys...)
	mergedChildren := append(slices.Clone(left.Children), child.Children...)
	merged := &Node[K]{Keys: mergedKeys, Children: mergedChildren}
	merged.Size = computeSize(merged.Keys, merged.Children)
	newKeys := removeAt(keys, idx-1)
	newChildren := make([]*Node[K], 0, len(children)-1)
	newChildren = append(newChildren, children[:idx-1]...)
	newChildren = append(newChildren, merged)
	newChildren = append(newChildren, children[idx+1:]...)
	out := &Node[K]{Keys: newKeys, Children: newChildren}
	out.Size = parent.Size
	return out, len(newKeys) == 0
}
