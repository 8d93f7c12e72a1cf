// Package finger implements the positional spine shared by String and
// Vector: a classical Hinze-Paterson 2-3 finger tree of "fragments" —
// byte chunks for String, single wrapped elements for Vector — ordered
// by position rather than by key, giving O(1) amortized push/pop at
// both ends, O(log min(m,n)) concatenation and O(log n) split.
//
// A finger tree nests a different element type at every level: level 0
// holds fragments, level 1 holds 2-3 groupings of fragments (node2/
// node3), level 2 holds 2-3 groupings of those, and so on to whatever
// depth the tree's size requires. Expressing that directly would need
// a type parameter for "the element type one level down", i.e.
// polymorphic recursion over an unbounded chain of instantiations,
// which Go's generics do not support. Instead every level above the
// leaves is type-erased through the measured interface (identical in
// shape to Fragment): node2 and node3 hold measured children, and the
// spine's own middle field recurses through the same generic Node[F]
// regardless of which level it actually represents. F only means
// anything at the two edges of the API: boxing a caller's F into a
// measured when it goes in, and asserting a measured back to F when a
// true leaf comes out. Every interior operation works purely in terms
// of Len(), never caring whether a given measured is a leaf fragment
// or a deeper node.
package finger

// Fragment is the unit of content a spine holds at its leaves.
type Fragment interface {
	Len() int
}

// measured is the type-erased view used for anything one level above
// the leaves: a node2, a node3, or (at the leaves themselves) an F.
// Its method set is identical to Fragment's by construction, so any
// Fragment already satisfies it.
type measured interface {
	Len() int
}

// node2 and node3 are the 2-3 groupings a finger tree promotes digit
// overflow into. Each level's node2/node3 wraps the level below's
// measured values (fragments at level 1, node2/node3 of fragments at
// level 2, and so on).
type node2 struct {
	a, b measured
	size int
}

func (n node2) Len() int { return n.size }

func mkNode2(a, b measured) node2 {
	return node2{a: a, b: b, size: a.Len() + b.Len()}
}

type node3 struct {
	a, b, c measured
	size    int
}

func (n node3) Len() int { return n.size }

func mkNode3(a, b, c measured) node3 {
	return node3{a: a, b: b, c: c, size: a.Len() + b.Len() + c.Len()}
}

func nodeChildren(n measured) []measured {
	switch v := n.(type) {
	case node2:
		return []measured{v.a, v.b}
	case node3:
		return []measured{v.a, v.b, v.c}
	default:
		panic("finger: nodeChildren: not a node2/node3")
	}
}

// digit holds 1-4 same-level measured values at one end of a deep
// spine, per the base spec's digit arity invariant.
type digit struct {
	items []measured
	size  int
}

func mkDigit(items ...measured) digit {
	d := digit{items: items}
	for _, it := range items {
		d.size += it.Len()
	}
	return d
}

type kind uint8

const (
	kSingle kind = iota
	kDeep
)

// Node is a spine over Fragment F. A nil *Node is the empty spine; a
// kSingle node holds exactly one same-level value; a kDeep node holds
// a left digit, a middle spine one level deeper, and a right digit.
// The type parameter F only has meaning at the leaves: the struct's
// fields are otherwise untyped (measured, digit, *Node[F] recursing
// into itself regardless of level), which is what lets one generic
// type stand in for the whole unbounded nesting.
type Node[F Fragment] struct {
	kind   kind
	elem   measured // valid when kind == kSingle
	size   int
	left   digit    // valid when kind == kDeep
	middle *Node[F] // valid when kind == kDeep; nil means no deeper elements
	right  digit    // valid when kind == kDeep
}

func sizeOf[F Fragment](t *Node[F]) int {
	if t == nil {
		return 0
	}
	return t.size
}

// Len reports the sum of fragment lengths (total codepoints for
// String, total elements for Vector) in the spine rooted at t. O(1).
func Len[F Fragment](t *Node[F]) int { return sizeOf(t) }

// Single returns a one-fragment spine.
func Single[F Fragment](f F) *Node[F] {
	return &Node[F]{kind: kSingle, elem: measured(f), size: f.Len()}
}

func newDeep[F Fragment](left digit, middle *Node[F], right digit) *Node[F] {
	return &Node[F]{kind: kDeep, left: left, middle: middle, right: right, size: left.size + sizeOf(middle) + right.size}
}

// treeFromItems builds a spine directly from 0-4 same-level items,
// used when a digit empties out and there's no middle to borrow from.
func treeFromItems[F Fragment](items []measured) *Node[F] {
	if len(items) == 0 {
		return nil
	}
	t := &Node[F]{kind: kSingle, elem: items[len(items)-1], size: items[len(items)-1].Len()}
	for i := len(items) - 2; i >= 0; i-- {
		t = pushFrontValue(t, items[i])
	}
	return t
}

func digitFromNode(n measured) digit {
	return mkDigit(nodeChildren(n)...)
}

// pushFrontValue and pushBackValue are PushFront/PushBack generalized
// to push a same-level measured value rather than a literal F; this is
// what lets push recurse into middle (which holds node2/node3, not F)
// using the same code as the public, F-typed entry point.
func pushFrontValue[F Fragment](t *Node[F], x measured) *Node[F] {
	if t == nil {
		return &Node[F]{kind: kSingle, elem: x, size: x.Len()}
	}
	switch t.kind {
	case kSingle:
		return newDeep[F](mkDigit(x), nil, mkDigit(t.elem))
	default:
		if len(t.left.items) < 4 {
			items := make([]measured, 0, len(t.left.items)+1)
			items = append(items, x)
			items = append(items, t.left.items...)
			return newDeep[F](mkDigit(items...), t.middle, t.right)
		}
		items := t.left.items
		promoted := mkNode3(items[1], items[2], items[3])
		newMiddle := pushFrontValue(t.middle, measured(promoted))
		return newDeep[F](mkDigit(x, items[0]), newMiddle, t.right)
	}
}

func pushBackValue[F Fragment](t *Node[F], x measured) *Node[F] {
	if t == nil {
		return &Node[F]{kind: kSingle, elem: x, size: x.Len()}
	}
	switch t.kind {
	case kSingle:
		return newDeep[F](mkDigit(t.elem), nil, mkDigit(x))
	default:
		if len(t.right.items) < 4 {
			items := make([]measured, 0, len(t.right.items)+1)
			items = append(items, t.right.items...)
			items = append(items, x)
			return newDeep[F](t.left, t.middle, mkDigit(items...))
		}
		items := t.right.items
		promoted := mkNode3(items[0], items[1], items[2])
		newMiddle := pushBackValue(t.middle, measured(promoted))
		return newDeep[F](t.left, newMiddle, mkDigit(items[3], x))
	}
}

// PushFront prepends f as a new first fragment. Amortized O(1): an
// overflow leaves two items in the digit, so at a given level a digit
// overflows into the middle at most once every three pushes, and the
// two pushes that refilled it pay for that overflow.
func PushFront[F Fragment](t *Node[F], f F) *Node[F] {
	return pushFrontValue(t, measured(f))
}

// PushBack appends f as a new last fragment. Amortized O(1).
func PushBack[F Fragment](t *Node[F], f F) *Node[F] {
	return pushBackValue(t, measured(f))
}

// PeekFront returns the first fragment, if any. O(1).
func PeekFront[F Fragment](t *Node[F]) (F, bool) {
	var zero F
	if t == nil {
		return zero, false
	}
	switch t.kind {
	case kSingle:
		return t.elem.(F), true
	default:
		return t.left.items[0].(F), true
	}
}

// PeekBack returns the last fragment, if any. O(1).
func PeekBack[F Fragment](t *Node[F]) (F, bool) {
	var zero F
	if t == nil {
		return zero, false
	}
	switch t.kind {
	case kSingle:
		return t.elem.(F), true
	default:
		n := len(t.right.items)
		return t.right.items[n-1].(F), true
	}
}

// deepL rebuilds a kDeep node whose left digit just ran out, borrowing
// the next node from middle (demoting it back into a digit) or, if
// middle is empty too, collapsing to whatever's left of right.
func deepL[F Fragment](middle *Node[F], right digit) *Node[F] {
	if middle == nil {
		return treeFromItems[F](right.items)
	}
	node, rest, _ := popFrontValue(middle)
	return newDeep[F](digitFromNode(node), rest, right)
}

func deepR[F Fragment](left digit, middle *Node[F]) *Node[F] {
	if middle == nil {
		return treeFromItems[F](left.items)
	}
	node, rest, _ := popBackValue(middle)
	return newDeep[F](left, rest, digitFromNode(node))
}

func popFrontValue[F Fragment](t *Node[F]) (measured, *Node[F], bool) {
	if t == nil {
		return nil, nil, false
	}
	switch t.kind {
	case kSingle:
		return t.elem, nil, true
	default:
		if len(t.left.items) > 1 {
			x := t.left.items[0]
			rest := mkDigit(t.left.items[1:]...)
			return x, newDeep[F](rest, t.middle, t.right), true
		}
		x := t.left.items[0]
		return x, deepL(t.middle, t.right), true
	}
}

func popBackValue[F Fragment](t *Node[F]) (measured, *Node[F], bool) {
	if t == nil {
		return nil, nil, false
	}
	switch t.kind {
	case kSingle:
		return t.elem, nil, true
	default:
		n := len(t.right.items)
		if n > 1 {
			x := t.right.items[n-1]
			rest := mkDigit(t.right.items[:n-1]...)
			return x, newDeep[F](t.left, t.middle, rest), true
		}
		x := t.right.items[0]
		return x, deepR(t.left, t.middle), true
	}
}

// PopFront removes and returns the first fragment. Amortized O(1).
func PopFront[F Fragment](t *Node[F]) (F, *Node[F], bool) {
	v, rest, ok := popFrontValue(t)
	if !ok {
		var zero F
		return zero, nil, false
	}
	return v.(F), rest, true
}

// PopBack removes and returns the last fragment. Amortized O(1).
func PopBack[F Fragment](t *Node[F]) (F, *Node[F], bool) {
	v, rest, ok := popBackValue(t)
	if !ok {
		var zero F
		return zero, nil, false
	}
	return v.(F), rest, true
}

// ReplaceFront replaces the first fragment with f. Amortized O(1).
func ReplaceFront[F Fragment](t *Node[F], f F) *Node[F] {
	_, rest, ok := popFrontValue(t)
	if !ok {
		return Single(f)
	}
	return pushFrontValue(rest, measured(f))
}

// ReplaceBack replaces the last fragment with f. Amortized O(1).
func ReplaceBack[F Fragment](t *Node[F], f F) *Node[F] {
	_, rest, ok := popBackValue(t)
	if !ok {
		return Single(f)
	}
	return pushBackValue(rest, measured(f))
}

// nodesOf regroups a run of same-level items into 2-3 nodes one level
// up, the way app3 rebuilds a shared middle out of two trees' inner
// digits plus whatever's being spliced between them. The base spec's
// design notes call out n==5 as the case implementations most often
// get wrong: it must split 3-then-2, not 2-then-3 then stall, and
// nodesOf's general n>=5 case (peel a node3, recurse on the rest)
// produces exactly that split without needing n==5 as a distinct case.
func nodesOf(xs []measured) []measured {
	switch len(xs) {
	case 2:
		return []measured{mkNode2(xs[0], xs[1])}
	case 3:
		return []measured{mkNode3(xs[0], xs[1], xs[2])}
	case 4:
		return []measured{mkNode2(xs[0], xs[1]), mkNode2(xs[2], xs[3])}
	default:
		return append([]measured{mkNode3(xs[0], xs[1], xs[2])}, nodesOf(xs[3:])...)
	}
}

func prependValues[F Fragment](xs []measured, t *Node[F]) *Node[F] {
	for i := len(xs) - 1; i >= 0; i-- {
		t = pushFrontValue(t, xs[i])
	}
	return t
}

func appendValues[F Fragment](t *Node[F], xs []measured) *Node[F] {
	for _, x := range xs {
		t = pushBackValue(t, x)
	}
	return t
}

// app3 concatenates t1 and t2 with the items of ts spliced between
// them, the classical three-way merge: it pulls in t1's right digit
// and t2's left digit alongside ts, regroups the combination via
// nodesOf, and recurses one level deeper into t1 and t2's own middles.
func app3[F Fragment](t1 *Node[F], ts []measured, t2 *Node[F]) *Node[F] {
	switch {
	case t1 == nil:
		return prependValues(ts, t2)
	case t2 == nil:
		return appendValues(t1, ts)
	case t1.kind == kSingle:
		return pushFrontValue(prependValues(ts, t2), t1.elem)
	case t2.kind == kSingle:
		return pushBackValue(appendValues(t1, ts), t2.elem)
	default:
		combined := make([]measured, 0, len(t1.right.items)+len(ts)+len(t2.left.items))
		combined = append(combined, t1.right.items...)
		combined = append(combined, ts...)
		combined = append(combined, t2.left.items...)
		newMiddle := app3(t1.middle, nodesOf(combined), t2.middle)
		return newDeep[F](t1.left, newMiddle, t2.right)
	}
}

// Append concatenates t and u. O(log min(Len(t),Len(u))), via app3.
func Append[F Fragment](t, u *Node[F]) *Node[F] {
	return app3(t, nil, u)
}

// BuildBalanced builds a spine holding frags in order. Implemented as
// a fold of PushBack — each push amortized O(1) — for O(n) total.
func BuildBalanced[F Fragment](frags []F) *Node[F] {
	var t *Node[F]
	for _, f := range frags {
		t = PushBack(t, f)
	}
	return t
}

// Flatten returns every fragment of t in order. O(n).
func Flatten[F Fragment](t *Node[F]) []F {
	var out []F
	var walkValue func(measured)
	walkValue = func(m measured) {
		switch v := m.(type) {
		case node2:
			walkValue(v.a)
			walkValue(v.b)
		case node3:
			walkValue(v.a)
			walkValue(v.b)
			walkValue(v.c)
		default:
			out = append(out, v.(F))
		}
	}
	var walk func(*Node[F])
	walk = func(n *Node[F]) {
		if n == nil {
			return
		}
		switch n.kind {
		case kSingle:
			walkValue(n.elem)
		default:
			for _, it := range n.left.items {
				walkValue(it)
			}
			walk(n.middle)
			for _, it := range n.right.items {
				walkValue(it)
			}
		}
	}
	walk(t)
	return out
}

// locateValue finds the leaf fragment at offset pos within m, which
// may itself be a leaf already or an arbitrarily deep node2/node3.
func locateValue(pos int, m measured) (int, measured) {
	switch v := m.(type) {
	case node2:
		if pos < v.a.Len() {
			return locateValue(pos, v.a)
		}
		return locateValue(pos-v.a.Len(), v.b)
	case node3:
		if pos < v.a.Len() {
			return locateValue(pos, v.a)
		}
		pos -= v.a.Len()
		if pos < v.b.Len() {
			return locateValue(pos, v.b)
		}
		return locateValue(pos-v.b.Len(), v.c)
	default:
		return pos, m
	}
}

func itemAt(pos int, items []measured) (int, measured) {
	acc := 0
	for _, it := range items {
		sz := it.Len()
		if pos < acc+sz {
			return locateValue(pos-acc, it)
		}
		acc += sz
	}
	panic("finger: itemAt: offset out of range")
}

func locateCore[F Fragment](t *Node[F], pos int) (int, measured) {
	switch t.kind {
	case kSingle:
		return locateValue(pos, t.elem)
	default:
		if pos < t.left.size {
			return itemAt(pos, t.left.items)
		}
		pos -= t.left.size
		if pos < sizeOf(t.middle) {
			return locateCore(t.middle, pos)
		}
		pos -= sizeOf(t.middle)
		return itemAt(pos, t.right.items)
	}
}

// Locate finds the fragment containing logical offset (a position in
// [0, Len(t))), returning the offset within that fragment and the
// fragment itself, without rebuilding any part of the spine. O(log n).
func Locate[F Fragment](t *Node[F], offset int) (innerOffset int, frag F, ok bool) {
	if t == nil || offset < 0 || offset >= t.size {
		var zero F
		return 0, zero, false
	}
	inner, v := locateCore(t, offset)
	return inner, v.(F), true
}

// splitItemsAt finds which item of items contains logical offset pos,
// splitting items into copies of the ones strictly before it, the item
// itself, and the ones strictly after.
func splitItemsAt(pos int, items []measured) (left []measured, mid measured, right []measured) {
	acc := 0
	for i, it := range items {
		next := acc + it.Len()
		if pos < next {
			left = append([]measured(nil), items[:i]...)
			right = append([]measured(nil), items[i+1:]...)
			mid = it
			return
		}
		acc = next
	}
	panic("finger: splitItemsAt: offset out of range")
}

func deepLItems[F Fragment](items []measured, middle *Node[F], right digit) *Node[F] {
	if len(items) > 0 {
		return newDeep[F](mkDigit(items...), middle, right)
	}
	return deepL(middle, right)
}

func deepRItems[F Fragment](left digit, middle *Node[F], items []measured) *Node[F] {
	if len(items) > 0 {
		return newDeep[F](left, middle, mkDigit(items...))
	}
	return deepR(left, middle)
}

// splitCore splits t at logical offset pos (0 <= pos < Len(t)) into
// (left, mid, right), where mid is the same-level element containing
// pos. When pos falls in t's middle, it recurses one level deeper and
// then unwraps exactly one more level (via splitItemsAt over the found
// node2/node3's children) to land back at t's own level.
func splitCore[F Fragment](t *Node[F], pos int) (*Node[F], measured, *Node[F]) {
	switch t.kind {
	case kSingle:
		return nil, t.elem, nil
	default:
		if pos < t.left.size {
			lItems, mid, rItems := splitItemsAt(pos, t.left.items)
			return treeFromItems[F](lItems), mid, deepLItems(rItems, t.middle, t.right)
		}
		pos -= t.left.size
		if midSize := sizeOf(t.middle); pos < midSize {
			ml, node, mr := splitCore(t.middle, pos)
			consumed := sizeOf(ml)
			nItems, mid, rItems := splitItemsAt(pos-consumed, nodeChildren(node))
			return deepRItems(t.left, ml, nItems), mid, deepLItems(rItems, mr, t.right)
		} else {
			pos -= midSize
			lItems, mid, rItems := splitItemsAt(pos, t.right.items)
			return deepRItems(t.left, t.middle, lItems), mid, treeFromItems[F](rItems)
		}
	}
}

// Split divides t at logical offset i (0 <= i < Len(t)) into the spine
// before the fragment containing i, that fragment, the offset of i
// within it, and the spine after it. O(log n).
func Split[F Fragment](t *Node[F], i int) (left *Node[F], frag F, innerOffset int, right *Node[F], ok bool) {
	if t == nil || i < 0 || i >= t.size {
		var zero F
		return nil, zero, 0, nil, false
	}
	l, mid, r := splitCore(t, i)
	return l, mid.(F), i - sizeOf(l), r, true
}

// FoldL folds t's fragments left to right.
func FoldL[F Fragment, A any](t *Node[F], init A, f func(A, F) A) A {
	acc := init
	for _, frag := range Flatten(t) {
		acc = f(acc, frag)
	}
	return acc
}

// FoldR folds t's fragments right to left.
func FoldR[F Fragment, A any](t *Node[F], init A, f func(F, A) A) A {
	frags := Flatten(t)
	acc := init
	for i := len(frags) - 1; i >= 0; i-- {
		acc = f(frags[i], acc)
	}
	return acc
}

// MapFragments rebuilds a spine by applying f to every fragment of t.
func MapFragments[F Fragment, G Fragment](t *Node[F], f func(F) G) *Node[G] {
	var out *Node[G]
	for _, frag := range Flatten(t) {
		out = PushBack(out, f(frag))
	}
	return out
}

// Compare lexicographically compares t and u's fragment sequences using
// cmp, with a shorter sequence that is a prefix of the other ranking
// first.
func Compare[F Fragment](t, u *Node[F], cmp func(F, F) int) int {
	ft, fu := Flatten(t), Flatten(u)
	n := min(len(ft), len(fu))
	for i := 0; i < n; i++ {
		if c := cmp(ft[i], fu[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(ft) == len(fu):
		return 0
	case len(ft) < len(fu):
		return -1
	default:
		return 1
	}
}

// Iter is a forward cursor over a spine's fragments.
type Iter[F Fragment] struct {
	frags []F
	pos   int
}

// NewIter returns an iterator positioned before t's first fragment.
func NewIter[F Fragment](t *Node[F]) *Iter[F] {
	return &Iter[F]{frags: Flatten(t)}
}

// Next returns the next fragment, or ok=false when exhausted.
func (it *Iter[F]) Next() (f F, ok bool) {
	if it.pos >= len(it.frags) {
		var zero F
		return zero, false
	}
	f = it.frags[it.pos]
	it.pos++
	return f, true
}

func verifyValue[F Fragment](m measured) (int, bool) {
	switch v := m.(type) {
	case node2:
		sa, oka := verifyValue[F](v.a)
		sb, okb := verifyValue[F](v.b)
		if !oka || !okb || sa+sb != v.size {
			return 0, false
		}
		return v.size, true
	case node3:
		sa, oka := verifyValue[F](v.a)
		sb, okb := verifyValue[F](v.b)
		sc, okc := verifyValue[F](v.c)
		if !oka || !okb || !okc || sa+sb+sc != v.size {
			return 0, false
		}
		return v.size, true
	default:
		f, ok := v.(F)
		if !ok || f.Len() <= 0 {
			return 0, false
		}
		return f.Len(), true
	}
}

func verifyDigit[F Fragment](d digit) bool {
	if len(d.items) < 1 || len(d.items) > 4 {
		return false
	}
	size := 0
	for _, it := range d.items {
		s, ok := verifyValue[F](it)
		if !ok {
			return false
		}
		size += s
	}
	return size == d.size
}

func verifyNode[F Fragment](t *Node[F]) (int, bool) {
	switch t.kind {
	case kSingle:
		sz, ok := verifyValue[F](t.elem)
		if !ok || sz != t.size {
			return 0, false
		}
		return t.size, true
	default:
		if !verifyDigit[F](t.left) || !verifyDigit[F](t.right) {
			return 0, false
		}
		midSize := 0
		if t.middle != nil {
			sz, ok := verifyNode(t.middle)
			if !ok {
				return 0, false
			}
			midSize = sz
		}
		total := t.left.size + midSize + t.right.size
		if total != t.size {
			return 0, false
		}
		return total, true
	}
}

// Verify checks digit arity (1-4 at every level), that every leaf
// fragment is non-empty, and that cached lengths are accurate
// throughout the spine. Never invoked by normal operation; a self-
// check for the containers built atop this package.
func Verify[F Fragment](t *Node[F]) bool {
	if t == nil {
		return true
	}
	_, ok := verifyNode(t)
	return ok
}
