package pds

import (
	"slices"
	"strings"
)

// listNode is a single immutable cons cell. Once linked into a published
// List it is never mutated; every List operation that "changes" a list
// builds fresh nodes along the touched prefix and shares the rest,
// mirroring the teacher's path-copying discipline (tablepersist.go) at
// cons-list granularity: the whole prefix up to and including the edit is
// copied, the unmodified suffix is shared by pointer.
type listNode[T any] struct {
	head T
	tail *listNode[T]
}

// List is a persistent singly-linked cons-list. The zero value is the
// empty list.
type List[T any] struct {
	n *listNode[T]
}

// Empty returns the empty List.
func Empty[T any]() List[T] {
	return List[T]{}
}

// Cons prepends x to xs in O(1), sharing all of xs's structure.
func Cons[T any](x T, xs List[T]) List[T] {
	return List[T]{n: &listNode[T]{head: x, tail: xs.n}}
}

// IsEmpty reports whether xs has no elements.
func (xs List[T]) IsEmpty() bool {
	return xs.n == nil
}

// Head returns xs's first element. Panics if xs is empty.
func (xs List[T]) Head() T {
	if xs.n == nil {
		precondition("List.Head", "empty list")
	}
	return xs.n.head
}

// Tail returns xs with its first element removed, sharing the remaining
// structure. Panics if xs is empty.
func (xs List[T]) Tail() List[T] {
	if xs.n == nil {
		precondition("List.Tail", "empty list")
	}
	return List[T]{n: xs.n.tail}
}

// Last returns xs's final element. Panics if xs is empty. O(n).
func (xs List[T]) Last() T {
	if xs.n == nil {
		precondition("List.Last", "empty list")
	}
	n := xs.n
	for n.tail != nil {
		n = n.tail
	}
	return n.head
}

// Length counts xs's elements. O(n).
func (xs List[T]) Length() int {
	count := 0
	for n := xs.n; n != nil; n = n.tail {
		count++
	}
	return count
}

// toSlice materializes xs into a slice, head first. O(n), used internally
// wherever an operation must not recurse proportional to list length
// (FoldR, Sort) per the base spec's internal-iteration-over-recursion
// design note.
func (xs List[T]) toSlice() []T {
	out := make([]T, 0, xs.Length())
	for n := xs.n; n != nil; n = n.tail {
		out = append(out, n.head)
	}
	return out
}

// fromSlice builds a List from a slice, head first, in one pass by
// consing from the back.
func fromSlice[T any](s []T) List[T] {
	out := Empty[T]()
	for i := len(s) - 1; i >= 0; i-- {
		out = Cons(s[i], out)
	}
	return out
}

// Append returns a list containing xs's elements followed by ys's. Every
// node of xs is copied; ys is shared in full, matching base spec §4.2.
func Append[T any](xs, ys List[T]) List[T] {
	elems := xs.toSlice()
	out := ys
	for i := len(elems) - 1; i >= 0; i-- {
		out = Cons(elems[i], out)
	}
	return out
}

// Reverse returns xs with its elements in reverse order. O(n).
func Reverse[T any](xs List[T]) List[T] {
	out := Empty[T]()
	for n := xs.n; n != nil; n = n.tail {
		out = Cons(n.head, out)
	}
	return out
}

// Take returns the first n elements of xs (or all of them, if xs is
// shorter than n).
func Take[T any](xs List[T], n int) List[T] {
	var taken []T
	i := 0
	for node := xs.n; node != nil && i < n; node, i = node.tail, i+1 {
		taken = append(taken, node.head)
	}
	return fromSlice(taken)
}

// TakeWhile returns the longest prefix of xs whose elements all satisfy pred.
func TakeWhile[T any](xs List[T], pred func(T) bool) List[T] {
	var taken []T
	for node := xs.n; node != nil && pred(node.head); node = node.tail {
		taken = append(taken, node.head)
	}
	return fromSlice(taken)
}

// FoldL folds xs left-to-right: f(...f(f(init, x0), x1)..., xn).
func FoldL[T, A any](xs List[T], init A, f func(A, T) A) A {
	acc := init
	for n := xs.n; n != nil; n = n.tail {
		acc = f(acc, n.head)
	}
	return acc
}

// FoldR folds xs right-to-left: f(x0, f(x1, ...f(xn, init)...)). The list
// is materialized to a slice first so that this does not recurse to a
// depth proportional to len(xs), per the base spec's fold_r design note.
func FoldR[T, A any](xs List[T], init A, f func(T, A) A) A {
	elems := xs.toSlice()
	acc := init
	for i := len(elems) - 1; i >= 0; i-- {
		acc = f(elems[i], acc)
	}
	return acc
}

// MapList applies f to every element of xs, returning a new list.
func MapList[T, U any](xs List[T], f func(T) U) List[U] {
	elems := xs.toSlice()
	out := make([]U, len(elems))
	for i, e := range elems {
		out[i] = f(e)
	}
	return fromSlice(out)
}

// FilterList returns the elements of xs satisfying pred, in order.
func FilterList[T any](xs List[T], pred func(T) bool) List[T] {
	var out []T
	for n := xs.n; n != nil; n = n.tail {
		if pred(n.head) {
			out = append(out, n.head)
		}
	}
	return fromSlice(out)
}

// Pair is the minimal two-slot tuple Zip needs; the full heterogeneous
// Tuple container is an out-of-scope external collaborator per §1.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip pairs up xs and ys elementwise, stopping at the shorter list.
func Zip[T, U any](xs List[T], ys List[U]) List[Pair[T, U]] {
	var out []Pair[T, U]
	nx, ny := xs.n, ys.n
	for nx != nil && ny != nil {
		out = append(out, Pair[T, U]{First: nx.head, Second: ny.head})
		nx, ny = nx.tail, ny.tail
	}
	return fromSlice(out)
}

// Sort returns xs stably sorted by cmp (or, if cmp is nil, by T's
// Comparer implementation). Implemented by materializing to a slice and
// sorting with slices.SortStableFunc, then rebuilding the list, per base
// spec §4.2.
func Sort[T any](xs List[T], cmp CompareFunc[T]) List[T] {
	cmp = resolveCompare(cmp)
	elems := xs.toSlice()
	slices.SortStableFunc(elems, cmp)
	return fromSlice(elems)
}

// CompareList lexicographically compares xs and ys using cmp (or T's
// Comparer, if cmp is nil): shorter-is-less when one is a prefix of the
// other.
func CompareList[T any](xs, ys List[T], cmp CompareFunc[T]) int {
	cmp = resolveCompare(cmp)
	nx, ny := xs.n, ys.n
	for nx != nil && ny != nil {
		if c := cmp(nx.head, ny.head); c != 0 {
			return c
		}
		nx, ny = nx.tail, ny.tail
	}
	switch {
	case nx == nil && ny == nil:
		return 0
	case nx == nil:
		return -1
	default:
		return 1
	}
}

// Show renders xs as "[e0,e1,...,en]", using T's Shower implementation
// for each element when available.
func (xs List[T]) Show() string {
	var b strings.Builder
	b.WriteByte('[')
	for n, first := xs.n, true; n != nil; n, first = n.tail, false {
		if !first {
			b.WriteByte(',')
		}
		b.WriteString(showValue(n.head))
	}
	b.WriteByte(']')
	return b.String()
}
