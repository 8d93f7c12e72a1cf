package pds

import (
	"github.com/vecspine/pds/internal/tree234"
)

// Set is a persistent ordered set of T, backed by a 2-3-4 tree. The zero
// value is not usable directly; build one with EmptySet or SetFromSlice
// so it carries a comparator.
type Set[T any] struct {
	root *tree234.Node[T]
	// cmp is stored as a plain function type, not CompareFunc[T]: a
	// tree234.CompareFunc[T] parameter needs an unnamed func(T, T) int
	// value to accept it without an explicit conversion at every call
	// site, since two distinct named types with the same underlying
	// type are not assignable to one another.
	cmp func(T, T) int
}

// EmptySet returns the empty Set, ordered by cmp (or T's Comparer, if
// cmp is nil).
func EmptySet[T any](cmp CompareFunc[T]) Set[T] {
	return Set[T]{cmp: resolveCompare(cmp)}
}

// SetFromSlice builds a Set from s, keeping the last occurrence of any
// duplicate (by cmp).
func SetFromSlice[T any](s []T, cmp CompareFunc[T]) Set[T] {
	var resolved func(T, T) int = resolveCompare(cmp)
	return Set[T]{root: tree234.FromList(s, resolved), cmp: resolved}
}

// SetFromList builds a Set from xs, keeping the last occurrence of any
// duplicate (by cmp).
func SetFromList[T any](xs List[T], cmp CompareFunc[T]) Set[T] {
	return SetFromSlice(xs.toSlice(), cmp)
}

// Size returns s's element count. O(1).
func (s Set[T]) Size() int { return tree234.Len(s.root) }

// Contains reports whether x is in s. O(log n).
func (s Set[T]) Contains(x T) bool {
	_, ok := tree234.Search(s.root, x, s.cmp)
	return ok
}

// Insert returns a Set with x present, replacing any equal element. O(log n).
func (s Set[T]) Insert(x T) Set[T] {
	root, _ := tree234.Insert(s.root, x, s.cmp, true)
	return Set[T]{root: root, cmp: s.cmp}
}

// Erase returns a Set with x absent. O(log n).
func (s Set[T]) Erase(x T) Set[T] {
	root, _ := tree234.Delete(s.root, x, s.cmp)
	return Set[T]{root: root, cmp: s.cmp}
}

// SetUnion returns the elements present in a or b; on overlap, a's
// element wins.
func SetUnion[T any](a, b Set[T]) Set[T] {
	return Set[T]{root: tree234.Union(a.root, b.root, a.cmp), cmp: a.cmp}
}

// SetIntersect returns the elements present in both a and b, taken from a.
func SetIntersect[T any](a, b Set[T]) Set[T] {
	return Set[T]{root: tree234.Intersect(a.root, b.root, a.cmp), cmp: a.cmp}
}

// SetDiff returns the elements of a not present in b.
func SetDiff[T any](a, b Set[T]) Set[T] {
	return Set[T]{root: tree234.Diff(a.root, b.root, a.cmp), cmp: a.cmp}
}

// ToSlice returns s's elements in ascending order.
func (s Set[T]) ToSlice() []T { return tree234.ToList(s.root) }

// FoldLSet folds s's elements left to right, in ascending order.
func FoldLSet[T, A any](s Set[T], init A, f func(A, T) A) A {
	return tree234.FoldL(s.root, init, f)
}

// FoldRSet folds s's elements right to left, in ascending order overall.
func FoldRSet[T, A any](s Set[T], init A, f func(T, A) A) A {
	return tree234.FoldR(s.root, init, f)
}

// CompareSets lexicographically compares a and b in ascending order.
func CompareSets[T any](a, b Set[T]) int {
	return tree234.Compare(a.root, b.root, a.cmp)
}

// Show renders s as "{e0,e1,...}" in ascending order.
func (s Set[T]) Show() string {
	return tree234.Show(s.root, showValue[T])
}

// VerifySet checks s's tree balance and ordering invariants.
func VerifySet[T any](s Set[T]) bool {
	return tree234.Verify(s.root, s.cmp)
}

// SetIter iterates s's elements in ascending order.
type SetIter[T any] struct {
	it *tree234.Iter[T]
}

// NewSetIter returns an iterator positioned before s's first element.
func NewSetIter[T any](s Set[T]) *SetIter[T] {
	return &SetIter[T]{it: tree234.NewIter(s.root)}
}

// Next advances the iterator, returning false once exhausted.
func (it *SetIter[T]) Next() (T, bool) { return it.it.Next() }
