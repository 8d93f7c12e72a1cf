package pds

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/vecspine/pds/internal/finger"
)

// vecFrag wraps a single element of a Vector[T] as a finger.Fragment.
// Base spec §4.6 packs several elements per fragment when sizeof(T) is
// small (⌊(16-header)/sizeof(T)⌋ of them); Go generics have no sizeof,
// so there is no way to compute that packing factor from T alone. One
// element per fragment keeps Vector's indexing exact and, since
// internal/finger already treats fragment count as the unit of rebalance
// cost rather than byte count, does not change any operation's
// asymptotic behavior — only the constant factor a real byte-packed
// layout would additionally save.
type vecFrag[T any] struct {
	v T
}

func (f vecFrag[T]) Len() int { return 1 }

// Vector is a persistent, indexable sequence of T, backed by a
// finger-tree spine. The zero value is the empty vector.
type Vector[T any] struct {
	spine *finger.Node[vecFrag[T]]
}

// EmptyVector returns the empty Vector.
func EmptyVector[T any]() Vector[T] { return Vector[T]{} }

// VectorFromSlice builds a Vector holding s's elements in order.
func VectorFromSlice[T any](s []T) Vector[T] {
	frags := make([]vecFrag[T], len(s))
	for i, v := range s {
		frags[i] = vecFrag[T]{v: v}
	}
	return Vector[T]{spine: finger.BuildBalanced(frags)}
}

// VectorFromList builds a Vector holding xs's elements in order.
func VectorFromList[T any](xs List[T]) Vector[T] {
	return VectorFromSlice(xs.toSlice())
}

// VectorFromString builds a Vector of xs's codepoints, in order.
func VectorFromString(xs String) Vector[rune] {
	var runes []rune
	it := finger.NewIter(xs.spine)
	for {
		frag, ok := it.Next()
		if !ok {
			break
		}
		i := 0
		for i < len(frag.bytes) {
			r, size := utf8.DecodeRune(frag.bytes[i:])
			runes = append(runes, r)
			i += size
		}
	}
	return VectorFromSlice(runes)
}

// Size returns v's element count. O(1).
func (v Vector[T]) Size() int { return finger.Len(v.spine) }

func (v Vector[T]) toSlice() []T {
	frags := finger.Flatten(v.spine)
	out := make([]T, len(frags))
	for i, f := range frags {
		out[i] = f.v
	}
	return out
}

// PushFront prepends x. Amortized O(1).
func (v Vector[T]) PushFront(x T) Vector[T] {
	return Vector[T]{spine: finger.PushFront(v.spine, vecFrag[T]{v: x})}
}

// PushBack appends x. Amortized O(1).
func (v Vector[T]) PushBack(x T) Vector[T] {
	return Vector[T]{spine: finger.PushBack(v.spine, vecFrag[T]{v: x})}
}

// PopFront removes and returns v's first element. Panics if v is empty.
func (v Vector[T]) PopFront() (T, Vector[T]) {
	f, rest, ok := finger.PopFront(v.spine)
	if !ok {
		precondition("Vector.PopFront", "empty vector")
	}
	return f.v, Vector[T]{spine: rest}
}

// PopBack removes and returns v's last element. Panics if v is empty.
func (v Vector[T]) PopBack() (T, Vector[T]) {
	f, rest, ok := finger.PopBack(v.spine)
	if !ok {
		precondition("Vector.PopBack", "empty vector")
	}
	return f.v, Vector[T]{spine: rest}
}

// Front returns v's first element. Panics if v is empty.
func (v Vector[T]) Front() T {
	f, ok := finger.PeekFront(v.spine)
	if !ok {
		precondition("Vector.Front", "empty vector")
	}
	return f.v
}

// Back returns v's last element. Panics if v is empty.
func (v Vector[T]) Back() T {
	f, ok := finger.PeekBack(v.spine)
	if !ok {
		precondition("Vector.Back", "empty vector")
	}
	return f.v
}

// At returns the element at index i. Panics if i is out of range. O(log n).
func (v Vector[T]) At(i int) T {
	_, f, ok := finger.Locate(v.spine, i)
	if !ok {
		precondition("Vector.At", "index %d out of range [0,%d)", i, v.Size())
	}
	return f.v
}

// VectorAppend concatenates a and b. O(log min(len(a),len(b))).
func VectorAppend[T any](a, b Vector[T]) Vector[T] {
	return Vector[T]{spine: finger.Append(a.spine, b.spine)}
}

// Split partitions v at index i into (left, right), where left has i
// elements. Panics if i is out of range. O(log n).
func (v Vector[T]) Split(i int) (Vector[T], Vector[T]) {
	n := v.Size()
	if i < 0 || i > n {
		precondition("Vector.Split", "index %d out of range [0,%d]", i, n)
	}
	if i == 0 {
		return Vector[T]{}, v
	}
	if i == n {
		return v, Vector[T]{}
	}
	left, frag, _, right, _ := finger.Split(v.spine, i)
	return Vector[T]{spine: left}, Vector[T]{spine: finger.PushFront(right, frag)}
}

// Left returns v's first i elements.
func (v Vector[T]) Left(i int) Vector[T] { left, _ := v.Split(i); return left }

// Right returns v's elements from i onward.
func (v Vector[T]) Right(i int) Vector[T] { _, right := v.Split(i); return right }

// Between returns v's elements in [i, j).
func (v Vector[T]) Between(i, j int) Vector[T] {
	if i < 0 || j < i || j > v.Size() {
		precondition("Vector.Between", "invalid range [%d,%d)", i, j)
	}
	_, rest := v.Split(i)
	left, _ := rest.Split(j - i)
	return left
}

// Insert splices w into v starting at index i.
func (v Vector[T]) Insert(i int, w Vector[T]) Vector[T] {
	left, right := v.Split(i)
	return VectorAppend(VectorAppend(left, w), right)
}

// Erase removes v's elements in [i, j).
func (v Vector[T]) Erase(i, j int) Vector[T] {
	left, _ := v.Split(i)
	_, right := v.Split(j)
	return VectorAppend(left, right)
}

// FoldLVector folds v's elements left to right.
func FoldLVector[T, A any](v Vector[T], init A, f func(A, T) A) A {
	return finger.FoldL(v.spine, init, func(acc A, frag vecFrag[T]) A { return f(acc, frag.v) })
}

// FoldRVector folds v's elements right to left.
func FoldRVector[T, A any](v Vector[T], init A, f func(T, A) A) A {
	return finger.FoldR(v.spine, init, func(frag vecFrag[T], acc A) A { return f(frag.v, acc) })
}

// MapVector applies f to every element of v, returning a new vector.
func MapVector[T, U any](v Vector[T], f func(T) U) Vector[U] {
	return Vector[U]{spine: finger.MapFragments(v.spine, func(frag vecFrag[T]) vecFrag[U] {
		return vecFrag[U]{v: f(frag.v)}
	})}
}

// FilterVector returns the elements of v satisfying pred, in order.
func FilterVector[T any](v Vector[T], pred func(T) bool) Vector[T] {
	var out []T
	for _, x := range v.toSlice() {
		if pred(x) {
			out = append(out, x)
		}
	}
	return VectorFromSlice(out)
}

// CompareVector lexicographically compares a and b using cmp (or T's
// Comparer, if cmp is nil).
func CompareVector[T any](a, b Vector[T], cmp CompareFunc[T]) int {
	cmp = resolveCompare(cmp)
	return finger.Compare(a.spine, b.spine, func(x, y vecFrag[T]) int { return cmp(x.v, y.v) })
}

// Show renders v as "[e0,e1,...,en]".
func (v Vector[T]) Show() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range v.toSlice() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(showValue(x))
	}
	b.WriteByte(']')
	return b.String()
}

// VerifyVector checks v's spine balance.
func VerifyVector[T any](v Vector[T]) bool {
	return finger.Verify(v.spine)
}

// SortVector returns v stably sorted by cmp (or T's Comparer, if cmp is
// nil).
func SortVector[T any](v Vector[T], cmp CompareFunc[T]) Vector[T] {
	cmp = resolveCompare(cmp)
	elems := v.toSlice()
	slices.SortStableFunc(elems, cmp)
	return VectorFromSlice(elems)
}
