package pds

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDescList conses n, n-1, ..., 0 onto the empty list in that order,
// so the finished list's head is 0 and its last element is n.
func buildDescList(n int) List[int] {
	out := Empty[int]()
	for i := n; i >= 0; i-- {
		out = Cons(i, out)
	}
	return out
}

// TestListScenario mirrors base-spec §8 scenario 1: build xs = list(30,
// 29, ..., 0) of length 31, then check head/last/length/reverse/foldl.
func TestListScenario(t *testing.T) {
	xs := buildDescList(30)
	require.Equal(t, 31, xs.Length())
	assert.Equal(t, 0, xs.Head())
	assert.Equal(t, 30, xs.Last())
	assert.Equal(t, 30, xs.Tail().Length())
	assert.Equal(t, 30, Reverse(xs).Head())
	assert.Equal(t, 465, FoldL(xs, 0, func(a, x int) int { return a + x }))
}

func TestListPersistence(t *testing.T) {
	xs := Cons(1, Cons(2, Empty[int]()))
	ys := Cons(0, xs)
	// mutating-looking op on ys must not affect xs.
	assert.Equal(t, 2, xs.Length())
	assert.Equal(t, 3, ys.Length())
	assert.Equal(t, 1, xs.Head())
	assert.Equal(t, 0, ys.Head())
}

func TestListAppendSharesTail(t *testing.T) {
	xs := fromSlice([]int{1, 2, 3})
	ys := fromSlice([]int{4, 5})
	zs := Append(xs, ys)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, zs.toSlice())
	// ys itself is untouched and shared, not copied.
	assert.Equal(t, []int{4, 5}, ys.toSlice())
	assert.True(t, zs.n.tail.tail.tail == ys.n)
}

func TestListReverseInvolution(t *testing.T) {
	xs := fromSlice([]int{1, 2, 3, 4, 5})
	assert.Equal(t, xs.toSlice(), Reverse(Reverse(xs)).toSlice())
}

func TestListAppendLengthLaw(t *testing.T) {
	xs := fromSlice([]int{1, 2, 3})
	ys := fromSlice([]int{4, 5, 6, 7})
	assert.Equal(t, xs.Length()+ys.Length(), Append(xs, ys).Length())
}

func TestListFoldLREqualForCommutativeMonoid(t *testing.T) {
	xs := fromSlice([]int{1, 2, 3, 4, 5})
	sum := func(a, b int) int { return a + b }
	l := FoldL(xs, 0, sum)
	r := FoldR(xs, 0, func(x, a int) int { return sum(a, x) })
	assert.Equal(t, l, r)
}

func TestListTakeAndTakeWhile(t *testing.T) {
	xs := fromSlice([]int{1, 2, 3, 4, 5})
	assert.Equal(t, []int{1, 2, 3}, Take(xs, 3).toSlice())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, Take(xs, 100).toSlice())
	assert.Equal(t, []int{1, 2}, TakeWhile(xs, func(x int) bool { return x < 3 }).toSlice())
}

func TestListMapFilterZip(t *testing.T) {
	xs := fromSlice([]int{1, 2, 3, 4})
	doubled := MapList(xs, func(x int) int { return x * 2 })
	assert.Equal(t, []int{2, 4, 6, 8}, doubled.toSlice())

	evens := FilterList(xs, func(x int) bool { return x%2 == 0 })
	assert.Equal(t, []int{2, 4}, evens.toSlice())

	ys := fromSlice([]string{"a", "b", "c"})
	zipped := Zip(xs, ys)
	if diff := cmp.Diff([]Pair[int, string]{{1, "a"}, {2, "b"}, {3, "c"}}, zipped.toSlice()); diff != "" {
		t.Fatalf("Zip mismatch (-want +got):\n%s", diff)
	}
}

func TestListSortStable(t *testing.T) {
	type kv struct {
		k, order int
	}
	xs := fromSlice([]kv{{3, 0}, {1, 1}, {3, 2}, {2, 3}, {1, 4}})
	sorted := Sort(xs, func(a, b kv) int { return a.k - b.k })
	got := sorted.toSlice()
	want := []kv{{1, 1}, {1, 4}, {2, 3}, {3, 0}, {3, 2}}
	assert.Equal(t, want, got)
}

func TestListCompare(t *testing.T) {
	cmp := func(a, b int) int { return a - b }
	assert.Equal(t, 0, CompareList(fromSlice([]int{1, 2, 3}), fromSlice([]int{1, 2, 3}), cmp))
	assert.Equal(t, -1, CompareList(fromSlice([]int{1, 2}), fromSlice([]int{1, 2, 3}), cmp))
	assert.Equal(t, 1, CompareList(fromSlice([]int{1, 3}), fromSlice([]int{1, 2, 3}), cmp))
}

func TestListHeadTailOnEmptyPanics(t *testing.T) {
	require.Panics(t, func() { Empty[int]().Head() })
	require.Panics(t, func() { Empty[int]().Tail() })
	require.Panics(t, func() { Empty[int]().Last() })
}

// TestListUnionShow mirrors base-spec §8 scenario 6: a custom
// List<T> = Union<Empty, Cons<T>> built over the Union/Tag carrier,
// exercising the value-carrier machinery directly instead of pds.List.
func TestListUnionShow(t *testing.T) {
	const tagEmpty Tag = 0
	const tagCons Tag = 1

	type consCell struct {
		head int
		tail Union
	}

	var build func([]int) Union
	build = func(xs []int) Union {
		if len(xs) == 0 {
			return Pack[struct{}](tagEmpty, struct{}{})
		}
		return Pack(tagCons, consCell{head: xs[0], tail: build(xs[1:])})
	}

	var show func(Union) string
	show = func(u Union) string {
		if TagOf(u) == tagEmpty {
			return ""
		}
		cell := Unpack[consCell](u, tagCons)
		rest := show(cell.tail)
		if rest == "" {
			return itoa(cell.head)
		}
		return itoa(cell.head) + "," + rest
	}

	var reverse func(Union) Union
	reverse = func(u Union) Union {
		acc := Pack[struct{}](tagEmpty, struct{}{})
		for TagOf(u) == tagCons {
			cell := Unpack[consCell](u, tagCons)
			acc = Pack(tagCons, consCell{head: cell.head, tail: acc})
			u = cell.tail
		}
		return acc
	}

	xs := build([]int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0})
	assert.Equal(t, "[9,8,7,6,5,4,3,2,1,0]", "["+show(xs)+"]")
	assert.Equal(t, "[0,1,2,3,4,5,6,7,8,9]", "["+show(reverse(xs))+"]")
	assert.Equal(t, tagCons, TagOf(xs))
}

func itoa(n int) string {
	return showValue(n)
}
