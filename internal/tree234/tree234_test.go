package tree234

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intCmp(a, b int) int { return a - b }

func TestInsertSearchRoundTrip(t *testing.T) {
	var root *Node[int]
	for _, v := range []int{5, 3, 8, 1, 4, 7, 9, 2, 6, 0} {
		root, _ = Insert(root, v, intCmp, true)
		require.True(t, Verify(root, intCmp))
	}
	require.Equal(t, 10, Len(root))
	for v := 0; v < 10; v++ {
		got, ok := Search(root, v, intCmp)
		require.True(t, ok)
		assert.Equal(t, v, got)
	}
	_, ok := Search(root, 42, intCmp)
	assert.False(t, ok)
}

func TestInsertOverwriteFlag(t *testing.T) {
	var root *Node[int]
	root, replaced := Insert(root, 1, intCmp, true)
	assert.False(t, replaced)
	root, replaced = Insert(root, 1, intCmp, false)
	assert.True(t, replaced)
	assert.Equal(t, 1, Len(root))
}

func TestInsertPersistence(t *testing.T) {
	var empty *Node[int]
	t1, _ := Insert(empty, 1, intCmp, true)
	t2, _ := Insert(t1, 2, intCmp, true)
	assert.Equal(t, 1, Len(t1))
	assert.Equal(t, 2, Len(t2))
	_, found := Search(t1, 2, intCmp)
	assert.False(t, found)
}

func TestDeleteShrinksAndBalances(t *testing.T) {
	var root *Node[int]
	n := 200
	for i := 0; i < n; i++ {
		root, _ = Insert(root, i, intCmp, true)
	}
	require.True(t, Verify(root, intCmp))

	r := rand.New(rand.NewSource(1))
	order := r.Perm(n)
	for _, v := range order {
		var existed bool
		root, existed = Delete(root, v, intCmp)
		require.True(t, existed)
		require.True(t, Verify(root, intCmp), "invariant broken after deleting %d", v)
	}
	assert.Nil(t, root)
}

func TestDeleteMissingKeyIsNoop(t *testing.T) {
	var root *Node[int]
	root, _ = Insert(root, 1, intCmp, true)
	unchanged, existed := Delete(root, 99, intCmp)
	assert.False(t, existed)
	assert.Equal(t, root, unchanged)
}

func TestFromListDedupesKeepingLast(t *testing.T) {
	root := FromList([]int{3, 1, 2, 1, 3}, intCmp)
	require.True(t, Verify(root, intCmp))
	assert.Equal(t, []int{1, 2, 3}, ToList(root))
}

func TestNthMatchesToList(t *testing.T) {
	root := FromList([]int{5, 1, 9, 3, 7, 2, 8, 4, 6, 0}, intCmp)
	list := ToList(root)
	for i, want := range list {
		got, ok := Nth(root, i)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := Nth(root, len(list))
	assert.False(t, ok)
}

func TestSplitConcat3RoundTrip(t *testing.T) {
	root := FromList([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, intCmp)
	less, matched, greater := Split(root, 5, intCmp)
	require.NotNil(t, matched)
	assert.Equal(t, 5, *matched)
	assert.Equal(t, []int{1, 2, 3, 4}, ToList(less))
	assert.Equal(t, []int{6, 7, 8, 9}, ToList(greater))

	rejoined := Concat3(less, *matched, greater)
	require.True(t, Verify(rejoined, intCmp))
	assert.Equal(t, ToList(root), ToList(rejoined))
}

func TestUnionIntersectDiff(t *testing.T) {
	a := FromList([]int{1, 2, 3, 4, 5}, intCmp)
	b := FromList([]int{3, 4, 5, 6, 7}, intCmp)

	u := Union(a, b, intCmp)
	require.True(t, Verify(u, intCmp))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, ToList(u))

	i := Intersect(a, b, intCmp)
	require.True(t, Verify(i, intCmp))
	assert.Equal(t, []int{3, 4, 5}, ToList(i))

	d := Diff(a, b, intCmp)
	require.True(t, Verify(d, intCmp))
	assert.Equal(t, []int{1, 2}, ToList(d))
}

func TestFoldLRAndCompare(t *testing.T) {
	a := FromList([]int{1, 2, 3}, intCmp)
	sum := FoldL(a, 0, func(acc, k int) int { return acc + k })
	assert.Equal(t, 6, sum)

	revConcat := FoldR(a, "", func(k int, acc string) string {
		if acc == "" {
			return itoaLocal(k)
		}
		return itoaLocal(k) + acc
	})
	assert.Equal(t, "123", revConcat)

	b := FromList([]int{1, 2, 3}, intCmp)
	c := FromList([]int{1, 2, 4}, intCmp)
	assert.Equal(t, 0, Compare(a, b, intCmp))
	assert.Equal(t, -1, Compare(a, c, intCmp))
	assert.Equal(t, 1, Compare(c, a, intCmp))
}

func TestShow(t *testing.T) {
	root := FromList([]int{2, 1, 3}, intCmp)
	assert.Equal(t, "{1,2,3}", Show(root, itoaLocal))
}

func itoaLocal(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
