package pds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intCmp(a, b int) int { return a - b }

func TestSetInsertContainsErase(t *testing.T) {
	s := EmptySet[int](intCmp)
	for _, x := range []int{5, 3, 8, 1, 9} {
		s = s.Insert(x)
	}
	require.True(t, VerifySet(s))
	assert.Equal(t, 5, s.Size())
	assert.True(t, s.Contains(8))
	assert.False(t, s.Contains(100))

	s2 := s.Erase(8)
	require.True(t, VerifySet(s2))
	assert.False(t, s2.Contains(8))
	assert.True(t, s.Contains(8), "original untouched")
}

func TestSetFromSliceDedupes(t *testing.T) {
	s := SetFromSlice([]int{3, 1, 3, 2, 1}, intCmp)
	assert.Equal(t, []int{1, 2, 3}, s.ToSlice())
}

func TestSetUnionIntersectDiff(t *testing.T) {
	a := SetFromSlice([]int{1, 2, 3, 4}, intCmp)
	b := SetFromSlice([]int{3, 4, 5, 6}, intCmp)

	u := SetUnion(a, b)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, u.ToSlice())

	i := SetIntersect(a, b)
	assert.Equal(t, []int{3, 4}, i.ToSlice())

	d := SetDiff(a, b)
	assert.Equal(t, []int{1, 2}, d.ToSlice())
}

func TestSetFoldAndCompare(t *testing.T) {
	s := SetFromSlice([]int{1, 2, 3}, intCmp)
	sum := FoldLSet(s, 0, func(acc, x int) int { return acc + x })
	assert.Equal(t, 6, sum)

	other := SetFromSlice([]int{1, 2, 4}, intCmp)
	assert.Equal(t, -1, CompareSets(s, other))
	assert.Equal(t, 0, CompareSets(s, s))
}

// TestSetScenario mirrors base-spec §8 scenario 5: build s by inserting
// 2*i for i in 0..99, then check Contains hit/miss and the
// Intersect/Diff laws against a one-element insert/erase perturbation.
func TestSetScenario(t *testing.T) {
	var evens []int
	for i := 0; i < 100; i++ {
		evens = append(evens, 2*i)
	}
	s := SetFromSlice(evens, intCmp)
	require.True(t, VerifySet(s))

	assert.True(t, s.Contains(64))
	assert.False(t, s.Contains(63))

	// 67 is odd, so it is not in s; intersecting with s+67 drops it again.
	assert.Equal(t, s.ToSlice(), SetIntersect(s, s.Insert(67)).ToSlice())

	// s minus {22} differs from s only at 22, so diffing recovers {22}.
	assert.Equal(t, []int{22}, SetDiff(s, s.Erase(22)).ToSlice())
}

func TestSetShowAndIter(t *testing.T) {
	s := SetFromSlice([]int{2, 1, 3}, intCmp)
	assert.Equal(t, "{1,2,3}", s.Show())

	it := NewSetIter(s)
	var got []int
	for {
		x, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, x)
	}
	assert.Equal(t, []int{1, 2, 3}, got)
}
