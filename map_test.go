package pds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapInsertFindErase(t *testing.T) {
	m := EmptyMap[int, string](intCmp)
	m = m.Insert(1, "one")
	m = m.Insert(2, "two")
	m = m.Insert(3, "three")
	require.True(t, VerifyMap(m))
	assert.Equal(t, 3, m.Size())

	v, ok := m.Find(2)
	require.True(t, ok)
	assert.Equal(t, "two", v)

	_, ok = m.Find(99)
	assert.False(t, ok)

	m2 := m.Insert(2, "TWO")
	v2, _ := m2.Find(2)
	assert.Equal(t, "TWO", v2)
	v3, _ := m.Find(2)
	assert.Equal(t, "two", v3, "original untouched")

	m3 := m.Erase(2)
	require.True(t, VerifyMap(m3))
	_, ok = m3.Find(2)
	assert.False(t, ok)
	assert.Equal(t, 2, m3.Size())
}

func TestMapKeysValues(t *testing.T) {
	m := EmptyMap[int, string](intCmp)
	m = m.Insert(3, "c").Insert(1, "a").Insert(2, "b")
	assert.Equal(t, []int{1, 2, 3}, m.Keys())
	assert.Equal(t, []string{"a", "b", "c"}, m.Values())
}

func TestMapSplit(t *testing.T) {
	m := EmptyMap[int, string](intCmp)
	for i := 1; i <= 5; i++ {
		m = m.Insert(i, string(rune('a'+i-1)))
	}
	less, matched, greater := m.Split(3)
	require.NotNil(t, matched)
	assert.Equal(t, "c", *matched)
	assert.Equal(t, []int{1, 2}, less.Keys())
	assert.Equal(t, []int{4, 5}, greater.Keys())

	_, noMatch, _ := m.Split(100)
	assert.Nil(t, noMatch)
}

func TestMergeMaps(t *testing.T) {
	a := EmptyMap[int, string](intCmp).Insert(1, "a").Insert(2, "b")
	b := EmptyMap[int, string](intCmp).Insert(2, "B").Insert(3, "c")
	merged := MergeMaps(a, b)
	assert.Equal(t, []int{1, 2, 3}, merged.Keys())
	v, _ := merged.Find(2)
	assert.Equal(t, "b", v, "a wins on overlap")
}

func TestMapFoldAndMapValues(t *testing.T) {
	m := EmptyMap[int, int](intCmp).Insert(1, 10).Insert(2, 20).Insert(3, 30)
	sum := FoldLMap(m, 0, func(acc, k, v int) int { return acc + k + v })
	assert.Equal(t, 1+10+2+20+3+30, sum)

	doubled := MapValues(m, func(k, v int) int { return v * 2 })
	assert.Equal(t, []int{20, 40, 60}, doubled.Values())
}

func TestCompareMaps(t *testing.T) {
	a := EmptyMap[int, int](intCmp).Insert(1, 1).Insert(2, 2)
	b := EmptyMap[int, int](intCmp).Insert(1, 1).Insert(2, 2)
	c := EmptyMap[int, int](intCmp).Insert(1, 1).Insert(2, 3)
	assert.Equal(t, 0, CompareMaps(a, b, intCmp))
	assert.Equal(t, -1, CompareMaps(a, c, intCmp))
}

// TestMapScenario mirrors base-spec §8 scenario 4: build m by inserting
// (i, 2*i) for i in 0..199, then check size, Find hit/miss, the
// Split+MergeMaps/Erase law, and a FoldL key sum.
func TestMapScenario(t *testing.T) {
	m := EmptyMap[int, int](intCmp)
	for i := 0; i < 200; i++ {
		m = m.Insert(i, 2*i)
	}
	require.True(t, VerifyMap(m))
	assert.Equal(t, 200, m.Size())

	v, ok := m.Find(25)
	require.True(t, ok)
	assert.Equal(t, 50, v)

	_, ok = m.Find(203)
	assert.False(t, ok)

	less, matched, greater := m.Split(123)
	require.NotNil(t, matched)
	merged := MergeMaps(less, greater)
	erased := m.Erase(123)
	assert.Equal(t, erased.Keys(), merged.Keys())
	assert.Equal(t, erased.Values(), merged.Values())

	sum := FoldLMap(m, 0, func(acc, k, _ int) int { return acc + k })
	assert.Equal(t, 199*100, sum)
}

func TestMapShowAndIter(t *testing.T) {
	m := EmptyMap[int, string](intCmp).Insert(2, "b").Insert(1, "a")
	assert.Equal(t, `{1: a, 2: b}`, m.Show())

	it := NewMapIter(m)
	var keys []int
	for {
		k, _, ok := it.Next()
		if !ok {
			break
		}
		keys = append(keys, k)
	}
	assert.Equal(t, []int{1, 2}, keys)
}
