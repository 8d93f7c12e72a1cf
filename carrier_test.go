package pds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueCarryUncarry(t *testing.T) {
	v := Carry(42)
	assert.Equal(t, 42, v.Uncarry())

	type big struct{ a, b, c, d int64 }
	bv := Carry(big{1, 2, 3, 4})
	assert.Equal(t, big{1, 2, 3, 4}, bv.Uncarry())
}

func TestUnionPackTagUnpack(t *testing.T) {
	const tagInt Tag = 0
	const tagStr Tag = 1

	u := Pack(tagInt, 7)
	assert.Equal(t, tagInt, TagOf(u))
	assert.Equal(t, 7, Unpack[int](u, tagInt))

	u2 := Pack(tagStr, "hi")
	assert.Equal(t, tagStr, TagOf(u2))
	assert.Equal(t, "hi", Unpack[string](u2, tagStr))
}

func TestUnionUnpackWrongTagPanics(t *testing.T) {
	u := Pack[int](0, 7)
	require.Panics(t, func() {
		Unpack[int](u, 1)
	})
}

func TestUnionUnpackWrongTypePanics(t *testing.T) {
	u := Pack[int](0, 7)
	require.Panics(t, func() {
		Unpack[string](u, 0)
	})
}

func TestPackTagOutOfRangePanics(t *testing.T) {
	require.Panics(t, func() {
		Pack(MaxTag+1, 1)
	})
}

type celsius float64

func (c celsius) Compare(other celsius) int {
	switch {
	case c < other:
		return -1
	case c > other:
		return 1
	default:
		return 0
	}
}

func TestResolveCompareUsesComparer(t *testing.T) {
	cmp := resolveCompare[celsius](nil)
	assert.Equal(t, -1, cmp(10, 20))
	assert.Equal(t, 0, cmp(10, 10))
	assert.Equal(t, 1, cmp(20, 10))
}

func TestResolveCompareExplicitOverridesComparer(t *testing.T) {
	// explicit func always wins even when T implements Comparer.
	reverse := func(a, b celsius) int { return -a.Compare(b) }
	cmp := resolveCompare[celsius](reverse)
	assert.Equal(t, 1, cmp(10, 20))
}

func TestResolveCompareNoneAvailablePanics(t *testing.T) {
	require.Panics(t, func() {
		resolveCompare[int](nil)
	})
}

func TestOrderedCompare(t *testing.T) {
	assert.Equal(t, -1, OrderedCompare(1, 2))
	assert.Equal(t, 0, OrderedCompare(2, 2))
	assert.Equal(t, 1, OrderedCompare(2, 1))
	assert.Equal(t, -1, OrderedCompare("abc", "abd"))
}

type loud struct{ n int }

func (l loud) Show() string { return "loud!" }

func TestShowValueUsesShower(t *testing.T) {
	assert.Equal(t, "loud!", showValue(loud{n: 1}))
	assert.Equal(t, "3", showValue(3))
}
