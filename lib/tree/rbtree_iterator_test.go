package tree

import (
	randv2 "math/rand/v2"
	"slices"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomTree(t *testing.T, n int) (RBTree[int], []int) {
	keys := lo.Uniq(lo.Times(n, func(int) int {
		return randv2.IntN(n * 10)
	}))
	tree := NewOrderedRBTree[int]()
	for _, k := range keys {
		require.True(t, tree.Insert(k))
	}
	slices.Sort(keys)
	return tree, keys
}

func TestRBIterator_RoundTrip(t *testing.T) {
	tree, keys := randomTree(t, 2000)

	it := tree.Iterator()
	res := make([]int, 0, len(keys))
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		res = append(res, e)
	}
	require.Equal(t, keys, res)
	_, ok := it.Data()
	require.False(t, ok)

	it = tree.Iterator()
	res = res[:0]
	for e, ok := it.Prev(); ok; e, ok = it.Prev() {
		res = append(res, e)
	}
	require.Equal(t, lo.Reverse(slices.Clone(keys)), res)

	res = res[:0]
	for e := range tree.Backward() {
		res = append(res, e)
	}
	require.Equal(t, lo.Reverse(slices.Clone(keys)), res)
}

func TestRBIterator_AfterLastWrapsAround(t *testing.T) {
	tree := NewOrderedRBTree[int]()
	for _, k := range []int{5, 10, 15} {
		tree.Insert(k)
	}
	it := tree.Iterator()
	for range 3 {
		_, ok := it.Next()
		require.True(t, ok)
	}
	_, ok := it.Next()
	require.False(t, ok)
	// The null position is shared by before-first and after-last.
	e, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, 5, e)
}

func TestRBIterator_SwitchDirection(t *testing.T) {
	tree, keys := randomTree(t, 500)

	for _, k := range []int{1, 2, 3, len(keys) / 2, len(keys) - 1, len(keys)} {
		it := tree.Iterator()
		var e int
		var ok bool
		for i := 0; i < k; i++ {
			e, ok = it.Next()
			require.True(t, ok)
		}
		require.Equal(t, keys[k-1], e)
		e, ok = it.Prev()
		if k == 1 {
			require.False(t, ok)
			continue
		}
		require.True(t, ok)
		require.Equal(t, keys[k-2], e)
		e, ok = it.Next()
		require.True(t, ok)
		require.Equal(t, keys[k-1], e)
	}

	for _, k := range []int{2, len(keys) / 3, len(keys)} {
		it := tree.Iterator()
		var e int
		for i := 0; i < k; i++ {
			e, _ = it.Prev()
		}
		require.Equal(t, keys[len(keys)-k], e)
		e, ok := it.Next()
		require.True(t, ok)
		require.Equal(t, keys[len(keys)-k+1], e)
	}
}

func TestRBTree_EachEarlyStop(t *testing.T) {
	tree, keys := randomTree(t, 100)

	res := make([]int, 0, 10)
	tree.Each(func(e int) bool {
		res = append(res, e)
		return len(res) < 10
	})
	require.Equal(t, keys[:10], res)

	res = res[:0]
	tree.Reach(func(e int) bool {
		res = append(res, e)
		return len(res) < 10
	})
	require.Equal(t, lo.Reverse(slices.Clone(keys[len(keys)-10:])), res)

	res = res[:0]
	for e := range tree.All() {
		if len(res) >= 3 {
			break
		}
		res = append(res, e)
	}
	require.Equal(t, keys[:3], res)
}

func TestRBTree_Bounds(t *testing.T) {
	tree := NewOrderedRBTree[int]()
	for _, k := range []int{5, 10, 15} {
		tree.Insert(k)
	}

	e, ok := tree.LowerBound(10).Data()
	require.True(t, ok)
	require.Equal(t, 10, e)

	e, ok = tree.UpperBound(10).Data()
	require.True(t, ok)
	require.Equal(t, 15, e)

	_, ok = tree.LowerBound(16).Data()
	require.False(t, ok)

	e, ok = tree.LowerBound(0).Data()
	require.True(t, ok)
	require.Equal(t, 5, e)

	e, ok = tree.LowerBound(11).Data()
	require.True(t, ok)
	require.Equal(t, 15, e)

	_, ok = tree.UpperBound(15).Data()
	require.False(t, ok)

	// Resume from the bound.
	it := tree.LowerBound(6)
	e, ok = it.Next()
	require.True(t, ok)
	require.Equal(t, 15, e)
	e, ok = it.Prev()
	require.True(t, ok)
	require.Equal(t, 10, e)
	e, ok = it.Prev()
	require.True(t, ok)
	require.Equal(t, 5, e)
}

func TestRBTree_BoundsOracle(t *testing.T) {
	tree, keys := randomTree(t, 1000)
	oracle := redblacktree.NewWithIntComparator()
	for _, k := range keys {
		oracle.Put(k, struct{}{})
	}

	for x := -1; x <= keys[len(keys)-1]+1; x++ {
		lower := tree.LowerBound(x)
		e, ok := lower.Data()
		node, found := oracle.Ceiling(x)
		require.Equal(t, found, ok, "lower bound of %d", x)
		if found {
			require.Equal(t, node.Key.(int), e, "lower bound of %d", x)
			// The iterator keeps walking from the bound position.
			if next, ok := lower.Next(); ok {
				idx, _ := slices.BinarySearch(keys, e)
				require.Equal(t, keys[idx+1], next)
			}
		}

		upper := tree.UpperBound(x)
		e, ok = upper.Data()
		node, found = oracle.Ceiling(x + 1)
		require.Equal(t, found, ok, "upper bound of %d", x)
		if found {
			require.Equal(t, node.Key.(int), e, "upper bound of %d", x)
			if prev, ok := upper.Prev(); ok {
				floor, found := oracle.Floor(x)
				assert.True(t, found)
				assert.Equal(t, floor.Key.(int), prev)
			}
		}
	}
}

func TestRBTree_FindIter(t *testing.T) {
	tree, keys := randomTree(t, 300)

	for i, k := range keys {
		it, ok := tree.FindIter(k)
		require.True(t, ok)
		e, ok := it.Data()
		require.True(t, ok)
		require.Equal(t, k, e)

		e, ok = it.Next()
		if i == len(keys)-1 {
			require.False(t, ok)
		} else {
			require.True(t, ok)
			require.Equal(t, keys[i+1], e)
		}
	}

	it, ok := tree.FindIter(-1)
	require.False(t, ok)
	require.Nil(t, it)
}
