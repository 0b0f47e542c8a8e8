package infra

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplexCompare(t *testing.T) {
	var c1 complex128 = complex(1.0, 2.0) // 1.0+2.0i
	var c2 complex128 = complex(1.1, 2.0) // 1.1+2.0i
	_c1 := math.Hypot(real(c1), imag(c1))
	_c2 := math.Hypot(real(c2), imag(c2))
	assert.Greater(t, _c2, _c1)
}

func TestOrderedKeyCompare(t *testing.T) {
	require.Equal(t, int64(0), OrderedKeyCompare(1, 1))
	require.Equal(t, int64(-1), OrderedKeyCompare(1, 2))
	require.Equal(t, int64(1), OrderedKeyCompare(2, 1))
	require.Equal(t, int64(-1), OrderedKeyCompare("abc", "abd"))
	require.Equal(t, int64(1), OrderedKeyCompare(1.1, 1.0))
	require.Equal(t, int64(0), OrderedKeyCompare[uint8]('a', 'a'))
}

func TestReverseComparator(t *testing.T) {
	require.Nil(t, ReverseComparator[int](nil))

	desc := ReverseComparator[int](OrderedKeyCompare[int])
	require.Equal(t, int64(1), desc(1, 2))
	require.Equal(t, int64(-1), desc(2, 1))
	require.Equal(t, int64(0), desc(3, 3))

	arr := []int{3, 9, 1, 7, 5}
	sort.Slice(arr, func(i, j int) bool {
		return desc(arr[i], arr[j]) < 0
	})
	require.Equal(t, []int{9, 7, 5, 3, 1}, arr)
}
