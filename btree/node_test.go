package btree

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/require"
)

func leafOf(degree int, keys ...int) *node[int] {
	n := newNode[int](degree)
	n.keys = append(n.keys, keys...)
	return n
}

func TestNodePredicates(t *testing.T) {
	n := leafOf(4)
	require.True(t, n.isLeaf())
	require.True(t, n.empty())
	require.True(t, n.underflowed())

	n.keys = append(n.keys, 1)
	require.False(t, n.underflowed())
	require.False(t, n.superfluous())

	n.keys = append(n.keys, 2, 3)
	require.True(t, n.full())
	require.True(t, n.superfluous())
	require.False(t, n.overflowed())

	n.keys = append(n.keys, 4)
	require.True(t, n.overflowed())
}

func TestNodeUnderflowThreshold(t *testing.T) {
	// 2*(size+1) < degree
	for degree := 3; degree < 12; degree++ {
		for size := 0; size < degree; size++ {
			n := leafOf(degree)
			for i := 0; i < size; i++ {
				n.keys = append(n.keys, i)
			}
			require.Equal(t, 2*(size+1) < degree, n.underflowed(), "degree %d size %d", degree, size)
		}
	}
}

func TestNodeSearch(t *testing.T) {
	n := leafOf(8, 1, 3, 3, 3, 7)

	pos, found := n.lowerBound(3, cmp.Compare[int])
	require.True(t, found)
	require.Equal(t, 1, pos)
	require.Equal(t, 4, n.upperBound(3, cmp.Compare[int]))

	pos, found = n.lowerBound(5, cmp.Compare[int])
	require.False(t, found)
	require.Equal(t, 4, pos)
	require.Equal(t, 4, n.upperBound(5, cmp.Compare[int]))

	pos, found = n.lowerBound(9, cmp.Compare[int])
	require.False(t, found)
	require.Equal(t, 5, pos)
	require.Equal(t, 0, n.upperBound(0, cmp.Compare[int]))
}

func TestNodeKeySplice(t *testing.T) {
	n := leafOf(6, 1, 3)
	n.insertKeyAt(1, 2)
	n.insertKeyAt(0, 0)
	n.insertKeyAt(4, 4)
	require.Equal(t, []int{0, 1, 2, 3, 4}, n.keys)

	require.Equal(t, 2, n.eraseKeyAt(2))
	require.Equal(t, 0, n.eraseKeyAt(0))
	require.Equal(t, 4, n.eraseKeyAt(2))
	require.Equal(t, []int{1, 3}, n.keys)
}

func TestNodeChildSplice(t *testing.T) {
	a, b, c := leafOf(4, 0), leafOf(4, 2), leafOf(4, 4)
	n := leafOf(4, 1)
	n.insertChildAt(0, a)
	n.insertChildAt(1, c)
	n.insertKeyAt(1, 3)
	n.insertChildAt(1, b)
	require.Equal(t, []*node[int]{a, b, c}, n.children)
	require.False(t, n.isLeaf())

	require.Same(t, b, n.eraseChildAt(1))
	n.eraseKeyAt(1)
	require.Equal(t, []*node[int]{a, c}, n.children)
	require.Equal(t, []int{1}, n.keys)
}

func TestNodeAbsorb(t *testing.T) {
	left, right := leafOf(5, 1), leafOf(5, 5, 6)
	left.absorb(right, 3)
	require.Equal(t, []int{1, 3, 5, 6}, left.keys)
	require.True(t, left.isLeaf())

	l, r := leafOf(4, 1), leafOf(4, 3, 5)
	l.insertChildAt(0, leafOf(4, 0))
	l.insertChildAt(1, leafOf(4, 2))
	r.insertChildAt(0, leafOf(4, 4))
	r.insertChildAt(1, leafOf(4, 5))
	r.insertChildAt(2, leafOf(4, 6))
	require.Panics(t, func() { l.absorb(r, 2) })

	l2, r2 := leafOf(6, 1), leafOf(6, 5)
	l2.insertChildAt(0, leafOf(6, 0))
	l2.insertChildAt(1, leafOf(6, 2))
	r2.insertChildAt(0, leafOf(6, 4))
	r2.insertChildAt(1, leafOf(6, 6))
	l2.absorb(r2, 3)
	require.Equal(t, []int{1, 3, 5}, l2.keys)
	require.Len(t, l2.children, 4)
	require.Equal(t, []int{6}, l2.children[3].keys)
}

func TestNodeSplitLeaf(t *testing.T) {
	n := leafOf(4, 0, 1, 2, 3)
	pivot, right := n.split()
	require.Equal(t, 1, pivot)
	require.Equal(t, []int{0}, n.keys)
	require.Equal(t, []int{2, 3}, right.keys)
	require.True(t, right.isLeaf())

	odd := leafOf(5, 0, 1, 2, 3, 4)
	pivot, right = odd.split()
	require.Equal(t, 2, pivot)
	require.Equal(t, []int{0, 1}, odd.keys)
	require.Equal(t, []int{3, 4}, right.keys)

	require.Panics(t, func() { leafOf(4, 0, 1).split() })
}

func TestNodeSplitInternal(t *testing.T) {
	n := leafOf(4, 10, 20, 30, 40)
	kids := make([]*node[int], 5)
	for i := range kids {
		kids[i] = leafOf(4, i*10+5)
		n.insertChildAt(i, kids[i])
	}
	pivot, right := n.split()
	require.Equal(t, 20, pivot)
	require.Equal(t, []int{10}, n.keys)
	require.Equal(t, []*node[int]{kids[0], kids[1]}, n.children)
	require.Equal(t, []int{30, 40}, right.keys)
	require.Equal(t, []*node[int]{kids[2], kids[3], kids[4]}, right.children)
}
