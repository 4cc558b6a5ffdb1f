package btree

import "github.com/cockroachdb/errors"

/*
A node holds up to degree-1 keys and degree child pointers. One extra slot of
each is reserved so a node can sit in the overflowed state between an insertion
and the split that resolves it.
*/
type node[T any] struct {
	keys     []T
	children []*node[T]
	degree   int
}

func newNode[T any](degree int) *node[T] {
	return &node[T]{
		keys:   make([]T, 0, degree),
		degree: degree,
	}
}

func (n *node[T]) isLeaf() bool {
	return len(n.children) == 0
}

// minKeys is the fewest keys a non-root node may hold.
func (n *node[T]) minKeys() int {
	return (n.degree - 1) / 2
}

func (n *node[T]) full() bool {
	return len(n.keys) == n.degree-1
}

func (n *node[T]) empty() bool {
	return len(n.keys) == 0
}

func (n *node[T]) overflowed() bool {
	return len(n.keys) >= n.degree
}

// underflowed reports 2*(size+1) < degree.
func (n *node[T]) underflowed() bool {
	return len(n.keys) < n.minKeys()
}

// superfluous reports whether the node can lend a key and a child to a
// sibling without underflowing itself.
func (n *node[T]) superfluous() bool {
	return len(n.keys) > n.minKeys()
}

/*
lowerBound returns the index of the first key >= v, and whether that key equals v.
This coincides with the position of the child pointer to follow when v is not here.
*/
func (n *node[T]) lowerBound(v T, compare func(a, b T) int) (int, bool) {
	low, high := 0, len(n.keys)
	for low < high {
		mid := int(uint(low+high) >> 1)
		if compare(n.keys[mid], v) < 0 {
			low = mid + 1
		} else {
			high = mid
		}
	}
	return low, low < len(n.keys) && compare(n.keys[low], v) == 0
}

// upperBound returns the index of the first key > v.
func (n *node[T]) upperBound(v T, compare func(a, b T) int) int {
	low, high := 0, len(n.keys)
	for low < high {
		mid := int(uint(low+high) >> 1)
		if compare(n.keys[mid], v) <= 0 {
			low = mid + 1
		} else {
			high = mid
		}
	}
	return low
}

// helper method to insert a key at an arbitrary position of a node
func (n *node[T]) insertKeyAt(pos int, v T) {
	var zero T
	n.keys = append(n.keys, zero)
	copy(n.keys[pos+1:], n.keys[pos:])
	n.keys[pos] = v
}

func (n *node[T]) eraseKeyAt(pos int) T {
	v := n.keys[pos]
	copy(n.keys[pos:], n.keys[pos+1:])
	var zero T
	n.keys[len(n.keys)-1] = zero
	n.keys = n.keys[:len(n.keys)-1]
	return v
}

// helper method to insert a child pointer at an arbitrary position of a node.
// Must be called after the matching key was inserted.
func (n *node[T]) insertChildAt(pos int, child *node[T]) {
	if n.children == nil {
		n.children = make([]*node[T], 0, n.degree+1)
	}
	n.children = append(n.children, nil)
	copy(n.children[pos+1:], n.children[pos:])
	n.children[pos] = child
}

// Must be called before the matching key is erased.
func (n *node[T]) eraseChildAt(pos int) *node[T] {
	child := n.children[pos]
	copy(n.children[pos:], n.children[pos+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	return child
}

/*
absorb appends pivot followed by every key and child of sibling to n.
n and sibling must be adjacent children of the same parent with pivot the
separator between them. The caller unlinks sibling from the parent afterwards.
*/
func (n *node[T]) absorb(sibling *node[T], pivot T) {
	if len(n.keys)+len(sibling.keys)+1 >= n.degree {
		panic(errors.AssertionFailedf("absorb: %d+%d+1 keys overflow degree %d",
			len(n.keys), len(sibling.keys), n.degree))
	}
	n.keys = append(n.keys, pivot)
	n.keys = append(n.keys, sibling.keys...)
	if !sibling.isLeaf() {
		n.children = append(n.children, sibling.children...)
	}
	sibling.keys, sibling.children = nil, nil
}

/*
split is called once n overflowed. The left degree-degree/2-1 keys stay in n,
the trailing degree/2 keys (and, for internal nodes, the trailing children)
move to a new right node. The boundary key goes to neither half: it is
returned so the caller can promote it into the parent.
*/
func (n *node[T]) split() (T, *node[T]) {
	if !n.overflowed() {
		panic(errors.AssertionFailedf("split: node with %d keys is not overflowed", len(n.keys)))
	}
	mid := n.degree - n.degree/2 - 1
	pivot := n.keys[mid]

	right := newNode[T](n.degree)
	right.keys = append(right.keys, n.keys[mid+1:]...)
	if !n.isLeaf() {
		right.children = make([]*node[T], 0, n.degree+1)
		right.children = append(right.children, n.children[mid+1:]...)
		clear(n.children[mid+1:])
		n.children = n.children[:mid+1]
	}

	clear(n.keys[mid:])
	n.keys = n.keys[:mid]
	return pivot, right
}
