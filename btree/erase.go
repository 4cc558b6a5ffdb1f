package btree

/*
Erase removes one key equal to v and reports whether one was found. Erasing an
absent key leaves the tree untouched.

When several equal keys are stored, the one removed is the first reached by
the top-down lower-bound search, which is not necessarily the oldest.
*/
func (t *Tree[T]) Erase(v T) bool {
	if t.root == nil {
		return false
	}
	found := t.eraseFrom(t.root, v)

	if t.root.empty() {
		if t.root.isLeaf() {
			t.root = nil
		} else {
			t.shrinkRoot()
		}
	}
	return found
}

func (t *Tree[T]) eraseFrom(n *node[T], v T) bool {
	i, found := n.lowerBound(v, t.compare)

	switch {
	case found && n.isLeaf():
		n.eraseKeyAt(i)
		t.size--
		return true
	case found:
		// A separator cannot simply be dropped. Replace it with the largest
		// key of its left subtree, which is always found in a leaf.
		n.keys[i] = t.popMax(n.children[i])
		t.rebalance(n, i)
		return true
	case n.isLeaf():
		return false
	}

	found = t.eraseFrom(n.children[i], v)
	t.rebalance(n, i)
	return found
}

// popMax removes and returns the largest key under n, rebalancing every
// rightmost child it passes through.
func (t *Tree[T]) popMax(n *node[T]) T {
	if n.isLeaf() {
		t.size--
		return n.eraseKeyAt(len(n.keys) - 1)
	}
	last := len(n.keys)
	v := t.popMax(n.children[last])
	t.rebalance(n, last)
	return v
}

/*
rebalance restores the minimum fill of n.children[i] after a removal below it.
Borrowing through a rotation is preferred; when neither neighbour can spare a
key the child is merged with one of them, which may leave n underflowed in
turn. That is for n's own parent to resolve.
*/
func (t *Tree[T]) rebalance(n *node[T], i int) {
	child := n.children[i]
	if !child.underflowed() {
		return
	}

	switch {
	case i > 0 && n.children[i-1].superfluous():
		t.rotateFromLeft(n, i)
	case i < len(n.keys) && n.children[i+1].superfluous():
		t.rotateFromRight(n, i)
	default:
		// Prefer the left sibling.
		if i > 0 {
			i--
		}
		t.merge(n, i)
	}
}

// rotateFromLeft moves the separator n.keys[i-1] down to the front of
// n.children[i] and the left sibling's last key up in its place.
func (t *Tree[T]) rotateFromLeft(n *node[T], i int) {
	child, sibling := n.children[i], n.children[i-1]
	last := len(sibling.keys) - 1

	child.insertKeyAt(0, n.keys[i-1])
	if !sibling.isLeaf() {
		child.insertChildAt(0, sibling.eraseChildAt(last+1))
	}
	n.keys[i-1] = sibling.eraseKeyAt(last)
	t.notify(RotateLeft, n.keys[i-1])
}

// rotateFromRight moves the separator n.keys[i] down to the end of
// n.children[i] and the right sibling's first key up in its place.
func (t *Tree[T]) rotateFromRight(n *node[T], i int) {
	child, sibling := n.children[i], n.children[i+1]

	child.insertKeyAt(len(child.keys), n.keys[i])
	if !sibling.isLeaf() {
		child.insertChildAt(len(child.children), sibling.eraseChildAt(0))
	}
	n.keys[i] = sibling.eraseKeyAt(0)
	t.notify(RotateRight, n.keys[i])
}

// merge folds n.children[i+1] and the separator n.keys[i] into n.children[i].
func (t *Tree[T]) merge(n *node[T], i int) {
	pivot := n.keys[i]
	n.children[i].absorb(n.children[i+1], pivot)
	n.eraseChildAt(i + 1)
	n.eraseKeyAt(i)
	t.notify(Merge, pivot)
}

// shrinkRoot replaces an empty internal root with its only child.
func (t *Tree[T]) shrinkRoot() {
	old := t.root
	t.root = old.children[0]
	old.children = nil
	t.depth--

	var zero T
	t.notify(Shrink, zero)
}
