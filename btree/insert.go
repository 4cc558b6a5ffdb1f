package btree

/*
Insert adds v to the tree. Duplicates are allowed: a new key equal to existing
ones is placed after them.

The tree is searched top-down for the leaf where v belongs; overflows are
resolved bottom-up on the way back, one split per level, growing a new root
when the old one splits.
*/
func (t *Tree[T]) Insert(v T) {
	// The tree is empty, so initialize a leaf root.
	if t.root == nil {
		t.root = newNode[T](t.degree)
		t.root.insertKeyAt(0, v)
		t.size++
		return
	}

	pivot, right, split := t.insertFrom(t.root, v)
	if split {
		t.growRoot(pivot, right)
	}
}

// insertFrom returns the promoted pivot and the new right sibling when n had
// to be split.
func (t *Tree[T]) insertFrom(n *node[T], v T) (pivot T, right *node[T], split bool) {
	pos := n.upperBound(v, t.compare)

	if n.isLeaf() {
		n.insertKeyAt(pos, v)
		t.size++
	} else {
		childPivot, childRight, childSplit := t.insertFrom(n.children[pos], v)
		if !childSplit {
			return pivot, nil, false
		}
		n.insertKeyAt(pos, childPivot)
		n.insertChildAt(pos+1, childRight)
	}

	if !n.overflowed() {
		return pivot, nil, false
	}
	pivot, right = n.split()
	t.notify(Split, pivot)
	return pivot, right, true
}

/*
growRoot creates a new root node.
The existing root becomes the new root's left child and the node split off it
becomes the right child.
*/
func (t *Tree[T]) growRoot(pivot T, right *node[T]) {
	root := newNode[T](t.degree)
	root.insertKeyAt(0, pivot)
	root.insertChildAt(0, t.root)
	root.insertChildAt(1, right)
	t.root = root
	t.depth++
	t.notify(Grow, pivot)
}
