package btree

import "github.com/cockroachdb/errors"

// Check walks the whole tree and verifies its structural invariants: keys are
// ordered within nodes and bounded by their separators, no node is over
// capacity, no non-root node is underflowed, every leaf sits at Depth(), and
// the size counter matches the stored keys. It returns the first violation
// found as an assertion failure.
func (t *Tree[T]) Check() error {
	if t.root == nil {
		if t.size != 0 || t.depth != 0 {
			return errors.AssertionFailedf("empty tree with size %d depth %d", t.size, t.depth)
		}
		return nil
	}
	count, err := t.check(t.root, 0, nil, nil)
	if err != nil {
		return err
	}
	if count != t.size {
		return errors.AssertionFailedf("size counter %d, tree holds %d keys", t.size, count)
	}
	return nil
}

func (t *Tree[T]) check(n *node[T], level int, lo, hi *T) (int, error) {
	switch {
	case len(n.keys) > t.degree-1:
		return 0, errors.AssertionFailedf("level %d: node holds %d keys, max %d", level, len(n.keys), t.degree-1)
	case n != t.root && n.underflowed():
		return 0, errors.AssertionFailedf("level %d: node underflowed with %d keys", level, len(n.keys))
	case n == t.root && n.empty():
		return 0, errors.AssertionFailedf("root is empty")
	}

	for i, k := range n.keys {
		if i > 0 && t.compare(n.keys[i-1], k) > 0 {
			return 0, errors.AssertionFailedf("level %d: keys out of order at %d", level, i)
		}
		if (lo != nil && t.compare(k, *lo) < 0) || (hi != nil && t.compare(k, *hi) > 0) {
			return 0, errors.AssertionFailedf("level %d: key at %d escapes its separators", level, i)
		}
	}

	if n.isLeaf() {
		if level != t.depth {
			return 0, errors.AssertionFailedf("leaf at level %d, depth is %d", level, t.depth)
		}
		return len(n.keys), nil
	}

	if len(n.children) != len(n.keys)+1 {
		return 0, errors.AssertionFailedf("level %d: %d keys but %d children", level, len(n.keys), len(n.children))
	}
	count := len(n.keys)
	for i, child := range n.children {
		clo, chi := lo, hi
		if i > 0 {
			clo = &n.keys[i-1]
		}
		if i < len(n.keys) {
			chi = &n.keys[i]
		}
		c, err := t.check(child, level+1, clo, chi)
		if err != nil {
			return 0, err
		}
		count += c
	}
	return count, nil
}
