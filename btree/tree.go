package btree

import (
	"cmp"

	"github.com/cockroachdb/errors"
)

// Degree bounds, exclusive.
const (
	MinDegree = 2
	MaxDegree = 128
)

// ErrInvalidDegree is returned when a tree is created with a branching factor
// outside (MinDegree, MaxDegree).
var ErrInvalidDegree = errors.New("btree: invalid degree")

/*
Tree is an in-memory B-tree of order degree: every node holds at most degree-1
keys and degree children, and every non-root node holds at least (degree-1)/2
keys. A tree is made up of nodes, each exclusively owned by its parent.

Tree is not safe for concurrent use; guard it with a single sync.Mutex when
it must be shared.
*/
type Tree[T any] struct {
	root     *node[T]
	degree   int
	compare  func(a, b T) int
	size     int
	depth    int
	observer Observer[T]
}

// New returns an empty tree over a naturally ordered key type.
func New[T cmp.Ordered](degree int) (*Tree[T], error) {
	return NewFunc[T](degree, cmp.Compare[T])
}

// NewFunc returns an empty tree ordered by compare, which must define a total
// order and return a negative, zero or positive value like cmp.Compare.
func NewFunc[T any](degree int, compare func(a, b T) int) (*Tree[T], error) {
	if degree <= MinDegree || degree >= MaxDegree {
		return nil, errors.Wrapf(ErrInvalidDegree, "degree %d not in (%d, %d)", degree, MinDegree, MaxDegree)
	}
	if compare == nil {
		return nil, errors.New("btree: nil compare function")
	}
	return &Tree[T]{degree: degree, compare: compare}, nil
}

// Size returns the number of keys stored in the tree.
func (t *Tree[T]) Size() int {
	return t.size
}

// Depth returns the number of edges from the root to any leaf.
func (t *Tree[T]) Depth() int {
	return t.depth
}

func (t *Tree[T]) Degree() int {
	return t.degree
}

// Has reports whether a key equal to v is stored in the tree.
func (t *Tree[T]) Has(v T) bool {
	for next := t.root; next != nil; {
		pos, found := next.lowerBound(v, t.compare)
		if found {
			return true
		}
		if next.isLeaf() {
			return false
		}
		next = next.children[pos]
	}
	return false
}

// Keys returns every stored key in order.
func (t *Tree[T]) Keys() []T {
	keys := make([]T, 0, t.size)
	var walk func(n *node[T])
	walk = func(n *node[T]) {
		for i, k := range n.keys {
			if !n.isLeaf() {
				walk(n.children[i])
			}
			keys = append(keys, k)
		}
		if !n.isLeaf() {
			walk(n.children[len(n.keys)])
		}
	}
	if t.root != nil {
		walk(t.root)
	}
	return keys
}

// Levels returns a breadth-first snapshot of the tree: one entry per level,
// each holding the key sets of that level's nodes from left to right.
func (t *Tree[T]) Levels() [][][]T {
	var levels [][][]T
	if t.root == nil {
		return levels
	}
	for level := []*node[T]{t.root}; len(level) > 0; {
		var next []*node[T]
		sets := make([][]T, 0, len(level))
		for _, n := range level {
			sets = append(sets, append([]T(nil), n.keys...))
			next = append(next, n.children...)
		}
		levels = append(levels, sets)
		level = next
	}
	return levels
}

// Clear removes every key from the tree.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.size = 0
	t.depth = 0
}

func (t *Tree[T]) String() string {
	v := &Visualizer[T]{Tree: t, NoColor: true}
	return v.Visualize()
}
