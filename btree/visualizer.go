package btree

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

/*
Visualizer renders a tree as text, breadth first. The first line is a header
with the tree's depth, degree and size. Each internal node then gets one line,
indented by its level, listing its keys followed by the key sets of its
children. A tree whose root is a leaf prints that single node.

	BTree: depth=1, degree=4, size=5
	(3) -> (1, 2) (4, 5)
*/
type Visualizer[T any] struct {
	Tree    *Tree[T]
	NoColor bool
}

func (v *Visualizer[T]) Visualize() string {
	header := color.New(color.Bold)
	inner := color.New(color.FgCyan)
	leaf := color.New(color.FgGreen)
	if v.NoColor {
		header.DisableColor()
		inner.DisableColor()
		leaf.DisableColor()
	}

	t := v.Tree
	var sb strings.Builder
	sb.WriteString(header.Sprintf("BTree: depth=%d, degree=%d, size=%d", t.depth, t.degree, t.size))
	sb.WriteByte('\n')

	if t.root == nil {
		sb.WriteString("()\n")
		return sb.String()
	}
	if t.root.isLeaf() {
		sb.WriteString(leaf.Sprint(formatKeys(t.root.keys)))
		sb.WriteByte('\n')
		return sb.String()
	}

	paint := func(n *node[T]) string {
		if n.isLeaf() {
			return leaf.Sprint(formatKeys(n.keys))
		}
		return inner.Sprint(formatKeys(n.keys))
	}

	level := []*node[T]{t.root}
	for depth := 0; len(level) > 0 && !level[0].isLeaf(); depth++ {
		var next []*node[T]
		for _, n := range level {
			sb.WriteString(strings.Repeat("  ", depth))
			sb.WriteString(paint(n))
			sb.WriteString(" ->")
			for _, c := range n.children {
				sb.WriteByte(' ')
				sb.WriteString(paint(c))
			}
			sb.WriteByte('\n')
			next = append(next, n.children...)
		}
		level = next
	}
	return sb.String()
}

func formatKeys[T any](keys []T) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprint(k)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
