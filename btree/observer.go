package btree

// EventKind identifies a structural change made while rebalancing.
type EventKind int

const (
	// Split: an overflowed node was divided and Pivot promoted to its parent.
	Split EventKind = iota
	// Grow: the root split and a new root holding Pivot was created.
	Grow
	// RotateLeft: an underflowed node borrowed from its left sibling.
	// Pivot is the sibling key that moved up into the parent.
	RotateLeft
	// RotateRight: an underflowed node borrowed from its right sibling.
	RotateRight
	// Merge: two siblings were combined around Pivot, pulled down from the parent.
	Merge
	// Shrink: the root ran out of keys and was replaced by its only child.
	// Pivot is left as the zero value.
	Shrink
)

var eventNames = [...]string{
	Split:       "split",
	Grow:        "grow",
	RotateLeft:  "rotate-left",
	RotateRight: "rotate-right",
	Merge:       "merge",
	Shrink:      "shrink",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// Event describes one rebalancing step. Depth is the depth of the tree once
// the step is applied.
type Event[T any] struct {
	Kind  EventKind
	Pivot T
	Depth int
}

// Observer receives rebalancing events as they happen. It must not mutate
// the tree it observes.
type Observer[T any] func(Event[T])

// SetObserver installs fn as the tree's observer. A nil fn removes it.
func (t *Tree[T]) SetObserver(fn Observer[T]) {
	t.observer = fn
}

func (t *Tree[T]) notify(kind EventKind, pivot T) {
	if t.observer != nil {
		t.observer(Event[T]{Kind: kind, Pivot: pivot, Depth: t.depth})
	}
}
