package tree

// Iterator is a forward-only in-order cursor over a tree's values. Unlike
// Walker it exposes no segment summaries or mutation, just Next/Value, for
// any caller that only wants the sequence. Package slice has its own
// range-bounded Iterator built the same way.
type Iterator[V, S, Act any] struct {
	w       *Walker[V, S, Act]
	started bool
	done    bool
}

// NewIterator returns an iterator positioned before t's first value.
func NewIterator[V, S, Act any](t *Tree[V, S, Act]) *Iterator[V, S, Act] {
	return &Iterator[V, S, Act]{w: t.Walker()}
}

// Next advances to the next value in-order, reporting false once
// exhausted. Call Value after a Next that returned true.
func (it *Iterator[V, S, Act]) Next() bool {
	if it.done {
		return false
	}
	if !it.started {
		it.started = true
		descendToMin(it.w)
		if it.w.IsEmpty() {
			it.done = true
			return false
		}
		return true
	}
	if err := it.w.NextFilled(); err != nil {
		it.done = true
		return false
	}
	return true
}

// Value returns the value at the iterator's current position.
func (it *Iterator[V, S, Act]) Value() V {
	v, _ := it.w.Value()
	return v
}

// Close releases the iterator's underlying walker.
func (it *Iterator[V, S, Act]) Close() {
	it.w.Close()
}
