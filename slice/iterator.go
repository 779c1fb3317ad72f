package slice

import "github.com/npillmayer/arbor/tree"

// Iterator is a forward-only in-order cursor over a Slice's range, built
// the same way tree.Iterator walks a whole tree, but descending to the
// first Accepted position and stopping the instant the contiguity law says
// the range has ended, rather than running to the end of the tree.
type Iterator[V, S, Act any] struct {
	w       *tree.Walker[V, S, Act]
	loc     tree.Locator[V, S]
	started bool
	done    bool
}

// Next advances to the next value within the slice's range, reporting
// false once the range is exhausted (or the Locator errors).
func (it *Iterator[V, S, Act]) Next() bool {
	if it.done {
		return false
	}
	if !it.started {
		it.started = true
		found := -1 // depth of the most recent Accepted node on the descent
		for {
			if it.w.IsEmpty() {
				if found < 0 {
					it.done = true
					return false
				}
				for it.w.Depth() > found {
					_, _ = it.w.GoUp()
				}
				return true
			}
			v, _ := it.w.Value()
			dir, err := it.loc.Locate(it.w.LeftSummary(), v, it.w.RightSummary())
			if err != nil {
				it.done = true
				return false
			}
			switch dir {
			case tree.Accept:
				found = it.w.Depth()
				_ = it.w.GoLeft()
			case tree.GoLeft:
				_ = it.w.GoLeft()
			case tree.GoRight:
				_ = it.w.GoRight()
			}
		}
	}
	if err := it.w.NextFilled(); err != nil {
		it.done = true
		return false
	}
	v, _ := it.w.Value()
	dir, err := it.loc.Locate(it.w.LeftSummary(), v, it.w.RightSummary())
	if err != nil || dir != tree.Accept {
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
