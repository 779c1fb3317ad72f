package treap

import (
	"cmp"

	"github.com/npillmayer/arbor/tree"
)

// SegmentSummary returns the combined summary of every value loc Accepts.
// Shared unmodified from package tree — a treap's balancing is priority-
// driven and orthogonal to read-only descent.
func SegmentSummary[V, S, Act any](t *Tree[V, S, Act], loc tree.Locator[V, S]) (S, error) {
	return tree.SegmentSummary(t.inner, loc)
}

// ActSegment applies action to every value loc Accepts, shared unmodified
// from package tree. It rejects any action that requests a reversal with
// tree.ErrMisuseReverse; reversing a range goes through Reverse (split.go),
// which uses Split/Concat instead.
func ActSegment[V, S, Act any](t *Tree[V, S, Act], action Act, loc tree.Locator[V, S]) error {
	return tree.ActSegment(t.inner, action, loc)
}

// SearchByLocator descends following loc, returning the first Accepted
// value. Unlike splay, a treap's balance doesn't depend on access history,
// so nothing is restructured by a search.
func SearchByLocator[V, S, Act any](t *Tree[V, S, Act], loc tree.Locator[V, S]) (V, error) {
	return tree.SearchByLocator(t.inner, loc)
}

// SearchByKey is SearchByLocator specialized to a keyed value.
func SearchByKey[V, S, Act any, K cmp.Ordered](t *Tree[V, S, Act], keyOf func(V) K, key K) (V, error) {
	return tree.SearchByKey(t.inner, keyOf, key)
}

// InsertByLocator descends following loc, inserts value at the first empty
// position reached with a fresh random priority, then lets Close's
// ascend-time Rebalancer bubble it up to restore the heap property.
func InsertByLocator[V, S, Act any](t *Tree[V, S, Act], loc tree.Locator[V, S], value V) error {
	w := t.inner.Walker()
	defer w.Close()
	for !w.IsEmpty() {
		v, _ := w.Value()
		dir, err := loc.Locate(w.LeftSummary(), v, w.RightSummary())
		if err != nil {
			return err
		}
		switch dir {
		case tree.Accept:
			return tree.ErrDuplicateKey
		case tree.GoLeft:
			_ = w.GoLeft()
		case tree.GoRight:
			_ = w.GoRight()
		}
	}
	if err := w.Insert(value); err != nil {
		return err
	}
	w.Node().Meta = randomPriority()
	return nil
}

// InsertByKey is InsertByLocator specialized to a keyed value.
func InsertByKey[V, S, Act any, K cmp.Ordered](t *Tree[V, S, Act], keyOf func(V) K, value V) error {
	return InsertByLocator(t, tree.ByKey[V, S](keyOf, keyOf(value)), value)
}

// DeleteByLocator removes the first node loc Accepts. A treap deletes by
// rotating the target down past its higher-priority child, repeatedly,
// until it becomes a leaf, then splicing it out — the classic treap
// deletion, and the dual of InsertByLocator's bubble-up.
func DeleteByLocator[V, S, Act any](t *Tree[V, S, Act], loc tree.Locator[V, S]) (V, error) {
	w := t.inner.Walker()
	defer w.Close()
	for {
		if w.IsEmpty() {
			var zero V
			return zero, tree.ErrNotFound
		}
		v, _ := w.Value()
		dir, err := loc.Locate(w.LeftSummary(), v, w.RightSummary())
		if err != nil {
			var zero V
			return zero, err
		}
		switch dir {
		case tree.Accept:
			removed := v
			rotateDownToLeaf(w)
			w.ReplaceFocus(nil)
			return removed, nil
		case tree.GoLeft:
			_ = w.GoLeft()
		case tree.GoRight:
			_ = w.GoRight()
		}
	}
}

// DeleteByKey is DeleteByLocator specialized to a keyed value.
func DeleteByKey[V, S, Act any, K cmp.Ordered](t *Tree[V, S, Act], keyOf func(V) K, key K) (V, error) {
	return DeleteByLocator(t, tree.ByKey[V, S](keyOf, key))
}

// rotateDownToLeaf rotates the walker's focus down past whichever child
// has the higher priority, following the walker down into the slot the
// focus rotates into, until the focus has no children.
func rotateDownToLeaf[V, S, Act any](w *tree.Walker[V, S, Act]) {
	for {
		n := w.Node()
		left, right := n.Left(), n.Right()
		if left == nil && right == nil {
			return
		}
		if priorityOf(left) >= priorityOf(right) {
			w.RotateRightHere()
			_ = w.GoRight()
		} else {
			w.RotateLeftHere()
			_ = w.GoLeft()
		}
	}
}
