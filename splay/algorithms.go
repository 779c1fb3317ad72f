package splay

import (
	"cmp"

	"github.com/npillmayer/arbor/tree"
)

// SegmentSummary and ActSegment are deliberately NOT splay-specific
// overrides of anything: a splay tree's own answer to "what should a
// segment operation do" is "don't splay" — reshuffling the whole tree on
// every range query would defeat the point of an amortized structure whose
// splaying is reserved for point access. They pass straight through to the
// shared tree package algorithms, unmodified.

// SegmentSummary returns the combined summary of every value loc Accepts.
func SegmentSummary[V, S, Act any](t *Tree[V, S, Act], loc tree.Locator[V, S]) (S, error) {
	return tree.SegmentSummary(t.inner, loc)
}

// ActSegment applies action to every value loc Accepts.
func ActSegment[V, S, Act any](t *Tree[V, S, Act], action Act, loc tree.Locator[V, S]) error {
	return tree.ActSegment(t.inner, action, loc)
}

// SearchByLocator descends following loc, splaying the found node to the
// root before returning its value.
func SearchByLocator[V, S, Act any](t *Tree[V, S, Act], loc tree.Locator[V, S]) (V, error) {
	w := t.Walker()
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
			return v, nil
		case tree.GoLeft:
			_ = w.GoLeft()
		case tree.GoRight:
			_ = w.GoRight()
		}
	}
}

// SearchByKey is SearchByLocator specialized to a keyed value.
func SearchByKey[V, S, Act any, K cmp.Ordered](t *Tree[V, S, Act], keyOf func(V) K, key K) (V, error) {
	return SearchByLocator(t, tree.ByKey[V, S](keyOf, key))
}

// InsertByLocator descends following loc and inserts value at the first
// empty position reached, splaying the new node to the root.
func InsertByLocator[V, S, Act any](t *Tree[V, S, Act], loc tree.Locator[V, S], value V) error {
	w := t.Walker()
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
	return w.Insert(value)
}

// InsertByKey is InsertByLocator specialized to a keyed value.
func InsertByKey[V, S, Act any, K cmp.Ordered](t *Tree[V, S, Act], keyOf func(V) K, value V) error {
	return InsertByLocator(t, tree.ByKey[V, S](keyOf, keyOf(value)), value)
}

// DeleteByLocator removes the first node loc Accepts. A splay tree deletes
// by splaying the target to the root and joining its two subtrees: the
// left subtree's maximum is splayed to its own root (a walk down the right
// spine plus one splay), and the original right subtree is hung off its
// now-vacant right side — the join a splay tree gets almost for free.
func DeleteByLocator[V, S, Act any](t *Tree[V, S, Act], loc tree.Locator[V, S]) (V, error) {
	w := t.Walker()
	for {
		if w.IsEmpty() {
			w.Close()
			var zero V
			return zero, tree.ErrNotFound
		}
		v, _ := w.Value()
		dir, err := loc.Locate(w.LeftSummary(), v, w.RightSummary())
		if err != nil {
			w.Close()
			var zero V
			return zero, err
		}
		switch dir {
		case tree.Accept:
			w.Close() // splay the target to the root
			return deleteRoot(t)
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

// deleteRoot removes t's current root (assumed to already be the deletion
// target, e.g. just splayed there).
func deleteRoot[V, S, Act any](t *Tree[V, S, Act]) (V, error) {
	root := t.inner.Root()
	if root == nil {
		var zero V
		return zero, tree.ErrNotFound
	}
	removed := root.Value
	left, right := root.Left(), root.Right()
	switch {
	case left == nil:
		t.inner.SetRoot(right)
	case right == nil:
		t.inner.SetRoot(left)
	default:
		leftTree := &Tree[V, S, Act]{inner: tree.NewWithRebalancer(t.Algebra(), noopRebalancer[V, S, Act]{})}
		leftTree.inner.SetRoot(left)
		w := leftTree.Walker()
		for {
			if err := w.GoRight(); err != nil {
				break
			}
		}
		w.Close() // splays the left subtree's maximum to leftTree's root
		newRoot := leftTree.inner.Root()
		*newRoot.RightSlot() = right
		tree.Rebuild(t.Algebra(), newRoot)
		t.inner.SetRoot(newRoot)
	}
	return removed, nil
}
