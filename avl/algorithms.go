package avl

import (
	"cmp"

	"github.com/npillmayer/arbor/tree"
)

// SearchByLocator, InsertByLocator and DeleteByLocator are all shared
// unmodified from package tree: every AVL-specific fixup happens inside
// rebalancer.OnAscend, driven both by DeleteByLocator's own internal climb
// back up the spliced successor chain and, above that, by the Walker's
// Close as it ascends the rest of the way to the root — so no
// flavor-specific wrapping is needed here (unlike treap, whose insert
// stamps a priority and whose delete rotates the target down before
// splicing it out).
func SearchByLocator[V, S, Act any](t *Tree[V, S, Act], loc tree.Locator[V, S]) (V, error) {
	return tree.SearchByLocator(t.inner, loc)
}

func SearchByKey[V, S, Act any, K cmp.Ordered](t *Tree[V, S, Act], keyOf func(V) K, key K) (V, error) {
	return tree.SearchByKey(t.inner, keyOf, key)
}

func InsertByLocator[V, S, Act any](t *Tree[V, S, Act], loc tree.Locator[V, S], value V) error {
	return tree.InsertByLocator(t.inner, loc, value)
}

func InsertByKey[V, S, Act any, K cmp.Ordered](t *Tree[V, S, Act], keyOf func(V) K, value V) error {
	return tree.InsertByKey(t.inner, keyOf, value)
}

func DeleteByLocator[V, S, Act any](t *Tree[V, S, Act], loc tree.Locator[V, S]) (V, error) {
	return tree.DeleteByLocator(t.inner, loc)
}

func DeleteByKey[V, S, Act any, K cmp.Ordered](t *Tree[V, S, Act], keyOf func(V) K, key K) (V, error) {
	return tree.DeleteByKey(t.inner, keyOf, key)
}

// SegmentSummary and ActSegment are likewise shared unmodified; a plain
// read or in-place act doesn't touch tree shape.
func SegmentSummary[V, S, Act any](t *Tree[V, S, Act], loc tree.Locator[V, S]) (S, error) {
	return tree.SegmentSummary(t.inner, loc)
}

func ActSegment[V, S, Act any](t *Tree[V, S, Act], action Act, loc tree.Locator[V, S]) error {
	return tree.ActSegment(t.inner, action, loc)
}
