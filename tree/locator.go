package tree

import "cmp"

// Direction is the verdict a Locator returns at each descended node.
type Direction int

const (
	// GoLeft asks the algorithm to recurse into the left subtree.
	GoLeft Direction = iota
	// GoRight asks the algorithm to recurse into the right subtree.
	GoRight
	// Accept marks the current node as (part of) the target.
	Accept
)

func (d Direction) String() string {
	switch d {
	case GoLeft:
		return "GoLeft"
	case GoRight:
		return "GoRight"
	case Accept:
		return "Accept"
	default:
		return "Direction(?)"
	}
}

// Locator directs a downward traversal by inspecting the summary of
// everything strictly to the left of a node (including its left subtree),
// the node's own value, and the summary of everything strictly to the
// right (including its right subtree).
//
// The set of positions a Locator Accepts, in in-order sequence, must form
// a contiguous range; violating this is a programmer bug the generic
// algorithms detect and panic on (ErrMisuseReverse's sibling,
// InconsistentLocator).
type Locator[V, S any] interface {
	Locate(leftContext S, value V, rightContext S) (Direction, error)
}

// LocatorFunc adapts a plain function to the Locator interface.
type LocatorFunc[V, S any] func(left S, value V, right S) (Direction, error)

func (f LocatorFunc[V, S]) Locate(left S, value V, right S) (Direction, error) {
	return f(left, value, right)
}

// All is a Locator that Accepts every node — used for whole-tree segment
// operations.
func All[V, S any]() Locator[V, S] {
	return LocatorFunc[V, S](func(S, V, S) (Direction, error) {
		return Accept, nil
	})
}

// ByKey returns a Locator that navigates a keyed tree towards the node
// whose key compares equal to key, Accepting it, and GoLeft/GoRight
// otherwise by comparison.
func ByKey[V, S, K cmp.Ordered](keyOf func(V) K, key K) Locator[V, S] {
	return LocatorFunc[V, S](func(_ S, value V, _ S) (Direction, error) {
		switch {
		case key < keyOf(value):
			return GoLeft, nil
		case key > keyOf(value):
			return GoRight, nil
		default:
			return Accept, nil
		}
	})
}

// Sized is the capability a Summary type must implement for IndexRange to
// work: the count of values summarized.
type Sized interface {
	SizeOf() int
}

// IndexRange returns a Locator that Accepts the values at in-order indices
// [lo, hi) (0-based, half-open), using the size field carried by the
// summary type.
func IndexRange[V any, S Sized](lo, hi int) Locator[V, S] {
	return LocatorFunc[V, S](func(left S, _ V, _ S) (Direction, error) {
		i := left.SizeOf() // index of the current node
		switch {
		case i < lo:
			return GoRight, nil
		case i >= hi:
			return GoLeft, nil
		default:
			return Accept, nil
		}
	})
}
