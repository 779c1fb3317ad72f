package avl

import (
	"fmt"

	"github.com/npillmayer/arbor/data"
	"github.com/npillmayer/arbor/tree"
)

// join reattaches left and right, known to be key-disjoint and ordered
// (every value in left precedes k precedes every value in right), under
// pivot value k, rebalancing along whichever spine the recursion walks
// down — the classic purely-functional AVL join.
func join[V, S, Act any](alg data.Algebra[V, S, Act], left *tree.Node[V, S, Act], k V, right *tree.Node[V, S, Act]) *tree.Node[V, S, Act] {
	lh, rh := int(height(left)), int(height(right))
	switch {
	case lh > rh+1:
		tree.Flush(alg, left)
		newRight := join(alg, left.Right(), k, right)
		*left.RightSlot() = newRight
		return rebalance(alg, left)
	case rh > lh+1:
		tree.Flush(alg, right)
		newLeft := join(alg, left, k, right.Left())
		*right.LeftSlot() = newLeft
		return rebalance(alg, right)
	default:
		n := tree.NewNode(alg, k)
		*n.LeftSlot() = left
		*n.RightSlot() = right
		tree.Rebuild(alg, n)
		fixHeight(n)
		return n
	}
}

// rebalance recomputes n's summary and height, and rotates it (single or
// double) if the join/split recursion left it out of AVL balance,
// returning whatever node now roots this subtree.
func rebalance[V, S, Act any](alg data.Algebra[V, S, Act], n *tree.Node[V, S, Act]) *tree.Node[V, S, Act] {
	tree.Rebuild(alg, n)
	fixHeight(n)
	switch bf := balanceFactor(n); {
	case bf > 1:
		left := n.Left()
		if balanceFactor(left) < 0 {
			tree.RotateLeft(alg, n.LeftSlot())
			rotated := n.Left()
			fixHeight(rotated.Left())
			fixHeight(rotated)
		}
		slot := n
		ptr := &slot
		tree.RotateRight(alg, ptr)
		fixHeight((*ptr).Right())
		fixHeight(*ptr)
		return *ptr
	case bf < -1:
		right := n.Right()
		if balanceFactor(right) > 0 {
			tree.RotateRight(alg, n.RightSlot())
			rotated := n.Right()
			fixHeight(rotated.Right())
			fixHeight(rotated)
		}
		slot := n
		ptr := &slot
		tree.RotateLeft(alg, ptr)
		fixHeight((*ptr).Left())
		fixHeight(*ptr)
		return *ptr
	default:
		return n
	}
}

// popMax removes and returns the maximum (rightmost) value of n, along
// with the subtree that remains once it's gone.
func popMax[V, S, Act any](alg data.Algebra[V, S, Act], n *tree.Node[V, S, Act]) (V, *tree.Node[V, S, Act]) {
	tree.Flush(alg, n)
	if n.Right() == nil {
		return n.Value, n.Left()
	}
	v, rest := popMax(alg, n.Right())
	*n.RightSlot() = rest
	return v, rebalance(alg, n)
}

// Concat merges two AVL trees known to be key-disjoint and key-ordered
// (every value in left precedes every value in right): it pops the
// maximum out of left to use as join's pivot, then joins the remainder to
// right.
func Concat[V, S, Act any](alg data.Algebra[V, S, Act], left, right *tree.Node[V, S, Act]) *tree.Node[V, S, Act] {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}
	k, rest := popMax(alg, left)
	return join(alg, rest, k, right)
}

// Split partitions a subtree at the single boundary loc describes: loc
// must never Accept (every value is either strictly GoLeft or strictly
// GoRight of the cut), or Split reports an error.
func Split[V, S, Act any](alg data.Algebra[V, S, Act], n *tree.Node[V, S, Act], loc tree.Locator[V, S]) (left, right *tree.Node[V, S, Act], err error) {
	return splitAt(alg, n, alg.IdentitySummary(), alg.IdentitySummary(), loc)
}

func splitAt[V, S, Act any](alg data.Algebra[V, S, Act], n *tree.Node[V, S, Act], farLeft, farRight S, loc tree.Locator[V, S]) (*tree.Node[V, S, Act], *tree.Node[V, S, Act], error) {
	if n == nil {
		return nil, nil, nil
	}
	tree.Flush(alg, n)
	leftSub, rightSub := n.Left(), n.Right()
	leftCtx := alg.CombineSummary(farLeft, leftSub.Summary(alg))
	rightCtx := alg.CombineSummary(rightSub.Summary(alg), farRight)
	dir, err := loc.Locate(leftCtx, n.Value, rightCtx)
	if err != nil {
		return nil, nil, err
	}
	switch dir {
	case tree.GoLeft:
		innerRight := alg.CombineSummary(alg.CombineSummary(alg.Summarize(n.Value), rightSub.Summary(alg)), farRight)
		l, r, err := splitAt(alg, leftSub, farLeft, innerRight, loc)
		if err != nil {
			return nil, nil, err
		}
		return l, join(alg, r, n.Value, rightSub), nil
	case tree.GoRight:
		innerLeft := alg.CombineSummary(farLeft, alg.CombineSummary(leftSub.Summary(alg), alg.Summarize(n.Value)))
		l, r, err := splitAt(alg, rightSub, innerLeft, farRight, loc)
		if err != nil {
			return nil, nil, err
		}
		return join(alg, leftSub, n.Value, l), r, nil
	default:
		return nil, nil, fmt.Errorf("avl: split requires a boundary locator, got Accept at %v", n.Value)
	}
}

// splitRange partitions a subtree into (before, inRange, after) following a
// range Locator, mirroring treap's splitRange but reattaching pieces via
// join instead of direct slot surgery, so every reassembled piece stays
// height-balanced.
func splitRange[V, S, Act any](alg data.Algebra[V, S, Act], n *tree.Node[V, S, Act], farLeft, farRight S, loc tree.Locator[V, S]) (before, inRange, after *tree.Node[V, S, Act], err error) {
	if n == nil {
		return nil, nil, nil, nil
	}
	tree.Flush(alg, n)
	leftSub, rightSub := n.Left(), n.Right()
	leftCtx := alg.CombineSummary(farLeft, leftSub.Summary(alg))
	rightCtx := alg.CombineSummary(rightSub.Summary(alg), farRight)
	dir, err := loc.Locate(leftCtx, n.Value, rightCtx)
	if err != nil {
		return nil, nil, nil, err
	}
	switch dir {
	case tree.GoLeft:
		innerRight := alg.CombineSummary(alg.CombineSummary(alg.Summarize(n.Value), rightSub.Summary(alg)), farRight)
		l, m, r, err := splitRange(alg, leftSub, farLeft, innerRight, loc)
		if err != nil {
			return nil, nil, nil, err
		}
		return l, m, join(alg, r, n.Value, rightSub), nil
	case tree.GoRight:
		innerLeft := alg.CombineSummary(farLeft, alg.CombineSummary(leftSub.Summary(alg), alg.Summarize(n.Value)))
		l, m, r, err := splitRange(alg, rightSub, innerLeft, farRight, loc)
		if err != nil {
			return nil, nil, nil, err
		}
		return join(alg, leftSub, n.Value, l), m, r, nil
	case tree.Accept:
		innerRightOfN := alg.CombineSummary(alg.CombineSummary(alg.Summarize(n.Value), rightSub.Summary(alg)), farRight)
		innerLeftOfN := alg.CombineSummary(farLeft, alg.CombineSummary(leftSub.Summary(alg), alg.Summarize(n.Value)))
		out, in, err := splitSuffix(alg, leftSub, farLeft, innerRightOfN, loc)
		if err != nil {
			return nil, nil, nil, err
		}
		in2, out2, err := splitPrefix(alg, rightSub, innerLeftOfN, farRight, loc)
		if err != nil {
			return nil, nil, nil, err
		}
		return out, join(alg, in, n.Value, in2), out2, nil
	}
	return nil, nil, nil, fmt.Errorf("avl: splitRange: unreachable direction")
}

func splitSuffix[V, S, Act any](alg data.Algebra[V, S, Act], n *tree.Node[V, S, Act], farLeft, farRight S, loc tree.Locator[V, S]) (out, in *tree.Node[V, S, Act], err error) {
	if n == nil {
		return nil, nil, nil
	}
	tree.Flush(alg, n)
	leftSub, rightSub := n.Left(), n.Right()
	leftCtx := alg.CombineSummary(farLeft, leftSub.Summary(alg))
	rightCtx := alg.CombineSummary(rightSub.Summary(alg), farRight)
	dir, err := loc.Locate(leftCtx, n.Value, rightCtx)
	if err != nil {
		return nil, nil, err
	}
	switch dir {
	case tree.Accept:
		innerRight := alg.CombineSummary(alg.CombineSummary(alg.Summarize(n.Value), rightSub.Summary(alg)), farRight)
		o, i, err := splitSuffix(alg, leftSub, farLeft, innerRight, loc)
		if err != nil {
			return nil, nil, err
		}
		return o, join(alg, i, n.Value, rightSub), nil
	case tree.GoRight:
		innerLeft := alg.CombineSummary(leftCtx, alg.Summarize(n.Value))
		o, i, err := splitSuffix(alg, rightSub, innerLeft, farRight, loc)
		if err != nil {
			return nil, nil, err
		}
		return join(alg, leftSub, n.Value, o), i, nil
	default:
		return nil, nil, fmt.Errorf("avl: inconsistent range locator left of its split node")
	}
}

func splitPrefix[V, S, Act any](alg data.Algebra[V, S, Act], n *tree.Node[V, S, Act], farLeft, farRight S, loc tree.Locator[V, S]) (in, out *tree.Node[V, S, Act], err error) {
	if n == nil {
		return nil, nil, nil
	}
	tree.Flush(alg, n)
	leftSub, rightSub := n.Left(), n.Right()
	leftCtx := alg.CombineSummary(farLeft, leftSub.Summary(alg))
	rightCtx := alg.CombineSummary(rightSub.Summary(alg), farRight)
	dir, err := loc.Locate(leftCtx, n.Value, rightCtx)
	if err != nil {
		return nil, nil, err
	}
	switch dir {
	case tree.Accept:
		innerLeft := alg.CombineSummary(farLeft, alg.CombineSummary(leftSub.Summary(alg), alg.Summarize(n.Value)))
		i, o, err := splitPrefix(alg, rightSub, innerLeft, farRight, loc)
		if err != nil {
			return nil, nil, err
		}
		return join(alg, leftSub, n.Value, i), o, nil
	case tree.GoLeft:
		innerRight := alg.CombineSummary(alg.Summarize(n.Value), rightCtx)
		i, o, err := splitPrefix(alg, leftSub, farLeft, innerRight, loc)
		if err != nil {
			return nil, nil, err
		}
		return i, join(alg, o, n.Value, rightSub), nil
	default:
		return nil, nil, fmt.Errorf("avl: inconsistent range locator right of its split node")
	}
}

// Reverse reverses the in-order sequence of every value loc Accepts, the
// same split/flush/Concat dance treap.Reverse uses.
func Reverse[V, S, Act any](t *Tree[V, S, Act], loc tree.Locator[V, S]) error {
	alg := t.Algebra()
	rev, ok := any(alg).(data.Reversible[Act])
	if !ok {
		return tree.ErrMisuseReverse
	}
	before, middle, after, err := splitRange(alg, t.inner.Root(), alg.IdentitySummary(), alg.IdentitySummary(), loc)
	if err != nil {
		return err
	}
	if middle != nil {
		var a Act
		rev.Reverse(&a)
		tree.Act(alg, middle, a)
		tree.Flush(alg, middle)
	}
	t.inner.SetRoot(Concat(alg, Concat(alg, before, middle), after))
	return nil
}
