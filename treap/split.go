package treap

import (
	"fmt"

	"github.com/npillmayer/arbor/data"
	"github.com/npillmayer/arbor/tree"
)

// Concat merges two treaps known to be key-disjoint and key-ordered (every
// value in left precedes every value in right), recursively picking
// whichever root has the higher priority to keep the max-heap property —
// the standard treap merge.
func Concat[V, S, Act any](alg data.Algebra[V, S, Act], left, right *tree.Node[V, S, Act]) *tree.Node[V, S, Act] {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}
	tree.Flush(alg, left)
	tree.Flush(alg, right)
	if priorityOf(left) >= priorityOf(right) {
		newRight := Concat(alg, left.Right(), right)
		*left.RightSlot() = newRight
		tree.Rebuild(alg, left)
		return left
	}
	newLeft := Concat(alg, left, right.Left())
	*right.LeftSlot() = newLeft
	tree.Rebuild(alg, right)
	return right
}

// Split partitions a subtree at the single boundary loc describes: loc must
// never Accept (every value is either strictly GoLeft or strictly GoRight
// of the cut), or Split reports an error. Returns the left and right
// pieces as independent subtrees.
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
		*n.LeftSlot() = r
		tree.Rebuild(alg, n)
		return l, n, nil
	case tree.GoRight:
		innerLeft := alg.CombineSummary(farLeft, alg.CombineSummary(leftSub.Summary(alg), alg.Summarize(n.Value)))
		l, r, err := splitAt(alg, rightSub, innerLeft, farRight, loc)
		if err != nil {
			return nil, nil, err
		}
		*n.RightSlot() = l
		tree.Rebuild(alg, n)
		return n, r, nil
	default:
		return nil, nil, fmt.Errorf("treap: split requires a boundary locator, got Accept at %v", n.Value)
	}
}

// splitRange partitions a subtree into (before, inRange, after) following a
// range Locator — the same GoLeft/GoRight/Accept contract SegmentSummary and
// ActSegment use — mirroring how tree.accumulateSuffix/accumulatePrefix
// sweep the split node's two subtrees, except that here each step
// restructures Nodes via Concat-style splicing instead of combining
// summaries.
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
		*n.LeftSlot() = r
		tree.Rebuild(alg, n)
		return l, m, n, nil
	case tree.GoRight:
		innerLeft := alg.CombineSummary(farLeft, alg.CombineSummary(leftSub.Summary(alg), alg.Summarize(n.Value)))
		l, m, r, err := splitRange(alg, rightSub, innerLeft, farRight, loc)
		if err != nil {
			return nil, nil, nil, err
		}
		*n.RightSlot() = l
		tree.Rebuild(alg, n)
		return n, m, r, nil
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
		*n.LeftSlot() = in
		*n.RightSlot() = in2
		tree.Rebuild(alg, n)
		return out, n, out2, nil
	}
	return nil, nil, nil, fmt.Errorf("treap: splitRange: unreachable direction")
}

// splitSuffix sweeps a subtree known to lie entirely to the left of a
// range's split node, peeling the growing in-range suffix off of an
// out-of-range prefix, mirroring tree.accumulateSuffix.
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
		*n.LeftSlot() = i
		tree.Rebuild(alg, n)
		return o, n, nil
	case tree.GoRight:
		innerLeft := alg.CombineSummary(leftCtx, alg.Summarize(n.Value))
		o, i, err := splitSuffix(alg, rightSub, innerLeft, farRight, loc)
		if err != nil {
			return nil, nil, err
		}
		*n.RightSlot() = o
		tree.Rebuild(alg, n)
		return n, i, nil
	default:
		return nil, nil, fmt.Errorf("treap: inconsistent range locator left of its split node")
	}
}

// splitPrefix is splitSuffix's mirror image, sweeping a subtree known to lie
// entirely to the right of the split node.
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
		*n.RightSlot() = i
		tree.Rebuild(alg, n)
		return n, o, nil
	case tree.GoLeft:
		innerRight := alg.CombineSummary(alg.Summarize(n.Value), rightCtx)
		i, o, err := splitPrefix(alg, leftSub, farLeft, innerRight, loc)
		if err != nil {
			return nil, nil, err
		}
		*n.LeftSlot() = o
		tree.Rebuild(alg, n)
		return i, n, nil
	default:
		return nil, nil, fmt.Errorf("treap: inconsistent range locator right of its split node")
	}
}

// Reverse reverses the in-order sequence of every value loc Accepts. It
// splits the tree into (before, middle, after) around the Accepted range,
// requests a reversal on middle's root action (propagated lazily to the
// rest of middle on the next access), and concatenates the three pieces
// back together — the operation that needs the accepted range to become
// its own subtree rather than nodes touched in place, which is why only the
// splittable flavors offer it.
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
		// Flush immediately: Concat below may attach unrelated subtrees
		// directly to middle's root via LeftSlot/RightSlot, and an
		// unconsumed pending reversal must not leak onto content that was
		// never part of the reversed range.
		tree.Flush(alg, middle)
	}
	t.inner.SetRoot(Concat(alg, Concat(alg, before, middle), after))
	return nil
}
