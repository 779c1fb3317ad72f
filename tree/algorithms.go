package tree

import "github.com/npillmayer/arbor/data"

// This file implements the generic segment algorithms: written once
// against Walker and Locator, and reused unmodified by every balancing
// flavor. The suffix/prefix sweeps below pair GoLeft/GoRight carefully —
// it is an easy spot to get the two arms backwards.

// SearchByLocator descends the tree following loc, returning the value of
// the first node it Accepts, or ErrNotFound if the descent runs off the
// tree without accepting.
func SearchByLocator[V, S, Act any](t *Tree[V, S, Act], loc Locator[V, S]) (V, error) {
	w := t.Walker()
	defer w.Close()
	for {
		if w.IsEmpty() {
			var zero V
			return zero, ErrNotFound
		}
		v, _ := w.Value()
		dir, err := loc.Locate(w.LeftSummary(), v, w.RightSummary())
		if err != nil {
			var zero V
			return zero, err
		}
		switch dir {
		case Accept:
			return v, nil
		case GoLeft:
			_ = w.GoLeft()
		case GoRight:
			_ = w.GoRight()
		}
	}
}

// SegmentSummary returns the combined summary of every value loc Accepts.
// The Locator laws require the accepted positions to form a contiguous
// in-order range; descent finds the shallowest accepted node (the split
// node) and then separately sweeps its left subtree (collecting a growing
// suffix of already-accepted nodes) and its right subtree (collecting a
// growing prefix).
func SegmentSummary[V, S, Act any](t *Tree[V, S, Act], loc Locator[V, S]) (S, error) {
	alg := t.Algebra()
	w := t.Walker()
	defer w.Close()
	for {
		if w.IsEmpty() {
			return alg.IdentitySummary(), nil
		}
		v, _ := w.Value()
		dir, err := loc.Locate(w.LeftSummary(), v, w.RightSummary())
		if err != nil {
			return alg.IdentitySummary(), err
		}
		switch dir {
		case GoLeft:
			_ = w.GoLeft()
		case GoRight:
			_ = w.GoRight()
		case Accept:
			nodeValue := alg.Summarize(v)
			depth := w.Depth()
			_ = w.GoLeft()
			suffix, err := accumulateSuffix(w, loc)
			if err != nil {
				return alg.IdentitySummary(), err
			}
			for w.Depth() > depth {
				_, _ = w.goUpQuiet()
			}
			_ = w.GoRight()
			prefix, err := accumulatePrefix(w, loc)
			if err != nil {
				return alg.IdentitySummary(), err
			}
			return alg.CombineSummary(alg.CombineSummary(suffix, nodeValue), prefix), nil
		}
	}
}

// accumulateSuffix sweeps a subtree known to lie entirely to the left of
// the segment's split node, collecting the growing suffix of its in-order
// sequence that loc Accepts: on Accept it folds in the node's own value and
// its whole right subtree (which must be entirely accepted by the
// contiguity law) and continues left; on GoRight it descends without
// folding anything in. GoLeft here would mean the locator accepted a node
// and then, deeper in the same rightward lineage, rejected an earlier
// position — a broken Locator.
func accumulateSuffix[V, S, Act any](w *Walker[V, S, Act], loc Locator[V, S]) (S, error) {
	alg := w.alg()
	res := alg.IdentitySummary()
	for !w.IsEmpty() {
		v, _ := w.Value()
		dir, err := loc.Locate(w.LeftSummary(), v, w.RightSummary())
		if err != nil {
			return res, err
		}
		switch dir {
		case Accept:
			res = alg.CombineSummary(alg.CombineSummary(alg.Summarize(v), w.RightSubtreeSummary()), res)
			_ = w.GoLeft()
		case GoRight:
			_ = w.GoRight()
		case GoLeft:
			invariant(false, "inconsistent locator: rejected a position left of an already-accepted one")
		}
	}
	return res, nil
}

// accumulatePrefix is accumulateSuffix's mirror image, sweeping a subtree
// known to lie entirely to the right of the split node.
func accumulatePrefix[V, S, Act any](w *Walker[V, S, Act], loc Locator[V, S]) (S, error) {
	alg := w.alg()
	res := alg.IdentitySummary()
	for !w.IsEmpty() {
		v, _ := w.Value()
		dir, err := loc.Locate(w.LeftSummary(), v, w.RightSummary())
		if err != nil {
			return res, err
		}
		switch dir {
		case Accept:
			res = alg.CombineSummary(alg.CombineSummary(res, w.LeftSubtreeSummary()), alg.Summarize(v))
			_ = w.GoRight()
		case GoLeft:
			_ = w.GoLeft()
		case GoRight:
			invariant(false, "inconsistent locator: rejected a position right of an already-accepted one")
		}
	}
	return res, nil
}

// ActSegment applies action to every value loc Accepts, the segment-update
// act_segment. It rejects actions that request a reversal: reversing a
// locator-selected range while leaving the rest of the tree untouched needs
// split/concatenate, which only the splittable flavors (treap, avl) provide
// — see their own Reverse operations.
func ActSegment[V, S, Act any](t *Tree[V, S, Act], action Act, loc Locator[V, S]) error {
	alg := t.Algebra()
	if rev, ok := any(alg).(data.Reversible[Act]); ok {
		probe := action
		if rev.ToReverse(&probe) {
			return ErrMisuseReverse
		}
	}
	w := t.Walker()
	defer w.Close()
	for {
		if w.IsEmpty() {
			return nil
		}
		v, _ := w.Value()
		dir, err := loc.Locate(w.LeftSummary(), v, w.RightSummary())
		if err != nil {
			return err
		}
		switch dir {
		case GoLeft:
			_ = w.GoLeft()
		case GoRight:
			_ = w.GoRight()
		case Accept:
			w.ActNode(action)
			depth := w.Depth()
			_ = w.GoLeft()
			if err := actOnSuffix(w, action, loc); err != nil {
				return err
			}
			for w.Depth() > depth {
				_, _ = w.goUpQuiet()
			}
			_ = w.GoRight()
			return actOnPrefix(w, action, loc)
		}
	}
}

func actOnSuffix[V, S, Act any](w *Walker[V, S, Act], action Act, loc Locator[V, S]) error {
	for !w.IsEmpty() {
		v, _ := w.Value()
		dir, err := loc.Locate(w.LeftSummary(), v, w.RightSummary())
		if err != nil {
			return err
		}
		switch dir {
		case Accept:
			w.ActNode(action)
			w.ActRightSubtree(action)
			_ = w.GoLeft()
		case GoRight:
			_ = w.GoRight()
		case GoLeft:
			invariant(false, "inconsistent locator: rejected a position left of an already-accepted one")
		}
	}
	return nil
}

func actOnPrefix[V, S, Act any](w *Walker[V, S, Act], action Act, loc Locator[V, S]) error {
	for !w.IsEmpty() {
		v, _ := w.Value()
		dir, err := loc.Locate(w.LeftSummary(), v, w.RightSummary())
		if err != nil {
			return err
		}
		switch dir {
		case Accept:
			w.ActNode(action)
			w.ActLeftSubtree(action)
			_ = w.GoRight()
		case GoLeft:
			_ = w.GoLeft()
		case GoRight:
			invariant(false, "inconsistent locator: rejected a position right of an already-accepted one")
		}
	}
	return nil
}

// InsertByLocator descends following loc and inserts value at the first
// empty position it reaches, or returns ErrDuplicateKey if loc Accepts an
// already-occupied node before reaching one.
func InsertByLocator[V, S, Act any](t *Tree[V, S, Act], loc Locator[V, S], value V) error {
	w := t.Walker()
	defer w.Close()
	for !w.IsEmpty() {
		v, _ := w.Value()
		dir, err := loc.Locate(w.LeftSummary(), v, w.RightSummary())
		if err != nil {
			return err
		}
		switch dir {
		case Accept:
			return ErrDuplicateKey
		case GoLeft:
			_ = w.GoLeft()
		case GoRight:
			_ = w.GoRight()
		}
	}
	tracer().Debugf("insert: value = %v", value)
	return w.Insert(value)
}

// DeleteByLocator removes the first node loc Accepts, returning its value.
// A node with no right child is simply spliced out by its left child; a
// node with a right child is replaced by its in-order successor (the
// leftmost node of its right subtree).
func DeleteByLocator[V, S, Act any](t *Tree[V, S, Act], loc Locator[V, S]) (V, error) {
	w := t.Walker()
	defer w.Close()
	for {
		if w.IsEmpty() {
			var zero V
			return zero, ErrNotFound
		}
		v, _ := w.Value()
		dir, err := loc.Locate(w.LeftSummary(), v, w.RightSummary())
		if err != nil {
			var zero V
			return zero, err
		}
		switch dir {
		case Accept:
			return deleteAtFocus(w)
		case GoLeft:
			_ = w.GoLeft()
		case GoRight:
			_ = w.GoRight()
		}
	}
}

func deleteAtFocus[V, S, Act any](w *Walker[V, S, Act]) (V, error) {
	alg := w.alg()
	n := w.Node()
	if n == nil {
		var zero V
		return zero, ErrNotFound
	}
	tracer().Debugf("delete: node = %v", n)
	n.access(alg) // flush n's own pending before discarding/restructuring it
	removed := n.Value
	if n.right == nil {
		w.ReplaceFocus(n.left)
		return removed, nil
	}
	depth := w.Depth()
	_ = w.GoRight()
	descendToMin(w)
	succ := w.Node()
	invariant(succ != nil, "delete: successor descent ended on an empty position")
	succ.access(alg)
	succValue := succ.Value
	tracer().Debugf("delete: splicing out successor %v, promoting %v", succ, succ.right)
	w.ReplaceFocus(succ.right)
	// Unlike the read-only sweeps in accumulateSuffix/accumulatePrefix, this
	// climb passes back up through nodes whose subtree shape just changed
	// (succ was spliced out from underneath them), so their cached
	// rebalancing metadata (e.g. an AVL node's height) is genuinely stale,
	// not merely quiet to leave alone. Ascend for real so the Rebalancer
	// gets a chance to fix up (and, if needed, rotate) every node between
	// succ's old position and n.
	for w.Depth() > depth {
		if _, err := w.GoUp(); err != nil {
			invariant(false, "delete: lost the path back to the deleted node")
		}
	}
	n.Value = succValue
	n.rebuild(alg)
	return removed, nil
}

// descendToMin walks the walker's non-empty focus down to the leftmost
// (minimum, in-order-first) node of its subtree.
func descendToMin[V, S, Act any](w *Walker[V, S, Act]) {
	for {
		if err := w.GoLeft(); err != nil {
			return
		}
		if w.IsEmpty() {
			_, _ = w.GoUp()
			return
		}
	}
}
