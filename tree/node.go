package tree

import (
	"fmt"

	"github.com/npillmayer/arbor/data"
)

// Node is the triple (value, pending action, cached subtree summary) plus
// the two subtree handles. A nil *Node represents an empty subtree.
//
// Meta is an escape hatch for balancing metadata a flavor needs to carry
// per node (a treap's random priority, an AVL node's height) without
// forking the Node type per flavor — every balancing variant shares this
// single node/walker infrastructure.
type Node[V, S, Act any] struct {
	Value   V
	Meta    any
	pending Act
	summary S
	left    *Node[V, S, Act]
	right   *Node[V, S, Act]
}

// NewNode allocates a leaf node holding value.
func NewNode[V, S, Act any](alg data.Algebra[V, S, Act], value V) *Node[V, S, Act] {
	return &Node[V, S, Act]{
		Value:   value,
		pending: alg.IdentityAction(),
		summary: alg.Summarize(value),
	}
}

func (n *Node[V, S, Act]) String() string {
	if n == nil {
		return "·"
	}
	return fmt.Sprintf("(%v)", n.Value)
}

// subtreeSummary returns ε for an empty subtree, or the node's cached
// summary otherwise. The cache is always "as if pending had already been
// applied", so no further action application is needed here.
func subtreeSummary[V, S, Act any](alg data.Algebra[V, S, Act], n *Node[V, S, Act]) S {
	if n == nil {
		return alg.IdentitySummary()
	}
	return n.summary
}

// access pushes n's pending action one level down: composes it into both
// children's pending, applies it to n's own value, and clears it. If the
// algebra's action supports reversal and a reversal is requested, the
// children are swapped and the reversal bit is re-emitted onto the (now
// swapped) children's pending actions, so a downstream observer's notion
// of "left"/"right" stays a logical, not merely physical, one.
func (n *Node[V, S, Act]) access(alg data.Algebra[V, S, Act]) {
	if n == nil {
		return
	}
	id := alg.IdentityAction()
	pending := n.pending
	n.pending = id
	// The reversal request is consumed before pending is composed into the
	// children, so each child receives it exactly once (via rev.Reverse).
	rev, reversible := any(alg).(data.Reversible[Act])
	reverse := reversible && rev.ToReverse(&pending)
	n.Value = alg.ActValue(pending, n.Value)
	if n.left != nil {
		n.left.pending = alg.ComposeAction(pending, n.left.pending)
		n.left.summary = alg.ActSummary(pending, n.left.summary)
	}
	if n.right != nil {
		n.right.pending = alg.ComposeAction(pending, n.right.pending)
		n.right.summary = alg.ActSummary(pending, n.right.summary)
	}
	if reverse {
		tracer().Debugf("access: consuming reversal request at %v", n)
		n.left, n.right = n.right, n.left
		if n.left != nil {
			rev.Reverse(&n.left.pending)
		}
		if n.right != nil {
			rev.Reverse(&n.right.pending)
		}
	}
}

// rebuild recomputes n's cached summary from its children plus its own
// value. Requires n itself to be clean of pending (callers rebuild only
// after access, or on nodes whose pending is id).
func (n *Node[V, S, Act]) rebuild(alg data.Algebra[V, S, Act]) {
	if n == nil {
		return
	}
	left := subtreeSummary(alg, n.left)
	right := subtreeSummary(alg, n.right)
	n.summary = alg.CombineSummary(alg.CombineSummary(left, alg.Summarize(n.Value)), right)
}

// act composes a into n's pending action and updates n's cached subtree
// summary via the action/summary homomorphism, in O(1).
func (n *Node[V, S, Act]) act(alg data.Algebra[V, S, Act], a Act) {
	if n == nil {
		return
	}
	n.pending = alg.ComposeAction(a, n.pending)
	n.summary = alg.ActSummary(a, n.summary)
}

// isLeaf reports whether n has no children.
func (n *Node[V, S, Act]) isLeaf() bool {
	return n != nil && n.left == nil && n.right == nil
}

// Left returns n's left child, or nil. Exported for flavor packages
// (splay/treap/avl) that need to inspect shape for their own bookkeeping
// (a treap's heap check, an AVL node's balance factor). Nil-safe.
func (n *Node[V, S, Act]) Left() *Node[V, S, Act] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns n's right child, or nil. Nil-safe.
func (n *Node[V, S, Act]) Right() *Node[V, S, Act] {
	if n == nil {
		return nil
	}
	return n.right
}

// LeftSlot returns the address of n's left-child field, for flavor packages
// that need to rotate a subtree they don't otherwise have a Walker frame
// for (AVL's left-right/right-left double rotations).
func (n *Node[V, S, Act]) LeftSlot() **Node[V, S, Act] { return &n.left }

// RightSlot returns the address of n's right-child field.
func (n *Node[V, S, Act]) RightSlot() **Node[V, S, Act] { return &n.right }

// Summary returns n's cached subtree summary, or ε if n is nil.
func (n *Node[V, S, Act]) Summary(alg data.Algebra[V, S, Act]) S {
	return subtreeSummary(alg, n)
}

// Rebuild recomputes n's cached subtree summary from its current value and
// children. Exported for flavor packages that restructure a node's
// children directly through LeftSlot/RightSlot (splay's join-on-delete,
// treap/avl's Split/Concat) rather than through a Walker.
func Rebuild[V, S, Act any](alg data.Algebra[V, S, Act], n *Node[V, S, Act]) {
	n.rebuild(alg)
}

// Act composes a into n's pending action and updates n's cached subtree
// summary in O(1), exactly like Walker.ActSubtree but for flavor packages
// operating directly on a detached Node (treap's Reverse, stamped onto the
// root of a freshly split-out middle subtree).
func Act[V, S, Act any](alg data.Algebra[V, S, Act], n *Node[V, S, Act], a Act) {
	n.act(alg, a)
}

// Flush pushes n's pending action one level down into its children and
// applies it to n's own value, clearing it from n. Exported so a flavor
// package that attaches fresh children to n outside of the Walker protocol
// (treap/avl's Concat, reattaching a node whose pending action was set by
// Reverse before any further splicing) never hands an unconsumed action a
// subtree it was never meant to cover.
func Flush[V, S, Act any](alg data.Algebra[V, S, Act], n *Node[V, S, Act]) {
	n.access(alg)
}
