package avl

import (
	"github.com/npillmayer/arbor/data"
	"github.com/npillmayer/arbor/tree"
)

// Tree is an AVL tree: shared tree.Tree plumbing driven by a Rebalancer
// that restores the height-balance invariant on every ascend.
type Tree[V, S, Act any] struct {
	inner *tree.Tree[V, S, Act]
}

// New returns an empty AVL tree driven by alg.
func New[V, S, Act any](alg data.Algebra[V, S, Act]) *Tree[V, S, Act] {
	return &Tree[V, S, Act]{inner: tree.NewWithRebalancer[V, S, Act](alg, rebalancer[V, S, Act]{})}
}

// FromSlice builds an AVL tree from a pre-sorted slice in O(n), stamping
// each node's height bottom-up as BuildBalanced constructs it — the
// bisection shape BuildBalanced produces is already height-balanced, so no
// separate fixup pass is needed (unlike treap's FromSlice).
func FromSlice[V, S, Act any](alg data.Algebra[V, S, Act], values []V) *Tree[V, S, Act] {
	t := New(alg)
	root := tree.BuildBalanced(alg, values, func(n *tree.Node[V, S, Act]) {
		fixHeight(n)
	})
	t.inner.SetRoot(root)
	return t
}

func (t *Tree[V, S, Act]) Algebra() data.Algebra[V, S, Act] { return t.inner.Algebra() }
func (t *Tree[V, S, Act]) IsEmpty() bool                    { return t.inner.IsEmpty() }
func (t *Tree[V, S, Act]) SubtreeSummary() S                { return t.inner.SubtreeSummary() }
func (t *Tree[V, S, Act]) Values() []V                      { return t.inner.Values() }
func (t *Tree[V, S, Act]) Dump() string                     { return t.inner.Dump() }

func height[V, S, Act any](n *tree.Node[V, S, Act]) int8 {
	if n == nil || n.Meta == nil {
		return 0
	}
	return n.Meta.(int8)
}

func balanceFactor[V, S, Act any](n *tree.Node[V, S, Act]) int {
	if n == nil {
		return 0
	}
	return int(height(n.Left())) - int(height(n.Right()))
}

func fixHeight[V, S, Act any](n *tree.Node[V, S, Act]) {
	if n == nil {
		return
	}
	n.Meta = int8(1 + max(height(n.Left()), height(n.Right())))
}

// rebalancer restores the AVL balance-factor invariant (|left height -
// right height| <= 1) on every ascend, rotating once (LL/RR) or twice
// (LR/RL) as needed.
type rebalancer[V, S, Act any] struct{}

func (rebalancer[V, S, Act]) OnAscend(w *tree.Walker[V, S, Act], child, parent *tree.Node[V, S, Act], cameFromLeft bool) {
	if parent == nil {
		return
	}
	fixHeight(child)
	alg := w.Algebra()
	switch bf := balanceFactor(parent); {
	case bf > 1:
		tracer().Debugf("rebalance: %v is left-heavy (bf=%d), rotating right", parent, bf)
		left := parent.Left()
		if balanceFactor(left) < 0 {
			tree.RotateLeft(alg, parent.LeftSlot())
			rotated := parent.Left()
			fixHeight(rotated.Left())
			fixHeight(rotated)
		}
		w.RotateRightHere()
		top := w.Node()
		fixHeight(top.Right())
		fixHeight(top)
	case bf < -1:
		tracer().Debugf("rebalance: %v is right-heavy (bf=%d), rotating left", parent, bf)
		right := parent.Right()
		if balanceFactor(right) > 0 {
			tree.RotateRight(alg, parent.RightSlot())
			rotated := parent.Right()
			fixHeight(rotated.Right())
			fixHeight(rotated)
		}
		w.RotateLeftHere()
		top := w.Node()
		fixHeight(top.Left())
		fixHeight(top)
	default:
		fixHeight(parent)
	}
}
