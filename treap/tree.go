package treap

import (
	"math/rand"

	"github.com/npillmayer/arbor/data"
	"github.com/npillmayer/arbor/tree"
)

// Tree is a treap: the shared tree.Tree plumbing, driven by a Rebalancer
// that restores the heap property by a single rotation on every ascend.
type Tree[V, S, Act any] struct {
	inner *tree.Tree[V, S, Act]
}

// New returns an empty treap driven by alg.
func New[V, S, Act any](alg data.Algebra[V, S, Act]) *Tree[V, S, Act] {
	return &Tree[V, S, Act]{inner: tree.NewWithRebalancer[V, S, Act](alg, rebalancer[V, S, Act]{})}
}

// FromSlice builds a treap from a pre-sorted slice, stamping a fresh random
// priority on every node and then heapifying the result once with fixHeap.
func FromSlice[V, S, Act any](alg data.Algebra[V, S, Act], values []V) *Tree[V, S, Act] {
	t := New(alg)
	root := tree.BuildBalanced(alg, values, func(n *tree.Node[V, S, Act]) {
		n.Meta = randomPriority()
	})
	fixHeap(alg, &root)
	t.inner.SetRoot(root)
	return t
}

func (t *Tree[V, S, Act]) Algebra() data.Algebra[V, S, Act] { return t.inner.Algebra() }
func (t *Tree[V, S, Act]) IsEmpty() bool                    { return t.inner.IsEmpty() }
func (t *Tree[V, S, Act]) SubtreeSummary() S                { return t.inner.SubtreeSummary() }
func (t *Tree[V, S, Act]) Values() []V                      { return t.inner.Values() }
func (t *Tree[V, S, Act]) Dump() string                     { return t.inner.Dump() }

func randomPriority() uint64 { return rand.Uint64() }

func priorityOf[V, S, Act any](n *tree.Node[V, S, Act]) uint64 {
	if n == nil || n.Meta == nil {
		return 0
	}
	return n.Meta.(uint64)
}

// rebalancer restores the max-heap property (on priority) by a single
// rotation whenever an ascend leaves a child with higher priority than its
// parent.
type rebalancer[V, S, Act any] struct{}

func (rebalancer[V, S, Act]) OnAscend(w *tree.Walker[V, S, Act], child, parent *tree.Node[V, S, Act], cameFromLeft bool) {
	if child == nil || parent == nil {
		return
	}
	if priorityOf(child) > priorityOf(parent) {
		if cameFromLeft {
			w.RotateRightHere()
		} else {
			w.RotateLeftHere()
		}
	}
}

// fixHeap descends a freshly built subtree in post-order (children before
// parent) and, at each node, rotates it down past any child with a higher
// priority, following it down, until the max-heap property holds below it. Used only by
// FromSlice, where every node's priority is assigned after the shape
// already exists, so the whole subtree needs heapifying at once rather
// than incrementally as with InsertByLocator.
func fixHeap[V, S, Act any](alg data.Algebra[V, S, Act], link **tree.Node[V, S, Act]) {
	n := *link
	if n == nil {
		return
	}
	fixHeap(alg, n.LeftSlot())
	fixHeap(alg, n.RightSlot())
	for {
		cur := *link
		left, right := cur.Left(), cur.Right()
		switch {
		case priorityOf(left) > priorityOf(cur) && priorityOf(left) >= priorityOf(right):
			tree.RotateRight(alg, link)
			link = (*link).RightSlot()
		case priorityOf(right) > priorityOf(cur):
			tree.RotateLeft(alg, link)
			link = (*link).LeftSlot()
		default:
			return
		}
	}
}
