package splay

import (
	"github.com/npillmayer/arbor/data"
	"github.com/npillmayer/arbor/tree"
)

// Tree is a splay tree built on top of package tree's shared plumbing. Its
// Rebalancer is a no-op: all of the restructuring happens in Walker.Close,
// where splaying a node two levels at a time (zig-zig/zig-zag) needs more
// lookahead than the single-step tree.Rebalancer seam gives a caller.
type Tree[V, S, Act any] struct {
	inner *tree.Tree[V, S, Act]
}

// New returns an empty splay tree driven by alg.
func New[V, S, Act any](alg data.Algebra[V, S, Act]) *Tree[V, S, Act] {
	return &Tree[V, S, Act]{inner: tree.NewWithRebalancer[V, S, Act](alg, noopRebalancer[V, S, Act]{})}
}

// FromSlice builds a balanced splay tree from a pre-sorted slice, in O(n).
func FromSlice[V, S, Act any](alg data.Algebra[V, S, Act], values []V) *Tree[V, S, Act] {
	t := New(alg)
	t.inner.SetRoot(tree.BuildBalanced(alg, values, nil))
	return t
}

func (t *Tree[V, S, Act]) Algebra() data.Algebra[V, S, Act] { return t.inner.Algebra() }
func (t *Tree[V, S, Act]) IsEmpty() bool                    { return t.inner.IsEmpty() }
func (t *Tree[V, S, Act]) SubtreeSummary() S                { return t.inner.SubtreeSummary() }
func (t *Tree[V, S, Act]) Values() []V                      { return t.inner.Values() }
func (t *Tree[V, S, Act]) Dump() string                     { return t.inner.Dump() }

// Walker returns a splaying cursor: Close moves the last-touched node to
// the root by zig/zig-zig/zig-zag steps.
func (t *Tree[V, S, Act]) Walker() *Walker[V, S, Act] {
	return &Walker[V, S, Act]{base: t.inner.Walker()}
}

type noopRebalancer[V, S, Act any] struct{}

func (noopRebalancer[V, S, Act]) OnAscend(*tree.Walker[V, S, Act], *tree.Node[V, S, Act], *tree.Node[V, S, Act], bool) {
}
