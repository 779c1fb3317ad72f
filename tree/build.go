package tree

import "github.com/npillmayer/arbor/data"

// FromSlice builds a height-balanced tree from values, which must already
// be in the desired in-order sequence (e.g. pre-sorted by key). Building by
// recursive bisection is O(n), against O(n log n) for n individual
// Insert calls.
func FromSlice[V, S, Act any](alg data.Algebra[V, S, Act], values []V) *Tree[V, S, Act] {
	t := New(alg)
	t.root = BuildBalanced(alg, values, nil)
	return t
}

// BuildBalanced is the recursive-bisection builder behind FromSlice,
// exported so flavor packages (treap, avl) can reuse it while stamping
// their own per-node Meta. decorate, if non-nil, is called on every
// freshly-built node after its children (so a flavor's Meta computation,
// e.g. an AVL height, can read the children's already-set Meta).
func BuildBalanced[V, S, Act any](alg data.Algebra[V, S, Act], values []V, decorate func(*Node[V, S, Act])) *Node[V, S, Act] {
	if len(values) == 0 {
		return nil
	}
	mid := len(values) / 2
	n := NewNode(alg, values[mid])
	n.left = BuildBalanced(alg, values[:mid], decorate)
	n.right = BuildBalanced(alg, values[mid+1:], decorate)
	n.rebuild(alg)
	if decorate != nil {
		decorate(n)
	}
	return n
}
