package tree

import "github.com/npillmayer/arbor/data"

// RotateLeft performs a left rotation at the subtree addressed by link: the
// right child becomes the new subtree root, and the old root becomes its
// left child. Shared by splay/treap/avl's ascent-time fixups — both nodes
// involved are access'd before the pointers move, so a reversal or pending
// action never gets silently dropped by the restructuring.
func RotateLeft[V, S, Act any](alg data.Algebra[V, S, Act], link **Node[V, S, Act]) {
	root := *link
	invariant(root != nil && root.right != nil, "rotateLeft requires a right child")
	tracer().Debugf("rotate left: root = %v, new root = %v", root, root.right)
	root.access(alg)
	newRoot := root.right
	newRoot.access(alg)
	root.right = newRoot.left
	newRoot.left = root
	*link = newRoot
	root.rebuild(alg)
	newRoot.rebuild(alg)
}

// RotateRight performs a right rotation at the subtree addressed by link:
// the left child becomes the new subtree root, and the old root becomes its
// right child.
func RotateRight[V, S, Act any](alg data.Algebra[V, S, Act], link **Node[V, S, Act]) {
	root := *link
	invariant(root != nil && root.left != nil, "rotateRight requires a left child")
	tracer().Debugf("rotate right: root = %v, new root = %v", root, root.left)
	root.access(alg)
	newRoot := root.left
	newRoot.access(alg)
	root.left = newRoot.right
	newRoot.right = root
	*link = newRoot
	root.rebuild(alg)
	newRoot.rebuild(alg)
}

// RotateLeftHere rotates at the walker's current focus slot, promoting its
// right child.
func (w *Walker[V, S, Act]) RotateLeftHere() {
	RotateLeft(w.alg(), w.top().link)
}

// RotateRightHere rotates at the walker's current focus slot, promoting its
// left child.
func (w *Walker[V, S, Act]) RotateRightHere() {
	RotateRight(w.alg(), w.top().link)
}
