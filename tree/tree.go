package tree

import (
	"github.com/npillmayer/arbor/data"
	tp "github.com/xlab/treeprint"
)

// Rebalancer is the seam through which a balancing flavor (splay, treap,
// AVL) injects its ascent-time rebalancing into the shared Walker protocol,
// without forking Walker, Node, or the generic segment algorithms per
// flavor. OnAscend is invoked by Walker.GoUp after the ascended-from child
// has already been rebuilt.
type Rebalancer[V, S, Act any] interface {
	// OnAscend is called with child freshly rebuilt, and parent the node
	// the walker is now focused on. cameFromLeft reports whether child was
	// parent's left son. Implementations may rotate child/parent (and any
	// further ancestors reachable through w) to restore their invariant.
	OnAscend(w *Walker[V, S, Act], child, parent *Node[V, S, Act], cameFromLeft bool)
}

// Tree is a balanced binary search tree, parameterized over an Algebra.
// The zero value is not usable; construct with New.
type Tree[V, S, Act any] struct {
	alg        data.Algebra[V, S, Act]
	root       *Node[V, S, Act]
	rebalancer Rebalancer[V, S, Act]
}

// New returns an empty tree driven by alg, with no rebalancing (the plain
// unbalanced flavor). Balancing flavors build their own Tree via their
// package's constructor, which sets a Rebalancer.
func New[V, S, Act any](alg data.Algebra[V, S, Act]) *Tree[V, S, Act] {
	return &Tree[V, S, Act]{alg: alg}
}

// NewWithRebalancer is used by the splay/treap/avl packages to build a Tree
// driven by their own Rebalancer.
func NewWithRebalancer[V, S, Act any](alg data.Algebra[V, S, Act], r Rebalancer[V, S, Act]) *Tree[V, S, Act] {
	return &Tree[V, S, Act]{alg: alg, rebalancer: r}
}

// Algebra returns the algebra this tree was constructed with.
func (t *Tree[V, S, Act]) Algebra() data.Algebra[V, S, Act] {
	return t.alg
}

// Root returns the root node, or nil if the tree is empty. Exported for
// flavor packages (splay/treap/avl) that need direct node access to build
// their own constructors/Split/Concat; ordinary callers should use Walker.
func (t *Tree[V, S, Act]) Root() *Node[V, S, Act] { return t.root }

// SetRoot replaces the tree's root outright. Used by flavor packages
// implementing Split/Concat.
func (t *Tree[V, S, Act]) SetRoot(n *Node[V, S, Act]) { t.root = n }

// IsEmpty reports whether the tree holds no values.
func (t *Tree[V, S, Act]) IsEmpty() bool { return t.root == nil }

// SubtreeSummary returns the summary of the whole tree (ε for an empty
// tree).
func (t *Tree[V, S, Act]) SubtreeSummary() S {
	return subtreeSummary(t.alg, t.root)
}

// Walker returns a new cursor focused on the tree's root.
func (t *Tree[V, S, Act]) Walker() *Walker[V, S, Act] {
	return newWalker(t)
}

// Values returns every value in the tree, in-order.
func (t *Tree[V, S, Act]) Values() []V {
	values := []V{}
	var walk func(n *Node[V, S, Act])
	walk = func(n *Node[V, S, Act]) {
		if n == nil {
			return
		}
		n.access(t.alg)
		walk(n.left)
		values = append(values, n.Value)
		walk(n.right)
	}
	walk(t.root)
	return values
}

// Dump renders the tree as ASCII art, for debugging and tests — a
// first-class version of the printTree-style helper this module's test
// files otherwise build for themselves.
func (t *Tree[V, S, Act]) Dump() string {
	root := tp.New()
	var walk func(n *Node[V, S, Act], b tp.Tree)
	walk = func(n *Node[V, S, Act], b tp.Tree) {
		if n == nil {
			return
		}
		label := b.AddBranch(n.String())
		if n.left != nil || n.right != nil {
			walk(n.left, label)
			walk(n.right, label)
		}
	}
	if t.root == nil {
		root.AddNode("∅")
	} else {
		walk(t.root, root)
	}
	return root.String()
}
