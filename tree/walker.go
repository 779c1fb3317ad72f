package tree

import "github.com/npillmayer/arbor/data"

// frame is one step of a Walker's path: the address of the pointer that
// holds the focused subtree (either a parent's left/right field, or the
// tree's own root field), the parent owning that slot (nil at the root
// frame), which side this slot is, and the far-left/far-right summary
// context at this depth — everything to the left (resp. right) of the
// *entire* focused subtree.
//
// This is an explicit path stack of owned child-slot references, used
// instead of parent pointers so ascent can still rewrite the slot it came
// from.
type frame[V, S, Act any] struct {
	link     **Node[V, S, Act]
	parent   *Node[V, S, Act]
	isLeft   bool
	farLeft  S
	farRight S
}

// Walker is a cursor into a Tree. A Walker
// borrows its tree exclusively for its lifetime; callers must call Close
// when done, which rebuilds summaries along the remaining path (and, for
// flavors with a Rebalancer, performs their ascent-time fixups).
type Walker[V, S, Act any] struct {
	tree *Tree[V, S, Act]
	path []frame[V, S, Act]
}

func newWalker[V, S, Act any](t *Tree[V, S, Act]) *Walker[V, S, Act] {
	w := &Walker[V, S, Act]{tree: t}
	w.path = append(w.path, frame[V, S, Act]{
		link:    &t.root,
		farLeft: t.alg.IdentitySummary(),
		farRight: t.alg.IdentitySummary(),
	})
	return w
}

func (w *Walker[V, S, Act]) alg() data.Algebra[V, S, Act] { return w.tree.alg }

// Algebra returns the algebra driving this walker's tree. Exported for
// flavor packages (avl) whose Rebalancer needs to call the shared rotation
// primitives (RotateLeft/RotateRight) directly on a slot other than the
// walker's own current focus, during a single OnAscend callback.
func (w *Walker[V, S, Act]) Algebra() data.Algebra[V, S, Act] { return w.tree.alg }

func (w *Walker[V, S, Act]) top() *frame[V, S, Act] { return &w.path[len(w.path)-1] }

func (w *Walker[V, S, Act]) focus() *Node[V, S, Act] { return *w.top().link }

// IsEmpty reports whether the walker is at an empty position.
func (w *Walker[V, S, Act]) IsEmpty() bool { return w.focus() == nil }

// Depth returns the current depth; the root is at depth zero.
func (w *Walker[V, S, Act]) Depth() int { return len(w.path) - 1 }

// FarLeftSummary returns the summary of everything strictly to the left of
// the focused subtree.
func (w *Walker[V, S, Act]) FarLeftSummary() S { return w.top().farLeft }

// FarRightSummary returns the summary of everything strictly to the right
// of the focused subtree.
func (w *Walker[V, S, Act]) FarRightSummary() S { return w.top().farRight }

// LeftSubtreeSummary returns the summary of the focused node's left
// subtree, or ε at an empty position.
func (w *Walker[V, S, Act]) LeftSubtreeSummary() S {
	n := w.focus()
	if n == nil {
		return w.alg().IdentitySummary()
	}
	return subtreeSummary(w.alg(), n.left)
}

// RightSubtreeSummary returns the summary of the focused node's right
// subtree, or ε at an empty position.
func (w *Walker[V, S, Act]) RightSubtreeSummary() S {
	n := w.focus()
	if n == nil {
		return w.alg().IdentitySummary()
	}
	return subtreeSummary(w.alg(), n.right)
}

// LeftSummary returns the summary of everything to the left of the focus,
// including its left subtree if non-empty.
func (w *Walker[V, S, Act]) LeftSummary() S {
	return w.alg().CombineSummary(w.FarLeftSummary(), w.LeftSubtreeSummary())
}

// RightSummary returns the summary of everything to the right of the
// focus, including its right subtree if non-empty.
func (w *Walker[V, S, Act]) RightSummary() S {
	return w.alg().CombineSummary(w.RightSubtreeSummary(), w.FarRightSummary())
}

// Value returns the value at the focus after all lazy actions above and at
// the focus have been pushed, or false if the focus is empty. Only a
// Walker can guarantee this cleanliness, since it is the one
// thing that knows to call access on the way down.
func (w *Walker[V, S, Act]) Value() (V, bool) {
	n := w.focus()
	if n == nil {
		var zero V
		return zero, false
	}
	n.access(w.alg())
	return n.Value, true
}

// Node exposes the focused node directly. Used by flavor packages (splay,
// treap, avl) that need to read/set Meta or perform rotations; ordinary
// callers should prefer Value/ActNode/etc.
func (w *Walker[V, S, Act]) Node() *Node[V, S, Act] { return w.focus() }

// GoLeft descends into the focus's left subtree. Fails with ErrOutOfBounds
// if the focus is empty.
func (w *Walker[V, S, Act]) GoLeft() error {
	n := w.focus()
	if n == nil {
		return ErrOutOfBounds
	}
	tracer().Debugf("descend left from %v", n)
	n.access(w.alg())
	top := w.top()
	newFar := w.alg().CombineSummary(w.alg().CombineSummary(w.alg().Summarize(n.Value), subtreeSummary(w.alg(), n.right)), top.farRight)
	w.path = append(w.path, frame[V, S, Act]{
		link:     &n.left,
		parent:   n,
		isLeft:   true,
		farLeft:  top.farLeft,
		farRight: newFar,
	})
	return nil
}

// GoRight descends into the focus's right subtree. Fails with
// ErrOutOfBounds if the focus is empty.
func (w *Walker[V, S, Act]) GoRight() error {
	n := w.focus()
	if n == nil {
		return ErrOutOfBounds
	}
	tracer().Debugf("descend right from %v", n)
	n.access(w.alg())
	top := w.top()
	newFar := w.alg().CombineSummary(top.farLeft, w.alg().CombineSummary(subtreeSummary(w.alg(), n.left), w.alg().Summarize(n.Value)))
	w.path = append(w.path, frame[V, S, Act]{
		link:     &n.right,
		parent:   n,
		isLeft:   false,
		farLeft:  newFar,
		farRight: top.farRight,
	})
	return nil
}

// GoUp ascends one step, rebuilding the node being ascended from, and
// invoking the tree's Rebalancer (if any) to let it rotate. Returns
// whether the ascended-from focus was its parent's left child. Fails with
// ErrOutOfBounds at the root.
func (w *Walker[V, S, Act]) GoUp() (bool, error) {
	if len(w.path) == 1 {
		return false, ErrOutOfBounds
	}
	popped := w.path[len(w.path)-1]
	w.path = w.path[:len(w.path)-1]
	child := *popped.link
	child.rebuild(w.alg())
	parent := popped.parent
	tracer().Debugf("ascend: child = %v, parent = %v", child, parent)
	if w.tree.rebalancer != nil {
		w.tree.rebalancer.OnAscend(w, child, parent, popped.isLeft)
	}
	return popped.isLeft, nil
}

// goUpQuiet ascends one step like GoUp, rebuilding the ascended-from node,
// but without invoking the tree's Rebalancer. Only safe for climbs back up
// over nodes whose subtree shape hasn't actually changed (the read-only
// segment sweeps in accumulateSuffix/accumulatePrefix and the in-place
// actOnSuffix/actOnPrefix), so no rebalancing metadata has gone stale —
// those climbs need to return to a known depth without triggering a
// splay/rotation as a side effect of their own traversal, leaving that to
// the walker's eventual Close. A climb back over genuinely restructured
// nodes (deleteAtFocus's successor splice) must ascend for real instead.
func (w *Walker[V, S, Act]) goUpQuiet() (bool, error) {
	if len(w.path) == 1 {
		return false, ErrOutOfBounds
	}
	popped := w.path[len(w.path)-1]
	w.path = w.path[:len(w.path)-1]
	child := *popped.link
	child.rebuild(w.alg())
	return popped.isLeft, nil
}

// GoToRoot repeatedly ascends until at the root. Flavors whose go_up
// rebalances (treap, AVL) restructure the tree as a side effect of this call.
func (w *Walker[V, S, Act]) GoToRoot() {
	for {
		if _, err := w.GoUp(); err != nil {
			return
		}
	}
}

// IsRoot reports whether the walker is currently at the root.
func (w *Walker[V, S, Act]) IsRoot() bool { return len(w.path) == 1 }

// IsLeftSon reports whether the focus is its parent's left child. Returns
// false, false if at the root (there is no parent).
func (w *Walker[V, S, Act]) IsLeftSon() (isLeft bool, ok bool) {
	if w.IsRoot() {
		return false, false
	}
	return w.top().isLeft, true
}

// Close rebuilds summaries for every node remaining on the walker's path,
// up to and including the root, restoring the tree to a well-formed state.
// Flavors with an ascent-time Rebalancer (treap, AVL) get their fixups from
// the GoUp calls this makes; splay trees splay in their own Walker
// wrapper's Close instead. Callers should `defer w.Close()`.
func (w *Walker[V, S, Act]) Close() {
	w.GoToRoot()
	if root := w.focus(); root != nil {
		root.access(w.alg())
		root.rebuild(w.alg())
	}
}

// ActNode applies action to the focused node only (not its subtree).
// Returns false if the focus is empty.
func (w *Walker[V, S, Act]) ActNode(a Act) bool {
	n := w.focus()
	if n == nil {
		return false
	}
	n.access(w.alg()) // flush any pending owed to n's own value first
	n.Value = w.alg().ActValue(a, n.Value)
	n.rebuild(w.alg())
	return true
}

// ActSubtree applies action to the focus's entire subtree, in O(1) via lazy
// propagation (node.act).
func (w *Walker[V, S, Act]) ActSubtree(a Act) {
	n := w.focus()
	if n == nil {
		return
	}
	n.act(w.alg(), a)
}

// ActLeftSubtree applies action to the focus's left subtree.
func (w *Walker[V, S, Act]) ActLeftSubtree(a Act) bool {
	n := w.focus()
	if n == nil {
		return false
	}
	n.access(w.alg())
	n.left.act(w.alg(), a)
	n.rebuild(w.alg())
	return true
}

// ActRightSubtree applies action to the focus's right subtree.
func (w *Walker[V, S, Act]) ActRightSubtree(a Act) bool {
	n := w.focus()
	if n == nil {
		return false
	}
	n.access(w.alg())
	n.right.act(w.alg(), a)
	n.rebuild(w.alg())
	return true
}

// Insert places value at the current, empty position, or reports
// ErrOutOfBounds if the position is already filled. Callers that want
// ErrDuplicateKey semantics for an already-occupied position (rather than
// this low-level ErrOutOfBounds) should go through InsertByLocator.
func (w *Walker[V, S, Act]) Insert(value V) error {
	if !w.IsEmpty() {
		return ErrOutOfBounds
	}
	*w.top().link = NewNode(w.alg(), value)
	return nil
}

// ReplaceFocus installs n as the tree's focused slot directly, used by
// deleteAtFocus and by treap's DeleteByLocator.
func (w *Walker[V, S, Act]) ReplaceFocus(n *Node[V, S, Act]) {
	*w.top().link = n
}

// --- additional cursor movement helpers -----------------------------------

// NextEmpty moves the walker to the next empty position in in-order
// sequence.
func (w *Walker[V, S, Act]) NextEmpty() error {
	if err := w.GoRight(); err != nil {
		return err
	}
	for !w.IsEmpty() {
		_ = w.GoLeft()
	}
	return nil
}

// PreviousEmpty moves the walker to the previous empty position in
// in-order sequence.
func (w *Walker[V, S, Act]) PreviousEmpty() error {
	if err := w.GoLeft(); err != nil {
		return err
	}
	for !w.IsEmpty() {
		_ = w.GoRight()
	}
	return nil
}

// NextFilled moves the walker to the next filled (non-empty) node in
// in-order sequence. If there is none, it ends up at the root and returns
// ErrOutOfBounds.
func (w *Walker[V, S, Act]) NextFilled() error {
	if !w.IsEmpty() {
		_ = w.NextEmpty()
	}
	for {
		came, err := w.GoUp()
		if err != nil {
			return ErrOutOfBounds
		}
		if came {
			return nil
		}
	}
}

// PreviousFilled moves the walker to the previous filled node in in-order
// sequence.
func (w *Walker[V, S, Act]) PreviousFilled() error {
	if !w.IsEmpty() {
		_ = w.PreviousEmpty()
	}
	for {
		came, err := w.GoUp()
		if err != nil {
			return ErrOutOfBounds
		}
		if !came {
			return nil
		}
	}
}
