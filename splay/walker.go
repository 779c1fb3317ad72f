package splay

import "github.com/npillmayer/arbor/tree"

// Walker wraps tree.Walker, replacing Close's plain ascent with a splay.
type Walker[V, S, Act any] struct {
	base *tree.Walker[V, S, Act]
}

func (w *Walker[V, S, Act]) IsEmpty() bool               { return w.base.IsEmpty() }
func (w *Walker[V, S, Act]) Depth() int                  { return w.base.Depth() }
func (w *Walker[V, S, Act]) Value() (V, bool)            { return w.base.Value() }
func (w *Walker[V, S, Act]) Node() *tree.Node[V, S, Act] { return w.base.Node() }
func (w *Walker[V, S, Act]) GoLeft() error                { return w.base.GoLeft() }
func (w *Walker[V, S, Act]) GoRight() error               { return w.base.GoRight() }
func (w *Walker[V, S, Act]) LeftSummary() S               { return w.base.LeftSummary() }
func (w *Walker[V, S, Act]) RightSummary() S              { return w.base.RightSummary() }
func (w *Walker[V, S, Act]) Insert(v V) error             { return w.base.Insert(v) }
func (w *Walker[V, S, Act]) ActNode(a Act) bool           { return w.base.ActNode(a) }
func (w *Walker[V, S, Act]) ActSubtree(a Act)             { w.base.ActSubtree(a) }

// Close splays the focus to the root. Every rotation along the way already
// rebuilds the nodes it touches, so there is nothing left to do once the
// loop reaches the root.
func (w *Walker[V, S, Act]) Close() {
	for !w.base.IsRoot() {
		w.splayStep()
	}
}

// splayStep performs one zig, zig-zig, or zig-zag step of the standard
// splay-tree algorithm. It ascends from the focus to its parent; if the
// parent is the root a single rotation (zig) suffices, otherwise the
// parent's own relationship to the grandparent decides between zig-zig
// (rotate the grandparent's slot, then the same slot again, same
// direction) and zig-zag (rotate the parent's slot, ascend, then rotate
// the grandparent's slot, opposite direction).
func (w *Walker[V, S, Act]) splayStep() {
	if w.base.IsEmpty() {
		_, _ = w.base.GoUp()
		return
	}
	b1, ok := w.base.IsLeftSon()
	if !ok {
		return // already at the root
	}
	if _, err := w.base.GoUp(); err != nil {
		return
	}
	if w.base.IsRoot() {
		w.rotate(b1)
		return
	}
	b2, _ := w.base.IsLeftSon()
	if b1 == b2 {
		if _, err := w.base.GoUp(); err != nil {
			return
		}
		w.rotate(b2)
		w.rotate(b1)
		return
	}
	w.rotate(b1)
	if _, err := w.base.GoUp(); err != nil {
		return
	}
	w.rotate(b2)
}

// rotate promotes the current focus's child on side left up to replace the
// focus.
func (w *Walker[V, S, Act]) rotate(left bool) {
	if left {
		w.base.RotateRightHere()
	} else {
		w.base.RotateLeftHere()
	}
}
