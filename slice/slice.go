package slice

import (
	"github.com/npillmayer/arbor/tree"
)

// Slice is the tuple (tree, Locator): a handle onto whichever contiguous
// in-order range of t the Locator Accepts, letting callers call
// Summary/Act/Iter on that range without re-specifying it each time.
type Slice[V, S, Act any] struct {
	t   *tree.Tree[V, S, Act]
	loc tree.Locator[V, S]
}

// Of returns a Slice denoting the range loc Accepts within t.
func Of[V, S, Act any](t *tree.Tree[V, S, Act], loc tree.Locator[V, S]) *Slice[V, S, Act] {
	return &Slice[V, S, Act]{t: t, loc: loc}
}

// Whole returns a Slice denoting every value in t.
func Whole[V, S, Act any](t *tree.Tree[V, S, Act]) *Slice[V, S, Act] {
	return Of(t, tree.All[V, S]())
}

// ByIndexRange returns a Slice denoting the half-open in-order index range
// [lo, hi) of t.
func ByIndexRange[V any, S tree.Sized, Act any](t *tree.Tree[V, S, Act], lo, hi int) *Slice[V, S, Act] {
	return Of[V, S, Act](t, tree.IndexRange[V, S](lo, hi))
}

// Summary returns the combined summary of the slice's range.
func (s *Slice[V, S, Act]) Summary() (S, error) {
	return tree.SegmentSummary(s.t, s.loc)
}

// Act applies action to every value in the slice's range.
func (s *Slice[V, S, Act]) Act(a Act) error {
	return tree.ActSegment(s.t, a, s.loc)
}

// Iter returns a forward cursor over just the slice's range. Callers must
// call Close when done, same as any Walker-backed cursor.
func (s *Slice[V, S, Act]) Iter() *Iterator[V, S, Act] {
	return &Iterator[V, S, Act]{w: s.t.Walker(), loc: s.loc}
}

// Values collects the slice's range into a plain slice, draining Iter.
func (s *Slice[V, S, Act]) Values() []V {
	it := s.Iter()
	defer it.Close()
	values := []V{}
	for it.Next() {
		values = append(values, it.Value())
	}
	return values
}
