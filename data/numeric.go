package data

// Number is the constraint satisfied by every built-in numeric type arbor's
// example instantiation will work with.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// NumericSummary is a {size, sum, min, max} summary, the reference
// instantiation every Algebra implementation is modeled after.
type NumericSummary[V Number] struct {
	Size int
	Sum  V
	Min  V
	Max  V
	// empty marks the identity summary ε, since a zero-valued V can't be
	// told apart from "the minimum of one zero element".
	empty bool
}

// NumericAction is an additive action: adding a constant delta to every
// value of a subtree, optionally combined with a
// pending reversal request.
type NumericAction[V Number] struct {
	Delta V
	// reverse is the self-clearing "please reverse my subtree" bit.
	reverse bool
}

// Add builds a NumericAction that adds delta to every value it is applied to.
func Add[V Number](delta V) NumericAction[V] {
	return NumericAction[V]{Delta: delta}
}

// Reversal builds a NumericAction that carries no additive effect, only a
// pending reversal request. tree.ActSegment rejects such an action with
// tree.ErrMisuseReverse; treap.Reverse and avl.Reverse stamp an equivalent
// request themselves.
func Reversal[V Number]() NumericAction[V] {
	return NumericAction[V]{reverse: true}
}

// Numeric is an example Algebra instantiation, the reference every
// conforming library to ship ("the library provides at minimum an example
// instantiation delivering {size, sum, min, max} on numeric values").
type Numeric[V Number] struct{}

var _ interface {
	Summarize(V) NumericSummary[V]
	IdentitySummary() NumericSummary[V]
	CombineSummary(NumericSummary[V], NumericSummary[V]) NumericSummary[V]
	IdentityAction() NumericAction[V]
	ComposeAction(NumericAction[V], NumericAction[V]) NumericAction[V]
	ActSummary(NumericAction[V], NumericSummary[V]) NumericSummary[V]
	ActValue(NumericAction[V], V) V
} = Numeric[int]{}

func (Numeric[V]) Summarize(v V) NumericSummary[V] {
	return NumericSummary[V]{Size: 1, Sum: v, Min: v, Max: v}
}

func (Numeric[V]) IdentitySummary() NumericSummary[V] {
	return NumericSummary[V]{empty: true}
}

func (Numeric[V]) CombineSummary(left, right NumericSummary[V]) NumericSummary[V] {
	if left.empty {
		return right
	}
	if right.empty {
		return left
	}
	out := NumericSummary[V]{
		Size: left.Size + right.Size,
		Sum:  left.Sum + right.Sum,
		Min:  left.Min,
		Max:  left.Max,
	}
	if right.Min < out.Min {
		out.Min = right.Min
	}
	if right.Max > out.Max {
		out.Max = right.Max
	}
	return out
}

func (Numeric[V]) IdentityAction() NumericAction[V] {
	return NumericAction[V]{}
}

func (Numeric[V]) ComposeAction(outer, inner NumericAction[V]) NumericAction[V] {
	return NumericAction[V]{
		Delta:   outer.Delta + inner.Delta,
		reverse: outer.reverse != inner.reverse, // two reversals cancel
	}
}

func (Numeric[V]) ActSummary(a NumericAction[V], s NumericSummary[V]) NumericSummary[V] {
	if s.empty {
		return s
	}
	s.Sum += a.Delta * V(s.Size)
	s.Min += a.Delta
	s.Max += a.Delta
	return s
}

func (Numeric[V]) ActValue(a NumericAction[V], v V) V {
	return v + a.Delta
}

// ToReverse implements Reversible.
func (Numeric[V]) ToReverse(a *NumericAction[V]) bool {
	r := a.reverse
	a.reverse = false
	return r
}

// Reverse implements Reversible.
func (Numeric[V]) Reverse(a *NumericAction[V]) {
	a.reverse = !a.reverse
}

// SizeOf implements the Sized capability tree.IndexRange relies on.
func (s NumericSummary[V]) SizeOf() int {
	if s.empty {
		return 0
	}
	return s.Size
}
