package treap

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/arbor/data"
	"github.com/npillmayer/arbor/tree"
)

func intKey(v int) int { return v }

func buildIntTreap(t *testing.T, values ...int) *Tree[int, data.NumericSummary[int], data.NumericAction[int]] {
	t.Helper()
	alg := data.Numeric[int]{}
	tr := New[int, data.NumericSummary[int], data.NumericAction[int]](alg)
	for _, v := range values {
		if err := InsertByKey(tr, intKey, v); err != nil {
			t.Fatalf("insert %d: %v", v, err)
		}
	}
	return tr
}

// assertHeap walks the tree and fails if any node's priority is lower than
// either child's, confirming InsertByLocator's ascend-time bubbling (or
// FromSlice's fixHeap) left the max-heap property intact.
func assertHeap[V, S, Act any](t *testing.T, n *tree.Node[V, S, Act]) {
	t.Helper()
	if n == nil {
		return
	}
	if left := n.Left(); left != nil {
		assert.GreaterOrEqual(t, priorityOf(n), priorityOf(left))
		assertHeap[V, S, Act](t, left)
	}
	if right := n.Right(); right != nil {
		assert.GreaterOrEqual(t, priorityOf(n), priorityOf(right))
		assertHeap[V, S, Act](t, right)
	}
}

func TestInsertByKeyMaintainsSearchOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.treap")
	defer teardown()
	//
	tr := buildIntTreap(t, 5, 2, 8, 1, 9, 3, 7)
	assert.Equal(t, []int{1, 2, 3, 5, 7, 8, 9}, tr.Values())
	assertHeap(t, tr.inner.Root())
}

func TestSearchByKeyFindsAndMisses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.treap")
	defer teardown()
	//
	tr := buildIntTreap(t, 5, 2, 8, 1, 9)
	v, err := SearchByKey[int, data.NumericSummary[int], data.NumericAction[int]](tr, intKey, 8)
	assert.NoError(t, err)
	assert.Equal(t, 8, v)
	_, err = SearchByKey[int, data.NumericSummary[int], data.NumericAction[int]](tr, intKey, 42)
	assert.Error(t, err)
}

func TestInsertDuplicateKeyRejected(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.treap")
	defer teardown()
	//
	tr := buildIntTreap(t, 5, 2, 8)
	err := InsertByKey(tr, intKey, 5)
	assert.ErrorIs(t, err, tree.ErrDuplicateKey)
}

func TestDeleteByKeyRemovesAndKeepsHeap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.treap")
	defer teardown()
	//
	tr := buildIntTreap(t, 5, 2, 8, 1, 9, 3, 7)
	v, err := DeleteByKey[int, data.NumericSummary[int], data.NumericAction[int]](tr, intKey, 5)
	assert.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.Equal(t, []int{1, 2, 3, 7, 8, 9}, tr.Values())
	assertHeap(t, tr.inner.Root())
	_, err = SearchByKey[int, data.NumericSummary[int], data.NumericAction[int]](tr, intKey, 5)
	assert.Error(t, err)
}

func TestDeleteLeafLeavesSiblingsReachable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.treap")
	defer teardown()
	//
	tr := buildIntTreap(t, 5, 2, 8)
	_, err := DeleteByKey[int, data.NumericSummary[int], data.NumericAction[int]](tr, intKey, 2)
	assert.NoError(t, err)
	assert.Equal(t, []int{5, 8}, tr.Values())
}

func TestFromSliceHeapifiesAndPreservesOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.treap")
	defer teardown()
	//
	alg := data.Numeric[int]{}
	values := []int{1, 2, 3, 4, 5, 6, 7, 8}
	tr := FromSlice[int, data.NumericSummary[int], data.NumericAction[int]](alg, values)
	assert.Equal(t, values, tr.Values())
	assertHeap(t, tr.inner.Root())
}

func TestSegmentSummaryOverIndexRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.treap")
	defer teardown()
	//
	alg := data.Numeric[int]{}
	tr := FromSlice[int, data.NumericSummary[int], data.NumericAction[int]](alg, []int{1, 2, 3, 4, 5})
	s, err := SegmentSummary[int, data.NumericSummary[int], data.NumericAction[int]](tr, tree.IndexRange[int, data.NumericSummary[int]](1, 4))
	assert.NoError(t, err)
	assert.Equal(t, 3, s.Size)
	assert.Equal(t, 9, s.Sum)
}

func TestConcatJoinsDisjointOrderedTreaps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.treap")
	defer teardown()
	//
	alg := data.Numeric[int]{}
	left := FromSlice[int, data.NumericSummary[int], data.NumericAction[int]](alg, []int{1, 2, 3}).inner.Root()
	right := FromSlice[int, data.NumericSummary[int], data.NumericAction[int]](alg, []int{4, 5, 6}).inner.Root()
	joined := Concat(alg, left, right)
	got := joined.Summary(alg)
	assert.Equal(t, 6, got.Size)
	assertHeap(t, joined)
}

func TestSplitPartitionsAtIndexBoundary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.treap")
	defer teardown()
	//
	alg := data.Numeric[int]{}
	root := FromSlice[int, data.NumericSummary[int], data.NumericAction[int]](alg, []int{1, 2, 3, 4, 5}).inner.Root()
	left, right, err := Split(alg, root, tree.IndexRange[int, data.NumericSummary[int]](3, 3))
	assert.NoError(t, err)
	assert.Equal(t, 3, left.Summary(alg).Size)
	assert.Equal(t, 2, right.Summary(alg).Size)
}

func TestReverseFlipsSelectedRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.treap")
	defer teardown()
	//
	alg := data.Numeric[int]{}
	tr := FromSlice[int, data.NumericSummary[int], data.NumericAction[int]](alg, []int{1, 2, 3, 4, 5})
	err := Reverse[int, data.NumericSummary[int], data.NumericAction[int]](tr, tree.IndexRange[int, data.NumericSummary[int]](1, 4))
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 4, 3, 2, 5}, tr.Values())
}

// TestRandomizedInsertDeleteKeepsHeap drives a treap through a shuffled
// insert sequence and a shuffled delete sequence, re-checking the max-heap
// property on the priorities at every step.
func TestRandomizedInsertDeleteKeepsHeap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.treap")
	defer teardown()
	//
	rng := rand.New(rand.NewSource(13))
	const n = 200
	alg := data.Numeric[int]{}
	tr := New[int, data.NumericSummary[int], data.NumericAction[int]](alg)
	present := map[int]bool{}
	for _, k := range rng.Perm(n) {
		assert.NoError(t, InsertByKey(tr, intKey, k))
		present[k] = true
		assertHeap(t, tr.inner.Root())
	}
	for _, k := range rng.Perm(n)[:n/2] {
		_, err := DeleteByKey[int, data.NumericSummary[int], data.NumericAction[int]](tr, intKey, k)
		assert.NoError(t, err)
		delete(present, k)
		assertHeap(t, tr.inner.Root())
	}
	var want []int
	for k := range present {
		want = append(want, k)
	}
	sort.Ints(want)
	assert.Equal(t, want, tr.Values())
}

// TestRandomizedReversePreservesMultiset reverses random sub-ranges twice
// each (restoring order) and checks the values come back untouched and the
// heap property survives the split/concat churn.
func TestRandomizedReversePreservesMultiset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.treap")
	defer teardown()
	//
	rng := rand.New(rand.NewSource(101))
	const n = 64
	alg := data.Numeric[int]{}
	values := make([]int, n)
	for i := range values {
		values[i] = i
	}
	tr := FromSlice[int, data.NumericSummary[int], data.NumericAction[int]](alg, values)
	for i := 0; i < 20; i++ {
		lo := rng.Intn(n)
		hi := lo + rng.Intn(n-lo)
		loc := tree.IndexRange[int, data.NumericSummary[int]](lo, hi)
		assert.NoError(t, Reverse[int, data.NumericSummary[int], data.NumericAction[int]](tr, loc))
		assert.NoError(t, Reverse[int, data.NumericSummary[int], data.NumericAction[int]](tr, loc))
		assert.Equal(t, values, tr.Values())
		assertHeap(t, tr.inner.Root())
	}
}

func TestActSegmentRejectsReversalRequest(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.treap")
	defer teardown()
	//
	// ActSegment never splits, so it rejects a reversal request regardless of
	// flavor — Reverse (above) is the only path that can honor one.
	tr := buildIntTreap(t, 1, 2, 3)
	err := ActSegment[int, data.NumericSummary[int], data.NumericAction[int]](tr, data.Reversal[int](), tree.All[int, data.NumericSummary[int]]())
	assert.ErrorIs(t, err, tree.ErrMisuseReverse)
}
