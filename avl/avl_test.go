package avl

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

func buildIntAVL(t *testing.T, values ...int) *Tree[int, data.NumericSummary[int], data.NumericAction[int]] {
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

// assertBalanced walks the tree checking both that every node's height
// Meta matches its children's, and that no node's balance factor exceeds
// one in magnitude — confirming OnAscend actually kept the invariant.
func assertBalanced[V, S, Act any](t *testing.T, n *tree.Node[V, S, Act]) int8 {
	t.Helper()
	if n == nil {
		return 0
	}
	lh := assertBalanced[V, S, Act](t, n.Left())
	rh := assertBalanced[V, S, Act](t, n.Right())
	diff := int(lh) - int(rh)
	assert.LessOrEqual(t, diff, 1)
	assert.GreaterOrEqual(t, diff, -1)
	want := int8(1 + max(lh, rh))
	assert.Equal(t, want, height(n))
	return want
}

func TestInsertByKeyMaintainsSearchOrderAndBalance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.avl")
	defer teardown()
	//
	tr := buildIntAVL(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, tr.Values())
	assertBalanced[int, data.NumericSummary[int], data.NumericAction[int]](t, tr.inner.Root())
}

func TestSearchByKeyFindsAndMisses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.avl")
	defer teardown()
	//
	tr := buildIntAVL(t, 5, 2, 8, 1, 9)
	v, err := SearchByKey[int, data.NumericSummary[int], data.NumericAction[int]](tr, intKey, 9)
	assert.NoError(t, err)
	assert.Equal(t, 9, v)
	_, err = SearchByKey[int, data.NumericSummary[int], data.NumericAction[int]](tr, intKey, 42)
	assert.Error(t, err)
}

func TestInsertDuplicateKeyRejected(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.avl")
	defer teardown()
	//
	tr := buildIntAVL(t, 5, 2, 8)
	err := InsertByKey(tr, intKey, 5)
	assert.ErrorIs(t, err, tree.ErrDuplicateKey)
}

func TestDeleteByKeyRemovesAndKeepsBalance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.avl")
	defer teardown()
	//
	tr := buildIntAVL(t, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	v, err := DeleteByKey[int, data.NumericSummary[int], data.NumericAction[int]](tr, intKey, 4)
	assert.NoError(t, err)
	assert.Equal(t, 4, v)
	assert.Equal(t, []int{1, 2, 3, 5, 6, 7, 8, 9}, tr.Values())
	assertBalanced[int, data.NumericSummary[int], data.NumericAction[int]](t, tr.inner.Root())
}

// TestDeleteNodeWithDeepSuccessorKeepsBalance deletes a node whose in-order
// successor is two levels down its right subtree (10's successor is 15,
// reached via one GoRight into 20 followed by one real GoLeft into 20's left
// child), rather than sitting directly at n.right. That shape is what makes
// the splice-climb actually pass back up through an intermediate node (20)
// whose child set just changed, so assertBalanced here is also checking that
// every node on that climb had its height fixed, not just the spliced leaf.
func TestDeleteNodeWithDeepSuccessorKeepsBalance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.avl")
	defer teardown()
	//
	tr := buildIntAVL(t, 10, 5, 20, 15)
	v, err := DeleteByKey[int, data.NumericSummary[int], data.NumericAction[int]](tr, intKey, 10)
	assert.NoError(t, err)
	assert.Equal(t, 10, v)
	assert.Equal(t, []int{5, 15, 20}, tr.Values())
	assertBalanced[int, data.NumericSummary[int], data.NumericAction[int]](t, tr.inner.Root())
}

func TestFromSliceBuildsBalancedTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.avl")
	defer teardown()
	//
	alg := data.Numeric[int]{}
	values := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}
	tr := FromSlice[int, data.NumericSummary[int], data.NumericAction[int]](alg, values)
	assert.Equal(t, values, tr.Values())
	assertBalanced[int, data.NumericSummary[int], data.NumericAction[int]](t, tr.inner.Root())
}

func TestSegmentSummaryOverIndexRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.avl")
	defer teardown()
	//
	alg := data.Numeric[int]{}
	tr := FromSlice[int, data.NumericSummary[int], data.NumericAction[int]](alg, []int{1, 2, 3, 4, 5})
	s, err := SegmentSummary[int, data.NumericSummary[int], data.NumericAction[int]](tr, tree.IndexRange[int, data.NumericSummary[int]](1, 4))
	assert.NoError(t, err)
	assert.Equal(t, 3, s.Size)
	assert.Equal(t, 9, s.Sum)
}

func TestConcatJoinsDisjointOrderedTrees(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.avl")
	defer teardown()
	//
	alg := data.Numeric[int]{}
	left := FromSlice[int, data.NumericSummary[int], data.NumericAction[int]](alg, []int{1, 2, 3}).inner.Root()
	right := FromSlice[int, data.NumericSummary[int], data.NumericAction[int]](alg, []int{4, 5, 6, 7, 8, 9, 10}).inner.Root()
	joined := Concat(alg, left, right)
	assert.Equal(t, 10, joined.Summary(alg).Size)
	assertBalanced[int, data.NumericSummary[int], data.NumericAction[int]](t, joined)
}

func TestSplitPartitionsAtIndexBoundary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.avl")
	defer teardown()
	//
	alg := data.Numeric[int]{}
	root := FromSlice[int, data.NumericSummary[int], data.NumericAction[int]](alg, []int{1, 2, 3, 4, 5}).inner.Root()
	left, right, err := Split(alg, root, tree.IndexRange[int, data.NumericSummary[int]](3, 3))
	assert.NoError(t, err)
	assert.Equal(t, 3, left.Summary(alg).Size)
	assert.Equal(t, 2, right.Summary(alg).Size)
	assertBalanced[int, data.NumericSummary[int], data.NumericAction[int]](t, left)
	assertBalanced[int, data.NumericSummary[int], data.NumericAction[int]](t, right)
}

func TestReverseFlipsSelectedRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.avl")
	defer teardown()
	//
	alg := data.Numeric[int]{}
	tr := FromSlice[int, data.NumericSummary[int], data.NumericAction[int]](alg, []int{1, 2, 3, 4, 5})
	err := Reverse[int, data.NumericSummary[int], data.NumericAction[int]](tr, tree.IndexRange[int, data.NumericSummary[int]](1, 4))
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 4, 3, 2, 5}, tr.Values())
}

// TestRandomizedInsertDeleteKeepsBalance drives an AVL tree through a
// shuffled insert sequence and a shuffled delete sequence, re-checking the
// height-balance invariant at every step — the kind of varied successor
// shape TestDeleteNodeWithDeepSuccessorKeepsBalance exercises by hand, but
// across many more trees than one hand-picked case can cover.
func TestRandomizedInsertDeleteKeepsBalance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.avl")
	defer teardown()
	//
	rng := rand.New(rand.NewSource(7))
	const n = 200
	alg := data.Numeric[int]{}
	tr := New[int, data.NumericSummary[int], data.NumericAction[int]](alg)
	present := map[int]bool{}
	for _, k := range rng.Perm(n) {
		assert.NoError(t, InsertByKey(tr, intKey, k))
		present[k] = true
		assertBalanced[int, data.NumericSummary[int], data.NumericAction[int]](t, tr.inner.Root())
	}
	for _, k := range rng.Perm(n)[:n/2] {
		_, err := DeleteByKey[int, data.NumericSummary[int], data.NumericAction[int]](tr, intKey, k)
		assert.NoError(t, err)
		delete(present, k)
		assertBalanced[int, data.NumericSummary[int], data.NumericAction[int]](t, tr.inner.Root())
	}
	var want []int
	for k := range present {
		want = append(want, k)
	}
	sort.Ints(want)
	assert.Equal(t, want, tr.Values())
}

// TestRandomizedReversePreservesMultiset repeatedly reverses random
// sub-ranges of an AVL tree, checking the in-order values stay the original
// multiset (sorted when flipped back by applying the same range twice) and
// the balance invariant survives the split/concat churn underlying Reverse.
func TestRandomizedReversePreservesMultiset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.avl")
	defer teardown()
	//
	rng := rand.New(rand.NewSource(99))
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
		assertBalanced[int, data.NumericSummary[int], data.NumericAction[int]](t, tr.inner.Root())
	}
}
