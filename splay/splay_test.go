package splay

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

func buildIntTree(t *testing.T, values ...int) *Tree[int, data.NumericSummary[int], data.NumericAction[int]] {
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

func TestSearchSplaysFoundNodeToRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.splay")
	defer teardown()
	//
	tr := buildIntTree(t, 5, 2, 8, 1, 9, 3, 7)
	v, err := SearchByKey(tr, intKey, 7)
	assert.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, 7, tr.inner.Root().Value)
	// the tree is still a valid search tree over the same values
	assert.Equal(t, []int{1, 2, 3, 5, 7, 8, 9}, tr.Values())
}

func TestSearchMissingKeyLeavesTreeConsistent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.splay")
	defer teardown()
	//
	tr := buildIntTree(t, 5, 2, 8, 1, 9)
	_, err := SearchByKey(tr, intKey, 42)
	assert.Error(t, err)
	assert.Equal(t, []int{1, 2, 5, 8, 9}, tr.Values())
}

func TestInsertSplaysNewNodeToRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.splay")
	defer teardown()
	//
	tr := buildIntTree(t, 5, 2, 8)
	err := InsertByKey(tr, intKey, 6)
	assert.NoError(t, err)
	assert.Equal(t, 6, tr.inner.Root().Value)
	assert.Equal(t, []int{2, 5, 6, 8}, tr.Values())
}

func TestDeleteRemovesAndLeavesValidTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.splay")
	defer teardown()
	//
	tr := buildIntTree(t, 5, 2, 8, 1, 9, 3, 7)
	v, err := DeleteByKey(tr, intKey, 5)
	assert.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.Equal(t, []int{1, 2, 3, 7, 8, 9}, tr.Values())
	_, err = SearchByKey(tr, intKey, 5)
	assert.Error(t, err)
}

func TestDeleteLeafKeepsSiblingReachable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.splay")
	defer teardown()
	//
	tr := buildIntTree(t, 5, 2, 8)
	v, err := DeleteByKey(tr, intKey, 2)
	assert.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, []int{5, 8}, tr.Values())
}

// TestRandomizedInsertDeleteLeavesValidTree drives a splay tree through a
// shuffled insert sequence and a shuffled delete sequence, re-checking
// in-order values stay sorted after every step — splaying restructures the
// tree on every search/insert/delete, so this is the one flavor where a
// single fixed sequence is least likely to turn up a broken rotation.
func TestRandomizedInsertDeleteLeavesValidTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.splay")
	defer teardown()
	//
	rng := rand.New(rand.NewSource(21))
	const n = 200
	tr := buildIntTree(t)
	present := map[int]bool{}
	for _, k := range rng.Perm(n) {
		assert.NoError(t, InsertByKey(tr, intKey, k))
		present[k] = true
	}
	assertSorted(t, tr.Values())
	for _, k := range rng.Perm(n)[:n/2] {
		v, err := DeleteByKey(tr, intKey, k)
		assert.NoError(t, err)
		assert.Equal(t, k, v)
		delete(present, k)
	}
	assertSorted(t, tr.Values())
	var want []int
	for k := range present {
		want = append(want, k)
	}
	sort.Ints(want)
	assert.Equal(t, want, tr.Values())
}

func assertSorted(t *testing.T, got []int) {
	t.Helper()
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1], got[i])
	}
}

func TestSegmentSummaryDoesNotSplay(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.splay")
	defer teardown()
	//
	tr := buildIntTree(t, 5, 2, 8, 1, 9)
	rootBefore := tr.inner.Root().Value
	s, err := SegmentSummary(tr, tree.All[int, data.NumericSummary[int]]())
	assert.NoError(t, err)
	assert.Equal(t, 5, s.Size)
	assert.Equal(t, rootBefore, tr.inner.Root().Value)
}
