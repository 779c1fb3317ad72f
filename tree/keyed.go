package tree

import "cmp"

// This file is the keyed convenience surface built on top
// of the locator-based primitives: ordinary "insert/search/delete by key"
// calls for trees that store keyed values, without callers having to build
// a ByKey Locator by hand each time.

// InsertByKey inserts value at the position its key (per keyOf) belongs,
// or returns ErrDuplicateKey if that key is already present.
func InsertByKey[V, S, Act any, K cmp.Ordered](t *Tree[V, S, Act], keyOf func(V) K, value V) error {
	return InsertByLocator(t, ByKey[V, S](keyOf, keyOf(value)), value)
}

// SearchByKey returns the value stored under key, or ErrNotFound.
func SearchByKey[V, S, Act any, K cmp.Ordered](t *Tree[V, S, Act], keyOf func(V) K, key K) (V, error) {
	return SearchByLocator(t, ByKey[V, S](keyOf, key))
}

// DeleteByKey removes and returns the value stored under key, or
// ErrNotFound.
func DeleteByKey[V, S, Act any, K cmp.Ordered](t *Tree[V, S, Act], keyOf func(V) K, key K) (V, error) {
	return DeleteByLocator(t, ByKey[V, S](keyOf, key))
}
