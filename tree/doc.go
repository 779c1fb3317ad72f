/*
Package tree implements the balanced-search-tree core shared by every
arbor flavor: the node type, the Walker cursor protocol, the Locator
contract, and the generic segment algorithms built on top of them.

None of this package knows anything about splaying, treaps, or AVL
balance factors — those live in their own packages (splay, treap, avl).
Treap and AVL plug into the Walker protocol through a single Rebalancer
seam (Walker.GoUp calls Rebalancer.OnAscend after rebuilding the
ascended-from node); splay wraps the Walker and splays in its own Close. Everything else — search, segment summaries, segment actions,
insertion, deletion, iteration — is written once here, against the
Walker+Locator contracts, and reused unmodified by every flavor.

Trees in this package are ephemeral and mutated in place (no persistence,
no copy-on-write) and are not safe for concurrent use: a Walker borrows
its tree exclusively for the Walker's lifetime.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'arbor.tree'.
func tracer() tracing.Trace {
	return tracing.Select("arbor.tree")
}
