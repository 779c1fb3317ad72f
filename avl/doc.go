/*
Package avl implements the height-balanced AVL flavor: each
node carries its subtree height in Meta, and every ascend checks the
balance factor of the node just arrived at, rotating (single or double) to
keep the two children's heights within one of each other. Unlike splay,
AVL's rebalancing only ever needs one level of lookahead below the
ascended-to parent, so it fits the shared tree.Rebalancer seam directly,
the same way treap's does.

Split and Concat are built on the classic purely-functional join: to glue
two trees together (Concat) or reattach the two pieces a split produced,
join walks down whichever side is taller until it finds a subtree within
one level of the shorter side, grafts them together under a pivot value,
and rebalances back up — the textbook technique for join-based balanced
search trees.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package avl

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'arbor.avl'.
func tracer() tracing.Trace {
	return tracing.Select("arbor.avl")
}
