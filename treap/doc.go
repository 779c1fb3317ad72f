/*
Package treap implements the randomized treap flavor: each
node carries a random priority in its Meta field, maintained as a max-heap
alongside the binary-search-tree order on keys, giving O(log n) expected
depth without any deterministic bookkeeping. Because the heap order is
recursively mergeable by priority, treaps are also one of the splittable
flavors: Split/Concat/Reverse are built here on top of the shared
tree.Node plumbing, not on the Walker protocol (splitting cuts across the
tree shape in a way a single cursor can't express).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package treap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'arbor.treap'.
func tracer() tracing.Trace {
	return tracing.Select("arbor.treap")
}
