/*
Package data defines the algebra that every arbor tree is parameterized
over: a monoid of per-node summaries, a monoid of lazily-applied actions,
and the homomorphism laws tying the two to the values stored in a tree.

Trees themselves never know what a Value, Summary, or Action concretely
is. They are handed an Algebra implementation once, at construction time,
and thread it through every operation as an explicit argument, rather
than attaching aggregation/comparison behavior to the value type itself.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package data

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'arbor.data'.
func tracer() tracing.Trace {
	return tracing.Select("arbor.data")
}
