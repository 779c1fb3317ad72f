/*
Package slice is a thin sugar layer over package tree: a Slice pairs a tree
with a Locator describing which of its values the handle denotes, and
forwards Summary/Act/Iter to the matching segment operation so callers
working with a sub-range don't have to thread the Locator through every
call themselves.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package slice

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'arbor.slice'.
func tracer() tracing.Trace {
	return tracing.Select("arbor.slice")
}
