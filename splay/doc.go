/*
Package splay implements the self-adjusting splay tree flavor: every
Walker.Close moves the last-touched node to the root by a sequence of
zig / zig-zig / zig-zag double rotations, using the shared
tree.Walker/tree.Node/tree.Rebalancer machinery from package tree — nothing
here forks the core algorithms, it only supplies the ascent-time
restructuring step.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package splay

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'arbor.splay'.
func tracer() tracing.Trace {
	return tracing.Select("arbor.splay")
}
