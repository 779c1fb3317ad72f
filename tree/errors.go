package tree

import "fmt"

// User-visible error kinds. These are plain sentinel errors,
// returned to the caller as control-flow signals, not panics.
var (
	// ErrOutOfBounds is returned when a Walker is asked to descend from an
	// empty position, or to ascend from the root.
	ErrOutOfBounds = fmt.Errorf("arbor: no such move")

	// ErrDuplicateKey is returned by InsertByLocator/insert-by-key when the
	// locator Accepts an already-occupied position.
	ErrDuplicateKey = fmt.Errorf("arbor: duplicate key")

	// ErrNotFound is returned by Search/Delete when no node matches.
	ErrNotFound = fmt.Errorf("arbor: not found")

	// ErrMisuseReverse is returned by ActSegment, on every flavor, when the
	// action requests a reversal, and by treap.Reverse/avl.Reverse when the
	// tree's algebra does not implement data.Reversible.
	ErrMisuseReverse = fmt.Errorf("arbor: reversal action used on a non-splittable tree")
)

// invariant panics with a formatted message if cond is false. Used for an
// inconsistent Locator (InconsistentLocator) and for internal consistency
// checks in rotation and deletion: these indicate a broken Locator or a
// library bug, not something a caller can recover from.
//
// Modeled on a plain assert-and-panic helper, the idiom used throughout
// this module's own internal invariant checks.
func invariant(cond bool, msg string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf("arbor/tree: "+msg, args...))
	}
}
