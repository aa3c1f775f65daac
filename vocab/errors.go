package vocab

import (
	"errors"
	"fmt"
)

// Sentinel errors for vocab. Callers branch with errors.Is; messages are
// never matched by string.
var (
	// ErrEmptyName indicates Insert was called with the empty string.
	ErrEmptyName = errors.New("vocab: name must not be empty")

	// ErrNotNumeric indicates numeric mode rejected a name that does not
	// round-trip exactly through integer parse -> format (e.g. "007", "+3", " 3").
	ErrNotNumeric = errors.New("vocab: name is not a canonical non-negative integer")

	// ErrNotDense indicates BuildReverse found the id set is not exactly [0,n).
	ErrNotDense = errors.New("vocab: id set has a hole, is not dense in [0,n)")

	// ErrReverseCollision indicates two distinct names mapped to the same id
	// in BuildReverse, or a type name repeated within one node's list in
	// NodeTypes.Assign.
	ErrReverseCollision = errors.New("vocab: two names collide on the same id")
)

// wrapf prefixes an inner error with method context while preserving the
// sentinel for errors.Is, following the builder package's wrapping convention.
func wrapf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
