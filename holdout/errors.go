// SPDX-License-Identifier: MIT
package holdout

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityExceeded indicates a requested holdout/negative/k-fold
	// size is larger than what the source graph can provide.
	ErrCapacityExceeded = errors.New("holdout: requested size exceeds available candidates")
	// ErrMultilabel indicates a stratified label holdout was requested on
	// a graph where some item carries more than one label.
	ErrMultilabel = errors.New("holdout: stratification requires a single-label graph")
	// ErrSmallClass indicates a stratified label holdout found a class
	// with fewer than two members, too small to split.
	ErrSmallClass = errors.New("holdout: a label class has fewer than two members")
	// ErrEmptyGraph indicates the operation needs at least one edge or
	// node but the source graph has none.
	ErrEmptyGraph = errors.New("holdout: source graph is empty")
	// ErrNotApplicable indicates the requested operation has no meaning
	// for the given graph shape.
	ErrNotApplicable = errors.New("holdout: operation not applicable to this graph")
	// ErrInvalidParameter indicates a caller-supplied parameter (train
	// size, k, k_index, batch size, window size, negative count) is
	// outside its valid range.
	ErrInvalidParameter = errors.New("holdout: invalid parameter")
)

func wrapf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
