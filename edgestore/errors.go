package edgestore

import (
	"errors"
	"fmt"
)

// Sentinel errors for edgestore. Callers branch with errors.Is.
var (
	// ErrOutOfOrder indicates Push received a value smaller than the
	// previously pushed value; the store requires a non-decreasing sequence.
	ErrOutOfOrder = errors.New("edgestore: pushed value is out of order")

	// ErrOutOfBounds indicates Push received a value at or above the
	// declared upper bound, or more values than the declared capacity.
	ErrOutOfBounds = errors.New("edgestore: pushed value exceeds declared bound or capacity")

	// ErrNotFinished indicates Rank/Select/iteration was called before Finish.
	ErrNotFinished = errors.New("edgestore: store has not been finished")

	// ErrAlreadyFinished indicates Push or Finish was called after Finish.
	ErrAlreadyFinished = errors.New("edgestore: store is already finished")
)

func wrapf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
