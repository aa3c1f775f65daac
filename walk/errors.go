// SPDX-License-Identifier: MIT
package walk

import (
	"errors"
	"fmt"
)

var (
	// ErrDirectedWalk indicates New was called with a directed graph; biased random walks are defined only over undirected graphs
	// in this engine.
	ErrDirectedWalk = errors.New("walk: biased random walks require an undirected graph")

	// ErrInvalidConfig indicates a Config field is outside its valid
	// range (e.g. a non-positive bias weight).
	ErrInvalidConfig = errors.New("walk: invalid configuration")

	// ErrEmptyGraph indicates the graph has no nodes to walk from.
	ErrEmptyGraph = errors.New("walk: graph has no nodes")
)

func wrapf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
