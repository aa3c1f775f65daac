// SPDX-License-Identifier: MIT
package spanning

import (
	"errors"
	"fmt"
)

// ErrDirectedGraph indicates an algorithm in this package was called on
// a directed graph, which it does not support.
var ErrDirectedGraph = errors.New("spanning: algorithm requires an undirected graph")

func wrapf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
