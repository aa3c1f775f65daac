// SPDX-License-Identifier: MIT
//
// File: cooccurrence.go
// Role: GloVe-style co-occurrence matrix construction from a batch of
// walks — a harmonic-weighted sliding window over each walk, folded into
// a symmetric (focus, context, weight) triple list. This feature is not
// named by the engine's own module list; it is carried over from the
// original implementation's preprocessing step because it is the
// standard next stage after sampling walks for embedding training.

package walk

import "github.com/ranktrail/ranktrail/core"

// Cooccurrence is one symmetric (focus, context) pair with its weight
// divided by the largest accumulated weight, so it lies in (0,1].
type Cooccurrence struct {
	Focus   core.NodeId
	Context core.NodeId
	Weight  float64
}

// CooccurrenceMatrix folds walks into a symmetric co-occurrence list: for
// every pair of nodes within window positions of each other in some
// walk, their accumulated weight is the harmonic sum of 1/distance
// across every occurrence in every walk, divided by the largest such sum
// over all pairs before it is emitted. Each unordered pair is emitted
// twice, once in each direction, since downstream embedding training
// consumes both a node's row and its column.
//
// Complexity: O(total walk length * window).
func CooccurrenceMatrix(walks [][]core.NodeId, window int) []Cooccurrence {
	if window <= 0 {
		window = 4
	}
	type key struct{ a, b core.NodeId }
	acc := make(map[key]float64)

	for _, walk := range walks {
		n := len(walk)
		for i, central := range walk {
			for distance := 1; distance <= window; distance++ {
				j := i + distance
				if j >= n {
					break
				}
				context := walk[j]
				if central == context {
					continue
				}
				k := key{central, context}
				if context < central {
					k = key{context, central}
				}
				acc[k] += 1.0 / float64(distance)
			}
		}
	}

	out := make([]Cooccurrence, 0, len(acc)*2)
	var maxWeight float64
	for _, w := range acc {
		if w > maxWeight {
			maxWeight = w
		}
	}
	for k, w := range acc {
		normalized := w
		if maxWeight > 0 {
			normalized = w / maxWeight
		}
		out = append(out, Cooccurrence{Focus: k.a, Context: k.b, Weight: normalized})
		out = append(out, Cooccurrence{Focus: k.b, Context: k.a, Weight: normalized})
	}
	return out
}
