// SPDX-License-Identifier: MIT
//
// File: linkpred.go
// Role: Link-prediction batch iteration — positive edges drawn from g
// paired with same-count negative edges from NegativeSample, cut into
// fixed-size batches. Additive: built entirely on the edge-collection
// and negative-sampling primitives already in this package, and does
// not change any of their semantics.

package holdout

import (
	"math/rand"

	"github.com/ranktrail/ranktrail/core"
)

// EdgePair is one (src,dst) node pair, positive or negative, within a
// LinkPredictionBatch.
type EdgePair struct {
	Src, Dst core.NodeId
}

// LinkPredictionBatch pairs a slice of edges known to exist in g
// (Positive) with an equal-size slice of edges known not to (Negative).
type LinkPredictionBatch struct {
	Positive []EdgePair
	Negative []EdgePair
}

// LinkPredictionBatches shuffles g's edges (one entry per logical
// edge — both directions of an undirected pair travel together) and
// cuts them into batches of batchSize, each paired against an
// equal-count sample of nonexistent edges drawn from NegativeSample.
// The final batch may be smaller than batchSize if the edge count
// does not divide evenly.
func LinkPredictionBatches(g *core.Graph, batchSize int, seed int64) ([]LinkPredictionBatch, error) {
	if batchSize <= 0 {
		return nil, wrapf("LinkPredictionBatches", ErrInvalidParameter)
	}

	positives, err := collectLogicalEdges(g)
	if err != nil {
		return nil, wrapf("LinkPredictionBatches", err)
	}
	if len(positives) == 0 {
		return nil, wrapf("LinkPredictionBatches", ErrEmptyGraph)
	}

	rng := rngFromSeed(seed)
	shuffleLogicalEdgesInPlace(positives, rng)

	nNeg := uint64(len(positives))
	if !g.Directed() {
		nNeg *= 2
	}
	negSeed := deriveSeed(seed, negativeSampleStream)
	negGraph, err := NegativeSample(g, nNeg, negSeed)
	if err != nil {
		return nil, wrapf("LinkPredictionBatches", err)
	}
	negatives, err := collectLogicalEdges(negGraph)
	if err != nil {
		return nil, wrapf("LinkPredictionBatches", err)
	}

	batchCount := (len(positives) + batchSize - 1) / batchSize
	batches := make([]LinkPredictionBatch, 0, batchCount)
	for start := 0; start < len(positives); start += batchSize {
		end := start + batchSize
		if end > len(positives) {
			end = len(positives)
		}
		batch := LinkPredictionBatch{
			Positive: toEdgePairs(positives[start:end]),
		}
		if start < len(negatives) {
			negEnd := end
			if negEnd > len(negatives) {
				negEnd = len(negatives)
			}
			batch.Negative = toEdgePairs(negatives[start:negEnd])
		}
		batches = append(batches, batch)
	}
	return batches, nil
}

// negativeSampleStream is the deriveSeed stream id LinkPredictionBatches
// uses to decorrelate its negative draw from the positive shuffle, both
// sharing the caller's seed.
const negativeSampleStream = 1

func shuffleLogicalEdgesInPlace(a []logicalEdge, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

func toEdgePairs(edges []logicalEdge) []EdgePair {
	out := make([]EdgePair, len(edges))
	for i, le := range edges {
		out[i] = EdgePair{Src: le.src, Dst: le.dst}
	}
	return out
}
