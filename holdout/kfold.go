// SPDX-License-Identifier: MIT
//
// File: kfold.go
// Role: k-fold edge partitioning — shuffle candidate logical edges once,
// then carve the kIndex-th contiguous slice out as the test fold.

package holdout

import "github.com/ranktrail/ranktrail/core"

// KFold splits g's edges into k roughly-equal folds (sizes differing by
// at most one) and returns the kIndex-th fold as test, the rest as
// train. When edgeTypes is non-empty, only edges of those types are
// candidates; edges of other types are always in train.
func KFold(g *core.Graph, k, kIndex int, seed int64, edgeTypes ...string) (train, test *core.Graph, err error) {
	if k < 2 || kIndex < 0 || kIndex >= k {
		return nil, nil, wrapf("KFold", ErrInvalidParameter)
	}

	all, err := collectLogicalEdges(g)
	if err != nil {
		return nil, nil, wrapf("KFold", err)
	}
	if len(all) == 0 {
		return nil, nil, wrapf("KFold", ErrEmptyGraph)
	}

	cfg := buildFilterConfig(nil)
	if len(edgeTypes) > 0 {
		cfg = buildFilterConfig([]EdgeFilterOption{WithEdgeTypeAllowlist(edgeTypes...)})
	}
	candidates := make([]logicalEdge, 0, len(all))
	for _, le := range all {
		if cfg.eligible(le) {
			candidates = append(candidates, le)
		}
	}
	if k > len(candidates) {
		return nil, nil, wrapf("KFold", ErrCapacityExceeded)
	}

	order := permRange(len(candidates), rngFromSeed(seed))

	base := len(candidates) / k
	rem := len(candidates) % k
	start := 0
	for i := 0; i < kIndex; i++ {
		size := base
		if i < rem {
			size++
		}
		start += size
	}
	size := base
	if kIndex < rem {
		size++
	}

	var testSet []logicalEdge
	for _, idx := range order[start : start+size] {
		testSet = append(testSet, candidates[idx])
	}

	testIDs := edgeIDSet(testSet)
	trainIDs := complementIDSet(int(g.EdgeCount()), testIDs)

	train, err = rebuildFromEdgeIDs(g, trainIDs)
	if err != nil {
		return nil, nil, wrapf("KFold", err)
	}
	test, err = rebuildFromEdgeIDs(g, testIDs)
	if err != nil {
		return nil, nil, wrapf("KFold", err)
	}
	return train, test, nil
}
