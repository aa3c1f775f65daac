// SPDX-License-Identifier: MIT
//
// File: random.go
// Role: Plain random edge holdout (no connectivity guarantee), grounded
// on tsp/rng.go's seeded permRange plus spec's undirected-pair and
// edge-type filter rules.

package holdout

import (
	"math"

	"github.com/ranktrail/ranktrail/core"
)

// RandomEdgeHoldout splits g's edges into train and test graphs.
// trainSize must be in (0,1); roughly trainSize of the logical edges
// (each undirected edge counted once) land in train, the remainder in
// test. Eligibility for the test set is narrowed by opts (edge-type
// allowlist, minimum multiplicity). Every undirected logical edge moves
// to its chosen side as both directions together.
func RandomEdgeHoldout(g *core.Graph, trainSize float64, seed int64, opts ...EdgeFilterOption) (train, test *core.Graph, err error) {
	if trainSize <= 0 || trainSize >= 1 {
		return nil, nil, wrapf("RandomEdgeHoldout", ErrInvalidParameter)
	}

	all, err := collectLogicalEdges(g)
	if err != nil {
		return nil, nil, wrapf("RandomEdgeHoldout", err)
	}
	if len(all) == 0 {
		return nil, nil, wrapf("RandomEdgeHoldout", ErrEmptyGraph)
	}

	cfg := buildFilterConfig(opts)
	eligible := make([]logicalEdge, 0, len(all))
	for _, le := range all {
		if cfg.eligible(le) {
			eligible = append(eligible, le)
		}
	}

	testQuota := len(eligible) - int(math.Round(trainSize*float64(len(eligible))))
	if testQuota <= 0 || testQuota > len(eligible) {
		return nil, nil, wrapf("RandomEdgeHoldout", ErrCapacityExceeded)
	}

	units := selectionUnits(eligible, cfg.includeAllEdgeType)
	order := permRange(len(units), rngFromSeed(seed))

	var testSet []logicalEdge
	for _, idx := range order {
		if len(testSet) >= testQuota {
			break
		}
		testSet = append(testSet, units[idx]...)
	}

	testIDs := edgeIDSet(testSet)
	trainIDs := complementIDSet(int(g.EdgeCount()), testIDs)

	train, err = rebuildFromEdgeIDs(g, trainIDs)
	if err != nil {
		return nil, nil, wrapf("RandomEdgeHoldout", err)
	}
	test, err = rebuildFromEdgeIDs(g, testIDs)
	if err != nil {
		return nil, nil, wrapf("RandomEdgeHoldout", err)
	}
	return train, test, nil
}

// selectionUnits groups eligible logical edges into the slices that
// must move together: one edge per unit normally, or every parallel
// edge of a (src,dst) pair per unit when includeAll is set.
func selectionUnits(eligible []logicalEdge, includeAll bool) [][]logicalEdge {
	if !includeAll {
		units := make([][]logicalEdge, len(eligible))
		for i, le := range eligible {
			units[i] = []logicalEdge{le}
		}
		return units
	}

	type pairKey struct{ src, dst core.NodeId }
	groups := make(map[pairKey][]logicalEdge)
	var order []pairKey
	for _, le := range eligible {
		key := pairKey{le.src, le.dst}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], le)
	}
	units := make([][]logicalEdge, 0, len(order))
	for _, key := range order {
		units = append(units, groups[key])
	}
	return units
}
