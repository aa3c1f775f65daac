// SPDX-License-Identifier: MIT
//
// File: connected.go
// Role: Connectivity-preserving edge holdout — every spanning-tree edge
// (from spanning.Kruskal) and every self-loop on an otherwise-unconnected
// node stays in training, so components(train) == components(source).

package holdout

import (
	"math"

	"github.com/ranktrail/ranktrail/core"
	"github.com/ranktrail/ranktrail/spanning"
)

// ConnectedHoldout splits g's edges like RandomEdgeHoldout, but first
// pins every edge of a spanning arborescence (and every self-loop on a
// degree-1 node) into the training graph, so the training graph's
// connected-component count always equals the source's.
func ConnectedHoldout(g *core.Graph, trainSize float64, seed int64, opts ...EdgeFilterOption) (train, test *core.Graph, err error) {
	if trainSize <= 0 || trainSize >= 1 {
		return nil, nil, wrapf("ConnectedHoldout", ErrInvalidParameter)
	}

	all, err := collectLogicalEdges(g)
	if err != nil {
		return nil, nil, wrapf("ConnectedHoldout", err)
	}
	if len(all) == 0 {
		return nil, nil, wrapf("ConnectedHoldout", ErrEmptyGraph)
	}

	tree, err := spanning.Kruskal(g)
	if err != nil {
		return nil, nil, wrapf("ConnectedHoldout", err)
	}

	protected := make(map[core.EdgeId]struct{}, len(tree.TreeEdges)*2)
	for _, eid := range tree.TreeEdges {
		protected[eid] = struct{}{}
		if src, dst, derr := g.Endpoints(eid); derr == nil && !g.Directed() && src != dst {
			if typeName, terr := g.EdgeTypeName(eid); terr == nil {
				if revID, ok := matchingReverse(g, dst, src, typeName); ok {
					protected[revID] = struct{}{}
				}
			}
		}
	}
	for n := uint64(0); n < g.NodeCount(); n++ {
		node := core.NodeId(n)
		if !g.IsSingletonWithSelfloop(node) {
			continue
		}
		lo, hi, rerr := g.OutRange(node)
		if rerr != nil {
			continue
		}
		for eid := lo; eid < hi; eid++ {
			protected[eid] = struct{}{}
		}
	}

	cfg := buildFilterConfig(opts)
	eligible := make([]logicalEdge, 0, len(all))
	for _, le := range all {
		if _, barred := protected[le.forward]; barred {
			continue
		}
		if le.hasReverse {
			if _, barred := protected[le.reverse]; barred {
				continue
			}
		}
		if cfg.eligible(le) {
			eligible = append(eligible, le)
		}
	}

	testQuota := len(all) - int(math.Round(trainSize*float64(len(all))))
	if testQuota <= 0 || testQuota > len(eligible) {
		return nil, nil, wrapf("ConnectedHoldout", ErrCapacityExceeded)
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
		return nil, nil, wrapf("ConnectedHoldout", err)
	}
	test, err = rebuildFromEdgeIDs(g, testIDs)
	if err != nil {
		return nil, nil, wrapf("ConnectedHoldout", err)
	}
	return train, test, nil
}
