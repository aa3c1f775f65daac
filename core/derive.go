// SPDX-License-Identifier: MIT
//
// File: derive.go
// Role: Label-only graph derivation for holdout (C8): swapping the
// node- or edge-type layer without re-running Build, since label
// holdouts keep every edge and weight identical and only null out
// labels in the complementary partition.

package core

import "github.com/ranktrail/ranktrail/vocab"

// DeriveWithNodeTypes returns a new Graph identical to g except for its
// node-type layer, which becomes nt. The edge store, weights, and
// node-type-independent counters are shared by reference (both values
// are immutable once built); the new Graph gets its own fresh report
// cache since NodeTypes participates in Report's snapshot and a shared
// cache would otherwise serve stale data.
func (g *Graph) DeriveWithNodeTypes(nt *vocab.NodeTypes) *Graph {
	cp := g.shallowCopy()
	cp.nodeTypes = nt
	return cp
}

// DeriveWithEdgeTypes is DeriveWithNodeTypes's edge-label counterpart.
func (g *Graph) DeriveWithEdgeTypes(et *vocab.EdgeTypes) *Graph {
	cp := g.shallowCopy()
	cp.edgeTypes = et
	return cp
}

// shallowCopy builds a new Graph sharing every field with g by
// reference/value except the synchronization primitives, which must
// never be copied once used, and the hot-node cache — the clone starts
// with its own unlocked mutex, an empty report cache and no hot cache.
func (g *Graph) shallowCopy() *Graph {
	return &Graph{
		InstanceID:                 g.InstanceID,
		nodeVocab:                  g.nodeVocab,
		nodeTypes:                  g.nodeTypes,
		edgeTypes:                  g.edgeTypes,
		edges:                      g.edges,
		nodeBits:                   g.nodeBits,
		dstMask:                    g.dstMask,
		weights:                    g.weights,
		hasWeights:                 g.hasWeights,
		directed:                   g.directed,
		nodeCount:                  g.nodeCount,
		selfLoopEdges:              g.selfLoopEdges,
		uniqueEdges:                g.uniqueEdges,
		notSingletonNodes:          g.notSingletonNodes,
		singletonWithSelfloopNodes: g.singletonWithSelfloopNodes,
		singletonWithSelfloop:      g.singletonWithSelfloop,
		nodeHasEdge:                g.nodeHasEdge,
		firstEdgeOfSource:          g.firstEdgeOfSource,
		log:                        g.log,
	}
}
