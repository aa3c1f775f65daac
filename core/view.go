// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: The lazily-built, cached structural report — the one piece of
// Graph that is not read-only-by-construction: the first Report() call
// encodes a snapshot of the graph's invariant counters and caches the
// bytes under reportMu for every subsequent caller.

package core

import jsoniter "github.com/json-iterator/go"

var reportJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// reportSnapshot is the textual shape Report() serializes. Field names
// are stable across versions — downstream report rendering (an external
// concern, per the engine's scope) depends on them.
type reportSnapshot struct {
	InstanceID                 string `json:"instance_id"`
	Directed                   bool   `json:"directed"`
	Weighted                   bool   `json:"weighted"`
	HasEdgeTypes               bool   `json:"has_edge_types"`
	HasNodeTypes               bool   `json:"has_node_types"`
	NodeCount                  uint64 `json:"node_count"`
	EdgeCount                  uint64 `json:"edge_count"`
	SelfLoopEdges              uint64 `json:"self_loop_edges"`
	UniqueEdges                uint64 `json:"unique_edges"`
	NotSingletonNodes          uint64 `json:"not_singleton_nodes"`
	SingletonWithSelfloopNodes uint64 `json:"singleton_with_selfloop_nodes"`
	SingletonOnlyNodes         uint64 `json:"singleton_only_nodes"`
}

// Report returns a JSON-encoded structural summary of the graph,
// computing it once and serving cached bytes on every later call. The
// cache never needs invalidation: a built Graph never mutates.
//
// Complexity: O(1) after the first call; the first call is O(1) too,
// since every field it reports is itself an O(1) counter.
func (g *Graph) Report() ([]byte, error) {
	g.reportMu.RLock()
	if g.reportCache != nil {
		cached := g.reportCache
		g.reportMu.RUnlock()
		return cached, nil
	}
	g.reportMu.RUnlock()

	snap := reportSnapshot{
		InstanceID:                 g.InstanceID.String(),
		Directed:                   g.directed,
		Weighted:                   g.hasWeights,
		HasEdgeTypes:               g.edgeTypes != nil,
		HasNodeTypes:               g.nodeTypes != nil,
		NodeCount:                  g.nodeCount,
		EdgeCount:                  uint64(g.edges.Len()),
		SelfLoopEdges:              g.selfLoopEdges,
		UniqueEdges:                g.uniqueEdges,
		NotSingletonNodes:          g.notSingletonNodes,
		SingletonWithSelfloopNodes: g.singletonWithSelfloopNodes,
		SingletonOnlyNodes:         g.SingletonOnlyNodes(),
	}
	encoded, err := reportJSON.Marshal(snap)
	if err != nil {
		return nil, wrapf("Report", err)
	}

	g.reportMu.Lock()
	g.reportCache = encoded
	g.reportMu.Unlock()

	return encoded, nil
}
