// SPDX-License-Identifier: MIT
//
// Package report supplies the edge-list writer/reader and the
// structural-hash comparison a round-trip test needs: serialize a
// Graph's edges to a stream, rebuild a Graph from that stream, and
// confirm the two are structurally identical without comparing byte
// layout. Graph's own textual report (a cached JSON counter summary)
// lives on Graph.Report itself; this package is the reader/writer
// counterpart for the full edge set.
package report

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/ranktrail/ranktrail/core"
)

// StructuralHash returns a hex digest identifying g's structure: its
// invariant counters (everything Report() exposes except the per-run
// InstanceID, which two structurally-identical graphs need not share)
// plus every edge's (src,dst,weight,type) tuple in storage order. Two
// graphs with the same digest have identical counters and identical
// edge sets; this is the comparison a write→read round trip is checked
// against, since the counters alone could coincidentally match on a
// different edge set.
func StructuralHash(g *core.Graph) (string, error) {
	h := sha256.New()
	fmt.Fprintf(h, "directed=%t weighted=%t edge_types=%t node_types=%t "+
		"nodes=%d edges=%d self_loops=%d unique_edges=%d "+
		"not_singleton=%d singleton_selfloop=%d singleton_only=%d\n",
		g.Directed(), g.Weighted(), g.HasEdgeTypes(), g.NodeTypes() != nil,
		g.NodeCount(), g.EdgeCount(), g.SelfLoopEdges(), g.UniqueEdges(),
		g.NotSingletonNodes(), g.SingletonWithSelfloopNodes(), g.SingletonOnlyNodes())

	rows := g.Rows()
	for {
		row, ok := rows()
		if !ok {
			break
		}
		fmt.Fprintf(h, "%d|%d|%t|%g|%s\n", row.Src, row.Dst, row.HasWeight, row.Weight, row.EdgeType)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
