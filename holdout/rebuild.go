// SPDX-License-Identifier: MIT
//
// File: rebuild.go
// Role: The one choke point every holdout operation funnels through to
// turn a chosen EdgeId subset back into an independent core.Graph,
// reusing core.Build/RowsSubset so a holdout graph is constructed the
// same way the original was, never by mutating it.

package holdout

import "github.com/ranktrail/ranktrail/core"

// rebuildFromEdgeIDs assembles a new Graph containing exactly the edges
// named by ids, sharing g's node vocabulary and node-type layer by
// reference (both are immutable once built, so sharing is safe and
// avoids cloning potentially large vocabularies per spec's "cyclic
// references are avoided by value cloning of the relatively small
// support vocabularies" — the vocabularies themselves are not cloned,
// only referenced, since core.Graph never mutates them after Build).
func rebuildFromEdgeIDs(g *core.Graph, ids map[core.EdgeId]struct{}) (*core.Graph, error) {
	opts := []core.AssemblyOption{
		core.WithDirected(g.Directed()),
		core.WithDirectedEdgeList(true),
		core.WithEdgeListIsCorrect(true),
		core.WithHasWeights(g.Weighted()),
		core.WithHasEdgeTypes(g.HasEdgeTypes()),
	}
	if nt := g.NodeTypes(); nt != nil {
		opts = append(opts, core.WithNodeTypes(nt))
	}
	graph, err := core.Build(g.NodeVocab(), g.NodeCount(), len(ids), g.RowsSubset(ids), opts...)
	if err != nil {
		return nil, wrapf("rebuildFromEdgeIDs", err)
	}
	return graph, nil
}
