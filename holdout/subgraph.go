// SPDX-License-Identifier: MIT
//
// File: subgraph.go
// Role: Random induced subgraph extraction — BFS from randomly chosen
// roots over a seeded node-id shuffle, collecting a target node count
// and handing the keep set to Graph.RowsFiltered.

package holdout

import "github.com/ranktrail/ranktrail/core"

// RandomSubgraph returns the induced subgraph of g on a set of size
// nodeCount, grown by BFS from roots drawn in a seeded random order.
// Nodes unreachable from every visited root but still needed to reach
// nodeCount are picked up by advancing to the next unvisited root in
// the same shuffled order, so the result may span several components
// of g.
func RandomSubgraph(g *core.Graph, nodeCount int, seed int64) (*core.Graph, error) {
	total := int(g.NodeCount())
	if nodeCount <= 0 || nodeCount > total {
		return nil, wrapf("RandomSubgraph", ErrInvalidParameter)
	}

	rng := rngFromSeed(seed)
	order := permRange(total, rng)

	keep := make(map[core.NodeId]struct{}, nodeCount)
	visited := make([]bool, total)
	var queue []core.NodeId

	for _, rootIdx := range order {
		if len(keep) >= nodeCount {
			break
		}
		root := core.NodeId(rootIdx)
		if visited[root] {
			continue
		}
		visited[root] = true
		queue = append(queue[:0], root)

		for len(queue) > 0 && len(keep) < nodeCount {
			node := queue[0]
			queue = queue[1:]
			keep[node] = struct{}{}

			next := g.NeighborIter(node)
			for {
				nbr, _, ok := next()
				if !ok {
					break
				}
				if visited[nbr] {
					continue
				}
				visited[nbr] = true
				queue = append(queue, nbr)
			}
		}
	}

	kept := countFilteredEdges(g, keep)
	graph, err := core.Build(g.NodeVocab(), g.NodeCount(), kept, g.RowsFiltered(keep),
		core.WithDirected(g.Directed()),
		core.WithDirectedEdgeList(true),
		core.WithHasWeights(g.Weighted()),
		core.WithHasEdgeTypes(g.HasEdgeTypes()),
	)
	if err != nil {
		return nil, wrapf("RandomSubgraph", err)
	}
	return graph, nil
}

// countFilteredEdges counts the edges RowsFiltered(keep) will yield, since
// Build requires the exact row count up front.
func countFilteredEdges(g *core.Graph, keep map[core.NodeId]struct{}) int {
	count := 0
	next := g.RowsFiltered(keep)
	for {
		_, ok := next()
		if !ok {
			break
		}
		count++
	}
	return count
}
