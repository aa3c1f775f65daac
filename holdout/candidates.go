// SPDX-License-Identifier: MIT
//
// File: candidates.go
// Role: Shared logical-edge enumeration for the edge-level holdouts
// (random, connected, k-fold): a "logical edge" is one directed edge id
// together with its mirrored reverse id when the source graph is
// undirected, so every holdout operation moves both directions as one
// unit, per the teacher's undirected-balance invariant from assembly.

package holdout

import "github.com/ranktrail/ranktrail/core"

// logicalEdge is one (src,dst,edgeType) forward slot plus its mirrored
// reverse slot (only set when the graph is undirected and src != dst).
type logicalEdge struct {
	src, dst     core.NodeId
	forward      core.EdgeId
	reverse      core.EdgeId
	hasReverse   bool
	edgeType     string
	multiplicity uint64 // total parallel-edge count between src and dst, any type
}

// collectLogicalEdges enumerates one logicalEdge per distinct forward
// (src,dst,edgeType) slot, skipping the mirrored reverse direction of
// an undirected graph so each logical edge is counted exactly once.
func collectLogicalEdges(g *core.Graph) ([]logicalEdge, error) {
	total := int(g.EdgeCount())
	out := make([]logicalEdge, 0, total)

	for eid := 0; eid < total; eid++ {
		edgeID := core.EdgeId(eid)
		src, dst, err := g.Endpoints(edgeID)
		if err != nil {
			return nil, wrapf("collectLogicalEdges", err)
		}
		if !g.Directed() && src > dst {
			continue // mirrored reverse of an already-recorded forward slot
		}

		typeName, _ := g.EdgeTypeName(edgeID)
		le := logicalEdge{
			src:          src,
			dst:          dst,
			forward:      edgeID,
			edgeType:     typeName,
			multiplicity: g.EdgeMultiplicity(src, dst),
		}
		if !g.Directed() && src != dst {
			if revID, ok := matchingReverse(g, dst, src, typeName); ok {
				le.reverse = revID
				le.hasReverse = true
			}
		}
		out = append(out, le)
	}
	return out, nil
}

// matchingReverse finds the edge id in the (revSrc,revDst) run whose
// edge type matches wantType; with at most one edge type per (src,dst)
// pair (the overwhelmingly common case, since Build rejects duplicate
// (src,dst,edgeType) triples) this is just the run's first and only
// entry.
func matchingReverse(g *core.Graph, revSrc, revDst core.NodeId, wantType string) (core.EdgeId, bool) {
	lo, hi, err := g.EdgeIDs(revSrc, revDst)
	if err != nil {
		return 0, false
	}
	for id := lo; id < hi; id++ {
		name, _ := g.EdgeTypeName(id)
		if name == wantType {
			return id, true
		}
	}
	return 0, false
}

// edgeIDSet flattens a slice of logical edges into the full set of
// underlying EdgeIds (forward plus reverse, where present).
func edgeIDSet(edges []logicalEdge) map[core.EdgeId]struct{} {
	out := make(map[core.EdgeId]struct{}, len(edges)*2)
	for _, le := range edges {
		out[le.forward] = struct{}{}
		if le.hasReverse {
			out[le.reverse] = struct{}{}
		}
	}
	return out
}

// complementIDSet returns every EdgeId in [0,total) not present in ids.
func complementIDSet(total int, ids map[core.EdgeId]struct{}) map[core.EdgeId]struct{} {
	out := make(map[core.EdgeId]struct{}, total-len(ids))
	for i := 0; i < total; i++ {
		id := core.EdgeId(i)
		if _, excluded := ids[id]; !excluded {
			out[id] = struct{}{}
		}
	}
	return out
}
