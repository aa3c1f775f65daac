// SPDX-License-Identifier: MIT
//
// File: transition.go
// Role: node2vec transition-weight construction. Second-order bias needs
// to know, for each candidate next node x adjacent to the walk's current
// node v, whether x is also adjacent to the walk's previous node t — a
// set-intersection test answered in a single merge pass over both
// (already sorted) neighbor lists, rather than a hash lookup per
// candidate.

package walk

import "github.com/ranktrail/ranktrail/core"

// candidateSet is the reusable output of buildTransitions: parallel
// dst/weight slices plus their total, ready for weighted sampling.
type candidateSet struct {
	dst    []core.NodeId
	weight []float64
	total  float64
}

// firstOrderTransitions weighs every neighbor of cur by its edge weight
// alone (or uniformly, if the graph is unweighted) — the walk's first
// step, with no previous node to bias against.
func firstOrderTransitions(g *core.Graph, cur core.NodeId) (candidateSet, error) {
	neighbors, err := g.Neighbors(cur)
	if err != nil {
		return candidateSet{}, wrapf("firstOrderTransitions", err)
	}
	cs := candidateSet{dst: neighbors, weight: make([]float64, len(neighbors))}
	lo, _, err := g.OutRange(cur)
	if err != nil {
		return candidateSet{}, nil // trap node: no outgoing edges
	}
	for k := range neighbors {
		w := edgeWeight(g, lo+core.EdgeId(k))
		cs.weight[k] = w
		cs.total += w
	}
	return cs, nil
}

// secondOrderTransitions applies the node2vec p/q bias and the optional
// node/edge-type crossing penalties to every neighbor of cur, given the
// walk arrived at cur from prev.
func secondOrderTransitions(g *core.Graph, cfg Config, prev, cur core.NodeId) (candidateSet, error) {
	neighborsOfCur, err := g.Neighbors(cur)
	if err != nil {
		return candidateSet{}, wrapf("secondOrderTransitions", err)
	}
	if len(neighborsOfCur) == 0 {
		return candidateSet{}, nil
	}
	neighborsOfPrev, err := g.Neighbors(prev)
	if err != nil {
		return candidateSet{}, wrapf("secondOrderTransitions", err)
	}

	lo, _, err := g.OutRange(cur)
	if err != nil {
		return candidateSet{}, nil
	}

	cs := candidateSet{dst: neighborsOfCur, weight: make([]float64, len(neighborsOfCur))}
	j := 0
	for k, x := range neighborsOfCur {
		var alpha float64
		switch {
		case x == prev:
			alpha = 1.0 / cfg.ReturnWeight
		default:
			for j < len(neighborsOfPrev) && neighborsOfPrev[j] < x {
				j++
			}
			if j < len(neighborsOfPrev) && neighborsOfPrev[j] == x {
				alpha = 1.0
			} else {
				alpha = 1.0 / cfg.ExploreWeight
			}
		}

		if cfg.ChangeNodeTypeWeight != 1.0 && g.HasNodeTypes() && !g.SameNodeType(cur, x) {
			alpha *= cfg.ChangeNodeTypeWeight
		}
		if cfg.ChangeEdgeTypeWeight != 1.0 && g.HasEdgeTypes() {
			curEdgeID := lo + core.EdgeId(k)
			prevEdgeID, pErr := firstEdgeBetween(g, prev, cur)
			if pErr == nil {
				curType, curOK := g.EdgeType(curEdgeID)
				prevType, prevOK := g.EdgeType(prevEdgeID)
				if curOK && prevOK && curType == prevType {
					alpha /= cfg.ChangeEdgeTypeWeight
				}
			}
		}

		w := alpha * edgeWeight(g, lo+core.EdgeId(k))
		cs.weight[k] = w
		cs.total += w
	}
	return cs, nil
}

// edgeWeight returns the graph's stored weight for edgeID, or 1.0 if the
// graph is unweighted.
func edgeWeight(g *core.Graph, edgeID core.EdgeId) float64 {
	w, err := g.Weight(edgeID)
	if err != nil {
		return 1.0
	}
	return float64(w)
}

// firstEdgeBetween returns the first stored edge id from src to dst.
func firstEdgeBetween(g *core.Graph, src, dst core.NodeId) (core.EdgeId, error) {
	lo, _, err := g.EdgeIDs(src, dst)
	return lo, err
}

// sample draws one candidate index from cs proportional to weight,
// using rng's uniform draw scaled by the precomputed total.
func (cs candidateSet) sample(rng *splitMix64) (core.NodeId, bool) {
	if len(cs.dst) == 0 || cs.total <= 0 {
		return 0, false
	}
	target := rng.float64() * cs.total
	var acc float64
	for k, w := range cs.weight {
		acc += w
		if target < acc {
			return cs.dst[k], true
		}
	}
	return cs.dst[len(cs.dst)-1], true
}
