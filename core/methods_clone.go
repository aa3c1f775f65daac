// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Row extraction — the read-only counterpart to assembly.go's
// Build. A Graph never mutates in place; holdouts, random subgraphs, and
// any other "derived graph" operation work by extracting a (possibly
// filtered) RowIterator from an existing Graph and feeding it back
// through Build to produce an independent one.

package core

// Rows returns a RowIterator over every stored edge in its original
// (src,dst,edge_type) order, suitable for feeding straight back into
// Build (e.g. to re-partition a graph's edges across a k-fold split).
//
// Complexity: O(1) to construct; O(1) amortized per call.
func (g *Graph) Rows() RowIterator {
	return g.rowsWhere(nil)
}

// RowsFiltered returns a RowIterator over every stored edge whose source
// and destination both belong to keep, preserving order. This is the
// primitive a random-subgraph or node-holdout operation builds on: BFS
// or sample the keep set, then hand RowsFiltered(keep) to Build to
// assemble the restricted Graph.
//
// Complexity: O(1) to construct; O(1) amortized per call, O(E) total.
func (g *Graph) RowsFiltered(keep map[NodeId]struct{}) RowIterator {
	return g.rowsWhere(keep)
}

// RowsSubset returns a RowIterator over only the edges whose EdgeId is
// a member of ids, preserving order. Edge-level holdouts (random,
// connectivity-preserving, k-fold) build two of these — one for the
// chosen ids, one for their complement — to assemble independent train
// and test graphs.
//
// Complexity: O(1) to construct; O(E) total to drain.
func (g *Graph) RowsSubset(ids map[EdgeId]struct{}) RowIterator {
	n := g.edges.Len()
	i := 0
	return func() (Row, bool) {
		for i < n {
			idx := i
			i++
			if _, ok := ids[EdgeId(idx)]; !ok {
				continue
			}
			code, err := g.edges.Select(idx)
			if err != nil {
				return Row{}, false
			}
			src, dst := g.decode(code)
			row := Row{Src: src, Dst: dst}
			if g.hasWeights {
				row.Weight = g.weights[idx]
				row.HasWeight = true
			}
			if g.edgeTypes != nil {
				if tid, ok := g.edgeTypes.Of(uint64(idx)); ok {
					if name, err := g.edgeTypes.Vocab.Translate(tid); err == nil {
						row.EdgeType = name
					}
				}
			}
			return row, true
		}
		return Row{}, false
	}
}

func (g *Graph) rowsWhere(keep map[NodeId]struct{}) RowIterator {
	n := g.edges.Len()
	i := 0
	return func() (Row, bool) {
		for i < n {
			idx := i
			i++
			code, err := g.edges.Select(idx)
			if err != nil {
				return Row{}, false
			}
			src, dst := g.decode(code)
			if keep != nil {
				if _, ok := keep[src]; !ok {
					continue
				}
				if _, ok := keep[dst]; !ok {
					continue
				}
			}
			row := Row{Src: src, Dst: dst}
			if g.hasWeights {
				row.Weight = g.weights[idx]
				row.HasWeight = true
			}
			if g.edgeTypes != nil {
				if tid, ok := g.edgeTypes.Of(uint64(idx)); ok {
					if name, err := g.edgeTypes.Vocab.Translate(tid); err == nil {
						row.EdgeType = name
					}
				}
			}
			return row, true
		}
		return Row{}, false
	}
}
