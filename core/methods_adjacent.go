// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs — out-degree, neighbor enumeration, and the
// (min,max) edge-id range per source node the walk sampler (C6) and the
// spanning/holdout machinery (C7/C8) iterate directly for speed.

package core

// NeighborIterator lazily yields a source node's (dst, edgeID) pairs in
// ascending dst order, mirroring edgestore.Iterator's callback shape.
type NeighborIterator func() (dst NodeId, edgeID EdgeId, ok bool)

// OutRange returns the half-open [lo,hi) edge-id range of every edge
// whose source is src, or ErrNotFound if src has no outgoing edge.
//
// Complexity: O(1) given the cached firstEdgeOfSource entry point, plus
// one Rank probe to find the end of the run.
func (g *Graph) OutRange(src NodeId) (lo, hi EdgeId, err error) {
	start, ok := g.firstEdgeOfSource[src]
	if !ok {
		return 0, 0, wrapf("OutRange", ErrNotFound)
	}
	end, ok := g.edges.Rank(g.code(src+1, 0))
	if !ok {
		end = g.edges.Len()
	}
	return EdgeId(start), EdgeId(end), nil
}

// OutDegree returns the number of outgoing edge slots from src (for an
// undirected graph this counts the mirrored reverse edges too, since
// they are stored as independent slots — spec §3.3's "no special-casing
// of undirected adjacency at query time").
//
// Complexity: O(1) amortized.
func (g *Graph) OutDegree(src NodeId) uint64 {
	lo, hi, err := g.OutRange(src)
	if err != nil {
		return 0
	}
	return uint64(hi - lo)
}

// Neighbors materializes every dst reachable directly from src, in
// ascending order, with one entry per parallel edge (a multi-edge target
// appears once per edge type/weight). Routes through the hot-node cache
// (see EnableHotCache) when one is enabled, so a revisited src can skip
// the decode loop entirely.
//
// Complexity: O(d) where d = OutDegree(src); O(1) on a cache hit.
func (g *Graph) Neighbors(src NodeId) ([]NodeId, error) {
	return g.cachedNeighbors(src)
}

// neighborsUncached is Neighbors' raw decode path, with no cache
// consultation: cachedNeighbors' cache-miss branch calls this directly to
// avoid recursing back into Neighbors.
func (g *Graph) neighborsUncached(src NodeId) ([]NodeId, error) {
	lo, hi, err := g.OutRange(src)
	if err != nil {
		return nil, err
	}
	out := make([]NodeId, 0, hi-lo)
	for i := lo; i < hi; i++ {
		code, selErr := g.edges.Select(int(i))
		if selErr != nil {
			return nil, wrapf("Neighbors", selErr)
		}
		_, dst := g.decode(code)
		out = append(out, dst)
	}
	return out, nil
}

// NeighborIter returns an iterator over src's (dst, edgeID) pairs. Edge
// ids for a source are always contiguous (OutRange's [lo,hi) run), so
// the k-th cached dst pairs with edge id lo+k without needing to cache
// edge ids separately. Calling it on a source with no outgoing edge
// yields an iterator that immediately reports done.
//
// Complexity: O(d) to construct (O(1) on a cache hit); O(1) per call.
func (g *Graph) NeighborIter(src NodeId) NeighborIterator {
	lo, _, err := g.OutRange(src)
	if err != nil {
		return func() (NodeId, EdgeId, bool) { return 0, 0, false }
	}
	dsts, err := g.cachedNeighbors(src)
	if err != nil {
		return func() (NodeId, EdgeId, bool) { return 0, 0, false }
	}
	i := 0
	return func() (NodeId, EdgeId, bool) {
		if i >= len(dsts) {
			return 0, 0, false
		}
		dst := dsts[i]
		id := lo + EdgeId(i)
		i++
		return dst, id, true
	}
}

// IsSingleton reports whether node has no outgoing edge, or has only
// self-loops as incident edges. On an undirected graph this is exactly a
// node with no incident non-self-loop edge; on a directed graph a node
// with incoming edges but no outgoing one also counts. See
// IsSingletonWithSelfloop to tell the self-loop case apart.
//
// Complexity: O(1).
func (g *Graph) IsSingleton(node NodeId) bool {
	return g.OutDegree(node) == 0 || g.isSingletonWithSelfloop(node)
}

// IsSingletonWithSelfloop reports whether node's only incident edges are
// self-loops.
//
// Complexity: O(1).
func (g *Graph) IsSingletonWithSelfloop(node NodeId) bool {
	return g.isSingletonWithSelfloop(node)
}
