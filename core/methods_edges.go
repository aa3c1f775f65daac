// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: C5 edge-oriented queries — existence, endpoint decoding,
// multiplicity, and weight/type accessors — every one routed through
// edgestore.Store.Rank/Select rather than any adjacency structure.

package core

// HasEdge reports whether at least one directed edge slot runs from src
// to dst.
//
// Complexity: O(log log U) amortized (a single Rank probe).
func (g *Graph) HasEdge(src, dst NodeId) bool {
	_, _, ok := g.edgeRange(src, dst)
	return ok
}

// EdgeMultiplicity returns how many parallel edge slots run from src to
// dst (distinct edge types sharing the same endpoints count separately).
//
// Complexity: O(log log U).
func (g *Graph) EdgeMultiplicity(src, dst NodeId) uint64 {
	lo, hi, ok := g.edgeRange(src, dst)
	if !ok {
		return 0
	}
	return uint64(hi - lo)
}

// EdgeIDs returns the half-open [lo,hi) range of edge ids for (src,dst),
// or ErrNotFound if no such edge exists.
//
// Complexity: O(log log U).
func (g *Graph) EdgeIDs(src, dst NodeId) (lo, hi EdgeId, err error) {
	l, h, ok := g.edgeRange(src, dst)
	if !ok {
		return 0, 0, wrapf("EdgeIDs", ErrNotFound)
	}
	return EdgeId(l), EdgeId(h), nil
}

// edgeRange locates the contiguous run of stored codes equal to
// code(src,dst); codes are monotone non-decreasing so every occurrence
// of the same (src,dst) pair (one per parallel edge type) is contiguous.
func (g *Graph) edgeRange(src, dst NodeId) (lo, hi int, ok bool) {
	code := g.code(src, dst)
	l, lok := g.edges.Rank(code)
	if !lok {
		return 0, 0, false
	}
	first, err := g.edges.Select(l)
	if err != nil || first != code {
		return 0, 0, false
	}
	h, hok := g.edges.Rank(code + 1)
	if !hok {
		h = g.edges.Len()
	}
	return l, h, true
}

// Endpoints decodes edgeID back into its (src,dst) pair.
//
// Complexity: O(log log U).
func (g *Graph) Endpoints(edgeID EdgeId) (src, dst NodeId, err error) {
	if edgeID >= EdgeId(g.edges.Len()) {
		return 0, 0, wrapf("Endpoints", ErrNotFound)
	}
	code, selErr := g.edges.Select(int(edgeID))
	if selErr != nil {
		return 0, 0, wrapf("Endpoints", ErrNotFound)
	}
	s, d := g.decode(code)
	return s, d, nil
}

// Weight returns the weight stored for edgeID.
//
// Complexity: O(1).
func (g *Graph) Weight(edgeID EdgeId) (Weight, error) {
	if !g.hasWeights {
		return 0, wrapf("Weight", ErrNotApplicable)
	}
	if edgeID >= EdgeId(len(g.weights)) {
		return 0, wrapf("Weight", ErrNotFound)
	}
	return g.weights[edgeID], nil
}

// EdgeType returns the type id stored for edgeID, or (0, false) if the
// edge is untyped or this graph carries no edge types.
//
// Complexity: O(1).
func (g *Graph) EdgeType(edgeID EdgeId) (EdgeTypeId, bool) {
	if g.edgeTypes == nil {
		return 0, false
	}
	return g.edgeTypes.Of(edgeID)
}

// EdgeTypeName resolves edgeID's type id to its registered name.
//
// Complexity: O(1).
func (g *Graph) EdgeTypeName(edgeID EdgeId) (string, error) {
	id, ok := g.EdgeType(edgeID)
	if !ok {
		return "", wrapf("EdgeTypeName", ErrNotFound)
	}
	name, err := g.edgeTypes.Vocab.Translate(id)
	if err != nil {
		return "", wrapf("EdgeTypeName", err)
	}
	return name, nil
}
