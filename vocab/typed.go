package vocab

import "sort"

// TypeID is the dense integer id of a node or edge type name, minted by an
// embedded Vocabulary.
type TypeID = uint16

// unknownCount/perTypeCount bookkeeping is shared between the node and edge
// variants below; the shapes differ (nodes: sorted multi-label lists, edges:
// at most one label) so they are not unified behind an interface — the
// teacher's methods_vertices.go / methods_edges.go split the same way.

// NodeTypes tracks, for every node, either "unknown" (no entry) or a
// sorted, duplicate-free list of TypeIDs, plus per-type and unknown counts.
// Multilabel is set iff any node ever carried more than one type.
type NodeTypes struct {
	Vocab *Vocabulary

	assignments map[uint32][]TypeID
	counts      map[TypeID]uint64
	unknown     uint64
	multilabel  bool
}

// NewNodeTypes returns an empty NodeTypes layer backed by a fresh, assigned-
// mode Vocabulary of type names.
func NewNodeTypes() *NodeTypes {
	return &NodeTypes{
		Vocab:       New(),
		assignments: make(map[uint32][]TypeID),
		counts:      make(map[TypeID]uint64),
	}
}

// Assign records the (possibly empty) set of type names for node. An empty,
// non-nil slice is an error (use Assign with nil, or don't call Assign, to
// mean "unknown"); duplicate type names within the same node are rejected.
// The stored list is sorted by TypeID.
//
// Complexity: O(k log k) for a node with k type names.
func (nt *NodeTypes) Assign(node uint32, typeNames []string) error {
	if typeNames == nil {
		nt.unknown++
		return nil
	}
	if len(typeNames) == 0 {
		return wrapf("Assign", ErrEmptyName)
	}

	ids := make([]TypeID, 0, len(typeNames))
	for _, name := range typeNames {
		id, err := nt.Vocab.Insert(name)
		if err != nil {
			return wrapf("Assign", err)
		}
		ids = append(ids, TypeID(id))
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for i := 1; i < len(ids); i++ {
		if ids[i] == ids[i-1] {
			return wrapf("Assign", ErrReverseCollision)
		}
	}

	nt.assignments[node] = ids
	if len(ids) > 1 {
		nt.multilabel = true
	}
	return nil
}

// Of returns the sorted TypeID list for node, or (nil, false) if unknown.
func (nt *NodeTypes) Of(node uint32) ([]TypeID, bool) {
	ids, ok := nt.assignments[node]
	return ids, ok
}

// Multilabel reports whether any node carries more than one type.
func (nt *NodeTypes) Multilabel() bool { return nt.multilabel }

// Unknown returns the count of nodes with no type assignment.
func (nt *NodeTypes) Unknown() uint64 { return nt.unknown }

// Recount rebuilds per-type counts from the current assignments. Call once
// after the owning vocabulary has been frozen with BuildReverse, per
// spec §4.2 ("per-type counts are recomputed after the vocabulary is
// frozen").
//
// Complexity: O(total type labels across all nodes).
func (nt *NodeTypes) Recount() {
	counts := make(map[TypeID]uint64, len(nt.counts))
	for _, ids := range nt.assignments {
		for _, id := range ids {
			counts[id]++
		}
	}
	nt.counts = counts
}

// CountOf returns how many nodes carry typeID (after Recount).
func (nt *NodeTypes) CountOf(typeID TypeID) uint64 { return nt.counts[typeID] }

// SameType reports whether a and b carry identical type-label sets,
// comparing as sorted lists per spec §4.6 step 3 ("multi-label node types
// compare as sorted lists"). Two unknown nodes compare equal.
func (nt *NodeTypes) SameType(a, b uint32) bool {
	la, oka := nt.assignments[a]
	lb, okb := nt.assignments[b]
	if oka != okb {
		return false
	}
	if len(la) != len(lb) {
		return false
	}
	for i := range la {
		if la[i] != lb[i] {
			return false
		}
	}
	return true
}

// Filtered returns a new NodeTypes sharing nt's type-name Vocab by
// reference (type ids stay stable across the copy) but carrying an
// assignment only for nodes where keep returns true; every other node
// is unknown in the result. Used by label holdouts to produce a
// train/test pair of Graphs with identical structure but labels nulled
// out in the complementary partition.
//
// Complexity: O(total type labels across kept nodes).
func (nt *NodeTypes) Filtered(keep func(node uint32) bool) *NodeTypes {
	out := &NodeTypes{
		Vocab:       nt.Vocab,
		assignments: make(map[uint32][]TypeID),
		counts:      make(map[TypeID]uint64),
		unknown:     nt.unknown,
	}
	for node, ids := range nt.assignments {
		if !keep(node) {
			out.unknown++
			continue
		}
		cp := make([]TypeID, len(ids))
		copy(cp, ids)
		out.assignments[node] = cp
		if len(cp) > 1 {
			out.multilabel = true
		}
	}
	out.Recount()
	return out
}

// EdgeTypes tracks, for every directed edge slot (by EdgeId), either
// "unknown" (no entry) or exactly one TypeID, plus per-type and unknown
// counts.
type EdgeTypes struct {
	Vocab *Vocabulary

	byEdge  map[uint64]TypeID
	counts  map[TypeID]uint64
	unknown uint64
}

// NewEdgeTypes returns an empty EdgeTypes layer backed by a fresh, assigned-
// mode Vocabulary of type names.
func NewEdgeTypes() *EdgeTypes {
	return &EdgeTypes{
		Vocab:  New(),
		byEdge: make(map[uint64]TypeID),
		counts: make(map[TypeID]uint64),
	}
}

// Assign records the type name for edgeID, or marks it unknown if typeName
// is empty.
func (et *EdgeTypes) Assign(edgeID uint64, typeName string) error {
	if typeName == "" {
		et.unknown++
		return nil
	}
	id, err := et.Vocab.Insert(typeName)
	if err != nil {
		return wrapf("Assign", err)
	}
	et.byEdge[edgeID] = TypeID(id)
	return nil
}

// Of returns the TypeID for edgeID, or (0, false) if unknown.
func (et *EdgeTypes) Of(edgeID uint64) (TypeID, bool) {
	id, ok := et.byEdge[edgeID]
	return id, ok
}

// Unknown returns the count of edges with no type assignment.
func (et *EdgeTypes) Unknown() uint64 { return et.unknown }

// Recount rebuilds per-type edge counts from the current assignments.
func (et *EdgeTypes) Recount() {
	counts := make(map[TypeID]uint64, len(et.counts))
	for _, id := range et.byEdge {
		counts[id]++
	}
	et.counts = counts
}

// CountOf returns how many edges carry typeID (after Recount).
func (et *EdgeTypes) CountOf(typeID TypeID) uint64 { return et.counts[typeID] }

// Filtered returns a new EdgeTypes sharing et's type-name Vocab by
// reference but carrying an assignment only for edges where keep
// returns true; every other edge is unknown in the result. The edge
// label counterpart to NodeTypes.Filtered.
//
// Complexity: O(total typed edges).
func (et *EdgeTypes) Filtered(keep func(edgeID uint64) bool) *EdgeTypes {
	out := &EdgeTypes{
		Vocab:   et.Vocab,
		byEdge:  make(map[uint64]TypeID),
		counts:  make(map[TypeID]uint64),
		unknown: et.unknown,
	}
	for edgeID, id := range et.byEdge {
		if !keep(edgeID) {
			out.unknown++
			continue
		}
		out.byEdge[edgeID] = id
	}
	out.Recount()
	return out
}
