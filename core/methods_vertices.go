// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Node-oriented queries — name translation and node-type lookup,
// routed through the vocab layer Build attaches at assembly time.

package core

// NodeName resolves a dense node id to its registered name.
//
// Complexity: O(1).
func (g *Graph) NodeName(node NodeId) (string, error) {
	name, err := g.nodeVocab.Translate(node)
	if err != nil {
		return "", wrapf("NodeName", err)
	}
	return name, nil
}

// NodeID resolves a node name to its dense id.
//
// Complexity: O(1).
func (g *Graph) NodeID(name string) (NodeId, error) {
	id, ok := g.nodeVocab.Get(name)
	if !ok {
		return 0, wrapf("NodeID", ErrNotFound)
	}
	return id, nil
}

// NodeTypeIDs returns the sorted, duplicate-free type-id list for node,
// or (nil, false) if node has no type assignment or this graph carries
// no node types.
//
// Complexity: O(1).
func (g *Graph) NodeTypeIDs(node NodeId) ([]NodeTypeId, bool) {
	if g.nodeTypes == nil {
		return nil, false
	}
	return g.nodeTypes.Of(node)
}

// SameNodeType reports whether a and b carry identical type-label sets.
// Two graphs with HasNodeTypes()==false compare every pair equal (both
// "unknown").
//
// Complexity: O(k) where k is the smaller node's label count.
func (g *Graph) SameNodeType(a, b NodeId) bool {
	if g.nodeTypes == nil {
		return true
	}
	return g.nodeTypes.SameType(a, b)
}

// HasNodeTypes reports whether this Graph carries a node-type layer.
//
// Complexity: O(1).
func (g *Graph) HasNodeTypes() bool { return g.nodeTypes != nil }
