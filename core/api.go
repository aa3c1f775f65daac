// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, read-only getter facade over the immutable Graph. No
// algorithms live here — assembly is in assembly.go, neighbor/edge
// queries are in methods_adjacent.go and methods_edges.go.

package core

import "github.com/ranktrail/ranktrail/vocab"

// Directed reports whether this Graph's edges are directed.
//
// Complexity: O(1).
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether this Graph carries a weight per edge.
//
// Complexity: O(1).
func (g *Graph) Weighted() bool { return g.hasWeights }

// HasEdgeTypes reports whether this Graph carries an edge-type per edge.
//
// Complexity: O(1).
func (g *Graph) HasEdgeTypes() bool { return g.edgeTypes != nil }

// NodeCount returns the number of distinct nodes in the vocabulary.
//
// Complexity: O(1).
func (g *Graph) NodeCount() uint64 { return g.nodeCount }

// EdgeCount returns the number of directed edge slots stored (for an
// undirected graph this counts both directions of every logical edge).
//
// Complexity: O(1).
func (g *Graph) EdgeCount() uint64 { return uint64(g.edges.Len()) }

// SelfLoopEdges returns the number of stored self-loop edges.
//
// Complexity: O(1).
func (g *Graph) SelfLoopEdges() uint64 { return g.selfLoopEdges }

// UniqueEdges returns the number of distinct (src,dst) pairs, ignoring
// edge-type multiplicity.
//
// Complexity: O(1).
func (g *Graph) UniqueEdges() uint64 { return g.uniqueEdges }

// NotSingletonNodes returns the number of nodes incident to at least one
// non-self-loop edge.
//
// Complexity: O(1).
func (g *Graph) NotSingletonNodes() uint64 { return g.notSingletonNodes }

// SingletonWithSelfloopNodes returns the number of nodes whose only
// incident edges are self-loops.
//
// Complexity: O(1).
func (g *Graph) SingletonWithSelfloopNodes() uint64 { return g.singletonWithSelfloopNodes }

// SingletonOnlyNodes returns the number of nodes incident to no edge at
// all.
//
// Invariant (spec §3.4): NotSingletonNodes + SingletonOnlyNodes +
// SingletonWithSelfloopNodes == NodeCount.
//
// Complexity: O(1).
func (g *Graph) SingletonOnlyNodes() uint64 {
	return g.nodeCount - g.notSingletonNodes - g.singletonWithSelfloopNodes
}

// NodeVocab exposes the underlying node vocabulary for name<->id
// translation.
func (g *Graph) NodeVocab() *vocab.Vocabulary { return g.nodeVocab }

// NodeTypes exposes the node-type assignment layer, or nil if the graph
// was built without node types.
func (g *Graph) NodeTypes() *vocab.NodeTypes { return g.nodeTypes }

// EdgeTypes exposes the edge-type assignment layer, or nil if the graph
// was built without edge types.
func (g *Graph) EdgeTypes() *vocab.EdgeTypes { return g.edgeTypes }
