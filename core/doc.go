// SPDX-License-Identifier: MIT
//
// Package core assembles and serves the engine's central data structure: a
// directed or undirected, optionally weighted, optionally multi-labeled
// Graph backed by a succinct edgestore.Store and a pair of
// vocab.Vocabulary/vocab.NodeTypes/vocab.EdgeTypes layers.
//
// What:
//
//   - Build assembles a Graph from a pre-sorted row iterator, enforcing
//     the ordering/duplicate/weight-balance invariants a raw edge list
//     must satisfy before it can be pushed into a monotone sequence.
//   - Graph exposes read-only queries once built — edge lookup, neighbor
//     iteration, degree, edge-type/weight accessors — every one of them
//     routed through edgestore.Store.Rank/Select rather than any
//     adjacency map.
//   - A built Graph is immutable for its lifetime: every query is safe
//     under unlimited concurrent readers without locking, except the
//     lazily-derived report cache (view.go), which is the only mutable
//     field and is guarded by its own RWMutex, invalidated on no
//     operation (there is none — Graph never mutates after Build) and
//     populated lazily on first Report() call.
//
// Why:
//
//   - Random walks, spanning-tree/components, and holdout construction all
//     read the same Graph concurrently from many goroutines; immutability
//     after Build is what makes that safe without per-query lock
//     contention, trading the old mutable adjacency-list design for a
//     build-once/read-many one.
//
// Configuration (AssemblyOption / AssemblyConfig):
//
//   - WithDirected, WithDirectedEdgeList, WithIgnoreDuplicates,
//     WithHasEdgeTypes, WithHasWeights — see assembly.go.
//
// Errors:
//
//	ErrUnsortedInput        – a row arrived out of lexicographic order
//	ErrDuplicateEdge        – duplicate (src,dst,edge_type) without the ignore flag
//	ErrWeightMismatch       – weight-column presence mismatch, or a
//	                          non-finite/non-positive weight
//	ErrUnbalancedUndirected – untrusted undirected input missing/mismatching
//	                          the reverse edge
//	ErrNotFound             – edge/node/type lookup miss
//	ErrCapacityExceeded     – declared edge/node capacity exceeded
//	ErrNotApplicable        – operation invoked on an unsupported graph shape
package core
