// SPDX-License-Identifier: MIT
package core

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	lru "github.com/golang/groupcache/lru"
	"github.com/google/uuid"

	"github.com/ranktrail/ranktrail/edgestore"
	"github.com/ranktrail/ranktrail/vocab"
)

// Sentinel errors for core graph assembly and queries.
var (
	// ErrUnsortedInput indicates a row arrived out of the required
	// lexicographic (src,dst,edge_type) order.
	ErrUnsortedInput = errors.New("core: edge rows are not sorted")

	// ErrDuplicateEdge indicates a row repeats the immediately preceding
	// (src,dst,edge_type) tuple and IgnoreDuplicates is false.
	ErrDuplicateEdge = errors.New("core: duplicate edge without ignore-duplicates")

	// ErrWeightMismatch indicates a weight column was present when
	// HasWeights is false (or vice versa), or a non-finite/non-positive
	// weight was supplied.
	ErrWeightMismatch = errors.New("core: weight column mismatch or invalid weight")

	// ErrUnbalancedUndirected indicates an untrusted undirected edge list
	// is missing the reverse direction, or the reverse direction's weight
	// does not match within tolerance.
	ErrUnbalancedUndirected = errors.New("core: undirected edge is not balanced by its reverse")

	// ErrNotFound indicates an edge/node/type lookup missed.
	ErrNotFound = errors.New("core: not found")

	// ErrCapacityExceeded indicates the declared edge or node capacity was
	// exceeded during assembly.
	ErrCapacityExceeded = errors.New("core: declared capacity exceeded")

	// ErrNotApplicable indicates an operation was invoked on a graph shape
	// it does not support.
	ErrNotApplicable = errors.New("core: operation not applicable to this graph")
)

func wrapf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

// NodeId indexes the node vocabulary.
type NodeId = uint32

// EdgeId indexes the edge store's monotone sequence.
type EdgeId = uint64

// NodeTypeId / EdgeTypeId index the respective type vocabularies.
type NodeTypeId = vocab.TypeID
type EdgeTypeId = vocab.TypeID

// Weight is an edge weight: required strictly positive and finite when
// present.
type Weight = float32

// float32Epsilon is the literal tolerance the original implementation uses
// to reject unbalanced undirected edge weights. It is extremely tight for
// real-world data; we preserve it verbatim rather than loosen it to a
// relative tolerance, per the corpus-level audit spec.md asks for before
// any such change.
const float32Epsilon = 1.1920929e-7

// Graph is the core in-memory data structure: vocabularies, a succinct
// edge store, and optional parallel weight/edge-type arrays. It is built
// once by Build and thereafter immutable — the only mutable field is the
// lazily-derived report cache (view.go).
type Graph struct {
	InstanceID uuid.UUID // stamped at Build time; threaded through slog fields for log correlation

	nodeVocab *vocab.Vocabulary
	nodeTypes *vocab.NodeTypes
	edgeTypes *vocab.EdgeTypes

	edges    *edgestore.Store
	nodeBits uint
	dstMask  uint64

	weights    []Weight // nil if unweighted
	hasWeights bool
	directed   bool

	nodeCount uint64

	selfLoopEdges              uint64
	uniqueEdges                uint64
	notSingletonNodes          uint64
	singletonWithSelfloopNodes uint64
	singletonWithSelfloop      map[NodeId]struct{} // sparse set, small by construction
	nodeHasEdge                []bool              // nil when there are no edge-less singletons

	// firstEdgeOfSource[src] = index of the first edge whose source is
	// src, for sources with at least one outgoing edge.
	firstEdgeOfSource map[NodeId]int

	hotCache *lru.Cache // optional per-hot-node destination cache, see cache.go

	reportMu    sync.RWMutex
	reportCache []byte // jsoniter-encoded snapshot; nil until first Report() call

	log *slog.Logger
}

// code packs (src,dst) into the single integer the edge store holds.
func (g *Graph) code(src, dst NodeId) uint64 {
	return (uint64(src) << g.nodeBits) | uint64(dst)
}

// decode unpacks a stored code back into (src,dst).
func (g *Graph) decode(c uint64) (NodeId, NodeId) {
	return NodeId(c >> g.nodeBits), NodeId(c & g.dstMask)
}

func (g *Graph) isSingletonWithSelfloop(n NodeId) bool {
	_, ok := g.singletonWithSelfloop[n]
	return ok
}
