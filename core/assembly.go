// SPDX-License-Identifier: MIT
//
// File: assembly.go
// Role: C4 graph assembly — consumes a pre-sorted row iterator and
// constructs the succinct edge store plus parallel weight/edge-type
// arrays, enforcing the ordering/duplicate/weight-balance invariants
// spec §4.4 requires.

package core

import (
	"log/slog"
	"math"
	"math/bits"

	"github.com/google/uuid"

	"github.com/ranktrail/ranktrail/edgestore"
	"github.com/ranktrail/ranktrail/vocab"
)

// Row is one directed edge slot as handed to Build, already resolved to
// dense node ids by an upstream vocab.Vocabulary (the external edge
// reader's job, per spec §6) and already in the lexicographic
// (Src,Dst,EdgeType) order Build requires.
type Row struct {
	Src, Dst  NodeId
	EdgeType  string // "" means unknown/untyped
	Weight    float32
	HasWeight bool
}

// RowIterator is a lazy, finite, single-pass sequence of Rows — the
// callback-style iterator convention this codebase uses throughout
// (edgestore.Iterator is its counterpart over raw codes).
type RowIterator func() (Row, bool)

// AssemblyConfig holds the scalar flags Build needs. Construct it with
// zero value plus AssemblyOptions, mirroring the builder package's
// functional-options convention.
type AssemblyConfig struct {
	Directed          bool
	DirectedEdgeList  bool // both directions already present in the row stream
	IgnoreDuplicates  bool
	EdgeListIsCorrect bool // trusted: skip the expensive undirected-balance check
	HasEdgeTypes      bool
	HasWeights        bool
	NodeTypes         *vocab.NodeTypes
	Logger            *slog.Logger
}

// AssemblyOption mutates an AssemblyConfig before Build runs.
type AssemblyOption func(*AssemblyConfig)

func WithDirected(v bool) AssemblyOption         { return func(c *AssemblyConfig) { c.Directed = v } }
func WithDirectedEdgeList(v bool) AssemblyOption { return func(c *AssemblyConfig) { c.DirectedEdgeList = v } }
func WithIgnoreDuplicates(v bool) AssemblyOption {
	return func(c *AssemblyConfig) { c.IgnoreDuplicates = v }
}
func WithEdgeListIsCorrect(v bool) AssemblyOption {
	return func(c *AssemblyConfig) { c.EdgeListIsCorrect = v }
}
func WithHasEdgeTypes(v bool) AssemblyOption { return func(c *AssemblyConfig) { c.HasEdgeTypes = v } }
func WithHasWeights(v bool) AssemblyOption   { return func(c *AssemblyConfig) { c.HasWeights = v } }
func WithNodeTypes(nt *vocab.NodeTypes) AssemblyOption {
	return func(c *AssemblyConfig) { c.NodeTypes = nt }
}
func WithLogger(l *slog.Logger) AssemblyOption {
	return func(c *AssemblyConfig) { c.Logger = l }
}

// nodeBitsFor returns ceil(log2(nodeCount+1)), the width spec §3 assigns
// to each half of a packed (src,dst) code.
func nodeBitsFor(nodeCount uint64) uint {
	if nodeCount == 0 {
		return 1
	}
	return uint(bits.Len64(nodeCount))
}

// Build assembles a Graph from rows, which must already be sorted
// lexicographically by (Src,Dst,EdgeType) and must reference node ids
// already resolved against nodeVocab (frozen via vocab.Vocabulary.BuildReverse
// before calling Build — node-id resolution is the external reader's
// concern, per spec §6, not this function's).
//
// edgeCount is the exact number of rows Build will see (after duplicate
// collapsing if IgnoreDuplicates is set, callers should still pass the
// pre-collapse upper bound; Build allocates to it and does not grow).
//
// Complexity: O(E) single pass plus O(E) for the edge store's Finish.
func Build(nodeVocab *vocab.Vocabulary, nodeCount uint64, edgeCount int, rows RowIterator, opts ...AssemblyOption) (*Graph, error) {
	cfg := AssemblyConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	nodeBits := nodeBitsFor(nodeCount)
	dstMask := (uint64(1) << nodeBits) - 1
	upperBound := (nodeCount << nodeBits) | nodeCount

	store := edgestore.New(upperBound, edgeCount)

	instanceID := uuid.New()
	g := &Graph{
		InstanceID:        instanceID,
		nodeVocab:         nodeVocab,
		nodeTypes:         cfg.NodeTypes,
		edges:             store,
		nodeBits:          nodeBits,
		dstMask:           dstMask,
		hasWeights:        cfg.HasWeights,
		directed:          cfg.Directed,
		nodeCount:         nodeCount,
		firstEdgeOfSource: make(map[NodeId]int),
		log:               log.With("graph_instance", instanceID.String()),
	}
	if cfg.HasWeights {
		g.weights = make([]Weight, 0, edgeCount)
	}
	if cfg.HasEdgeTypes {
		g.edgeTypes = vocab.NewEdgeTypes()
	}

	hasAnyEdge := make([]bool, nodeCount)
	hasNonLoopEdge := make([]bool, nodeCount)

	var (
		havePrev              bool
		prevSrc, prevDst      NodeId
		prevEdgeType          string
		lastDistinctSrc       NodeId
		lastDistinctDst       NodeId
		haveDistinct          bool
		forwardWeights        map[[3]uint64]float32 // (src,dst,edgeTypeID-ish) -> weight, untrusted undirected check
		checkUndirectedBalance = !cfg.Directed && cfg.DirectedEdgeList && !cfg.EdgeListIsCorrect
	)
	if checkUndirectedBalance {
		forwardWeights = make(map[[3]uint64]float32)
	}

	idx := 0
	for {
		row, ok := rows()
		if !ok {
			break
		}
		if idx >= edgeCount {
			return nil, wrapf("Build", ErrCapacityExceeded)
		}

		if havePrev {
			cmp := compareRows(prevSrc, prevDst, prevEdgeType, row.Src, row.Dst, row.EdgeType)
			switch {
			case cmp > 0:
				return nil, wrapf("Build", ErrUnsortedInput)
			case cmp == 0:
				if !cfg.IgnoreDuplicates {
					return nil, wrapf("Build", ErrDuplicateEdge)
				}
				idx++ // duplicate consumed from the declared capacity, row dropped
				continue
			}
		}

		if row.HasWeight != cfg.HasWeights {
			return nil, wrapf("Build", ErrWeightMismatch)
		}
		if cfg.HasWeights {
			if !validWeight(row.Weight) {
				return nil, wrapf("Build", ErrWeightMismatch)
			}
		}

		if checkUndirectedBalance {
			key := [3]uint64{uint64(row.Src), uint64(row.Dst), typeKey(row.EdgeType)}
			if row.Src < row.Dst {
				forwardWeights[key] = row.Weight
			} else if row.Src > row.Dst {
				revKey := [3]uint64{uint64(row.Dst), uint64(row.Src), typeKey(row.EdgeType)}
				fw, present := forwardWeights[revKey]
				if !present || absf32(fw-row.Weight) > float32Epsilon {
					return nil, wrapf("Build", ErrUnbalancedUndirected)
				}
				delete(forwardWeights, revKey)
			}
		}

		edgeID := uint64(store.Len()) // position in the store; dropped duplicates take none
		code := g.code(row.Src, row.Dst)
		if err := store.Push(code); err != nil {
			return nil, wrapf("Build", err)
		}

		if cfg.HasWeights {
			g.weights = append(g.weights, row.Weight)
		}
		if cfg.HasEdgeTypes {
			if err := g.edgeTypes.Assign(edgeID, row.EdgeType); err != nil {
				return nil, wrapf("Build", err)
			}
		}

		if row.Src == row.Dst {
			g.selfLoopEdges++
			hasAnyEdge[row.Src] = true
		} else {
			hasAnyEdge[row.Src] = true
			hasAnyEdge[row.Dst] = true
			hasNonLoopEdge[row.Src] = true
			hasNonLoopEdge[row.Dst] = true
		}

		if !haveDistinct || lastDistinctSrc != row.Src || lastDistinctDst != row.Dst {
			g.uniqueEdges++
			lastDistinctSrc, lastDistinctDst = row.Src, row.Dst
			haveDistinct = true
		}

		if _, seen := g.firstEdgeOfSource[row.Src]; !seen {
			g.firstEdgeOfSource[row.Src] = int(edgeID)
		}

		prevSrc, prevDst, prevEdgeType = row.Src, row.Dst, row.EdgeType
		havePrev = true
		idx++
	}

	if idx != edgeCount {
		return nil, wrapf("Build", ErrCapacityExceeded)
	}
	if err := store.Finish(); err != nil {
		return nil, wrapf("Build", err)
	}
	if cfg.HasEdgeTypes {
		if err := g.edgeTypes.Vocab.BuildReverse(); err != nil {
			return nil, wrapf("Build", err)
		}
		g.edgeTypes.Recount()
	}

	g.singletonWithSelfloop = make(map[NodeId]struct{})
	var singletonOnly uint64
	for n := uint64(0); n < nodeCount; n++ {
		switch {
		case hasNonLoopEdge[n]:
			g.notSingletonNodes++
		case hasAnyEdge[n]:
			g.singletonWithSelfloopNodes++
			g.singletonWithSelfloop[NodeId(n)] = struct{}{}
		default:
			singletonOnly++
		}
	}
	if singletonOnly > 0 {
		g.nodeHasEdge = hasAnyEdge
	}

	log.Info("graph assembled",
		"instance", g.InstanceID.String(),
		"nodes", nodeCount,
		"edges", g.edges.Len(),
		"self_loops", g.selfLoopEdges,
	)

	return g, nil
}

func compareRows(aSrc, aDst NodeId, aType string, bSrc, bDst NodeId, bType string) int {
	if aSrc != bSrc {
		if aSrc < bSrc {
			return -1
		}
		return 1
	}
	if aDst != bDst {
		if aDst < bDst {
			return -1
		}
		return 1
	}
	if aType == bType {
		return 0
	}
	if aType < bType {
		return -1
	}
	return 1
}

func validWeight(w float32) bool {
	return !math.IsNaN(float64(w)) && !math.IsInf(float64(w), 0) && w > 0
}

func absf32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// typeKey folds an edge-type string into a stable numeric key for the
// undirected-balance verification map; edge types are compared by their
// raw string identity, not by vocabulary id (which may not exist yet at
// this point in assembly).
func typeKey(s string) uint64 {
	var h uint64 = 1469598103934665603 // FNV-1a offset basis
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= 1099511628211
	}
	return h
}
