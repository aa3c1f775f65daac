// SPDX-License-Identifier: MIT
//
// File: labels.go
// Role: Node/edge label holdouts — both graphs keep identical edge
// structure and weights; only the label layer differs, each graph
// revealing its partition's labels and nulling the rest.

package holdout

import (
	"math"
	"sort"

	"github.com/ranktrail/ranktrail/core"
	"github.com/ranktrail/ranktrail/vocab"
)

// NodeLabelHoldout partitions g's node-type labels into a train/test
// pair of Graphs sharing identical edges and weights. When stratify is
// true, the split is taken within each label class separately (and
// fails if the graph is multilabel or any class has fewer than two
// members); otherwise it shuffles every labeled node together.
func NodeLabelHoldout(g *core.Graph, trainSize float64, seed int64, stratify bool) (train, test *core.Graph, err error) {
	if trainSize <= 0 || trainSize >= 1 {
		return nil, nil, wrapf("NodeLabelHoldout", ErrInvalidParameter)
	}
	nt := g.NodeTypes()
	if nt == nil {
		return nil, nil, wrapf("NodeLabelHoldout", ErrNotApplicable)
	}
	if stratify && nt.Multilabel() {
		return nil, nil, wrapf("NodeLabelHoldout", ErrMultilabel)
	}

	var labeled []uint32
	for n := uint64(0); n < g.NodeCount(); n++ {
		if _, ok := nt.Of(uint32(n)); ok {
			labeled = append(labeled, uint32(n))
		}
	}
	if len(labeled) == 0 {
		return nil, nil, wrapf("NodeLabelHoldout", ErrEmptyGraph)
	}

	var trainNodes, testNodes []uint32
	if stratify {
		trainNodes, testNodes, err = stratifiedSplit(labeled, trainSize, seed, func(node uint32) vocab.TypeID {
			ids, _ := nt.Of(node)
			return ids[0]
		})
		if err != nil {
			return nil, nil, wrapf("NodeLabelHoldout", err)
		}
	} else {
		trainNodes, testNodes = plainSplit(labeled, trainSize, seed)
	}

	trainSet := toNodeSet(trainNodes)
	testSet := toNodeSet(testNodes)
	trainNT := nt.Filtered(func(node uint32) bool { return trainSet[node] })
	testNT := nt.Filtered(func(node uint32) bool { return testSet[node] })

	return g.DeriveWithNodeTypes(trainNT), g.DeriveWithNodeTypes(testNT), nil
}

// EdgeLabelHoldout is NodeLabelHoldout's edge-type counterpart.
func EdgeLabelHoldout(g *core.Graph, trainSize float64, seed int64, stratify bool) (train, test *core.Graph, err error) {
	if trainSize <= 0 || trainSize >= 1 {
		return nil, nil, wrapf("EdgeLabelHoldout", ErrInvalidParameter)
	}
	et := g.EdgeTypes()
	if et == nil {
		return nil, nil, wrapf("EdgeLabelHoldout", ErrNotApplicable)
	}
	// EdgeTypes carries at most one label per edge by construction
	// (vocab.EdgeTypes.Assign takes a single type name), so it is never
	// multilabel; stratification is always permitted here.

	// Edge ids are narrowed to uint32 here, same as node ids elsewhere in
	// this package; an in-memory graph with more than 2^32 edges is out
	// of this engine's reach regardless (edgestore.Store is sized off
	// nodeCount<<nodeBits, itself bounded well under that).
	var labeled []uint32
	for eid := uint64(0); eid < g.EdgeCount(); eid++ {
		if _, ok := et.Of(eid); ok {
			labeled = append(labeled, uint32(eid))
		}
	}
	if len(labeled) == 0 {
		return nil, nil, wrapf("EdgeLabelHoldout", ErrEmptyGraph)
	}

	var trainEdges, testEdges []uint32
	if stratify {
		trainEdges, testEdges, err = stratifiedSplit(labeled, trainSize, seed, func(eid uint32) vocab.TypeID {
			id, _ := et.Of(uint64(eid))
			return id
		})
		if err != nil {
			return nil, nil, wrapf("EdgeLabelHoldout", err)
		}
	} else {
		trainEdges, testEdges = plainSplit(labeled, trainSize, seed)
	}

	trainSet := toNodeSet(trainEdges)
	testSet := toNodeSet(testEdges)
	trainET := et.Filtered(func(eid uint64) bool { return trainSet[uint32(eid)] })
	testET := et.Filtered(func(eid uint64) bool { return testSet[uint32(eid)] })

	return g.DeriveWithEdgeTypes(trainET), g.DeriveWithEdgeTypes(testET), nil
}

func toNodeSet(ids []uint32) map[uint32]bool {
	set := make(map[uint32]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// plainSplit shuffles items once and cuts at trainSize.
func plainSplit(items []uint32, trainSize float64, seed int64) (train, test []uint32) {
	cp := make([]uint32, len(items))
	copy(cp, items)
	shuffleNodesInPlace(cp, rngFromSeed(seed))
	cut := int(math.Round(trainSize * float64(len(cp))))
	return cp[:cut], cp[cut:]
}

// stratifiedSplit partitions items into classes via classOf, shuffles
// and cuts within each class with an independently-derived seed, and
// concatenates the per-class train/test slices. Classes are visited in
// ascending TypeID order so the result is reproducible regardless of
// map iteration order.
func stratifiedSplit(items []uint32, trainSize float64, seed int64, classOf func(uint32) vocab.TypeID) (train, test []uint32, err error) {
	classes := make(map[vocab.TypeID][]uint32)
	for _, item := range items {
		c := classOf(item)
		classes[c] = append(classes[c], item)
	}

	keys := make([]vocab.TypeID, 0, len(classes))
	for c := range classes {
		keys = append(keys, c)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for _, c := range keys {
		members := classes[c]
		if len(members) < 2 {
			return nil, nil, ErrSmallClass
		}
		cp := make([]uint32, len(members))
		copy(cp, members)
		classSeed := deriveSeed(seed, uint64(c))
		shuffleNodesInPlace(cp, rngFromSeed(classSeed))
		cut := int(math.Round(trainSize * float64(len(cp))))
		train = append(train, cp[:cut]...)
		test = append(test, cp[cut:]...)
	}
	return train, test, nil
}
