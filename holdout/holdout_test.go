package holdout_test

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ranktrail/ranktrail/core"
	"github.com/ranktrail/ranktrail/holdout"
	"github.com/ranktrail/ranktrail/vocab"
)

func drainSortedRows(next core.RowIterator) []core.Row {
	var rows []core.Row
	for {
		row, ok := next()
		if !ok {
			break
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Src != rows[j].Src {
			return rows[i].Src < rows[j].Src
		}
		return rows[i].Dst < rows[j].Dst
	})
	return rows
}

func itoa(i int) string {
	digits := "0123456789"
	if i < 10 {
		return string(digits[i])
	}
	return string(digits[i/10]) + string(digits[i%10])
}

func sliceRows(rows []core.Row) core.RowIterator {
	i := 0
	return func() (core.Row, bool) {
		if i >= len(rows) {
			return core.Row{}, false
		}
		r := rows[i]
		i++
		return r, true
	}
}

func sortRows(rows []core.Row) {
	for i := 1; i < len(rows); i++ {
		for j := i; j > 0; j-- {
			a, b := rows[j-1], rows[j]
			if a.Src > b.Src || (a.Src == b.Src && a.Dst > b.Dst) {
				rows[j-1], rows[j] = rows[j], rows[j-1]
			} else {
				break
			}
		}
	}
}

// buildUndirected constructs an undirected graph over nodeCount nodes
// from an edge list of (lo,hi) pairs, emitting both directions sorted.
func buildUndirected(t *testing.T, nodeCount int, pairs [][2]int) *core.Graph {
	t.Helper()
	nv := vocab.NewNumeric()
	for i := 0; i < nodeCount; i++ {
		_, err := nv.Insert(itoa(i))
		require.NoError(t, err)
	}
	require.NoError(t, nv.BuildReverse())

	var full []core.Row
	for _, p := range pairs {
		lo, hi := p[0], p[1]
		if lo > hi {
			lo, hi = hi, lo
		}
		full = append(full, core.Row{Src: core.NodeId(lo), Dst: core.NodeId(hi)})
		full = append(full, core.Row{Src: core.NodeId(hi), Dst: core.NodeId(lo)})
	}
	sortRows(full)

	g, err := core.Build(nv, uint64(nodeCount), len(full), sliceRows(full),
		core.WithDirected(false), core.WithDirectedEdgeList(true), core.WithEdgeListIsCorrect(true),
	)
	require.NoError(t, err)
	return g
}

// pathGraph builds the canonical 4-node, 3-edge undirected path 0-1-2-3
// used by several tests below to mirror a train_size=0.5 worked example.
func pathGraph(t *testing.T) *core.Graph {
	t.Helper()
	return buildUndirected(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
}

func TestRandomEdgeHoldoutSplitsPathInHalf(t *testing.T) {
	g := pathGraph(t)
	train, test, err := holdout.RandomEdgeHoldout(g, 0.5, 7)
	require.NoError(t, err)

	// 3 logical edges, train_size=0.5 rounds to 2 train / 1 test.
	assert.Equal(t, uint64(4), train.EdgeCount())
	assert.Equal(t, uint64(2), test.EdgeCount())
}

func TestRandomEdgeHoldoutRejectsOutOfRangeSize(t *testing.T) {
	g := pathGraph(t)
	_, _, err := holdout.RandomEdgeHoldout(g, 0, 1)
	assert.Error(t, err)
	_, _, err = holdout.RandomEdgeHoldout(g, 1, 1)
	assert.Error(t, err)
}

func TestConnectedHoldoutPreservesComponentCount(t *testing.T) {
	// a 5-cycle: removing any one edge still leaves it connected, so a
	// connectivity-preserving holdout must never break the cycle apart.
	g := buildUndirected(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {0, 4}})

	train, test, err := holdout.ConnectedHoldout(g, 0.8, 3)
	require.NoError(t, err)
	assert.Greater(t, test.EdgeCount(), uint64(0))
	assert.Equal(t, g.NodeCount(), train.NodeCount())

	// Every node must still have at least one surviving train edge.
	for n := uint64(0); n < train.NodeCount(); n++ {
		assert.Greater(t, train.OutDegree(core.NodeId(n)), uint64(0), "node %d lost all edges", n)
	}
}

func TestKFoldPartitionsEdgesExhaustively(t *testing.T) {
	g := buildUndirected(t, 6, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}})
	const k = 3

	var totalTest uint64
	for i := 0; i < k; i++ {
		_, test, err := holdout.KFold(g, k, i, 11)
		require.NoError(t, err)
		totalTest += test.EdgeCount()
	}
	// 5 logical edges split into 3 folds, each direction counted once
	// per logical edge in the test graph's directed-edge-count: total
	// test edges across all folds must equal the full edge count.
	assert.Equal(t, g.EdgeCount(), totalTest)
}

func TestKFoldTestSetsPartitionEdgeSetExactly(t *testing.T) {
	g := buildUndirected(t, 6, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}})
	const k = 3

	var recombined []core.Row
	for i := 0; i < k; i++ {
		_, test, err := holdout.KFold(g, k, i, 11)
		require.NoError(t, err)
		recombined = append(recombined, drainSortedRows(test.Rows())...)
	}
	sortRows(recombined)

	want := drainSortedRows(g.Rows())
	if diff := cmp.Diff(want, recombined); diff != "" {
		t.Errorf("fold test sets do not recombine into the full edge set (-want +got):\n%s", diff)
	}
}

func TestKFoldRejectsInvalidIndex(t *testing.T) {
	g := pathGraph(t)
	_, _, err := holdout.KFold(g, 3, 3, 1)
	assert.Error(t, err)
	_, _, err = holdout.KFold(g, 3, -1, 1)
	assert.Error(t, err)
}

func buildWithNodeTypes(t *testing.T, nodeCount int, pairs [][2]int, types []string) *core.Graph {
	t.Helper()
	g := buildUndirected(t, nodeCount, pairs)
	nt := vocab.NewNodeTypes()
	for i, typeName := range types {
		require.NoError(t, nt.Assign(uint32(i), []string{typeName}))
	}
	nt.Recount()
	return g.DeriveWithNodeTypes(nt)
}

func TestNodeLabelHoldoutPartitionsWithoutChangingEdges(t *testing.T) {
	g := buildWithNodeTypes(t, 6, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}},
		[]string{"a", "a", "a", "b", "b", "b"})

	train, test, err := holdout.NodeLabelHoldout(g, 0.5, 5, false)
	require.NoError(t, err)
	assert.Equal(t, g.EdgeCount(), train.EdgeCount())
	assert.Equal(t, g.EdgeCount(), test.EdgeCount())

	trainNT, testNT := train.NodeTypes(), test.NodeTypes()
	var trainLabeled, testLabeled int
	for n := uint32(0); n < 6; n++ {
		if _, ok := trainNT.Of(n); ok {
			trainLabeled++
		}
		if _, ok := testNT.Of(n); ok {
			testLabeled++
		}
	}
	assert.Equal(t, 3, trainLabeled)
	assert.Equal(t, 3, testLabeled)
}

func TestNodeLabelHoldoutStratifiedRejectsSmallClass(t *testing.T) {
	g := buildWithNodeTypes(t, 3, [][2]int{{0, 1}, {1, 2}}, []string{"a", "a", "b"})
	_, _, err := holdout.NodeLabelHoldout(g, 0.5, 9, true)
	assert.ErrorIs(t, err, holdout.ErrSmallClass)
}

func TestNegativeSampleAvoidsExistingEdges(t *testing.T) {
	g := pathGraph(t)
	neg, err := holdout.NegativeSample(g, 2, 42)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), neg.EdgeCount())

	for eid := uint64(0); eid < neg.EdgeCount(); eid++ {
		src, dst, err := neg.Endpoints(core.EdgeId(eid))
		require.NoError(t, err)
		assert.False(t, g.HasEdge(src, dst), "sampled edge %d-%d already exists", src, dst)
	}
}

func TestNegativeSampleRejectsOddRequestWithoutSelfLoops(t *testing.T) {
	g := pathGraph(t)
	_, err := holdout.NegativeSample(g, 3, 42)
	assert.ErrorIs(t, err, holdout.ErrInvalidParameter)
}

func TestNegativeSampleRejectsOverCapacity(t *testing.T) {
	g := pathGraph(t)
	// 4 nodes, no self-loops: max ordered pairs = 4*3 - 2*3(existing) = 6.
	_, err := holdout.NegativeSample(g, 100, 42)
	assert.ErrorIs(t, err, holdout.ErrCapacityExceeded)
}

func TestRandomSubgraphRespectsRequestedSize(t *testing.T) {
	g := buildUndirected(t, 6, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}})
	sub, err := holdout.RandomSubgraph(g, 3, 5)
	require.NoError(t, err)
	assert.Equal(t, g.NodeCount(), sub.NodeCount())
	// BFS on a path keeps 3 contiguous nodes, each with an edge in the subgraph.
	assert.Equal(t, uint64(3), sub.NotSingletonNodes())
}

func TestLinkPredictionBatchesCoverAllPositives(t *testing.T) {
	g := buildUndirected(t, 6, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}})
	batches, err := holdout.LinkPredictionBatches(g, 2, 9)
	require.NoError(t, err)

	var totalPositive int
	for _, b := range batches {
		assert.LessOrEqual(t, len(b.Positive), 2)
		totalPositive += len(b.Positive)
	}
	assert.Equal(t, 5, totalPositive) // 5 logical edges in the path
}
