package spanning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ranktrail/ranktrail/core"
	"github.com/ranktrail/ranktrail/spanning"
	"github.com/ranktrail/ranktrail/vocab"
)

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
// from an edge list of (lo,hi) pairs (lo < hi), emitting both
// directions in sorted order as core.Build requires.
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

// buildUndirectedTyped is buildUndirected's edge-typed counterpart:
// triples are (lo, hi, edgeType) with lo < hi.
func buildUndirectedTyped(t *testing.T, nodeCount int, triples [][3]string) *core.Graph {
	t.Helper()
	nv := vocab.NewNumeric()
	for i := 0; i < nodeCount; i++ {
		_, err := nv.Insert(itoa(i))
		require.NoError(t, err)
	}
	require.NoError(t, nv.BuildReverse())

	var full []core.Row
	for _, tr := range triples {
		lo, hi, edgeType := tr[0], tr[1], tr[2]
		loID, ok := nv.Get(lo)
		require.True(t, ok)
		hiID, ok2 := nv.Get(hi)
		require.True(t, ok2)
		full = append(full, core.Row{Src: loID, Dst: hiID, EdgeType: edgeType})
		full = append(full, core.Row{Src: hiID, Dst: loID, EdgeType: edgeType})
	}
	sortRows(full)

	g, err := core.Build(nv, uint64(nodeCount), len(full), sliceRows(full),
		core.WithDirected(false), core.WithDirectedEdgeList(true), core.WithEdgeListIsCorrect(true),
		core.WithHasEdgeTypes(true),
	)
	require.NoError(t, err)
	return g
}

func buildDirected(t *testing.T) *core.Graph {
	t.Helper()
	nv := vocab.NewNumeric()
	for i := 0; i < 2; i++ {
		_, err := nv.Insert(itoa(i))
		require.NoError(t, err)
	}
	require.NoError(t, nv.BuildReverse())
	rows := []core.Row{{Src: 0, Dst: 1}}
	g, err := core.Build(nv, 2, len(rows), sliceRows(rows), core.WithDirected(true))
	require.NoError(t, err)
	return g
}

func TestKruskalAcceptsDirectedGraph(t *testing.T) {
	// Kruskal treats edges as undirected connectivity links even on a
	// directed graph, so a-b gives one weakly-connected component.
	g := buildDirected(t)
	res, err := spanning.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Components)
	assert.Len(t, res.TreeEdges, 1)
}

func TestKruskalConnectedGraphYieldsOneComponent(t *testing.T) {
	// a 5-cycle: 5 nodes, 5 edges, a spanning tree needs exactly 4.
	g := buildUndirected(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {0, 4}})

	res, err := spanning.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Components)
	assert.Len(t, res.TreeEdges, 4)
}

func TestKruskalDisconnectedGraphYieldsMultipleComponents(t *testing.T) {
	// two disjoint triangles: {0,1,2} and {3,4,5}.
	g := buildUndirected(t, 6, [][2]int{
		{0, 1}, {1, 2}, {0, 2},
		{3, 4}, {4, 5}, {3, 5},
	})

	res, err := spanning.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Components)
	assert.Len(t, res.TreeEdges, 4) // 2 tree edges per triangle
	assert.Equal(t, 3, res.MinComponentSize)
	assert.Equal(t, 3, res.MaxComponentSize)

	assert.Equal(t, res.Labels[0], res.Labels[1])
	assert.Equal(t, res.Labels[1], res.Labels[2])
	assert.Equal(t, res.Labels[3], res.Labels[4])
	assert.Equal(t, res.Labels[4], res.Labels[5])
	assert.NotEqual(t, res.Labels[0], res.Labels[3])
}

func TestKruskalSingletonNode(t *testing.T) {
	g := buildUndirected(t, 3, [][2]int{{0, 1}})
	res, err := spanning.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Components) // {0,1} and {2}
	assert.Len(t, res.TreeEdges, 1)
}

func TestKruskalWithUnwantedEdgeTypesAvoidsThemWhenPossible(t *testing.T) {
	// Triangle 0-1-2: (0,1) and (1,2) are "cheap", (0,2) is "expensive".
	// Natural edge-id order picks (0,1) then (0,2) for the tree, since
	// (0,2) connects the two remaining components before (1,2) is ever
	// tried. Marking "expensive" unwanted should make Kruskal prefer
	// both cheap edges instead.
	g := buildUndirectedTyped(t, 3, [][3]string{
		{"0", "1", "cheap"},
		{"1", "2", "cheap"},
		{"0", "2", "expensive"},
	})

	plain, err := spanning.Kruskal(g)
	require.NoError(t, err)
	assert.Len(t, plain.TreeEdges, 2)
	assert.True(t, treeUsesEdgeType(t, g, plain, "expensive"))

	biased, err := spanning.Kruskal(g, spanning.WithUnwantedEdgeTypes("expensive"))
	require.NoError(t, err)
	assert.Len(t, biased.TreeEdges, 2)
	assert.Equal(t, 1, biased.Components)
	assert.False(t, treeUsesEdgeType(t, g, biased, "expensive"))
}

func treeUsesEdgeType(t *testing.T, g *core.Graph, res *spanning.Result, edgeType string) bool {
	t.Helper()
	for _, eid := range res.TreeEdges {
		name, err := g.EdgeTypeName(eid)
		require.NoError(t, err)
		if name == edgeType {
			return true
		}
	}
	return false
}

func TestParallelComponentsRejectsDirectedGraph(t *testing.T) {
	g := buildDirected(t)
	_, err := spanning.ParallelComponents(g, 0)
	assert.ErrorIs(t, err, spanning.ErrDirectedGraph)
}

func TestParallelComponentsMatchesKruskalPartitioning(t *testing.T) {
	g := buildUndirected(t, 6, [][2]int{
		{0, 1}, {1, 2}, {0, 2},
		{3, 4}, {4, 5}, {3, 5},
	})

	seq, err := spanning.Kruskal(g)
	require.NoError(t, err)
	par, err := spanning.ParallelComponents(g, 4)
	require.NoError(t, err)

	assert.Equal(t, seq.Components, par.Components)
	// Label values may differ between runs, but the partitioning of
	// nodes into components must agree.
	group := func(labels []int, n int) map[int]int {
		group := make(map[int]int, n)
		for i := 0; i < n; i++ {
			group[i] = labels[i]
		}
		return group
	}
	seqGroups := group(seq.Labels, int(g.NodeCount()))
	parGroups := group(par.Labels, int(g.NodeCount()))
	for a := 0; a < int(g.NodeCount()); a++ {
		for b := 0; b < int(g.NodeCount()); b++ {
			sameSeq := seqGroups[a] == seqGroups[b]
			samePar := parGroups[a] == parGroups[b]
			assert.Equal(t, sameSeq, samePar, "node %d vs %d", a, b)
		}
	}
}
