package walk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ranktrail/ranktrail/core"
	"github.com/ranktrail/ranktrail/vocab"
	"github.com/ranktrail/ranktrail/walk"
)

// buildUndirectedCycle builds an undirected 5-cycle 0-1-2-3-4-0 so every
// node has degree 2 and no node is a singleton or trap.
func buildUndirectedCycle(t *testing.T) *core.Graph {
	t.Helper()
	nv := vocab.NewNumeric()
	for i := 0; i < 5; i++ {
		_, err := nv.Insert(itoa(i))
		require.NoError(t, err)
	}
	require.NoError(t, nv.BuildReverse())

	type pair struct{ a, b int }
	undirected := []pair{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {0, 4}}
	var rows []core.Row
	for _, p := range undirected {
		lo, hi := p.a, p.b
		if lo > hi {
			lo, hi = hi, lo
		}
		rows = append(rows, core.Row{Src: core.NodeId(lo), Dst: core.NodeId(hi)})
	}
	// Build requires full lexicographic order across both directions too.
	var full []core.Row
	for _, r := range rows {
		full = append(full, core.Row{Src: r.Src, Dst: r.Dst})
	}
	for _, r := range rows {
		full = append(full, core.Row{Src: r.Dst, Dst: r.Src})
	}
	sortRows(full)

	g, err := core.Build(nv, 5, len(full), sliceRows(full),
		core.WithDirected(false), core.WithDirectedEdgeList(true), core.WithEdgeListIsCorrect(true),
	)
	require.NoError(t, err)
	return g
}

func TestWalkStaysWithinLength(t *testing.T) {
	g := buildUndirectedCycle(t)
	s, err := walk.New(g, walk.WithWalkLength(10), walk.WithNumWalks(1), walk.WithSeed(7))
	require.NoError(t, err)

	w := s.Walk(0, 0)
	assert.LessOrEqual(t, len(w), 10)
	assert.Equal(t, core.NodeId(0), w[0])
}

func TestWalkIsReproducibleForFixedSeed(t *testing.T) {
	g := buildUndirectedCycle(t)
	s, err := walk.New(g, walk.WithWalkLength(10), walk.WithSeed(123))
	require.NoError(t, err)

	a := s.Walk(2, 3)
	b := s.Walk(2, 3)
	assert.Equal(t, a, b)
}

func TestWalkRejectsDirectedGraph(t *testing.T) {
	nv, ids := newVocabForDirected(t)
	rows := []core.Row{{Src: ids["a"], Dst: ids["b"]}}
	g, err := core.Build(nv, 2, len(rows), sliceRows(rows), core.WithDirected(true))
	require.NoError(t, err)

	_, err = walk.New(g)
	assert.ErrorIs(t, err, walk.ErrDirectedWalk)
}

func TestWalkAllCoversEveryNode(t *testing.T) {
	g := buildUndirectedCycle(t)
	s, err := walk.New(g, walk.WithWalkLength(5), walk.WithNumWalks(2), walk.WithParallelism(4))
	require.NoError(t, err)

	walks := s.WalkAll()
	assert.Equal(t, int(g.NodeCount())*2, len(walks))
}

func TestCooccurrenceMatrixIsSymmetric(t *testing.T) {
	walks := [][]core.NodeId{{0, 1, 2}}
	pairs := walk.CooccurrenceMatrix(walks, 4)

	var sawForward, sawBackward bool
	for _, p := range pairs {
		if p.Focus == 0 && p.Context == 1 {
			sawForward = true
		}
		if p.Focus == 1 && p.Context == 0 {
			sawBackward = true
		}
	}
	assert.True(t, sawForward)
	assert.True(t, sawBackward)
}

// -- small local helpers, kept test-only --

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

func newVocabForDirected(t *testing.T) (*vocab.Vocabulary, map[string]core.NodeId) {
	t.Helper()
	nv := vocab.New()
	ids := make(map[string]core.NodeId)
	for _, n := range []string{"a", "b"} {
		id, err := nv.Insert(n)
		require.NoError(t, err)
		ids[n] = id
	}
	require.NoError(t, nv.BuildReverse())
	return nv, ids
}
