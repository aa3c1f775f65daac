package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ranktrail/ranktrail/core"
	"github.com/ranktrail/ranktrail/vocab"
)

// rowsFrom turns a literal slice of rows into a core.RowIterator, the
// shape every test in this package feeds to core.Build.
func rowsFrom(rows []core.Row) core.RowIterator {
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

// buildSimpleGraph assembles a small directed, unweighted, untyped graph
// over nodes "a".."d" with edges a->b, a->c, b->c, c->d. Returns the
// frozen vocabulary alongside the built Graph so tests can translate
// names.
func buildSimpleGraph(t *testing.T) (*core.Graph, *vocab.Vocabulary) {
	t.Helper()

	nv := vocab.New()
	names := []string{"a", "b", "c", "d"}
	ids := make(map[string]core.NodeId, len(names))
	for _, n := range names {
		id, err := nv.Insert(n)
		require.NoError(t, err)
		ids[n] = id
	}
	require.NoError(t, nv.BuildReverse())

	rows := []core.Row{
		{Src: ids["a"], Dst: ids["b"]},
		{Src: ids["a"], Dst: ids["c"]},
		{Src: ids["b"], Dst: ids["c"]},
		{Src: ids["c"], Dst: ids["d"]},
	}

	g, err := core.Build(nv, uint64(len(names)), len(rows), rowsFrom(rows),
		core.WithDirected(true),
	)
	require.NoError(t, err)
	return g, nv
}

// newNodeVocab inserts names in order and returns the frozen vocabulary
// plus a name->id lookup, for tests that assemble their own row slices.
func newNodeVocab(t *testing.T, names ...string) (*vocab.Vocabulary, map[string]core.NodeId) {
	t.Helper()
	nv := vocab.New()
	ids := make(map[string]core.NodeId, len(names))
	for _, n := range names {
		id, err := nv.Insert(n)
		require.NoError(t, err)
		ids[n] = id
	}
	require.NoError(t, nv.BuildReverse())
	return nv, ids
}
