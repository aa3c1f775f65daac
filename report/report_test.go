package report_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ranktrail/ranktrail/core"
	"github.com/ranktrail/ranktrail/report"
	"github.com/ranktrail/ranktrail/vocab"
)

func drainRows(next core.RowIterator) []core.Row {
	var rows []core.Row
	for {
		row, ok := next()
		if !ok {
			break
		}
		rows = append(rows, row)
	}
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

func buildSample(t *testing.T) *core.Graph {
	t.Helper()
	nv := vocab.NewNumeric()
	for i := 0; i < 5; i++ {
		_, err := nv.Insert(itoa(i))
		require.NoError(t, err)
	}
	require.NoError(t, nv.BuildReverse())

	rows := []core.Row{
		{Src: 0, Dst: 1}, {Src: 1, Dst: 0},
		{Src: 1, Dst: 2}, {Src: 2, Dst: 1},
		{Src: 2, Dst: 3}, {Src: 3, Dst: 2},
		{Src: 3, Dst: 4}, {Src: 4, Dst: 3},
	}
	g, err := core.Build(nv, 5, len(rows), sliceRows(rows),
		core.WithDirected(false), core.WithDirectedEdgeList(true), core.WithEdgeListIsCorrect(true),
	)
	require.NoError(t, err)
	return g
}

func TestWriteReadRebuildRoundTripsStructurally(t *testing.T) {
	g := buildSample(t)

	var buf bytes.Buffer
	require.NoError(t, report.WriteEdges(&buf, g))

	records, err := report.ReadEdges(&buf)
	require.NoError(t, err)
	assert.Len(t, records, int(g.EdgeCount()))

	nv := vocab.NewNumeric()
	for i := 0; i < 5; i++ {
		_, err := nv.Insert(itoa(i))
		require.NoError(t, err)
	}
	require.NoError(t, nv.BuildReverse())

	rebuilt, err := report.RebuildGraph(nv, 5, records,
		core.WithDirected(false), core.WithDirectedEdgeList(true), core.WithEdgeListIsCorrect(true),
	)
	require.NoError(t, err)

	wantHash, err := report.StructuralHash(g)
	require.NoError(t, err)
	gotHash, err := report.StructuralHash(rebuilt)
	require.NoError(t, err)
	assert.Equal(t, wantHash, gotHash)

	wantRows := drainRows(g.Rows())
	gotRows := drainRows(rebuilt.Rows())
	if diff := cmp.Diff(wantRows, gotRows); diff != "" {
		t.Errorf("rebuilt edge stream differs from original (-want +got):\n%s", diff)
	}
}

func TestRebuildGraphRejectsOutOfRangeNodeID(t *testing.T) {
	nv := vocab.NewNumeric()
	_, err := nv.Insert("0")
	require.NoError(t, err)
	require.NoError(t, nv.BuildReverse())

	records := []report.EdgeRecord{{Src: 0, Dst: 5}}
	_, err = report.RebuildGraph(nv, 1, records)
	assert.ErrorIs(t, err, report.ErrNodeCountMismatch)
}
