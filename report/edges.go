// SPDX-License-Identifier: MIT
//
// File: edges.go
// Role: jsoniter-backed edge-list serialization, grounded on the
// golang-geo example's drop-in encoding/json replacement — the
// "edge writer and reader" spec §8 scenario 6 round-trips through.

package report

import (
	"errors"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/ranktrail/ranktrail/core"
	"github.com/ranktrail/ranktrail/vocab"
)

var edgeJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrNodeCountMismatch indicates ReadEdges' record stream referenced a
// node id outside [0,nodeCount) supplied to RebuildGraph.
var ErrNodeCountMismatch = errors.New("report: edge record node id exceeds declared node count")

// EdgeRecord is the on-wire shape of one core.Row.
type EdgeRecord struct {
	Src       core.NodeId `json:"src"`
	Dst       core.NodeId `json:"dst"`
	EdgeType  string      `json:"edge_type,omitempty"`
	Weight    float32     `json:"weight,omitempty"`
	HasWeight bool        `json:"has_weight,omitempty"`
}

// WriteEdges streams every edge of g to w as a JSON array of
// EdgeRecord, in g's own storage order.
func WriteEdges(w io.Writer, g *core.Graph) error {
	enc := edgeJSON.NewEncoder(w)
	if _, err := w.Write([]byte("[")); err != nil {
		return wrapf("WriteEdges", err)
	}

	rows := g.Rows()
	first := true
	for {
		row, ok := rows()
		if !ok {
			break
		}
		if !first {
			if _, err := w.Write([]byte(",")); err != nil {
				return wrapf("WriteEdges", err)
			}
		}
		first = false

		rec := EdgeRecord{
			Src: row.Src, Dst: row.Dst,
			EdgeType: row.EdgeType, Weight: row.Weight, HasWeight: row.HasWeight,
		}
		if err := enc.Encode(rec); err != nil {
			return wrapf("WriteEdges", err)
		}
	}

	if _, err := w.Write([]byte("]")); err != nil {
		return wrapf("WriteEdges", err)
	}
	return nil
}

// ReadEdges decodes a JSON array of EdgeRecord written by WriteEdges.
func ReadEdges(r io.Reader) ([]EdgeRecord, error) {
	var records []EdgeRecord
	dec := edgeJSON.NewDecoder(r)
	if err := dec.Decode(&records); err != nil {
		return nil, wrapf("ReadEdges", err)
	}
	return records, nil
}

// RebuildGraph feeds records back through core.Build, producing a fresh
// Graph over the given vocabulary and node count. records must already
// be in the lexicographic (Src,Dst,EdgeType) order core.Build requires
// — the same order WriteEdges emitted them in.
func RebuildGraph(nodeVocab *vocab.Vocabulary, nodeCount uint64, records []EdgeRecord, opts ...core.AssemblyOption) (*core.Graph, error) {
	for _, rec := range records {
		if uint64(rec.Src) >= nodeCount || uint64(rec.Dst) >= nodeCount {
			return nil, wrapf("RebuildGraph", ErrNodeCountMismatch)
		}
	}

	i := 0
	rows := core.RowIterator(func() (core.Row, bool) {
		if i >= len(records) {
			return core.Row{}, false
		}
		rec := records[i]
		i++
		return core.Row{
			Src: rec.Src, Dst: rec.Dst,
			EdgeType: rec.EdgeType, Weight: rec.Weight, HasWeight: rec.HasWeight,
		}, true
	})

	g, err := core.Build(nodeVocab, nodeCount, len(records), rows, opts...)
	if err != nil {
		return nil, wrapf("RebuildGraph", err)
	}
	return g, nil
}
