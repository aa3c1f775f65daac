// SPDX-License-Identifier: MIT
//
// File: kruskal.go
// Role: Deterministic spanning arborescence construction, grounded on
// prim_kruskal/kruskal.go's edge-sort-then-union shape, generalized from
// a string-keyed map DSU to the dense-array merge-by-size unionFind of
// unionfind.go (parallel.go uses its own atomicUnionFind).

package spanning

import (
	"sort"

	"github.com/ranktrail/ranktrail/core"
)

// Result is the output of Kruskal or ParallelComponents: the forest
// edges chosen and a dense component label per node, plus the smallest
// and largest component sizes observed.
type Result struct {
	TreeEdges        []core.EdgeId
	Labels           []int
	Components       int
	MinComponentSize int
	MaxComponentSize int
}

// kruskalConfig holds Kruskal's optional preference-ordering settings.
type kruskalConfig struct {
	unwantedEdgeTypeNames []string
}

// KruskalOption configures Kruskal's edge preference order.
type KruskalOption func(*kruskalConfig)

// WithUnwantedEdgeTypes marks edge type names that should be offered to
// the union-find last: every edge whose type is not in this set is
// tried before any edge that is, so an unwanted-typed edge only enters
// the tree when nothing else can connect its two components. Combined
// with a weighted graph, weight still breaks ties within each of the two
// preference tiers. Names not registered on g's edge-type vocabulary are
// ignored. With no names given, Kruskal behaves exactly as before.
func WithUnwantedEdgeTypes(names ...string) KruskalOption {
	return func(c *kruskalConfig) {
		c.unwantedEdgeTypeNames = append(c.unwantedEdgeTypeNames, names...)
	}
}

// Kruskal builds a spanning arborescence of g, directed or undirected:
// connectivity for union-find purposes ignores edge direction, so a
// directed graph's weakly-connected components come out the same as if
// every edge were undirected. It produces a minimum-weight forest when
// g is weighted, an arbitrary (but edge-id-ordered, hence reproducible)
// forest otherwise; WithUnwantedEdgeTypes additionally biases that order
// away from the named edge types, turning the unweighted tree into a
// cost-biased one without requiring explicit weights. Self-loops are
// skipped; parallel edges and the mirrored reverse direction of every
// undirected edge are naturally skipped too, since union on an
// already-merged pair is a no-op.
//
// Complexity: O(E log E) to sort by weight and/or preference tier
// (skipped, so O(E), when neither applies) plus O(E * alpha(N)) for the
// union-find passes.
func Kruskal(g *core.Graph, opts ...KruskalOption) (*Result, error) {
	var cfg kruskalConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.NodeCount()
	uf := newUnionFind(n)

	order := edgeOrder(g, resolveUnwantedEdgeTypes(g, cfg.unwantedEdgeTypeNames))
	var tree []core.EdgeId
	for _, eid := range order {
		src, dst, err := g.Endpoints(eid)
		if err != nil || src == dst {
			continue
		}
		if uf.union(src, dst) {
			tree = append(tree, eid)
		}
	}

	labels, minSize, maxSize := labelsFrom(uf, n)
	return &Result{
		TreeEdges:        tree,
		Labels:           labels,
		Components:       uf.componentCount(),
		MinComponentSize: minSize,
		MaxComponentSize: maxSize,
	}, nil
}

// resolveUnwantedEdgeTypes translates the configured type names into g's
// own interned edge-type ids; names the graph never registered are
// silently dropped rather than erroring, since "unwanted" is an advisory
// preference, not a hard filter.
func resolveUnwantedEdgeTypes(g *core.Graph, names []string) map[core.EdgeTypeId]struct{} {
	if len(names) == 0 || !g.HasEdgeTypes() {
		return nil
	}
	vocab := g.EdgeTypes().Vocab
	set := make(map[core.EdgeTypeId]struct{}, len(names))
	for _, name := range names {
		if id, ok := vocab.Get(name); ok {
			set[core.EdgeTypeId(id)] = struct{}{}
		}
	}
	return set
}

// edgeOrder returns every edge id for g, partitioned so unwanted-typed
// edges sort after every other edge (stable within each partition),
// ascending by weight within a partition when g is weighted, otherwise
// in natural (already edge-id-ascending) order within it.
func edgeOrder(g *core.Graph, unwanted map[core.EdgeTypeId]struct{}) []core.EdgeId {
	count := int(g.EdgeCount())
	order := make([]core.EdgeId, count)
	for i := range order {
		order[i] = core.EdgeId(i)
	}
	weighted := g.Weighted()
	if len(unwanted) == 0 && !weighted {
		return order
	}

	isUnwanted := func(eid core.EdgeId) bool {
		if len(unwanted) == 0 {
			return false
		}
		typeID, ok := g.EdgeType(eid)
		if !ok {
			return false
		}
		_, bad := unwanted[typeID]
		return bad
	}
	sort.SliceStable(order, func(i, j int) bool {
		ui, uj := isUnwanted(order[i]), isUnwanted(order[j])
		if ui != uj {
			return !ui
		}
		if weighted {
			wi, _ := g.Weight(order[i])
			wj, _ := g.Weight(order[j])
			return wi < wj
		}
		return false
	})
	return order
}

// labelsFrom assigns a dense [0,k) label to each of the n nodes' root,
// in order of first appearance while scanning node ids ascending, and
// reports the smallest and largest component sizes seen.
func labelsFrom(uf *unionFind, n uint64) (labels []int, minSize, maxSize int) {
	labels = make([]int, n)
	rootLabel := make(map[core.NodeId]int)
	var sizes []int
	for i := uint64(0); i < n; i++ {
		root := uf.find(core.NodeId(i))
		lbl, ok := rootLabel[root]
		if !ok {
			lbl = len(sizes)
			rootLabel[root] = lbl
			sizes = append(sizes, int(uf.size[root]))
		}
		labels[i] = lbl
	}
	for i, s := range sizes {
		if i == 0 || s < minSize {
			minSize = s
		}
		if s > maxSize {
			maxSize = s
		}
	}
	return labels, minSize, maxSize
}
