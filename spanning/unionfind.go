// SPDX-License-Identifier: MIT
//
// File: unionfind.go
// Role: A dense-array disjoint-set structure over core.NodeId, merging
// by subtree size rather than by rank — the spec's chosen variant, kept
// distinct from the teacher's rank-based union in
// prim_kruskal/kruskal.go because size-based merging is what the
// parallel Bader–Cong construction in parallel.go needs to reason about
// lock-free progress bounds.

package spanning

import "github.com/ranktrail/ranktrail/core"

// unionFind is a path-compressing, merge-by-size disjoint-set over a
// dense id space [0,n).
type unionFind struct {
	parent []core.NodeId
	size   []uint32
}

func newUnionFind(n uint64) *unionFind {
	uf := &unionFind{
		parent: make([]core.NodeId, n),
		size:   make([]uint32, n),
	}
	for i := range uf.parent {
		uf.parent[i] = core.NodeId(i)
		uf.size[i] = 1
	}
	return uf
}

// find returns the root of x's set, compressing the path traversed.
func (uf *unionFind) find(x core.NodeId) core.NodeId {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

// union merges the sets containing a and b, attaching the smaller
// subtree under the larger one's root, and reports whether a merge
// happened (false means a and b were already in the same set).
func (uf *unionFind) union(a, b core.NodeId) bool {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return false
	}
	if uf.size[ra] < uf.size[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	uf.size[ra] += uf.size[rb]
	return true
}

// componentCount returns the number of distinct sets.
func (uf *unionFind) componentCount() int {
	count := 0
	for i := range uf.parent {
		if uf.parent[i] == core.NodeId(i) {
			count++
		}
	}
	return count
}
