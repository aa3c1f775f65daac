// SPDX-License-Identifier: MIT
//
// File: parallel.go
// Role: Lock-free, work-stealing connected-component labeling, a
// concurrent cousin of Kruskal built around the same merge-by-size
// discipline but over an atomic parent array so many goroutines can
// union concurrently without a shared mutex. Work is claimed from a
// single atomic cursor rather than statically sliced per worker, so a
// goroutine that finishes its share of sparse nodes early immediately
// steals the next unclaimed node instead of idling.
package spanning

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/ranktrail/ranktrail/core"
)

// atomicUnionFind is a path-halving, merge-by-size disjoint-set whose
// parent links are individually atomic so concurrent union calls never
// corrupt the structure, at the cost of occasionally redoing a find
// that raced with another goroutine's compression.
type atomicUnionFind struct {
	parent []atomic.Uint32
	size   []atomic.Uint32
}

func newAtomicUnionFind(n uint64) *atomicUnionFind {
	uf := &atomicUnionFind{
		parent: make([]atomic.Uint32, n),
		size:   make([]atomic.Uint32, n),
	}
	for i := range uf.parent {
		uf.parent[i].Store(uint32(i))
		uf.size[i].Store(1)
	}
	return uf
}

// find returns x's current root, halving the path as it walks so later
// finds through the same nodes shorten over time even under
// contention.
func (uf *atomicUnionFind) find(x core.NodeId) core.NodeId {
	for {
		p := uf.parent[x].Load()
		if p == uint32(x) {
			return x
		}
		gp := uf.parent[p].Load()
		if gp != p {
			uf.parent[x].CompareAndSwap(p, gp)
		}
		x = core.NodeId(p)
	}
}

// unite merges the sets containing a and b. It retries under
// contention and reports whether it performed the merge (false if a
// and b were already joined, possibly by a racing goroutine).
func (uf *atomicUnionFind) unite(a, b core.NodeId) bool {
	for {
		ra, rb := uf.find(a), uf.find(b)
		if ra == rb {
			return false
		}
		sa, sb := uf.size[ra].Load(), uf.size[rb].Load()
		if sa < sb {
			ra, rb = rb, ra
			sa, sb = sb, sa
		}
		if !uf.parent[rb].CompareAndSwap(uint32(rb), uint32(ra)) {
			continue // another goroutine attached rb elsewhere first; retry
		}
		uf.size[ra].Add(sb)
		return true
	}
}

func (uf *atomicUnionFind) componentCount() int {
	count := 0
	for i := range uf.parent {
		if uf.parent[i].Load() == uint32(i) {
			count++
		}
	}
	return count
}

// ParallelComponents labels the connected components of an undirected
// graph using workers concurrent goroutines. It does not produce a
// spanning-tree edge list (unlike Kruskal) because concurrent
// goroutines discover tree edges in a scheduling-dependent order;
// callers that need deterministic tree edges should use Kruskal
// instead. Component membership itself is correct regardless of
// scheduling: two nodes end up in the same label if and only if they
// are connected in g.
//
// workers <= 0 defaults to runtime.GOMAXPROCS(0).
func ParallelComponents(g *core.Graph, workers int) (*Result, error) {
	if g.Directed() {
		return nil, wrapf("ParallelComponents", ErrDirectedGraph)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	n := g.NodeCount()
	uf := newAtomicUnionFind(n)

	var cursor atomic.Uint64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				i := cursor.Add(1) - 1
				if i >= n {
					return
				}
				src := core.NodeId(i)
				next := g.NeighborIter(src)
				for {
					dst, _, ok := next()
					if !ok {
						break
					}
					if dst != src {
						uf.unite(src, dst)
					}
				}
			}
		}()
	}
	wg.Wait()

	labels, minSize, maxSize := labelsFromAtomic(uf, n)
	return &Result{
		TreeEdges:        nil,
		Labels:           labels,
		Components:       uf.componentCount(),
		MinComponentSize: minSize,
		MaxComponentSize: maxSize,
	}, nil
}

func labelsFromAtomic(uf *atomicUnionFind, n uint64) (labels []int, minSize, maxSize int) {
	labels = make([]int, n)
	rootLabel := make(map[core.NodeId]int)
	var sizes []int
	for i := uint64(0); i < n; i++ {
		root := uf.find(core.NodeId(i))
		lbl, ok := rootLabel[root]
		if !ok {
			lbl = len(sizes)
			rootLabel[root] = lbl
			sizes = append(sizes, int(uf.size[root].Load()))
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
