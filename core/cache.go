// SPDX-License-Identifier: MIT
//
// File: cache.go
// Role: Optional hot-node destination cache — an opt-in, bounded LRU
// sitting in front of Neighbors for workloads (the walk sampler, chiefly)
// that revisit a small set of high-degree nodes far more often than the
// rest of the graph.

package core

import lru "github.com/golang/groupcache/lru"

// EnableHotCache turns on a bounded LRU of size entries caching decoded
// neighbor slices per source node. Call once after Build; it is not safe
// to call concurrently with readers that might be populating the cache
// (groupcache's lru.Cache is not itself goroutine-safe, hence the
// report-style external synchronization below).
//
// Complexity: O(1).
func (g *Graph) EnableHotCache(entries int) {
	g.reportMu.Lock()
	g.hotCache = lru.New(entries)
	g.reportMu.Unlock()
}

// cachedNeighbors returns src's neighbor slice, consulting the hot cache
// first when one is enabled. Neighbors and NeighborIter both call this
// rather than decoding directly, so EnableHotCache has an observable
// effect on both.
//
// Complexity: O(1) on a cache hit; O(d) on a miss (and populates the
// cache for next time).
func (g *Graph) cachedNeighbors(src NodeId) ([]NodeId, error) {
	if g.hotCache == nil {
		return g.neighborsUncached(src)
	}

	g.reportMu.Lock()
	if v, ok := g.hotCache.Get(src); ok {
		g.reportMu.Unlock()
		return v.([]NodeId), nil
	}
	g.reportMu.Unlock()

	out, err := g.neighborsUncached(src)
	if err != nil {
		return nil, err
	}

	g.reportMu.Lock()
	g.hotCache.Add(src, out)
	g.reportMu.Unlock()

	return out, nil
}
