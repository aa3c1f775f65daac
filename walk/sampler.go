// SPDX-License-Identifier: MIT
//
// File: sampler.go
// Role: Walk execution — a single biased random walk, and the
// parallel fan-out across every (start_node, iteration) pair that
// WalkAll performs, mirroring the worker-pool-over-a-channel-of-jobs
// shape the teacher corpus uses for its own parallel heuristics.

package walk

import (
	"log/slog"
	"sync"

	"github.com/ranktrail/ranktrail/core"
)

// Sampler runs node2vec biased random walks against a fixed Graph.
type Sampler struct {
	g   *core.Graph
	cfg Config
	log *slog.Logger
}

// New returns a Sampler over g, validating cfg and rejecting directed
// graphs (ErrDirectedWalk) up front.
func New(g *core.Graph, opts ...Option) (*Sampler, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, wrapf("New", err)
	}
	if g.Directed() {
		return nil, wrapf("New", ErrDirectedWalk)
	}
	if g.NodeCount() == 0 {
		return nil, wrapf("New", ErrEmptyGraph)
	}
	return &Sampler{g: g, cfg: cfg, log: slog.Default()}, nil
}

// Walk runs a single walk of up to cfg.WalkLength nodes starting at
// start, using the stream derived from (start, iteration). The walk ends
// early if it reaches a node with no outgoing edges (a trap, including
// nodes whose only edges are self-loops, which produce a walk that
// cannot make further progress).
//
// Complexity: O(WalkLength * average-degree).
func (s *Sampler) Walk(start core.NodeId, iteration int) []core.NodeId {
	rng := newSplitMix64(s.cfg.Seed, start, iteration)
	out := make([]core.NodeId, 0, s.cfg.WalkLength)
	out = append(out, start)

	if s.g.IsSingleton(start) {
		return out
	}

	cs, err := firstOrderTransitions(s.g, start)
	if err != nil || len(cs.dst) == 0 {
		return out
	}
	next, ok := cs.sample(rng)
	if !ok {
		return out
	}
	out = append(out, next)

	prev, cur := start, next
	for len(out) < s.cfg.WalkLength {
		if s.g.OutDegree(cur) == 0 {
			break
		}
		cs, err := secondOrderTransitions(s.g, s.cfg, prev, cur)
		if err != nil || len(cs.dst) == 0 {
			break
		}
		next, ok := cs.sample(rng)
		if !ok {
			break
		}
		out = append(out, next)
		prev, cur = cur, next
	}
	return out
}

// WalkAll runs cfg.NumWalks walks from every node in the graph, fanning
// work across cfg.Parallelism workers. The returned slice has no
// guaranteed order across (node, iteration) pairs — only each
// individual walk's own node sequence is meaningful — since workers
// race to claim jobs from a shared channel, per spec's explicit
// non-goal of exact cross-run determinism beyond a fixed (seed,
// start_node, iteration) triple's own output.
//
// Complexity: O(NodeCount * NumWalks * WalkLength * average-degree),
// parallelized across cfg.Parallelism workers.
func (s *Sampler) WalkAll() [][]core.NodeId {
	type job struct {
		start     core.NodeId
		iteration int
	}

	n := int(s.g.NodeCount())
	jobs := make(chan job, n*s.cfg.NumWalks)
	for node := 0; node < n; node++ {
		for it := 0; it < s.cfg.NumWalks; it++ {
			jobs <- job{start: core.NodeId(node), iteration: it}
		}
	}
	close(jobs)

	results := make([][]core.NodeId, 0, n*s.cfg.NumWalks)
	var mu sync.Mutex
	var wg sync.WaitGroup
	wg.Add(s.cfg.Parallelism)
	for w := 0; w < s.cfg.Parallelism; w++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				walk := s.Walk(j.start, j.iteration)
				mu.Lock()
				results = append(results, walk)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	s.log.Debug("walks complete", "count", len(results))
	return results
}
