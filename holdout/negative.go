// SPDX-License-Identifier: MIT
//
// File: negative.go
// Role: Rejection-sampled negative-edge graph construction. The 50,000
// consecutive-round panic guard prevents an infinite loop on an
// over-constrained request (e.g. a near-complete graph with a tiny
// seed subgraph).

package holdout

import (
	"log/slog"
	"sort"

	"github.com/ranktrail/ranktrail/core"
	"github.com/ranktrail/ranktrail/spanning"
)

const maxNegativeSampleRounds = 50000

type negativeSampleConfig struct {
	seedSubgraph          map[core.NodeId]struct{}
	onlyFromSameComponent bool
}

// NegativeSampleOption mutates a negativeSampleConfig.
type NegativeSampleOption func(*negativeSampleConfig)

// WithSeedSubgraph restricts both endpoints of every sampled negative
// edge to keep.
func WithSeedSubgraph(keep map[core.NodeId]struct{}) NegativeSampleOption {
	return func(c *negativeSampleConfig) { c.seedSubgraph = keep }
}

// WithOnlyFromSameComponent restricts sampled negative edges to
// endpoints sharing a connected component.
func WithOnlyFromSameComponent(v bool) NegativeSampleOption {
	return func(c *negativeSampleConfig) { c.onlyFromSameComponent = v }
}

// pairKey dedupes sampled candidates. For an undirected graph it is
// canonicalized (lo<=hi) since a draw and its swap are the same
// candidate; for a directed graph lo/hi hold src/dst verbatim, since
// (a,b) and (b,a) are independent candidates there.
type pairKey struct{ lo, hi core.NodeId }

func candidateKey(g *core.Graph, src, dst core.NodeId) pairKey {
	if g.Directed() {
		return pairKey{src, dst}
	}
	lo, hi := src, dst
	if lo > hi {
		lo, hi = hi, lo
	}
	return pairKey{lo, hi}
}

// NegativeSample builds a Graph of exactly nNeg directed edge slots
// that do not exist in g, drawn by rejection sampling over g's node
// space. nNeg counts final directed slots in the output (so, for an
// undirected g with no self-loops, nNeg must be even: every accepted
// pair contributes both directions).
//
// Panics if 50,000 consecutive rejected draws occur without an accept
// — this only happens on a request close to or beyond capacity, which
// the upfront theoretical-maximum check is meant to catch first.
func NegativeSample(g *core.Graph, nNeg uint64, seed int64, opts ...NegativeSampleOption) (*core.Graph, error) {
	if nNeg == 0 {
		return nil, wrapf("NegativeSample", ErrInvalidParameter)
	}

	var cfg negativeSampleConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	allowSelfLoop := g.SelfLoopEdges() > 0
	if !g.Directed() && !allowSelfLoop && nNeg%2 != 0 {
		return nil, wrapf("NegativeSample", ErrInvalidParameter)
	}

	var labels []int
	if cfg.onlyFromSameComponent {
		res, err := spanning.Kruskal(g)
		if err != nil {
			return nil, wrapf("NegativeSample", err)
		}
		labels = res.Labels
	}

	maxOrdered, err := maxNegativeEdges(g, labels, allowSelfLoop, cfg.onlyFromSameComponent)
	if err != nil {
		return nil, wrapf("NegativeSample", err)
	}
	if nNeg > maxOrdered {
		return nil, wrapf("NegativeSample", ErrCapacityExceeded)
	}

	rng := rngFromSeed(seed)
	n := int(g.NodeCount())
	accepted := make(map[pairKey]struct{})
	var slots uint64
	rounds := 0

	for slots < nNeg {
		src := core.NodeId(rng.Intn(n))
		dst := core.NodeId(rng.Intn(n))

		if ok := considerNegativeCandidate(g, &cfg, labels, src, dst, allowSelfLoop); !ok {
			rounds = bumpRoundGuard(rounds, slots, nNeg)
			continue
		}

		key := candidateKey(g, src, dst)
		if _, dup := accepted[key]; dup {
			rounds = bumpRoundGuard(rounds, slots, nNeg)
			continue
		}

		increment := negativeSlotCount(g, src, dst)
		if slots+increment > nNeg {
			rounds = bumpRoundGuard(rounds, slots, nNeg)
			continue
		}

		accepted[key] = struct{}{}
		slots += increment
		rounds = 0
	}

	return buildNegativeGraph(g, accepted)
}

// bumpRoundGuard increments the consecutive-rejection counter, warning
// and panicking once it reaches maxNegativeSampleRounds — this only
// fires on a request that slipped past the upfront capacity check but
// is still effectively unsatisfiable (e.g. a seed subgraph or
// component restriction that the capacity formula underestimates).
func bumpRoundGuard(rounds int, slots, nNeg uint64) int {
	rounds++
	if rounds >= maxNegativeSampleRounds {
		slog.Default().Warn("holdout: negative sampling round guard tripped",
			"rounds", rounds, "accepted_slots", slots, "target_slots", nNeg)
		panic("holdout: negative sampling exceeded 50000 consecutive rounds without an accept")
	}
	return rounds
}

func considerNegativeCandidate(g *core.Graph, cfg *negativeSampleConfig, labels []int, src, dst core.NodeId, allowSelfLoop bool) bool {
	if src == dst && !allowSelfLoop {
		return false
	}
	if cfg.seedSubgraph != nil {
		if _, ok := cfg.seedSubgraph[src]; !ok {
			return false
		}
		if _, ok := cfg.seedSubgraph[dst]; !ok {
			return false
		}
	}
	if labels != nil && labels[src] != labels[dst] {
		return false
	}
	if g.HasEdge(src, dst) {
		return false
	}
	return true
}

func negativeSlotCount(g *core.Graph, src, dst core.NodeId) uint64 {
	if g.Directed() || src == dst {
		return 1
	}
	return 2
}

// maxNegativeEdges computes the theoretical ceiling on directed edge
// slots NegativeSample could ever produce, accounting for directedness,
// self-loop eligibility, and (when restricted) per-component pairing.
func maxNegativeEdges(g *core.Graph, labels []int, allowSelfLoop, sameComponent bool) (uint64, error) {
	n := g.NodeCount()
	var universe uint64

	if sameComponent {
		sizes := make(map[int]uint64)
		for _, l := range labels {
			sizes[l]++
		}
		for _, size := range sizes {
			universe += size * size
			if !allowSelfLoop {
				universe -= size
			}
		}
	} else {
		universe = n * n
		if !allowSelfLoop {
			universe -= n
		}
	}

	existing := g.UniqueEdges()
	if existing > universe {
		return 0, wrapf("maxNegativeEdges", ErrCapacityExceeded)
	}
	return universe - existing, nil
}

func buildNegativeGraph(g *core.Graph, accepted map[pairKey]struct{}) (*core.Graph, error) {
	type rowKey struct{ src, dst core.NodeId }
	var rows []rowKey
	for key := range accepted {
		rows = append(rows, rowKey{key.lo, key.hi})
		if !g.Directed() && key.lo != key.hi {
			rows = append(rows, rowKey{key.hi, key.lo})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].src != rows[j].src {
			return rows[i].src < rows[j].src
		}
		return rows[i].dst < rows[j].dst
	})

	i := 0
	iter := core.RowIterator(func() (core.Row, bool) {
		if i >= len(rows) {
			return core.Row{}, false
		}
		r := rows[i]
		i++
		return core.Row{Src: r.src, Dst: r.dst}, true
	})

	graph, err := core.Build(g.NodeVocab(), g.NodeCount(), len(rows), iter,
		core.WithDirected(g.Directed()),
		core.WithDirectedEdgeList(true),
		core.WithEdgeListIsCorrect(true),
	)
	if err != nil {
		return nil, wrapf("buildNegativeGraph", err)
	}
	return graph, nil
}
