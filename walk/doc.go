// SPDX-License-Identifier: MIT
//
// Package walk implements node2vec-style biased random walks and the
// GloVe-style co-occurrence matrix built from them. Every walk is driven
// by an independent, deterministically-seeded splitmix64 stream (one per
// (start_node, iteration) pair, see rng.go) so a fixed Config and Seed
// reproduce identical walks regardless of scheduling order across
// goroutines.
//
// What:
//
//   - Sampler.Walk runs a single biased random walk from a start node.
//   - Sampler.WalkAll runs NumWalks walks from every node in parallel,
//     fanning work across a worker pool sized by Config.Parallelism.
//   - CooccurrenceMatrix folds a batch of walks into symmetric
//     (focus, context, weight) triples within a sliding window, the
//     GloVe preprocessing step.
//
// Why:
//
//   - Splitting transition-weight construction (transition.go) from walk
//     execution (sampler.go) mirrors how the core package splits
//     assembly from query: the bias math only ever needs a Graph's
//     read-only neighbor iteration, never the walk loop's own state.
//
// Bias model (node2vec, Grover & Leskovec 2016):
//
//	alpha(t,v,x) = 1/p            if x == t (return)
//	             = 1               if x is also a neighbor of t (distance 1)
//	             = 1/q             otherwise (explore, distance 2)
//
// Node/edge-type bias extends alpha with two independent, differently-
// signed penalties: crossing to a neighbor of a different node type
// multiplies alpha by ChangeNodeTypeWeight, while stepping onto an edge
// of the *same* type as the one just traversed divides alpha by
// ChangeEdgeTypeWeight — the edge-type convention deliberately runs the
// opposite sign of the node-type one, down-weighting same-type edges so
// a walk crossing edge types becomes relatively more likely. A weight of
// 1.0 is neutral for both.
//
// Errors:
//
//	ErrDirectedWalk   – New called on a directed Graph (unsupported)
//	ErrInvalidConfig  – a Config field is out of its valid range
//	ErrEmptyGraph     – the graph has no nodes to start a walk from
package walk
