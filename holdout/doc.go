// SPDX-License-Identifier: MIT
//
// Package holdout builds train/test splits and synthetic negative edges
// from a core.Graph: plain random edge holdout, connectivity-preserving
// holdout (backed by spanning.Kruskal), stratified node/edge label
// holdouts, k-fold edge partitioning, rejection-sampled negative-edge
// graphs, random induced subgraphs, and fixed-size link-prediction
// batches that pair the graph's own edges with negative samples.
//
// Every split shares the same shape: it returns one or two independent
// core.Graph values built by filtering the source's rows through
// core.Build, never by mutating the source. All randomness is seeded
// and reproducible — same graph, same seed, same parameters always
// produce the same split.
//
// Errors:
//
//	ErrCapacityExceeded – requested holdout/negative/k-fold size unattainable
//	ErrMultilabel       – stratified label holdout requested on a multilabel graph
//	ErrSmallClass       – stratified label holdout where some class has size < 2
//	ErrEmptyGraph       – an operation that needs at least one edge/node got none
//	ErrNotApplicable    – operation not defined for this graph shape
package holdout
