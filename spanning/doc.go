// SPDX-License-Identifier: MIT
//
// Package spanning builds spanning forests and connected-component
// labelings over a core.Graph. It offers two algorithms with different
// tradeoffs:
//
//   - Kruskal builds a deterministic spanning arborescence by folding
//     edges into a merge-by-size union-find structure in edge-id order
//     (ascending weight order when the graph is weighted). It is
//     sequential and reproducible, and works on directed or undirected
//     graphs alike — union-find connectivity ignores edge direction, so
//     a directed graph's result describes its weakly-connected
//     components. WithUnwantedEdgeTypes additionally lets callers mark
//     edge types that should only be used when no other edge can
//     connect two components, turning an otherwise-unweighted tree into
//     a cost-biased one without requiring explicit weights.
//   - ParallelComponents computes connected-component labels with a
//     work-stealing, lock-free variant of the Bader–Cong algorithm:
//     correct, but the internal merge order is scheduling-dependent, so
//     two runs over the same graph may assign different (but
//     topologically equivalent) component labels. Undirected graphs
//     only — a directed graph only exposes forward neighbors, so a walk
//     over Neighbors alone cannot discover a node's incoming-only
//     connections.
//
// Errors:
//
//	ErrDirectedGraph – ParallelComponents called on a directed graph
package spanning
