// Package ranktrail is a compact, high-throughput graph engine for
// random-walk embedding workloads: biased node2vec sampling,
// GloVe-style co-occurrence accumulation, and link-prediction batch
// preparation over large directed or undirected graphs.
//
// Under the hood, everything is organized into single-purpose
// subpackages:
//
//	vocab/     — string<->NodeId interning, numeric and typed variants
//	core/      — the Graph type itself: assembly from an edge stream,
//	             degree/neighbor queries, cloning, filtered views
//	edgestore/ — the succinct Elias-Fano store backing every edge
//	walk/      — biased second-order random walks (node2vec) and the
//	             sliding-window co-occurrence accumulator (GloVe)
//	spanning/  — Kruskal arborescence and connected-component labeling
//	holdout/   — edge/node-label train-test splits, k-fold partitions,
//	             negative sampling, random subgraphs, link-prediction
//	             batches
//	config/    — YAML-driven configuration for assembly, walk, and
//	             holdout parameters
//	report/    — edge-list serialization and structural-hash comparison
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
// A four-node, four-edge undirected graph. core.Build assembles it from
// a sorted edge stream; a walk.Sampler (walk.New) then samples biased
// random walks over it, and walk.CooccurrenceMatrix turns those walks into a sparse
// co-occurrence matrix ready for GloVe-style factorization.
package ranktrail
