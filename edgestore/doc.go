// Package edgestore implements the succinct monotone integer sequence that
// backs every directed edge in the graph engine: a single Elias-Fano
// dictionary holding codes of the form (src << nodeBits) | dst, in
// non-decreasing order, supporting O(log(words)) select, rank, and range/unique iteration without ever decompressing the whole
// sequence.
//
// What:
//
//   - Store.Push appends the next code; codes must arrive non-decreasing
//     and bounded by the upper bound U given at construction.
//   - Store.Select(i) recovers the i-th code with a binary search over
//     the word-level popcount index (O(log(words)+64), not O(1)).
//   - Store.Rank(x) finds the smallest index i with codes[i] >= x.
//   - Store.Iter / IterRange / IterUniques hand back lazy, restartable
//     sequences (closures, per the "callback-style iterator" convention
//     the rest of this codebase follows).
//
// Why:
//
//   - A sorted edge list of U = src<<nodeBits|dst values compresses to
//     roughly N*(2 + log2(U/N)) bits (Elias-Fano's classical bound) while
//     still answering rank/select without full decode — the two
//     operations every other component in this engine (C4-C8) is built on.
//
// Layout:
//
//   - High bits: one bit per value in a bitvector of length
//     N + (U>>lowBits), marking, in unary, the gap between consecutive
//     high parts. A cumulative per-word popcount index (built once, at
//     Finish) backs select by binary search over the words; there is no
//     sampled select dictionary, so select is O(log(words)+64), not O(1).
//   - Low bits: the low lowBits bits of every value, packed contiguously.
//
// Errors:
//
//   - ErrOutOfOrder: Push received a value smaller than the previous one.
//   - ErrOutOfBounds: Push received a value >= the declared upper bound U,
//     or more pushes arrived than the declared element count N.
//   - ErrNotFinished / ErrAlreadyFinished: Select/Rank called before
//     Finish, or Push/Finish called after Finish.
package edgestore
