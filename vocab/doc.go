// Package vocab provides a bidirectional mapping between external string
// names and dense integer ids, plus a numeric-id fast path for edge lists
// whose node names already are dense decimal integers.
//
// What:
//
//   - Vocabulary assigns ids sequentially on first insert ("assigned" mode)
//     or derives the id directly by parsing the name as an integer
//     ("numeric" mode).
//   - BuildReverse freezes the vocabulary: after it returns, ids form a
//     dense [0,n) range and Translate is O(1).
//
// Why:
//
//   - Graph algorithms want dense integer ids (for array indexing, bitsets,
//     succinct encodings); data sources hand us strings.
//   - Numeric mode skips a hash-map round-trip entirely for inputs that are
//     already dense integers (common for machine-generated edge lists).
//
// Errors:
//
//   - ErrEmptyName: Insert called with an empty string.
//   - ErrNotNumeric: numeric mode, and the name does not round-trip through
//     integer parse -> format (leading zeros, signs, whitespace, etc.).
//   - ErrNotDense: BuildReverse called but the id set is not exactly [0,n).
//   - ErrReverseCollision: two ids map to the same reverse slot (broken
//     numeric id list), or NodeTypes.Assign got one type name twice.
package vocab
