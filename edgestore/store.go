package edgestore

import "math/bits"

// Store is a succinct, append-only, non-decreasing sequence of uint64
// codes. It admits exactly Capacity() Push calls (in non-decreasing
// order, each below the upper bound given to New), then must be sealed
// with Finish before any Select/Rank/iteration call.
//
// A sealed Store is immutable and safe for unlimited concurrent readers —
// this is the shared state every worker in the walk sampler (C6), the
// Kruskal arborescence (C7), and the holdout machinery (C8) reads without
// ever copying or locking.
type Store struct {
	upperBound uint64
	n          int
	lowBits    uint

	low  *packedArray
	high *bitvector

	pushed   int
	lastVal  uint64
	lastHigh uint64
	bitPos   int
	sealed   bool
}

// New allocates a Store for exactly n codes, each strictly less than
// upperBound. n and upperBound must both be non-negative; n == 0 is a
// valid, trivially-empty store.
func New(upperBound uint64, n int) *Store {
	lowBits := chooseLowBits(upperBound, n)
	numBuckets := int(upperBound>>lowBits) + 1

	return &Store{
		upperBound: upperBound,
		n:          n,
		lowBits:    lowBits,
		low:        newPackedArray(n, lowBits),
		high:       newBitvector(n + numBuckets),
	}
}

// chooseLowBits picks floor(log2(upperBound/n)), clamped to 0, balancing
// the high (unary) and low (packed) arrays for near-optimal space. This
// is the standard Elias-Fano parameter choice (Vigna, "Quasi-succinct
// indices").
func chooseLowBits(upperBound uint64, n int) uint {
	if n <= 0 || upperBound == 0 {
		return 0
	}
	ratio := upperBound / uint64(n)
	if ratio == 0 {
		return 0
	}
	return uint(bits.Len64(ratio) - 1)
}

// Len returns the number of codes pushed so far (equivalently, after
// Finish, the total element count N).
func (s *Store) Len() int { return s.pushed }

// Push appends x to the sequence. x must be >= the previously pushed
// value and < the upper bound given to New; Push must not be called
// after Finish, nor more than n times.
//
// Complexity: O(1) amortized.
func (s *Store) Push(x uint64) error {
	if s.sealed {
		return wrapf("Push", ErrAlreadyFinished)
	}
	if s.pushed >= s.n {
		return wrapf("Push", ErrOutOfBounds)
	}
	if x >= s.upperBound {
		return wrapf("Push", ErrOutOfBounds)
	}
	if s.pushed > 0 && x < s.lastVal {
		return wrapf("Push", ErrOutOfOrder)
	}

	high := x >> s.lowBits
	s.bitPos += int(high - s.lastHigh)
	s.high.set(s.bitPos)
	s.bitPos++

	s.low.set(s.pushed, x)

	s.lastVal = x
	s.lastHigh = high
	s.pushed++
	return nil
}

// Finish seals the store, building the rank/select index over the high
// bits. It must be called exactly once, after all Push calls.
//
// Complexity: O(n) (one popcount pass over the high bitvector's words).
func (s *Store) Finish() error {
	if s.sealed {
		return wrapf("Finish", ErrAlreadyFinished)
	}
	s.high.build()
	s.sealed = true
	return nil
}

// Select returns the i-th pushed value (0-indexed). Valid only after
// Finish.
//
// Complexity: O(log(words)+64): select1 binary-searches the word-level
// popcount index built at Finish, then scans one word.
func (s *Store) Select(i int) (uint64, error) {
	if !s.sealed {
		return 0, wrapf("Select", ErrNotFinished)
	}
	if i < 0 || i >= s.pushed {
		return 0, wrapf("Select", ErrOutOfBounds)
	}
	pos := s.high.select1(i)
	high := uint64(pos - i)
	low := s.low.get(i)
	return (high << s.lowBits) | low, nil
}

// Rank returns the smallest index i such that Select(i) >= x, and true,
// or (0, false) if no pushed value is >= x (x is past the end of the
// sequence). Valid only after Finish.
//
// Complexity: O(log(bucket count)) for the bucket lookup, plus a binary
// search within the (O(1)-sized, on average) bucket of equal high parts —
// effectively O(log log U) for balanced inputs, per spec §4.3.
func (s *Store) Rank(x uint64) (int, bool) {
	if !s.sealed || s.pushed == 0 {
		return 0, false
	}

	high := x >> s.lowBits
	bucketStart := s.elementsBeforeBucket(high)
	bucketEnd := s.elementsBeforeBucket(high + 1)

	// Binary search within [bucketStart,bucketEnd) for the first element
	// whose full value is >= x; elements within a bucket share the same
	// high part and are sorted by their low bits.
	lo, hi := bucketStart, bucketEnd
	for lo < hi {
		mid := (lo + hi) / 2
		v, _ := s.Select(mid)
		if v >= x {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	if lo >= s.pushed {
		return 0, false
	}
	// If the target bucket was empty and lo ended up in a later bucket, lo
	// already points at the first element with a high part >= high, which
	// is exactly the definition of Rank.
	return lo, true
}

// elementsBeforeBucket returns the number of pushed elements with
// high-part strictly less than bucket.
func (s *Store) elementsBeforeBucket(bucket uint64) int {
	if bucket == 0 {
		return 0
	}
	// The (bucket-1)-th zero closes bucket-1; every one before it belongs
	// to an element with high part < bucket.
	zeroIdx := int(bucket - 1)
	pos := s.high.select0(zeroIdx)
	if pos < 0 {
		// bucket is beyond the last separator: every element precedes it.
		return s.pushed
	}
	return pos - zeroIdx
}

// EdgeAt is an alias of Select kept for call-site clarity in the graph
// package (select+decode is the edge-id -> (src,dst) path, per spec §4.5).
func (s *Store) EdgeAt(i int) (uint64, error) { return s.Select(i) }
