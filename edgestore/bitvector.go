package edgestore

import "math/bits"

// bitvector is a fixed-length, append-only bit array with a word-level
// popcount index built once via build(), giving O(1) rank and
// O(log(words)+64) (effectively O(1) for any realistic size) select over
// both 1-bits and 0-bits. It backs the Elias-Fano high-bits array: see
// doc.go for the overall layout.
type bitvector struct {
	words     []uint64
	nbits     int
	blockOnes []uint32 // blockOnes[w] = popcount(words[0:w])
	built     bool
}

func newBitvector(nbits int) *bitvector {
	return &bitvector{
		words: make([]uint64, (nbits+63)/64),
		nbits: nbits,
	}
}

// set marks bit pos as 1. Must be called before build.
func (b *bitvector) set(pos int) {
	b.words[pos/64] |= 1 << uint(pos%64)
}

// build computes the word-level popcount prefix index. Must be called
// exactly once, after all set calls and before any rank/select call.
func (b *bitvector) build() {
	b.blockOnes = make([]uint32, len(b.words)+1)
	var total uint32
	for i, w := range b.words {
		b.blockOnes[i] = total
		total += uint32(bits.OnesCount64(w))
	}
	b.blockOnes[len(b.words)] = total
	b.built = true
}

// totalOnes returns the number of 1-bits in the whole vector.
func (b *bitvector) totalOnes() int { return int(b.blockOnes[len(b.words)]) }

// rank1 returns the number of 1-bits in [0,pos).
func (b *bitvector) rank1(pos int) int {
	word := pos / 64
	rest := uint(pos % 64)
	count := int(b.blockOnes[word])
	if rest > 0 {
		mask := (uint64(1) << rest) - 1
		count += bits.OnesCount64(b.words[word] & mask)
	}
	return count
}

// rank0 returns the number of 0-bits in [0,pos).
func (b *bitvector) rank0(pos int) int { return pos - b.rank1(pos) }

// select1 returns the position of the i-th 1-bit (0-indexed), or -1 if
// there is no such bit.
func (b *bitvector) select1(i int) int { return b.selectBit(i, true) }

// select0 returns the position of the i-th 0-bit (0-indexed), or -1 if
// there is no such bit.
func (b *bitvector) select0(i int) int { return b.selectBit(i, false) }

func (b *bitvector) selectBit(i int, want bool) int {
	if i < 0 {
		return -1
	}
	// Binary search over word-level prefix counts for the word containing
	// the target bit.
	countAt := func(w int) int {
		if want {
			return int(b.blockOnes[w])
		}
		return w*64 - int(b.blockOnes[w])
	}

	lo, hi := 0, len(b.words)
	for lo < hi {
		mid := (lo + hi) / 2
		if countAt(mid+1) <= i {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo >= len(b.words) {
		return -1
	}
	word := b.words[lo]
	if !want {
		word = ^word
	}
	remaining := i - countAt(lo)
	pos := lo * 64
	for bitIdx := 0; bitIdx < 64; bitIdx++ {
		if word&(1<<uint(bitIdx)) != 0 {
			if remaining == 0 {
				if pos+bitIdx >= b.nbits {
					return -1
				}
				return pos + bitIdx
			}
			remaining--
		}
	}
	return -1
}
