package edgestore_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ranktrail/ranktrail/edgestore"
)

func buildStore(t *testing.T, upperBound uint64, values []uint64) *edgestore.Store {
	t.Helper()
	s := edgestore.New(upperBound, len(values))
	for _, v := range values {
		require.NoError(t, s.Push(v))
	}
	require.NoError(t, s.Finish())
	return s
}

func TestSelectRoundTripsPush(t *testing.T) {
	values := []uint64{1, 1, 3, 7, 7, 7, 20, 21, 255}
	s := buildStore(t, 256, values)

	require.Equal(t, len(values), s.Len())
	for i, v := range values {
		got, err := s.Select(i)
		require.NoError(t, err)
		assert.Equal(t, v, got, "index %d", i)
	}
}

func TestRankFindsFirstGTE(t *testing.T) {
	values := []uint64{2, 4, 4, 8, 16}
	s := buildStore(t, 32, values)

	cases := []struct {
		x       uint64
		wantIdx int
		wantOK  bool
	}{
		{0, 0, true},
		{2, 0, true},
		{3, 1, true},
		{4, 1, true},
		{5, 3, true},
		{16, 4, true},
		{17, 0, false},
	}
	for _, c := range cases {
		idx, ok := s.Rank(c.x)
		assert.Equalf(t, c.wantOK, ok, "x=%d", c.x)
		if c.wantOK {
			assert.Equalf(t, c.wantIdx, idx, "x=%d", c.x)
		}
	}
}

func TestPushRejectsOutOfOrder(t *testing.T) {
	s := edgestore.New(100, 3)
	require.NoError(t, s.Push(5))
	err := s.Push(4)
	assert.ErrorIs(t, err, edgestore.ErrOutOfOrder)
}

func TestPushRejectsOutOfBounds(t *testing.T) {
	s := edgestore.New(10, 3)
	err := s.Push(10)
	assert.ErrorIs(t, err, edgestore.ErrOutOfBounds)
}

func TestPushRejectsOverCapacity(t *testing.T) {
	s := edgestore.New(100, 1)
	require.NoError(t, s.Push(1))
	err := s.Push(2)
	assert.ErrorIs(t, err, edgestore.ErrOutOfBounds)
}

func TestFinishIsSingleShot(t *testing.T) {
	s := edgestore.New(10, 1)
	require.NoError(t, s.Push(1))
	require.NoError(t, s.Finish())
	assert.ErrorIs(t, s.Finish(), edgestore.ErrAlreadyFinished)
	assert.ErrorIs(t, s.Push(2), edgestore.ErrAlreadyFinished)
}

func TestIterYieldsAllInOrder(t *testing.T) {
	values := []uint64{0, 0, 1, 5, 5, 5, 9}
	s := buildStore(t, 16, values)

	var got []uint64
	it := s.Iter()
	for v, ok := it(); ok; v, ok = it() {
		got = append(got, v)
	}
	assert.Equal(t, values, got)
}

func TestIterUniquesSkipsRepeats(t *testing.T) {
	values := []uint64{0, 0, 1, 5, 5, 5, 9}
	s := buildStore(t, 16, values)

	var got []uint64
	it := s.IterUniques()
	for v, ok := it(); ok; v, ok = it() {
		got = append(got, v)
	}
	assert.Equal(t, []uint64{0, 1, 5, 9}, got)
}

func TestIterRangeBoundedByValue(t *testing.T) {
	values := []uint64{1, 2, 2, 3, 9, 10}
	s := buildStore(t, 16, values)

	var got []uint64
	it := s.IterRange(2, 9)
	for v, ok := it(); ok; v, ok = it() {
		got = append(got, v)
	}
	assert.Equal(t, []uint64{2, 2, 3}, got)
}

func TestLargeMonotoneRoundTrip(t *testing.T) {
	const upperBound = 1 << 20
	const n = 5000
	// Build a deterministic, non-decreasing pseudo-random sequence.
	values := make([]uint64, n)
	var x uint64
	seed := uint64(12345)
	for i := 0; i < n; i++ {
		seed = seed*6364136223846793005 + 1442695040888963407
		x += seed % 37
		if x >= upperBound {
			x = upperBound - 1
		}
		values[i] = x
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	s := buildStore(t, upperBound, values)
	for i, v := range values {
		got, err := s.Select(i)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
	for i := 0; i < n; i += 97 {
		idx, ok := s.Rank(values[i])
		require.True(t, ok)
		// idx must be the first occurrence of values[i].
		assert.True(t, idx <= i)
		v, _ := s.Select(idx)
		assert.Equal(t, values[i], v)
		if idx > 0 {
			prev, _ := s.Select(idx - 1)
			assert.Less(t, prev, values[i])
		}
	}
}
