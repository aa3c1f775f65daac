package edgestore

// Iterator is a lazy, finite, restartable sequence of codes: each call
// returns the next value and true, or (0, false) once exhausted. This
// mirrors the "callback-style iterator" convention spec §9 asks to be
// preserved — callers compose Iterators the way the rest of this codebase
// composes small closures, without materializing intermediate slices.
type Iterator func() (uint64, bool)

// Iter returns an Iterator over every pushed code, in order. Valid only
// after Finish.
func (s *Store) Iter() Iterator {
	if !s.sealed {
		return func() (uint64, bool) { return 0, false }
	}
	i := 0
	return func() (uint64, bool) {
		if i >= s.pushed {
			return 0, false
		}
		v, _ := s.Select(i)
		i++
		return v, true
	}
}

// IterRange returns an Iterator over the codes in [lo,hi) — a value
// range, not an index range — found via two Rank lookups then a
// contiguous Select scan. This is the per-source neighbor scan primitive:
// neighbors(src) = IterRange(code(src,0), code(src+1,0)).
//
// Complexity: O(log log U) to locate the range, then O(1) amortized per
// yielded element.
func (s *Store) IterRange(lo, hi uint64) Iterator {
	if !s.sealed {
		return func() (uint64, bool) { return 0, false }
	}
	start, ok := s.Rank(lo)
	if !ok {
		return func() (uint64, bool) { return 0, false }
	}
	i := start
	return func() (uint64, bool) {
		if i >= s.pushed {
			return 0, false
		}
		v, _ := s.Select(i)
		if v >= hi {
			return 0, false
		}
		i++
		return v, true
	}
}

// IterUniques returns an Iterator over the distinct pushed values, in
// order, skipping repeats (the deduplicated edge iteration spec §4.3
// calls out).
func (s *Store) IterUniques() Iterator {
	i := 0
	hasPrev := false
	var prev uint64
	return func() (uint64, bool) {
		for i < s.pushed {
			v, _ := s.Select(i)
			i++
			if hasPrev && v == prev {
				continue
			}
			hasPrev = true
			prev = v
			return v, true
		}
		return 0, false
	}
}
