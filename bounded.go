package lev

// WithinLimit reports whether the Levenshtein distance of a and b is
// at most limit.  This is faster than comparing Distance(a, b) with
// the limit since only cells within the diagonal band |i-j| <= limit
// are computed and the calculation terminates as soon as the distance
// provably exceeds the limit.
//
// A negative limit always reports false.
func WithinLimit(a, b string, limit int) bool {
	_, ok := BoundedDistance(a, b, limit)
	return ok
}

// WithinLimitOf reports whether the Levenshtein distance of the
// symbol slices a and b is at most limit.
func WithinLimitOf[E comparable](a, b []E, limit int) bool {
	_, ok := BoundedDistanceOf(a, b, limit)
	return ok
}

// BoundedDistance returns the Levenshtein distance of a and b if it
// is at most limit and reports whether that is the case.  If the
// distance exceeds the limit, the returned distance is 0 and the
// exact distance is never determined.
func BoundedDistance(a, b string, limit int) (int, bool) {
	if a == b {
		return 0, limit >= 0
	}
	return BoundedDistanceOf([]rune(a), []rune(b), limit)
}

// BoundedDistanceOf returns the Levenshtein distance of the symbol
// slices a and b if it is at most limit and reports whether that is
// the case.
//
// Cells outside of the diagonal band |i-j| <= limit cannot lie on a
// path with total cost <= limit and are treated as limit+1.  The
// calculation runs in O(min(len(a), len(b)) * limit) time and uses a
// single working row of length min(len(a), len(b))+1.
func BoundedDistanceOf[E comparable](a, b []E, limit int) (int, bool) {
	if limit < 0 {
		return 0, false
	}
	a, b = trimCommon(a, b)
	if len(a) > len(b) {
		a, b = b, a
	}
	// The distance is at most len(b), so larger limits never change
	// the result.  Clamping them keeps sentinel values like
	// math.MaxInt from overflowing inf and the band bounds.
	if limit > len(b) {
		limit = len(b)
	}
	// Each surplus symbol of b needs at least one insertion.
	if len(b)-len(a) > limit {
		return 0, false
	}
	if len(a) == 0 {
		return len(b), true
	}

	// Row over the shorter slice a; cells outside of the band hold inf.
	inf := limit + 1
	row := make([]int, len(a)+1)
	for i := range row {
		if i <= limit {
			row[i] = i
		} else {
			row[i] = inf
		}
	}
	for j := 1; j <= len(b); j++ {
		lo, hi := j-limit, j+limit
		if lo < 1 {
			lo = 1
		}
		if hi > len(a) {
			hi = len(a)
		}

		// The cell left of the band still holds the previous row's
		// value, which is the diagonal of the band's first cell.
		diag := row[lo-1]
		best := inf
		if lo == 1 {
			if j <= limit {
				row[0] = j
				best = j
			} else {
				row[0] = inf
			}
		} else {
			row[lo-1] = inf
		}

		for i := lo; i <= hi; i++ {
			old := row[i]
			cur := diag
			if a[i-1] != b[j-1] {
				cur++
			}
			if c := old + 1; c < cur {
				cur = c
			}
			if c := row[i-1] + 1; c < cur {
				cur = c
			}
			if cur > inf {
				cur = inf
			}
			row[i] = cur
			diag = old
			if cur < best {
				best = cur
			}
		}
		// Row values never decrease from one row to the next.
		if best > limit {
			return 0, false
		}
	}
	if d := row[len(a)]; d <= limit {
		return d, true
	}
	return 0, false
}
