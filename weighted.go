package lev

import "golang.org/x/exp/constraints"

// Number is the constraint for edit operation weights and weighted
// distances.  Any integer or floating point type can be used.
type Number interface {
	constraints.Integer | constraints.Float
}

// Weights holds the weights of the three edit operations.  Matching
// symbols always cost 0.
//
// All weights must be non-negative; the behavior for negative weights
// is undefined.
type Weights[N Number] struct {
	Ins, Del, Sub N
}

// Unit returns the unit weights.  With unit weights the weighted
// distance equals the plain Levenshtein distance.
func Unit[N Number]() Weights[N] { return Weights[N]{Ins: 1, Del: 1, Sub: 1} }

// Weighted returns the weighted Levenshtein distance of a and b
// comparing code points.  Unlike Distance the result is not symmetric
// in a and b if w.Ins != w.Del.
func Weighted[N Number](a, b string, w Weights[N]) N {
	if a == b {
		return 0
	}
	return WeightedOf([]rune(a), []rune(b), w)
}

// WeightedOf returns the weighted Levenshtein distance of the symbol
// slices a and b.  Transforming a into b by deleting all symbols of a
// costs len(a)*w.Del, inserting all symbols of b costs len(b)*w.Ins.
func WeightedOf[E comparable, N Number](a, b []E, w Weights[N]) N {
	if len(a) == 0 {
		return N(len(b)) * w.Ins
	}
	if len(b) == 0 {
		return N(len(a)) * w.Del
	}
	// Keep the row over the shorter slice.  Swapping the sequences
	// swaps the roles of insertion and deletion.
	if len(b) > len(a) {
		a, b = b, a
		w.Ins, w.Del = w.Del, w.Ins
	}
	// Cost of turning the empty prefix of a into b[:j] by j insertions.
	row := make([]N, len(b)+1)
	for j := range row {
		row[j] = N(j) * w.Ins
	}
	for i := 1; i <= len(a); i++ {
		diag := row[0]
		// Cost of turning a[:i] into the empty prefix of b by i deletions.
		row[0] = N(i) * w.Del

		for j := 1; j <= len(b); j++ {
			old := row[j]
			sub := diag
			if a[i-1] != b[j-1] {
				sub += w.Sub
			}
			row[j] = min3(old+w.Del, row[j-1]+w.Ins, sub)
			diag = old
		}
	}
	return row[len(b)]
}

// WeightedWithinLimit reports whether the weighted Levenshtein
// distance of a and b is at most limit.  It terminates early as soon
// as the distance provably exceeds the limit; for long, very
// dissimilar strings this is faster than comparing the full weighted
// distance with the limit.
func WeightedWithinLimit[N Number](a, b string, limit N, w Weights[N]) bool {
	if a == b {
		return limit >= 0
	}
	return WeightedWithinLimitOf([]rune(a), []rune(b), limit, w)
}

// WeightedWithinLimitOf reports whether the weighted Levenshtein
// distance of the symbol slices a and b is at most limit.
//
// Since arbitrary weights invalidate the diagonal band used by
// WithinLimitOf, only the row minimum is used for early termination:
// row values never decrease from one row to the next for non-negative
// weights, so once a whole row exceeds the limit the distance does too.
func WeightedWithinLimitOf[E comparable, N Number](a, b []E, limit N, w Weights[N]) bool {
	if limit < 0 {
		return false
	}
	if len(a) == 0 {
		return N(len(b))*w.Ins <= limit
	}
	if len(b) == 0 {
		return N(len(a))*w.Del <= limit
	}
	// Keep the row over the shorter slice; see WeightedOf.
	if len(b) > len(a) {
		a, b = b, a
		w.Ins, w.Del = w.Del, w.Ins
	}
	row := make([]N, len(b)+1)
	for j := range row {
		row[j] = N(j) * w.Ins
	}
	for i := 1; i <= len(a); i++ {
		diag := row[0]
		row[0] = N(i) * w.Del
		best := row[0]

		for j := 1; j <= len(b); j++ {
			old := row[j]
			sub := diag
			if a[i-1] != b[j-1] {
				sub += w.Sub
			}
			cur := min3(old+w.Del, row[j-1]+w.Ins, sub)
			row[j] = cur
			diag = old
			if cur < best {
				best = cur
			}
		}
		if best > limit {
			return false
		}
	}
	return row[len(b)] <= limit
}
