// Package lev implements the Levenshtein edit distance for strings
// and generic symbol sequences.
//
// All distances come in three flavors built on the same single-row
// recurrence: the plain distance, a weighted distance with custom
// costs for the three edit operations and a limit-bounded variant
// that stops as soon as the distance is known to exceed a given
// limit.  The reusable Mat type additionally calculates edit traces.
package lev

// Distance returns the Levenshtein distance of a and b.  The strings
// are compared code point-wise; no Unicode normalization is performed
// on either a or b.
//
// Note that the result is not normalized: it is 0 if and only if a
// and b are equal.
func Distance(a, b string) int {
	if a == b {
		return 0
	}
	return DistanceOf([]rune(a), []rune(b))
}

// DistanceOf returns the Levenshtein distance of the symbol slices a
// and b, i.e. the minimal number of insertions, deletions and
// substitutions needed to transform a into b.  It uses a single
// working row of length min(len(a), len(b))+1.
func DistanceOf[E comparable](a, b []E) int {
	a, b = trimCommon(a, b)

	// Make sure a is the shorter slice, since its length determines
	// how much memory we use.
	if len(a) > len(b) {
		a, b = b, a
	}
	if len(a) == 0 {
		return len(b)
	}

	// Wagner-Fischer DP algorithm with only the current row in memory.
	row := make([]int, len(a)+1)
	for i := range row {
		row[i] = i
	}
	for j := 1; j <= len(b); j++ {
		row[0] = j
		diag := j - 1

		for i := 1; i <= len(a); i++ {
			old := row[i]
			if a[i-1] == b[j-1] {
				row[i] = diag
			} else {
				row[i] = 1 + min3(row[i-1], old, diag)
			}
			diag = old
		}
	}
	return row[len(a)]
}

// Skip the longest common prefix and suffix of a and b.  Matching
// symbols cost 0 in all variants, so they never change the distance.
func trimCommon[E comparable](a, b []E) ([]E, []E) {
	for len(a) > 0 && len(b) > 0 && a[0] == b[0] {
		a, b = a[1:], b[1:]
	}
	for len(a) > 0 && len(b) > 0 && a[len(a)-1] == b[len(b)-1] {
		a, b = a[:len(a)-1], b[:len(b)-1]
	}
	return a, b
}

func min[N Number](a, b N) N {
	if a < b {
		return a
	}
	return b
}

func min3[N Number](a, b, c N) N { return min(min(a, b), c) }
