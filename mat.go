package lev

// Mat is a reusable matrix for the calculation of Levenshtein
// distances and edit traces.  Unlike the free functions it keeps the
// whole Wagner-Fischer table in memory, so traces can be read off by
// backtracking.  The table is grown as needed and reused across
// calls; the zero value is ready to use.
//
// A Mat must not be used concurrently from multiple goroutines.
type Mat struct {
	a, b []rune
	tab  []int
	w    int
}

// Distance calculates the Levenshtein distance of a and b comparing
// code points.
func (m *Mat) Distance(a, b string) int {
	m.fill(a, b)
	return m.tab[len(m.tab)-1]
}

// Trace calculates the trace of edit operations that transforms a
// into b.  The trace's distance (the number of non-Nop operations)
// equals Distance(a, b).
func (m *Mat) Trace(a, b string) Trace {
	m.fill(a, b)
	i, j := len(m.a), len(m.b)
	trace := make(Trace, 0, max(i, j))
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && m.a[i-1] == m.b[j-1] && m.at(i, j) == m.at(i-1, j-1):
			trace = append(trace, Nop)
			i, j = i-1, j-1
		case i > 0 && j > 0 && m.at(i, j) == m.at(i-1, j-1)+1:
			trace = append(trace, Sub)
			i, j = i-1, j-1
		case j > 0 && m.at(i, j) == m.at(i, j-1)+1:
			trace = append(trace, Ins)
			j--
		default:
			trace = append(trace, Del)
			i--
		}
	}
	// The trace was collected back to front.
	for x, y := 0, len(trace)-1; x < y; x, y = x+1, y-1 {
		trace[x], trace[y] = trace[y], trace[x]
	}
	return trace
}

func (m *Mat) fill(a, b string) {
	m.a = append(m.a[:0], []rune(a)...)
	m.b = append(m.b[:0], []rune(b)...)
	h, w := len(m.a)+1, len(m.b)+1
	m.w = w
	if cap(m.tab) < h*w {
		m.tab = make([]int, h*w)
	}
	m.tab = m.tab[:h*w]
	for j := 0; j < w; j++ {
		m.tab[j] = j
	}
	for i := 1; i < h; i++ {
		m.tab[i*w] = i
		for j := 1; j < w; j++ {
			if m.a[i-1] == m.b[j-1] {
				m.tab[i*w+j] = m.tab[(i-1)*w+j-1]
			} else {
				m.tab[i*w+j] = 1 + min3(
					m.tab[(i-1)*w+j],
					m.tab[i*w+j-1],
					m.tab[(i-1)*w+j-1],
				)
			}
		}
	}
}

func (m *Mat) at(i, j int) int { return m.tab[i*m.w+j] }

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Op represents a single edit operation in a trace.
type Op byte

// The four edit operations.
const (
	Nop Op = '|' // matching symbols
	Sub Op = '#' // substitution
	Ins Op = '+' // insertion
	Del Op = '-' // deletion
)

// Trace represents the sequence of edit operations that transforms
// one string into another.
type Trace []Op

func (t Trace) String() string { return string(t) }

// Distance returns the number of non-Nop operations in the trace.
func (t Trace) Distance() int {
	var d int
	for _, op := range t {
		if op != Nop {
			d++
		}
	}
	return d
}
