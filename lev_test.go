package lev

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
)

func TestDistance(t *testing.T) {
	for _, tc := range []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"abc", "ABC", 3},
		{"abc", "aBc", 1},
		{"aBc", "abc", 1},
		{"ab", "abc", 1},
		{"abc", "ab", 1},
		{"kitten", "kitten", 0},
		{"kitten", "kittens", 1},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"gumbo", "gambol", 2},
		{"für", "fur", 1},
		{"Straße", "Strasse", 2},
	} {
		t.Run(fmt.Sprintf("%s-%s", tc.a, tc.b), func(t *testing.T) {
			if got := Distance(tc.a, tc.b); got != tc.want {
				t.Fatalf("expected %d; got %d", tc.want, got)
			}
		})
	}
}

func TestDistanceOf(t *testing.T) {
	t.Run("bytes", func(t *testing.T) {
		if got := DistanceOf([]byte("kitten"), []byte("sitting")); got != 3 {
			t.Fatalf("expected 3; got %d", got)
		}
	})
	t.Run("ints", func(t *testing.T) {
		if got := DistanceOf([]int{1, 2, 3, 4}, []int{1, 3, 4, 5}); got != 2 {
			t.Fatalf("expected 2; got %d", got)
		}
	})
	t.Run("words", func(t *testing.T) {
		a := strings.Fields("the quick brown fox")
		b := strings.Fields("the quick red fox jumps")
		if got := DistanceOf(a, b); got != 2 {
			t.Fatalf("expected 2; got %d", got)
		}
	})
}

// randomWords returns n words over a small alphabet so that random
// pairs still have short distances.
func randomWords(rng *rand.Rand, n int) []string {
	words := make([]string, n)
	for i := range words {
		word := make([]byte, rng.Intn(8))
		for j := range word {
			word[j] = byte('a' + rng.Intn(4))
		}
		words[i] = string(word)
	}
	return words
}

func TestDistanceProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	words := randomWords(rng, 25)
	for _, a := range words {
		if d := Distance(a, a); d != 0 {
			t.Errorf("Distance(%q, %q) = %d; expected 0", a, a, d)
		}
		if d := Distance("", a); d != len(a) {
			t.Errorf("Distance(%q, %q) = %d; expected %d", "", a, d, len(a))
		}
		for _, b := range words {
			ab, ba := Distance(a, b), Distance(b, a)
			if ab != ba {
				t.Errorf("Distance(%q, %q) = %d != %d = Distance(%q, %q)",
					a, b, ab, ba, b, a)
			}
			for _, c := range words {
				if ab > Distance(a, c)+Distance(c, b) {
					t.Errorf("triangle inequality violated for %q, %q, %q", a, b, c)
				}
			}
		}
	}
}

func benchmarkDistance(a, b string, bench *testing.B) {
	for i := 0; i < bench.N; i++ {
		Distance(a, b)
	}
}

func BenchmarkDistance1(b *testing.B) {
	benchmarkDistance("short", "longer", b)
}

func BenchmarkDistance2(b *testing.B) {
	benchmarkDistance("first long string", "second long string", b)
}
