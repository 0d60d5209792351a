package internal

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"golang.org/x/sync/errgroup"
)

func collect(pairs *[]Pair) StreamFunc {
	return func(ctx context.Context, g *errgroup.Group, in <-chan Pair) <-chan Pair {
		g.Go(func() error {
			return EachPair(ctx, in, func(pair Pair) error {
				*pairs = append(*pairs, pair)
				return nil
			})
		})
		return nil
	}
}

func TestReadPairs(t *testing.T) {
	r := strings.NewReader("kitten\tsitting\nab\tba\n")
	var got []Pair
	if err := Pipe(context.Background(), ReadPairs(r), collect(&got)); err != nil {
		t.Fatalf("got error: %v", err)
	}
	want := []Pair{{A: "kitten", B: "sitting"}, {A: "ab", B: "ba"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v; got %v", want, got)
	}
}

func TestReadPairsMissingTab(t *testing.T) {
	r := strings.NewReader("kitten sitting\n")
	var got []Pair
	if err := Pipe(context.Background(), ReadPairs(r), collect(&got)); err == nil {
		t.Fatalf("expected an error")
	}
}

func TestZip(t *testing.T) {
	var got []Pair
	err := Pipe(context.Background(),
		Zip([]string{"a", "b", "c"}, []string{"x", "y"}),
		collect(&got),
	)
	if err != nil {
		t.Fatalf("got error: %v", err)
	}
	want := []Pair{{A: "a", B: "x"}, {A: "b", B: "y"}, {A: "c", B: ""}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v; got %v", want, got)
	}
}
