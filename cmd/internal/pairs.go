package internal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Pair groups two strings for the distance calculation.
type Pair struct {
	A, B string
}

// StreamFunc is a type def for stream funcs.
type StreamFunc func(context.Context, *errgroup.Group, <-chan Pair) <-chan Pair

// Pipe pipes multiple stream funcs together and waits for all of them
// to finish.  The first function in the list (the reader) is called
// with a nil channel; sinks return a nil channel.
func Pipe(ctx context.Context, fns ...StreamFunc) error {
	g, ctx := errgroup.WithContext(ctx)
	var in <-chan Pair
	for _, fn := range fns {
		in = fn(ctx, g, in)
	}
	return g.Wait()
}

// EachPair iterates over the pairs in the input channel and calls the
// callback function for each pair.
func EachPair(ctx context.Context, in <-chan Pair, f func(Pair) error) error {
	for {
		select {
		case pair, ok := <-in:
			if !ok {
				return nil
			}
			if err := f(pair); err != nil {
				return fmt.Errorf("eachPair: %v", err)
			}
		case <-ctx.Done():
			return fmt.Errorf("eachPair: %v", ctx.Err())
		}
	}
}

// SendPairs writes pairs into the given output channel.
func SendPairs(ctx context.Context, out chan<- Pair, pairs ...Pair) error {
	for _, pair := range pairs {
		select {
		case out <- pair:
		case <-ctx.Done():
			return fmt.Errorf("sendPairs: %v", ctx.Err())
		}
	}
	return nil
}

// ReadPairs returns a stream func that reads tab-separated string
// pairs line by line from r.  The returned function ignores its input
// stream.
func ReadPairs(r io.Reader) StreamFunc {
	return func(ctx context.Context, g *errgroup.Group, _ <-chan Pair) <-chan Pair {
		out := make(chan Pair)
		g.Go(func() error {
			defer close(out)
			s := bufio.NewScanner(r)
			for s.Scan() {
				a, b, ok := strings.Cut(s.Text(), "\t")
				if !ok {
					return fmt.Errorf("readPairs: missing tab in line %q", s.Text())
				}
				if err := SendPairs(ctx, out, Pair{A: a, B: b}); err != nil {
					return err
				}
			}
			if err := s.Err(); err != nil {
				return fmt.Errorf("readPairs: %v", err)
			}
			return nil
		})
		return out
	}
}

// Zip returns a stream func that pairs the lines of a with the lines
// of b.  If one side has fewer lines, the missing lines are empty.
// The returned function ignores its input stream.
func Zip(a, b []string) StreamFunc {
	return func(ctx context.Context, g *errgroup.Group, _ <-chan Pair) <-chan Pair {
		out := make(chan Pair)
		g.Go(func() error {
			defer close(out)
			n := len(a)
			if len(b) > n {
				n = len(b)
			}
			for i := 0; i < n; i++ {
				var pair Pair
				if i < len(a) {
					pair.A = a[i]
				}
				if i < len(b) {
					pair.B = b[i]
				}
				if err := SendPairs(ctx, out, pair); err != nil {
					return err
				}
			}
			return nil
		})
		return out
	}
}
