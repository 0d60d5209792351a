package dist

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"git.sr.ht/~flobar/lev"
	"git.sr.ht/~flobar/lev/cmd/internal"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var flags internal.Flags

func init() {
	flags.Init(CMD)
}

// CMD defines the lev dist command.
var CMD = &cobra.Command{
	Use:   "dist [FILE | A B]",
	Short: "Calculate the Levenshtein distance of string pairs",
	Long: `Calculate the Levenshtein distance of string pairs.

If two arguments are given, their distance is printed.  With a single
argument, tab-separated pairs are read from the given file; without
arguments they are read from stdin.  Each distance is printed together
with its pair.  Non-unit weights can be set in the configuration
file.`,
	Args: cobra.MaximumNArgs(2),
	Run:  run,
}

func run(_ *cobra.Command, args []string) {
	c, err := flags.Setup()
	chk(err)
	w := c.Weights()
	if len(args) == 2 {
		fmt.Println(lev.Weighted(args[0], args[1], w))
		return
	}
	in := io.Reader(os.Stdin)
	if len(args) == 1 {
		is, err := os.Open(args[0])
		chk(err)
		defer is.Close()
		in = is
	}
	chk(internal.Pipe(context.Background(),
		internal.ReadPairs(in),
		write(w),
	))
}

func write(w lev.Weights[int]) internal.StreamFunc {
	return func(ctx context.Context, g *errgroup.Group, in <-chan internal.Pair) <-chan internal.Pair {
		g.Go(func() error {
			return internal.EachPair(ctx, in, func(pair internal.Pair) error {
				fmt.Printf("%d\t%s\t%s\n", lev.Weighted(pair.A, pair.B, w), pair.A, pair.B)
				return nil
			})
		})
		return nil
	}
}

func chk(err error) {
	if err != nil {
		log.Fatalf("error: %v", err)
	}
}
