package within

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"git.sr.ht/~flobar/lev"
	"git.sr.ht/~flobar/lev/cmd/internal"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var flags internal.Flags

func init() {
	flags.Init(CMD)
}

// CMD defines the lev within command.
var CMD = &cobra.Command{
	Use:   "within LIMIT [A B]",
	Short: "Check Levenshtein distances against a limit",
	Long: `Check Levenshtein distances against a limit.

If a pair is given as arguments, the command exits with status 0 if
its distance is at most LIMIT and with status 1 otherwise.  Without a
pair, tab-separated pairs are read from stdin and the pairs within the
limit are written to stdout.`,
	Args: limitArgs,
	Run:  run,
}

func limitArgs(_ *cobra.Command, args []string) error {
	if len(args) != 1 && len(args) != 3 {
		return fmt.Errorf("accepts 1 or 3 args, received %d", len(args))
	}
	if _, err := strconv.Atoi(args[0]); err != nil {
		return fmt.Errorf("bad limit %q", args[0])
	}
	return nil
}

func run(_ *cobra.Command, args []string) {
	c, err := flags.Setup()
	chk(err)
	limit, err := strconv.Atoi(args[0])
	chk(err)
	if len(args) == 3 {
		if !within(args[1], args[2], limit, c) {
			os.Exit(1)
		}
		return
	}
	chk(internal.Pipe(context.Background(),
		internal.ReadPairs(os.Stdin),
		filter(limit, c),
	))
}

func filter(limit int, c *internal.Config) internal.StreamFunc {
	return func(ctx context.Context, g *errgroup.Group, in <-chan internal.Pair) <-chan internal.Pair {
		g.Go(func() error {
			return internal.EachPair(ctx, in, func(pair internal.Pair) error {
				if within(pair.A, pair.B, limit, c) {
					fmt.Printf("%s\t%s\n", pair.A, pair.B)
				}
				return nil
			})
		})
		return nil
	}
}

func within(a, b string, limit int, c *internal.Config) bool {
	if c.Unit() {
		return lev.WithinLimit(a, b, limit)
	}
	return lev.WeightedWithinLimit(a, b, limit, c.Weights())
}

func chk(err error) {
	if err != nil {
		log.Fatalf("error: %v", err)
	}
}
