package cer

import (
	"context"
	"fmt"
	"log"
	"sort"
	"unicode/utf8"

	"git.sr.ht/~flobar/lev"
	"git.sr.ht/~flobar/lev/cmd/internal"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

var flags internal.Flags

func init() {
	flags.Init(CMD)
}

// CMD defines the lev cer command.
var CMD = &cobra.Command{
	Use:   "cer GT OCR",
	Short: "Calculate the character error rate between two files",
	Long: `Calculate the character error rate between a ground-truth
file and an OCR file.  The files are compared line by line; files with
an .xml suffix are interpreted as page xml documents and the Unicode
content of their text lines is used.`,
	Args: cobra.ExactArgs(2),
	Run:  run,
}

func run(_ *cobra.Command, args []string) {
	_, err := flags.Setup()
	chk(err)
	gt, err := internal.ReadLines(args[0])
	chk(err)
	ocr, err := internal.ReadLines(args[1])
	chk(err)
	var s stats
	chk(internal.Pipe(context.Background(),
		internal.Zip(gt, ocr),
		s.calc(),
	))
	s.write()
}

type stats struct {
	rates        []float64
	dist, length int
	lines        int
}

// calc returns a sink that accumulates the per-line distances.  The
// ground truth is the pair's first string; its length is the
// denominator of the error rates.
func (s *stats) calc() internal.StreamFunc {
	return func(ctx context.Context, g *errgroup.Group, in <-chan internal.Pair) <-chan internal.Pair {
		g.Go(func() error {
			var m lev.Mat
			return internal.EachPair(ctx, in, func(pair internal.Pair) error {
				d := m.Distance(pair.B, pair.A)
				n := utf8.RuneCountInString(pair.A)
				s.lines++
				s.dist += d
				s.length += n
				switch {
				case n > 0:
					s.rates = append(s.rates, float64(d)/float64(n))
				case d > 0:
					s.rates = append(s.rates, 1)
				}
				internal.Log("line %d: distance %d, length %d", s.lines, d, n)
				return nil
			})
		})
		return nil
	}
}

func (s *stats) write() {
	var cer float64
	if s.length > 0 {
		cer = float64(s.dist) / float64(s.length)
	}
	fmt.Printf("lines                = %d\n", s.lines)
	fmt.Printf("characters           = %d\n", s.length)
	fmt.Printf("errors               = %d\n", s.dist)
	fmt.Printf("character error rate = %g\n", cer)
	if len(s.rates) == 0 {
		return
	}
	sort.Float64s(s.rates)
	fmt.Printf("line cer mean        = %g\n", stat.Mean(s.rates, nil))
	fmt.Printf("line cer stddev      = %g\n", stat.StdDev(s.rates, nil))
	fmt.Printf("line cer median      = %g\n", stat.Quantile(0.5, stat.Empirical, s.rates, nil))
}

func chk(err error) {
	if err != nil {
		log.Fatalf("error: %v", err)
	}
}
