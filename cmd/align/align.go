package align

import (
	"fmt"

	"git.sr.ht/~flobar/lev"
	"github.com/spf13/cobra"
)

// CMD defines the lev align command.
var CMD = &cobra.Command{
	Use:   "align A B",
	Short: "Print the edit trace and alignment of two strings",
	Args:  cobra.ExactArgs(2),
	Run:   run,
}

func run(_ *cobra.Command, args []string) {
	var m lev.Mat
	trace := m.Trace(args[0], args[1])
	top, bottom := render(trace, args[0], args[1])
	fmt.Printf("%s\n%s\n%s\n", top, trace, bottom)
}

// render writes out both strings with a gap rune at each position
// where the trace inserts or deletes a symbol, so that the two
// renderings line up with the trace.
func render(trace lev.Trace, a, b string) (string, string) {
	ra, rb := []rune(a), []rune(b)
	top := make([]rune, 0, len(trace))
	bottom := make([]rune, 0, len(trace))
	var i, j int
	for _, op := range trace {
		switch op {
		case lev.Ins:
			top = append(top, '_')
			bottom = append(bottom, rb[j])
			j++
		case lev.Del:
			top = append(top, ra[i])
			bottom = append(bottom, '_')
			i++
		default:
			top = append(top, ra[i])
			bottom = append(bottom, rb[j])
			i, j = i+1, j+1
		}
	}
	return string(top), string(bottom)
}
