package main

import (
	"git.sr.ht/~flobar/lev/cmd/align"
	"git.sr.ht/~flobar/lev/cmd/cer"
	"git.sr.ht/~flobar/lev/cmd/dist"
	"git.sr.ht/~flobar/lev/cmd/version"
	"git.sr.ht/~flobar/lev/cmd/within"
	"github.com/spf13/cobra"
)

var root = &cobra.Command{
	Use:   "lev",
	Short: "Calculate Levenshtein distances, traces and error rates",
}

func init() {
	root.AddCommand(
		align.CMD,
		cer.CMD,
		dist.CMD,
		version.CMD,
		within.CMD,
	)
}

func main() {
	root.Execute()
}
