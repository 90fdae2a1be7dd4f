/*
File    : cortado/cmd/cortado/bench.go
Package : main

"cortado bench <file>" — runs a script N times and reports wall-clock
min/mean/p95. Out of the core per spec.md §1, but a natural host-side
addition given the pack's domain; uses only the standard library's
time.Since since nothing in the example pack supplies a benchmarking
dependency beyond testing.B itself.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/bencinn/cortado/eval"
	"github.com/bencinn/cortado/parser"
)

var benchIterations int

var benchCmd = &cobra.Command{
	Use:   "bench <file>",
	Short: "run a script repeatedly and report timing statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(args[0])
		if err != nil {
			return err
		}
		program, err := parser.Parse(src)
		if err != nil {
			return err
		}
		enabled, err := loadFeatures()
		if err != nil {
			return err
		}

		durations := make([]time.Duration, 0, benchIterations)
		for i := 0; i < benchIterations; i++ {
			ev := eval.New(io.Discard, os.Stdin, enabled)
			start := time.Now()
			if _, err := ev.Run(program); err != nil {
				return err
			}
			durations = append(durations, time.Since(start))
		}

		reportTimings(cmd.OutOrStdout(), durations)
		return nil
	},
}

func init() {
	benchCmd.Flags().IntVarP(&benchIterations, "n", "n", 100, "number of iterations")
}

func reportTimings(w io.Writer, durations []time.Duration) {
	sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })

	var total time.Duration
	for _, d := range durations {
		total += d
	}
	mean := total / time.Duration(len(durations))
	p95 := durations[(len(durations)*95)/100]

	fmt.Fprintf(w, "n=%d min=%s mean=%s p95=%s\n", len(durations), durations[0], mean, p95)
}
