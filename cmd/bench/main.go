// Command bench times a fixed catalog of container operations over a
// range of input sizes, printing "<n> <ms>" lines for each step after a
// warm-up pass.
package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vecspine/pds"
)

// benchFunc builds and exercises a container of size n, returning once
// the operation under test has fully run.
type benchFunc func(n int)

var catalog = map[string]benchFunc{
	"vector-push-back": benchVectorPushBack,
	"list-cons":        benchListCons,
	"map-insert":       benchMapInsert,
	"map-fold-sum":     benchMapFoldSum,
}

func benchVectorPushBack(n int) {
	v := pds.EmptyVector[int]()
	for i := 0; i < n; i++ {
		v = v.PushBack(i)
	}
}

func benchListCons(n int) {
	xs := pds.Empty[int]()
	for i := 0; i < n; i++ {
		xs = pds.Cons(i, xs)
	}
}

func benchMapInsert(n int) {
	m := pds.EmptyMap[int, int](intCmp)
	for i := 0; i < n; i++ {
		m = m.Insert(i, i)
	}
}

func benchMapFoldSum(n int) {
	m := pds.EmptyMap[int, int](intCmp)
	for i := 0; i < n; i++ {
		m = m.Insert(i, i)
	}
	pds.FoldLMap(m, 0, func(acc, k, v int) int { return acc + v })
}

func intCmp(a, b int) int { return a - b }

// Collect runs a full garbage collection pass.
func Collect() { runtime.GC() }

// DisableGC stops the garbage collector from running during a timed
// section.
func DisableGC() int { return debug.SetGCPercent(-1) }

// EnableGC restores garbage collection at the given percentage.
func EnableGC(percent int) { debug.SetGCPercent(percent) }

func runBench(name string, start, end, step int) error {
	fn, ok := catalog[name]
	if !ok {
		return fmt.Errorf("unknown benchmark %q", name)
	}
	if step <= 0 {
		return fmt.Errorf("step must be positive, got %d", step)
	}

	// warm-up pass, outside the timed sections.
	fn(start)

	for n := start; n <= end; n += step {
		Collect()
		prev := DisableGC()
		ts := time.Now()
		fn(n)
		elapsed := time.Since(ts)
		EnableGC(prev)

		fmt.Printf("%d %d\n", n, elapsed.Milliseconds())
	}
	return nil
}

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	root := &cobra.Command{
		Use:   "bench <bench-name> <start> <end> <step>",
		Short: "Time a persistent-container operation over a range of sizes",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			start, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("bad start %q: %w", args[1], err)
			}
			end, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("bad end %q: %w", args[2], err)
			}
			step, err := strconv.Atoi(args[3])
			if err != nil {
				return fmt.Errorf("bad step %q: %w", args[3], err)
			}

			log.Info().Str("bench", name).Int("start", start).Int("end", end).Int("step", step).Msg("starting")
			return runBench(name, start, end, step)
		},
		SilenceUsage: true,
	}

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("bench failed")
		os.Exit(1)
	}
}
