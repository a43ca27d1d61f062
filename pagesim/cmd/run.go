package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/sarchlab/pagesim/datarecording"
	"github.com/sarchlab/pagesim/paging"
	"github.com/sarchlab/pagesim/trace"
	"github.com/sarchlab/pagesim/tracing"
	"github.com/spf13/cobra"
)

func newRunCmd(cfg *config) *cobra.Command {
	var verbose bool

	runCmd := &cobra.Command{
		Use:   "run <trace-file> <frames> <strategy>",
		Short: "Run one replacement strategy over a trace.",
		Long: "`run trace.txt 16 LRU` replays trace.txt against 16 frames " +
			"with the LRU policy and prints the statistics. The strategy " +
			"is one of OPT, FIFO, CLOCK, LRU and RANDOM.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			frames, err := parseFrames(args[1])
			if err != nil {
				return err
			}

			strategy, err := paging.ParseStrategy(args[2])
			if err != nil {
				return err
			}

			tr, err := cfg.traceReader().Open(args[0])
			if err != nil {
				return err
			}

			return runStrategy(cmd, cfg, tr, frames, strategy, verbose)
		},
	}

	runCmd.Flags().BoolVar(&verbose, "verbose", false,
		"print a line for every eviction")
	runCmd.Flags().StringVar(&cfg.record, "record", cfg.record,
		"record evictions into the given SQLite database")

	return runCmd
}

func runStrategy(
	cmd *cobra.Command,
	cfg *config,
	tr *trace.Trace,
	frames int,
	strategy paging.Strategy,
	verbose bool,
) error {
	logger, err := cfg.newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	s, err := paging.MakeBuilder().
		WithCapacity(frames).
		WithStrategy(strategy).
		WithSeed(cfg.seed).
		WithTrace(tr).
		WithLogger(logger).
		Build()
	if err != nil {
		return err
	}

	tracing.Attach(s, tracing.NewAccessLogger(logger))

	if verbose {
		tracing.Attach(s, tracing.NewVerbosePrinter(cmd.OutOrStdout()))
	}

	var runInfo *datarecording.RunInfoRecorder

	if cfg.record != "" {
		recorder, err := datarecording.New(cfg.record)
		if err != nil {
			return err
		}
		defer recorder.Close()

		tracing.Attach(s, tracing.NewEvictionRecorder(recorder))

		runInfo = datarecording.NewRunInfoRecorder(recorder)
		runInfo.Start()
	}

	stats := s.Run()

	if runInfo != nil {
		recordStats(runInfo, strategy, frames, stats)
		runInfo.End()
	}

	printStats(cmd.OutOrStdout(), stats)

	return nil
}

func recordStats(
	r *datarecording.RunInfoRecorder,
	strategy paging.Strategy,
	frames int,
	stats paging.Stats,
) {
	r.Set("Strategy", strategy.String())
	r.Set("Frames", strconv.Itoa(frames))
	r.Set("Accesses", strconv.Itoa(stats.Accesses))
	r.Set("Misses", strconv.Itoa(stats.Misses))
	r.Set("Writes", strconv.Itoa(stats.Writes))
	r.Set("Drops", strconv.Itoa(stats.Drops))
}

func printStats(w io.Writer, stats paging.Stats) {
	fmt.Fprintf(w, "Number of memory accesses: %d\n", stats.Accesses)
	fmt.Fprintf(w, "Number of misses: %d\n", stats.Misses)
	fmt.Fprintf(w, "Number of writes: %d\n", stats.Writes)
	fmt.Fprintf(w, "Number of drops: %d\n", stats.Drops)
}
