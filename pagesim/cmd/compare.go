package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/sarchlab/pagesim/datarecording"
	"github.com/sarchlab/pagesim/paging"
	"github.com/sarchlab/pagesim/tracing"
	"github.com/spf13/cobra"
)

func newCompareCmd(cfg *config) *cobra.Command {
	var names []string

	compareCmd := &cobra.Command{
		Use:   "compare <trace-file> <frames>",
		Short: "Run several replacement strategies over the same trace.",
		Long: "`compare trace.txt 16` runs every strategy against 16 frames " +
			"and marks the one with the fewest misses.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			frames, err := parseFrames(args[1])
			if err != nil {
				return err
			}

			strategies, err := parseStrategies(names)
			if err != nil {
				return err
			}

			tr, err := cfg.traceReader().Open(args[0])
			if err != nil {
				return err
			}

			logger, err := cfg.newLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			var recorder datarecording.DataRecorder

			if cfg.record != "" {
				recorder, err = datarecording.New(cfg.record)
				if err != nil {
					return err
				}
				defer recorder.Close()
			}

			b := paging.MakeBuilder().
				WithCapacity(frames).
				WithSeed(cfg.seed).
				WithTrace(tr).
				WithLogger(logger)

			results, err := paging.Compare(b, strategies,
				func(s *paging.Simulator) {
					tracing.Attach(s, tracing.NewAccessLogger(logger))

					if recorder != nil {
						tracing.Attach(s, tracing.NewEvictionRecorder(recorder))
					}
				})
			if err != nil {
				return err
			}

			printResults(cmd, results)

			return nil
		},
	}

	compareCmd.Flags().StringSliceVar(&names, "strategies",
		allStrategyNames(), "strategies to compare")
	compareCmd.Flags().StringVar(&cfg.record, "record", cfg.record,
		"record evictions into the given SQLite database")

	return compareCmd
}

func allStrategyNames() []string {
	var names []string
	for _, s := range paging.Strategies() {
		names = append(names, s.String())
	}

	return names
}

func parseStrategies(names []string) ([]paging.Strategy, error) {
	strategies := make([]paging.Strategy, 0, len(names))

	for _, name := range names {
		s, err := paging.ParseStrategy(name)
		if err != nil {
			return nil, err
		}

		strategies = append(strategies, s)
	}

	return strategies, nil
}

func printResults(cmd *cobra.Command, results []paging.Result) {
	best, _ := paging.Best(results)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STRATEGY\tACCESSES\tMISSES\tWRITES\tDROPS\t")

	for _, r := range results {
		mark := ""
		if r.Strategy == best.Strategy {
			mark = "*"
		}

		fmt.Fprintf(w, "%s%s\t%d\t%d\t%d\t%d\t\n",
			r.Strategy, mark,
			r.Stats.Accesses, r.Stats.Misses, r.Stats.Writes, r.Stats.Drops)
	}

	w.Flush()
}
