package cmd

import (
	"fmt"

	"github.com/sarchlab/pagesim/datarecording"
	"github.com/sarchlab/pagesim/paging"
	"github.com/sarchlab/pagesim/tracing"
	"github.com/spf13/cobra"
)

func newEvictionsCmd() *cobra.Command {
	var (
		limit    int
		strategy string
	)

	evictionsCmd := &cobra.Command{
		Use:   "evictions <db-file>",
		Short: "List the evictions recorded by run or compare.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reader, err := datarecording.NewReader(args[0])
			if err != nil {
				return err
			}
			defer reader.Close()

			reader.MapTable(tracing.EvictionTable, tracing.EvictionEntry{})

			params := datarecording.QueryParams{
				OrderBy: "Strategy, Time",
				Limit:   limit,
			}

			if strategy != "" {
				s, err := paging.ParseStrategy(strategy)
				if err != nil {
					return err
				}

				params.Where = "Strategy = ?"
				params.Args = []any{s.String()}
			}

			results, total, err := reader.Query(
				cmd.Context(), tracing.EvictionTable, params)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			for _, r := range results {
				e := r.(*tracing.EvictionEntry)
				action := "dropped"

				if e.Dirty {
					action = "written"
				}

				fmt.Fprintf(out, "%-6s t=%-8d frame=%-4d in=0x%05X out=0x%05X %s\n",
					e.Strategy, e.Time, e.Frame, e.Incoming, e.Evicted, action)
			}

			fmt.Fprintf(out, "%d of %d evictions shown\n", len(results), total)

			return nil
		},
	}

	evictionsCmd.Flags().IntVar(&limit, "limit", 0,
		"maximum number of evictions to list, 0 for all")
	evictionsCmd.Flags().StringVar(&strategy, "strategy", "",
		"only list evictions of this strategy")

	return evictionsCmd
}
