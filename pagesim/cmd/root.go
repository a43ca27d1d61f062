// Package cmd provides the command-line interface of pagesim.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// newRootCmd creates the base command with all the subcommands attached.
func newRootCmd() *cobra.Command {
	cfg := loadConfig()

	rootCmd := &cobra.Command{
		Use:   "pagesim",
		Short: "pagesim simulates page-replacement policies.",
		Long: `pagesim replays a memory-access trace against a fixed number ` +
			`of frames and reports the accesses, misses, write-backs and ` +
			`drops of the OPT, FIFO, CLOCK, LRU and RANDOM policies.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.err
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfg.logLevel, "log-level",
		cfg.logLevel, "log level (panic, fatal, error, warn, info, debug, trace)")
	rootCmd.PersistentFlags().Int64Var(&cfg.seed, "seed",
		cfg.seed, "seed of the RANDOM policy")
	rootCmd.PersistentFlags().UintVar(&cfg.pageShift, "page-shift",
		cfg.pageShift, "number of page-offset bits in an address")

	rootCmd.AddCommand(
		newRunCmd(cfg),
		newCompareCmd(cfg),
		newEvictionsCmd(),
	)

	return rootCmd
}

// Execute runs the command line and exits the process.
func Execute() {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(normalizeArgs(os.Args[1:]))

	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

// normalizeArgs accepts the single-dash "-verbose" spelling.
func normalizeArgs(args []string) []string {
	normalized := make([]string, len(args))

	for i, arg := range args {
		if arg == "-verbose" {
			arg = "--verbose"
		}

		normalized[i] = arg
	}

	return normalized
}
