// Command growdemo drives the container packages with synthetic
// workloads and reports allocator traffic. It is the only part of the
// module that logs; the containers themselves stay silent.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	logger *zap.Logger

	flagCount int
	flagLimit int
	flagSeed  uint64
)

var rootCmd = &cobra.Command{
	Use:           "growdemo",
	Short:         "Workload driver for the growable container library",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = zap.NewDevelopment()
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Append pseudo-random values and report growth events",
	RunE:  runFill,
}

var drainCmd = &cobra.Command{
	Use:   "drain",
	Short: "Fill a vector, then remove from random positions until empty",
	RunE:  runDrain,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Arena list workload: push, walk, remove, report slot reuse",
	RunE:  runList,
}

func main() {
	rootCmd.PersistentFlags().IntVarP(&flagCount, "count", "n", 1000, "number of elements")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 65654363, "workload random seed")
	fillCmd.Flags().IntVar(&flagLimit, "limit", 0, "allocator byte budget, 0 for unlimited")
	rootCmd.AddCommand(fillCmd, drainCmd, listCmd)

	if err := rootCmd.Execute(); err != nil {
		if logger != nil {
			logger.Error("workload failed", zap.Error(err))
		}
		os.Exit(1)
	}
}
