package main

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "salesreport",
	Short: "Builds monthly sales summaries from per-store POS journal extracts",
	Long: `salesreport scans a base directory of per-store extracts, reconstructs
sale events from each store's transaction journal, and aggregates them
into a single sales summary report.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.json", "path to the configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
