// Package cmd implements the CLI commands for flower-finder.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "flower-finder",
	Short: "Flower reference lookup and Naver Shopping aggregation API",
	Long: "flower-finder serves flower reference records from a document store and\n" +
		"aggregates Naver Shopping product listings for a flower name.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file path (environment only when empty)")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(versionCmd())
	rootCmd.AddCommand(openapiCmd())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
