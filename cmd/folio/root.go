package main

import (
	"os"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var databasePath string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Serve a single-page career portfolio",
	Long: `folio serves a single-page portfolio with one view per career path
(/aie, /se, /pm), counts page visits in SQLite, and renders share cards.

Configuration is read from FOLIO_* environment variables; a .env file in the
working directory is loaded first.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().StringVar(&databasePath, "db", "", "visit stats database (default $FOLIO_DATABASE_PATH or data/visits.db)")
}
