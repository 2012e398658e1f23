package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/harshilpatel/folio"
	"github.com/harshilpatel/folio/visits"
)

//nolint:gochecknoglobals // Cobra boilerplate
var statsReset string

//nolint:gochecknoglobals // Cobra boilerplate
var statsResetAll bool

//nolint:gochecknoglobals // Cobra boilerplate
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print stored visit counts per path",
	Long: `Print the durable visit counts recorded by the server, busiest path first.

Example:
  folio stats
  folio stats --reset /se
  folio stats --reset-all`,
	RunE: runStats,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringVar(&statsReset, "reset", "", "clear the count for one path before printing")
	statsCmd.Flags().BoolVar(&statsResetAll, "reset-all", false, "clear every count before printing")
}

func runStats(cmd *cobra.Command, args []string) (err error) {
	cfg, err := folio.LoadConfig()
	if err != nil {
		err = errors.Wrap(err, "failed to load configuration")
		return err
	}
	if databasePath != "" {
		cfg.DatabasePath = databasePath
	}

	store, err := visits.NewSQLiteStore(cfg.DatabasePath)
	if err != nil {
		err = errors.Wrapf(err, "failed to open %s", cfg.DatabasePath)
		return err
	}
	defer store.Close()

	ctx := context.Background()
	switch {
	case statsResetAll:
		err = store.Reset(ctx, "")
	case statsReset != "":
		err = store.Reset(ctx, visits.Key(statsReset))
	}
	if err != nil {
		return err
	}

	stats, err := store.Load(ctx)
	if err != nil {
		return err
	}
	printStats(cmd, stats)
	return err
}

func printStats(cmd *cobra.Command, stats visits.Stats) {
	out := cmd.OutOrStdout()
	if len(stats) == 0 {
		fmt.Fprintln(out, "No visits recorded yet.")
		return
	}
	p := message.NewPrinter(language.English)
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	p.Fprintf(w, "PATH\tVISITS\t\n")
	for _, pc := range stats.Sorted() {
		p.Fprintf(w, "%s\t%d\t\n", pc.Path, pc.Count)
	}
	p.Fprintf(w, "total\t%d\t\n", stats.Total())
	w.Flush()
}
