package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harshilpatel/folio/content"
)

//nolint:gochecknoglobals // Cobra boilerplate
var checkCmd = &cobra.Command{
	Use:   "check <content.json>",
	Short: "Validate a content override file",
	Long: `Validate a JSON file of career configurations before serving it.

Every configuration needs a hero name, an about text and at least one skill.

Example:
  folio check content.json`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) (err error) {
	lib, err := content.LoadFile(args[0])
	if err != nil {
		return err
	}
	for _, key := range lib.Keys() {
		cfg, _ := lib.Get(key)
		fmt.Fprintf(cmd.OutOrStdout(), "%-4s %s (%d skills, %d experience, %d projects)\n",
			key, cfg.Title, len(cfg.Skills), len(cfg.ExperienceOrFallback()), len(cfg.ProjectsOrFallback()))
	}
	fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return err
}
