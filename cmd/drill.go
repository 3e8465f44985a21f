package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nlpgym/tagdrill/internal/quiz"
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Run one tagging drill in plain line mode",
	Long: `Run a single drill without the full-screen UI.

Sentences are printed to stdout and tags are read from stdin, one line per
sentence. Useful over slow links and in scripts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		corpus, err := resolveCorpus(cmd)
		if err != nil {
			return err
		}
		count, _ := cmd.Flags().GetInt("sentences")

		prompter := quiz.NewConsolePrompter(os.Stdin, os.Stdout)
		rep, err := quiz.Run(corpus, count, prompter, resolveRng(cmd))
		if err != nil {
			return err
		}
		prompter.ShowReport(rep)
		return nil
	},
}
