package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nlpgym/tagdrill/internal/app"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the full-screen tagging app",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp loads the corpus and launches the TUI.
func runApp(cmd *cobra.Command) error {
	corpus, err := resolveCorpus(cmd)
	if err != nil {
		return err
	}
	count, _ := cmd.Flags().GetInt("sentences")

	return app.Run(app.Options{
		Corpus:        corpus,
		SentenceCount: count,
		Rng:           resolveRng(cmd),
	})
}
