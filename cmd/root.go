package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nlpgym/tagdrill/internal/quiz"
	"github.com/nlpgym/tagdrill/internal/treebank"
)

var rootCmd = &cobra.Command{
	Use:   "tagdrill",
	Short: "Part-of-speech tagging practice in the terminal",
	Long:  "tagdrill — practice Penn-Treebank-style POS tagging against a real parsed corpus.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("corpus", "", "Path to a bracketed-parse file or directory of .mrg files (overrides TAGDRILL_CORPUS env var)")
	rootCmd.PersistentFlags().Int("sentences", quiz.DefaultSentenceCount, "Sentences per drill")
	rootCmd.PersistentFlags().Int64("seed", 0, "Random seed for sentence sampling (0 = time-based)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveCorpus loads the corpus using the --corpus flag (highest priority),
// then the TAGDRILL_CORPUS env var, then the built-in sample.
func resolveCorpus(cmd *cobra.Command) (*treebank.Corpus, error) {
	path, _ := cmd.Flags().GetString("corpus")
	if path == "" {
		path = os.Getenv("TAGDRILL_CORPUS")
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "No corpus given; using the built-in sample. See --corpus.")
		return treebank.Sample(), nil
	}
	corpus, err := treebank.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	return corpus, nil
}

// resolveRng builds the sampling source from --seed (0 means time-based).
func resolveRng(cmd *cobra.Command) *rand.Rand {
	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
