package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nlpgym/tagdrill/internal/quiz"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print a sampled window with its gold tags",
	Long: `Sample a window of sentences and print each one with its gold tags.

This is a stateless inspection tool — nothing is graded. Useful for checking
what a corpus looks like or reviewing the sentences a drill drew.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("start", -1, "Start at this corpus index instead of sampling randomly")
}

func runPreview(cmd *cobra.Command, args []string) error {
	corpus, err := resolveCorpus(cmd)
	if err != nil {
		return err
	}
	count, _ := cmd.Flags().GetInt("sentences")
	start, _ := cmd.Flags().GetInt("start")

	var sentences []quiz.TaggedSentence
	if start >= 0 {
		if start+count > corpus.Len() {
			return fmt.Errorf("window [%d, %d) exceeds corpus length %d", start, start+count, corpus.Len())
		}
		sentences = quiz.Normalize(corpus.Slice(start, count))
	} else {
		trees, sampledAt, err := quiz.Sample(corpus, count, resolveRng(cmd))
		if err != nil {
			return err
		}
		start = sampledAt
		sentences = quiz.Normalize(trees)
	}

	fmt.Printf("Index: %d\n", start)
	for i, sent := range sentences {
		fmt.Printf("\n── Sentence %d/%d (corpus index %d) ──\n", i+1, len(sentences), start+i)
		if len(sent) == 0 {
			fmt.Println("(no taggable tokens)")
			continue
		}
		pairs := make([]string, len(sent))
		for j, tt := range sent {
			pairs[j] = tt.Token + "/" + tt.POS
		}
		fmt.Println(quiz.WrapTokens(pairs, 80))
	}
	return nil
}
