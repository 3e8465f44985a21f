package quiz

import "github.com/nlpgym/tagdrill/internal/treebank"

// NoneTag marks trace and empty-category leaves in the treebank. They have
// no surface form worth tagging and are stripped before quizzing.
const NoneTag = "-NONE-"

// TaggedSentence is one sentence as (token, gold tag) pairs, with
// placeholder leaves removed.
type TaggedSentence []treebank.TaggedToken

// Tokens returns the sentence's words in order.
func (s TaggedSentence) Tokens() []string {
	tokens := make([]string, len(s))
	for i, tt := range s {
		tokens[i] = tt.Token
	}
	return tokens
}

// Normalize converts parse trees into tagged sentences, one per tree, in
// the same order. Leaves tagged NoneTag are dropped; a tree with only such
// leaves yields an empty sentence rather than an error.
func Normalize(trees []*treebank.Tree) []TaggedSentence {
	sents := make([]TaggedSentence, len(trees))
	for i, tree := range trees {
		var sent TaggedSentence
		for _, leaf := range tree.Leaves() {
			if leaf.POS != NoneTag {
				sent = append(sent, leaf)
			}
		}
		sents[i] = sent
	}
	return sents
}
