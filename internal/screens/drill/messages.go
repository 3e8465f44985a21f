package drill

import "github.com/nlpgym/tagdrill/internal/quiz"

// drillInitMsg is sent when sampling and normalization are done.
type drillInitMsg struct {
	Sentences []quiz.TaggedSentence
	Start     int
	Err       error
}
