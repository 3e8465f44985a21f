package quiz

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/nlpgym/tagdrill/internal/treebank"
)

// Prompter is the presentation/input collaborator for a blocking run. It
// shows plain data and returns the user's raw input line; all scoring
// stays in this package.
type Prompter interface {
	// SampledAt reports the start index of the sampled window, so the
	// user can look the sentences up in the corpus later.
	SampledAt(start int)

	// ShowSentence displays the tokens of sentence number num (1-based)
	// out of total.
	ShowSentence(num, total int, tokens []string)

	// ReadTags reads one line of whitespace-separated tags.
	ReadTags() (string, error)

	// LengthMismatch tells the user they entered got tags for a
	// want-token sentence before the re-prompt.
	LengthMismatch(got, want int)

	// ShowResult displays the graded sentence.
	ShowResult(sentence TaggedSentence, guesses []string, res SentenceResult)
}

// Run drives a complete quiz: sample count sentences, normalize them, and
// grade each one against user input, re-prompting until the tag count
// matches the token count. It blocks on the prompter between sentences and
// returns the aggregate report when all sentences are graded.
func Run(corpus *treebank.Corpus, count int, p Prompter, rng *rand.Rand) (*Report, error) {
	trees, start, err := Sample(corpus, count, rng)
	if err != nil {
		return nil, err
	}
	p.SampledAt(start)

	sentences := Normalize(trees)
	results := make([]SentenceResult, 0, len(sentences))

	for i, sent := range sentences {
		p.ShowSentence(i+1, len(sentences), sent.Tokens())

		var guesses []string
		for {
			line, err := p.ReadTags()
			if err != nil {
				return nil, fmt.Errorf("read tags for sentence %d: %w", i+1, err)
			}
			guesses = SplitTags(line)
			if len(guesses) == len(sent) {
				break
			}
			p.LengthMismatch(len(guesses), len(sent))
		}

		res := Grade(sent, guesses)
		p.ShowResult(sent, guesses, res)
		results = append(results, res)
	}

	rep := Aggregate(results)
	rep.RunID = uuid.New().String()
	rep.StartIndex = start
	return &rep, nil
}
