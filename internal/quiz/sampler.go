package quiz

import (
	"errors"
	"math/rand"

	"github.com/nlpgym/tagdrill/internal/treebank"
)

// DefaultSentenceCount is how many sentences a run covers when the caller
// does not ask for a specific count.
const DefaultSentenceCount = 5

// ErrInvalidRequest is returned when the requested sentence count is
// non-positive or exceeds the corpus length.
var ErrInvalidRequest = errors.New("sentence count out of range for corpus")

// Sample picks a contiguous window of count sentences starting at a
// uniformly random index. The window is contiguous on purpose: adjacent
// sentences share discourse context, which helps when reviewing answers.
// The start index is returned so the user can find the sentences again.
func Sample(corpus *treebank.Corpus, count int, rng *rand.Rand) ([]*treebank.Tree, int, error) {
	if count < 1 || count > corpus.Len() {
		return nil, 0, ErrInvalidRequest
	}
	start := rng.Intn(corpus.Len() - count + 1)
	return corpus.Slice(start, count), start, nil
}
