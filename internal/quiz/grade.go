package quiz

import "strings"

// Mistake is one mismatched position: the corpus tag and what the user
// typed, both in their original case.
type Mistake struct {
	Gold  string
	Guess string
}

// SentenceResult is the graded outcome for one sentence.
type SentenceResult struct {
	Correct  int
	Total    int
	Mistakes []Mistake
}

// Percent returns the score as a rounded percentage. ok is false for a
// zero-token sentence, which has no meaningful ratio.
func (r SentenceResult) Percent() (int, bool) {
	if r.Total == 0 {
		return 0, false
	}
	return (r.Correct*100 + r.Total/2) / r.Total, true
}

// SplitTags splits one line of user input into a guess sequence, one tag
// per whitespace-separated field.
func SplitTags(line string) []string {
	return strings.Fields(line)
}

// Grade compares guesses against the sentence's gold tags position by
// position, case-insensitively. Callers must have already checked that
// len(guesses) == len(sentence); the length-mismatch retry loop lives with
// the prompt, not here. Mismatches are data, not errors.
func Grade(sentence TaggedSentence, guesses []string) SentenceResult {
	res := SentenceResult{Total: len(sentence)}
	for i, tt := range sentence {
		if strings.EqualFold(tt.POS, guesses[i]) {
			continue
		}
		res.Mistakes = append(res.Mistakes, Mistake{Gold: tt.POS, Guess: guesses[i]})
	}
	res.Correct = res.Total - len(res.Mistakes)
	return res
}
