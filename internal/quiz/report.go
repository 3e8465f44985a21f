package quiz

// TagCounts is a multiset of tag strings that remembers first-insertion
// order, so reports print tags in the order mistakes happened.
type TagCounts struct {
	counts map[string]int
	order  []string
}

// NewTagCounts returns an empty multiset.
func NewTagCounts() *TagCounts {
	return &TagCounts{counts: make(map[string]int)}
}

// Add increments the count for tag.
func (tc *TagCounts) Add(tag string) {
	if _, ok := tc.counts[tag]; !ok {
		tc.order = append(tc.order, tag)
	}
	tc.counts[tag]++
}

// Get returns the count for tag (zero when absent).
func (tc *TagCounts) Get(tag string) int {
	return tc.counts[tag]
}

// Tags returns the distinct tags in first-insertion order.
func (tc *TagCounts) Tags() []string {
	return tc.order
}

// Len returns the number of distinct tags.
func (tc *TagCounts) Len() int {
	return len(tc.order)
}

// Sum returns the total count across all tags.
func (tc *TagCounts) Sum() int {
	total := 0
	for _, n := range tc.counts {
		total += n
	}
	return total
}

// TagCount is one (tag, count) row for display.
type TagCount struct {
	Tag   string
	Count int
}

// Report is the aggregate outcome of a whole run.
type Report struct {
	RunID          string
	StartIndex     int
	TotalCorrect   int
	TotalAttempted int
	Sentences      []SentenceResult
	Mistagged      *TagCounts // keyed by gold tag
	Overused       *TagCounts // keyed by guessed tag
}

// Aggregate sums per-sentence results and tallies the flattened mistakes
// by gold tag and by guessed tag.
func Aggregate(results []SentenceResult) Report {
	rep := Report{
		Sentences: results,
		Mistagged: NewTagCounts(),
		Overused:  NewTagCounts(),
	}
	for _, res := range results {
		rep.TotalCorrect += res.Correct
		rep.TotalAttempted += res.Total
		for _, m := range res.Mistakes {
			rep.Mistagged.Add(m.Gold)
			rep.Overused.Add(m.Guess)
		}
	}
	return rep
}

// Percent returns the overall score as a rounded percentage. ok is false
// when no tokens were attempted (every sampled sentence was all
// placeholders), which would otherwise divide by zero.
func (r Report) Percent() (int, bool) {
	if r.TotalAttempted == 0 {
		return 0, false
	}
	return (r.TotalCorrect*100 + r.TotalAttempted/2) / r.TotalAttempted, true
}

// FrequentlyMistagged returns the gold tags whose mistake count is at or
// above the mean count, in first-insertion order. The inclusive threshold
// means a run where every tag was missed equally often flags all of them.
// Empty when the run had no mistakes; callers skip the section entirely.
func (r Report) FrequentlyMistagged() []TagCount {
	if r.Mistagged == nil || r.Mistagged.Len() == 0 {
		return nil
	}
	average := float64(r.Mistagged.Sum()) / float64(r.Mistagged.Len())
	var out []TagCount
	for _, tag := range r.Mistagged.Tags() {
		if n := r.Mistagged.Get(tag); float64(n) >= average {
			out = append(out, TagCount{Tag: tag, Count: n})
		}
	}
	return out
}
