package drill

import (
	"fmt"
	"math/rand"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/nlpgym/tagdrill/internal/quiz"
	"github.com/nlpgym/tagdrill/internal/router"
	"github.com/nlpgym/tagdrill/internal/screen"
	"github.com/nlpgym/tagdrill/internal/screens/summary"
	"github.com/nlpgym/tagdrill/internal/treebank"
	"github.com/nlpgym/tagdrill/internal/ui/components"
	"github.com/nlpgym/tagdrill/internal/ui/layout"
)

// DrillScreen runs one tagging drill: a sampled window of sentences, each
// graded after a length-valid line of tags.
type DrillScreen struct {
	corpus *treebank.Corpus
	count  int
	rng    *rand.Rand

	sentences []quiz.TaggedSentence
	start     int
	idx       int
	results   []quiz.SentenceResult

	input           components.TagInput
	notice          string
	lastGuesses     []string
	lastResult      quiz.SentenceResult
	showingFeedback bool
	errMsg          string
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)

// New creates a drill over the given corpus.
func New(corpus *treebank.Corpus, count int, rng *rand.Rand) *DrillScreen {
	return &DrillScreen{
		corpus: corpus,
		count:  count,
		rng:    rng,
		input:  components.NewTagInput("DT NN VBD ...", 0),
	}
}

func (s *DrillScreen) Init() tea.Cmd {
	return tea.Batch(
		s.initDrill(),
		s.input.Init(),
	)
}

func (s *DrillScreen) Title() string {
	return "Drill"
}

func (s *DrillScreen) KeyHints() []layout.KeyHint {
	if s.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit tags"},
		{Key: "Esc", Description: "Abandon drill"},
	}
}

func (s *DrillScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.sentences == nil {
		return renderLoading(width)
	}
	if s.showingFeedback {
		return s.renderFeedback(width)
	}
	return s.renderSentence(width)
}

func (s *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case drillInitMsg:
		return s.handleInit(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.sentences != nil && !s.showingFeedback {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// initDrill samples a contiguous window and normalizes it.
func (s *DrillScreen) initDrill() tea.Cmd {
	return func() tea.Msg {
		trees, start, err := quiz.Sample(s.corpus, s.count, s.rng)
		if err != nil {
			return drillInitMsg{Err: err}
		}
		return drillInitMsg{
			Sentences: quiz.Normalize(trees),
			Start:     start,
		}
	}
}

func (s *DrillScreen) handleInit(msg drillInitMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.sentences = msg.Sentences
	s.start = msg.Start
	s.results = make([]quiz.SentenceResult, 0, len(msg.Sentences))
	if len(s.sentences) > 0 && len(s.sentences[0]) == 0 {
		// A window can open on an all-placeholder sentence.
		return s.submitTags()
	}
	return s, nil
}

func (s *DrillScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	// Error state — any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.sentences == nil {
		return s, nil
	}

	// Feedback overlay — any key advances to the next sentence.
	if s.showingFeedback {
		return s.advance()
	}

	switch msg.String() {
	case "enter":
		return s.submitTags()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submitTags validates the tag count and grades the sentence. A mismatched
// count never grades: the user is told whether they gave too many or too
// few and stays on the same sentence, as many times as it takes.
func (s *DrillScreen) submitTags() (screen.Screen, tea.Cmd) {
	sent := s.sentences[s.idx]
	guesses := quiz.SplitTags(s.input.Value())

	if len(guesses) != len(sent) {
		s.input.Submit(false)
		if len(guesses) > len(sent) {
			s.notice = fmt.Sprintf("You entered too many tags (%d of %d needed).", len(guesses), len(sent))
		} else {
			s.notice = fmt.Sprintf("You entered too few tags (%d of %d needed).", len(guesses), len(sent))
		}
		return s, nil
	}

	s.input.Submit(true)
	s.notice = ""
	s.lastGuesses = guesses
	s.lastResult = quiz.Grade(sent, guesses)
	s.results = append(s.results, s.lastResult)
	s.showingFeedback = true
	return s, nil
}

// advance moves past the feedback view: next sentence, or the summary when
// the window is exhausted.
func (s *DrillScreen) advance() (screen.Screen, tea.Cmd) {
	s.showingFeedback = false
	s.idx++
	if s.idx < len(s.sentences) {
		s.input.Reset()
		// Empty sentences auto-grade; there is nothing to type.
		if len(s.sentences[s.idx]) == 0 {
			return s.submitTags()
		}
		return s, s.input.Init()
	}

	rep := quiz.Aggregate(s.results)
	rep.RunID = uuid.New().String()
	rep.StartIndex = s.start
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: summary.New(&rep),
		}
	}
}
