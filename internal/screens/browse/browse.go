package browse

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nlpgym/tagdrill/internal/quiz"
	"github.com/nlpgym/tagdrill/internal/screen"
	"github.com/nlpgym/tagdrill/internal/treebank"
	"github.com/nlpgym/tagdrill/internal/ui/layout"
	"github.com/nlpgym/tagdrill/internal/ui/theme"
)

// BrowseScreen is a read-only corpus viewer: one sentence at a time with
// its gold tags, so the user can revisit the window a drill sampled.
type BrowseScreen struct {
	corpus   *treebank.Corpus
	idx      int
	showTags bool
}

var _ screen.Screen = (*BrowseScreen)(nil)
var _ screen.KeyHintProvider = (*BrowseScreen)(nil)

// New creates a browser starting at sentence 0.
func New(corpus *treebank.Corpus) *BrowseScreen {
	return &BrowseScreen{corpus: corpus, showTags: true}
}

func (b *BrowseScreen) Init() tea.Cmd {
	return nil
}

func (b *BrowseScreen) Title() string {
	return "Browse Corpus"
}

func (b *BrowseScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←/→", Description: "Sentence"},
		{Key: "PgUp/PgDn", Description: "Jump 10"},
		{Key: "t", Description: "Toggle tags"},
		{Key: "Esc", Description: "Back"},
	}
}

func (b *BrowseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if b.idx > 0 {
			b.idx--
		}
	case "right", "l":
		if b.idx < b.corpus.Len()-1 {
			b.idx++
		}
	case "pgup":
		b.idx -= 10
		if b.idx < 0 {
			b.idx = 0
		}
	case "pgdown":
		b.idx += 10
		if b.idx > b.corpus.Len()-1 {
			b.idx = b.corpus.Len() - 1
		}
	case "t":
		b.showTags = !b.showTags
	}

	return b, nil
}

func (b *BrowseScreen) View(width, height int) string {
	var out strings.Builder

	out.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Sentence %d of %d", b.idx+1, b.corpus.Len())))
	out.WriteString("\n")
	out.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", maxInt(width-4, 0))))
	out.WriteString("\n\n")

	sents := quiz.Normalize([]*treebank.Tree{b.corpus.At(b.idx)})
	sent := sents[0]

	if len(sent) == 0 {
		out.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("This sentence has no taggable tokens."))
		return out.String()
	}

	wrapWidth := minInt(width-8, 76)
	if wrapWidth < 20 {
		wrapWidth = 20
	}

	if b.showTags {
		pairs := make([]string, len(sent))
		for i, tt := range sent {
			pairs[i] = tt.Token + "/" + tt.POS
		}
		out.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(quiz.WrapTokens(pairs, wrapWidth))))
	} else {
		out.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(quiz.WrapTokens(sent.Tokens(), wrapWidth))))
	}

	return out.String()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
