package home

import (
	"fmt"
	"math/rand"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nlpgym/tagdrill/internal/router"
	"github.com/nlpgym/tagdrill/internal/screen"
	"github.com/nlpgym/tagdrill/internal/screens/browse"
	drillscreen "github.com/nlpgym/tagdrill/internal/screens/drill"
	"github.com/nlpgym/tagdrill/internal/treebank"
	"github.com/nlpgym/tagdrill/internal/ui/components"
	"github.com/nlpgym/tagdrill/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu   components.Menu
	corpus *treebank.Corpus
	count  int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen over the loaded corpus. count is the number
// of sentences per drill; rng seeds every drill started from this screen.
func New(corpus *treebank.Corpus, count int, rng *rand.Rand) *HomeScreen {
	items := []components.MenuItem{
		{Label: "START DRILL", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: drillscreen.New(corpus, count, rng),
				}
			}
		}},
		{Label: "BROWSE CORPUS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: browse.New(corpus)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:   components.NewMenu(items),
		corpus: corpus,
		count:  count,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("tagdrill"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Part-of-speech tagging practice"))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Corpus: %s — %d sentences, %d tokens, %d tags",
		h.corpus.Source(), h.corpus.Len(), h.corpus.TokenCount(), h.corpus.TagCount())
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(stats))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}
