package drill

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nlpgym/tagdrill/internal/quiz"
	"github.com/nlpgym/tagdrill/internal/ui/theme"
)

// renderSentence renders the tokens awaiting tags plus the input line.
func (s *DrillScreen) renderSentence(width int) string {
	sent := s.sentences[s.idx]

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Sentence %d/%d", s.idx+1, len(s.sentences)))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("corpus index %d  tokens %d", s.start+s.idx, len(sent)))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	wrapWidth := min(width-8, 76)
	if wrapWidth < 20 {
		wrapWidth = 20
	}
	tokens := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(quiz.WrapTokens(sent.Tokens(), wrapWidth))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, tokens))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Type one tag per token, separated by spaces."))
	b.WriteString("\n\n")

	inputLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Tags: " + s.input.View())
	b.WriteString(inputLine)

	if s.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.notice))
	}

	return b.String()
}

// renderFeedback renders the graded sentence.
func (s *DrillScreen) renderFeedback(width int) string {
	sent := s.sentences[s.idx]
	res := s.lastResult

	var b strings.Builder
	b.WriteString("\n\n")

	if pct, ok := res.Percent(); ok {
		style := theme.Correct
		headline := "Perfect!"
		if len(res.Mistakes) > 0 {
			style = theme.Incorrect
			headline = "Not quite"
		}
		b.WriteString(style.
			Width(width).
			Align(lipgloss.Center).
			Render(headline))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(fmt.Sprintf("%d correct tags out of %d (%d%%)", res.Correct, res.Total, pct)))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No taggable tokens in this sentence."))
	}
	b.WriteString("\n\n")

	if len(res.Mistakes) > 0 {
		var tb strings.Builder
		tb.WriteString(fmt.Sprintf("%-14s %-8s %s\n", "Token", "Correct", "Your answer"))
		tb.WriteString(fmt.Sprintf("%-14s %-8s %s\n", strings.Repeat("─", 12), strings.Repeat("─", 7), strings.Repeat("─", 11)))
		for i, tt := range sent {
			if strings.EqualFold(tt.POS, s.lastGuesses[i]) {
				continue
			}
			tb.WriteString(fmt.Sprintf("%-14s %-8s %s\n", tt.Token, tt.POS, s.lastGuesses[i]))
		}
		table := lipgloss.NewStyle().Foreground(theme.Text).Render(tb.String())
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, table))
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

// renderLoading renders the loading state.
func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Sampling sentences...")
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
