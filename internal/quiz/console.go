package quiz

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
)

// Console styling, kept local so the core types stay presentation-free.
var (
	consoleInfo  = lipgloss.NewStyle().Foreground(lipgloss.Color("#14B8A6"))
	consoleGood  = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	consoleBad   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F43F5E"))
	consoleFaint = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
)

// ConsolePrompter implements Prompter over plain line-oriented stdio.
type ConsolePrompter struct {
	in    *bufio.Scanner
	out   io.Writer
	Width int // wrap column for token display
}

var _ Prompter = (*ConsolePrompter)(nil)

// NewConsolePrompter wraps the given streams. Width defaults to 80.
func NewConsolePrompter(in io.Reader, out io.Writer) *ConsolePrompter {
	return &ConsolePrompter{
		in:    bufio.NewScanner(in),
		out:   out,
		Width: 80,
	}
}

func (c *ConsolePrompter) SampledAt(start int) {
	fmt.Fprintln(c.out, consoleFaint.Render(fmt.Sprintf("Index: %d", start)))
}

func (c *ConsolePrompter) ShowSentence(num, total int, tokens []string) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, consoleInfo.Render(fmt.Sprintf("Sentence %d/%d — total tokens: %d", num, total, len(tokens))))
	fmt.Fprintln(c.out, WrapTokens(tokens, c.Width))
}

func (c *ConsolePrompter) ReadTags() (string, error) {
	fmt.Fprint(c.out, "> ")
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return c.in.Text(), nil
}

func (c *ConsolePrompter) LengthMismatch(got, want int) {
	if got > want {
		fmt.Fprintln(c.out, consoleBad.Render(fmt.Sprintf("You entered too many tags (%d)!", got)))
	} else {
		fmt.Fprintln(c.out, consoleBad.Render(fmt.Sprintf("You entered too few tags (%d)!", got)))
	}
}

func (c *ConsolePrompter) ShowResult(sentence TaggedSentence, guesses []string, res SentenceResult) {
	fmt.Fprintln(c.out)
	if pct, ok := res.Percent(); ok {
		fmt.Fprintf(c.out, "%s correct tags out of %d (%s)\n",
			consoleGood.Render(fmt.Sprintf("%d", res.Correct)),
			res.Total,
			consoleGood.Render(fmt.Sprintf("%d%%", pct)))
	} else {
		fmt.Fprintln(c.out, consoleFaint.Render("No taggable tokens in this sentence."))
	}

	if len(res.Mistakes) == 0 {
		return
	}

	fmt.Fprintf(c.out, "%-14s %-8s %s\n", "Token", "Correct", "Your answer")
	fmt.Fprintf(c.out, "%-14s %-8s %s\n", strings.Repeat("─", 12), strings.Repeat("─", 7), strings.Repeat("─", 11))
	for i, tt := range sentence {
		if strings.EqualFold(tt.POS, guesses[i]) {
			continue
		}
		fmt.Fprintf(c.out, "%-14s %-8s %s\n", tt.Token, tt.POS, guesses[i])
	}
}

// ShowReport prints the final aggregate report.
func (c *ConsolePrompter) ShowReport(rep *Report) {
	fmt.Fprintln(c.out)
	if pct, ok := rep.Percent(); ok {
		fmt.Fprintf(c.out, "Final score: %s / %d (%s)\n",
			consoleGood.Render(fmt.Sprintf("%d", rep.TotalCorrect)),
			rep.TotalAttempted,
			consoleGood.Render(fmt.Sprintf("%d%%", pct)))
	} else {
		fmt.Fprintln(c.out, "No taggable tokens were sampled.")
	}

	frequent := rep.FrequentlyMistagged()
	if len(frequent) == 0 {
		return
	}
	fmt.Fprintln(c.out, "Frequently mistagged tags:")
	for _, tc := range frequent {
		fmt.Fprintf(c.out, "%-5s %d\n", tc.Tag, tc.Count)
	}
}

// WrapTokens lays tokens out up to width columns without breaking a token
// at the edge of the line.
func WrapTokens(tokens []string, width int) string {
	var b strings.Builder
	col := 0
	for i, tok := range tokens {
		if i > 0 && col+len(tok) > width {
			b.WriteString("\n")
			col = 0
		} else if i > 0 {
			b.WriteString(" ")
			col++
		}
		b.WriteString(tok)
		col += len(tok)
	}
	return b.String()
}
