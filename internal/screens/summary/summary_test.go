package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/nlpgym/tagdrill/internal/quiz"
)

func testReport() *quiz.Report {
	rep := quiz.Aggregate([]quiz.SentenceResult{
		{Correct: 4, Total: 5, Mistakes: []quiz.Mistake{{Gold: "NN", Guess: "VB"}}},
		{Correct: 4, Total: 5, Mistakes: []quiz.Mistake{{Gold: "NN", Guess: "JJ"}}},
	})
	rep.StartIndex = 42
	return &rep
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testReport())
	if s.Title() != "Drill Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Drill Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testReport())
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	if !strings.Contains(view, "8 / 10") {
		t.Errorf("view missing final score, got:\n%s", view)
	}
	if !strings.Contains(view, "NN") {
		t.Error("view missing frequently mistagged tag NN")
	}
}

func TestSummaryScreen_NoMistakes(t *testing.T) {
	rep := quiz.Aggregate([]quiz.SentenceResult{{Correct: 5, Total: 5}})
	s := New(&rep)
	view := s.View(80, 24)
	if strings.Contains(view, "Frequently mistagged") {
		t.Error("mistake sections should be skipped on a perfect run")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testReport())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testReport())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testReport())
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}
