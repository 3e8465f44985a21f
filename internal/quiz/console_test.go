package quiz

import (
	"strings"
	"testing"
)

func TestWrapTokens_NoBreakInsideToken(t *testing.T) {
	tokens := []string{"alpha", "beta", "gamma", "delta", "epsilon"}
	out := WrapTokens(tokens, 12)

	for _, line := range strings.Split(out, "\n") {
		if len(line) > 12+len("epsilon") {
			t.Errorf("line %q far exceeds wrap width", line)
		}
		for _, tok := range strings.Fields(line) {
			found := false
			for _, want := range tokens {
				if tok == want {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("token %q was split across lines", tok)
			}
		}
	}

	if got := strings.Fields(strings.ReplaceAll(out, "\n", " ")); len(got) != len(tokens) {
		t.Errorf("token count after wrap = %d, want %d", len(got), len(tokens))
	}
}

func TestWrapTokens_SingleLineWhenItFits(t *testing.T) {
	out := WrapTokens([]string{"The", "man", "saw", "me", "."}, 80)
	if out != "The man saw me ." {
		t.Errorf("WrapTokens = %q", out)
	}
}

func TestWrapTokens_Empty(t *testing.T) {
	if out := WrapTokens(nil, 80); out != "" {
		t.Errorf("WrapTokens(nil) = %q, want empty", out)
	}
}
