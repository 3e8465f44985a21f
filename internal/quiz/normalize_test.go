package quiz

import (
	"testing"

	"github.com/nlpgym/tagdrill/internal/treebank"
)

func mustParseAll(t *testing.T, src string) []*treebank.Tree {
	t.Helper()
	trees, err := treebank.ParseAll(src)
	if err != nil {
		t.Fatalf("ParseAll: %v", err)
	}
	return trees
}

func TestNormalize_DropsPlaceholders(t *testing.T) {
	trees := mustParseAll(t, `( (S (NP (-NONE- *T*)) (VP (VBD ran) (NP (-NONE- *))) (. .)) )`)

	sents := Normalize(trees)
	if len(sents) != 1 {
		t.Fatalf("sentence count = %d, want 1", len(sents))
	}
	for _, tt := range sents[0] {
		if tt.POS == NoneTag {
			t.Errorf("placeholder leaf %+v survived normalization", tt)
		}
	}
	if len(sents[0]) != 2 {
		t.Errorf("sentence length = %d, want 2", len(sents[0]))
	}
}

func TestNormalize_PreservesOrder(t *testing.T) {
	trees := mustParseAll(t, `( (S (NP (DT The) (-NONE- *) (NN man)) (VP (VBD saw) (NP (PRP me))) (. .)) )`)

	sents := Normalize(trees)
	want := []string{"The", "man", "saw", "me", "."}
	got := sents[0].Tokens()
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNormalize_OneToOne(t *testing.T) {
	trees := mustParseAll(t, `
( (S (NP (PRP I)) (VP (VBP agree)) (. .)) )
( (S (NP (PRP You)) (VP (VBP disagree)) (. .)) )
( (S (NP (PRP We)) (VP (VBP concur)) (. .)) )
`)

	sents := Normalize(trees)
	if len(sents) != len(trees) {
		t.Errorf("Normalize emitted %d sentences for %d trees", len(sents), len(trees))
	}
}

func TestNormalize_AllPlaceholderTree(t *testing.T) {
	trees := mustParseAll(t, `( (S (NP (-NONE- *T*))) )`)

	sents := Normalize(trees)
	if len(sents) != 1 {
		t.Fatalf("sentence count = %d, want 1", len(sents))
	}
	if len(sents[0]) != 0 {
		t.Errorf("expected empty sentence, got %d tokens", len(sents[0]))
	}
}
