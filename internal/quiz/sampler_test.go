package quiz

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/nlpgym/tagdrill/internal/treebank"
)

func testCorpus(t *testing.T, n int) *treebank.Corpus {
	t.Helper()
	src := ""
	for i := 0; i < n; i++ {
		src += `( (S (NP (PRP I)) (VP (VBP agree)) (. .)) )` + "\n"
	}
	trees, err := treebank.ParseAll(src)
	if err != nil {
		t.Fatalf("ParseAll: %v", err)
	}
	return treebank.NewCorpus(trees, "test")
}

func TestSample_WindowWithinBounds(t *testing.T) {
	corpus := testCorpus(t, 20)
	rng := rand.New(rand.NewSource(1))

	for count := 1; count <= corpus.Len(); count++ {
		window, start, err := Sample(corpus, count, rng)
		if err != nil {
			t.Fatalf("Sample(count=%d): %v", count, err)
		}
		if len(window) != count {
			t.Errorf("count=%d: window length = %d", count, len(window))
		}
		if start < 0 || start+count > corpus.Len() {
			t.Errorf("count=%d: window [%d, %d) out of bounds", count, start, start+count)
		}
	}
}

func TestSample_Contiguous(t *testing.T) {
	corpus := testCorpus(t, 10)
	rng := rand.New(rand.NewSource(7))

	window, start, err := Sample(corpus, 4, rng)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	for i, tree := range window {
		if tree != corpus.At(start+i) {
			t.Errorf("window[%d] is not corpus[%d]", i, start+i)
		}
	}
}

func TestSample_InvalidCount(t *testing.T) {
	corpus := testCorpus(t, 5)
	rng := rand.New(rand.NewSource(1))

	for _, count := range []int{0, -1, 6, 100} {
		_, _, err := Sample(corpus, count, rng)
		if !errors.Is(err, ErrInvalidRequest) {
			t.Errorf("Sample(count=%d) err = %v, want ErrInvalidRequest", count, err)
		}
	}
}

func TestSample_FullCorpus(t *testing.T) {
	corpus := testCorpus(t, 5)
	rng := rand.New(rand.NewSource(1))

	window, start, err := Sample(corpus, 5, rng)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if start != 0 || len(window) != 5 {
		t.Errorf("full-corpus sample: start=%d len=%d, want 0 and 5", start, len(window))
	}
}
