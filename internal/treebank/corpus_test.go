package treebank

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSampleCorpus(t *testing.T) {
	c := Sample()
	if c.Len() < 10 {
		t.Errorf("sample corpus has %d sentences, want at least 10", c.Len())
	}
	for i := 0; i < c.Len(); i++ {
		if len(c.At(i).Leaves()) == 0 {
			t.Errorf("sentence %d has no leaves", i)
		}
	}
	if c.TagCount() == 0 {
		t.Error("expected distinct tags in sample corpus")
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wsj_0001.mrg")
	content := `( (S (NP (PRP I)) (VP (VBP agree)) (. .)) )
( (S (NP (PRP You)) (VP (VBP disagree)) (. .)) )
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
}

func TestLoad_DirectoryOrder(t *testing.T) {
	dir := t.TempDir()
	// Written out of name order; Load must sort.
	files := map[string]string{
		"wsj_0002.mrg": `( (S (NP (PRP You)) (VP (VBP disagree)) (. .)) )`,
		"wsj_0001.mrg": `( (S (NP (PRP I)) (VP (VBP agree)) (. .)) )`,
		"notes.txt":    "not a corpus file",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0600); err != nil {
			t.Fatal(err)
		}
	}

	c, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
	if got := c.At(0).Leaves()[0].Token; got != "I" {
		t.Errorf("first sentence starts with %q, want %q", got, "I")
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.mrg")); err == nil {
		t.Error("expected error for missing corpus path")
	}
}
