package treebank

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Corpus is an ordered, indexable collection of parse trees.
type Corpus struct {
	trees  []*Tree
	source string
}

// NewCorpus builds a corpus from already-parsed trees.
func NewCorpus(trees []*Tree, source string) *Corpus {
	return &Corpus{trees: trees, source: source}
}

// Len returns the number of sentences in the corpus.
func (c *Corpus) Len() int {
	return len(c.trees)
}

// At returns the i-th parse tree.
func (c *Corpus) At(i int) *Tree {
	return c.trees[i]
}

// Slice returns the contiguous window [start, start+count).
func (c *Corpus) Slice(start, count int) []*Tree {
	return c.trees[start : start+count]
}

// Source describes where the corpus came from, for display.
func (c *Corpus) Source() string {
	return c.source
}

// TokenCount returns the total number of leaves across all trees.
func (c *Corpus) TokenCount() int {
	n := 0
	for _, t := range c.trees {
		n += len(t.Leaves())
	}
	return n
}

// TagCount returns the number of distinct POS tags in the corpus.
func (c *Corpus) TagCount() int {
	seen := make(map[string]bool)
	for _, t := range c.trees {
		for _, l := range t.Leaves() {
			seen[l.POS] = true
		}
	}
	return len(seen)
}

// Load reads a corpus from a bracketed-parse file, or from every .mrg file
// in a directory. Directory files are read in name order so the sentence
// order is stable across runs.
func Load(path string) (*Corpus, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat corpus: %w", err)
	}

	files := []string{path}
	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("read corpus dir: %w", err)
		}
		files = files[:0]
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".mrg") {
				continue
			}
			files = append(files, filepath.Join(path, e.Name()))
		}
		sort.Strings(files)
		if len(files) == 0 {
			return nil, fmt.Errorf("no .mrg files in %s", path)
		}
	}

	var trees []*Tree
	for _, f := range files {
		file, err := os.Open(f)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", f, err)
		}
		parsed, err := Read(file)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", f, err)
		}
		trees = append(trees, parsed...)
	}

	if len(trees) == 0 {
		return nil, fmt.Errorf("no sentences in %s", path)
	}
	return NewCorpus(trees, path), nil
}
