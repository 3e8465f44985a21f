package treebank

import (
	"testing"
)

const simpleSent = `( (S (NP (DT The) (NN man)) (VP (VBD saw) (NP (PRP me))) (. .)) )`

func TestParse_Leaves(t *testing.T) {
	tree, err := Parse(simpleSent)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []TaggedToken{
		{"The", "DT"},
		{"man", "NN"},
		{"saw", "VBD"},
		{"me", "PRP"},
		{".", "."},
	}
	got := tree.Leaves()
	if len(got) != len(want) {
		t.Fatalf("Leaves length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("leaf %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParse_UnwrapsOuterShell(t *testing.T) {
	tree, err := Parse(simpleSent)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tree.Label != "S" {
		t.Errorf("root label = %q, want %q", tree.Label, "S")
	}
}

func TestParse_KeepsTraceLeaves(t *testing.T) {
	tree, err := Parse(`( (S (NP (-NONE- *T*)) (VP (VB go))) )`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	leaves := tree.Leaves()
	if len(leaves) != 2 {
		t.Fatalf("Leaves length = %d, want 2", len(leaves))
	}
	if leaves[0].POS != "-NONE-" || leaves[0].Token != "*T*" {
		t.Errorf("trace leaf = %+v, want {*T* -NONE-}", leaves[0])
	}
}

func TestParseAll_MultipleTrees(t *testing.T) {
	trees, err := ParseAll(simpleSent + "\n" + simpleSent)
	if err != nil {
		t.Fatalf("ParseAll: %v", err)
	}
	if len(trees) != 2 {
		t.Errorf("tree count = %d, want 2", len(trees))
	}
}

func TestParseAll_Empty(t *testing.T) {
	trees, err := ParseAll("  \n\t ")
	if err != nil {
		t.Fatalf("ParseAll: %v", err)
	}
	if len(trees) != 0 {
		t.Errorf("tree count = %d, want 0", len(trees))
	}
}

func TestParse_Unbalanced(t *testing.T) {
	if _, err := Parse(`( (S (NP (DT The)`); err == nil {
		t.Error("expected error for unbalanced input")
	}
	if _, err := ParseAll(`NP (DT The))`); err == nil {
		t.Error("expected error for input not starting with '('")
	}
}
