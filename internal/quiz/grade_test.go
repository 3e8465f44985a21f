package quiz

import (
	"testing"

	"github.com/nlpgym/tagdrill/internal/treebank"
)

func sentence(pairs ...[2]string) TaggedSentence {
	s := make(TaggedSentence, len(pairs))
	for i, p := range pairs {
		s[i] = treebank.TaggedToken{Token: p[0], POS: p[1]}
	}
	return s
}

func theManSawMe() TaggedSentence {
	return sentence(
		[2]string{"The", "DT"},
		[2]string{"man", "NN"},
		[2]string{"saw", "VBD"},
		[2]string{"me", "PRP"},
		[2]string{".", "."},
	)
}

func TestGrade_AllCorrect(t *testing.T) {
	res := Grade(theManSawMe(), SplitTags("DT NN VBD PRP ."))

	if res.Correct != 5 || res.Total != 5 {
		t.Errorf("got %d/%d, want 5/5", res.Correct, res.Total)
	}
	if len(res.Mistakes) != 0 {
		t.Errorf("mistakes = %v, want none", res.Mistakes)
	}
}

func TestGrade_CaseInsensitive(t *testing.T) {
	for _, input := range []string{
		"DT NN VBD PRP .",
		"dt nn vbd prp .",
		"DT nN vbd PRp .",
	} {
		res := Grade(theManSawMe(), SplitTags(input))
		if res.Correct != 5 || len(res.Mistakes) != 0 {
			t.Errorf("input %q: got %d/%d with %d mistakes, want perfect", input, res.Correct, res.Total, len(res.Mistakes))
		}
	}
}

func TestGrade_OneMistake(t *testing.T) {
	res := Grade(theManSawMe(), SplitTags("DT VB VBD PRP ."))

	if res.Correct != 4 {
		t.Errorf("Correct = %d, want 4", res.Correct)
	}
	if len(res.Mistakes) != 1 {
		t.Fatalf("mistake count = %d, want 1", len(res.Mistakes))
	}
	if res.Mistakes[0] != (Mistake{Gold: "NN", Guess: "VB"}) {
		t.Errorf("mistake = %+v, want {NN VB}", res.Mistakes[0])
	}
}

func TestGrade_MistakesKeepOriginalCase(t *testing.T) {
	res := Grade(theManSawMe(), SplitTags("dt vb vbd prp ."))

	if len(res.Mistakes) != 1 {
		t.Fatalf("mistake count = %d, want 1", len(res.Mistakes))
	}
	m := res.Mistakes[0]
	if m.Gold != "NN" || m.Guess != "vb" {
		t.Errorf("mistake = %+v, want gold NN and guess vb as typed", m)
	}
}

func TestGrade_MistakesInTokenOrder(t *testing.T) {
	res := Grade(theManSawMe(), SplitTags("JJ NN VB PRP ,"))

	want := []Mistake{
		{Gold: "DT", Guess: "JJ"},
		{Gold: "VBD", Guess: "VB"},
		{Gold: ".", Guess: ","},
	}
	if len(res.Mistakes) != len(want) {
		t.Fatalf("mistake count = %d, want %d", len(res.Mistakes), len(want))
	}
	for i := range want {
		if res.Mistakes[i] != want[i] {
			t.Errorf("mistake %d = %+v, want %+v", i, res.Mistakes[i], want[i])
		}
	}
}

// Any guess string is a legal tag; only position-wise equality matters.
func TestGrade_ArbitraryTagStrings(t *testing.T) {
	s := sentence([2]string{"x", "XYZ-1"})
	res := Grade(s, []string{"xyz-1"})
	if res.Correct != 1 {
		t.Errorf("Correct = %d, want 1", res.Correct)
	}
	res = Grade(s, []string{"whatever"})
	if res.Correct != 0 || res.Mistakes[0].Guess != "whatever" {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestGrade_EmptySentence(t *testing.T) {
	res := Grade(TaggedSentence{}, nil)

	if res.Correct != 0 || res.Total != 0 || len(res.Mistakes) != 0 {
		t.Errorf("empty sentence graded as %+v, want 0/0 and no mistakes", res)
	}
	if _, ok := res.Percent(); ok {
		t.Error("empty sentence must be excluded from percentage computation")
	}
}

// correct + mistakes always equals sentence length.
func TestGrade_CountsAddUp(t *testing.T) {
	s := theManSawMe()
	inputs := []string{
		"DT NN VBD PRP .",
		"a b c d e",
		"dt NN x PRP y",
	}
	for _, in := range inputs {
		res := Grade(s, SplitTags(in))
		if res.Correct+len(res.Mistakes) != len(s) {
			t.Errorf("input %q: correct %d + mistakes %d != len %d", in, res.Correct, len(res.Mistakes), len(s))
		}
	}
}

func TestSplitTags(t *testing.T) {
	got := SplitTags("  DT   NN\tVBD ")
	if len(got) != 3 || got[0] != "DT" || got[2] != "VBD" {
		t.Errorf("SplitTags = %v", got)
	}
	if len(SplitTags("   ")) != 0 {
		t.Error("blank line should split to no tags")
	}
}
