package treebank

// sampleSource is a small built-in set of bracketed parses in the Penn
// Treebank tagset, so the tool works before the user points it at a real
// corpus. A few sentences include -NONE- trace leaves on purpose.
const sampleSource = `
( (S (NP (DT The) (NN man)) (VP (VBD saw) (NP (PRP me))) (. .)) )
( (S (NP (DT A) (JJ small) (NN dog)) (VP (VBD barked) (ADVP (RB loudly))) (. .)) )
( (S (NP (PRP She)) (VP (VBZ writes) (NP (JJ short) (NNS stories))) (. .)) )
( (S (NP (DT The) (NNS children)) (VP (VBP play) (PP (IN in) (NP (DT the) (NN park)))) (. .)) )
( (S (NP (NNP John)) (VP (VBD gave) (NP (PRP$ his) (NN sister)) (NP (DT a) (NN book))) (. .)) )
( (S (NP (DT The) (NN committee)) (VP (MD will) (VP (VB meet) (NP (-NONE- *T*)) (NP (JJ next) (NN week)))) (. .)) )
( (S (NP (EX There)) (VP (VBZ is) (NP (DT no) (NN reason) (S (-NONE- *ICH*) (VP (TO to) (VP (VB worry)))))) (. .)) )
( (SQ (VBD Did) (NP (PRP you)) (VP (VB read) (NP (DT the) (NN report))) (. ?)) )
( (S (NP (DT The) (JJ old) (NN bridge)) (VP (VBD was) (VP (VBN repaired) (NP (-NONE- *)) (PP (IN by) (NP (DT the) (NN city))))) (. .)) )
( (S (NP (PRP They)) (VP (VBP have) (ADVP (RB never)) (VP (VBN visited) (NP (NNP Boston)))) (. .)) )
( (S (NP (DT This) (NN wine)) (VP (VBZ tastes) (ADJP (JJ sweet))) (. .)) )
( (S (NP (DT The) (NN train)) (VP (VBD arrived) (ADVP (RB late)) (NP (NN yesterday))) (. .)) )
`

// Sample returns the built-in demo corpus.
func Sample() *Corpus {
	trees, err := ParseAll(sampleSource)
	if err != nil {
		// The source is a compile-time constant; a parse failure is a bug.
		panic("treebank: bad built-in corpus: " + err.Error())
	}
	return NewCorpus(trees, "built-in sample")
}
