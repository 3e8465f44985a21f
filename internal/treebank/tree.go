package treebank

// TaggedToken is a single (token, part-of-speech tag) leaf pair.
type TaggedToken struct {
	Token, POS string
}

// Tree is one node of a constituency parse tree. Interior nodes carry a
// phrase label and children; leaf nodes carry a word whose POS tag is the
// label of the preterminal node directly above it.
type Tree struct {
	Label    string
	Word     string
	Children []*Tree
}

// IsLeaf reports whether the node is a terminal (word-bearing) node.
func (t *Tree) IsLeaf() bool {
	return len(t.Children) == 0
}

// Leaves returns the tree's (token, tag) pairs in left-to-right order.
// For a preterminal (DT The), the pair is {Token: "The", POS: "DT"}.
func (t *Tree) Leaves() []TaggedToken {
	var out []TaggedToken
	t.appendLeaves(&out)
	return out
}

func (t *Tree) appendLeaves(out *[]TaggedToken) {
	if t.IsLeaf() {
		if t.Word != "" {
			*out = append(*out, TaggedToken{Token: t.Word, POS: t.Label})
		}
		return
	}
	for _, c := range t.Children {
		c.appendLeaves(out)
	}
}
