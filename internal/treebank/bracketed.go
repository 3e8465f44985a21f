package treebank

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Read parses every bracketed parse tree in the reader, in order. The input
// is the Penn Treebank .mrg layout: one s-expression per sentence, usually
// wrapped in an extra pair of parentheses with an empty label.
func Read(r io.Reader) ([]*Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseAll(string(data))
}

// ParseAll parses a string containing zero or more bracketed trees.
func ParseAll(s string) ([]*Tree, error) {
	p := &parser{input: s}
	var trees []*Tree
	for {
		p.skipSpace()
		if p.done() {
			return trees, nil
		}
		t, err := p.parseTree()
		if err != nil {
			return nil, err
		}
		trees = append(trees, t)
	}
}

// Parse parses exactly one bracketed tree.
func Parse(s string) (*Tree, error) {
	trees, err := ParseAll(s)
	if err != nil {
		return nil, err
	}
	if len(trees) != 1 {
		return nil, fmt.Errorf("expected one tree, found %d", len(trees))
	}
	return trees[0], nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) done() bool {
	return p.pos >= len(p.input)
}

func (p *parser) skipSpace() {
	for !p.done() && unicode.IsSpace(rune(p.input[p.pos])) {
		p.pos++
	}
}

// atom reads a run of characters up to whitespace or a parenthesis.
func (p *parser) atom() string {
	start := p.pos
	for !p.done() {
		c := p.input[p.pos]
		if c == '(' || c == ')' || unicode.IsSpace(rune(c)) {
			break
		}
		p.pos++
	}
	return p.input[start:p.pos]
}

func (p *parser) parseTree() (*Tree, error) {
	if p.done() || p.input[p.pos] != '(' {
		return nil, fmt.Errorf("offset %d: expected '('", p.pos)
	}
	p.pos++
	p.skipSpace()

	node := &Tree{Label: p.atom()}

	for {
		p.skipSpace()
		if p.done() {
			return nil, fmt.Errorf("offset %d: unexpected end of input in %q", p.pos, node.Label)
		}
		switch p.input[p.pos] {
		case ')':
			p.pos++
			return unwrap(node), nil
		case '(':
			child, err := p.parseTree()
			if err != nil {
				return nil, err
			}
			node.Children = append(node.Children, child)
		default:
			if node.Word != "" {
				return nil, fmt.Errorf("offset %d: second word under %q", p.pos, node.Label)
			}
			if len(node.Children) > 0 {
				return nil, fmt.Errorf("offset %d: word after children under %q", p.pos, node.Label)
			}
			node.Word = p.atom()
		}
	}
}

// unwrap drops the empty-label wrapper node the .mrg layout puts around each
// sentence, so corpus indices line up with sentences.
func unwrap(t *Tree) *Tree {
	if strings.TrimSpace(t.Label) == "" && t.Word == "" && len(t.Children) == 1 {
		return t.Children[0]
	}
	return t
}
