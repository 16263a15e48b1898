package lz78

import "github.com/katalvlaran/smallgrammar/grammar"

// node is one phrase of the dictionary. The root is the empty phrase and
// carries no rule.
type node struct {
	id       grammar.ID
	children map[grammar.Symbol]*node
}

func newNode(id grammar.ID) *node {
	return &node{id: id}
}

// child returns the phrase extended by s, or nil.
func (n *node) child(s grammar.Symbol) *node {
	return n.children[s]
}

// insert registers the extension of n by s as phrase id.
func (n *node) insert(s grammar.Symbol, id grammar.ID) *node {
	if n.children == nil {
		n.children = make(map[grammar.Symbol]*node)
	}
	c := newNode(id)
	n.children[s] = c
	return c
}
