package grammar_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/smallgrammar/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// doubling returns a grammar for "a" repeated 2^levels times, each rule
// doubling the previous one.
func doubling(levels int) *grammar.Grammar {
	g := grammar.New()
	id := g.AddRule(grammar.Terminals("aa"))
	for i := 1; i < levels; i++ {
		id = g.AddRule(grammar.Value{grammar.NonTerminal(id), grammar.NonTerminal(id)})
	}
	g.SetStart(id)
	return g
}

// TestExpand_Doubling checks full expansion through shared nonterminals.
func TestExpand_Doubling(t *testing.T) {
	g := doubling(10)
	s, err := g.Text()
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("a", 1024), s)
	assert.Equal(t, 20, g.Size())
}

// TestExpander_SmallCache checks that eviction does not change results.
func TestExpander_SmallCache(t *testing.T) {
	g := doubling(8)
	e := grammar.NewExpander(g, 1)
	for id := grammar.ID(0); id < 8; id++ {
		v, err := e.Expand(id)
		require.NoError(t, err)
		assert.Len(t, v, 2<<int(id))
	}

	v, err := e.ExpandValue(grammar.Value{grammar.Terminal('x'), grammar.NonTerminal(0), grammar.Terminal('y')})
	require.NoError(t, err)
	assert.Equal(t, "xaay", v.String())
}

// TestText_NoStart checks Text on grammars without a start symbol.
func TestText_NoStart(t *testing.T) {
	s, err := grammar.New().Text()
	assert.NoError(t, err, "empty grammar derives the empty string")
	assert.Equal(t, "", s)

	g := grammar.New()
	g.AddRule(grammar.Terminals("ab"))
	_, err = g.Text()
	assert.ErrorIs(t, err, grammar.ErrNoStartSymbol)
}

// TestExpand_Unknown checks expansion of an unminted rule.
func TestExpand_Unknown(t *testing.T) {
	_, err := grammar.New().Expand(3)
	assert.ErrorIs(t, err, grammar.ErrUndefinedRule)
}
