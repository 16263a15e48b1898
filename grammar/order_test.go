package grammar_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/smallgrammar/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTopologicalOrder_MintOrder checks that a grammar referencing only
// earlier rules is ordered by ID.
func TestTopologicalOrder_MintOrder(t *testing.T) {
	g := grammar.New()
	a := g.AddRule(grammar.Terminals("ab"))
	b := g.AddRule(grammar.Value{grammar.NonTerminal(a), grammar.NonTerminal(a)})
	c := g.AddRule(grammar.Value{grammar.NonTerminal(b), grammar.Terminal('c')})

	order, err := g.TopologicalOrder()
	require.NoError(t, err)
	assert.Equal(t, []grammar.ID{a, b, c}, order)
	assert.NoError(t, g.Validate())
}

// TestTopologicalOrder_ForwardReference checks that a rule referencing a
// later rule is placed after it.
func TestTopologicalOrder_ForwardReference(t *testing.T) {
	g := grammar.New()
	g.AddRule(grammar.Value{grammar.NonTerminal(1), grammar.Terminal('c')}) // A0 = A1c
	g.AddRule(grammar.Terminals("ab"))                                       // A1 = ab

	order, err := g.TopologicalOrder()
	require.NoError(t, err)
	assert.Equal(t, []grammar.ID{1, 0}, order)

	s, err := g.ExpandString(0)
	require.NoError(t, err)
	assert.Equal(t, "abc", s)
}

// TestValidate_Cycle ensures a cyclic rule graph is rejected.
func TestValidate_Cycle(t *testing.T) {
	g := grammar.New()
	g.AddRule(grammar.Value{grammar.NonTerminal(1)})
	g.AddRule(grammar.Value{grammar.Terminal('x'), grammar.NonTerminal(0)})

	assert.ErrorIs(t, g.Validate(), grammar.ErrCycleDetected)
	_, err := g.Expand(0)
	assert.ErrorIs(t, err, grammar.ErrCycleDetected)
}

// TestValidate_SelfLoop ensures a rule referencing itself is a cycle.
func TestValidate_SelfLoop(t *testing.T) {
	g := grammar.New()
	g.AddRule(grammar.Value{grammar.NonTerminal(0)})
	assert.ErrorIs(t, g.Validate(), grammar.ErrCycleDetected)
}

// TestValidate_Undefined ensures references to unminted rules are rejected.
func TestValidate_Undefined(t *testing.T) {
	g := grammar.New()
	g.AddRule(grammar.Value{grammar.NonTerminal(5)})

	assert.ErrorIs(t, g.Validate(), grammar.ErrUndefinedRule)
	_, err := g.Expand(0)
	assert.ErrorIs(t, err, grammar.ErrUndefinedRule)
}

// TestTopologicalOrder_Cancelled verifies the traversal honors its context.
func TestTopologicalOrder_Cancelled(t *testing.T) {
	g := grammar.New()
	g.AddRule(grammar.Terminals("ab"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := g.TopologicalOrder(grammar.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
