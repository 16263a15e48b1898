package repair

import (
	"context"

	"github.com/katalvlaran/smallgrammar/digram"
	"github.com/katalvlaran/smallgrammar/grammar"
)

// DefaultMinFrequency is the smallest pair count worth a rule: a pair seen
// once saves nothing.
const DefaultMinFrequency = 2

// Option configures Build and Round.
type Option func(*Options)

// Options holds the parameters of a RE-PAIR run.
type Options struct {
	// Ctx allows cancellation between rounds; defaults to context.Background().
	Ctx context.Context

	// TieBreak resolves pairs sharing the maximum count.
	TieBreak digram.TieBreak

	// MinFrequency is the count the best pair must reach for a round to
	// mint a rule.
	MinFrequency int

	// OnRule, if non-nil, is invoked after every minted rule, glue included.
	OnRule func(id grammar.ID, v grammar.Value)
}

// DefaultOptions returns Options with a background context, first-seen
// tie-break and MinFrequency 2.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		TieBreak:     digram.FirstSeen,
		MinFrequency: DefaultMinFrequency,
	}
}

// WithContext sets the cancellation context. A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTieBreak selects the tie-break policy among equally frequent pairs.
func WithTieBreak(tb digram.TieBreak) Option {
	return func(o *Options) {
		o.TieBreak = tb
	}
}

// WithMinFrequency sets the minimum count of a replaced pair.
// Panics if n < 2: replacing a unique pair can only grow the grammar.
func WithMinFrequency(n int) Option {
	if n < 2 {
		panic("repair: WithMinFrequency(n < 2)")
	}
	return func(o *Options) {
		o.MinFrequency = n
	}
}

// WithOnRule installs a hook called after every minted rule.
func WithOnRule(fn func(id grammar.ID, v grammar.Value)) Option {
	return func(o *Options) {
		o.OnRule = fn
	}
}

// mint adds v to g and reports it to the hook.
func (o *Options) mint(g *grammar.Grammar, v grammar.Value) grammar.ID {
	id := g.AddRule(v)
	if o.OnRule != nil {
		o.OnRule(id, v)
	}
	return id
}
