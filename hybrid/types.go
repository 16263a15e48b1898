package hybrid

import (
	"context"

	"github.com/katalvlaran/smallgrammar/digram"
	"github.com/katalvlaran/smallgrammar/grammar"
)

// DefaultRounds caps the precompression phase.
const DefaultRounds = 5

// Option configures Build.
type Option func(*Options)

// Options holds the parameters of a hybrid run.
type Options struct {
	// Ctx allows cancellation in both phases.
	Ctx context.Context

	// Rounds is the maximum number of precompression rounds. Zero skips
	// precompression, leaving plain bisection plus the indirection rule.
	Rounds int

	// TieBreak resolves digrams sharing the maximum count in phase 1.
	TieBreak digram.TieBreak

	// OnRule, if non-nil, is invoked after every minted rule.
	OnRule func(id grammar.ID, v grammar.Value)
}

// Stats describes one hybrid run.
type Stats struct {
	// Rounds is the number of precompression rounds that minted a rule.
	Rounds int

	// PrecompressedLen is the length of the sequence handed to phase 2.
	PrecompressedLen int

	// Reused counts phase-2 concatenations answered by an existing rule.
	Reused int
}

// DefaultOptions returns Options with a background context, five rounds
// and first-seen tie-break.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Rounds:   DefaultRounds,
		TieBreak: digram.FirstSeen,
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

// WithRounds sets the precompression cap. Panics if n < 0.
func WithRounds(n int) Option {
	if n < 0 {
		panic("hybrid: WithRounds(n < 0)")
	}
	return func(o *Options) {
		o.Rounds = n
	}
}

// WithTieBreak selects the phase-1 tie-break policy.
func WithTieBreak(tb digram.TieBreak) Option {
	return func(o *Options) {
		o.TieBreak = tb
	}
}

// WithOnRule installs a hook called after every minted rule.
func WithOnRule(fn func(id grammar.ID, v grammar.Value)) Option {
	return func(o *Options) {
		o.OnRule = fn
	}
}
