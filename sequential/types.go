package sequential

import (
	"context"

	"github.com/katalvlaran/smallgrammar/grammar"
)

// DefaultMaxLength is the longest substring considered for a token.
const DefaultMaxLength = 5

// Scoring selects the benefit estimate of a candidate token.
type Scoring int

const (
	// RawCount scores count*(l-1), counting every occurrence including the
	// candidate itself. A substring seen once still scores l-1.
	RawCount Scoring = iota

	// Repeats scores (count-1)*(l-1): only the other occurrences of the
	// candidate count, so an input without repeats is emitted character by
	// character.
	Repeats
)

// Option configures Build.
type Option func(*Options)

// Options holds the parameters of a sequential run.
type Options struct {
	// Ctx allows cancellation; checked once per emitted token.
	Ctx context.Context

	// MaxLength bounds candidate token lengths (and the frequency table).
	MaxLength int

	// Scoring selects the score formula; RawCount by default.
	Scoring Scoring

	// OnRule, if non-nil, is invoked after every minted rule, glue included.
	OnRule func(id grammar.ID, v grammar.Value)
}

// DefaultOptions returns Options with a background context, MaxLength 5
// and RawCount scoring.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxLength: DefaultMaxLength,
		Scoring:   RawCount,
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

// WithMaxLength sets the longest candidate token. Panics if n < 1.
func WithMaxLength(n int) Option {
	if n < 1 {
		panic("sequential: WithMaxLength(n < 1)")
	}
	return func(o *Options) {
		o.MaxLength = n
	}
}

// WithScoring selects the score formula.
func WithScoring(sc Scoring) Option {
	return func(o *Options) {
		o.Scoring = sc
	}
}

// WithOnRule installs a hook called after every minted rule.
func WithOnRule(fn func(id grammar.ID, v grammar.Value)) Option {
	return func(o *Options) {
		o.OnRule = fn
	}
}
