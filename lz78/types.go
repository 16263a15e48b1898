package lz78

import (
	"context"

	"github.com/katalvlaran/smallgrammar/grammar"
)

// Option configures Build and Factorize.
type Option func(*Options)

// Options holds the parameters of a factorization.
type Options struct {
	// Ctx allows cancellation; checked once per phrase.
	Ctx context.Context

	// OnRule, if non-nil, is invoked after every minted rule.
	OnRule func(id grammar.ID, v grammar.Value)
}

// DefaultOptions returns Options with a background context and no hook.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnRule installs a hook called after every minted rule.
func WithOnRule(fn func(id grammar.ID, v grammar.Value)) Option {
	return func(o *Options) {
		o.OnRule = fn
	}
}
