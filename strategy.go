package smallgrammar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/smallgrammar/bisection"
	"github.com/katalvlaran/smallgrammar/grammar"
	"github.com/katalvlaran/smallgrammar/hybrid"
	"github.com/katalvlaran/smallgrammar/lz78"
	"github.com/katalvlaran/smallgrammar/repair"
	"github.com/katalvlaran/smallgrammar/sequential"
)

// ErrUnknownStrategy indicates a strategy name that Construct does not know.
var ErrUnknownStrategy = errors.New("smallgrammar: unknown strategy")

// Strategy names one grammar construction algorithm.
type Strategy string

const (
	LZ78       Strategy = "lz78"       // incremental trie factorization
	Bisection  Strategy = "bisection"  // recursive bisection with reuse
	Sequential Strategy = "sequential" // greedy static-frequency tokenization
	RePair     Strategy = "repair"     // digram replacement to convergence
	Hybrid     Strategy = "hybrid"     // precompressed bisection
)

// Strategies returns every strategy in a fixed order.
func Strategies() []Strategy {
	return []Strategy{LZ78, Bisection, Sequential, RePair, Hybrid}
}

// ParseStrategy returns the Strategy called name.
func ParseStrategy(name string) (Strategy, error) {
	for _, s := range Strategies() {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Construct builds a grammar for input with strategy s, using the default
// options of that strategy and ctx for cancellation.
func Construct(ctx context.Context, s Strategy, input string) (*grammar.Grammar, error) {
	var (
		g   *grammar.Grammar
		err error
	)
	switch s {
	case LZ78:
		g, err = lz78.Build(input, lz78.WithContext(ctx))
	case Bisection:
		g, err = bisection.Build(input, bisection.WithContext(ctx))
	case Sequential:
		g, err = sequential.Build(input, sequential.WithContext(ctx))
	case RePair:
		g, err = repair.Build(input, repair.WithContext(ctx))
	case Hybrid:
		g, err = hybrid.Build(input, hybrid.WithContext(ctx))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, string(s))
	}
	if err != nil {
		return nil, fmt.Errorf("smallgrammar: %s: %w", s, err)
	}
	return g, nil
}
