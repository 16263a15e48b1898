package hybrid

import (
	"github.com/katalvlaran/smallgrammar/bisection"
	"github.com/katalvlaran/smallgrammar/grammar"
	"github.com/katalvlaran/smallgrammar/repair"
)

// Build returns a grammar for input built by precompressed bisection.
// See BuildWithStats.
func Build(input string, opts ...Option) (*grammar.Grammar, error) {
	g, _, err := BuildWithStats(input, opts...)
	return g, err
}

// BuildWithStats returns a grammar for input together with run statistics.
// The empty input yields an empty grammar and zero Stats.
//
// Errors: grammar.ErrInvalidInput for input that is not valid UTF-8, and
// the context's error when it is cancelled.
func BuildWithStats(input string, opts ...Option) (*grammar.Grammar, Stats, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var st Stats
	g := grammar.New()
	seq, err := grammar.ParseTerminals(input)
	if err != nil {
		return nil, Stats{}, err
	}
	if len(seq) == 0 {
		return g, st, nil
	}

	// 1. Bounded precompression
	ro := repair.Options{
		Ctx:          o.Ctx,
		TieBreak:     o.TieBreak,
		MinFrequency: repair.DefaultMinFrequency,
		OnRule:       o.OnRule,
	}
	for st.Rounds < o.Rounds {
		select {
		case <-o.Ctx.Done():
			return nil, Stats{}, o.Ctx.Err()
		default:
		}
		var ok bool
		if seq, _, ok = repair.Round(g, seq, ro); !ok {
			break
		}
		st.Rounds++
	}
	st.PrecompressedLen = len(seq)

	// 2. Bisection over the precompressed symbols, reusing phase-1 rules
	d := bisection.NewDecomposer(g, bisection.Options{Ctx: o.Ctx, OnRule: o.OnRule})
	root, _, err := d.Decompose(seq)
	if err != nil {
		return nil, Stats{}, err
	}
	st.Reused = d.Reused()

	// 3. Indirection rule on top of the decomposition root
	v := grammar.Value{root}
	id := g.AddRule(v)
	if o.OnRule != nil {
		o.OnRule(id, v)
	}
	g.SetStart(id)

	return g, st, nil
}
