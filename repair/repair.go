package repair

import (
	"github.com/katalvlaran/smallgrammar/digram"
	"github.com/katalvlaran/smallgrammar/grammar"
)

// Build returns a grammar for input built by repeated digram replacement.
// The start symbol is the final glue rule holding the converged sequence.
// The empty input yields an empty grammar.
//
// Errors: grammar.ErrInvalidInput for input that is not valid UTF-8, and
// the context's error when it is cancelled between rounds.
func Build(input string, opts ...Option) (*grammar.Grammar, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := grammar.New()
	seq, err := grammar.ParseTerminals(input)
	if err != nil {
		return nil, err
	}
	if len(seq) == 0 {
		return g, nil
	}

	for {
		// 1. Cancellation check per round
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		// 2. One replacement round; stop once nothing repeats enough
		var ok bool
		if seq, _, ok = Round(g, seq, o); !ok {
			break
		}
	}

	// 3. Glue rule over whatever is left
	g.SetStart(o.mint(g, seq))

	return g, nil
}

// Round performs one RE-PAIR iteration on seq: count all digrams, pick the
// most frequent one, mint its rule in g and rewrite seq in place.
//
// It returns the rewritten sequence and the new rule. ok is false, and seq
// is returned untouched, when seq has no digram or the best count is below
// o.MinFrequency.
func Round(g *grammar.Grammar, seq grammar.Value, o Options) (grammar.Value, grammar.ID, bool) {
	minFreq := o.MinFrequency
	if minFreq < DefaultMinFrequency {
		minFreq = DefaultMinFrequency
	}

	table := digram.Count(seq)
	best, count, found := table.Max(o.TieBreak)
	if !found || count < minFreq {
		return seq, 0, false
	}

	id := o.mint(g, best.Value())
	seq, _ = digram.Replace(seq, best, grammar.NonTerminal(id))

	return seq, id, true
}
