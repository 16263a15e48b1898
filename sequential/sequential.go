package sequential

import (
	"github.com/katalvlaran/smallgrammar/grammar"
)

// Build returns a grammar for input built by greedy tokenization.
// The start symbol is the final glue rule. The empty input yields an empty
// grammar.
//
// Errors: grammar.ErrInvalidInput for input that is not valid UTF-8, and
// the context's error when it is cancelled.
func Build(input string, opts ...Option) (*grammar.Grammar, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	maxLen := o.MaxLength
	if maxLen < 1 {
		maxLen = DefaultMaxLength
	}

	g := grammar.New()
	text, err := grammar.ParseTerminals(input)
	if err != nil {
		return nil, err
	}
	n := len(text)
	if n == 0 {
		return g, nil
	}
	mint := func(v grammar.Value) grammar.ID {
		id := g.AddRule(v)
		if o.OnRule != nil {
			o.OnRule(id, v)
		}
		return id
	}

	// 1. Static frequency table over the whole input
	freq := make(map[string]int, n*maxLen)
	for l := 1; l <= maxLen; l++ {
		for i := 0; i+l <= n; i++ {
			freq[text[i:i+l].Key()]++
		}
	}

	// 2. Greedy tokenization
	result := make(grammar.Value, 0, n)
	for i := 0; i < n; {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		bestLen, bestScore := 1, 0
		for l := 1; l <= maxLen && i+l <= n; l++ {
			count := freq[text[i:i+l].Key()]
			if o.Scoring == Repeats {
				count--
			}
			score := count * (l - 1)
			if score > bestScore {
				bestLen, bestScore = l, score
			}
		}

		token := text[i : i+bestLen]
		id, ok := g.Lookup(token)
		if !ok {
			id = mint(token)
		}
		result = append(result, grammar.NonTerminal(id))
		i += bestLen
	}

	// 3. Glue rule
	g.SetStart(mint(result))

	return g, nil
}
