package lz78

import (
	"github.com/katalvlaran/smallgrammar/grammar"
)

// Build returns the phrase dictionary of input as a grammar without a
// start symbol. The empty input yields an empty grammar.
//
// Errors: grammar.ErrInvalidInput for input that is not valid UTF-8, and
// the context's error when it is cancelled.
func Build(input string, opts ...Option) (*grammar.Grammar, error) {
	g, _, err := Factorize(input, opts...)
	return g, err
}

// Factorize is Build that also returns the phrase sequence: one rule ID per
// emitted phrase, in input order. A trailing phrase that was already known
// appears in the sequence although no rule was minted for it.
func Factorize(input string, opts ...Option) (*grammar.Grammar, []grammar.ID, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := grammar.New()
	text, err := grammar.ParseTerminals(input)
	if err != nil {
		return nil, nil, err
	}
	root := newNode(-1)
	var phrases []grammar.ID

	for i := 0; i < len(text); {
		// 1. Cancellation check per phrase
		select {
		case <-o.Ctx.Done():
			return nil, nil, o.Ctx.Err()
		default:
		}

		// 2. Longest known phrase starting at i
		cur, j := root, i
		for j < len(text) {
			next := cur.child(text[j])
			if next == nil {
				break
			}
			cur = next
			j++
		}

		// 3a. Input ends inside a known phrase: emit it, mint nothing
		if j == len(text) {
			phrases = append(phrases, cur.id)
			break
		}

		// 3b. Extend by one character: always a new phrase
		v := text[i : j+1]
		id := g.AddRule(v)
		if o.OnRule != nil {
			o.OnRule(id, v)
		}
		cur.insert(text[j], id)
		phrases = append(phrases, id)
		i = j + 1
	}

	return g, phrases, nil
}
