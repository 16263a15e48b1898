// Package digram counts adjacent symbol pairs of a working sequence and
// rewrites the sequence by replacing one pair with a single symbol.
//
// These are the two primitives of RE-PAIR style construction:
//
//   - Count:   a fresh frequency table of every adjacent pair, O(n).
//     Overlapping occurrences are all counted ("aaa" counts (a,a) twice).
//   - Replace: a left-to-right, non-overlapping rewrite of one pair, O(n),
//     done in place ("aaa" becomes [X a]).
//
// The table remembers the order in which pairs were first seen, so that
// Max can break ties deterministically.
package digram

import (
	"cmp"

	"github.com/katalvlaran/smallgrammar/grammar"
)

// TieBreak selects among pairs sharing the maximum count.
type TieBreak int

const (
	// FirstSeen picks the pair whose first occurrence is leftmost in the
	// sequence the table was counted from.
	FirstSeen TieBreak = iota

	// Lexicographic picks the smallest pair, comparing Left then Right by
	// symbol value (nonterminals sort before terminals).
	Lexicographic
)

// String returns the name of the tie-break policy.
func (t TieBreak) String() string {
	switch t {
	case FirstSeen:
		return "first-seen"
	case Lexicographic:
		return "lexicographic"
	default:
		return "unknown"
	}
}

// Pair is an ordered pair of adjacent symbols.
type Pair struct {
	Left, Right grammar.Symbol
}

// Value returns the two-symbol right-hand side for p.
func (p Pair) Value() grammar.Value {
	return grammar.Value{p.Left, p.Right}
}

// String renders the pair as its concatenation.
func (p Pair) String() string {
	return p.Value().String()
}

func comparePairs(a, b Pair) int {
	if c := cmp.Compare(a.Left, b.Left); c != 0 {
		return c
	}
	return cmp.Compare(a.Right, b.Right)
}

// Table is a digram frequency snapshot of one sequence.
type Table struct {
	counts map[Pair]int
	order  []Pair // distinct pairs in first-seen order
}

// Count returns the frequency table of all adjacent pairs of seq.
func Count(seq grammar.Value) *Table {
	t := &Table{counts: make(map[Pair]int)}
	for i := 0; i+1 < len(seq); i++ {
		p := Pair{seq[i], seq[i+1]}
		if t.counts[p] == 0 {
			t.order = append(t.order, p)
		}
		t.counts[p]++
	}
	return t
}

// Len returns the number of distinct pairs.
func (t *Table) Len() int { return len(t.order) }

// Count returns how often p occurs (overlaps included).
func (t *Table) Count(p Pair) int { return t.counts[p] }

// Pairs returns the distinct pairs in first-seen order.
func (t *Table) Pairs() []Pair {
	out := make([]Pair, len(t.order))
	copy(out, t.order)
	return out
}

// Max returns the most frequent pair and its count, breaking ties with tb.
// ok is false when the table is empty.
func (t *Table) Max(tb TieBreak) (best Pair, count int, ok bool) {
	for _, p := range t.order {
		c := t.counts[p]
		switch {
		case !ok || c > count:
			best, count, ok = p, c, true
		case c == count && tb == Lexicographic && comparePairs(p, best) < 0:
			best = p
		}
	}
	return best, count, ok
}

// Replace rewrites seq in place, replacing every non-overlapping occurrence
// of p, scanning left to right, with sym. It returns the shortened sequence
// and the number of replacements.
func Replace(seq grammar.Value, p Pair, sym grammar.Symbol) (grammar.Value, int) {
	dst, n := 0, 0
	for i := 0; i < len(seq); {
		if i+1 < len(seq) && seq[i] == p.Left && seq[i+1] == p.Right {
			seq[dst] = sym
			i += 2
			n++
		} else {
			seq[dst] = seq[i]
			i++
		}
		dst++
	}
	return seq[:dst], n
}
