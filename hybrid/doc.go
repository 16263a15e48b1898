// Package hybrid builds a grammar in two phases: a bounded RE-PAIR
// precompression of the most frequent digrams, then a balanced bisection of
// the shortened sequence that reuses the precompression rules.
//
// Phase 1 (precompression):
//
//	At most Options.Rounds rounds of repair.Round. A round stops the phase
//	early when no digram occurs twice. Each round mints one two-symbol rule,
//	which later seeds the reuse index.
//
// Phase 2 (decomposition):
//
//	bisection.Decomposer over the precompressed symbol sequence. The
//	sequence is bisected symbol by symbol, a nonterminal produced in
//	phase 1 is never split. Every concatenation is looked up in the
//	grammar's reverse index, which at that point holds exactly the
//	phase-1 rules plus the rules minted so far by phase 2.
//
// Finally one indirection rule wrapping the decomposition root is minted
// and becomes the start symbol.
//
// Stats reports how many phase-1 rounds ran, the sequence length entering
// phase 2 and how many concatenations were satisfied by reuse.
//
// Complexity:
//
//   - Time:   O(Rounds·n + n)
//   - Memory: O(n)
package hybrid
