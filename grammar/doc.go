// Package grammar defines the rule table shared by every construction
// strategy of smallgrammar, together with the symbols it is built from.
//
// What:
//
//   - Symbol: one unit of a right-hand side. Terminals hold a rune of the
//     input; nonterminals reference a previously minted rule.
//   - Value:  a right-hand side ([]Symbol). Its length is its contribution
//     to Grammar.Size.
//   - Grammar: an append-only table of rules A0, A1, A2, ... minted in
//     order, with a reverse index (Value → first ID holding it) so that
//     strategies can reuse an existing rule instead of minting a duplicate.
//
// Why:
//
//   - The size of a straight-line grammar (sum of right-hand-side lengths)
//     is the objective of the smallest grammar problem and a proxy for
//     grammar-based compression.
//   - All strategies populate the same structure, so results can be compared
//     on rule count (Len) and total size (Size).
//
// Key operations:
//
//   - AddRule(v)        mint a new rule, O(len(v))
//   - Size(), Len()     O(1) metrics
//   - Lookup(v)         exact-value reuse check, O(len(v))
//   - Validate()        every reference defined, rule graph acyclic
//   - TopologicalOrder  dependencies-first order (DFS, White/Gray/Black)
//   - Expand / Text     decompression back to the input text
//   - Expander          memoizing decompression with a bounded LRU cache
//   - Digest            xxhash64 fingerprint of the rule table
//
// Errors:
//
//   - ErrUndefinedRule  a right-hand side references an unknown rule
//   - ErrCycleDetected  the rule graph is not acyclic
//   - ErrNoStartSymbol  Text() on a grammar without a start symbol
//   - ErrInvalidInput   ParseTerminals on a string that is not valid UTF-8
//
// A Grammar is owned by the call that built it and is not safe for
// concurrent mutation; read-only use from several goroutines is fine once
// construction has returned.
package grammar
