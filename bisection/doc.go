// Package bisection builds a grammar by balanced recursive bisection of the
// input, reusing a rule whenever two halves concatenate to a right-hand
// side that already exists.
//
// What:
//
//	recurse(start, end):
//	  a span of one symbol is returned as is (no rule);
//	  otherwise split at mid = (start+end)/2, solve left then right,
//	  and return the rule for [left right], minting it only when no rule
//	  with exactly that right-hand side exists yet.
//
//	The left half is always solved before the right one, so rule IDs (and
//	therefore which rule a later span reuses) are deterministic.
//
// Example ("ab"): recurse(0,1)=a, recurse(1,2)=b → A0 = ab, size 2.
//
// One-character input: Build mints A0 = c as the start symbol, although
// recurse itself mints nothing for a span of one, so that every non-empty
// input derives back through a start rule.
//
// Reuse:
//
//	The reuse check is an exact lookup in the grammar's reverse index,
//	equivalent to scanning every rule for an equal value but O(1) per node.
//
// Complexity:
//
//   - Time:   O(n) nodes, O(1) expected per node
//   - Memory: O(n) rules worst case, recursion depth O(log n)
//
// Decomposer is exported so that other strategies (hybrid) can bisect a
// sequence that already contains nonterminals into a grammar that already
// has rules.
package bisection
