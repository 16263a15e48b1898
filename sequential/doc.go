// Package sequential builds a grammar by greedy left-to-right tokenization
// scored against a static substring frequency table.
//
// Phase 1 counts every substring of length 1..MaxLength over the whole
// input, once. The counts are never decremented as tokens are consumed, so
// a later choice may rely on occurrences an earlier token already used.
//
// Phase 2 scans from position i and scores each candidate length l that
// fits as count(input[i:i+l]) * (l-1). The candidate with the strictly
// greatest score wins (ties keep the shorter one); a single character
// scores 0 and is the fallback. The chosen substring reuses its rule when
// one exists, otherwise a rule is minted. A final glue rule lists the
// chosen rules in order and is the start symbol.
//
// With Options.Scoring set to Repeats the count excludes the candidate
// itself, (count-1)*(l-1), so that substrings occurring once never beat a
// single character.
//
// Complexity:
//
//   - Time:   O(n·L) with L = MaxLength
//   - Memory: O(n·L) frequency entries
package sequential
