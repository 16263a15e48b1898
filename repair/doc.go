// Package repair builds a grammar by RE-PAIR style digram replacement.
//
// What:
//
//	Starting from the input characters as the working sequence, each round
//	counts every adjacent pair afresh, mints a rule for the most frequent
//	one and rewrites its non-overlapping occurrences left to right. Rounds
//	continue until no pair occurs at least MinFrequency times; the
//	remaining sequence becomes the start rule.
//
// Example ("aaaa"):
//
//	round 1: (a,a)×3 → A0 = aa, sequence [A0 A0]
//	round 2: (A0,A0)×1 < 2 → stop
//	glue:    A1 = A0A0      size = 4
//
// Tie-break:
//
//	Pairs sharing the maximum count are resolved by Options.TieBreak.
//	The default, digram.FirstSeen, takes the pair whose first occurrence
//	is leftmost in the current sequence.
//
// Complexity:
//
//   - Time:   O(n) per round, at most n/2 rounds → O(n²) worst case
//   - Memory: O(n) (working sequence + one frequency table)
//
// Termination: every successful round shortens the working sequence by at
// least one symbol.
package repair
