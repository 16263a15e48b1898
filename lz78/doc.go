// Package lz78 factors the input into LZ78 phrases and records each new
// phrase as a rule.
//
// What:
//
//	From cursor i, follow the longest prefix of input[i:] that is already a
//	phrase, then extend it by one more character when input remains. That
//	phrase is new and becomes a rule holding its characters. When the
//	input ends inside a known phrase, the phrase is emitted without a new
//	rule.
//
// The dictionary is a trie: every node is a phrase and its children are
// the one-character extensions seen so far. Because each phrase is a known
// phrase plus one character, the phrase set is prefix-closed and a trie
// walk answers "is prefix+c a phrase" in O(1) per character.
//
// Unlike the other strategies the result has no start symbol: the rules
// form a dictionary of phrases. Factorize also returns the phrase sequence
// that covers the input.
//
// Complexity:
//
//   - Time:   O(n): phrases partition the input, so Size() <= n
//   - Memory: O(#phrases) trie nodes
package lz78
