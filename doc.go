// Package smallgrammar builds small straight-line grammars: context-free
// grammars that derive exactly one given string, with the total size of
// their right-hand sides as the quantity to minimize (the smallest grammar
// problem, a proxy for grammar-based compression).
//
// What is inside:
//
//	grammar/    the shared rule table, symbols, validation, expansion
//	digram/     adjacent-pair counting and non-overlapping replacement
//	lz78/       incremental trie factorization (LZ78 phrases)
//	bisection/  balanced recursive bisection with exact rule reuse
//	sequential/ greedy tokenization over a static substring frequency table
//	repair/     RE-PAIR digram replacement until no pair repeats
//	hybrid/     bounded RE-PAIR precompression followed by bisection
//	codec/      binary serialization of a grammar, optionally compressed
//
// All five strategies are heuristics; none claims minimality. Each builds
// and owns a fresh grammar.Grammar per call, keeps the whole input in
// memory, and runs synchronously. Cancellation is cooperative through a
// context.Context option.
//
// Quick start:
//
//	g, err := smallgrammar.Construct(ctx, smallgrammar.RePair, "abababab")
//	fmt.Println(g.Len(), g.Size())
//
// Strategy sizes on the same input can then be compared on g.Size(), or on
// the encoded byte size reported by codec.EncodedSize.
package smallgrammar
