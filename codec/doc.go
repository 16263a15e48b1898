// Package codec serializes a grammar.Grammar to bytes and back, optionally
// through a general-purpose compressor.
//
// Wire format (before compression):
//
//	magic   "SGR\x01"
//	uvarint rule count R
//	varint  start rule ID, -1 when the grammar has no start symbol
//	R times:
//	  uvarint right-hand-side length L
//	  L times: varint symbol (terminal = rune, nonterminal = -(id+1))
//
// Rules are written in mint order, so Unmarshal reproduces the same IDs.
//
// Compression:
//
//	None, Flate and Zstd (klauspost/compress), Snappy (golang/snappy),
//	LZ4 (pierrec/lz4/v4) and Brotli (andybalholm/brotli). EncodedSize
//	reports the byte size a grammar occupies once encoded, which is the
//	compressed size the grammar size stands in for.
//
// Errors:
//
//   - ErrBadMagic            input does not start with the magic
//   - ErrCorrupt             truncated or inconsistent rule data, or more
//     than MaxDecodedSize (DecodeLimit: limit) bytes after decompression
//   - ErrUnknownCompression  Compression value out of range
package codec
