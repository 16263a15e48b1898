package codec

import "errors"

var (
	// ErrBadMagic indicates the data does not start with the grammar magic.
	ErrBadMagic = errors.New("codec: bad magic")

	// ErrCorrupt indicates truncated or inconsistent grammar data.
	ErrCorrupt = errors.New("codec: corrupt grammar data")

	// ErrUnknownCompression indicates an unsupported Compression value.
	ErrUnknownCompression = errors.New("codec: unknown compression")
)

// MaxDecodedSize caps the decompressed bytes Decode accepts (256 MiB).
const MaxDecodedSize = 256 << 20

// magic prefixes every marshaled grammar.
const magic = "SGR\x01"

// Compression selects the compressor applied around the marshaled grammar.
type Compression int

const (
	None Compression = iota
	Flate
	Zstd
	Snappy
	LZ4
	Brotli
)

// Compressions returns every supported Compression.
func Compressions() []Compression {
	return []Compression{None, Flate, Zstd, Snappy, LZ4, Brotli}
}

// String returns the compressor name.
func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Flate:
		return "flate"
	case Zstd:
		return "zstd"
	case Snappy:
		return "snappy"
	case LZ4:
		return "lz4"
	case Brotli:
		return "brotli"
	default:
		return "unknown"
	}
}
