package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/katalvlaran/smallgrammar/grammar"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Encode writes the marshaled form of g to w through compressor c.
func Encode(w io.Writer, g *grammar.Grammar, c Compression) error {
	cw, err := newWriter(w, c)
	if err != nil {
		return err
	}
	if _, err = cw.Write(Marshal(g)); err != nil {
		_ = cw.Close()
		return fmt.Errorf("codec: %s write: %w", c, err)
	}
	if err = cw.Close(); err != nil {
		return fmt.Errorf("codec: %s close: %w", c, err)
	}
	return nil
}

// Decode reads a grammar written by Encode with the same compressor.
// At most MaxDecodedSize bytes are decompressed; see DecodeLimit.
func Decode(r io.Reader, c Compression) (*grammar.Grammar, error) {
	return DecodeLimit(r, c, MaxDecodedSize)
}

// DecodeLimit is Decode with an explicit cap on the decompressed size.
// Data that decompresses to more than limit bytes is rejected with
// ErrCorrupt before it is parsed.
func DecodeLimit(r io.Reader, c Compression, limit int64) (*grammar.Grammar, error) {
	cr, err := newReader(r, c)
	if err != nil {
		return nil, err
	}
	defer cr.Close()

	// one byte past the cap tells an exact fit from an overflow
	data, err := io.ReadAll(io.LimitReader(cr, limit+1))
	if err != nil {
		return nil, fmt.Errorf("codec: %s read: %w", c, err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: decompressed size exceeds %d bytes", ErrCorrupt, limit)
	}
	return Unmarshal(data)
}

// EncodedSize returns the number of bytes Encode produces for g with c.
func EncodedSize(g *grammar.Grammar, c Compression) (int, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, g, c); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func newWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case None:
		return nopWriteCloser{w}, nil
	case Flate:
		return flate.NewWriter(w, flate.BestCompression)
	case Zstd:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case Snappy:
		return snappy.NewBufferedWriter(w), nil
	case LZ4:
		return lz4.NewWriter(w), nil
	case Brotli:
		return brotli.NewWriterLevel(w, brotli.BestCompression), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, int(c))
	}
}

// zstdReadCloser adapts *zstd.Decoder, whose Close returns nothing.
type zstdReadCloser struct{ *zstd.Decoder }

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

func newReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case None:
		return io.NopCloser(r), nil
	case Flate:
		return flate.NewReader(r), nil
	case Zstd:
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("codec: zstd reader: %w", err)
		}
		return zstdReadCloser{d}, nil
	case Snappy:
		return io.NopCloser(snappy.NewReader(r)), nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	case Brotli:
		return io.NopCloser(brotli.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, int(c))
	}
}
