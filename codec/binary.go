package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/katalvlaran/smallgrammar/grammar"
)

// Marshal returns the uncompressed wire form of g.
func Marshal(g *grammar.Grammar) []byte {
	buf := make([]byte, 0, len(magic)+2*binary.MaxVarintLen32+g.Size()*2+g.Len())
	buf = append(buf, magic...)
	buf = binary.AppendUvarint(buf, uint64(g.Len()))

	start := int64(-1)
	if id, ok := g.Start(); ok {
		start = int64(id)
	}
	buf = binary.AppendVarint(buf, start)

	for id := grammar.ID(0); int(id) < g.Len(); id++ {
		rhs, _ := g.Rule(id)
		buf = binary.AppendUvarint(buf, uint64(len(rhs)))
		for _, sym := range rhs {
			buf = binary.AppendVarint(buf, int64(sym))
		}
	}
	return buf
}

// Unmarshal parses the wire form produced by Marshal. The result is
// validated: every reference must be defined and the rule graph acyclic.
func Unmarshal(data []byte) (*grammar.Grammar, error) {
	if len(data) < len(magic) || string(data[:len(magic)]) != magic {
		return nil, ErrBadMagic
	}
	r := reader{buf: data[len(magic):]}

	count, err := r.uvarint()
	if err != nil {
		return nil, err
	}
	// every rule needs at least its length byte
	if count > uint64(len(r.buf)) {
		return nil, fmt.Errorf("%w: %d rules in %d bytes", ErrCorrupt, count, len(r.buf))
	}
	start, err := r.varint()
	if err != nil {
		return nil, err
	}
	if start < -1 || start >= int64(count) {
		return nil, fmt.Errorf("%w: start %d of %d rules", ErrCorrupt, start, count)
	}

	g := grammar.New()
	for k := uint64(0); k < count; k++ {
		n, err := r.uvarint()
		if err != nil {
			return nil, err
		}
		if n > uint64(len(r.buf)) {
			return nil, fmt.Errorf("%w: rule %d claims %d symbols", ErrCorrupt, k, n)
		}
		v := make(grammar.Value, n)
		for i := range v {
			s, err := r.varint()
			if err != nil {
				return nil, err
			}
			if s < -(1<<31) || s >= 1<<31 {
				return nil, fmt.Errorf("%w: symbol %d out of range", ErrCorrupt, s)
			}
			v[i] = grammar.Symbol(s)
		}
		g.AddRule(v)
	}
	if len(r.buf) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrCorrupt, len(r.buf))
	}
	if start >= 0 {
		g.SetStart(grammar.ID(start))
	}

	if err = g.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return g, nil
}

// reader consumes varints from a byte slice.
type reader struct {
	buf []byte
}

func (r *reader) uvarint() (uint64, error) {
	v, n := binary.Uvarint(r.buf)
	if n <= 0 {
		return 0, fmt.Errorf("%w: bad uvarint", ErrCorrupt)
	}
	r.buf = r.buf[n:]
	return v, nil
}

func (r *reader) varint() (int64, error) {
	v, n := binary.Varint(r.buf)
	if n <= 0 {
		return 0, fmt.Errorf("%w: bad varint", ErrCorrupt)
	}
	r.buf = r.buf[n:]
	return v, nil
}
