package grammar

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Digest returns an xxhash64 fingerprint of the rule table and the start
// symbol. Two grammars with equal digests have, with overwhelming
// probability, the same rules in the same mint order.
func (g *Grammar) Digest() uint64 {
	d := xxhash.New()
	var buf [4]byte

	// rule count first, so that trailing empty rules still change the digest
	binary.LittleEndian.PutUint32(buf[:], uint32(len(g.rules)))
	_, _ = d.Write(buf[:])
	for _, rhs := range g.rules {
		binary.LittleEndian.PutUint32(buf[:], uint32(len(rhs)))
		_, _ = d.Write(buf[:])
		for _, sym := range rhs {
			binary.LittleEndian.PutUint32(buf[:], uint32(sym))
			_, _ = d.Write(buf[:])
		}
	}

	start := int32(-1)
	if g.hasStart {
		start = int32(g.start)
	}
	binary.LittleEndian.PutUint32(buf[:], uint32(start))
	_, _ = d.Write(buf[:])

	return d.Sum64()
}
