package bundle

import "github.com/svpv/rpmss/endian"

// IndexEntrySize is the fixed size, in bytes, of one index entry.
const IndexEntrySize = 14

// IndexEntry locates one set-string within the (decompressed) payload
// section: a fixed-size record keyed by a 64-bit hash, with an
// offset/length pair into the variable-size payload.
type IndexEntry struct {
	// Key is the entry's lookup key: either a caller-supplied id, or
	// internal/hash.ID of a package/symbol name.
	Key uint64
	// Offset is the byte offset, within the decompressed payload
	// section, of this entry's length-prefixed record.
	Offset uint32
	// Length is the size, in bytes, of the length-prefixed record
	// (2 bytes of length prefix + the set-string bytes).
	Length uint16
}

// Bytes serializes the entry using the given byte order.
func (e IndexEntry) Bytes(engine endian.EndianEngine) []byte {
	b := make([]byte, IndexEntrySize)
	engine.PutUint64(b[0:8], e.Key)
	engine.PutUint32(b[8:12], e.Offset)
	engine.PutUint16(b[12:14], e.Length)
	return b
}

// ParseIndexEntry parses one index entry from data[0:IndexEntrySize].
func ParseIndexEntry(data []byte, engine endian.EndianEngine) IndexEntry {
	return IndexEntry{
		Key:    engine.Uint64(data[0:8]),
		Offset: engine.Uint32(data[8:12]),
		Length: engine.Uint16(data[12:14]),
	}
}
